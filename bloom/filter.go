// Package bloom detects articles repeated across export files using Bloom
// filters over article content hashes.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/prospero"
)

// Default sizing used by the convert command.
const (
	DefaultCapacity = 100000
	DefaultFPRate   = 0.001
)

// Filter remembers article content hashes.
// A Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected articles
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a content hash to the filter.
func (f *Filter) Add(hash string) {
	f.f.AddString(hash)
}

// Test returns true if the hash might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(hash string) bool {
	return f.f.TestString(hash)
}

// Seen reports whether an article with the same content was added before,
// and adds it otherwise.
func (f *Filter) Seen(a *prospero.Article) bool {
	return f.f.TestAndAddString(a.Hash())
}

// EstimatedCount returns the approximate number of articles in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
