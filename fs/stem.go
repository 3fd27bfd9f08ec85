package fs

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/prospero"
)

// UndatedStem replaces the date part of stems for articles without a date.
const UndatedStem = "00000000"

// lastLead is the highest leading character of a two-character suffix.
const lastLead = '~'

// suffix generates the characters ending a stem: A to Z, then AA to AZ, BA
// to BZ and so on. The leading character only moves once the second one has
// gone through the whole alphabet, and keeps counting in ASCII past Z
// ([A, \A, ... aA, ...) up to ~Z.
type suffix struct {
	index string
	base  byte
}

func newSuffix() *suffix {
	return &suffix{index: "A", base: '@'}
}

func (s *suffix) String() string {
	return s.index
}

// next advances to the following suffix. Returns false once ~Z is used up.
func (s *suffix) next() bool {
	last := s.index[len(s.index)-1]
	if last < 'Z' {
		s.index = string(last + 1)
	} else {
		s.base++
		s.index = "A"
	}
	if s.base > '@' {
		if s.base > lastLead {
			return false
		}
		s.index = string(s.base) + s.index
	}
	return true
}

// Suffixes returns the first n stem suffixes in allocation order.
func Suffixes(n int) []string {
	out := make([]string, 0, n)
	s := newSuffix()
	for len(out) < n {
		out = append(out, s.String())
		if !s.next() {
			break
		}
	}
	return out
}

// AllocateStem returns the first stem prefix+date+suffix for which neither
// a .txt nor a .ctx file exists in dir.
// Returns ECONFLICT when every suffix is taken.
func AllocateStem(dir, prefix, date string) (string, error) {
	s := newSuffix()
	for {
		stem := prefix + date + s.String()
		taken, err := exists(filepath.Join(dir, stem+".txt"))
		if err != nil {
			return "", err
		}
		if !taken {
			if taken, err = exists(filepath.Join(dir, stem+".ctx")); err != nil {
				return "", err
			}
		}
		if !taken {
			return stem, nil
		}
		if !s.next() {
			return "", prospero.Errorf(prospero.ECONFLICT, "no free file name left for %s%s in %s", prefix, date, dir)
		}
	}
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
