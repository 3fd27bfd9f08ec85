package prospero

// Fallback values used for publications missing from the reference table.
const (
	UnknownPrefix = "EUROPRESSE"
	UnknownType   = "unknown source"
)

// Publication is the reference data of a news outlet.
type Publication struct {
	// Prefix starts every output file name of the outlet.
	Prefix string `yaml:"abr"`

	// Source is the canonical outlet name written to context files.
	Source string `yaml:"source"`

	// Type classifies the outlet (daily, weekly, agency, ...).
	Type string `yaml:"type"`
}

// PublicationIndex resolves raw publication names.
type PublicationIndex interface {
	// Lookup returns the publication registered under name.
	// On a miss it returns the fallback publication and false.
	Lookup(name string) (Publication, bool)
}

// Ensure PublicationTable implements PublicationIndex at compile time.
var _ PublicationIndex = (*PublicationTable)(nil)

// PublicationTable is an in-memory PublicationIndex.
// It is built once and never modified afterwards.
type PublicationTable struct {
	m map[string]Publication
}

// NewPublicationTable returns a table holding a copy of m.
func NewPublicationTable(m map[string]Publication) *PublicationTable {
	t := &PublicationTable{m: make(map[string]Publication, len(m))}
	for name, p := range m {
		t.m[name] = p
	}
	return t
}

// Lookup implements PublicationIndex.
func (t *PublicationTable) Lookup(name string) (Publication, bool) {
	if p, ok := t.m[name]; ok {
		return p, true
	}
	return UnknownPublication(name), false
}

// Len returns the number of registered publications.
func (t *PublicationTable) Len() int {
	return len(t.m)
}

// UnknownPublication returns the fallback publication for name.
func UnknownPublication(name string) Publication {
	return Publication{Prefix: UnknownPrefix, Source: name, Type: UnknownType}
}
