// Package yaml loads the publication reference table from YAML files.
package yaml

import (
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/prospero"
	"gopkg.in/yaml.v3"
)

// LoadPublications reads a publication table file. The file maps raw
// publication names, as printed in export headers, to their reference data:
//
//	Le Monde:
//	  abr: LM
//	  source: Le Monde
//	  type: Presse nationale
func LoadPublications(path string) (*prospero.PublicationTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read publication table: %w", err)
	}
	return ParsePublications(data)
}

// ParsePublications parses publication table contents.
// Returns EINVALID when an entry has no prefix.
func ParsePublications(data []byte) (*prospero.PublicationTable, error) {
	var m map[string]prospero.Publication
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, prospero.Errorf(prospero.EINVALID, "failed to parse publication table: %v", err)
	}

	for name, p := range m {
		if strings.TrimSpace(p.Prefix) == "" {
			return nil, prospero.Errorf(prospero.EINVALID, "publication %q has no abr", name)
		}
		if p.Source == "" {
			p.Source = name
			m[name] = p
		}
	}

	return prospero.NewPublicationTable(m), nil
}
