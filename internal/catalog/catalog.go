// Package catalog holds the read-only set of sellable paper items.
// The catalog is injected into the orchestrator and the tool plane at
// construction time rather than referenced as ambient state.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one sellable item with its unit price.
type Entry struct {
	ItemName  string  `yaml:"item_name"`
	Category  string  `yaml:"category"`
	UnitPrice float64 `yaml:"unit_price"`
}

// Catalog is an ordered list of sellable items.
type Catalog []Entry

// LoadFile reads a catalog from a YAML file containing a list of entries.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(cat) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no entries", path)
	}

	return cat, nil
}

// Matches reports whether any whitespace-separated word of name,
// lowercased, appears as a substring of any catalog entry name.
// This is the gate an order line must pass before any collaborator runs.
func (c Catalog) Matches(name string) bool {
	for _, word := range strings.Fields(name) {
		lower := strings.ToLower(word)
		for _, e := range c {
			if strings.Contains(strings.ToLower(e.ItemName), lower) {
				return true
			}
		}
	}
	return false
}

// Find returns the entry whose name equals name, case-insensitively.
func (c Catalog) Find(name string) (Entry, bool) {
	for _, e := range c {
		if strings.EqualFold(e.ItemName, name) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindFuzzy returns the first entry whose name contains name or is
// contained by it, case-insensitively. Used as the pricing fallback when
// an exact lookup misses.
func (c Catalog) FindFuzzy(name string) (Entry, bool) {
	lower := strings.ToLower(name)
	for _, e := range c {
		entryLower := strings.ToLower(e.ItemName)
		if strings.Contains(entryLower, lower) || strings.Contains(lower, entryLower) {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns all item names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = e.ItemName
	}
	return names
}
