package examples

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed examples.yaml
var defaultCatalog []byte

// Example is a single sample query.
type Example struct {
	Query      string `yaml:"query" json:"query"`
	Category   string `yaml:"category" json:"category"`
	Classifier string `yaml:"classifier" json:"classifier"`
}

// Catalog is an immutable, ordered list of examples.
type Catalog struct {
	examples []Example
}

type catalogFile struct {
	Examples []Example `yaml:"examples"`
}

// Load parses the embedded default catalog.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile parses a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read examples file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog content.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse examples: %w", err)
	}

	for i, ex := range file.Examples {
		if strings.TrimSpace(ex.Query) == "" {
			return nil, fmt.Errorf("example %d: query is required", i)
		}
		if ex.Category == "" {
			return nil, fmt.Errorf("example %d: category is required", i)
		}
	}

	return &Catalog{examples: file.Examples}, nil
}

// All returns a copy of every example in catalog order.
func (c *Catalog) All() []Example {
	out := make([]Example, len(c.examples))
	copy(out, c.examples)
	return out
}

// ByCategory returns examples in the given category. An empty category
// returns everything.
func (c *Catalog) ByCategory(category string) []Example {
	if category == "" {
		return c.All()
	}
	var out []Example
	for _, ex := range c.examples {
		if strings.EqualFold(ex.Category, category) {
			out = append(out, ex)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ex := range c.examples {
		if !seen[ex.Category] {
			seen[ex.Category] = true
			out = append(out, ex.Category)
		}
	}
	return out
}

// Len returns the number of examples.
func (c *Catalog) Len() int {
	return len(c.examples)
}
