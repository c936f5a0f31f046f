// Package catalog loads the read-only question catalogs an assessment is scored against.
package catalog

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultName is the built-in catalog used when none is configured.
const DefaultName = "statistical-modeling"

// Catalog is an ordered, immutable question set.
type Catalog struct {
	Name        string     `yaml:"name" validate:"required"`
	Version     int        `yaml:"version" validate:"gte=1"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Questions   []Question `yaml:"questions" validate:"required,min=1,dive"`
}

// LoadBuiltin loads an embedded catalog by name.
func LoadBuiltin(name string) (*Catalog, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadBuiltin: unknown catalog %q: %w", name, err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadBuiltin: parse %q: %w", name, err)
	}
	return c, nil
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog.LoadFile: parse %s: %w", path, err)
	}
	return c, nil
}

// Load resolves ref as a file path when it looks like one, otherwise as a
// built-in catalog name. An empty ref selects DefaultName.
func Load(ref string) (*Catalog, error) {
	if ref == "" {
		ref = DefaultName
	}
	if strings.ContainsAny(ref, `/\`) || strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") {
		return LoadFile(ref)
	}
	return LoadBuiltin(ref)
}

// List returns the names of all built-in catalogs.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Lookup returns the question with the given ID.
func (c *Catalog) Lookup(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Count returns the number of questions of type t, or all questions when t is empty.
func (c *Catalog) Count(t QuestionType) int {
	if t == "" {
		return len(c.Questions)
	}
	n := 0
	for _, q := range c.Questions {
		if q.Type == t {
			n++
		}
	}
	return n
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
