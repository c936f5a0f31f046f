// Package answers holds the answer set a user builds while taking an
// assessment, and reads answer files from disk.
package answers

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Set maps question IDs to numeric answers: a 1-5 value for likert
// questions, a zero-based option index otherwise.
type Set map[string]int

// Record stores v for id, replacing any earlier answer.
func (s Set) Record(id string, v int) {
	s[id] = v
}

// Get returns the answer recorded for id.
func (s Set) Get(id string) (int, bool) {
	v, ok := s[id]
	return v, ok
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// IDs returns the answered question IDs in sorted order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// File is a loaded answers document.
type File struct {
	Path    string
	Catalog string
	Answers Set
	Hash    string
	// Doc is the generic decoded document, kept for schema validation.
	Doc any

	raw []byte
}

type document struct {
	Catalog string `yaml:"catalog"`
	Answers Set    `yaml:"answers"`
}

// Read loads an answers file and hashes it without interpreting the
// answers. Call Decode once Doc has been validated.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("answers.Read: %w", err)
	}
	f, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("answers.Read: parse %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Load reads a YAML or JSON answers file and decodes its answers.
func Load(path string) (*File, error) {
	f, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := f.Decode(); err != nil {
		return nil, fmt.Errorf("answers.Load: decode %s: %w", path, err)
	}
	return f, nil
}

// ParseDocument decodes data into a generic document and hashes it.
// JSON input is accepted since it is valid YAML.
func ParseDocument(data []byte) (*File, error) {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	h := sha256.Sum256(data)
	return &File{
		Hash: fmt.Sprintf("sha256:%x", h),
		Doc:  generic,
		raw:  data,
	}, nil
}

// Parse decodes an answers document, including its answers.
func Parse(data []byte) (*File, error) {
	f, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}
	if err := f.Decode(); err != nil {
		return nil, err
	}
	return f, nil
}

// Decode fills Catalog and Answers from the document. It fails on
// answers that are not integers.
func (f *File) Decode() error {
	var doc document
	if err := yaml.Unmarshal(f.raw, &doc); err != nil {
		return err
	}
	if doc.Answers == nil {
		doc.Answers = Set{}
	}
	f.Catalog = doc.Catalog
	f.Answers = doc.Answers
	return nil
}
