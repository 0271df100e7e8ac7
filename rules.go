package globwalk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules is the declarative form of a Matcher, as stored in a YAML file:
//
//	case_insensitive: false
//	include:
//	  - "**/*.go"
//	exclude:
//	  - "**/vendor/**"
//	  - "**/testdata/**"
type Rules struct {
	Include         []string `yaml:"include"`
	Exclude         []string `yaml:"exclude"`
	CaseInsensitive bool     `yaml:"case_insensitive"`
}

// ParseRules decodes rules from YAML. Unknown keys are rejected; an empty
// document gives empty rules.
func ParseRules(data []byte) (*Rules, error) {
	var r Rules
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("globwalk: failed to parse rules: %w", err)
	}
	return &r, nil
}

// LoadRules reads and decodes the YAML rules file at path.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("globwalk: failed to read rules: %w", err)
	}
	r, err := ParseRules(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return r, nil
}

// Merge appends the patterns of other to r. Case insensitivity is kept if
// either side asks for it.
func (r *Rules) Merge(other *Rules) {
	r.Include = append(r.Include, other.Include...)
	r.Exclude = append(r.Exclude, other.Exclude...)
	r.CaseInsensitive = r.CaseInsensitive || other.CaseInsensitive
}

// Matcher compiles the rules into a new Matcher. opts are applied after the
// case sensitivity taken from the rules.
func (r *Rules) Matcher(opts ...Option) (*Matcher, error) {
	cs := CaseSensitive
	if r.CaseInsensitive {
		cs = CaseInsensitive
	}
	m := NewMatcher(append([]Option{WithCaseSensitivity(cs)}, opts...)...)
	for _, g := range r.Include {
		if err := m.AddInclude(g); err != nil {
			return nil, err
		}
	}
	for _, g := range r.Exclude {
		if err := m.AddExclude(g); err != nil {
			return nil, err
		}
	}
	return m, nil
}
