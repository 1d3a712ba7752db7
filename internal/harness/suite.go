package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite defines a query conformance suite.
// Suites validate the surface-syntax contract by parsing each case's
// query and checking the resulting classification or error.
type Suite struct {
	// Name uniquely identifies this suite.
	Name string `yaml:"name"`

	// Description explains what this suite validates.
	Description string `yaml:"description,omitempty"`

	// Cases are the queries to parse and check, in order.
	Cases []Case `yaml:"cases"`
}

// Case is one query with its expected outcome.
type Case struct {
	// Name uniquely identifies the case within its suite.
	Name string `yaml:"name"`

	// Query is the query source text, in either surface form.
	Query string `yaml:"query"`

	// Expect describes the required outcome.
	Expect Expect `yaml:"expect"`
}

// Expect describes either a successful classification or a rejection.
// Exactly one of Kind or Error must be set.
type Expect struct {
	// Kind is the expected find shape: "scalar", "coll", "tuple", or
	// "rel". Empty for error cases.
	Kind string `yaml:"kind,omitempty"`

	// Columns is the expected result width. Zero means unchecked.
	Columns int `yaml:"columns,omitempty"`

	// Inputs lists the expected binding kinds in order:
	// "default-source", "named-source", "rule-vars", "variable".
	// Nil means unchecked; an empty list requires no bindings.
	Inputs []string `yaml:"inputs,omitempty"`

	// With is the expected number of grouping variables.
	// Nil means unchecked.
	With *int `yaml:"with,omitempty"`

	// Error is the expected rejection category: "invalid-input",
	// "missing-field", or "read-error". Empty for success cases.
	Error string `yaml:"error,omitempty"`
}

// Find shapes and error categories accepted in suite files.
var (
	validKinds  = map[string]bool{"scalar": true, "coll": true, "tuple": true, "rel": true}
	validErrors = map[string]bool{"invalid-input": true, "missing-field": true, "read-error": true}
)

// LoadSuite reads and validates a suite file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}
	return parseSuite(data)
}

func parseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	if s.Name == "" {
		return fmt.Errorf("suite has no name")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite %q has no cases", s.Name)
	}

	seen := make(map[string]bool)
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("suite %q: case %d has no name", s.Name, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("suite %q: duplicate case name %q", s.Name, c.Name)
		}
		seen[c.Name] = true

		if c.Query == "" {
			return fmt.Errorf("suite %q: case %q has no query", s.Name, c.Name)
		}
		if err := c.Expect.validate(); err != nil {
			return fmt.Errorf("suite %q: case %q: %w", s.Name, c.Name, err)
		}
	}
	return nil
}

func (e Expect) validate() error {
	switch {
	case e.Kind == "" && e.Error == "":
		return fmt.Errorf("expect needs either kind or error")
	case e.Kind != "" && e.Error != "":
		return fmt.Errorf("expect cannot have both kind and error")
	case e.Kind != "" && !validKinds[e.Kind]:
		return fmt.Errorf("unknown find kind %q", e.Kind)
	case e.Error != "" && !validErrors[e.Error]:
		return fmt.Errorf("unknown error category %q", e.Error)
	}
	return nil
}
