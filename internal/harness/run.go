package harness

import (
	"fmt"

	"github.com/marbledb/marble/internal/query"
	"github.com/marbledb/marble/internal/queryparse"
)

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

// SuiteResult is the outcome of a whole suite run.
type SuiteResult struct {
	Suite   string       `json:"suite"`
	Results []CaseResult `json:"results"`
}

// Passed reports whether every case passed.
func (r *SuiteResult) Passed() bool {
	for _, cr := range r.Results {
		if !cr.Passed {
			return false
		}
	}
	return true
}

// Run parses every case in the suite and checks its expectations.
// Run never fails as a whole; per-case failures land in the result.
func Run(suite *Suite) *SuiteResult {
	result := &SuiteResult{Suite: suite.Name}
	for _, c := range suite.Cases {
		result.Results = append(result.Results, runCase(c))
	}
	return result
}

func runCase(c Case) CaseResult {
	cr := CaseResult{Name: c.Name, Passed: true}
	fail := func(format string, args ...any) {
		cr.Passed = false
		cr.Failures = append(cr.Failures, fmt.Sprintf(format, args...))
	}

	pq, err := queryparse.ParseQueryString(c.Query)

	if c.Expect.Error != "" {
		if err == nil {
			fail("expected %s error, query parsed", c.Expect.Error)
		} else if got := errorCategory(err); got != c.Expect.Error {
			fail("expected %s error, got %s (%v)", c.Expect.Error, got, err)
		}
		return cr
	}

	if err != nil {
		fail("parse failed: %v", err)
		return cr
	}

	if got := FindKind(pq.Spec.Find); got != c.Expect.Kind {
		fail("expected find kind %s, got %s", c.Expect.Kind, got)
	}
	if c.Expect.Columns != 0 {
		if got := pq.Spec.Find.ExpectedColumnCount(); got != c.Expect.Columns {
			fail("expected %d columns, got %d", c.Expect.Columns, got)
		}
	}
	if c.Expect.Inputs != nil {
		got := BindingKinds(pq.Spec.Inputs)
		if !equalStrings(got, c.Expect.Inputs) {
			fail("expected inputs %v, got %v", c.Expect.Inputs, got)
		}
	}
	if c.Expect.With != nil {
		if got := len(pq.Spec.With); got != *c.Expect.With {
			fail("expected %d with variables, got %d", *c.Expect.With, got)
		}
	}
	return cr
}

func errorCategory(err error) string {
	switch {
	case queryparse.IsInvalidInput(err):
		return "invalid-input"
	case queryparse.IsMissingField(err):
		return "missing-field"
	case queryparse.IsReadError(err):
		return "read-error"
	default:
		return "unknown"
	}
}

// FindKind names a find specification's shape: "scalar", "coll",
// "tuple", or "rel".
func FindKind(fs query.FindSpec) string {
	switch fs.(type) {
	case query.FindScalar:
		return "scalar"
	case query.FindColl:
		return "coll"
	case query.FindTuple:
		return "tuple"
	case query.FindRel:
		return "rel"
	default:
		return "unknown"
	}
}

// BindingKinds names each binding's kind in order: "default-source",
// "named-source", "rule-vars", or "variable".
func BindingKinds(bindings []query.Binding) []string {
	out := make([]string, len(bindings))
	for i, b := range bindings {
		switch b.(type) {
		case query.DefaultSource:
			out[i] = "default-source"
		case query.NamedSource:
			out[i] = "named-source"
		case query.RuleVars:
			out[i] = "rule-vars"
		case query.BindVariable:
			out[i] = "variable"
		default:
			out[i] = "unknown"
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
