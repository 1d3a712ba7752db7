package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSuite(t *testing.T) {
	suite, err := LoadSuite("testdata/suites/basics.yaml")
	require.NoError(t, err)

	assert.Equal(t, "basics", suite.Name)
	assert.NotEmpty(t, suite.Cases)
}

func TestLoadSuiteMissingFile(t *testing.T) {
	_, err := LoadSuite("testdata/suites/no_such_suite.yaml")
	require.Error(t, err)
}

func TestParseSuiteValidation(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"not yaml", ":\n:::"},
		{"no name", "cases:\n  - name: a\n    query: q\n    expect: {kind: rel}\n"},
		{"no cases", "name: s\n"},
		{"case without name", "name: s\ncases:\n  - query: q\n    expect: {kind: rel}\n"},
		{"case without query", "name: s\ncases:\n  - name: a\n    expect: {kind: rel}\n"},
		{"duplicate case names", "name: s\ncases:\n  - name: a\n    query: q\n    expect: {kind: rel}\n  - name: a\n    query: q\n    expect: {kind: rel}\n"},
		{"expect empty", "name: s\ncases:\n  - name: a\n    query: q\n    expect: {}\n"},
		{"expect both", "name: s\ncases:\n  - name: a\n    query: q\n    expect: {kind: rel, error: invalid-input}\n"},
		{"unknown kind", "name: s\ncases:\n  - name: a\n    query: q\n    expect: {kind: table}\n"},
		{"unknown error", "name: s\ncases:\n  - name: a\n    query: q\n    expect: {error: boom}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSuite([]byte(tt.src))
			assert.Error(t, err)
		})
	}
}

func TestParseSuiteMinimal(t *testing.T) {
	suite, err := parseSuite([]byte(`
name: minimal
cases:
  - name: one
    query: "[:find ?x :where [?x :a 1]]"
    expect:
      kind: rel
`))
	require.NoError(t, err)
	require.Len(t, suite.Cases, 1)
	assert.Equal(t, "rel", suite.Cases[0].Expect.Kind)
}
