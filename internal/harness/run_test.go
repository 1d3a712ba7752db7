package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBasicsSuite(t *testing.T) {
	suite, err := LoadSuite("testdata/suites/basics.yaml")
	require.NoError(t, err)

	result := Run(suite)

	require.Len(t, result.Results, len(suite.Cases))
	for _, cr := range result.Results {
		assert.True(t, cr.Passed, "case %s: %v", cr.Name, cr.Failures)
	}
	assert.True(t, result.Passed())
}

func TestRunReportsWrongKind(t *testing.T) {
	suite := &Suite{
		Name: "wrong kind",
		Cases: []Case{{
			Name:   "scalar expected",
			Query:  "[:find ?x ?y :where [?x :a ?y]]",
			Expect: Expect{Kind: "scalar"},
		}},
	}

	result := Run(suite)

	require.Len(t, result.Results, 1)
	assert.False(t, result.Results[0].Passed)
	require.Len(t, result.Results[0].Failures, 1)
	assert.Contains(t, result.Results[0].Failures[0], "expected find kind scalar")
	assert.False(t, result.Passed())
}

func TestRunReportsWrongColumns(t *testing.T) {
	suite := &Suite{
		Name: "wrong columns",
		Cases: []Case{{
			Name:   "three columns expected",
			Query:  "[:find ?x ?y :where [?x :a ?y]]",
			Expect: Expect{Kind: "rel", Columns: 3},
		}},
	}

	result := Run(suite)

	assert.False(t, result.Results[0].Passed)
	assert.Contains(t, result.Results[0].Failures[0], "expected 3 columns, got 2")
}

func TestRunReportsWrongInputs(t *testing.T) {
	suite := &Suite{
		Name: "wrong inputs",
		Cases: []Case{{
			Name:   "named source expected",
			Query:  "[:find ?x :in $ :where [?x :a 1]]",
			Expect: Expect{Kind: "rel", Inputs: []string{"named-source"}},
		}},
	}

	result := Run(suite)

	assert.False(t, result.Results[0].Passed)
	assert.Contains(t, result.Results[0].Failures[0], "expected inputs")
}

func TestRunReportsUnexpectedSuccess(t *testing.T) {
	suite := &Suite{
		Name: "should fail",
		Cases: []Case{{
			Name:   "valid query expected invalid",
			Query:  "[:find ?x :where [?x :a 1]]",
			Expect: Expect{Error: "invalid-input"},
		}},
	}

	result := Run(suite)

	assert.False(t, result.Results[0].Passed)
	assert.Contains(t, result.Results[0].Failures[0], "query parsed")
}

func TestRunReportsWrongErrorCategory(t *testing.T) {
	suite := &Suite{
		Name: "wrong category",
		Cases: []Case{{
			Name:   "missing-field expected",
			Query:  "17",
			Expect: Expect{Error: "missing-field"},
		}},
	}

	result := Run(suite)

	assert.False(t, result.Results[0].Passed)
	assert.Contains(t, result.Results[0].Failures[0], "got invalid-input")
}

func TestRunChecksWithCount(t *testing.T) {
	zero := 0
	two := 2

	suite := &Suite{
		Name: "with counts",
		Cases: []Case{
			{
				Name:   "none",
				Query:  "[:find ?x :where [?x :a 1]]",
				Expect: Expect{Kind: "rel", With: &zero},
			},
			{
				Name:   "two",
				Query:  "[:find ?x :with ?y ?z :where [?x :a 1]]",
				Expect: Expect{Kind: "rel", With: &two},
			},
		},
	}

	result := Run(suite)
	assert.True(t, result.Passed())
}
