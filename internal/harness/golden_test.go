package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marbledb/marble/internal/queryparse"
)

func mustParse(t *testing.T, src string) *queryparse.ParsedQuery {
	t.Helper()
	pq, err := queryparse.ParseQueryString(src)
	require.NoError(t, err)
	return pq
}

func TestRenderSpec(t *testing.T) {
	pq := mustParse(t, "[:find ?y :in $ ?x :where [?x :foaf/knows ?y]]")

	assert.Equal(t,
		"find: FindRel(?y)\n"+
			"in: DefaultSource, Variable(?x)\n"+
			"with:\n"+
			"where: [?x :foaf/knows ?y]\n",
		RenderSpec(pq))
}

func TestRenderSpecEmptyIn(t *testing.T) {
	pq := mustParse(t, "{:find [?x] :in [] :where [[?x :a 1]]}")
	assert.Contains(t, RenderSpec(pq), "in:\n")
}

func TestGoldenRelQuery(t *testing.T) {
	AssertGolden(t, "rel_query",
		mustParse(t, "[:find ?y :in $ ?x :where [?x :foaf/knows ?y]]"))
}

func TestGoldenScalarQuery(t *testing.T) {
	AssertGolden(t, "scalar_query",
		mustParse(t, "[:find ?x . :where [?x :age 42]]"))
}

func TestGoldenCollQuery(t *testing.T) {
	AssertGolden(t, "coll_query",
		mustParse(t, "[:find [?x ...] :where [?e :person/name ?x]]"))
}

func TestGoldenTupleQuery(t *testing.T) {
	AssertGolden(t, "tuple_query",
		mustParse(t, "[:find [?x ?y] :with ?z :where [?x :a ?y]]"))
}

func TestGoldenMultiWhereQuery(t *testing.T) {
	AssertGolden(t, "multi_where_query",
		mustParse(t, "[:find ?x ?y :where [?x :a ?y] [?y :b ?z]]"))
}
