package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/marbledb/marble/internal/edn"
	"github.com/marbledb/marble/internal/queryparse"
)

// RenderSpec produces the canonical one-line-per-clause rendering of a
// parsed query. The rendering is deterministic, so golden files can
// compare it byte for byte:
//
//	find: FindRel(?y)
//	in: DefaultSource, Variable(?x)
//	with: ?z
//	where: [?x :foaf/knows ?y]
//
// An empty clause renders as its bare label; each :where clause gets
// its own line.
func RenderSpec(pq *queryparse.ParsedQuery) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "find: %s\n", stringify(pq.Spec.Find))

	sb.WriteString("in:")
	for i, b := range pq.Spec.Inputs {
		sb.WriteString(sep(i))
		sb.WriteString(stringify(b))
	}
	sb.WriteByte('\n')

	sb.WriteString("with:")
	for i, e := range pq.Spec.With {
		sb.WriteString(sep(i))
		sb.WriteString(stringify(e))
	}
	sb.WriteByte('\n')

	for _, clause := range pq.Where {
		fmt.Fprintf(&sb, "where: %s\n", edn.WriteString(clause))
	}
	return sb.String()
}

// AssertGolden parses nothing itself: it renders an already parsed
// query and compares it against testdata/<name>.golden. Regenerate
// golden files with:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, pq *queryparse.ParsedQuery) {
	t.Helper()
	g := goldie.New(t)
	g.Assert(t, name, []byte(RenderSpec(pq)))
}

func stringify(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}

func sep(i int) string {
	if i == 0 {
		return " "
	}
	return ", "
}
