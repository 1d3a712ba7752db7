package queryparse

import "github.com/marbledb/marble/internal/edn"

// clauseMap is the canonical normalized form of a query: each clause
// keyword mapped to its ordered value list. Built once per parse, then
// consumed immediately.
type clauseMap map[edn.Keyword][]edn.Value

// groupClauses turns a flat keyword-delimited sequence into a clause map.
//
// It expands something like
//
//	[:find ?y :in $ ?x :where [...]]
//
// into
//
//	{find: [?y], in: [$ ?x], where: [[...]]}
//
// The sequence must consist of runs of an initial keyword followed by
// one or more non-keyword values. Each group's internal order is
// preserved. Returns ok=false for any malformed sequence: a single
// value, a leading non-keyword, two adjacent keywords (an empty group),
// a trailing keyword, or a repeated keyword.
func groupClauses(values []edn.Value) (clauseMap, bool) {
	m := make(clauseMap)

	if len(values) == 0 {
		return m, true
	}
	if len(values) == 1 {
		return nil, false
	}

	rest := values
	for len(rest) > 0 {
		// A keyword with nothing after it can't form a group.
		if len(rest) < 2 {
			return nil, false
		}

		kw, ok := rest[0].(edn.Keyword)
		if !ok {
			return nil, false
		}

		// An empty group, e.g. [:find :where ...], is invalid.
		if edn.IsKeyword(rest[1]) {
			return nil, false
		}

		// Accumulate values until the next keyword or end of input.
		end := 1
		for end < len(rest) && !edn.IsKeyword(rest[end]) {
			end++
		}

		if _, dup := m[kw]; dup {
			return nil, false
		}
		m[kw] = rest[1:end]
		rest = rest[end:]
	}
	return m, true
}
