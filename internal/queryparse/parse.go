package queryparse

import (
	"github.com/marbledb/marble/internal/edn"
	"github.com/marbledb/marble/internal/query"
)

// Clause keywords recognized at the top level of a query.
var (
	kwFind  = edn.NewKeyword("find")
	kwIn    = edn.NewKeyword("in")
	kwWith  = edn.NewKeyword("with")
	kwWhere = edn.NewKeyword("where")
)

// ParsedQuery is the front end's complete output: the typed
// specification plus the raw :where clauses for the downstream clause
// compiler. The caller owns it; nothing here retains a reference.
type ParsedQuery struct {
	Spec query.Spec

	// Where holds the :where clause values exactly as written. The
	// front end checks only that the clause is present; clause
	// compilation happens downstream.
	Where []edn.Value
}

// ParseQuery lowers one query tree into a parsed query.
//
// The tree must be either a map from clause keywords to vectors, or a
// flat vector of keyword-delimited clause groups. Any other top-level
// shape is an invalid-input error. :find and :where are mandatory; an
// absent :in defaults to the single default source, an absent :with to
// no grouping variables.
//
// ParseQuery is a pure function: it never mutates its input and
// identical trees always yield identical results.
func ParseQuery(tree edn.Value) (*ParsedQuery, error) {
	clauses, err := normalize(tree)
	if err != nil {
		return nil, err
	}
	return assemble(clauses)
}

// ParseQueryString reads source text and parses the resulting tree.
// Reader failures surface as read-category parse errors.
func ParseQueryString(src string) (*ParsedQuery, error) {
	tree, err := edn.ReadString(src)
	if err != nil {
		return nil, newReadError(err)
	}
	return ParseQuery(tree)
}

// normalize reduces either surface form to the canonical clause map.
func normalize(tree edn.Value) (clauseMap, error) {
	switch t := tree.(type) {
	case edn.Map:
		return mapToClauses(t)
	case edn.Vector:
		m, ok := groupClauses(t)
		if !ok {
			return nil, newInvalidInput("expected keyword-delimited clause groups", tree)
		}
		return m, nil
	default:
		return nil, newInvalidInput("expected a query map or vector", tree)
	}
}

// mapToClauses checks the map surface form: every key a keyword, every
// value a vector. Duplicate keys are impossible in a well-formed map.
func mapToClauses(m edn.Map) (clauseMap, error) {
	out := make(clauseMap, len(m))
	for _, e := range m {
		kw, ok := e.Key.(edn.Keyword)
		if !ok {
			return nil, newInvalidInput("clause keys must be keywords", e.Key)
		}
		vec, ok := e.Value.(edn.Vector)
		if !ok {
			return nil, newInvalidInput("clause values must be vectors", e.Value)
		}
		out[kw] = vec
	}
	return out, nil
}

// assemble builds the parsed query from a clause map, applying the
// defaults for the optional clauses.
func assemble(clauses clauseMap) (*ParsedQuery, error) {
	findValues, ok := clauses[kwFind]
	if !ok {
		return nil, newMissingField("find")
	}
	whereValues, ok := clauses[kwWhere]
	if !ok {
		return nil, newMissingField("where")
	}

	find, err := classifyFind(findValues)
	if err != nil {
		return nil, err
	}

	// Absent :in is equivalent to `:in $`.
	inputs := []query.Binding{query.DefaultSource{}}
	if inValues, ok := clauses[kwIn]; ok {
		if inputs, err = parseInputs(inValues); err != nil {
			return nil, err
		}
	}

	with := []query.Element{}
	if withValues, ok := clauses[kwWith]; ok {
		if with, err = parseWith(withValues); err != nil {
			return nil, err
		}
	}

	return &ParsedQuery{
		Spec: query.Spec{
			Find:   find,
			Inputs: inputs,
			With:   with,
		},
		Where: whereValues,
	}, nil
}
