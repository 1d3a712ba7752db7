package queryparse

import (
	"github.com/marbledb/marble/internal/edn"
	"github.com/marbledb/marble/internal/query"
)

// classifyFind turns the :find clause's value list into one of the four
// find specifications.
//
// The shapes are recognized by structure alone, checked in priority
// order:
//
//	?x .        FindScalar - two values, the second the scalar marker
//	[?x ...]    FindColl   - one two-entry vector ending in the ellipsis
//	[?x ?y]     FindTuple  - one non-empty vector of elements
//	?x ?y       FindRel    - anything else: a bare run of elements
func classifyFind(values []edn.Value) (query.FindSpec, error) {
	if len(values) == 0 {
		return nil, newInvalidInput("the :find clause is empty", edn.Vector(nil))
	}

	if len(values) == 2 && isScalarMarker(values[1]) {
		elem, err := parseElement(values[0])
		if err != nil {
			return nil, err
		}
		return query.FindScalar{Element: elem}, nil
	}

	if len(values) == 1 {
		if inner, ok := values[0].(edn.Vector); ok {
			if len(inner) == 2 && isEllipsis(inner[1]) {
				elem, err := parseElement(inner[0])
				if err != nil {
					return nil, err
				}
				return query.FindColl{Element: elem}, nil
			}
			if len(inner) == 0 {
				return nil, newInvalidInput("the tuple form needs at least one element", values[0])
			}
			elems, err := parseElements(inner)
			if err != nil {
				return nil, err
			}
			return query.FindTuple{Elements: elems}, nil
		}
	}

	elems, err := parseElements(values)
	if err != nil {
		return nil, err
	}
	return query.FindRel{Elements: elems}, nil
}

// parseElement parses one result element. Only logic variables are
// supported; pull expressions and aggregates are future element kinds.
func parseElement(v edn.Value) (query.Element, error) {
	if sym, ok := v.(edn.Symbol); ok && sym.IsVariable() {
		return query.Variable{Name: sym.Name}, nil
	}
	return nil, newInvalidInput("expected a logic variable", v)
}

func parseElements(values []edn.Value) ([]query.Element, error) {
	out := make([]query.Element, 0, len(values))
	for _, v := range values {
		elem, err := parseElement(v)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}
	return out, nil
}

func isScalarMarker(v edn.Value) bool {
	sym, ok := v.(edn.Symbol)
	return ok && sym.IsScalarMarker()
}

func isEllipsis(v edn.Value) bool {
	sym, ok := v.(edn.Symbol)
	return ok && sym.IsEllipsis()
}
