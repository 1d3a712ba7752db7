package queryparse

import (
	"github.com/marbledb/marble/internal/edn"
	"github.com/marbledb/marble/internal/query"
)

// parseInputs turns the :in clause's value list into an ordered binding
// list. Each value must be a source ($ or $name), a rule set (% or
// %name), or a logic variable (?name). The same source or rule name must
// not repeat.
//
// Callers handle the absent-clause default (:in $) themselves; an
// explicitly empty :in clause yields an empty binding list.
func parseInputs(values []edn.Value) ([]query.Binding, error) {
	out := make([]query.Binding, 0, len(values))
	seenSources := make(map[string]bool)
	seenRules := make(map[string]bool)

	for _, v := range values {
		sym, ok := v.(edn.Symbol)
		if !ok || !sym.IsPlain() {
			return nil, newInvalidInput("expected a source, rule set, or variable", v)
		}

		switch {
		case sym.IsSource():
			name := sym.Name[len("$"):]
			if seenSources[name] {
				return nil, newInvalidInput("duplicate source binding", v)
			}
			seenSources[name] = true
			if name == "" {
				out = append(out, query.DefaultSource{})
			} else {
				out = append(out, query.NamedSource{Name: name})
			}

		case sym.IsRuleSet():
			name := sym.Name[len("%"):]
			if seenRules[name] {
				return nil, newInvalidInput("duplicate rule-set binding", v)
			}
			seenRules[name] = true
			out = append(out, query.RuleVars{Name: name})

		case sym.IsVariable():
			out = append(out, query.BindVariable{Element: query.Variable{Name: sym.Name}})

		default:
			return nil, newInvalidInput("expected a source, rule set, or variable", v)
		}
	}
	return out, nil
}

// parseWith turns the :with clause's value list into an ordered variable
// list. Only logic variables are allowed. Overlap with the :find element
// set is permitted here; resolving that conflict is the downstream
// compiler's concern.
func parseWith(values []edn.Value) ([]query.Element, error) {
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
