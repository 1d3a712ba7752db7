package query

import "strings"

// Element is a sealed interface representing one result slot of a find
// specification. Only Variable implements it today; pull expressions and
// aggregates are reserved future variants.
type Element interface {
	findElement() // Sealed - only types in this package implement it
}

// Variable is a logic variable, a plain "?"-prefixed symbol such as ?name.
// The Name field includes the "?" prefix.
type Variable struct {
	Name string
}

func (Variable) findElement() {}

func (v Variable) String() string {
	return v.Name
}

// FindSpec is a sealed interface classifying the result shape of a query.
// Exactly one of FindScalar, FindColl, FindTuple, or FindRel.
type FindSpec interface {
	findSpec() // Sealed - only types in this package implement it

	// Columns returns the result elements in column order.
	Columns() []Element

	// ExpectedColumnCount returns the width of one result row.
	ExpectedColumnCount() int

	// IsUnary reports whether each result carries exactly one value.
	IsUnary() bool
}

// FindScalar produces exactly one value: `?x .`
type FindScalar struct {
	Element Element
}

func (FindScalar) findSpec() {}

func (s FindScalar) Columns() []Element { return []Element{s.Element} }
func (s FindScalar) ExpectedColumnCount() int { return 1 }
func (s FindScalar) IsUnary() bool { return true }

func (s FindScalar) String() string {
	return "FindScalar(" + elementString(s.Element) + ")"
}

// FindColl produces an unbounded sequence of one variable's bindings: `[?x ...]`
type FindColl struct {
	Element Element
}

func (FindColl) findSpec() {}

func (c FindColl) Columns() []Element { return []Element{c.Element} }
func (c FindColl) ExpectedColumnCount() int { return 1 }
func (c FindColl) IsUnary() bool { return true }

func (c FindColl) String() string {
	return "FindColl(" + elementString(c.Element) + ")"
}

// FindTuple produces exactly one row of several columns: `[?x ?y]`
type FindTuple struct {
	Elements []Element // length >= 1
}

func (FindTuple) findSpec() {}

func (t FindTuple) Columns() []Element { return t.Elements }
func (t FindTuple) ExpectedColumnCount() int { return len(t.Elements) }
func (t FindTuple) IsUnary() bool { return len(t.Elements) == 1 }

func (t FindTuple) String() string {
	return "FindTuple(" + elementsString(t.Elements) + ")"
}

// FindRel produces an unbounded sequence of rows: `?x ?y`
type FindRel struct {
	Elements []Element // length >= 1
}

func (FindRel) findSpec() {}

func (r FindRel) Columns() []Element { return r.Elements }
func (r FindRel) ExpectedColumnCount() int { return len(r.Elements) }
func (r FindRel) IsUnary() bool { return len(r.Elements) == 1 }

func (r FindRel) String() string {
	return "FindRel(" + elementsString(r.Elements) + ")"
}

// Binding is a sealed interface representing one :in clause entry.
// Exactly one of DefaultSource, NamedSource, RuleVars, or BindVariable.
type Binding interface {
	inBinding() // Sealed - only types in this package implement it
}

// DefaultSource is the unnamed data source, the symbol `$`.
type DefaultSource struct{}

func (DefaultSource) inBinding() {}

func (DefaultSource) String() string {
	return "DefaultSource"
}

// NamedSource is a named data source such as `$db`.
// The Name field excludes the "$" prefix.
type NamedSource struct {
	Name string
}

func (NamedSource) inBinding() {}

func (s NamedSource) String() string {
	return "NamedSource(" + s.Name + ")"
}

// RuleVars is a rule-set input such as `%` or `%rules`.
// Name excludes the "%" prefix and is empty for the default rule set.
type RuleVars struct {
	Name string
}

func (RuleVars) inBinding() {}

func (r RuleVars) String() string {
	if r.Name == "" {
		return "RuleVars"
	}
	return "RuleVars(" + r.Name + ")"
}

// BindVariable is a scalar variable input such as `?x`.
type BindVariable struct {
	Element Element
}

func (BindVariable) inBinding() {}

func (b BindVariable) String() string {
	return "Variable(" + elementString(b.Element) + ")"
}

// Spec is the complete parsed query specification. Inputs and With are
// never nil: an absent :in clause yields [DefaultSource], an absent
// :with clause an empty slice.
type Spec struct {
	Find   FindSpec
	Inputs []Binding
	With   []Element
}

func elementString(e Element) string {
	if v, ok := e.(Variable); ok {
		return v.String()
	}
	return "<element>"
}

func elementsString(elems []Element) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = elementString(e)
	}
	return strings.Join(parts, " ")
}
