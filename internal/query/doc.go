// Package query defines the canonical, strongly typed query specification
// produced by the front-end parser and consumed by the clause compiler and
// the SQL translator.
//
// These types are the abstraction boundary between surface syntax and
// execution: the parser lowers an untyped tree into them, and everything
// downstream dispatches on them without ever seeing surface syntax again.
//
// SEALED INTERFACES:
//
// Element, FindSpec, and Binding are sealed interfaces using the marker
// method pattern. Only types in this package implement them, which
// enables exhaustive type switches in consumers:
//
//	switch spec := fs.(type) {
//	case query.FindScalar:
//	case query.FindColl:
//	case query.FindTuple:
//	case query.FindRel:
//	}
//
// FIND SPECIFICATIONS:
//
// A FindSpec classifies the shape of a query's result set:
//
//	FindScalar  ?x .        one value
//	FindColl    [?x ...]    a sequence of one variable's bindings
//	FindTuple   [?x ?y]     one row, several columns
//	FindRel     ?x ?y       a sequence of rows
//
// Element currently has the single variant Variable. Pull expressions and
// aggregates are reserved variants of the Element union; adding them must
// not change FindSpec's shape classification.
package query
