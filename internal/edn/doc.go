// Package edn provides the tree-value data model for marble queries.
//
// This package contains the value types and their textual reader/writer.
// All other internal packages import edn; edn imports nothing internal.
// This keeps the value model the foundational layer with no circular
// dependencies.
//
// VALUE MODEL:
//
// Value is a sealed interface using the marker method pattern. Only types
// in this package implement it, which enables exhaustive type switches in
// the query parser.
//
// Value types:
//   - Nil, Bool, Int, Float, String - scalars
//   - Symbol - an identifier with an optional namespace
//   - Keyword - a field/clause marker with an optional namespace
//   - Vector, List - ordered sequences
//   - Set - unordered collection with unique members
//   - Map - insertion-ordered key/value entries with unique keys
//
// SYMBOL CONVENTIONS:
//
// The value model itself enforces no symbol semantics, but the query
// layer relies on these conventions for plain (un-namespaced) symbols:
//
//	?name   logic variable
//	$name   source variable ($ alone is the default source)
//	%name   rule-set variable (% alone is the default rule set)
//	.       scalar marker
//	...     collection ellipsis marker
//
// Symbol predicates for these conventions live here (IsVariable,
// IsSource, IsRuleSet, IsScalarMarker, IsEllipsis) so every consumer
// classifies symbols the same way.
package edn
