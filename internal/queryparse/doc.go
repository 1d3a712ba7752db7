// Package queryparse lowers an untyped query tree into the canonical
// typed specification defined by internal/query.
//
// A query arrives in one of two equivalent surface forms:
//
//	[:find ?y :in $ ?x :where [?x :foaf/knows ?y]]
//
//	{:find [?y]
//	 :in [$ ?x]
//	 :where [[?x :foaf/knows ?y]]}
//
// Both normalize to the same clause map (keyword -> ordered values); the
// flat form is expanded by grouping keyword-delimited runs, the map form
// is taken as-is after checking that keys are keywords and values are
// vectors. Clause order never matters, only presence and per-clause
// value order.
//
// From the clause map:
//
//   - :find is classified into one of the four FindSpec shapes by a
//     deterministic priority dispatch (scalar, collection, tuple,
//     relation). No backtracking: each shape is recognized by structure
//     alone.
//   - :in becomes an ordered Binding list; omitting it is equivalent to
//     `:in $`.
//   - :with becomes an ordered variable list; omitting it yields an
//     empty list.
//   - :where is mandatory but carried through syntactically unvalidated;
//     clause compilation is the downstream compiler's concern.
//
// Every function here is pure: identical input yields identical output,
// and all failures are returned *ParseError values, never panics.
package queryparse
