// Package harness runs query conformance suites.
//
// A suite is a YAML file describing named query cases and the
// classification each one must produce - the find shape, column count,
// input binding kinds, grouping variables - or the error category the
// parser must reject it with. Suites keep the surface-syntax contract
// executable: the same files drive `go test` and the `marble test`
// command.
//
// Example suite:
//
//	name: basics
//	cases:
//	  - name: rel
//	    query: "[:find ?x ?y :where [?x :a ?y]]"
//	    expect:
//	      kind: rel
//	      columns: 2
//	      inputs: [default-source]
//	  - name: missing where
//	    query: "{:find [?x]}"
//	    expect:
//	      error: missing-field
//
// Golden comparison of the canonical rendering of parsed specs is
// layered on top via goldie (see golden.go).
package harness
