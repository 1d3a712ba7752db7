// Marble is a Datalog query front end.
//
// It parses queries written in either of the two equivalent surface
// forms into a canonical, typed query specification:
//
//	# Flat, human-oriented form
//	marble parse '[:find ?y :in $ ?x :where [?x :foaf/knows ?y]]'
//
//	# Map form, easier to generate programmatically
//	marble parse '{:find [?y] :in [$ ?x] :where [[?x :foaf/knows ?y]]}'
//
//	# Run a conformance suite
//	marble test suites/basics.yaml
//
// Output is human-readable text by default; pass --format json for
// machine consumption.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/marbledb/marble/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands print their own diagnostics; ExitError only carries
		// the exit code. Anything else is a usage-level failure.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
