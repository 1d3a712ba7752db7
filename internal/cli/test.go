package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marbledb/marble/internal/harness"
)

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <suite.yaml>",
		Short: "Run a query conformance suite",
		Long: `Run a YAML conformance suite: parse every case's query and check
the expected classification or rejection.

Exit code 0 when every case passes, 1 when any case fails, 2 when the
suite file itself cannot be loaded.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runTest(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	suite, err := harness.LoadSuite(path)
	if err != nil {
		_ = formatter.Error("SUITE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "could not load suite", err)
	}

	formatter.VerboseLog("running suite %q with %d case(s)", suite.Name, len(suite.Cases))

	result := harness.Run(suite)

	if err := formatter.SuccessText(renderSuiteResult(result), result); err != nil {
		return err
	}
	if !result.Passed() {
		return NewExitError(ExitFailure, "suite failed")
	}
	return nil
}

func renderSuiteResult(result *harness.SuiteResult) string {
	out := ""
	passed := 0
	for _, cr := range result.Results {
		if cr.Passed {
			passed++
			out += fmt.Sprintf("PASS %s\n", cr.Name)
			continue
		}
		out += fmt.Sprintf("FAIL %s\n", cr.Name)
		for _, f := range cr.Failures {
			out += fmt.Sprintf("     %s\n", f)
		}
	}
	out += fmt.Sprintf("%s: %d/%d passed\n", result.Suite, passed, len(result.Results))
	return out
}
