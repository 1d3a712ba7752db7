package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/marbledb/marble/internal/edn"
	"github.com/marbledb/marble/internal/harness"
	"github.com/marbledb/marble/internal/queryparse"
)

// ParseReport is the JSON payload for a successfully parsed query.
type ParseReport struct {
	Find    string   `json:"find"`    // e.g. "FindRel(?y)"
	Kind    string   `json:"kind"`    // "scalar" | "coll" | "tuple" | "rel"
	Columns int      `json:"columns"` // result row width
	Inputs  []string `json:"inputs"`  // binding kinds in order
	With    []string `json:"with"`    // grouping variable names
	Where   []string `json:"where"`   // raw clauses, canonical text
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "parse [query]",
		Short: "Parse a query into its canonical specification",
		Long: `Parse a Datalog-style query and print the classified specification.

The query may be given as an argument, read from a file with --file,
or piped on stdin. Both surface forms are accepted:

  marble parse '[:find ?y :in $ ?x :where [?x :foaf/knows ?y]]'
  marble parse '{:find [?y] :in [$ ?x] :where [[?x :foaf/knows ?y]]}'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, file, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the query from a file")

	return cmd
}

func runParse(opts *RootOptions, file string, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	src, err := querySource(file, args, cmd.InOrStdin())
	if err != nil {
		_ = formatter.Error("SOURCE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "could not read query source", err)
	}

	formatter.VerboseLog("parsing %d bytes of query source", len(src))

	pq, err := queryparse.ParseQueryString(src)
	if err != nil {
		return outputParseError(formatter, err)
	}

	report := buildParseReport(pq)
	if err := formatter.SuccessText(harness.RenderSpec(pq), report); err != nil {
		return err
	}
	return nil
}

// querySource picks the query text from the argument, file, or stdin.
func querySource(file string, args []string, stdin io.Reader) (string, error) {
	if file != "" && len(args) > 0 {
		return "", fmt.Errorf("give the query as an argument or with --file, not both")
	}
	if len(args) > 0 {
		return args[0], nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no query given")
	}
	return string(data), nil
}

func buildParseReport(pq *queryparse.ParsedQuery) ParseReport {
	with := make([]string, len(pq.Spec.With))
	for i, e := range pq.Spec.With {
		with[i] = fmt.Sprint(e)
	}
	where := make([]string, len(pq.Where))
	for i, clause := range pq.Where {
		where[i] = edn.WriteString(clause)
	}
	return ParseReport{
		Find:    fmt.Sprint(pq.Spec.Find),
		Kind:    harness.FindKind(pq.Spec.Find),
		Columns: pq.Spec.Find.ExpectedColumnCount(),
		Inputs:  harness.BindingKinds(pq.Spec.Inputs),
		With:    with,
		Where:   where,
	}
}

func outputParseError(formatter *OutputFormatter, err error) error {
	var pe *queryparse.ParseError
	if errors.As(err, &pe) {
		_ = formatter.Error(string(pe.Code), pe.Error(), nil)
		return WrapExitError(ExitFailure, "query rejected", err)
	}
	_ = formatter.Error("UNKNOWN", err.Error(), nil)
	return WrapExitError(ExitFailure, "query rejected", err)
}
