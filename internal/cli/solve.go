package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
	"github.com/mpelleau/cnf2lightswitch/pkg/pipeline"
	"github.com/mpelleau/cnf2lightswitch/pkg/solve"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	output       string   // output file path ("" = stdout)
	maxSolutions int      // cap on enumerated models (0 = all)
	render       bool     // render the deck instead of printing solver lines
	formats      []string // formats when --render is set
	theme        string   // optional TOML theme file
}

// newSolveCmd creates the solve command. It enumerates satisfying
// assignments of the formula with the embedded SAT solver and prints them in
// the solver output convention ("s SATISFIABLE" plus one "v" line per
// model), so the output pipes straight into render:
//
//	cnf2lightswitch solve formula.cnf | cnf2lightswitch render formula.cnf
//
// With --render the pipe is internal: the models become deck layers directly.
func newSolveCmd() *cobra.Command {
	var formatsStr string
	opts := solveOpts{maxSolutions: 10}

	cmd := &cobra.Command{
		Use:   "solve [file.cnf]",
		Short: "Enumerate satisfying assignments of a CNF formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runSolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVarP(&opts.maxSolutions, "max-solutions", "n", opts.maxSolutions, "cap on enumerated assignments (0 = all)")
	cmd.Flags().BoolVar(&opts.render, "render", false, "render the deck directly instead of printing solver lines")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s) with --render: tikz (default), svg, json, dot, png")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file overriding glyphs and colors")

	return cmd
}

// runSolve reads the formula, enumerates models, and either prints them as
// solver lines or feeds them through the render pipeline.
func runSolve(ctx context.Context, input string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Solving %s", input)

	f, err := dimacs.ReadFormulaFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded formula: %d variables, %d clauses", f.Vars, f.ClauseCount())

	if opts.render {
		return solveAndRender(ctx, f, input, opts)
	}
	return printSolutions(ctx, f, opts)
}

// printSolutions writes the solver output convention to the output: one
// status line, then one "v" line per satisfying assignment.
func printSolutions(ctx context.Context, f *dimacs.Formula, opts *solveOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	printed := 0
	count, err := solve.Enumerate(ctx, f, opts.maxSolutions, func(a dimacs.Assignment) error {
		if printed == 0 {
			if _, werr := fmt.Fprintln(out, "s SATISFIABLE"); werr != nil {
				return werr
			}
		}
		printed++
		_, werr := fmt.Fprintln(out, dimacs.FormatSolution(a))
		return werr
	})
	if err != nil {
		return err
	}

	if count == 0 {
		if _, err := fmt.Fprintln(out, "s UNSATISFIABLE"); err != nil {
			return err
		}
		prog.done("Formula is unsatisfiable")
		return nil
	}
	prog.done(fmt.Sprintf("Enumerated %d assignments", count))
	return nil
}

// solveAndRender buffers the models as solver lines and runs them through
// the same pipeline the render command uses.
func solveAndRender(ctx context.Context, f *dimacs.Formula, input string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var solutions bytes.Buffer
	count, err := solve.Enumerate(ctx, f, opts.maxSolutions, func(a dimacs.Assignment) error {
		_, werr := fmt.Fprintln(&solutions, dimacs.FormatSolution(a))
		return werr
	})
	if err != nil {
		return err
	}
	if count == 0 {
		printError("Formula is unsatisfiable; rendering static circuit only")
	}
	logger.Debugf("Enumerated %d assignments", count)

	formula, err := os.Open(input)
	if err != nil {
		return err
	}
	defer formula.Close()

	popts := pipeline.Options{
		Formats: opts.formats,
		Theme:   opts.theme,
		Logger:  logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	result, err := pipeline.NewRunner(logger).Execute(ctx, formula, &solutions, popts)
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	for _, format := range popts.Formats {
		path := fmt.Sprintf("%s.%s", base, formatExt[format])
		if err := writeArtifact(path, result.Artifacts[format], true); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Rendered %d slides", result.Deck.SlideCount()))
	printStats(result.Stats.Vars, result.Stats.Clauses, result.Stats.Wires, result.Stats.Layers)
	printNextStep("Preview the deck", fmt.Sprintf("cnf2lightswitch preview %s", input))
	return nil
}
