package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpelleau/cnf2lightswitch/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "tikz", "svg", "json", "dot", "png"
	solutions string   // solution stream file ("" reads stdin)
	theme     string   // optional TOML theme file
	maxLayers int      // cap on assignment layers (0 = unlimited)
}

// formatExt maps a format identifier to its file extension.
var formatExt = map[string]string{
	pipeline.FormatTikZ: "tex",
	pipeline.FormatSVG:  "svg",
	pipeline.FormatJSON: "json",
	pipeline.FormatDOT:  "dot",
	pipeline.FormatPNG:  "png",
}

// newRenderCmd creates the render command for translating a CNF formula into
// circuit slide decks. The formula comes from the file argument; the solver's
// "v" lines are read from stdin (or --solutions) and become animation layers.
//
// Default settings:
//   - format: tikz (streamed, so unbounded solution streams stay cheap)
//   - solutions: stdin
//   - output: stdout for a single tikz/svg/json/dot render, derived files otherwise
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file.cnf]",
		Short: "Render a CNF formula as a lights-and-switches deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): tikz (default), svg, json, dot, png (comma-separated)")
	cmd.Flags().StringVarP(&opts.solutions, "solutions", "s", "", "read solver output from file instead of stdin")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file overriding glyphs and colors")
	cmd.Flags().IntVar(&opts.maxLayers, "max-layers", 0, "cap on assignment layers (0 = unlimited)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to the pipeline default (tikz).
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output already carries a format extension (.svg, .tex, ...), that
// extension is stripped. Used when generating multiple files.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, fe := range formatExt {
		if ext == fe {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// runRender opens the formula and solution stream and renders the requested
// formats. A single tikz render is streamed layer by layer; everything else
// buffers the whole deck first.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	formula, err := os.Open(input)
	if err != nil {
		return err
	}
	defer formula.Close()

	solutions, closeSolutions, err := openSolutions(opts.solutions)
	if err != nil {
		return err
	}
	defer closeSolutions()

	popts := pipeline.Options{
		Formats:   opts.formats,
		Theme:     opts.theme,
		MaxLayers: opts.maxLayers,
		Logger:    logger,
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	runner := pipeline.NewRunner(logger)

	if len(popts.Formats) == 1 && popts.Formats[0] == pipeline.FormatTikZ {
		return streamRender(ctx, runner, formula, solutions, opts, popts)
	}
	return bufferedRender(ctx, runner, formula, solutions, input, opts, popts)
}

// streamRender writes the TikZ deck to the output as layers arrive.
func streamRender(ctx context.Context, runner *pipeline.Runner, formula, solutions io.Reader, opts *renderOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	stats, err := runner.StreamTikZ(ctx, formula, solutions, out, popts)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Streamed %d slides", stats.Layers+1))
	if opts.output != "" {
		printFile(opts.output)
	}
	printStats(stats.Vars, stats.Clauses, stats.Wires, stats.Layers)
	return nil
}

// bufferedRender runs the full pipeline and writes one file per format.
func bufferedRender(ctx context.Context, runner *pipeline.Runner, formula, solutions io.Reader, input string, opts *renderOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := runner.Execute(ctx, formula, solutions, popts)
	if err != nil {
		return err
	}

	if len(popts.Formats) == 1 {
		if err := writeArtifact(opts.output, result.Artifacts[popts.Formats[0]], opts.output != ""); err != nil {
			return err
		}
	} else {
		base := basePath(opts.output, input)
		for _, format := range popts.Formats {
			path := fmt.Sprintf("%s.%s", base, formatExt[format])
			if err := writeArtifact(path, result.Artifacts[format], true); err != nil {
				return err
			}
		}
	}

	prog.done(fmt.Sprintf("Rendered %d slides", result.Deck.SlideCount()))
	printStats(result.Stats.Vars, result.Stats.Clauses, result.Stats.Wires, result.Stats.Layers)
	return nil
}

// writeArtifact writes data to path ("" means stdout) and prints the file line.
func writeArtifact(path string, data []byte, announce bool) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}
	if announce {
		printFile(path)
	}
	return nil
}

// openSolutions opens the solution stream. An empty path means stdin, which
// is never closed; the returned func closes whatever needs closing.
func openSolutions(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// openOutput opens path for writing, or wraps stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// nopCloser wraps a writer with a no-op Close, used to hand out stdout.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
