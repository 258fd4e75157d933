package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
	"github.com/mpelleau/cnf2lightswitch/pkg/render"
	"github.com/mpelleau/cnf2lightswitch/pkg/render/sink"
	"github.com/mpelleau/cnf2lightswitch/pkg/render/theme"
)

// Runner executes the translation pipeline. It is stateless apart from the
// logger; one Runner may serve many runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs parse → build → layer → render. formula carries the DIMACS
// CNF input; solutions carries the solver output stream and may be empty, in
// which case only the static circuit is rendered. Structural formula errors
// abort before anything is rendered; malformed solution lines are skipped
// with a warning and counted in Stats.Skipped.
func (r *Runner) Execute(ctx context.Context, formula, solutions io.Reader, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	parseStart := time.Now()
	deck, skipped, err := r.buildDeck(ctx, formula, solutions, opts)
	if err != nil {
		return nil, err
	}
	parseTime := time.Since(parseStart)

	logger.Info("built circuit",
		"switches", deck.Vars,
		"lights", deck.Clauses,
		"wires", len(deck.Wires),
		"layers", len(deck.Layers),
		"duration", parseTime)

	th, err := theme.LoadOrDefault(opts.Theme)
	if err != nil {
		return nil, err
	}

	renderStart := time.Now()
	artifacts, err := renderDeck(deck, th, opts.Formats)
	if err != nil {
		return nil, err
	}
	renderTime := time.Since(renderStart)

	logger.Info("rendered outputs", "formats", opts.Formats, "duration", renderTime)

	return &Result{
		Deck:      deck,
		Artifacts: artifacts,
		Stats: Stats{
			Vars:       deck.Vars,
			Clauses:    deck.Clauses,
			Wires:      len(deck.Wires),
			Layers:     len(deck.Layers),
			Skipped:    skipped,
			ParseTime:  parseTime,
			RenderTime: renderTime,
		},
	}, nil
}

// StreamTikZ runs the pipeline but writes the TikZ document to w as layers
// arrive, so arbitrarily long solution streams never accumulate in memory.
// Only the TikZ format supports this: the other emitters need the whole
// deck.
func (r *Runner) StreamTikZ(ctx context.Context, formula, solutions io.Reader, w io.Writer, opts Options) (Stats, error) {
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}

	start := time.Now()
	f, err := dimacs.ReadFormula(formula)
	if err != nil {
		return Stats{}, err
	}
	board := circuit.Build(f)
	deck := render.NewDeck(board)

	th, err := theme.LoadOrDefault(opts.Theme)
	if err != nil {
		return Stats{}, err
	}

	tw := sink.NewTikZWriter(w, deck, sink.WithTheme(th))
	if err := tw.WriteStatic(); err != nil {
		return Stats{}, err
	}

	layers := 0
	stream := board.Layers(solutions, warnSkip(logger))
	for stream.Next() {
		if err := ctx.Err(); err != nil {
			return Stats{}, err
		}
		if err := tw.WriteLayer(stream.Layer()); err != nil {
			return Stats{}, err
		}
		layers++
		if opts.MaxLayers > 0 && layers >= opts.MaxLayers {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return Stats{}, fmt.Errorf("read solutions: %w", err)
	}
	if err := tw.Close(); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Vars:      deck.Vars,
		Clauses:   deck.Clauses,
		Wires:     len(deck.Wires),
		Layers:    layers,
		Skipped:   stream.Skipped(),
		ParseTime: time.Since(start),
	}
	logger.Info("streamed tikz deck",
		"switches", stats.Vars, "lights", stats.Clauses, "layers", stats.Layers)
	return stats, nil
}

// buildDeck parses the formula and folds the solution stream into a deck.
func (r *Runner) buildDeck(ctx context.Context, formula, solutions io.Reader, opts Options) (*render.Deck, int, error) {
	f, err := dimacs.ReadFormula(formula)
	if err != nil {
		return nil, 0, err
	}
	board := circuit.Build(f)
	deck := render.NewDeck(board)

	if solutions == nil {
		return deck, 0, nil
	}

	stream := board.Layers(solutions, warnSkip(opts.Logger))
	for stream.Next() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		deck.AddLayer(stream.Layer())
		if opts.MaxLayers > 0 && len(deck.Layers) >= opts.MaxLayers {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("read solutions: %w", err)
	}
	return deck, stream.Skipped(), nil
}

// renderDeck produces every requested artifact from one deck.
func renderDeck(deck *render.Deck, th theme.Theme, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		switch format {
		case FormatTikZ:
			artifacts[format] = sink.RenderTikZ(deck, sink.WithTheme(th))
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(deck, sink.WithTheme(th))
		case FormatJSON:
			data, err := sink.MarshalDeck(deck)
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = data
		case FormatDOT:
			artifacts[format] = []byte(sink.ToDOT(deck))
		case FormatPNG:
			data, err := sink.RenderDOTPNG(sink.ToDOT(deck))
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = data
		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}
	return artifacts, nil
}

// warnSkip adapts the logger into the layer stream's skip callback.
func warnSkip(logger *log.Logger) func(line string, err error) {
	if logger == nil {
		logger = log.Default()
	}
	return func(line string, err error) {
		logger.Warn("skipping malformed solution line", "line", line, "err", err)
	}
}
