// Package pipeline wires the full translation together: parse the DIMACS
// formula, build the circuit board, stream assignment layers, and render
// the resulting deck in one or more output formats.
//
// The pipeline is a single forward pass with no shared mutable state: the
// adjacency is built once while clauses are read and is read-only by the
// time layers are computed, so the stages cannot race each other.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, formulaFile, os.Stdin, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mpelleau/cnf2lightswitch/pkg/render"
)

// Output format identifiers.
const (
	FormatTikZ = "tikz"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatPNG  = "png"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatTikZ

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTikZ: true,
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatPNG:  true,
}

// Options configures one pipeline run.
type Options struct {
	// Formats selects the outputs to render. Defaults to [DefaultFormat].
	Formats []string

	// Theme is an optional path to a TOML theme file.
	Theme string

	// MaxLayers caps the number of assignment layers consumed from the
	// solution stream; 0 means read it to exhaustion.
	MaxLayers int

	// Logger receives progress output. Defaults to log.Default().
	Logger *log.Logger
}

// ValidateAndSetDefaults checks formats and fills in defaults. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if !ValidFormats[f] {
			return fmt.Errorf("invalid format: %q (must be one of: tikz, svg, json, dot, png)", f)
		}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Deck is the complete directive stream that was rendered.
	Deck *render.Deck

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains size and timing information.
	Stats Stats
}

// Stats describes one pipeline run.
type Stats struct {
	Vars       int
	Clauses    int
	Wires      int
	Layers     int
	Skipped    int // malformed solution lines dropped
	ParseTime  time.Duration
	RenderTime time.Duration
}
