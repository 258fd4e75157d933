package sink

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
	"github.com/mpelleau/cnf2lightswitch/pkg/render"
	"github.com/mpelleau/cnf2lightswitch/pkg/render/theme"
)

// TikZWriter emits a beamer/tikz document incrementally: the static circuit
// first, then one overlay per layer as layers arrive, then the closing
// markup. Write errors stick; later calls become no-ops returning the first
// error.
type TikZWriter struct {
	w     io.Writer
	deck  *render.Deck
	theme theme.Theme
	err   error
}

// NewTikZWriter returns a writer emitting to w for the static part of d.
// Call [TikZWriter.WriteStatic] once, then [TikZWriter.WriteLayer] per
// layer, then [TikZWriter.Close].
func NewTikZWriter(w io.Writer, d *render.Deck, opts ...Option) *TikZWriter {
	o := newOptions(opts...)
	return &TikZWriter{w: w, deck: d, theme: o.theme}
}

// RenderTikZ renders a complete deck, layers included, into one buffer.
func RenderTikZ(d *render.Deck, opts ...Option) []byte {
	var buf bytes.Buffer
	tw := NewTikZWriter(&buf, d, opts...)
	tw.WriteStatic()
	for _, l := range d.Layers {
		tw.WriteLayer(l)
	}
	tw.Close()
	return buf.Bytes()
}

// WriteStatic emits the document prologue and the layer-1 circuit: switch
// and light declarations plus all wires. Everything static is wrapped in
// \uncover<1> so later overlays replace rather than stack.
func (t *TikZWriter) WriteStatic() error {
	g := t.theme.Glyphs

	t.printf("\\documentclass{beamer}\n")
	t.printf("\\usepackage{pgf, tikz}\n")
	t.printf("\\usetikzlibrary{positioning}\n")
	t.printf("\\begin{document}\n")
	t.printf("  \\begin{frame}\n")
	t.printf("    \\scalebox{%.2f}{\n", t.deck.Scale)
	t.printf("      \\begin{tikzpicture}\n")

	t.printf("\n        %% variables\n")
	for v := 1; v <= t.deck.Vars; v++ {
		if v == 1 {
			t.printf("        \\node (v1) at (0, 0) {{\\uncover<1>{\\pgfimage[width = %s]{%s}}}};\n",
				g.Width, g.Switch)
		} else {
			t.printf("        \\node[right = of v%d]  (v%d) {{\\uncover<1>{\\pgfimage[width = %s]{%s}}}};\n",
				v-1, v, g.Width, g.Switch)
		}
		t.printf("        \\node[below = 0 of v%d] () {v%d};\n", v, v)
	}

	t.printf("\n        %% clauses\n")
	for c := 1; c <= t.deck.Clauses; c++ {
		if c == 1 {
			t.printf("        \\node[above = %g of v1] (c1) {{\\uncover<1>{\\pgfimage[width = %s]{%s}}}};\n",
				g.LightRise, g.Width, g.LightOff)
		} else {
			t.printf("        \\node[right = of c%d] (c%d) {{\\uncover<1>{\\pgfimage[width = %s]{%s}}}};\n",
				c-1, c, g.Width, g.LightOff)
		}
	}

	for _, w := range t.deck.Wires {
		face := "east"
		if !w.Positive {
			face = "west"
		}
		t.printf("        \\draw (c%d.south) edge[bend %s] (v%d.%s);\n",
			w.Clause, w.Side, w.Variable, face)
	}
	return t.err
}

// WriteLayer emits one reveal overlay: switch positions for the asserted
// literals and the resulting state of every light, all visible on overlay
// l.Ordinal only: each layer respecifies the full light row, so a pulse per
// overlay reproduces a persistent reveal.
func (t *TikZWriter) WriteLayer(l circuit.Layer) error {
	g := t.theme.Glyphs

	t.printf("\n        %% solution\n")
	for _, s := range l.Switches {
		img := g.SwitchOff
		if s.On {
			img = g.SwitchOn
		}
		t.printf("        \\node () at (v%d) {\\only<%d>{\\pgfimage[width = %s]{%s}}} ;\n",
			s.Variable, l.Ordinal, g.Width, img)
	}
	for i, on := range l.Lights {
		img := g.LightOff
		if on {
			img = g.LightOn
		}
		t.printf("        \\node () at (c%d) {\\only<%d>{\\pgfimage[width = %s]{%s}}} ;\n",
			i+1, l.Ordinal, g.Width, img)
	}
	return t.err
}

// Close emits the closing markup.
func (t *TikZWriter) Close() error {
	t.printf("      \\end{tikzpicture}\n")
	t.printf("    }\n")
	t.printf("  \\end{frame}\n")
	t.printf("\\end{document}\n")
	return t.err
}

func (t *TikZWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
