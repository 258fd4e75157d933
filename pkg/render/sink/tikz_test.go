package sink

import (
	"strings"
	"testing"

	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
	"github.com/mpelleau/cnf2lightswitch/pkg/render"
)

// xorDeck builds the deck for (x1 ∨ x2) ∧ (¬x1 ∨ ¬x2) with one layer for
// the assignment {1, -2}.
func xorDeck(t *testing.T) *render.Deck {
	t.Helper()
	b := circuit.Build(&dimacs.Formula{
		Vars:    2,
		Clauses: [][]dimacs.Lit{{1, 2}, {-1, -2}},
	})
	d := render.NewDeck(b)
	d.AddLayer(b.Layer(2, dimacs.Assignment{1, -2}))
	return d
}

func TestRenderTikZ(t *testing.T) {
	out := string(RenderTikZ(xorDeck(t)))

	wantFragments := []string{
		`\documentclass{beamer}`,
		`\scalebox{1.00}{`,
		`\begin{tikzpicture}`,
		// Static switches and labels.
		`\node (v1) at (0, 0)`,
		`\node[right = of v1]  (v2)`,
		`\node[below = 0 of v2] () {v2};`,
		// Lights above the switch row.
		`\node[above = 3 of v1] (c1)`,
		`\node[right = of c1] (c2)`,
		// Wires: positive attach east, negative west.
		`\draw (c1.south) edge[bend left] (v1.east);`,
		`\draw (c2.south) edge[bend right] (v1.west);`,
		`\draw (c2.south) edge[bend right] (v2.west);`,
		// Layer 2: switch 1 closed, switch 2 open, both lights on.
		`\node () at (v1) {\only<2>{\pgfimage[width = 1cm]{figures/switchon}}} ;`,
		`\node () at (v2) {\only<2>{\pgfimage[width = 1cm]{figures/switchoff}}} ;`,
		`\node () at (c1) {\only<2>{\pgfimage[width = 1cm]{figures/lighton}}} ;`,
		`\node () at (c2) {\only<2>{\pgfimage[width = 1cm]{figures/lighton}}} ;`,
		`\end{document}`,
	}
	for _, want := range wantFragments {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderTikZ_ScaledCircuit(t *testing.T) {
	// 10 variables forces scale 0.5.
	clauses := make([][]dimacs.Lit, 4)
	for i := range clauses {
		clauses[i] = []dimacs.Lit{dimacs.Lit(i + 1)}
	}
	b := circuit.Build(&dimacs.Formula{Vars: 10, Clauses: clauses})

	out := string(RenderTikZ(render.NewDeck(b)))

	if !strings.Contains(out, `\scalebox{0.50}{`) {
		t.Error("output missing scalebox 0.50")
	}
}

func TestRenderTikZ_StaticOnly(t *testing.T) {
	d := xorDeck(t)
	d.Layers = nil

	out := string(RenderTikZ(d))

	if strings.Contains(out, `\only<`) {
		t.Error("static deck must not emit \\only overlays")
	}
	if !strings.Contains(out, `\uncover<1>`) {
		t.Error("output missing static layer-1 circuit")
	}
}

func TestTikZWriter_MatchesBufferedRender(t *testing.T) {
	d := xorDeck(t)

	var streamed strings.Builder
	tw := NewTikZWriter(&streamed, d)
	if err := tw.WriteStatic(); err != nil {
		t.Fatalf("WriteStatic() error = %v", err)
	}
	for _, l := range d.Layers {
		if err := tw.WriteLayer(l); err != nil {
			t.Fatalf("WriteLayer() error = %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if streamed.String() != string(RenderTikZ(d)) {
		t.Error("streamed output differs from buffered output")
	}
}
