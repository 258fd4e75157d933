package render

import (
	"testing"

	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
)

func TestScale(t *testing.T) {
	tests := []struct {
		vars, clauses int
		want          float64
	}{
		{3, 3, 1.0},
		{5, 5, 1.0},
		{10, 4, 0.5},
		{4, 10, 0.5},
		{6, 6, 5.0 / 6.0},
		{1, 1, 1.0},
		{20, 5, 0.25},
	}
	for _, tt := range tests {
		if got := Scale(tt.vars, tt.clauses); got != tt.want {
			t.Errorf("Scale(%d, %d) = %v, want %v", tt.vars, tt.clauses, got, tt.want)
		}
	}
}

func TestNewDeck(t *testing.T) {
	b := circuit.Build(&dimacs.Formula{
		Vars:    2,
		Clauses: [][]dimacs.Lit{{1, 2}, {-1, -2}},
	})

	d := NewDeck(b)

	if d.Vars != 2 || d.Clauses != 2 {
		t.Errorf("deck = %d vars, %d clauses, want 2 and 2", d.Vars, d.Clauses)
	}
	if d.Scale != 1.0 {
		t.Errorf("Scale = %v, want 1.0", d.Scale)
	}
	if len(d.Wires) != 4 {
		t.Errorf("len(Wires) = %d, want 4", len(d.Wires))
	}
	if d.SlideCount() != 1 {
		t.Errorf("SlideCount() = %d, want 1 before any layer", d.SlideCount())
	}

	d.AddLayer(b.Layer(2, dimacs.Assignment{1, -2}))
	if d.SlideCount() != 2 {
		t.Errorf("SlideCount() = %d, want 2", d.SlideCount())
	}
}
