package circuit

import (
	"io"

	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
)

// FirstLayer is the ordinal of the first assignment layer. Layer 1 is the
// static circuit, so reveals start at 2.
const FirstLayer = 2

// SwitchState is one switch position revealed by a layer.
type SwitchState struct {
	Variable int  `json:"variable"`
	On       bool `json:"on"`
}

// Layer is one incremental reveal: the switch positions asserted by a single
// assignment and the resulting state of every light. Lights is indexed by
// clause-1 and always covers all clauses, lit or not.
type Layer struct {
	Ordinal  int           `json:"ordinal"`
	Switches []SwitchState `json:"switches"`
	Lights   []bool        `json:"lights"`
}

// Layer computes the reveal for a single assignment at the given ordinal.
// Duplicate literals in the assignment yield duplicate switch directives,
// which target the same position and are harmless.
func (b *Board) Layer(ordinal int, a dimacs.Assignment) Layer {
	l := Layer{
		Ordinal:  ordinal,
		Switches: make([]SwitchState, 0, len(a)),
		Lights:   make([]bool, b.clauses),
	}
	for _, lit := range a {
		l.Switches = append(l.Switches, SwitchState{Variable: lit.Var(), On: lit.Positive()})
	}
	for _, c := range b.Satisfied(a) {
		l.Lights[c-1] = true
	}
	return l
}

// LayerStream lazily turns solver output into layers, one assignment at a
// time. Ordinals are assigned strictly in input order starting at
// [FirstLayer], with no gaps; there is no bound on how many layers a stream
// yields.
type LayerStream struct {
	board *Board
	sc    *dimacs.SolutionScanner
	cur   Layer
	next  int
}

// Layers returns a stream of reveal layers computed from the solver output
// read from r. onSkip, if non-nil, observes malformed value lines (the run
// continues past them).
func (b *Board) Layers(r io.Reader, onSkip func(line string, err error)) *LayerStream {
	sc := dimacs.NewSolutionScanner(r)
	sc.OnSkip = onSkip
	return &LayerStream{board: b, sc: sc, next: FirstLayer}
}

// Next advances the stream. It returns false at end of input or read error.
func (ls *LayerStream) Next() bool {
	if !ls.sc.Scan() {
		return false
	}
	ls.cur = ls.board.Layer(ls.next, ls.sc.Assignment())
	ls.next++
	return true
}

// Layer returns the layer produced by the last successful Next.
func (ls *LayerStream) Layer() Layer { return ls.cur }

// Skipped returns how many malformed value lines were dropped so far.
func (ls *LayerStream) Skipped() int { return ls.sc.Skipped() }

// Err returns the first read error encountered, if any.
func (ls *LayerStream) Err() error { return ls.sc.Err() }
