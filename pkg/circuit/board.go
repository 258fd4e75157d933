package circuit

import (
	"slices"

	"github.com/samber/lo"

	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
)

// Wire connects a clause light to a variable switch for one literal
// occurrence. Positive wires attach to the east face of the switch glyph,
// negative ones to the west face. Side records the bend direction chosen by
// [Route]; it is fixed at build time and never revised.
type Wire struct {
	Clause   int  `json:"clause"`
	Variable int  `json:"variable"`
	Positive bool `json:"positive"`
	Side     Side `json:"side"`
}

// Board is the immutable circuit built from a formula: the switch and light
// counts, the routed wires, and the literal→clause adjacency consulted when
// evaluating assignments.
type Board struct {
	vars    int
	clauses int
	wires   []Wire

	// adj maps a literal slot to the clauses containing that literal, in
	// clause-reading order. Slot 0 (the DIMACS terminator) stays empty.
	adj [][]int
}

// Build constructs the board for f. Clauses are numbered 1..m in reading
// order. Duplicate literals within a clause each contribute a wire and an
// adjacency entry; satisfaction treats them idempotently. A clause with no
// literals occupies its index, gets no wires, and is never satisfied.
func Build(f *dimacs.Formula) *Board {
	b := &Board{
		vars:    f.Vars,
		clauses: f.ClauseCount(),
		adj:     make([][]int, dimacs.SlotCount(f.Vars)),
	}
	for i, clause := range f.Clauses {
		idx := i + 1
		for _, l := range clause {
			b.adj[l.Slot()] = append(b.adj[l.Slot()], idx)
			b.wires = append(b.wires, Wire{
				Clause:   idx,
				Variable: l.Var(),
				Positive: l.Positive(),
				Side:     Route(l, idx),
			})
		}
	}
	return b
}

// Vars returns the number of switches.
func (b *Board) Vars() int { return b.vars }

// Clauses returns the number of lights.
func (b *Board) Clauses() int { return b.clauses }

// Wires returns the routed wires in emission order. The slice is shared;
// callers must not mutate it.
func (b *Board) Wires() []Wire { return b.wires }

// ClausesFor returns the clauses containing l, in reading order. The slice
// is shared; callers must not mutate it.
func (b *Board) ClausesFor(l dimacs.Lit) []int { return b.adj[l.Slot()] }

// Satisfied returns the sorted, deduplicated clause indices lit by the
// assignment: every clause containing at least one asserted literal.
func (b *Board) Satisfied(a dimacs.Assignment) []int {
	var lit []int
	for _, l := range a {
		lit = append(lit, b.adj[l.Slot()]...)
	}
	lit = lo.Uniq(lit)
	slices.Sort(lit)
	return lit
}
