// Package circuit turns a CNF formula into a lights-and-switches circuit
// model: one switch per variable, one light per clause, and one wire per
// literal occurrence connecting the two.
//
// [Build] constructs a [Board] from a parsed formula. The board owns the
// literal→clause adjacency (for each literal slot, the ordered list of
// clauses containing that exact polarity) and the routed wires. Once built,
// a board is immutable and safe for concurrent reads.
//
// A light is on under an assignment exactly when its clause holds an
// asserted literal, which makes satisfaction a pure adjacency lookup:
//
//	board := circuit.Build(formula)
//	lit := board.Satisfied(dimacs.Assignment{1, -2}) // clause indices, sorted
//
// [Board.Layers] streams one reveal [Layer] per solver assignment, numbered
// from 2 upward (layer 1 is the static circuit itself). Each layer is a pure
// function of the board and its own assignment; nothing carries over between
// layers, so there is no bound on how many a stream may produce.
package circuit
