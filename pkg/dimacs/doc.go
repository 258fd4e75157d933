// Package dimacs reads the DIMACS CNF text format and the solution lines
// emitted by DIMACS-conformant SAT solvers.
//
// # Formula input
//
// A formula file consists of optional comment lines, a problem line, and one
// clause per line:
//
//	c a small example
//	p cnf 2 2
//	1 2 0
//	-1 -2 0
//
// [ReadFormula] parses that into a [Formula]. Parsing is strict about the
// problem line and about literal range (|l| must not exceed the declared
// variable count); both violations are fatal because downstream consumers
// size their lookup tables from the header.
//
// # Solution input
//
// Solvers report models as lines starting with the "v" marker:
//
//	s SATISFIABLE
//	v 1 -2 0
//
// [SolutionScanner] streams such lines one [Assignment] at a time, ignoring
// everything that does not carry the marker. Malformed value lines are
// skipped, not fatal: each line is independent of the others.
//
// # Literal encoding
//
// [Lit] carries the signed DIMACS convention (positive asserts a variable,
// negative negates it) and maps to a dense unsigned index via [Lit.Slot] so
// that both polarities of a variable can key into one flat table.
package dimacs
