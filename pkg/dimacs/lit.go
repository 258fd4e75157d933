package dimacs

import "strconv"

// Lit is a DIMACS literal: a non-zero signed integer whose absolute value
// names a variable and whose sign gives the polarity. The zero value is the
// DIMACS clause terminator and never denotes a real literal.
type Lit int

// Var returns the 1-based variable the literal refers to.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive reports whether the literal asserts its variable.
func (l Lit) Positive() bool { return l > 0 }

// Neg returns the literal with opposite polarity.
func (l Lit) Neg() Lit { return -l }

// Slot maps the literal to a dense unsigned index: 0 stays 0 (the reserved
// terminator slot), a positive literal l maps to 2l and a negative one to
// 2|l|+1. The two polarities of a variable land on adjacent, disjoint slots,
// so a table of [SlotCount] entries can hold per-literal data for a formula
// with n variables.
func (l Lit) Slot() int {
	switch {
	case l == 0:
		return 0
	case l > 0:
		return int(l) * 2
	default:
		return int(-l)*2 + 1
	}
}

// String renders the literal in DIMACS notation.
func (l Lit) String() string { return strconv.Itoa(int(l)) }

// SlotCount returns the table size needed to index every slot of a formula
// with vars variables, including the reserved slot 0.
func SlotCount(vars int) int { return 2*vars + 2 }
