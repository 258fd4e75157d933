// Package pkg provides the core libraries for cnf2lightswitch.
//
// # Overview
//
// cnf2lightswitch draws propositional formulas as household circuits: every
// variable is a wall switch, every clause is a ceiling light, and a clause
// lights up when one of its literals is asserted by the current assignment.
// The pkg directory is organized along the pipeline:
//
//  1. [dimacs] - DIMACS CNF parsing and solver output streaming
//  2. [circuit] - The lights-and-switches board: wires, routing, layers
//  3. [render] - Deck assembly, themes, and the TikZ/SVG/JSON/DOT sinks
//  4. [solve] - Model enumeration with an embedded SAT solver
//  5. [pipeline] - Orchestration (parse → build → layer → render)
//
// # Architecture
//
// The typical data flow:
//
//	DIMACS CNF file          solver "v" lines
//	         ↓                       ↓
//	   dimacs.Formula        dimacs.SolutionScanner
//	         ↓                       ↓
//	   circuit.Board  ───────  circuit.LayerStream
//	         ↓                       ↓
//	           render.Deck (static + layers)
//	                     ↓
//	     TikZ / SVG / JSON / DOT / PNG artifacts
//
// The formula is parsed once and becomes an immutable Board; assignments
// stream through as reveal layers, so deck size is bounded by the circuit,
// not by how many solutions the solver emits.
package pkg
