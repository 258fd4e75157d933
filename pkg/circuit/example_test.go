package circuit_test

import (
	"fmt"
	"strings"

	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
)

func ExampleBoard_Satisfied() {
	f, _ := dimacs.ReadFormula(strings.NewReader("p cnf 2 2\n1 2 0\n-1 -2 0\n"))
	board := circuit.Build(f)

	// Asserting x1 lights clause 1; asserting ¬2 also lights clause 2.
	fmt.Println(board.Satisfied(dimacs.Assignment{1}))
	fmt.Println(board.Satisfied(dimacs.Assignment{1, -2}))
	// Output:
	// [1]
	// [1 2]
}

func ExampleBoard_Layers() {
	f, _ := dimacs.ReadFormula(strings.NewReader("p cnf 2 2\n1 2 0\n-1 -2 0\n"))
	board := circuit.Build(f)

	solver := "v 1 -2 0\nv -1 2 0\n"
	stream := board.Layers(strings.NewReader(solver), nil)
	for stream.Next() {
		l := stream.Layer()
		fmt.Printf("layer %d: lights %v\n", l.Ordinal, l.Lights)
	}
	// Output:
	// layer 2: lights [true true]
	// layer 3: lights [true true]
}

func ExampleRoute() {
	// Positive wires bow right only to clear switches between variable and
	// clause; negative wires mirror the rule.
	fmt.Println(circuit.Route(dimacs.Lit(1), 1))
	fmt.Println(circuit.Route(dimacs.Lit(1), 3))
	fmt.Println(circuit.Route(dimacs.Lit(-5), 1))
	fmt.Println(circuit.Route(dimacs.Lit(-1), 1))
	// Output:
	// left
	// right
	// left
	// right
}
