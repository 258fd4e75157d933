package dimacs_test

import (
	"fmt"
	"strings"

	"github.com/mpelleau/cnf2lightswitch/pkg/dimacs"
)

func ExampleReadFormula() {
	input := `c (x1 or x2) and (not x1 or not x2)
p cnf 2 2
1 2 0
-1 -2 0
`
	f, err := dimacs.ReadFormula(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("variables:", f.Vars)
	fmt.Println("clauses:", f.ClauseCount())
	fmt.Println("first clause:", f.Clauses[0])
	// Output:
	// variables: 2
	// clauses: 2
	// first clause: [1 2]
}

func ExampleLit_Slot() {
	// Each polarity of a variable gets its own dense table slot.
	for _, l := range []dimacs.Lit{1, -1, 2, -2} {
		fmt.Printf("%s -> %d\n", l, l.Slot())
	}
	fmt.Println("table size for 2 variables:", dimacs.SlotCount(2))
	// Output:
	// 1 -> 2
	// -1 -> 3
	// 2 -> 4
	// -2 -> 5
	// table size for 2 variables: 6
}

func ExampleSolutionScanner() {
	solver := `c minisat-style output
s SATISFIABLE
v 1 -2 0
v -1 2 0
`
	sc := dimacs.NewSolutionScanner(strings.NewReader(solver))
	for sc.Scan() {
		fmt.Println(sc.Assignment())
	}
	// Output:
	// [1 -2]
	// [-1 2]
}

func ExampleFormatSolution() {
	fmt.Println(dimacs.FormatSolution(dimacs.Assignment{1, -2}))
	// Output:
	// v 1 -2 0
}
