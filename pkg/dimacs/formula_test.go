package dimacs

import (
	"errors"
	"strings"
	"testing"
)

func TestReadFormula_Small(t *testing.T) {
	input := `c comment before header
c another one
p cnf 2 2
1 2 0
-1 -2 0
`
	f, err := ReadFormula(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadFormula() error = %v", err)
	}
	if f.Vars != 2 {
		t.Errorf("Vars = %d, want 2", f.Vars)
	}
	if f.ClauseCount() != 2 {
		t.Fatalf("ClauseCount() = %d, want 2", f.ClauseCount())
	}
	wantClauses := [][]Lit{{1, 2}, {-1, -2}}
	for i, want := range wantClauses {
		got := f.Clauses[i]
		if len(got) != len(want) {
			t.Fatalf("clause %d = %v, want %v", i+1, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Errorf("clause %d literal %d = %d, want %d", i+1, j, got[j], want[j])
			}
		}
	}
}

func TestReadFormula_EmptyClause(t *testing.T) {
	// A clause line with only the terminator is a clause with no literals.
	f, err := ReadFormula(strings.NewReader("p cnf 1 2\n0\n1 0\n"))
	if err != nil {
		t.Fatalf("ReadFormula() error = %v", err)
	}
	if len(f.Clauses[0]) != 0 {
		t.Errorf("clause 1 = %v, want empty", f.Clauses[0])
	}
	if len(f.Clauses[1]) != 1 {
		t.Errorf("clause 2 = %v, want one literal", f.Clauses[1])
	}
}

func TestReadFormula_MissingTerminator(t *testing.T) {
	f, err := ReadFormula(strings.NewReader("p cnf 2 1\n1 -2\n"))
	if err != nil {
		t.Fatalf("ReadFormula() error = %v", err)
	}
	if len(f.Clauses[0]) != 2 {
		t.Errorf("clause 1 = %v, want two literals", f.Clauses[0])
	}
}

func TestReadFormula_MalformedHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"comments only", "c nothing else\n"},
		{"wrong signifier", "q cnf 2 2\n"},
		{"wrong format", "p sat 2 2\n"},
		{"missing counts", "p cnf 2\n"},
		{"non-numeric vars", "p cnf x 2\n"},
		{"negative clauses", "p cnf 2 -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFormula(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedHeader) {
				t.Errorf("ReadFormula() error = %v, want ErrMalformedHeader", err)
			}
		})
	}
}

func TestReadFormula_MalformedClause(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"literal out of range", "p cnf 2 1\n1 3 0\n"},
		{"negative out of range", "p cnf 2 1\n-5 0\n"},
		{"garbage token", "p cnf 2 1\n1 x 0\n"},
		{"too few clause lines", "p cnf 2 2\n1 2 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFormula(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedClause) {
				t.Errorf("ReadFormula() error = %v, want ErrMalformedClause", err)
			}
		})
	}
}
