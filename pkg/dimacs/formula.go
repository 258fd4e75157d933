package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Structural errors in formula input. Both abort parsing before any result
// is produced; use errors.Is to classify.
var (
	// ErrMalformedHeader is returned when no valid "p cnf <vars> <clauses>"
	// problem line is found after skipping leading comments.
	ErrMalformedHeader = errors.New("malformed DIMACS header")

	// ErrMalformedClause is returned for unparsable clause tokens and for
	// literals whose variable exceeds the declared count.
	ErrMalformedClause = errors.New("malformed clause")
)

// Formula is a parsed CNF problem: the declared variable count and the
// clauses in input order. Clause slices never contain the 0 terminator.
type Formula struct {
	Vars    int
	Clauses [][]Lit
}

// ClauseCount returns the number of clauses.
func (f *Formula) ClauseCount() int { return len(f.Clauses) }

// ReadFormulaFile opens path and parses it with [ReadFormula].
func ReadFormulaFile(path string) (*Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFormula(f)
}

// ReadFormula parses a DIMACS CNF formula.
//
// Comment lines ("c ...") before the problem line are skipped. The problem
// line must read "p cnf <vars> <clauses>"; anything else is
// [ErrMalformedHeader]. Exactly <clauses> clause lines follow, one clause
// per line, each a whitespace-separated list of literals with an optional
// trailing 0 terminator. A clause line may be empty apart from its
// terminator; such a clause has no literals and can never be satisfied.
//
// A literal outside ±[1, vars] is [ErrMalformedClause]: the slot table is
// sized from the header, so out-of-range literals must be rejected rather
// than silently indexed.
func ReadFormula(r io.Reader) (*Formula, error) {
	sc := bufio.NewScanner(r)

	vars, clauses, err := readHeader(sc)
	if err != nil {
		return nil, err
	}

	f := &Formula{Vars: vars, Clauses: make([][]Lit, 0, clauses)}
	for i := 1; i <= clauses; i++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: clause %d: unexpected end of input (header declared %d clauses)",
				ErrMalformedClause, i, clauses)
		}
		clause, err := parseClause(sc.Text(), vars)
		if err != nil {
			return nil, fmt.Errorf("clause %d: %w", i, err)
		}
		f.Clauses = append(f.Clauses, clause)
	}
	return f, nil
}

// readHeader consumes leading comments and the problem line, returning the
// declared variable and clause counts.
func readHeader(sc *bufio.Scanner) (vars, clauses int, err error) {
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
		vars, err = strconv.Atoi(fields[2])
		if err != nil || vars < 0 {
			return 0, 0, fmt.Errorf("%w: bad variable count %q", ErrMalformedHeader, fields[2])
		}
		clauses, err = strconv.Atoi(fields[3])
		if err != nil || clauses < 0 {
			return 0, 0, fmt.Errorf("%w: bad clause count %q", ErrMalformedHeader, fields[3])
		}
		return vars, clauses, nil
	}
	if err := sc.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, fmt.Errorf("%w: missing problem line", ErrMalformedHeader)
}

// parseClause parses one clause line. The trailing 0 is dropped; duplicate
// literals are kept as-is (downstream handling is idempotent).
func parseClause(line string, vars int) ([]Lit, error) {
	fields := strings.Fields(line)
	clause := make([]Lit, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: bad literal %q", ErrMalformedClause, field)
		}
		if n == 0 {
			continue
		}
		l := Lit(n)
		if l.Var() > vars {
			return nil, fmt.Errorf("%w: literal %d out of range (header declared %d variables)",
				ErrMalformedClause, n, vars)
		}
		clause = append(clause, l)
	}
	return clause, nil
}
