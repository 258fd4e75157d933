package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// solutionMarker is the token starting a solver value line.
const solutionMarker = "v"

// Assignment is the set of asserted literals from one solution line, in the
// order they appeared. Duplicates are harmless to every consumer in this
// module and are therefore kept.
type Assignment []Lit

// FormatSolution renders the assignment as a DIMACS value line, terminator
// included: "v 1 -2 0".
func FormatSolution(a Assignment) string {
	var b strings.Builder
	b.WriteString(solutionMarker)
	for _, l := range a {
		b.WriteByte(' ')
		b.WriteString(l.String())
	}
	b.WriteString(" 0")
	return b.String()
}

// ParseSolutionLine parses a single line of solver output. ok is false when
// the line does not carry the "v" marker, which is not an error: solvers
// interleave value lines with status and comment lines that callers should
// simply pass over.
func ParseSolutionLine(line string) (a Assignment, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != solutionMarker {
		return nil, false, nil
	}
	a = make(Assignment, 0, len(fields)-1)
	for _, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, true, fmt.Errorf("bad literal %q in solution line", field)
		}
		if n == 0 {
			continue
		}
		a = append(a, Lit(n))
	}
	return a, true, nil
}

// SolutionScanner streams assignments out of solver output one line at a
// time, in input order. Lines without the "v" marker are ignored. Marked
// lines that fail to parse are skipped (each solution stands alone, so one
// bad line must not end the stream) and reported through OnSkip when set.
type SolutionScanner struct {
	// OnSkip, if non-nil, is invoked for every malformed value line with the
	// offending line and the parse error.
	OnSkip func(line string, err error)

	sc      *bufio.Scanner
	cur     Assignment
	skipped int
}

// NewSolutionScanner returns a scanner reading solver output from r.
func NewSolutionScanner(r io.Reader) *SolutionScanner {
	return &SolutionScanner{sc: bufio.NewScanner(r)}
}

// Scan advances to the next well-formed assignment. It returns false at end
// of input or on a read error.
func (s *SolutionScanner) Scan() bool {
	for s.sc.Scan() {
		line := s.sc.Text()
		a, ok, err := ParseSolutionLine(line)
		if !ok {
			continue
		}
		if err != nil {
			s.skipped++
			if s.OnSkip != nil {
				s.OnSkip(line, err)
			}
			continue
		}
		s.cur = a
		return true
	}
	return false
}

// Assignment returns the assignment produced by the last successful Scan.
func (s *SolutionScanner) Assignment() Assignment { return s.cur }

// Skipped returns how many marked lines were dropped as malformed.
func (s *SolutionScanner) Skipped() int { return s.skipped }

// Err returns the first read error encountered, if any.
func (s *SolutionScanner) Err() error { return s.sc.Err() }
