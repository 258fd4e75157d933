package dimacs

import (
	"strings"
	"testing"
)

func TestParseSolutionLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Assignment
		wantOK bool
	}{
		{"value line", "v 1 -2 0", Assignment{1, -2}, true},
		{"no terminator", "v 1 -2", Assignment{1, -2}, true},
		{"status line", "s SATISFIABLE", nil, false},
		{"comment line", "c restarts: 3", nil, false},
		{"empty line", "", nil, false},
		{"marker only", "v 0", Assignment{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseSolutionLine(tt.line)
			if err != nil {
				t.Fatalf("ParseSolutionLine(%q) error = %v", tt.line, err)
			}
			if ok != tt.wantOK {
				t.Fatalf("ParseSolutionLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSolutionLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("literal %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseSolutionLine_BadLiteral(t *testing.T) {
	_, ok, err := ParseSolutionLine("v 1 huh 0")
	if !ok {
		t.Fatal("ok = false, want true: the line carries the marker")
	}
	if err == nil {
		t.Fatal("error = nil, want parse error")
	}
}

func TestSolutionScanner(t *testing.T) {
	input := `c solver chatter
s SATISFIABLE
v 1 2 0
noise in between
v -1 -2 0
`
	sc := NewSolutionScanner(strings.NewReader(input))

	var got []Assignment
	for sc.Scan() {
		got = append(got, sc.Assignment())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("scanned %d assignments, want 2", len(got))
	}
	if got[0][0] != 1 || got[0][1] != 2 {
		t.Errorf("first assignment = %v, want [1 2]", got[0])
	}
	if got[1][0] != -1 || got[1][1] != -2 {
		t.Errorf("second assignment = %v, want [-1 -2]", got[1])
	}
}

func TestSolutionScanner_SkipsMalformed(t *testing.T) {
	input := "v 1 0\nv not-a-literal 0\nv -1 0\n"
	sc := NewSolutionScanner(strings.NewReader(input))

	var skippedLines []string
	sc.OnSkip = func(line string, err error) { skippedLines = append(skippedLines, line) }

	count := 0
	for sc.Scan() {
		count++
	}
	if count != 2 {
		t.Errorf("scanned %d assignments, want 2", count)
	}
	if sc.Skipped() != 1 {
		t.Errorf("Skipped() = %d, want 1", sc.Skipped())
	}
	if len(skippedLines) != 1 || !strings.Contains(skippedLines[0], "not-a-literal") {
		t.Errorf("OnSkip saw %v, want the malformed line", skippedLines)
	}
}

func TestSolutionScanner_EmptyStream(t *testing.T) {
	sc := NewSolutionScanner(strings.NewReader(""))
	if sc.Scan() {
		t.Error("Scan() = true on empty input, want false")
	}
}

func TestFormatSolution(t *testing.T) {
	got := FormatSolution(Assignment{1, -2, 3})
	if got != "v 1 -2 3 0" {
		t.Errorf("FormatSolution() = %q, want %q", got, "v 1 -2 3 0")
	}
}
