package circuit

import "github.com/mpelleau/cnf2lightswitch/pkg/dimacs"

// Side is the bend direction of a wire between a light and a switch.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Route chooses the bend side for the wire joining literal l to clause i,
// assuming switches laid out left-to-right by variable and lights laid out
// left-to-right by clause directly above.
//
// For a positive literal the wire leaves the east face of the switch: when
// the clause sits well to the right of the variable (l+1 < i) the wire bows
// right to clear the switches in between, otherwise it bows left. Negative
// wires attach to the west face, so the heuristic mirrors: bow left when the
// variable sits well to the right of the clause (|l| > i+2), else right.
//
// This is presentation only, since any deterministic side keeps the computed
// light states correct, but the side is recorded per wire so emitters
// reproduce the same picture.
func Route(l dimacs.Lit, i int) Side {
	if l.Positive() {
		if int(l)+1 < i {
			return SideRight
		}
		return SideLeft
	}
	if l.Var() > i+2 {
		return SideLeft
	}
	return SideRight
}
