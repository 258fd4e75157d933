package render

import (
	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
)

// smallCircuitLimit is the largest switch/light count rendered at scale 1.0.
const smallCircuitLimit = 5

// Deck is the full render-directive stream for one run: the static circuit
// (layer 1) plus any number of reveal layers. It is the canonical
// serialization format shared by the JSON sink, the serve command, and
// tests.
type Deck struct {
	// Vars is the switch count; switches are laid out left to right by
	// variable index.
	Vars int `json:"vars"`

	// Clauses is the light count; lights sit left to right above the
	// switches, one per clause.
	Clauses int `json:"clauses"`

	// Scale is the global scale factor chosen by [Scale].
	Scale float64 `json:"scale"`

	// Wires are the static connectors, one per literal occurrence.
	Wires []circuit.Wire `json:"wires"`

	// Layers are the reveals in input order, ordinals 2, 3, ...
	Layers []circuit.Layer `json:"layers,omitempty"`
}

// NewDeck builds the static part of the deck for a board. Layers are
// appended afterwards, typically while streaming solver output.
func NewDeck(b *circuit.Board) *Deck {
	return &Deck{
		Vars:    b.Vars(),
		Clauses: b.Clauses(),
		Scale:   Scale(b.Vars(), b.Clauses()),
		Wires:   b.Wires(),
	}
}

// AddLayer appends a reveal layer.
func (d *Deck) AddLayer(l circuit.Layer) {
	d.Layers = append(d.Layers, l)
}

// SlideCount returns the number of slides the deck describes: the static
// circuit plus one per layer.
func (d *Deck) SlideCount() int { return 1 + len(d.Layers) }

// Scale returns the global scale factor: small circuits (at most
// smallCircuitLimit switches and lights) render at 1.0, anything larger is
// shrunk to 5/max(vars, clauses) so the picture keeps a constant footprint.
func Scale(vars, clauses int) float64 {
	if vars <= smallCircuitLimit && clauses <= smallCircuitLimit {
		return 1.0
	}
	max := vars
	if clauses > max {
		max = clauses
	}
	return 5.0 / float64(max)
}
