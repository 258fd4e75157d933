package sink

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mpelleau/cnf2lightswitch/pkg/render"
)

// MarshalDeck serializes a deck to indented JSON, the cross-tool format
// consumed by the serve API and by tests.
func MarshalDeck(d *render.Deck) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalDeck decodes a JSON deck.
func UnmarshalDeck(data []byte) (*render.Deck, error) {
	var d render.Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return &d, nil
}
