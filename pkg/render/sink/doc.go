// Package sink contains the emitters that turn a render deck into concrete
// markup.
//
// Four output formats are supported:
//
//   - TikZ: a beamer/tikz document, one frame, one overlay per layer. This
//     is the historical output format; [TikZWriter] streams it so a long
//     solver run never needs all layers in memory at once.
//   - SVG: a single self-contained file with one group per layer and
//     embedded script for stepping through layers with the arrow keys.
//   - JSON: the deck serialized verbatim, for tooling and the serve API.
//   - DOT: a static Graphviz view of the wiring, renderable to SVG or PNG
//     through goccy/go-graphviz.
//
// All emitters are pure consumers: they read the deck and write bytes,
// leaving every semantic decision to the pipeline that built the deck.
package sink
