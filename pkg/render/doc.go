// Package render defines the directive deck produced by the translation
// pipeline and the scale rule applied to the whole picture.
//
// A [Deck] is the complete, emitter-independent description of the output:
// switch declarations, light declarations, routed wires, the global scale,
// and zero or more reveal layers. Emitters live in the [sink] subpackage and
// consume decks without feeding anything back, so tests can assert on
// directives directly instead of parsing generated markup.
//
// [sink]: github.com/mpelleau/cnf2lightswitch/pkg/render/sink
package render
