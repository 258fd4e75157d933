// Package theme holds the visual styling knobs shared by the emitters:
// glyph image paths for the TikZ output and geometry/colors for the SVG
// output. Themes load from TOML files and overlay the defaults, so a theme
// file only needs the keys it changes.
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Theme is the full styling configuration.
type Theme struct {
	Glyphs Glyphs `toml:"glyphs"`
	SVG    SVG    `toml:"svg"`
}

// Glyphs configures the TikZ emitter: image paths included via \pgfimage
// and the node geometry around them.
type Glyphs struct {
	// Width is the \pgfimage width, e.g. "1cm".
	Width string `toml:"width"`

	// Switch, SwitchOn and SwitchOff are the image paths for the neutral,
	// closed and open switch states.
	Switch    string `toml:"switch"`
	SwitchOn  string `toml:"switch_on"`
	SwitchOff string `toml:"switch_off"`

	// LightOn and LightOff are the image paths for the two light states.
	LightOn  string `toml:"light_on"`
	LightOff string `toml:"light_off"`

	// LightRise is the vertical node distance between the switch row and
	// the light row, in tikz positioning units.
	LightRise float64 `toml:"light_rise"`
}

// SVG configures the standalone SVG emitter.
type SVG struct {
	// Spacing is the horizontal distance between glyph centers, in px.
	Spacing float64 `toml:"spacing"`

	// GlyphSize is the rendered width/height of a switch or light, in px.
	GlyphSize float64 `toml:"glyph_size"`

	// LightRise is the vertical distance between the rows, in px.
	LightRise float64 `toml:"light_rise"`

	OnColor     string `toml:"on_color"`
	OffColor    string `toml:"off_color"`
	WireColor   string `toml:"wire_color"`
	SwitchColor string `toml:"switch_color"`
	LabelColor  string `toml:"label_color"`
}

// Default returns the built-in theme: the historical figures/ glyph set and
// a plain color scheme.
func Default() Theme {
	return Theme{
		Glyphs: Glyphs{
			Width:     "1cm",
			Switch:    "figures/switch",
			SwitchOn:  "figures/switchon",
			SwitchOff: "figures/switchoff",
			LightOn:   "figures/lighton",
			LightOff:  "figures/lightoff",
			LightRise: 3,
		},
		SVG: SVG{
			Spacing:     80,
			GlyphSize:   40,
			LightRise:   160,
			OnColor:     "#f2c14e",
			OffColor:    "#44474d",
			WireColor:   "#8a8f98",
			SwitchColor: "#5b8dd9",
			LabelColor:  "#222222",
		},
	}
}

// Load reads a TOML theme file and overlays it on the defaults. Unknown
// keys are rejected so typos surface instead of silently styling nothing.
func Load(path string) (Theme, error) {
	th := Default()
	meta, err := toml.DecodeFile(path, &th)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Theme{}, fmt.Errorf("theme %s: unknown key %q", path, undecoded[0].String())
	}
	return th, nil
}

// LoadOrDefault loads path when non-empty, otherwise returns the defaults.
func LoadOrDefault(path string) (Theme, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return Load(path)
}
