package sink

import (
	"bytes"
	"fmt"

	"github.com/mpelleau/cnf2lightswitch/pkg/circuit"
	"github.com/mpelleau/cnf2lightswitch/pkg/render"
	"github.com/mpelleau/cnf2lightswitch/pkg/render/theme"
)

const layerStepJS = `
    const groups = Array.from(document.querySelectorAll('[data-layer]'));
    const counter = document.getElementById('slide-counter');
    const maxSlide = %d;
    let slide = 1;
    function show() {
      groups.forEach(g => {
        g.style.display = parseInt(g.dataset.layer) === slide ? 'inline' : 'none';
      });
      counter.textContent = slide + ' / ' + maxSlide;
    }
    document.addEventListener('keydown', e => {
      if (e.key === 'ArrowRight' || e.key === ' ') slide = Math.min(maxSlide, slide + 1);
      else if (e.key === 'ArrowLeft') slide = Math.max(1, slide - 1);
      else return;
      e.preventDefault();
      show();
    });
    document.addEventListener('click', () => { slide = slide %% maxSlide + 1; show(); });
    show();`

// svgGeometry fixes the coordinate system of one deck render.
type svgGeometry struct {
	th      theme.SVG
	pad     float64
	lightCY float64
	swCY    float64
	width   float64
	height  float64
}

func newGeometry(d *render.Deck, th theme.SVG) svgGeometry {
	cols := d.Vars
	if d.Clauses > cols {
		cols = d.Clauses
	}
	g := svgGeometry{th: th, pad: th.Spacing / 2}
	g.lightCY = g.pad + th.GlyphSize/2
	g.swCY = g.lightCY + th.LightRise
	g.width = 2*g.pad + float64(cols)*th.Spacing
	g.height = g.swCY + th.GlyphSize/2 + 2*g.pad
	return g
}

func (g svgGeometry) switchCX(v int) float64 { return g.pad + (float64(v)-0.5)*g.th.Spacing }
func (g svgGeometry) lightCX(c int) float64  { return g.pad + (float64(c)-0.5)*g.th.Spacing }

// RenderSVG emits the deck as one standalone, self-stepping SVG document:
// the static circuit plus one hidden group per layer, with embedded script
// binding the arrow keys to layer stepping.
func RenderSVG(d *render.Deck, opts ...Option) []byte {
	o := newOptions(opts...)
	g := newGeometry(d, o.theme.SVG)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		g.width, g.height, g.width*d.Scale, g.height*d.Scale)

	renderWires(&buf, d, g)
	renderChrome(&buf, d, g)
	renderNeutral(&buf, d, g)
	for _, l := range d.Layers {
		renderLayer(&buf, l, g, false)
	}

	fmt.Fprintf(&buf, "  <text id=\"slide-counter\" x=\"%.1f\" y=\"%.1f\" font-size=\"12\" fill=\"%s\"></text>\n",
		g.pad/2, g.height-g.pad/2, g.th.LabelColor)
	fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n",
		fmt.Sprintf(layerStepJS, d.SlideCount()))
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderSlideSVG emits a single frozen slide as a standalone SVG document:
// the static circuit plus the states of the given slide ordinal (1 = the
// neutral circuit, 2.. = assignment layers). No script is embedded.
func RenderSlideSVG(d *render.Deck, ordinal int, opts ...Option) ([]byte, error) {
	if ordinal < 1 || ordinal > d.SlideCount() {
		return nil, fmt.Errorf("slide %d out of range [1, %d]", ordinal, d.SlideCount())
	}
	o := newOptions(opts...)
	g := newGeometry(d, o.theme.SVG)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		g.width, g.height, g.width*d.Scale, g.height*d.Scale)

	renderWires(&buf, d, g)
	renderChrome(&buf, d, g)
	if ordinal == 1 {
		renderNeutral(&buf, d, g)
	} else {
		renderLayer(&buf, d.Layers[ordinal-2], g, true)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// renderWires draws the always-visible connectors. Each wire leaves the
// bottom of its light and lands on the east (positive) or west (negative)
// face of its switch, bowing to the routed side.
func renderWires(buf *bytes.Buffer, d *render.Deck, g svgGeometry) {
	buf.WriteString("  <g class=\"wires\">\n")
	for _, w := range d.Wires {
		x1 := g.lightCX(w.Clause)
		y1 := g.lightCY + g.th.GlyphSize/2
		x2 := g.switchCX(w.Variable)
		y2 := g.swCY
		if w.Positive {
			x2 += g.th.GlyphSize / 2
		} else {
			x2 -= g.th.GlyphSize / 2
		}
		bend := g.th.Spacing * 0.4
		if w.Side == circuit.SideLeft {
			bend = -bend
		}
		cx := (x1+x2)/2 + bend
		cy := (y1 + y2) / 2
		fmt.Fprintf(buf, "    <path d=\"M %.1f %.1f Q %.1f %.1f %.1f %.1f\" fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\"/>\n",
			x1, y1, cx, cy, x2, y2, g.th.WireColor)
	}
	buf.WriteString("  </g>\n")
}

// renderChrome draws the always-visible switch bodies and labels.
func renderChrome(buf *bytes.Buffer, d *render.Deck, g svgGeometry) {
	buf.WriteString("  <g class=\"circuit\">\n")
	for v := 1; v <= d.Vars; v++ {
		cx := g.switchCX(v)
		renderSwitchBody(buf, cx, g)
		fmt.Fprintf(buf, "    <text x=\"%.1f\" y=\"%.1f\" font-size=\"13\" text-anchor=\"middle\" fill=\"%s\">v%d</text>\n",
			cx, g.swCY+g.th.GlyphSize, g.th.LabelColor, v)
	}
	buf.WriteString("  </g>\n")
}

// renderNeutral draws the layer-1 resting states (open levers, dark
// lights). They carry data-layer="1" so stepping to an assignment layer
// replaces them.
func renderNeutral(buf *bytes.Buffer, d *render.Deck, g svgGeometry) {
	buf.WriteString("  <g data-layer=\"1\">\n")
	for v := 1; v <= d.Vars; v++ {
		renderLever(buf, g.switchCX(v), g, leverNeutral)
	}
	for c := 1; c <= d.Clauses; c++ {
		renderLight(buf, g.lightCX(c), g, false)
	}
	buf.WriteString("  </g>\n")
}

// renderLayer draws one reveal group; hidden groups wait for the script to
// step onto them.
func renderLayer(buf *bytes.Buffer, l circuit.Layer, g svgGeometry, visible bool) {
	if visible {
		fmt.Fprintf(buf, "  <g data-layer=\"%d\">\n", l.Ordinal)
	} else {
		fmt.Fprintf(buf, "  <g data-layer=\"%d\" style=\"display:none\">\n", l.Ordinal)
	}
	for _, s := range l.Switches {
		pos := leverOff
		if s.On {
			pos = leverOn
		}
		renderLever(buf, g.switchCX(s.Variable), g, pos)
	}
	for i, on := range l.Lights {
		renderLight(buf, g.lightCX(i+1), g, on)
	}
	buf.WriteString("  </g>\n")
}

type leverPosition int

const (
	leverNeutral leverPosition = iota
	leverOn
	leverOff
)

func renderSwitchBody(buf *bytes.Buffer, cx float64, g svgGeometry) {
	s := g.th.GlyphSize
	fmt.Fprintf(buf, "    <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"4\" fill=\"none\" stroke=\"%s\" stroke-width=\"2\"/>\n",
		cx-s/2, g.swCY-s/4, s, s/2, g.th.SwitchColor)
}

// renderLever draws the switch lever: up and touching for on, dropped open
// for off, flat dashed while no assignment is shown.
func renderLever(buf *bytes.Buffer, cx float64, g svgGeometry, pos leverPosition) {
	s := g.th.GlyphSize
	x1, y1 := cx-s/2, g.swCY
	var x2, y2 float64
	dash := ""
	switch pos {
	case leverOn:
		x2, y2 = cx+s/2, g.swCY
	case leverOff:
		x2, y2 = cx+s*0.35, g.swCY+s*0.3
	default:
		x2, y2 = cx+s/2, g.swCY
		dash = " stroke-dasharray=\"3 3\""
	}
	fmt.Fprintf(buf, "    <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"3\" stroke-linecap=\"round\"%s/>\n",
		x1, y1, x2, y2, g.th.SwitchColor, dash)
}

func renderLight(buf *bytes.Buffer, cx float64, g svgGeometry, on bool) {
	fill := g.th.OffColor
	if on {
		fill = g.th.OnColor
	}
	fmt.Fprintf(buf, "    <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\" stroke=\"%s\" stroke-width=\"1.5\"/>\n",
		cx, g.lightCY, g.th.GlyphSize/2, fill, g.th.LabelColor)
}
