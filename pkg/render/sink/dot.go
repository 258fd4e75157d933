package sink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mpelleau/cnf2lightswitch/pkg/render"
)

// ToDOT converts the static circuit to Graphviz DOT format: lights ranked on
// top, switches below, one edge per wire. Positive wires are solid, negative
// ones dashed; the routed side is kept as an edge attribute so the picture
// can be reproduced from the DOT alone. Layers are not represented; this is
// a wiring overview, not a slide deck.
func ToDOT(d *render.Deck) string {
	var buf bytes.Buffer
	buf.WriteString("graph circuit {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("\n")

	buf.WriteString("  { rank=source;\n")
	for c := 1; c <= d.Clauses; c++ {
		fmt.Fprintf(&buf, "    c%d [shape=circle, style=filled, fillcolor=lightyellow, label=\"c%d\"];\n", c, c)
	}
	buf.WriteString("  }\n")

	buf.WriteString("  { rank=sink;\n")
	for v := 1; v <= d.Vars; v++ {
		fmt.Fprintf(&buf, "    v%d [shape=box, style=rounded, label=\"v%d\"];\n", v, v)
	}
	buf.WriteString("  }\n\n")

	for _, w := range d.Wires {
		style := "solid"
		if !w.Positive {
			style = "dashed"
		}
		fmt.Fprintf(&buf, "  c%d -- v%d [style=%s, side=%q];\n", w.Clause, w.Variable, style, w.Side)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderDOT(dot, graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderDOT(dot, graphviz.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderDOT(dot string, format graphviz.Format, buf *bytes.Buffer) error {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites Graphviz's point-based svg element into a plain
// zero-origin viewBox so browsers size the picture consistently.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
