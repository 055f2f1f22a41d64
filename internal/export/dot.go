// Package export renders the configured network topology as Graphviz DOT
// or SVG. The export shows the static structure only; animation state never
// leaves the window.
package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// Layer fill colors: input, hidden, output.
const (
	fillInput  = "#9ecbff"
	fillHidden = "#7a9fe0"
	fillOutput = "#c59eff"
)

// ToDOT converts a layer configuration to Graphviz DOT. Every node and
// every connection between adjacent layers appears exactly once.
func ToDOT(layers []int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph network {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, label=\"\", width=0.3, fixedsize=true];\n")
	buf.WriteString("  edge [color=\"#5a82c8\", arrowsize=0.4, penwidth=0.6];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	counts := make([]int, len(layers))
	for li, count := range layers {
		if count < 1 {
			count = 1
		}
		counts[li] = count

		fill := fillHidden
		switch li {
		case 0:
			fill = fillInput
		case len(layers) - 1:
			fill = fillOutput
		}
		for ni := 0; ni < count; ni++ {
			fmt.Fprintf(&buf, "  %q [fillcolor=%q];\n", nodeID(li, ni), fill)
		}

		// Pin each layer into its own column.
		buf.WriteString("  { rank=same;")
		for ni := 0; ni < count; ni++ {
			fmt.Fprintf(&buf, " %q;", nodeID(li, ni))
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("\n")
	for li := 0; li+1 < len(counts); li++ {
		for a := 0; a < counts[li]; a++ {
			for b := 0; b < counts[li+1]; b++ {
				fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(li, a), nodeID(li+1, b))
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(li, ni int) string {
	return fmt.Sprintf("L%dN%d", li, ni)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
