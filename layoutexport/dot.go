package layoutexport

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/katalvlaran/lgraphlayout/layout"
)

// ToDOT renders r as a Graphviz DOT document. Nodes are drawn as pinned
// boxes at their solved position (pos="x,y!" forces Graphviz to respect
// the layout engine's own coordinates rather than recomputing its own);
// edges follow the solved bend points as a polyline.
func ToDOT(r layout.Result) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range r.Nodes {
		fmt.Fprintf(&buf, "  %q [pos=%q, width=%.3f, height=%.3f];\n",
			nodeLabel(n.ID),
			fmt.Sprintf("%.2f,%.2f!", n.Position.X, n.Position.Y),
			n.Size.W/72, n.Size.H/72)
	}

	buf.WriteString("\n")
	for _, e := range r.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [pos=%q];\n",
			portLabel(e.Source), portLabel(e.Target), bendPos(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(id any) string { return fmt.Sprintf("n%v", id) }
func portLabel(id any) string { return fmt.Sprintf("p%v", id) }

func bendPos(e layout.EdgeResult) string {
	var b bytes.Buffer
	for i, p := range e.Bends {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

// RenderSVG shells out to Graphviz to rasterize a DOT document as SVG.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("layoutexport: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("layoutexport: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("layoutexport: render: %w", err)
	}
	return buf.Bytes(), nil
}
