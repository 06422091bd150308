package tromp

import (
	"bufio"
	"fmt"
	"html"
	"io"
)

// SVGOptions controls WriteSVG.
type SVGOptions struct {
	Width, Height float64 // viewport; zero means the diagram's own extent plus a margin
	Thickness     float64 // line width in diagram units; zero means Padding/2
	Stroke        string  // zero means "white"
	Background    string  // zero means "black"
	Label         string  // optional caption drawn under the diagram
}

// WriteSVG renders d as a standalone SVG document.
func WriteSVG(w io.Writer, d Diagram, opts SVGOptions) error {
	thickness := opts.Thickness
	if thickness == 0 {
		thickness = Padding / 2
	}
	stroke := opts.Stroke
	if stroke == "" {
		stroke = "white"
	}
	background := opts.Background
	if background == "" {
		background = "black"
	}
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		width = d.Rightmost().X + 2*Padding
		height = d.Bottommost().Y + 2*Padding
	}
	labelSpace := 0.0
	if opts.Label != "" {
		labelSpace = 3 * Padding
	}
	tr := Fit(d, width, height-labelSpace, 0)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		width, height, width, height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(background))
	fmt.Fprintf(bw, `<g stroke="%s" stroke-width="%g" stroke-linecap="square">`+"\n",
		html.EscapeString(stroke), thickness*tr.Scale)
	for _, line := range d.Lines {
		from := tr.Apply(line.Origin)
		to := tr.Apply(line.Endpoint())
		fmt.Fprintf(bw, `<line x1="%g" y1="%g" x2="%g" y2="%g"/>`+"\n", from.X, from.Y, to.X, to.Y)
	}
	bw.WriteString("</g>\n")
	if opts.Label != "" {
		fmt.Fprintf(bw, `<text x="%g" y="%g" fill="%s" font-family="monospace" font-size="%g">%s</text>`+"\n",
			Padding, height-Padding, html.EscapeString(stroke), Padding*1.3, html.EscapeString(opts.Label))
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
