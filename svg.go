package pie

import (
	"fmt"
	"io"
	"strings"
)

// xmlEscaper covers the five entities needed in attribute values and text
// content.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// SVG serializes the canvas to a standalone SVG document.
func (cv *Canvas) SVG() string {
	var b strings.Builder
	cv.writeSVG(&b)
	return b.String()
}

// WriteSVG writes the canvas as a standalone SVG document.
func (cv *Canvas) WriteSVG(w io.Writer) error {
	var b strings.Builder
	cv.writeSVG(&b)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func (cv *Canvas) writeSVG(b *strings.Builder) {
	size := fmtCoord(cv.Size)
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		size, size, size, size)
	b.WriteByte('\n')
	for _, n := range cv.Nodes {
		switch e := n.(type) {
		case Arc:
			fmt.Fprintf(b, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="%s"/>`,
				e.Path(), xmlEscaper.Replace(NormalizeColor(e.Color)),
				fmtCoord(e.StrokeWidth), e.Cap)
		case Circle:
			fmt.Fprintf(b, `  <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
				fmtCoord(e.Center), fmtCoord(e.Center), fmtCoord(e.Radius),
				xmlEscaper.Replace(NormalizeColor(e.Color)), fmtCoord(e.StrokeWidth))
		case Label:
			fmt.Fprintf(b, `  <text x="%s" y="%s" text-anchor="middle" font-family="sans-serif" font-size="%s" fill="%s">%s</text>`,
				fmtCoord(e.Pos.X), fmtCoord(e.Pos.Y), fmtCoord(e.FontSize),
				xmlEscaper.Replace(NormalizeColor(e.Color)), xmlEscaper.Replace(e.Text))
		}
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")
}
