package pie

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Rasterizer draws composed canvases onto a gg drawing context. The context
// is square; canvases are scaled uniformly to fill it.
type Rasterizer struct {
	dc     *gg.Context
	source *text.FontSource
}

// NewRasterizer creates a rasterizer with a size x size pixel context and
// the bundled Go Regular face for labels.
func NewRasterizer(size int) (*Rasterizer, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &Rasterizer{
		dc:     gg.NewContext(size, size),
		source: source,
	}, nil
}

// Draw renders the canvas nodes in order onto the context. Chart degrees
// (0 up, clockwise) are converted to the context's radian convention here;
// the geometry itself is backend-neutral.
func (r *Rasterizer) Draw(cv *Canvas) {
	scale := 1.0
	if cv.Size > 0 {
		scale = float64(r.dc.Width()) / cv.Size
	}

	for _, n := range cv.Nodes {
		switch e := n.(type) {
		case Arc:
			if !isFinite(e.StartAngle) || !isFinite(e.ArcAngle) || e.ArcAngle <= 0 {
				continue
			}
			r.dc.SetHexColor(NormalizeColor(e.Color))
			r.dc.SetLineWidth(e.StrokeWidth * scale)
			r.dc.SetLineCap(lineCap(e.Cap))
			r.dc.DrawArc(e.Center*scale, e.Center*scale, e.Radius*scale,
				radians(e.StartAngle), radians(e.StartAngle+e.ArcAngle))
			r.dc.Stroke()
		case Circle:
			r.dc.SetHexColor(NormalizeColor(e.Color))
			r.dc.SetLineWidth(e.StrokeWidth * scale)
			r.dc.SetLineCap(gg.LineCapButt)
			r.dc.DrawCircle(e.Center*scale, e.Center*scale, e.Radius*scale)
			r.dc.Stroke()
		case Label:
			r.dc.SetHexColor(NormalizeColor(e.Color))
			r.dc.SetFont(r.source.Face(e.FontSize * scale))
			r.dc.DrawStringAnchored(e.Text, e.Pos.X*scale, e.Pos.Y*scale, 0.5, 0)
		}
	}
}

// Image returns the rendered image.
func (r *Rasterizer) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the rendered image to a PNG file.
func (r *Rasterizer) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

// Context exposes the underlying drawing context for callers that compose
// the chart into a larger scene.
func (r *Rasterizer) Context() *gg.Context {
	return r.dc
}

// RenderPNG composes the chart and writes it to path as a PNG at its
// natural size (2 * radius pixels).
func RenderPNG(c *Chart, path string) error {
	rast, err := NewRasterizer(int(c.Size()))
	if err != nil {
		return err
	}
	rast.Draw(c.Compose())
	return rast.SavePNG(path)
}

// radians converts a chart angle (degrees, 0 up, clockwise) to the drawing
// context's convention (radians, 0 right).
func radians(angle float64) float64 {
	return (angle - 90) * math.Pi / 180
}

// lineCap maps the chart cap mode to the toolkit's.
func lineCap(c StrokeCap) gg.LineCap {
	if c == StrokeCapRound {
		return gg.LineCapRound
	}
	return gg.LineCapButt
}
