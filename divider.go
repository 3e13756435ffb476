package pie

// Rounded dividers are an approximation built from overlapping narrow
// round-capped strokes, not a true rounded-cap primitive. The tuning
// constants below are empirical rendering fudge factors carried over from
// the original design; they are not derived geometry and changing them
// changes the rendered caps.
const (
	// dividerCapOffset is the angular pad, in degrees, added to the divider
	// size when placing the background overlay strokes.
	dividerCapOffset = 6

	// dividerCapPasses is the number of overlay passes added on top of the
	// divider size.
	dividerCapPasses = 2

	// dividerStrokeSpan is the span of each individual overlay stroke.
	dividerStrokeSpan = 1
)

// composeDividers appends the rounded divider overlays for each section
// boundary. Per pass it emits two tiny arcs: a background-colored stroke
// erasing the neighbor's tail, then a section-colored round-capped stroke
// building up the rounded edge.
func (c *Chart) composeDividers(cv *Canvas, geometries []SectionGeometry) {
	dims := c.dims
	center := dims.Radius
	ringRadius := dims.Radius - dims.Width/2
	passes := int(dims.DividerSize) + dividerCapPasses

	for _, g := range geometries {
		for i := 0; i < passes; i++ {
			overlayStart := g.StartAngle - (dims.DividerSize + dividerCapOffset) + float64(i)
			capStart := g.StartAngle - dims.DividerSize + float64(i)
			cv.append(
				Arc{
					Center:      center,
					Radius:      ringRadius,
					StartAngle:  overlayStart,
					ArcAngle:    dividerStrokeSpan,
					Color:       c.backgroundColor,
					StrokeWidth: dims.Width,
					Cap:         StrokeCapRound,
				},
				Arc{
					Center:      center,
					Radius:      ringRadius,
					StartAngle:  capStart,
					ArcAngle:    dividerStrokeSpan,
					Color:       g.Color,
					StrokeWidth: dims.Width,
					Cap:         StrokeCapRound,
				},
			)
		}
	}
}

// composeCleanup appends two full-circle background strokes masking the
// radial overshoot left by the divider approximation, one on the outer ring
// edge and one on the inner. Skipped entirely for very large ring widths,
// where the strokes would invade the ring itself.
func (c *Chart) composeCleanup(cv *Canvas) {
	dims := c.dims
	if dims.Width >= dims.Radius {
		return
	}
	center := dims.Radius
	cleanupWidth := dims.DividerSize + float64(dividerCapPasses)

	cv.append(Circle{
		Center:      center,
		Radius:      dims.Radius + cleanupWidth/2,
		Color:       c.backgroundColor,
		StrokeWidth: cleanupWidth,
	})
	if dims.InnerRadius > cleanupWidth/2 {
		cv.append(Circle{
			Center:      center,
			Radius:      dims.InnerRadius - cleanupWidth/2,
			Color:       c.backgroundColor,
			StrokeWidth: cleanupWidth,
		})
	}
}
