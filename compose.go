package pie

// minVisibleSpan is the smallest section span, in degrees, that is still
// rendered. Narrower spans produce degenerate path artifacts and are
// suppressed instead.
const minVisibleSpan = 0.1

// Compose renders the chart into a fresh Canvas. The draw order is a hard
// requirement: background ring, section arcs, divider overlays, cleanup
// circles, center text. Later primitives visually occlude earlier ones.
func (c *Chart) Compose() *Canvas {
	dims := c.dims
	center := dims.Radius
	ringRadius := dims.Radius - dims.Width/2

	cv := &Canvas{Size: c.Size()}

	cv.append(Arc{
		Center:      center,
		Radius:      ringRadius,
		StartAngle:  0,
		ArcAngle:    360,
		Color:       c.backgroundColor,
		StrokeWidth: dims.Width,
		Cap:         StrokeCapButt,
	})

	geometries := c.Layout()
	round := c.strokeCap == StrokeCapRound
	for _, g := range geometries {
		start, span := g.StartAngle, g.ArcAngle
		if round {
			// Leave a visual gap before each section; the divider pass
			// fills it with rounded caps.
			start += dims.DividerSize
			span -= dims.DividerSize
		}
		if span < minVisibleSpan {
			continue
		}
		cv.append(Arc{
			Center:      center,
			Radius:      ringRadius,
			StartAngle:  start,
			ArcAngle:    span,
			Color:       g.Color,
			StrokeWidth: dims.Width,
			Cap:         c.strokeCap,
		})
	}

	if c.dividersActive(geometries) {
		c.composeDividers(cv, geometries)
		c.composeCleanup(cv)
	}

	if c.showCenterText {
		c.composeCenterText(cv)
	}
	return cv
}

// dividersActive reports whether the divider and cleanup passes run: round
// caps requested, more than one valid section, and a positive divider size.
func (c *Chart) dividersActive(geometries []SectionGeometry) bool {
	return c.strokeCap == StrokeCapRound &&
		len(geometries) > 1 &&
		c.dims.DividerSize > 0
}

// composeCenterText appends the optional value and label overlay, centered
// in the donut hole.
func (c *Chart) composeCenterText(cv *Canvas) {
	center := c.dims.Radius
	if c.centerValue != "" {
		y := center
		if c.centerLabel == "" {
			// Single line: drop the baseline for optical centering.
			y += c.valueFontSize * 0.35
		}
		cv.append(Label{
			Pos:      Pt(center, y),
			Text:     c.centerValue,
			FontSize: c.valueFontSize,
			Color:    c.centerTextColor,
		})
	}
	if c.centerLabel != "" {
		cv.append(Label{
			Pos:      Pt(center, center+c.labelFontSize*1.4),
			Text:     c.centerLabel,
			FontSize: c.labelFontSize,
			Color:    c.centerTextColor,
		})
	}
}
