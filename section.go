package pie

// Section is one weighted slice of the chart. Percentages are independent:
// they are not required to sum to 100, and the chart simply stops at 360
// degrees when they overshoot.
type Section struct {
	// Percentage is the section weight in percent of the full circle.
	Percentage float64

	// Color is the stroke color, as a hex string or CSS color name.
	Color string
}

// valid reports whether the section survives input filtering: a finite,
// positive percentage and a non-empty color.
func (s Section) valid() bool {
	return isFinite(s.Percentage) && s.Percentage > 0 && s.Color != ""
}

// SectionGeometry is the resolved placement of one valid section: its start
// angle and arc span before any divider shrink is applied. The divider pass
// consumes these as an immutable list, one list per Layout call.
type SectionGeometry struct {
	Percentage float64
	Color      string
	StartAngle float64
	ArcAngle   float64
}

// Layout filters invalid sections and walks the survivors in order,
// accumulating a running start angle from the cumulative percentage. The
// returned geometries are pre-shrink: divider adjustments happen during
// composition, not here. The total allocated span never exceeds 360 degrees.
func (c *Chart) Layout() []SectionGeometry {
	geometries := make([]SectionGeometry, 0, len(c.sections))
	startAngle := 0.0
	for i, s := range c.sections {
		if !s.valid() {
			Logger().Debug("section filtered",
				"index", i, "percentage", s.Percentage, "color", s.Color)
			continue
		}
		remaining := 360 - startAngle
		if remaining <= 0 {
			break
		}
		arcAngle := ArcSpan(s.Percentage)
		if arcAngle > remaining {
			arcAngle = remaining
		}
		geometries = append(geometries, SectionGeometry{
			Percentage: s.Percentage,
			Color:      s.Color,
			StartAngle: startAngle,
			ArcAngle:   arcAngle,
		})
		startAngle += arcAngle
	}
	return geometries
}
