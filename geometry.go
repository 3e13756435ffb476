package pie

import (
	"math"
	"strconv"
	"strings"
)

const (
	// fullCircleSpan is the span, in degrees, at which an arc is treated as
	// a complete circle. A single SVG arc command cannot encode a 360 degree
	// sweep, and spans this close to full already render as closed circles.
	fullCircleSpan = 359.9

	// degenerateArcPath is the placeholder emitted when arc inputs are not
	// finite. A bare move draws nothing.
	degenerateArcPath = "M0,0"
)

// PolarToCartesian converts a polar coordinate on a circle centered at
// (center, center) to a Cartesian point. The angle is in degrees, 0 points
// up (12 o'clock) and angles increase clockwise. Non-finite input yields
// Point{0, 0} with a warning log instead of propagating NaN into drawing
// primitives.
func PolarToCartesian(center, radius, angle float64) Point {
	if !isFinite(center) || !isFinite(radius) || !isFinite(angle) {
		Logger().Warn("non-finite polar input",
			"center", center, "radius", radius, "angle", angle)
		return Point{}
	}
	rad := (angle - 90) * math.Pi / 180
	return Point{
		X: center + radius*math.Cos(rad),
		Y: center + radius*math.Sin(rad),
	}
}

// DescribeArc builds an SVG path string for an arc of the circle centered at
// (center, center), beginning at startAngle and sweeping arcSpan degrees
// clockwise.
//
// Degenerate inputs never panic: non-finite values yield a placeholder path
// with a warning log, and arcSpan <= 0 yields a zero-length move to the
// start point. Spans of fullCircleSpan degrees or more are emitted as two
// concatenated half-circle arc commands, since a single arc command cannot
// represent a full 360 degree sweep.
func DescribeArc(center, radius, startAngle, arcSpan float64) string {
	if !isFinite(center) || !isFinite(radius) || !isFinite(startAngle) || !isFinite(arcSpan) {
		Logger().Warn("non-finite arc input",
			"center", center, "radius", radius,
			"startAngle", startAngle, "arcSpan", arcSpan)
		return degenerateArcPath
	}

	start := PolarToCartesian(center, radius, startAngle)
	if arcSpan <= 0 {
		return "M" + fmtCoord(start.X) + "," + fmtCoord(start.Y)
	}

	var b strings.Builder
	b.WriteString("M" + fmtCoord(start.X) + "," + fmtCoord(start.Y))

	r := fmtCoord(radius)
	if arcSpan >= fullCircleSpan {
		// Full-circle approximation: two 180 degree segments ending back at
		// the start point.
		mid := PolarToCartesian(center, radius, startAngle+180)
		b.WriteString(" A" + r + "," + r + " 0 1 1 " + fmtCoord(mid.X) + "," + fmtCoord(mid.Y))
		b.WriteString(" A" + r + "," + r + " 0 1 1 " + fmtCoord(start.X) + "," + fmtCoord(start.Y))
		return b.String()
	}

	end := PolarToCartesian(center, radius, startAngle+arcSpan)
	largeArc := "0"
	if arcSpan > 180 {
		largeArc = "1"
	}
	b.WriteString(" A" + r + "," + r + " 0 " + largeArc + " 1 " + fmtCoord(end.X) + "," + fmtCoord(end.Y))
	return b.String()
}

// ArcSpan maps a section percentage to its arc span in degrees:
// min(percentage/100*360, 360), clamped at zero. NaN and negative
// percentages map to 0.
func ArcSpan(percentage float64) float64 {
	if math.IsNaN(percentage) || percentage <= 0 {
		return 0
	}
	return math.Min(percentage/100*360, 360)
}

// fmtCoord formats a coordinate for path output, rounded to three decimals
// with trailing zeros dropped.
func fmtCoord(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		// Avoid "-0" from tiny negative rounding artifacts.
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
