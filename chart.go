package pie

// StrokeCap specifies the shape of section endpoints.
type StrokeCap int

const (
	// StrokeCapButt specifies flat section endpoints. Dividers are not
	// rendered in this mode.
	StrokeCapButt StrokeCap = iota
	// StrokeCapRound specifies rounded section endpoints, rendered as
	// rounded dividers between adjacent sections.
	StrokeCapRound
)

// String returns the SVG stroke-linecap value for the cap.
func (c StrokeCap) String() string {
	if c == StrokeCapRound {
		return "round"
	}
	return "butt"
}

const (
	// minRadius is the floor applied to the outer radius.
	minRadius = 10

	// defaultBackgroundColor is used for the background ring and cleanup
	// strokes when no background is configured.
	defaultBackgroundColor = "#ffffff"
)

// Dimensions is the normalized geometry shared by every rendering step,
// derived once per chart. InnerRadius is always strictly less than Radius.
type Dimensions struct {
	Radius      float64
	InnerRadius float64
	Width       float64
	DividerSize float64
}

// Chart holds the normalized configuration for one annular chart.
// A Chart is immutable after New; rendering methods share no state, so one
// Chart may be composed from multiple goroutines.
type Chart struct {
	dims            Dimensions
	sections        []Section
	backgroundColor string
	strokeCap       StrokeCap
	showCenterText  bool
	centerValue     string
	centerLabel     string
	centerTextColor string
	valueFontSize   float64
	labelFontSize   float64
}

// New creates a chart with the given outer radius. The radius is floored at
// minRadius; non-finite values fall back to the floor with a warning.
func New(radius float64, opts ...Option) *Chart {
	c := &Chart{
		backgroundColor: defaultBackgroundColor,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !isFinite(radius) {
		Logger().Warn("non-finite radius", "radius", radius)
		radius = minRadius
	}
	if radius < minRadius {
		radius = minRadius
	}

	inner := c.dims.InnerRadius
	if !isFinite(inner) || inner < 0 {
		inner = 0
	}
	if inner >= radius {
		inner = radius - 1
	}

	divider := c.dims.DividerSize
	if !isFinite(divider) || divider < 0 {
		divider = 0
	}

	c.dims = Dimensions{
		Radius:      radius,
		InnerRadius: inner,
		Width:       radius - inner,
		DividerSize: divider,
	}

	if c.centerTextColor == "" {
		c.centerTextColor = TextColorFor(c.backgroundColor)
	}
	if c.valueFontSize <= 0 || !isFinite(c.valueFontSize) {
		c.valueFontSize = radius * 0.5
	}
	if c.labelFontSize <= 0 || !isFinite(c.labelFontSize) {
		c.labelFontSize = radius * 0.2
	}
	return c
}

// Dimensions returns the normalized chart geometry.
func (c *Chart) Dimensions() Dimensions {
	return c.dims
}

// Size returns the edge length of the square canvas (2 * radius).
func (c *Chart) Size() float64 {
	return 2 * c.dims.Radius
}
