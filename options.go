package pie

// Option configures a Chart during creation.
// Use functional options to customize chart behavior.
//
// Example:
//
//	// Plain pie
//	chart := pie.New(100, pie.WithSections(sections))
//
//	// Donut with rounded dividers
//	chart := pie.New(100,
//	    pie.WithSections(sections),
//	    pie.WithInnerRadius(70),
//	    pie.WithStrokeCap(pie.StrokeCapRound),
//	    pie.WithDividerSize(4),
//	)
type Option func(*Chart)

// WithSections sets the ordered section list. Invalid entries (non-finite
// or non-positive percentage, empty color) are dropped during layout.
func WithSections(sections []Section) Option {
	return func(c *Chart) {
		c.sections = sections
	}
}

// WithInnerRadius sets the donut hole radius. It is floored at 0 and capped
// strictly below the outer radius; 0 renders a full pie.
func WithInnerRadius(r float64) Option {
	return func(c *Chart) {
		c.dims.InnerRadius = r
	}
}

// WithBackgroundColor sets the ring background and cleanup color.
// The default is white.
func WithBackgroundColor(color string) Option {
	return func(c *Chart) {
		if color != "" {
			c.backgroundColor = color
		}
	}
}

// WithStrokeCap sets the section endpoint shape. StrokeCapRound enables
// rounded divider rendering between adjacent sections.
func WithStrokeCap(mode StrokeCap) Option {
	return func(c *Chart) {
		c.strokeCap = mode
	}
}

// WithDividerSize sets the gap between adjacent sections, in degrees.
// It is floored at 0 and only takes effect with StrokeCapRound.
func WithDividerSize(size float64) Option {
	return func(c *Chart) {
		c.dims.DividerSize = size
	}
}

// WithCenterText enables the center overlay with a value line and an
// optional label line below it.
func WithCenterText(value, label string) Option {
	return func(c *Chart) {
		c.showCenterText = true
		c.centerValue = value
		c.centerLabel = label
	}
}

// WithCenterTextColor overrides the center text color. Without this option
// the color is chosen from the background luminance.
func WithCenterTextColor(color string) Option {
	return func(c *Chart) {
		c.centerTextColor = color
	}
}

// WithFontSizes overrides the derived center text font sizes. Non-positive
// values keep the defaults (0.5 and 0.2 times the radius).
func WithFontSizes(value, label float64) Option {
	return func(c *Chart) {
		c.valueFontSize = value
		c.labelFontSize = label
	}
}
