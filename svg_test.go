package pie

import (
	"bytes"
	"strings"
	"testing"
)

func testChart() *Chart {
	return New(100,
		WithInnerRadius(60),
		WithSections([]Section{
			{Percentage: 50, Color: "red"},
			{Percentage: 50, Color: "#3498DB"},
		}),
	)
}

func TestCanvas_SVG(t *testing.T) {
	svg := testChart().Compose().SVG()

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="0 0 200 200">`,
		`stroke-linecap="butt"`,
		`stroke-width="40"`,
		// Named and hex colors both normalize to lowercase hex.
		`stroke="#ff0000"`,
		`stroke="#3498db"`,
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("expected SVG to contain %q:\n%s", want, svg)
		}
	}

	if got := strings.Count(svg, "<path"); got != 3 {
		t.Errorf("expected 3 paths (background + 2 sections), got %d", got)
	}
}

func TestCanvas_SVGCenterText(t *testing.T) {
	chart := New(100,
		WithSections([]Section{{Percentage: 50, Color: "red"}}),
		WithCenterText("<50%>", "done & dusted"),
	)
	svg := chart.Compose().SVG()

	for _, want := range []string{
		`text-anchor="middle"`,
		"&lt;50%&gt;",
		"done &amp; dusted",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("expected SVG to contain %q:\n%s", want, svg)
		}
	}
	if strings.Contains(svg, "<50%>") {
		t.Error("expected center text to be escaped")
	}
}

func TestCanvas_SVGCleanupCircles(t *testing.T) {
	chart := New(100,
		WithInnerRadius(60),
		WithSections([]Section{
			{Percentage: 50, Color: "red"},
			{Percentage: 50, Color: "blue"},
		}),
		WithStrokeCap(StrokeCapRound),
		WithDividerSize(4),
	)
	svg := chart.Compose().SVG()

	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 cleanup circles, got %d", got)
	}
	if !strings.Contains(svg, `stroke-linecap="round"`) {
		t.Error("expected round-capped strokes in divider output")
	}
}

func TestCanvas_WriteSVG(t *testing.T) {
	cv := testChart().Compose()

	var buf bytes.Buffer
	if err := cv.WriteSVG(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != cv.SVG() {
		t.Error("expected WriteSVG output to match SVG()")
	}
}
