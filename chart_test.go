package pie

import (
	"math"
	"testing"
)

func TestNew_NormalizesDimensions(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		opts   []Option
		want   Dimensions
	}{
		{
			"RadiusFloor",
			5, nil,
			Dimensions{Radius: 10, InnerRadius: 0, Width: 10, DividerSize: 0},
		},
		{
			"NonFiniteRadius",
			math.NaN(), nil,
			Dimensions{Radius: 10, InnerRadius: 0, Width: 10, DividerSize: 0},
		},
		{
			"InnerRadiusCappedBelowRadius",
			100, []Option{WithInnerRadius(150)},
			Dimensions{Radius: 100, InnerRadius: 99, Width: 1, DividerSize: 0},
		},
		{
			"InnerRadiusEqualToRadius",
			100, []Option{WithInnerRadius(100)},
			Dimensions{Radius: 100, InnerRadius: 99, Width: 1, DividerSize: 0},
		},
		{
			"NegativeInnerRadius",
			100, []Option{WithInnerRadius(-20)},
			Dimensions{Radius: 100, InnerRadius: 0, Width: 100, DividerSize: 0},
		},
		{
			"NegativeDividerSize",
			100, []Option{WithDividerSize(-3)},
			Dimensions{Radius: 100, InnerRadius: 0, Width: 100, DividerSize: 0},
		},
		{
			"Donut",
			100, []Option{WithInnerRadius(60), WithDividerSize(4)},
			Dimensions{Radius: 100, InnerRadius: 60, Width: 40, DividerSize: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.radius, tt.opts...).Dimensions()
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got.InnerRadius >= got.Radius {
				t.Errorf("inner radius %v must be strictly below radius %v",
					got.InnerRadius, got.Radius)
			}
		})
	}
}

func TestNew_CanvasSize(t *testing.T) {
	chart := New(75)
	if got := chart.Size(); got != 150 {
		t.Errorf("expected size 150, got %v", got)
	}
	if cv := chart.Compose(); cv.Size != 150 {
		t.Errorf("expected canvas size 150, got %v", cv.Size)
	}
}

func TestNew_CenterTextDefaults(t *testing.T) {
	chart := New(100, WithCenterText("42", "tasks"))
	if chart.valueFontSize != 50 {
		t.Errorf("expected value font size 50, got %v", chart.valueFontSize)
	}
	if chart.labelFontSize != 20 {
		t.Errorf("expected label font size 20, got %v", chart.labelFontSize)
	}
	// Auto text color against the white default background.
	if chart.centerTextColor != "#000000" {
		t.Errorf("expected auto text color #000000, got %q", chart.centerTextColor)
	}
}

func TestNew_CenterTextOnDarkBackground(t *testing.T) {
	chart := New(100,
		WithBackgroundColor("#202020"),
		WithCenterText("42", ""),
	)
	if chart.centerTextColor != "#ffffff" {
		t.Errorf("expected auto text color #ffffff, got %q", chart.centerTextColor)
	}
}

func TestStrokeCap_String(t *testing.T) {
	if got := StrokeCapButt.String(); got != "butt" {
		t.Errorf("expected butt, got %q", got)
	}
	if got := StrokeCapRound.String(); got != "round" {
		t.Errorf("expected round, got %q", got)
	}
}
