// Package pie renders annular (donut/pie) charts as vector graphics.
//
// # Overview
//
// pie is a small presentational component for the GoGPU ecosystem. It turns
// an ordered list of weighted sections plus geometric parameters into arc
// drawing primitives, with optional rounded section dividers and a center
// text overlay. The output is a flat Canvas of primitives that can be
// serialized to SVG or rasterized through a gg drawing context.
//
// # Quick Start
//
//	import "github.com/gogpu/pie"
//
//	chart := pie.New(100,
//	    pie.WithInnerRadius(60),
//	    pie.WithSections([]pie.Section{
//	        {Percentage: 50, Color: "#e74c3c"},
//	        {Percentage: 30, Color: "#3498db"},
//	        {Percentage: 20, Color: "#2ecc71"},
//	    }),
//	)
//
//	svg := chart.Compose().SVG()
//
// # Coordinate System
//
// Angles are in degrees. 0 degrees points up (12 o'clock) and angles
// increase clockwise. The canvas is a 2*radius square with the chart
// centered in it.
//
// # Rendering Model
//
// Rendering is a pure, synchronous transformation: one call to Compose
// produces one Canvas from one set of inputs. Nothing is shared between
// calls, so a Chart may be composed concurrently from multiple goroutines.
package pie

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
