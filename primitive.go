package pie

// Node represents a single drawing primitive in a composed canvas.
type Node interface {
	isNode()
}

// Arc is a stroked circular arc. Angles are in degrees, 0 up, clockwise.
type Arc struct {
	Center      float64
	Radius      float64
	StartAngle  float64
	ArcAngle    float64
	Color       string
	StrokeWidth float64
	Cap         StrokeCap
}

func (Arc) isNode() {}

// Path returns the SVG path data for the arc.
func (a Arc) Path() string {
	return DescribeArc(a.Center, a.Radius, a.StartAngle, a.ArcAngle)
}

// Circle is a full-circle stroke, used for cleanup masking.
type Circle struct {
	Center      float64
	Radius      float64
	Color       string
	StrokeWidth float64
}

func (Circle) isNode() {}

// Label is a run of text anchored at its horizontal center.
type Label struct {
	Pos      Point
	Text     string
	FontSize float64
	Color    string
}

func (Label) isNode() {}

// Canvas is one composed chart: a square drawing surface with an ordered
// primitive list. Order is significant; later nodes occlude earlier ones.
type Canvas struct {
	Size  float64
	Nodes []Node
}

// append adds nodes to the canvas in draw order.
func (cv *Canvas) append(nodes ...Node) {
	cv.Nodes = append(cv.Nodes, nodes...)
}
