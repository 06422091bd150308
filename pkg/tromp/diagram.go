package tromp

// Axis is the direction of a line.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// Point is a position in diagram units; y grows downwards.
type Point struct {
	X, Y float64
}

// Line is an axis-aligned segment starting at Origin.
type Line struct {
	Origin Point
	Length float64
	Axis   Axis
}

// Endpoint returns the far end of the line.
func (l Line) Endpoint() Point {
	if l.Axis == Vertical {
		return Point{X: l.Origin.X, Y: l.Origin.Y + l.Length}
	}
	return Point{X: l.Origin.X + l.Length, Y: l.Origin.Y}
}

// Diagram is an ordered collection of lines.
type Diagram struct {
	Lines []Line
}

// Rightmost returns the endpoint with the largest x (the first one on ties),
// or the origin for an empty diagram.
func (d Diagram) Rightmost() Point {
	var p Point
	for _, line := range d.Lines {
		if end := line.Endpoint(); end.X > p.X {
			p = end
		}
	}
	return p
}

// Bottommost returns the endpoint with the largest y (the first one on ties),
// or the origin for an empty diagram.
func (d Diagram) Bottommost() Point {
	var p Point
	for _, line := range d.Lines {
		if end := line.Endpoint(); end.Y > p.Y {
			p = end
		}
	}
	return p
}

// Shift returns a copy of d translated by v.
func (d Diagram) Shift(v Point) Diagram {
	lines := make([]Line, len(d.Lines))
	for i, line := range d.Lines {
		line.Origin.X += v.X
		line.Origin.Y += v.Y
		lines[i] = line
	}
	return Diagram{Lines: lines}
}

// Merge returns the lines of d followed by the lines of other.
func (d Diagram) Merge(other Diagram) Diagram {
	lines := make([]Line, 0, len(d.Lines)+len(other.Lines))
	lines = append(lines, d.Lines...)
	lines = append(lines, other.Lines...)
	return Diagram{Lines: lines}
}
