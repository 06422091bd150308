package tromp

// Transform maps diagram units to viewport pixels: p*Scale + Offset.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Apply maps a diagram point into the viewport.
func (t Transform) Apply(p Point) Point {
	return Point{X: p.X*t.Scale + t.OffsetX, Y: p.Y*t.Scale + t.OffsetY}
}

// Fit scales d to a width x height viewport, leaving reserved pixels free on the right
// for the label. Diagrams are shrunk to fit but never enlarged, and are centred in the
// remaining space.
func Fit(d Diagram, width, height, reserved float64) Transform {
	right := d.Rightmost().X
	bottom := d.Bottommost().Y
	avail := width - reserved
	scale := 1.0
	if right > 0 {
		scale = min(scale, avail/right)
	}
	if bottom > 0 {
		scale = min(scale, height/bottom)
	}
	return Transform{
		Scale:   scale,
		OffsetX: (avail - right*scale) / 2,
		OffsetY: (height - bottom*scale) / 2,
	}
}
