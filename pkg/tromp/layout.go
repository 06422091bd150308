package tromp

import (
	"maps"

	"github.com/vic/lambdaviz/pkg/lambda"
)

// Padding separates binder bars, stalks and application crossbars.
const Padding = 10.0

// Passthrough records, for each identity in scope, the depth of its binder bar, and
// the depth where the next bar goes. Extending it always copies, so sibling subtrees
// never see each other's binders.
//
// Only bar depths are kept, never an x position: a variable's stalk is drawn at x =
// Padding in its own subdiagram and moved into place when applications shift it.
type Passthrough struct {
	binders map[lambda.Ident]float64
	next    float64
}

// Top is the empty passthrough used at the root of a diagram.
func Top() Passthrough {
	return Passthrough{}
}

// Bind returns a copy of p with id bound at the current depth, one Padding deeper.
func (p Passthrough) Bind(id lambda.Ident) Passthrough {
	binders := make(map[lambda.Ident]float64, len(p.binders)+1)
	maps.Copy(binders, p.binders)
	binders[id] = p.next
	return Passthrough{binders: binders, next: p.next + Padding}
}

// Depth returns the depth where the next binder bar would be drawn.
func (p Passthrough) Depth() float64 {
	return p.next
}

// Layout draws the Tromp diagram of t.
func Layout(t lambda.Term) Diagram {
	return Build(t, Top())
}

// Build draws t below the binders recorded in p.
func Build(t lambda.Term, p Passthrough) Diagram {
	switch t := t.(type) {
	case lambda.Var:
		// Free variables hang from the top edge.
		top := p.binders[t.ID]
		return Diagram{Lines: []Line{{
			Origin: Point{X: Padding, Y: top},
			Length: p.next - top,
			Axis:   Vertical,
		}}}

	case lambda.Abs:
		body := Build(t.Body, p.Bind(t.Arg))
		length := body.Rightmost().X
		if _, ok := t.Body.(lambda.Abs); !ok {
			length += Padding
		}
		body.Lines = append(body.Lines, Line{
			Origin: Point{X: 0, Y: p.next},
			Length: length,
			Axis:   Horizontal,
		})
		return body

	case lambda.App:
		fun := Build(t.Fun, p)
		arg := Build(t.Arg, p)
		arg = arg.Shift(Point{X: fun.Rightmost().X + Padding})
		a := fun.Bottommost()
		b := arg.Bottommost()
		cross := max(a.Y, b.Y) + Padding
		d := fun.Merge(arg)
		d.Lines = append(d.Lines,
			Line{Origin: a, Length: cross - a.Y + Padding, Axis: Vertical},
			Line{Origin: b, Length: cross - b.Y, Axis: Vertical},
			Line{Origin: Point{X: a.X, Y: cross}, Length: b.X - a.X, Axis: Horizontal},
		)
		return d
	}
	return Diagram{}
}
