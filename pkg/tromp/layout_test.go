package tromp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vic/lambdaviz/pkg/church"
	"github.com/vic/lambdaviz/pkg/lambda"
)

func TestLayoutIdentity(t *testing.T) {
	d := Layout(lambda.MustParse("λx.x"))
	want := []Line{
		{Origin: Point{X: 10, Y: 0}, Length: 10, Axis: Vertical},
		{Origin: Point{X: 0, Y: 0}, Length: 20, Axis: Horizontal},
	}
	checkLines(t, d, want)
	if got := d.Rightmost(); got != (Point{X: 20, Y: 0}) {
		t.Errorf("rightmost %v", got)
	}
	if got := d.Bottommost(); got != (Point{X: 10, Y: 10}) {
		t.Errorf("bottommost %v", got)
	}
}

func TestLayoutApplication(t *testing.T) {
	d := Layout(lambda.MustParse("(λx.x)(λy.y)"))
	want := []Line{
		{Origin: Point{X: 10, Y: 0}, Length: 10, Axis: Vertical},
		{Origin: Point{X: 0, Y: 0}, Length: 20, Axis: Horizontal},
		{Origin: Point{X: 40, Y: 0}, Length: 10, Axis: Vertical},
		{Origin: Point{X: 30, Y: 0}, Length: 20, Axis: Horizontal},
		{Origin: Point{X: 10, Y: 10}, Length: 20, Axis: Vertical},
		{Origin: Point{X: 40, Y: 10}, Length: 10, Axis: Vertical},
		{Origin: Point{X: 10, Y: 20}, Length: 30, Axis: Horizontal},
	}
	checkLines(t, d, want)
	if got := d.Rightmost(); got.X != 50 {
		t.Errorf("rightmost %v", got)
	}
	if got := d.Bottommost(); got != (Point{X: 10, Y: 30}) {
		t.Errorf("bottommost %v", got)
	}
}

func TestLayoutNestedBinders(t *testing.T) {
	// x is bound by the outer bar, so its stalk starts at depth 0 and runs past
	// the inner bar down to depth 20.
	d := Layout(lambda.MustParse("λx.λy.x"))
	want := []Line{
		{Origin: Point{X: 10, Y: 0}, Length: 20, Axis: Vertical},
		{Origin: Point{X: 0, Y: 10}, Length: 20, Axis: Horizontal},
		{Origin: Point{X: 0, Y: 0}, Length: 20, Axis: Horizontal},
	}
	checkLines(t, d, want)
}

func TestLayoutStalksFollowApplication(t *testing.T) {
	// both stalks start at their binder's depth, x comes from the application shift
	d := Layout(lambda.MustParse("λx.λy.(y)(x)"))
	want := []Line{
		{Origin: Point{X: 10, Y: 10}, Length: 10, Axis: Vertical},
		{Origin: Point{X: 30, Y: 0}, Length: 20, Axis: Vertical},
		{Origin: Point{X: 10, Y: 20}, Length: 20, Axis: Vertical},
		{Origin: Point{X: 30, Y: 20}, Length: 10, Axis: Vertical},
		{Origin: Point{X: 10, Y: 30}, Length: 20, Axis: Horizontal},
		{Origin: Point{X: 0, Y: 10}, Length: 40, Axis: Horizontal},
		{Origin: Point{X: 0, Y: 0}, Length: 40, Axis: Horizontal},
	}
	checkLines(t, d, want)
}

func TestLayoutFreeVariable(t *testing.T) {
	d := Layout(lambda.MustParse("λy.x"))
	if len(d.Lines) != 2 {
		t.Fatalf("got %d lines", len(d.Lines))
	}
	stalk := d.Lines[0]
	if stalk.Origin.Y != 0 || stalk.Length != 10 {
		t.Fatalf("free variable stalk %+v", stalk)
	}
}

func TestLayoutLineCount(t *testing.T) {
	inputs := []string{
		"x",
		"λx.x",
		"(a)(b)",
		"λf.λx.(f)((f)(x))",
		church.PredText,
		church.YText,
	}
	for _, input := range inputs {
		term := lambda.MustParse(input)
		var vars, abs, apps int
		countKinds(term, &vars, &abs, &apps)
		d := Layout(term)
		if want := vars + abs + 3*apps; len(d.Lines) != want {
			t.Errorf("%s: %d lines, want %d", input, len(d.Lines), want)
		}
	}
}

func TestLayoutExtentsGrowWithNumerals(t *testing.T) {
	prev := Layout(church.Numeral(0))
	for n := 1; n <= 12; n++ {
		d := Layout(church.Numeral(n))
		if d.Rightmost().X <= prev.Rightmost().X {
			t.Fatalf("numeral %d is not wider than %d", n, n-1)
		}
		if d.Bottommost().Y <= prev.Bottommost().Y {
			t.Fatalf("numeral %d is not taller than %d", n, n-1)
		}
		for _, line := range d.Lines {
			if line.Length < 0 || line.Origin.X < 0 || line.Origin.Y < 0 {
				t.Fatalf("numeral %d has line %+v", n, line)
			}
		}
		prev = d
	}
}

func TestPassthroughBindCopies(t *testing.T) {
	x := lambda.Ident{Base: 'x'}
	y := lambda.Ident{Base: 'y'}
	base := Top().Bind(x)
	left := base.Bind(y)
	if _, ok := base.binders[y]; ok {
		t.Fatal("binding in a child leaked into the parent")
	}
	if left.Depth() != 2*Padding || base.Depth() != Padding {
		t.Fatalf("depths %v %v", base.Depth(), left.Depth())
	}
}

func TestShiftAndMerge(t *testing.T) {
	d := Layout(lambda.MustParse("λx.x"))
	shifted := d.Shift(Point{X: 5, Y: 7})
	if d.Lines[0].Origin != (Point{X: 10, Y: 0}) {
		t.Fatal("shift modified its receiver")
	}
	if shifted.Lines[0].Origin != (Point{X: 15, Y: 7}) {
		t.Fatalf("shifted origin %v", shifted.Lines[0].Origin)
	}
	merged := d.Merge(shifted)
	if len(merged.Lines) != 4 || merged.Lines[2] != shifted.Lines[0] {
		t.Fatalf("merge order wrong: %+v", merged.Lines)
	}
	if (Diagram{}).Rightmost() != (Point{}) {
		t.Fatal("empty diagram should report the origin")
	}
}

func TestFit(t *testing.T) {
	small := Layout(lambda.MustParse("λx.x")) // 20 wide, 10 tall
	tr := Fit(small, 100, 100, 0)
	if tr.Scale != 1 || tr.OffsetX != 40 || tr.OffsetY != 45 {
		t.Fatalf("small diagram transform %+v", tr)
	}

	wide := Diagram{Lines: []Line{
		{Origin: Point{}, Length: 400, Axis: Horizontal},
		{Origin: Point{}, Length: 100, Axis: Vertical},
	}}
	tr = Fit(wide, 200, 200, 0)
	if tr.Scale != 0.5 || tr.OffsetX != 0 || tr.OffsetY != 75 {
		t.Fatalf("wide diagram transform %+v", tr)
	}
	if p := tr.Apply(Point{X: 400, Y: 100}); p != (Point{X: 200, Y: 125}) {
		t.Fatalf("apply %v", p)
	}

	tr = Fit(wide, 300, 200, 100)
	if tr.Scale != 0.5 || tr.OffsetX != 0 {
		t.Fatalf("reserved space ignored: %+v", tr)
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	d := Layout(lambda.MustParse("(λx.x)(λy.y)"))
	if err := WriteSVG(&buf, d, SVGOptions{Label: "(λx.x)(λy.y) <id>"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(out, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if n := strings.Count(out, "<line "); n != len(d.Lines) {
		t.Fatalf("%d line elements, want %d", n, len(d.Lines))
	}
	if !strings.Contains(out, "&lt;id&gt;") {
		t.Fatal("label not escaped")
	}
}

func checkLines(t *testing.T, d Diagram, want []Line) {
	t.Helper()
	if len(d.Lines) != len(want) {
		t.Fatalf("got %d lines %+v, want %d", len(d.Lines), d.Lines, len(want))
	}
	for i := range want {
		if d.Lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, d.Lines[i], want[i])
		}
	}
}

func countKinds(t lambda.Term, vars, abs, apps *int) {
	switch t.Kind() {
	case lambda.KindVar:
		*vars++
	case lambda.KindAbs:
		*abs++
	case lambda.KindApp:
		*apps++
	}
	for _, c := range t.Children() {
		countKinds(c, vars, abs, apps)
	}
}
