package reduction

import (
	"context"
	"errors"
	"testing"

	"github.com/vic/lambdaviz/pkg/lambda"
)

func TestStepIdentity(t *testing.T) {
	term := lambda.MustParse("(λx.x)(λy.y)")

	next, progressed := Step(term)
	if !progressed {
		t.Fatal("expected progress on a redex")
	}
	if next.String() != "λy.y" {
		t.Fatalf("got %s, want λy.y", next)
	}

	again, progressed := Step(next)
	if progressed {
		t.Fatal("normal form must not progress")
	}
	if !lambda.Equal(again, next) {
		t.Fatalf("fixed point changed: %s", again)
	}
}

func TestStepContractsSiblingsTogether(t *testing.T) {
	term := lambda.MustParse("((λx.x)(a))((λy.y)(b))")
	next, n := step(term)
	if n != 2 {
		t.Fatalf("contracted %d redexes, want 2", n)
	}
	if next.String() != "(a)(b)" {
		t.Fatalf("got %s", next)
	}
}

func TestStepOneRedexPerPath(t *testing.T) {
	// The inner redex sits under the root redex and must wait for the next step.
	term := lambda.MustParse("(λx.x)((λy.y)(z))")
	next, n := step(term)
	if n != 1 {
		t.Fatalf("contracted %d redexes, want 1", n)
	}
	if next.String() != "(λy.y)(z)" {
		t.Fatalf("got %s", next)
	}
}

func TestStepSharesUntouchedSubtrees(t *testing.T) {
	term := lambda.MustParse("(a)(λz.z)")
	next, progressed := Step(term)
	if progressed {
		t.Fatal("no redex here")
	}
	if next != term {
		t.Fatal("a normal form should be returned as is")
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		target string
		repl   string
		want   string
	}{
		{"plain", "(x)(y)", "x", "z", "(z)(y)"},
		{"untouched", "λy.y", "x", "z", "λy.y"},
		{"generation distinguishes", "(x)(x1)", "x", "z", "(z)(x1)"},
		{"shadowing binder moves", "λx.x", "x", "y", "λx1.x1"},
		{"shadowing skips used band", "λx.(x)(x1)", "x", "y", "λx2.(x2)(x1)"},
		{"capture avoided", "λy.(x)(y)", "x", "y", "λy1.(y)(y1)"},
		{"capture avoided past used band", "λy.(x)(y1)", "x", "y", "λy2.(y)(y1)"},
		{"no capture risk keeps name", "λy.y", "x", "y", "λy.y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := lambda.Name(tt.target)
			if err != nil {
				t.Fatal(err)
			}
			got := Substitute(lambda.MustParse(tt.term), target, lambda.MustParse(tt.repl))
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNormalizeAvoidsCapture(t *testing.T) {
	// K y z must be y, the free y, not z.
	normal, err := Normalize(lambda.MustParse("((λx.λy.x)(y))(z)"))
	if err != nil {
		t.Fatal(err)
	}
	if normal.String() != "y" {
		t.Fatalf("got %s, want y", normal)
	}
}

func TestTrace(t *testing.T) {
	term := lambda.MustParse("((λx.λy.x)(a))(b)")
	trace, err := Trace(term)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"((λx.λy.x)(a))(b)", "(λy.a)(b)", "a"}
	if len(trace) != len(want) {
		t.Fatalf("trace has %d terms: %v", len(trace), trace)
	}
	for i, term := range trace {
		if term.String() != want[i] {
			t.Errorf("trace[%d] = %s, want %s", i, term, want[i])
		}
	}
}

func TestFixedPointIsIdempotent(t *testing.T) {
	inputs := []string{
		"λx.x",
		"(λf.λx.(f)((f)(x)))(λy.y)",
		"((λx.λy.(y)(x))(a))(λz.z)",
		"(λx.(x)(x))(λy.y)",
	}
	for _, input := range inputs {
		normal, err := Normalize(lambda.MustParse(input))
		if err != nil {
			t.Fatalf("%s: %v", input, err)
		}
		if !IsNormal(normal) {
			t.Fatalf("%s: %s still has a redex", input, normal)
		}
		for range 3 {
			next, progressed := Step(normal)
			if progressed || !lambda.Equal(next, normal) {
				t.Fatalf("%s: step moved the fixed point %s to %s", input, normal, next)
			}
		}
	}
}

func TestReduceStepLimit(t *testing.T) {
	omega := lambda.MustParse("(λx.(x)(x))(λx.(x)(x))")
	res, err := Reducer{MaxSteps: 50, KeepTrace: true}.Reduce(context.Background(), omega)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v, want ErrStepLimit", err)
	}
	if res.Steps != 50 {
		t.Fatalf("performed %d steps", res.Steps)
	}
	if len(res.Trace) != 51 {
		t.Fatalf("trace has %d terms", len(res.Trace))
	}
	if !lambda.AlphaEqual(res.Term, omega) {
		t.Fatalf("omega should reduce to itself, got %s", res.Term)
	}
}

func TestReduceSizeLimit(t *testing.T) {
	growing := lambda.MustParse("(λx.((x)(x))(x))(λx.((x)(x))(x))")
	res, err := Reducer{MaxSize: 200}.Reduce(context.Background(), growing)
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatalf("got %v, want ErrSizeLimit", err)
	}
	if res.PeakSize <= 200 {
		t.Fatalf("peak size %d did not pass the bound", res.PeakSize)
	}
}

func TestReduceSizeLimitSharedTerm(t *testing.T) {
	var shared lambda.Term = lambda.V("y")
	for range 60 {
		shared = lambda.A(shared, shared)
	}

	_, err := Reducer{MaxSize: 1000}.Reduce(context.Background(), shared)
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatalf("got %v, want ErrSizeLimit", err)
	}

	// one contraction duplicates the shared argument
	double := lambda.MustParse("λx.(x)(x)")
	var arg lambda.Term = lambda.V("y")
	for range 9 {
		arg = lambda.A(arg, arg)
	}
	res, err := Reducer{MaxSize: 1500}.Reduce(context.Background(), lambda.A(double, arg))
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatalf("got %v, want ErrSizeLimit", err)
	}
	if res.Steps != 1 || res.PeakSize != 1501 {
		t.Fatalf("steps %d, peak %d", res.Steps, res.PeakSize)
	}
}

func TestReduceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Reducer{}.Reduce(ctx, lambda.MustParse("(λx.x)(y)"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestStats(t *testing.T) {
	stats := new(Stats)
	r := Reducer{Stats: stats}
	for _, input := range []string{"(λx.x)(y)", "((λx.x)(a))((λy.y)(b))"} {
		if _, err := r.Reduce(context.Background(), lambda.MustParse(input)); err != nil {
			t.Fatal(err)
		}
	}
	snap := stats.Snapshot()
	if snap.Runs != 2 || snap.Normalized != 2 {
		t.Fatalf("runs %d normalized %d", snap.Runs, snap.Normalized)
	}
	if snap.Steps != 2 || snap.Contractions != 3 {
		t.Fatalf("steps %d contractions %d", snap.Steps, snap.Contractions)
	}
	if snap.PeakSize != 9 {
		t.Fatalf("peak size %d", snap.PeakSize)
	}
}
