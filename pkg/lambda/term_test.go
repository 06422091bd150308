package lambda

import "testing"

func TestChildrenCounts(t *testing.T) {
	tests := []struct {
		term Term
		kind Kind
		n    int
	}{
		{V("x"), KindVar, 0},
		{L("x", V("x")), KindAbs, 1},
		{A(V("f"), V("x")), KindApp, 2},
	}
	for _, tt := range tests {
		if tt.term.Kind() != tt.kind {
			t.Errorf("%s: kind %v, want %v", tt.term, tt.term.Kind(), tt.kind)
		}
		if got := len(tt.term.Children()); got != tt.n {
			t.Errorf("%s: %d children, want %d", tt.term, got, tt.n)
		}
	}
}

func TestIdentEquality(t *testing.T) {
	if V("x").ID != (Ident{Base: 'x'}) {
		t.Fatal("x should have generation 0")
	}
	if V("x").ID == V("x1").ID {
		t.Fatal("x and x1 must differ")
	}
	if V("x1").ID != (Ident{Base: 'x'}).WithGen(1) {
		t.Fatal("WithGen should only change the generation")
	}
	id, ok := IdentOf(L("y7", V("y7")))
	if !ok || id.String() != "y7" {
		t.Fatalf("IdentOf = %v %v", id, ok)
	}
	if _, ok := IdentOf(A(V("a"), V("b"))); ok {
		t.Fatal("applications carry no identity")
	}
}

func TestEqualIsStructural(t *testing.T) {
	a := L("x", V("x"))
	b := L("y", V("y"))
	if Equal(a, b) {
		t.Fatal("Equal must not apply alpha-equivalence")
	}
	if !AlphaEqual(a, b) {
		t.Fatal("λx.x and λy.y are alpha-equal")
	}
	if !Equal(A(a, V("z")), A(L("x", V("x")), V("z"))) {
		t.Fatal("identical trees must be equal")
	}
}

func TestAlphaEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"λx.λy.x", "λa.λb.a", true},
		{"λx.λy.x", "λa.λb.b", false},
		{"λx.λx.x", "λa.λb.b", true},
		{"λx.y", "λz.y", true},
		{"λx.y", "λy.y", false},
		{"(f)(x)", "(f)(x)", true},
		{"(f)(x)", "(g)(x)", false},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := AlphaEqual(a, b); got != tt.want {
			t.Errorf("AlphaEqual(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCanonical(t *testing.T) {
	term := MustParse("λq.λr3.(a)((q)(r3))")
	got := Canonical(term)
	if got.String() != "λb.λc.(a)((b)(c))" {
		t.Fatalf("Canonical = %s", got)
	}
	if !AlphaEqual(got, term) {
		t.Fatal("Canonical must preserve alpha-equivalence")
	}
}

func TestSizeAndFreeVars(t *testing.T) {
	term := MustParse("λx.(x)(y)")
	if got := Size(term); got != 4 {
		t.Fatalf("Size = %d, want 4", got)
	}
	if got := SizeAtMost(term, 10); got != 4 {
		t.Fatalf("SizeAtMost under the limit = %d, want 4", got)
	}
	if got := SizeAtMost(term, 2); got != 3 {
		t.Fatalf("SizeAtMost over the limit = %d, want 3", got)
	}
	free := FreeVars(term)
	if len(free) != 1 || !free[V("y").ID] {
		t.Fatalf("FreeVars = %v", free)
	}
	if got := MaxGen(MustParse("λx3.(x)(x7)"), 'x'); got != 7 {
		t.Fatalf("MaxGen = %d, want 7", got)
	}
	if got := MaxGen(term, 'q'); got != -1 {
		t.Fatalf("MaxGen of missing letter = %d", got)
	}
}

func TestSizeAtMostSharedSubtrees(t *testing.T) {
	// 2^61 nodes as a tree, 62 distinct values
	var term Term = V("x")
	for range 60 {
		term = A(term, term)
	}
	if got := SizeAtMost(term, 1000); got != 1001 {
		t.Fatalf("SizeAtMost = %d, want 1001", got)
	}
}
