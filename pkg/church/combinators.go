package church

import "github.com/vic/lambdaviz/pkg/lambda"

// Canonical textual forms of the combinator library.
const (
	AddText    = "λm.λn.λf.λx.mf(nfx)"
	MulText    = "λm.λn.λf.λx.m(nf)x"
	PredText   = "λn.λf.λx.n(λg.λh.h(gf))(λu.x)(λu.u)"
	SubText    = "λm.λn.n(" + PredText + ")m"
	IsZeroText = "λn.n(λx.λa.λb.b)(λa.λb.a)"
	SuccText   = "λn.λf.λx.f(nfx)"
	YText      = "λf.(λx.f(xx))(λx.f(xx))"

	// DivText computes floor(n/m) as Y(λc.λn.λm.λf.λx. (λd. isZero d 0 (f(c d m f x))) (sub n m)) (succ n).
	DivText = "(λn.((λf.(λx.xx)(λx.f(xx)))(λc.λn.λm.λf.λx.(λd.(λn.n(λx.(λa.λb.b))(λa.λb.a))d((λf.λx.x)fx)(f(cdmfx)))((λm.λn.n(λn.λf.λx.n(λg.λh.h(gf))(λu.x)(λu.u))m)nm)))((λn.λf.λx.f(nfx))n))"

	// FactText is Y(λr.λn. isZero n 1 (mul n (r (pred n)))).
	FactText = "(" + YText + ")(λr.λn.(" + IsZeroText + ")n(λf.λx.fx)((" + MulText + ")n(r((" + PredText + ")n))))"
)

var (
	Add    = lambda.MustParse(AddText)
	Mul    = lambda.MustParse(MulText)
	Pred   = lambda.MustParse(PredText)
	Sub    = lambda.MustParse(SubText)
	Div    = lambda.MustParse(DivText)
	IsZero = lambda.MustParse(IsZeroText)
	Succ   = lambda.MustParse(SuccText)
	Y      = lambda.MustParse(YText)
	Fact   = lambda.MustParse(FactText)
)

var binary = map[string]lambda.Term{
	"+": Add,
	"-": Sub,
	"*": Mul,
	"/": Div,
}

// Combinator returns the combinator implementing an operator token.
func Combinator(op string) (lambda.Term, bool) {
	if op == "!" {
		return Fact, true
	}
	t, ok := binary[op]
	return t, ok
}
