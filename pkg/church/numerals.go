package church

import "github.com/vic/lambdaviz/pkg/lambda"

var (
	identF = lambda.Ident{Base: 'f'}
	identX = lambda.Ident{Base: 'x'}
)

// Numeral returns the Church numeral λf.λx.f(f(…x)) with n applications of f.
func Numeral(n int) lambda.Term {
	var body lambda.Term = lambda.Var{ID: identX}
	for range n {
		body = lambda.App{Fun: lambda.Var{ID: identF}, Arg: body}
	}
	return lambda.Abs{Arg: identF, Body: lambda.Abs{Arg: identX, Body: body}}
}

// Unchurch decodes a Church numeral in normal form by descending two abstractions and
// counting applications down the argument spine. Any other shape yields an arbitrary
// count rather than a panic.
func Unchurch(t lambda.Term) int {
	if abs, ok := t.(lambda.Abs); ok {
		t = abs.Body
		if abs, ok := t.(lambda.Abs); ok {
			t = abs.Body
		}
	}
	n := 0
	for {
		app, ok := t.(lambda.App)
		if !ok {
			return n
		}
		n++
		t = app.Arg
	}
}
