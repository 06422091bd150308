package reduction

import "github.com/vic/lambdaviz/pkg/lambda"

// Step performs one reduction step and reports whether the term changed.
//
// A redex at the root is contracted and nothing beneath it is touched. Otherwise
// every child is stepped independently, so one call may contract several sibling
// redexes but never two on the same root-to-leaf path.
func Step(t lambda.Term) (lambda.Term, bool) {
	t, n := step(t)
	return t, n > 0
}

// step returns the number of redexes contracted.
func step(t lambda.Term) (lambda.Term, int) {
	switch t := t.(type) {
	case lambda.App:
		if abs, ok := t.Fun.(lambda.Abs); ok {
			return Substitute(abs.Body, abs.Arg, t.Arg), 1
		}
		fun, n := step(t.Fun)
		arg, m := step(t.Arg)
		if n+m == 0 {
			return t, 0
		}
		return lambda.App{Fun: fun, Arg: arg}, n + m
	case lambda.Abs:
		body, n := step(t.Body)
		if n == 0 {
			return t, 0
		}
		return lambda.Abs{Arg: t.Arg, Body: body}, n
	}
	return t, 0
}

// IsNormal reports whether t contains no redex.
func IsNormal(t lambda.Term) bool {
	switch t := t.(type) {
	case lambda.App:
		if _, ok := t.Fun.(lambda.Abs); ok {
			return false
		}
		return IsNormal(t.Fun) && IsNormal(t.Arg)
	case lambda.Abs:
		return IsNormal(t.Body)
	}
	return true
}
