package reduction

import "github.com/vic/lambdaviz/pkg/lambda"

// Substitute replaces the free occurrences of target in term with replacement.
//
// An abstraction that rebinds target is moved to an unused generation of its letter,
// together with its own occurrences, before substitution continues beneath it. A
// binder that occurs free in replacement is moved the same way when an occurrence of
// target lies in its scope, so no free identity of replacement is captured.
func Substitute(term lambda.Term, target lambda.Ident, replacement lambda.Term) lambda.Term {
	s := &substitution{
		target:      target,
		replacement: replacement,
		free:        lambda.FreeVars(replacement),
		replGen:     make(map[rune]int),
	}
	out, _ := s.walk(term)
	return out
}

type substitution struct {
	target      lambda.Ident
	replacement lambda.Term
	free        map[lambda.Ident]bool
	replGen     map[rune]int
}

// walk reports whether anything changed so untouched subtrees are shared.
func (s *substitution) walk(t lambda.Term) (lambda.Term, bool) {
	switch t := t.(type) {
	case lambda.Var:
		if t.ID == s.target {
			return s.replacement, true
		}
		return t, false

	case lambda.Abs:
		if t.Arg == s.target {
			arg, body := s.fresh(t)
			body, _ = s.walk(body)
			return lambda.Abs{Arg: arg, Body: body}, true
		}
		body, changed := s.walk(t.Body)
		if !changed {
			return t, false
		}
		if s.free[t.Arg] {
			arg, body := s.fresh(t)
			body, _ = s.walk(body)
			return lambda.Abs{Arg: arg, Body: body}, true
		}
		return lambda.Abs{Arg: t.Arg, Body: body}, true

	case lambda.App:
		fun, funChanged := s.walk(t.Fun)
		arg, argChanged := s.walk(t.Arg)
		if !funChanged && !argChanged {
			return t, false
		}
		return lambda.App{Fun: fun, Arg: arg}, true
	}
	return t, false
}

// fresh moves the binder of abs to a generation unused in its body and in the
// replacement, renaming the occurrences it binds.
func (s *substitution) fresh(abs lambda.Abs) (lambda.Ident, lambda.Term) {
	base := abs.Arg.Base
	gen, ok := s.replGen[base]
	if !ok {
		gen = lambda.MaxGen(s.replacement, base)
		s.replGen[base] = gen
	}
	gen = max(gen, lambda.MaxGen(abs.Body, base), abs.Arg.Gen) + 1
	arg := abs.Arg.WithGen(gen)
	return arg, Rename(abs.Body, abs.Arg, arg)
}

// Rename replaces the free occurrences of from in t with to.
func Rename(t lambda.Term, from, to lambda.Ident) lambda.Term {
	switch t := t.(type) {
	case lambda.Var:
		if t.ID == from {
			return lambda.Var{ID: to}
		}
	case lambda.Abs:
		if t.Arg != from {
			return lambda.Abs{Arg: t.Arg, Body: Rename(t.Body, from, to)}
		}
	case lambda.App:
		return lambda.App{Fun: Rename(t.Fun, from, to), Arg: Rename(t.Arg, from, to)}
	}
	return t
}
