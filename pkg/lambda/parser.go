package lambda

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrMalformed reports text that is not a term.
var ErrMalformed = errors.New("malformed term")

// Parse parses a lambda term from its textual form, e.g. "(λx.x)(λy.y)".
//
// Applications carry no separator, so the argument is found by scanning from the
// right for the shortest suffix that parses on its own. This recovers everything the
// printer emits, but it is not a general grammar for hand-written input.
func Parse(input string) (Term, error) {
	rs := clean(input)
	if len(rs) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	term := parse(rs)
	if term == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, input)
	}
	return term, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(input string) Term {
	term, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return term
}

// clean drops whitespace and accepts '\' as the abstraction marker.
func clean(input string) []rune {
	rs := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case unicode.IsSpace(r):
		case r == '\\':
			rs = append(rs, 'λ')
		default:
			rs = append(rs, r)
		}
	}
	return rs
}

// parse returns nil when rs is not a term.
func parse(rs []rune) Term {
	if len(rs) == 0 || !balanced(rs) {
		return nil
	}
	rs = stripOuter(rs)
	if len(rs) == 0 {
		return nil
	}

	if id, ok := ident(rs); ok {
		return Var{ID: id}
	}

	if rs[0] == 'λ' {
		dot := -1
		for i := 1; i < len(rs); i++ {
			if rs[i] == '.' {
				dot = i
				break
			}
		}
		if dot < 2 {
			return nil
		}
		id, ok := ident(rs[1:dot])
		if !ok {
			return nil
		}
		body := parse(rs[dot+1:])
		if body == nil {
			return nil
		}
		return Abs{Arg: id, Body: body}
	}

	// Application: grow the argument leftwards until it parses.
	depth := 0
	for i := len(rs) - 1; i > 0; i-- {
		switch rs[i] {
		case ')':
			depth++
		case '(':
			depth--
		}
		if depth != 0 {
			continue
		}
		arg := parse(rs[i:])
		if arg == nil {
			continue
		}
		fun := parse(rs[:i])
		if fun == nil {
			return nil
		}
		return App{Fun: fun, Arg: arg}
	}
	return nil
}

func balanced(rs []rune) bool {
	open, closed := 0, 0
	for _, r := range rs {
		switch r {
		case '(':
			open++
		case ')':
			closed++
		}
	}
	return open == closed
}

// stripOuter removes one outer pair of parentheses if it encloses the whole string.
func stripOuter(rs []rune) []rune {
	if rs[0] != '(' {
		return rs
	}
	depth := 0
	for _, r := range rs[:len(rs)-1] {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return rs
		}
	}
	return rs[1 : len(rs)-1]
}

// ident accepts one identity letter followed only by decimal digits.
func ident(rs []rune) (Ident, bool) {
	if len(rs) == 0 || !isIdentRune(rs[0]) {
		return Ident{}, false
	}
	if len(rs) == 1 {
		return Ident{Base: rs[0]}, true
	}
	for _, r := range rs[1:] {
		if !isDigit(r) {
			return Ident{}, false
		}
	}
	gen, err := strconv.Atoi(string(rs[1:]))
	if err != nil {
		return Ident{}, false
	}
	return Ident{Base: rs[0], Gen: gen}, true
}
