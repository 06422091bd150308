package lambda

import (
	"fmt"
	"strconv"
	"unicode"
)

// Kind discriminates the three term shapes.
type Kind int

const (
	KindVar Kind = iota
	KindAbs
	KindApp
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindAbs:
		return "Abs"
	case KindApp:
		return "App"
	default:
		return "Unknown"
	}
}

// Ident is a variable identity: a base letter plus a generation counter.
// Alpha-renaming moves an identity to another generation without touching its letter.
type Ident struct {
	Base rune
	Gen  int
}

func (id Ident) String() string {
	if id.Gen > 0 {
		return string(id.Base) + strconv.Itoa(id.Gen)
	}
	return string(id.Base)
}

// WithGen returns the identity with the same base letter moved to generation gen.
func (id Ident) WithGen(gen int) Ident {
	return Ident{Base: id.Base, Gen: gen}
}

// Name builds an identity from its printed form, e.g. "x" or "x12".
func Name(s string) (Ident, error) {
	id, ok := ident([]rune(s))
	if !ok {
		return Ident{}, fmt.Errorf("%w: bad identity %q", ErrMalformed, s)
	}
	return id, nil
}

func isIdentRune(r rune) bool {
	return r != 'λ' && unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Term represents a lambda calculus term.
type Term interface {
	Kind() Kind
	Children() []Term
	String() string
}

// Var represents a variable occurrence.
type Var struct {
	ID Ident
}

func (Var) Kind() Kind       { return KindVar }
func (Var) Children() []Term { return nil }
func (v Var) String() string { return v.ID.String() }

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  Ident
	Body Term
}

func (Abs) Kind() Kind         { return KindAbs }
func (a Abs) Children() []Term { return []Term{a.Body} }

func (a Abs) String() string { return format(a) }

// App represents an application. Both operands are always parenthesised when printed.
type App struct {
	Fun Term
	Arg Term
}

func (App) Kind() Kind         { return KindApp }
func (a App) Children() []Term { return []Term{a.Fun, a.Arg} }

func (a App) String() string { return format(a) }

// IdentOf returns the identity carried by a Var or an Abs.
func IdentOf(t Term) (Ident, bool) {
	switch t := t.(type) {
	case Var:
		return t.ID, true
	case Abs:
		return t.Arg, true
	}
	return Ident{}, false
}

// Equal reports structural equality: same shapes, same identities, same children.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a.ID == b.ID
	case Abs:
		b, ok := b.(Abs)
		return ok && a.Arg == b.Arg && Equal(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && Equal(a.Fun, b.Fun) && Equal(a.Arg, b.Arg)
	}
	return a == nil && b == nil
}

// V builds a variable from its printed name. It panics on a malformed name.
func V(name string) Var {
	id, err := Name(name)
	if err != nil {
		panic(err)
	}
	return Var{ID: id}
}

// L builds an abstraction. It panics on a malformed name.
func L(name string, body Term) Abs {
	id, err := Name(name)
	if err != nil {
		panic(err)
	}
	return Abs{Arg: id, Body: body}
}

// A builds a left-associated application chain: A(f, x, y) is ((f x) y).
func A(fun, arg Term, more ...Term) App {
	app := App{Fun: fun, Arg: arg}
	for _, t := range more {
		app = App{Fun: app, Arg: t}
	}
	return app
}
