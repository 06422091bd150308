package lambda

// Size counts the nodes of a term.
func Size(t Term) int {
	switch t := t.(type) {
	case Abs:
		return 1 + Size(t.Body)
	case App:
		return 1 + Size(t.Fun) + Size(t.Arg)
	}
	return 1
}

// SizeAtMost counts the nodes of t, stopping once the count passes limit. A term
// larger than limit reports limit+1 however big it is.
func SizeAtMost(t Term, limit int) int {
	n := 0
	var walk func(Term) bool
	walk = func(t Term) bool {
		n++
		if n > limit {
			return false
		}
		switch t := t.(type) {
		case Abs:
			return walk(t.Body)
		case App:
			return walk(t.Fun) && walk(t.Arg)
		}
		return true
	}
	walk(t)
	return n
}

// FreeVars returns the identities occurring free in t.
func FreeVars(t Term) map[Ident]bool {
	free := make(map[Ident]bool)
	bound := make(map[Ident]int)
	var walk func(Term)
	walk = func(t Term) {
		switch t := t.(type) {
		case Var:
			if bound[t.ID] == 0 {
				free[t.ID] = true
			}
		case Abs:
			bound[t.Arg]++
			walk(t.Body)
			bound[t.Arg]--
		case App:
			walk(t.Fun)
			walk(t.Arg)
		}
	}
	walk(t)
	return free
}

// MaxGen returns the largest generation of base used anywhere in t, bound or free,
// or -1 when the letter does not occur.
func MaxGen(t Term, base rune) int {
	switch t := t.(type) {
	case Var:
		if t.ID.Base == base {
			return t.ID.Gen
		}
	case Abs:
		gen := MaxGen(t.Body, base)
		if t.Arg.Base == base && t.Arg.Gen > gen {
			gen = t.Arg.Gen
		}
		return gen
	case App:
		return max(MaxGen(t.Fun, base), MaxGen(t.Arg, base))
	}
	return -1
}

// AlphaEqual reports whether a and b are equal up to consistent renaming of bound
// identities. Free identities must match exactly.
func AlphaEqual(a, b Term) bool {
	return alphaEqual(a, b, map[Ident]int{}, map[Ident]int{}, 1)
}

func alphaEqual(a, b Term, envA, envB map[Ident]int, depth int) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		if !ok {
			return false
		}
		da, db := envA[a.ID], envB[b.ID]
		if da != db {
			return false
		}
		return da != 0 || a.ID == b.ID
	case Abs:
		b, ok := b.(Abs)
		if !ok {
			return false
		}
		oldA, hadA := envA[a.Arg]
		oldB, hadB := envB[b.Arg]
		envA[a.Arg] = depth
		envB[b.Arg] = depth
		eq := alphaEqual(a.Body, b.Body, envA, envB, depth+1)
		restore(envA, a.Arg, oldA, hadA)
		restore(envB, b.Arg, oldB, hadB)
		return eq
	case App:
		b, ok := b.(App)
		return ok &&
			alphaEqual(a.Fun, b.Fun, envA, envB, depth) &&
			alphaEqual(a.Arg, b.Arg, envA, envB, depth)
	}
	return false
}

func restore(env map[Ident]int, id Ident, old int, had bool) {
	if had {
		env[id] = old
	} else {
		delete(env, id)
	}
}

// Canonical renames every binder to a, b, c, ... z, a1, b1, ... in order of
// appearance, skipping identities that occur free. The result is alpha-equal to t.
func Canonical(t Term) Term {
	free := FreeVars(t)
	next := 0
	fresh := func() Ident {
		for {
			id := Ident{Base: rune('a' + next%26), Gen: next / 26}
			next++
			if !free[id] {
				return id
			}
		}
	}
	var walk func(Term, map[Ident]Ident) Term
	walk = func(t Term, env map[Ident]Ident) Term {
		switch t := t.(type) {
		case Var:
			if id, ok := env[t.ID]; ok {
				return Var{ID: id}
			}
			return t
		case Abs:
			id := fresh()
			old, had := env[t.Arg]
			env[t.Arg] = id
			body := walk(t.Body, env)
			if had {
				env[t.Arg] = old
			} else {
				delete(env, t.Arg)
			}
			return Abs{Arg: id, Body: body}
		case App:
			return App{Fun: walk(t.Fun, env), Arg: walk(t.Arg, env)}
		}
		return t
	}
	return walk(t, map[Ident]Ident{})
}
