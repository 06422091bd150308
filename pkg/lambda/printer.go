package lambda

import "strings"

func format(t Term) string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

func writeTerm(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		b.WriteString(t.ID.String())
	case Abs:
		b.WriteRune('λ')
		b.WriteString(t.Arg.String())
		b.WriteByte('.')
		writeTerm(b, t.Body)
	case App:
		b.WriteByte('(')
		writeTerm(b, t.Fun)
		b.WriteString(")(")
		writeTerm(b, t.Arg)
		b.WriteByte(')')
	}
}
