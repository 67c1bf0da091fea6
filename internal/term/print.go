package term

import (
	"strings"

	"github.com/funvibe/church/internal/config"
)

// String renders t back into the surface syntax, using config.PrintIndex
// for variable ids and the minimum parenthesization needed for the result
// to re-parse to the same term: an abstraction used in function position,
// or an application/abstraction used in argument position, is wrapped.
func (t *Term) String() string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

func writeTerm(b *strings.Builder, t *Term) {
	switch t.kind {
	case KindVar:
		b.WriteString(config.PrintIndex(t.id))
	case KindAbs:
		b.WriteRune('λ')
		b.WriteString(config.PrintIndex(t.id))
		b.WriteByte('.')
		writeTerm(b, t.body)
	case KindApp:
		writeAppFn(b, t.fn)
		b.WriteByte(' ')
		writeAtom(b, t.arg)
	}
}

func writeAppFn(b *strings.Builder, t *Term) {
	if t.kind == KindAbs {
		b.WriteByte('(')
		writeTerm(b, t)
		b.WriteByte(')')
		return
	}
	writeTerm(b, t)
}

func writeAtom(b *strings.Builder, t *Term) {
	if t.kind == KindVar {
		writeTerm(b, t)
		return
	}
	b.WriteByte('(')
	writeTerm(b, t)
	b.WriteByte(')')
}
