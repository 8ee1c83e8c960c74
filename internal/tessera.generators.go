package internal

import (
	"unicode"

	"github.com/itsatony/go-tessera/ast"
)

// Literal matches the exact string value.
func Literal(value string) Parser[Span] {
	return func(c *Cursor) (Span, bool, error) {
		s, ok := c.ConsumeLit(value)
		return s, ok, nil
	}
}

// TakeWhile consumes runes while pred holds. It always matches.
func TakeWhile(pred func(rune) bool) Parser[Span] {
	return func(c *Cursor) (Span, bool, error) {
		return c.ConsumeWhile(pred), true, nil
	}
}

// Whitespace consumes whitespace and matches only if at least atLeast
// bytes were consumed.
func Whitespace(atLeast int) Parser[Span] {
	return TakeWhile(unicode.IsSpace).Filter(func(s Span) bool {
		return s.Len() >= atLeast
	})
}

// Insert matches without consuming and yields value.
func Insert[T any](value T) Parser[T] {
	return func(*Cursor) (T, bool, error) {
		return value, true, nil
	}
}

// Escape maps an escape sequence to the text it stands for.
type Escape struct {
	Needle      string
	Replacement string
}

// TakeUntil consumes text up to the first position where terminator
// matches, or to end of input. The terminator is not consumed. Each
// escape needle met on the way is replaced; the result is borrowed from
// the source unless a replacement happened.
func TakeUntil[T any](terminator Parser[T], escapes ...Escape) Parser[ast.Text] {
	peek := terminator.Peek()
	return func(c *Cursor) (ast.Text, bool, error) {
		b := NewTextBuilder(c.Source(), c.Offset())
		run := c.Position()
		for {
			at := c.Position()
			if e, ok := matchEscape(c, escapes); ok {
				b.AppendSpan(c.PeekRange(run, at))
				c.ConsumeLit(e.Needle)
				b.AppendReplacement(e.Replacement)
				run = c.Position()
				continue
			}

			_, found, err := peek(c)
			if err != nil {
				return ast.Text{}, false, err
			}
			if found || c.IsAtEnd() {
				b.AppendSpan(c.PeekRange(run, at))
				return b.Text(), true, nil
			}
			c.ConsumeCount(1)
		}
	}
}

func matchEscape(c *Cursor, escapes []Escape) (Escape, bool) {
	for _, e := range escapes {
		if c.HasPrefix(e.Needle) {
			return e, true
		}
	}
	return Escape{}, false
}

// EmbeddedCode matches openDelim, opaque code up to closeDelim, and
// closeDelim itself. The code is trimmed; escape followed by closeDelim
// stands for a literal closeDelim. Once openDelim matched, a missing
// closeDelim is a syntax error.
func EmbeddedCode(openDelim, closeDelim, escape, construct, msg string) Parser[Pair[Span, ast.Text]] {
	esc := Escape{Needle: escape + closeDelim, Replacement: closeDelim}
	code := Map(TakeUntil(Literal(closeDelim), esc), TrimText)
	return ThenExpect(Then(Literal(openDelim), code), Literal(closeDelim), construct, msg)
}
