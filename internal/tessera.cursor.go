package internal

import (
	"strings"
	"unicode/utf8"
)

// Position is a snapshot of a Cursor offset used for backtracking.
type Position struct {
	offset int
}

// Offset returns the absolute byte offset of the snapshot.
func (p Position) Offset() int { return p.offset }

// Cursor scans an immutable source string. The source never changes;
// only the offset moves, forward on consumption and back on ResetTo.
type Cursor struct {
	source    string
	remainder string
	offset    int
}

// NewCursor creates a cursor at the start of source.
func NewCursor(source string) *Cursor {
	return NewCursorAt(source, 0)
}

// NewCursorAt creates a cursor positioned at offset.
func NewCursorAt(source string, offset int) *Cursor {
	if offset < 0 || offset > len(source) {
		panic(ErrMsgOffsetOutOfRange)
	}
	return &Cursor{
		source:    source,
		remainder: source[offset:],
		offset:    offset,
	}
}

// Source returns the full source text.
func (c *Cursor) Source() string { return c.source }

// Remainder returns the unconsumed suffix.
func (c *Cursor) Remainder() string { return c.remainder }

// Offset returns the current absolute byte offset.
func (c *Cursor) Offset() int { return c.offset }

// IsAtEnd reports whether all input was consumed.
func (c *Cursor) IsAtEnd() bool { return c.remainder == "" }

// Position returns a snapshot for ResetTo.
func (c *Cursor) Position() Position { return Position{offset: c.offset} }

// ResetTo moves the cursor back (or forward) to a snapshot taken on this cursor.
func (c *Cursor) ResetTo(p Position) {
	c.offset = p.offset
	c.remainder = c.source[p.offset:]
}

// ConsumeLit consumes value if the remainder starts with it.
func (c *Cursor) ConsumeLit(value string) (Span, bool) {
	if !strings.HasPrefix(c.remainder, value) {
		return Span{}, false
	}
	return c.consume(len(value)), true
}

// ConsumeWhile consumes runes while pred holds. It may consume nothing.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) Span {
	n := len(c.remainder)
	for i, r := range c.remainder {
		if !pred(r) {
			n = i
			break
		}
	}
	return c.consume(n)
}

// ConsumeUntil consumes up to, not including, the first occurrence of
// needle, or everything when needle does not occur.
func (c *Cursor) ConsumeUntil(needle string) Span {
	idx := strings.Index(c.remainder, needle)
	if idx < 0 {
		return c.ConsumeAll()
	}
	return c.consume(idx)
}

// ConsumeUntilAny consumes up to the first rune contained in chars.
// At end of input it returns an empty span.
func (c *Cursor) ConsumeUntilAny(chars string) Span {
	idx := strings.IndexAny(c.remainder, chars)
	if idx < 0 {
		return c.ConsumeAll()
	}
	return c.consume(idx)
}

// ConsumeCount consumes exactly n runes, or nothing if fewer remain.
func (c *Cursor) ConsumeCount(n int) (Span, bool) {
	size := 0
	for i := 0; i < n; i++ {
		if size >= len(c.remainder) {
			return Span{}, false
		}
		_, w := utf8.DecodeRuneInString(c.remainder[size:])
		size += w
	}
	return c.consume(size), true
}

// ConsumeAll consumes the rest of the input.
func (c *Cursor) ConsumeAll() Span {
	return c.consume(len(c.remainder))
}

// PeekRune returns the next rune without consuming it.
func (c *Cursor) PeekRune() (rune, bool) {
	if c.remainder == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.remainder)
	return r, true
}

// HasPrefix reports whether the remainder starts with value.
func (c *Cursor) HasPrefix(value string) bool {
	return strings.HasPrefix(c.remainder, value)
}

// PeekRange returns the span between two snapshots without moving.
func (c *Cursor) PeekRange(from, to Position) Span {
	return Span{Text: c.source[from.offset:to.offset], Offset: from.offset}
}

// Combine joins contiguous spans into one span over the source.
// Passing no spans or spans with gaps is a programming error and panics.
func (c *Cursor) Combine(spans ...Span) Span {
	if len(spans) == 0 {
		panic(ErrMsgCombineEmpty)
	}
	start := spans[0].Offset
	end := start
	for _, s := range spans {
		if s.Offset != end {
			panic(ErrMsgCombineGap)
		}
		end += len(s.Text)
	}
	return Span{Text: c.source[start:end], Offset: start}
}

func (c *Cursor) consume(n int) Span {
	span := Span{Text: c.remainder[:n], Offset: c.offset}
	c.offset += n
	c.remainder = c.remainder[n:]
	return span
}
