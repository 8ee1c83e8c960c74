package internal

import (
	"strings"
	"unicode"

	"github.com/itsatony/go-tessera/ast"
)

// Span is a zero-copy view into the source: Text == source[Offset:Offset+len(Text)].
type Span struct {
	Text   string
	Offset int
}

// Len returns the span length in bytes.
func (s Span) Len() int { return len(s.Text) }

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.Text == "" }

// End returns the offset just past the span.
func (s Span) End() int { return s.Offset + len(s.Text) }

// ToText converts the span to borrowed text without allocating.
func (s Span) ToText() ast.Text { return ast.Borrowed(s.Text, s.Offset) }

// String returns the span text.
func (s Span) String() string { return s.Text }

// TextBuilder accumulates text copy-on-write. Contiguous spans extend a
// borrowed run over the source; the first substitution or gap switches
// to an owned buffer.
type TextBuilder struct {
	source string
	start  int
	run    Span
	hasRun bool
	owned  *strings.Builder
}

// NewTextBuilder starts accumulating at offset within source.
func NewTextBuilder(source string, offset int) *TextBuilder {
	return &TextBuilder{source: source, start: offset, run: Span{Offset: offset}}
}

// AppendSpan appends a piece of source text.
func (b *TextBuilder) AppendSpan(s Span) {
	if s.IsEmpty() {
		return
	}
	switch {
	case b.owned != nil:
		b.owned.WriteString(s.Text)
	case !b.hasRun:
		b.run = s
		b.hasRun = true
	case b.run.End() == s.Offset:
		b.run = Span{Text: b.source[b.run.Offset:s.End()], Offset: b.run.Offset}
	default:
		b.toOwned()
		b.owned.WriteString(s.Text)
	}
}

// AppendReplacement appends text that does not occur at this point of
// the source, forcing an owned buffer.
func (b *TextBuilder) AppendReplacement(value string) {
	if b.owned == nil {
		b.toOwned()
	}
	b.owned.WriteString(value)
}

// IsOwned reports whether an owned buffer was needed.
func (b *TextBuilder) IsOwned() bool { return b.owned != nil }

// Text returns the accumulated text.
func (b *TextBuilder) Text() ast.Text {
	if b.owned != nil {
		return ast.Owned(b.owned.String(), b.start)
	}
	if !b.hasRun {
		return ast.Borrowed("", b.start)
	}
	return b.run.ToText()
}

func (b *TextBuilder) toOwned() {
	b.owned = &strings.Builder{}
	b.owned.WriteString(b.run.Text)
}

// TrimText strips surrounding whitespace while keeping the text variant.
// The offset moves past the removed leading whitespace.
func TrimText(t ast.Text) ast.Text {
	value := t.String()
	left := strings.TrimLeftFunc(value, unicode.IsSpace)
	trimmed := strings.TrimRightFunc(left, unicode.IsSpace)
	offset := t.Offset() + len(value) - len(left)
	if t.IsBorrowed() {
		return ast.Borrowed(trimmed, offset)
	}
	return ast.Owned(trimmed, offset)
}
