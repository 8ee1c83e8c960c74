package ast

// TextKind tells whether a Text aliases the template source or owns its bytes.
type TextKind int

const (
	// TextBorrowed text is a slice of the template source.
	TextBorrowed TextKind = iota
	// TextOwned text was assembled because an escape sequence was substituted.
	TextOwned
)

// Text kind names
const (
	TextKindNameBorrowed = "borrowed"
	TextKindNameOwned    = "owned"
)

// String returns the name of the text kind.
func (k TextKind) String() string {
	if k == TextOwned {
		return TextKindNameOwned
	}
	return TextKindNameBorrowed
}

// Text is a copy-on-write string value produced by the parser.
// Borrowed text shares memory with the source; owned text was built
// from several pieces when an escape substitution made that necessary.
type Text struct {
	value  string
	offset int
	kind   TextKind
}

// Borrowed returns text that aliases the source starting at offset.
func Borrowed(value string, offset int) Text {
	return Text{value: value, offset: offset, kind: TextBorrowed}
}

// Owned returns text holding its own value. offset is where the
// region it was built from starts in the source.
func Owned(value string, offset int) Text {
	return Text{value: value, offset: offset, kind: TextOwned}
}

// String returns the text value.
func (t Text) String() string { return t.value }

// Offset returns the byte offset in the source where the text region starts.
func (t Text) Offset() int { return t.offset }

// Kind reports whether the text is borrowed or owned.
func (t Text) Kind() TextKind { return t.kind }

// IsBorrowed reports whether the text aliases the source.
func (t Text) IsBorrowed() bool { return t.kind == TextBorrowed }

// Len returns the length of the value in bytes.
func (t Text) Len() int { return len(t.value) }

// IsEmpty reports whether the value is empty.
func (t Text) IsEmpty() bool { return t.value == "" }
