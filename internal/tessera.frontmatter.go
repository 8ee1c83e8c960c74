package internal

// Frontmatter delimiters
const (
	StrFrontmatterDelim = "---"
	StrNewline          = "\n"
)

// FrontmatterResult holds the result of splitting a frontmatter block
// from template source.
type FrontmatterResult struct {
	// YAML is the raw block content. Empty if there is no block.
	YAML string
	// BodyOffset is the byte offset where the template body starts.
	// Parsing from BodyOffset keeps item offsets relative to the full source.
	BodyOffset int
	// Location is where the block started.
	Location Location
	// HasFrontmatter indicates whether a block was found.
	HasFrontmatter bool
}

// ExtractFrontmatter finds a leading YAML block of the form
//
//	---
//	content_type: plain
//	---
//	Template body here...
//
// The opening delimiter must be the first line of the source. A block
// that is opened but never closed is a syntax error.
func ExtractFrontmatter(source string) (*FrontmatterResult, error) {
	result := &FrontmatterResult{}

	c := NewCursor(source)
	if _, ok, _ := fenceLine(Literal(StrNewline))(c); !ok {
		return result, nil
	}

	result.HasFrontmatter = true
	result.Location = LocationAt(source, 0)

	content := c.Offset()
	closing := fenceLine(Select(Literal(StrNewline), endOfInput()))
	if _, ok, _ := CollectUntil(anyLine(), closing)(c); !ok {
		return nil, NewSyntaxError(ErrMsgFrontmatterUnclosed, ConstructFrontmatter, 0)
	}
	result.YAML = source[content:c.Offset()]

	closing(c)
	result.BodyOffset = c.Offset()
	return result, nil
}

func isLineBlank(r rune) bool { return r == ' ' || r == '\t' || r == '\r' }

// fenceLine matches the delimiter, trailing blanks and then eol.
func fenceLine(eol Parser[Span]) Parser[Span] {
	return Recognize(Then(Literal(StrFrontmatterDelim), Then(TakeWhile(isLineBlank), eol)))
}

// anyLine matches the rest of the current line including its newline.
func anyLine() Parser[Span] {
	notNewline := func(r rune) bool { return r != '\n' }
	return Recognize(Then(TakeWhile(notNewline), Optional(Literal(StrNewline)))).Filter(nonEmpty)
}

func endOfInput() Parser[Span] {
	return To(Not(anyLine()), Span{})
}
