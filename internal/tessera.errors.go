package internal

import (
	"fmt"
	"strconv"
)

// Error message constants for the parser
const (
	ErrMsgUnterminatedExpression = "unterminated expression"
	ErrMsgUnterminatedStatement  = "unterminated statement"
	ErrMsgUnterminatedComment    = "unterminated comment"
	ErrMsgUnterminatedTemplate   = "unterminated template reference"
	ErrMsgUnterminatedString     = "unterminated string literal"
	ErrMsgUnterminatedBlock      = "unterminated block, missing end statement"
	ErrMsgUnexpectedArgValue     = "unexpected token for template argument value"
	ErrMsgUnexpectedEnd          = "end statement without an open block"
	ErrMsgOrphanBranch           = "else branch without a preceding if"
	ErrMsgElseNotLast            = "else branch must be the last branch of its chain"
	ErrMsgBranchAfterLoop        = "loop body cannot be continued by an else branch"
	ErrMsgMaxDepthExceeded       = "maximum nesting depth exceeded"
	ErrMsgUnparsedInput          = "input left unparsed"
	ErrMsgFrontmatterUnclosed    = "frontmatter block not closed"
)

// Programming error messages (panics)
const (
	ErrMsgCombineEmpty     = "combine requires at least one span"
	ErrMsgCombineGap       = "combined spans must be contiguous in the source"
	ErrMsgOffsetOutOfRange = "cursor offset out of range"
)

// Location is a resolved source location for diagnostics.
type Location struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number, counted in runes
}

// String returns a human-readable location
func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// LocationAt resolves a byte offset within source.
func LocationAt(source string, offset int) Location {
	if offset > len(source) {
		offset = len(source)
	}
	return calculateLocation(source[:offset])
}

// calculateLocation computes the location just past prefix.
func calculateLocation(prefix string) Location {
	loc := Location{
		Offset: len(prefix),
		Line:   1,
		Column: 1,
	}

	for _, r := range prefix {
		if r == '\n' {
			loc.Line++
			loc.Column = 1
		} else {
			loc.Column++
		}
	}

	return loc
}

// SyntaxError is an unrecoverable parse error. Location points at the
// opening delimiter of the construct that failed.
type SyntaxError struct {
	Message   string
	Construct string
	Location  Location
}

// NewSyntaxError creates a syntax error at a byte offset. Line and
// column are resolved later by the template parser.
func NewSyntaxError(msg, construct string, offset int) *SyntaxError {
	return &SyntaxError{
		Message:   msg,
		Construct: construct,
		Location:  Location{Offset: offset},
	}
}

func (e *SyntaxError) Error() string {
	if e.Location.Line == 0 {
		return e.Message + " at offset " + strconv.Itoa(e.Location.Offset)
	}
	return e.Message + " at " + e.Location.String()
}

// resolve fills line and column from the source.
func (e *SyntaxError) resolve(source string) {
	e.Location = LocationAt(source, e.Location.Offset)
}
