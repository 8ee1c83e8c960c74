package internal

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Syntax validation messages
const (
	ErrMsgEmptyDelimiter     = "template delimiters cannot be empty"
	ErrMsgDelimiterCollision = "expression and statement delimiters must differ"
)

// SyntaxConfig holds the template delimiters.
type SyntaxConfig struct {
	ExprOpen     string `yaml:"expr_open" json:"expr_open"`
	ExprClose    string `yaml:"expr_close" json:"expr_close"`
	StmtOpen     string `yaml:"stmt_open" json:"stmt_open"`
	StmtClose    string `yaml:"stmt_close" json:"stmt_close"`
	EscapeMarker string `yaml:"escape_marker" json:"escape_marker"`
	CommentOpen  string `yaml:"comment_open" json:"comment_open"`
	CommentClose string `yaml:"comment_close" json:"comment_close"`
}

// DefaultSyntax returns the default delimiters: {{ }}, <# #>, % and <!-- -->.
func DefaultSyntax() SyntaxConfig {
	return SyntaxConfig{
		ExprOpen:     StrExprOpen,
		ExprClose:    StrExprClose,
		StmtOpen:     StrStmtOpen,
		StmtClose:    StrStmtClose,
		EscapeMarker: StrEscapeMarker,
		CommentOpen:  StrCommentOpen,
		CommentClose: StrCommentClose,
	}
}

// WithDefaults fills empty fields from DefaultSyntax.
func (s SyntaxConfig) WithDefaults() SyntaxConfig {
	d := DefaultSyntax()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.ExprOpen, d.ExprOpen)
	fill(&s.ExprClose, d.ExprClose)
	fill(&s.StmtOpen, d.StmtOpen)
	fill(&s.StmtClose, d.StmtClose)
	fill(&s.EscapeMarker, d.EscapeMarker)
	fill(&s.CommentOpen, d.CommentOpen)
	fill(&s.CommentClose, d.CommentClose)
	return s
}

// Validate checks that the delimiters are usable.
func (s SyntaxConfig) Validate() error {
	for _, v := range []string{s.ExprOpen, s.ExprClose, s.StmtOpen, s.StmtClose, s.EscapeMarker, s.CommentOpen, s.CommentClose} {
		if v == "" {
			return errors.New(ErrMsgEmptyDelimiter)
		}
	}
	if s.ExprOpen == s.StmtOpen {
		return errors.New(ErrMsgDelimiterCollision)
	}
	return nil
}

// escapes returns the top-level escape tokens and the text they stand for.
func (s SyntaxConfig) escapes() []Escape {
	return []Escape{
		{Needle: s.EscapeMarker + s.ExprOpen, Replacement: s.ExprOpen},
		{Needle: s.EscapeMarker + s.StmtOpen, Replacement: s.StmtOpen},
	}
}

// literalStops returns the runes that may start a non-literal construct.
// A literal run ends before any of them.
func (s SyntaxConfig) literalStops() string {
	var sb strings.Builder
	for _, v := range []string{s.EscapeMarker, s.ExprOpen, s.StmtOpen, s.CommentOpen, StrTagOpen} {
		r, _ := utf8.DecodeRuneInString(v)
		if !strings.ContainsRune(sb.String(), r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
