// Package ast defines the item tree produced by the template parser.
//
// The tree is immutable once returned by the parser and is consumed by
// code generators and tooling. Text values are copy-on-write: most of
// them alias the template source.
package ast

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind identifies item types
type Kind int

// Item kind constants
const (
	KindLiteral Kind = iota
	KindExpression
	KindKeywordStatement
	KindPlainStatement
	KindChildTemplate
)

// Item kind names
const (
	KindNameLiteral          = "literal"
	KindNameExpression       = "expression"
	KindNameKeywordStatement = "keyword_statement"
	KindNamePlainStatement   = "plain_statement"
	KindNameChildTemplate    = "child_template"
)

// Display limits for String()
const (
	MaxStringDisplayLength = 50
	TruncatedStringLength  = 47
	TruncationSuffix       = "..."
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return KindNameLiteral
	case KindExpression:
		return KindNameExpression
	case KindKeywordStatement:
		return KindNameKeywordStatement
	case KindPlainStatement:
		return KindNamePlainStatement
	case KindChildTemplate:
		return KindNameChildTemplate
	default:
		return KindNameLiteral
	}
}

// Item is the interface all template items implement
type Item interface {
	// Kind returns the item kind
	Kind() Kind
	// Offset returns the byte offset where the item starts in the source
	Offset() int
	// String returns a human-readable representation
	String() string
}

// Literal is verbatim passthrough text, including HTML comments and
// resolved escape sequences.
type Literal struct {
	pos  int
	Text Text
}

// NewLiteral creates a literal item
func NewLiteral(text Text, pos int) *Literal {
	return &Literal{pos: pos, Text: text}
}

// Kind returns KindLiteral
func (l *Literal) Kind() Kind { return KindLiteral }

// Offset returns the source offset
func (l *Literal) Offset() int { return l.pos }

// String returns a string representation
func (l *Literal) String() string {
	return fmt.Sprintf("Literal{%q @ %d}", display(l.Text.String()), l.pos)
}

// Expression is an opaque embedded-language expression, trimmed.
type Expression struct {
	pos  int
	Text Text
}

// NewExpression creates an expression item
func NewExpression(text Text, pos int) *Expression {
	return &Expression{pos: pos, Text: text}
}

// Kind returns KindExpression
func (e *Expression) Kind() Kind { return KindExpression }

// Offset returns the source offset
func (e *Expression) Offset() int { return e.pos }

// String returns a string representation
func (e *Expression) String() string {
	return fmt.Sprintf("Expression{%q @ %d}", display(e.Text.String()), e.pos)
}

// KeywordStatement is a control-flow construct. Body is empty for
// keywords without a body. Chained is set when the body was ended by an
// else or else-if branch rather than by an end statement.
type KeywordStatement struct {
	pos       int
	Keyword   Keyword
	Statement *Text
	Body      []Item
	Chained   bool
}

// NewKeywordStatement creates a keyword statement item
func NewKeywordStatement(keyword Keyword, statement *Text, body []Item, pos int) *KeywordStatement {
	return &KeywordStatement{
		pos:       pos,
		Keyword:   keyword,
		Statement: statement,
		Body:      body,
	}
}

// Kind returns KindKeywordStatement
func (s *KeywordStatement) Kind() Kind { return KindKeywordStatement }

// Offset returns the source offset
func (s *KeywordStatement) Offset() int { return s.pos }

// HasStatement reports whether the long form with a payload was used.
func (s *KeywordStatement) HasStatement() bool { return s.Statement != nil }

// StatementText returns the payload or an empty string.
func (s *KeywordStatement) StatementText() string {
	if s.Statement == nil {
		return ""
	}
	return s.Statement.String()
}

// String returns a string representation
func (s *KeywordStatement) String() string {
	if s.Statement == nil {
		return fmt.Sprintf("KeywordStatement{%s, body=%d @ %d}", s.Keyword, len(s.Body), s.pos)
	}
	return fmt.Sprintf("KeywordStatement{%s %q, body=%d @ %d}",
		s.Keyword, display(s.Statement.String()), len(s.Body), s.pos)
}

// PlainStatement is an opaque embedded-language statement.
type PlainStatement struct {
	pos  int
	Text Text
}

// NewPlainStatement creates a plain statement item
func NewPlainStatement(text Text, pos int) *PlainStatement {
	return &PlainStatement{pos: pos, Text: text}
}

// Kind returns KindPlainStatement
func (s *PlainStatement) Kind() Kind { return KindPlainStatement }

// Offset returns the source offset
func (s *PlainStatement) Offset() int { return s.pos }

// String returns a string representation
func (s *PlainStatement) String() string {
	return fmt.Sprintf("PlainStatement{%q @ %d}", display(s.Text.String()), s.pos)
}

// ChildTemplate references a nested component by its type path.
type ChildTemplate struct {
	pos         int
	Name        Text
	Arguments   []TemplateArgument
	Children    []Item
	SelfClosing bool
}

// NewChildTemplate creates a child template item
func NewChildTemplate(name Text, arguments []TemplateArgument, children []Item, selfClosing bool, pos int) *ChildTemplate {
	return &ChildTemplate{
		pos:         pos,
		Name:        name,
		Arguments:   arguments,
		Children:    children,
		SelfClosing: selfClosing,
	}
}

// Kind returns KindChildTemplate
func (c *ChildTemplate) Kind() Kind { return KindChildTemplate }

// Offset returns the source offset
func (c *ChildTemplate) Offset() int { return c.pos }

// Argument returns the argument with the given name.
func (c *ChildTemplate) Argument(name string) (TemplateArgument, bool) {
	for _, arg := range c.Arguments {
		if arg.Name.String() == name {
			return arg, true
		}
	}
	return TemplateArgument{}, false
}

// String returns a string representation
func (c *ChildTemplate) String() string {
	if c.SelfClosing {
		return fmt.Sprintf("ChildTemplate{%s, self-close, args=%d @ %d}", c.Name, len(c.Arguments), c.pos)
	}
	return fmt.Sprintf("ChildTemplate{%s, args=%d, children=%d @ %d}",
		c.Name, len(c.Arguments), len(c.Children), c.pos)
}

// display truncates s on a rune boundary.
func display(s string) string {
	if utf8.RuneCountInString(s) <= MaxStringDisplayLength {
		return s
	}
	n := 0
	for i := range s {
		if n == TruncatedStringLength {
			return s[:i] + TruncationSuffix
		}
		n++
	}
	return s
}

// Format renders items in a compact, offset-free notation, e.g.
//
//	KeywordStatement{if "C", [Literal("A")]}, KeywordStatement{else, [Literal("B")]}
func Format(items []Item) string {
	var sb strings.Builder
	formatItems(&sb, items)
	return sb.String()
}

func formatItems(sb *strings.Builder, items []Item) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		formatItem(sb, item)
	}
}

func formatItem(sb *strings.Builder, item Item) {
	switch it := item.(type) {
	case *Literal:
		fmt.Fprintf(sb, "Literal(%q)", it.Text.String())
	case *Expression:
		fmt.Fprintf(sb, "Expression(%q)", it.Text.String())
	case *PlainStatement:
		fmt.Fprintf(sb, "PlainStatement(%q)", it.Text.String())
	case *KeywordStatement:
		sb.WriteString("KeywordStatement{")
		sb.WriteString(it.Keyword.String())
		if it.Statement != nil {
			fmt.Fprintf(sb, " %q", it.Statement.String())
		}
		sb.WriteString(", [")
		formatItems(sb, it.Body)
		sb.WriteString("]}")
	case *ChildTemplate:
		sb.WriteString("ChildTemplate{")
		sb.WriteString(it.Name.String())
		sb.WriteString(", [")
		for i, arg := range it.Arguments {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(arg.String())
		}
		sb.WriteString("], [")
		formatItems(sb, it.Children)
		sb.WriteString("]}")
	}
}
