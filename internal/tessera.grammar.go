package internal

import (
	"errors"
	"time"
	"unicode"

	"github.com/itsatony/go-tessera/ast"
	"go.uber.org/zap"
)

// ParserConfig holds template parser configuration
type ParserConfig struct {
	Syntax   SyntaxConfig // Delimiters
	MaxDepth int          // Maximum block/children nesting, 0 for unlimited
	Start    int          // Byte offset where parsing begins
}

// DefaultParserConfig returns the default parser configuration
func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		Syntax:   DefaultSyntax(),
		MaxDepth: DefaultMaxDepth,
	}
}

// TemplateParser turns template source into an item tree.
// A TemplateParser is used for a single Parse call.
type TemplateParser struct {
	source   string
	config   ParserConfig
	stops    string
	escapes  []Escape
	exprCode Parser[Pair[Span, ast.Text]]
	stmtCode Parser[Pair[Span, ast.Text]]
	keywords Parser[ast.Keyword]
	typePath Parser[Span]
	ident    Parser[Span]
	logger   *zap.Logger
}

// NewTemplateParser creates a parser with default configuration
func NewTemplateParser(source string, logger *zap.Logger) *TemplateParser {
	return NewTemplateParserWithConfig(source, DefaultParserConfig(), logger)
}

// NewTemplateParserWithConfig creates a parser with custom configuration
func NewTemplateParserWithConfig(source string, config ParserConfig, logger *zap.Logger) *TemplateParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldSource, len(source)))

	syn := config.Syntax.WithDefaults()
	config.Syntax = syn
	if config.Start < 0 || config.Start > len(source) {
		config.Start = 0
	}

	return &TemplateParser{
		source:   source,
		config:   config,
		stops:    syn.literalStops(),
		escapes:  syn.escapes(),
		exprCode: EmbeddedCode(syn.ExprOpen, syn.ExprClose, syn.EscapeMarker, ConstructExpression, ErrMsgUnterminatedExpression),
		stmtCode: EmbeddedCode(syn.StmtOpen, syn.StmtClose, syn.EscapeMarker, ConstructStatement, ErrMsgUnterminatedStatement),
		keywords: keywordParser(),
		typePath: TypePath(),
		ident:    Identifier(),
		logger:   logger,
	}
}

// Parse parses the whole source. Any syntax error aborts the parse and
// no items are returned.
func (p *TemplateParser) Parse() ([]ast.Item, error) {
	p.logger.Debug(LogMsgParserStart, zap.Int(LogFieldStart, p.config.Start))
	started := time.Now()

	c := NewCursorAt(p.source, p.config.Start)
	items, _, err := Repeated(p.item(0, &listState{}))(c)
	if err == nil && !c.IsAtEnd() {
		err = NewSyntaxError(ErrMsgUnparsedInput, "", c.Offset())
	}
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			syntaxErr.resolve(p.source)
			p.logger.Debug(LogMsgParserFailed,
				zap.String(LogFieldError, syntaxErr.Message),
				zap.Int(LogFieldLine, syntaxErr.Location.Line),
				zap.Int(LogFieldColumn, syntaxErr.Location.Column))
		}
		return nil, err
	}

	if items == nil {
		items = []ast.Item{}
	}
	p.logger.Debug(LogMsgParserEnd,
		zap.Int(LogFieldItems, len(items)),
		zap.Duration(LogFieldDuration, time.Since(started)))
	return items, nil
}

// listState tracks the previous item of one item list (top level, a
// block body or template children) to decide whether an else branch
// continues an open if chain.
type listState struct {
	last ast.Item
}

func (s *listState) observe(item ast.Item) ast.Item {
	s.last = item
	return item
}

func (s *listState) chainOpen() bool {
	stmt, ok := s.last.(*ast.KeywordStatement)
	return ok && stmt.Chained
}

// item is the top-level alternation in priority order.
func (p *TemplateParser) item(depth int, state *listState) Parser[ast.Item] {
	return Map(Select[ast.Item](
		p.escape,
		p.expression,
		p.statement(depth, state),
		p.comment,
		p.childTemplate(depth),
		p.literal,
	), state.observe)
}

func (p *TemplateParser) checkDepth(depth int, construct string, offset int) error {
	if p.config.MaxDepth > 0 && depth > p.config.MaxDepth {
		return NewSyntaxError(ErrMsgMaxDepthExceeded, construct, offset)
	}
	return nil
}

// escape recognizes an escape marker in front of an opening delimiter.
// The literal text is the delimiter itself, sliced from the source.
func (p *TemplateParser) escape(c *Cursor) (ast.Item, bool, error) {
	marker := len(p.config.Syntax.EscapeMarker)
	for _, e := range p.escapes {
		if s, ok := c.ConsumeLit(e.Needle); ok {
			text := Span{Text: s.Text[marker:], Offset: s.Offset + marker}
			return ast.NewLiteral(text.ToText(), s.Offset), true, nil
		}
	}
	return nil, false, nil
}

func (p *TemplateParser) expression(c *Cursor) (ast.Item, bool, error) {
	code, ok, err := p.exprCode(c)
	if err != nil || !ok {
		return nil, false, err
	}
	return ast.NewExpression(code.Second, code.First.Offset), true, nil
}

func (p *TemplateParser) comment(c *Cursor) (ast.Item, bool, error) {
	syn := p.config.Syntax
	open, ok := c.ConsumeLit(syn.CommentOpen)
	if !ok {
		return nil, false, nil
	}
	content := c.ConsumeUntil(syn.CommentClose)
	end, ok := c.ConsumeLit(syn.CommentClose)
	if !ok {
		return nil, false, NewSyntaxError(ErrMsgUnterminatedComment, ConstructComment, open.Offset)
	}
	whole := c.Combine(open, content, end)
	return ast.NewLiteral(whole.ToText(), whole.Offset), true, nil
}

// literal consumes one rune unconditionally, then up to the next rune
// that may start another construct.
func (p *TemplateParser) literal(c *Cursor) (ast.Item, bool, error) {
	first, ok := c.ConsumeCount(1)
	if !ok {
		return nil, false, nil
	}
	rest := c.ConsumeUntilAny(p.stops)
	whole := c.Combine(first, rest)
	return ast.NewLiteral(whole.ToText(), whole.Offset), true, nil
}

func isSpace(r rune) bool { return unicode.IsSpace(r) }
