package internal

import (
	"github.com/itsatony/go-tessera/ast"
	"go.uber.org/zap"
)

// statementHead is the opening tag of a keyword statement, without body.
type statementHead struct {
	keyword   ast.Keyword
	statement *ast.Text
	offset    int
}

// keywordParser matches a keyword spelling. "else" followed by optional
// whitespace and "if" is else-if; all other keywords are single words.
func keywordParser() Parser[ast.Keyword] {
	elseIf := Then(Literal(KwElse), Then(TakeWhile(isSpace), Literal(KwIf)))
	return Select(
		To(Literal(KwIf), ast.KeywordIf),
		To(elseIf, ast.KeywordElseIf),
		To(Literal(KwElse), ast.KeywordElse),
		To(Literal(KwFor), ast.KeywordFor),
		To(Literal(KwWhile), ast.KeywordWhile),
		To(Literal(KwLoop), ast.KeywordLoop),
		To(Literal(KwEnd), ast.KeywordEnd),
		To(Literal(KwBreak), ast.KeywordBreak),
		To(Literal(KwContinue), ast.KeywordContinue),
		To(Literal(KwLet), ast.KeywordLet),
	)
}

func (p *TemplateParser) statement(depth int, state *listState) Parser[ast.Item] {
	return Select[ast.Item](p.keywordStatement(depth, state), p.plainStatement)
}

func (p *TemplateParser) plainStatement(c *Cursor) (ast.Item, bool, error) {
	code, ok, err := p.stmtCode(c)
	if err != nil || !ok {
		return nil, false, err
	}
	return ast.NewPlainStatement(code.Second, code.First.Offset), true, nil
}

// statementHead recognizes "<#keyword>", "<#keyword#>" and
// "<#keyword payload#>". Anything else is no match, leaving the tag to
// the plain statement recognizer.
func (p *TemplateParser) statementHead(c *Cursor) (statementHead, bool, error) {
	syn := p.config.Syntax
	start := c.Position()
	if _, ok := c.ConsumeLit(syn.StmtOpen); !ok {
		return statementHead{}, false, nil
	}
	c.ConsumeWhile(isSpace)

	keyword, ok, err := p.keywords(c)
	if err != nil {
		return statementHead{}, false, err
	}
	if !ok {
		c.ResetTo(start)
		return statementHead{}, false, nil
	}

	head := statementHead{keyword: keyword, offset: start.Offset()}
	ws := c.ConsumeWhile(isSpace)
	if _, ok := c.ConsumeLit(StrShorthandClose); ok {
		return head, true, nil
	}
	if _, ok := c.ConsumeLit(syn.StmtClose); ok {
		return head, true, nil
	}
	if ws.IsEmpty() {
		c.ResetTo(start)
		return statementHead{}, false, nil
	}

	esc := Escape{Needle: syn.EscapeMarker + syn.StmtClose, Replacement: syn.StmtClose}
	content, _, err := TakeUntil(Literal(syn.StmtClose), esc)(c)
	if err != nil {
		return statementHead{}, false, err
	}
	if _, ok := c.ConsumeLit(syn.StmtClose); !ok {
		return statementHead{}, false, NewSyntaxError(ErrMsgUnterminatedStatement, ConstructStatement, head.offset)
	}
	trimmed := TrimText(content)
	head.statement = &trimmed
	return head, true, nil
}

func (p *TemplateParser) keywordStatement(depth int, state *listState) Parser[ast.Item] {
	return func(c *Cursor) (ast.Item, bool, error) {
		head, ok, err := p.statementHead(c)
		if err != nil || !ok {
			return nil, false, err
		}

		switch {
		case head.keyword == ast.KeywordEnd:
			return nil, false, NewSyntaxError(ErrMsgUnexpectedEnd, ConstructStatement, head.offset)
		case head.keyword.IsBranch() && !state.chainOpen():
			return nil, false, NewSyntaxError(ErrMsgOrphanBranch, ConstructStatement, head.offset)
		}

		stmt := ast.NewKeywordStatement(head.keyword, head.statement, nil, head.offset)
		if !head.keyword.HasBody() {
			return stmt, true, nil
		}

		body, chained, err := p.body(c, head, depth+1)
		if err != nil {
			return nil, false, err
		}
		stmt.Body = body
		stmt.Chained = chained

		p.logger.Debug(LogMsgBlockParsed,
			zap.String(LogFieldKeyword, head.keyword.String()),
			zap.Int(LogFieldItems, len(body)),
			zap.Int(LogFieldDepth, depth+1))
		return stmt, true, nil
	}
}

// body collects the items of a block until an end statement, which is
// consumed, or an else branch, which is left for the enclosing list.
// An else branch only ends the body when no if chain inside the body is
// waiting for it. chained reports that the body was ended by a branch.
func (p *TemplateParser) body(c *Cursor, head statementHead, depth int) (items []ast.Item, chained bool, err error) {
	if err := p.checkDepth(depth, ConstructBlock, head.offset); err != nil {
		return nil, false, err
	}

	state := &listState{}
	terminator := Parser[statementHead](p.statementHead).Filter(func(h statementHead) bool {
		return h.keyword.IsBlockTerminator() && !(h.keyword.IsBranch() && state.chainOpen())
	})

	res, _, err := RepeatedUntil(p.item(depth, state), terminator)(c)
	if err != nil {
		return nil, false, err
	}
	if !res.Terminated {
		return nil, false, NewSyntaxError(ErrMsgUnterminatedBlock, ConstructBlock, head.offset)
	}

	if res.Terminator.keyword == ast.KeywordEnd {
		c.ResetTo(res.TerminatorEnd)
		return res.Items, false, nil
	}

	switch head.keyword {
	case ast.KeywordIf, ast.KeywordElseIf:
		return res.Items, true, nil
	case ast.KeywordElse:
		return nil, false, NewSyntaxError(ErrMsgElseNotLast, ConstructStatement, res.Terminator.offset)
	default:
		return nil, false, NewSyntaxError(ErrMsgBranchAfterLoop, ConstructStatement, res.Terminator.offset)
	}
}
