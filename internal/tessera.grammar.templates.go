package internal

import (
	"github.com/itsatony/go-tessera/ast"
	"go.uber.org/zap"
)

// childTemplate recognizes "<Path args />" and "<Path args>children</Path>".
// Tags whose path is neither namespaced nor capitalized are plain HTML
// and fall through to the literal recognizer.
func (p *TemplateParser) childTemplate(depth int) Parser[ast.Item] {
	return func(c *Cursor) (ast.Item, bool, error) {
		start := c.Position()
		if _, ok := c.ConsumeLit(StrTagOpen); !ok {
			return nil, false, nil
		}
		c.ConsumeWhile(isSpace)

		name, ok, err := p.typePath(c)
		if err != nil {
			return nil, false, err
		}
		if !ok || !IsComponentPath(name.Text) {
			c.ResetTo(start)
			return nil, false, nil
		}

		args, err := p.arguments(c)
		if err != nil {
			return nil, false, err
		}
		c.ConsumeWhile(isSpace)

		var children []ast.Item
		selfClosing := false
		if _, ok := c.ConsumeLit(StrTagSelfClose); ok {
			selfClosing = true
		} else if _, ok := c.ConsumeLit(StrTagClose); ok {
			children, err = p.children(c, name.Text, depth+1, start.Offset())
			if err != nil {
				return nil, false, err
			}
		} else {
			return nil, false, NewSyntaxError(ErrMsgUnterminatedTemplate, ConstructTemplate, start.Offset())
		}

		p.logger.Debug(LogMsgTemplateRefSeen,
			zap.String(LogFieldTemplate, name.Text),
			zap.Int(LogFieldArguments, len(args)),
			zap.Int(LogFieldItems, len(children)))
		return ast.NewChildTemplate(name.ToText(), args, children, selfClosing, start.Offset()), true, nil
	}
}

// arguments parses whitespace separated arguments. Whitespace that is
// not followed by an argument is left for the tag close.
func (p *TemplateParser) arguments(c *Cursor) ([]ast.TemplateArgument, error) {
	var args []ast.TemplateArgument
	separator := Whitespace(1)
	for {
		before := c.Position()
		if _, ok, _ := separator(c); !ok {
			break
		}
		arg, ok, err := p.argument(c)
		if err != nil {
			return nil, err
		}
		if !ok {
			c.ResetTo(before)
			break
		}
		args = append(args, arg)
	}
	return args, nil
}

// argument parses "name" (a true flag) or "name = value".
func (p *TemplateParser) argument(c *Cursor) (ast.TemplateArgument, bool, error) {
	name, ok, err := p.ident(c)
	if err != nil || !ok {
		return ast.TemplateArgument{}, false, err
	}

	assign := Then(TakeWhile(isSpace), Then(Literal(StrAssign), TakeWhile(isSpace)))
	value, _, err := Select(
		IgnoreThen(assign, p.argumentValue()),
		Insert(ast.ArgumentValue(ast.BoolLiteral{Value: true})),
	)(c)
	if err != nil {
		return ast.TemplateArgument{}, false, err
	}
	return ast.NewTemplateArgument(name.ToText(), value, name.Offset), true, nil
}

// argumentValue accepts true, false, an expression or a quoted string.
// After "=" a value is mandatory.
func (p *TemplateParser) argumentValue() Parser[ast.ArgumentValue] {
	expr := Map(p.exprCode, func(code Pair[Span, ast.Text]) ast.ArgumentValue {
		return ast.ExpressionValue{Text: code.Second}
	})
	return Expect(Select(
		To(Literal(StrTrue), ast.ArgumentValue(ast.BoolLiteral{Value: true})),
		To(Literal(StrFalse), ast.ArgumentValue(ast.BoolLiteral{Value: false})),
		expr,
		quoted(StrDoubleQuote),
		quoted(StrSingleQuote),
	), ConstructArgument, ErrMsgUnexpectedArgValue)
}

// quoted parses a string delimited by quote, where backslash-quote
// stands for the quote itself.
func quoted(quote string) Parser[ast.ArgumentValue] {
	content := TakeUntil(Literal(quote), Escape{Needle: StrBackslash + quote, Replacement: quote})
	str := ThenExpect(IgnoreThen(Literal(quote), content), Literal(quote), ConstructString, ErrMsgUnterminatedString)
	return Map(str, func(t ast.Text) ast.ArgumentValue {
		return ast.StrLiteral{Text: t}
	})
}

// children parses template children up to the matching end tag, which
// is consumed.
func (p *TemplateParser) children(c *Cursor, name string, depth, offset int) ([]ast.Item, error) {
	if err := p.checkDepth(depth, ConstructTemplate, offset); err != nil {
		return nil, err
	}

	res, _, err := RepeatedUntil(p.item(depth, &listState{}), endTag(name))(c)
	if err != nil {
		return nil, err
	}
	if !res.Terminated {
		return nil, NewSyntaxError(ErrMsgUnterminatedTemplate, ConstructTemplate, offset)
	}
	c.ResetTo(res.TerminatorEnd)
	if res.Items == nil {
		return []ast.Item{}, nil
	}
	return res.Items, nil
}

// endTag matches "</name>", tolerating whitespace around the name.
func endTag(name string) Parser[Span] {
	ws := TakeWhile(isSpace)
	return Recognize(Then(Literal(StrEndTagOpen), Then(ws, Then(Literal(name), Then(ws, Literal(StrTagClose))))))
}
