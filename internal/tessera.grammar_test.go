package internal

import (
	"errors"
	"testing"

	"github.com/itsatony/go-tessera/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFormat(t *testing.T, source string) string {
	t.Helper()
	items, err := NewTemplateParser(source, nil).Parse()
	require.NoError(t, err)
	return ast.Format(items)
}

func TestTemplateParser_Literals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Hello, World!", `Literal("Hello, World!")`},
		{"lone brace", "{x}", `Literal("{x}")`},
		{"percent sign", "50% off", `Literal("50"), Literal("% off")`},
		{"html element", "<div>text</div>", `Literal("<div>text"), Literal("</div>")`},
		{"comment", "a<!-- {{x}} -->b", `Literal("a"), Literal("<!-- {{x}} -->"), Literal("b")`},
		{"expression escape", "%{{x}}", `Literal("{{"), Literal("x}}")`},
		{"statement escape", "%<# x #>", `Literal("<#"), Literal(" x #>")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFormat(t, tt.input))
		})
	}
}

func TestTemplateParser_Empty(t *testing.T) {
	items, err := NewTemplateParser("", nil).Parse()
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTemplateParser_EscapeIsBorrowed(t *testing.T) {
	items, err := NewTemplateParser("ab%{{", nil).Parse()
	require.NoError(t, err)
	require.Len(t, items, 2)

	lit, ok := items[1].(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "{{", lit.Text.String())
	assert.True(t, lit.Text.IsBorrowed())
	assert.Equal(t, 3, lit.Text.Offset())
	assert.Equal(t, 2, lit.Offset())
}

func TestTemplateParser_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "a {{ x }} b", `Literal("a "), Expression("x"), Literal(" b")`},
		{"adjacent", "{{a}}{{b}}", `Expression("a"), Expression("b")`},
		{"escaped close", "{{ a %}} b }}", `Expression("a }} b")`},
		{"empty", "{{}}", `Expression("")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFormat(t, tt.input))
		})
	}
}

func TestTemplateParser_Statements(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain statement", "<# x += 1; #>", `PlainStatement("x += 1;")`},
		{"keyword prefix is not a keyword", "<#iffy#>", `PlainStatement("iffy")`},
		{"escaped close", "<# a %#> b #>", `PlainStatement("a #> b")`},
		{"let", "<#let x = 1#>", `KeywordStatement{let "x = 1", []}`},
		{"block", "<#if cond#>A<#end#>", `KeywordStatement{if "cond", [Literal("A")]}`},
		{"shorthand end", "<#while ok#>A<#end>", `KeywordStatement{while "ok", [Literal("A")]}`},
		{"loop shorthand", "<#loop>x<# break #><#end>", `KeywordStatement{loop, [Literal("x"), KeywordStatement{break, []}]}`},
		{
			"balanced block",
			"<#if C#>A<#else>B<#end>",
			`KeywordStatement{if "C", [Literal("A")]}, KeywordStatement{else, [Literal("B")]}`,
		},
		{
			"if else",
			"<#if a#>A<#else>B<#end>",
			`KeywordStatement{if "a", [Literal("A")]}, KeywordStatement{else, [Literal("B")]}`,
		},
		{
			"else if chain",
			"<#if a#>A<#else if b#>B<#else#>C<#end#>",
			`KeywordStatement{if "a", [Literal("A")]}, KeywordStatement{else if "b", [Literal("B")]}, KeywordStatement{else, [Literal("C")]}`,
		},
		{
			"if else inside for",
			"<#for x in xs#><#if x#>A<#else#>B<#end#><#end#>",
			`KeywordStatement{for "x in xs", [KeywordStatement{if "x", [Literal("A")]}, KeywordStatement{else, [Literal("B")]}]}`,
		},
		{
			"nested if inside else",
			"<#if a#>A<#else#><#if b#>B<#end#><#end#>",
			`KeywordStatement{if "a", [Literal("A")]}, KeywordStatement{else, [KeywordStatement{if "b", [Literal("B")]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFormat(t, tt.input))
		})
	}
}

func TestTemplateParser_ChainedFlag(t *testing.T) {
	items, err := NewTemplateParser("<#if a#>A<#else#>B<#end#>", nil).Parse()
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0].(*ast.KeywordStatement)
	second := items[1].(*ast.KeywordStatement)
	assert.True(t, first.Chained)
	assert.False(t, second.Chained)
}

func TestTemplateParser_ChildTemplates(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"self closing", "<Foo/>", `ChildTemplate{Foo, [], []}`},
		{
			"three argument kinds",
			`<Child flag literal="a\"b" expr={{x}} />`,
			`ChildTemplate{Child, [flag=true literal="a\"b" expr={{x}}], []}`,
		},
		{"bare flags", "<Foo a b/>", `ChildTemplate{Foo, [a=true b=true], []}`},
		{"spaced assignment", `<Foo a = "x" />`, `ChildTemplate{Foo, [a="x"], []}`},
		{"namespaced lowercase", "<a::b/>", `ChildTemplate{a::b, [], []}`},
		{"lone backslash kept", `<Foo a="x\y"/>`, `ChildTemplate{Foo, [a="x\\y"], []}`},
		{"single quotes", `<Foo a='it\'s'/>`, `ChildTemplate{Foo, [a="it's"], []}`},
		{
			"all value kinds",
			`<ui::Button label="Hi \"x\"" on={{ click }} disabled=false>Text</ui::Button>`,
			`ChildTemplate{ui::Button, [label="Hi \"x\"" on={{click}} disabled=false], [Literal("Text")]}`,
		},
		{"nested same name", "<Foo><Foo/></Foo>", `ChildTemplate{Foo, [], [ChildTemplate{Foo, [], []}]}`},
		{"spaced end tag", "<Foo>x</ Foo >", `ChildTemplate{Foo, [], [Literal("x")]}`},
		{
			"children with blocks",
			"<List><#for i in items#><Item v={{i}}/><#end#></List>",
			`ChildTemplate{List, [], [KeywordStatement{for "i in items", [ChildTemplate{Item, [v={{i}}], []}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFormat(t, tt.input))
		})
	}
}

func TestTemplateParser_ChildTemplateDetails(t *testing.T) {
	items, err := NewTemplateParser(`x<Foo a="v" b/>`, nil).Parse()
	require.NoError(t, err)
	require.Len(t, items, 2)

	tmpl, ok := items[1].(*ast.ChildTemplate)
	require.True(t, ok)
	assert.True(t, tmpl.SelfClosing)
	assert.Equal(t, 1, tmpl.Offset())
	assert.Equal(t, "Foo", tmpl.Name.String())

	arg, ok := tmpl.Argument("a")
	require.True(t, ok)
	assert.Equal(t, ast.ValueKindStr, arg.Value.ValueKind())
	str := arg.Value.(ast.StrLiteral)
	assert.True(t, str.Text.IsBorrowed())
	assert.Equal(t, 9, str.Text.Offset())

	_, ok = tmpl.Argument("missing")
	assert.False(t, ok)
}

func TestTemplateParser_QuotedBackslashes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		borrowed bool
	}{
		{"path separator kept", `<Foo a="C:\dir\x"/>`, `C:\dir\x`, true},
		{"backslash before space kept", `<Foo a="x\ "/>`, `x\ `, true},
		{"other quote escape kept", `<Foo a='a\"b'/>`, `a\"b`, true},
		{"other quote escape kept in double quotes", `<Foo a="a\'b"/>`, `a\'b`, true},
		{"matching quote escaped", `<Foo a="a\"b"/>`, `a"b`, false},
		{"doubled backslash before quote", `<Foo a="a\\"b"/>`, `a\"b`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := NewTemplateParser(tt.input, nil).Parse()
			require.NoError(t, err)
			require.Len(t, items, 1)

			tmpl, ok := items[0].(*ast.ChildTemplate)
			require.True(t, ok)
			arg, ok := tmpl.Argument("a")
			require.True(t, ok)
			str, ok := arg.Value.(ast.StrLiteral)
			require.True(t, ok)
			assert.Equal(t, tt.expected, str.Text.String())
			assert.Equal(t, tt.borrowed, str.Text.IsBorrowed())
		})
	}

	_, err := NewTemplateParser(`<Foo a="x\"/>`, nil).Parse()
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr), "a backslash before the closing quote escapes it")
	assert.Equal(t, ErrMsgUnterminatedString, syntaxErr.Message)
}

func TestTemplateParser_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		message   string
		construct string
		line      int
		column    int
	}{
		{"unterminated expression", "ab\ncd{{ x", ErrMsgUnterminatedExpression, ConstructExpression, 2, 3},
		{"unterminated statement", "<# x", ErrMsgUnterminatedStatement, ConstructStatement, 1, 1},
		{"unterminated keyword statement", "<#if x", ErrMsgUnterminatedStatement, ConstructStatement, 1, 1},
		{"unterminated comment", "a<!-- x", ErrMsgUnterminatedComment, ConstructComment, 1, 2},
		{"unterminated block", "<#if a#>A", ErrMsgUnterminatedBlock, ConstructBlock, 1, 1},
		{"stray end", "A<#end#>", ErrMsgUnexpectedEnd, ConstructStatement, 1, 2},
		{"orphan else", "<#else#>", ErrMsgOrphanBranch, ConstructStatement, 1, 1},
		{"else after text", "<#if a#>A<#end#>x<#else#>", ErrMsgOrphanBranch, ConstructStatement, 1, 18},
		{"else not last", "<#if a#>A<#else#>B<#else#>C<#end#>", ErrMsgElseNotLast, ConstructStatement, 1, 19},
		{"else after loop", "<#for x#>A<#else#>B<#end#>", ErrMsgBranchAfterLoop, ConstructStatement, 1, 11},
		{"orphan else in children", "<Foo><#else#></Foo>", ErrMsgOrphanBranch, ConstructStatement, 1, 6},
		{"unterminated tag", "<Foo", ErrMsgUnterminatedTemplate, ConstructTemplate, 1, 1},
		{"unterminated children", "<Foo>bar", ErrMsgUnterminatedTemplate, ConstructTemplate, 1, 1},
		{"mismatched end tag", "<Foo>bar</Bar>", ErrMsgUnterminatedTemplate, ConstructTemplate, 1, 1},
		{"missing argument value", "<Foo a=>", ErrMsgUnexpectedArgValue, ConstructArgument, 1, 8},
		{"unterminated string", `<Foo a="x/>`, ErrMsgUnterminatedString, ConstructString, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := NewTemplateParser(tt.input, nil).Parse()
			require.Error(t, err)
			assert.Nil(t, items)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.message, syntaxErr.Message)
			assert.Equal(t, tt.construct, syntaxErr.Construct)
			assert.Equal(t, tt.line, syntaxErr.Location.Line)
			assert.Equal(t, tt.column, syntaxErr.Location.Column)
		})
	}
}

func TestTemplateParser_MaxDepth(t *testing.T) {
	source := "<#if a#><#if b#>x<#end#><#end#>"

	config := DefaultParserConfig()
	config.MaxDepth = 1
	_, err := NewTemplateParserWithConfig(source, config, nil).Parse()
	var syntaxErr *SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, ErrMsgMaxDepthExceeded, syntaxErr.Message)
	assert.Equal(t, 8, syntaxErr.Location.Offset)

	config.MaxDepth = 2
	_, err = NewTemplateParserWithConfig(source, config, nil).Parse()
	assert.NoError(t, err)

	config.MaxDepth = 0
	_, err = NewTemplateParserWithConfig(source, config, nil).Parse()
	assert.NoError(t, err, "zero means unlimited")
}

func TestTemplateParser_StartOffset(t *testing.T) {
	config := DefaultParserConfig()
	config.Start = 5
	items, err := NewTemplateParserWithConfig("xxxxxhello", config, nil).Parse()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Offset())
	assert.Equal(t, `Literal("hello")`, ast.Format(items))
}

func TestTemplateParser_CustomSyntax(t *testing.T) {
	config := DefaultParserConfig()
	config.Syntax = SyntaxConfig{ExprOpen: "${", ExprClose: "}"}
	items, err := NewTemplateParserWithConfig("a ${ x } {b}", config, nil).Parse()
	require.NoError(t, err)
	assert.Equal(t, `Literal("a "), Expression("x"), Literal(" {b}")`, ast.Format(items))
}

func TestTemplateParser_LiteralsAreSourceSlices(t *testing.T) {
	source := "Hi <b>{{ user.name }}</b>!\n<#if admin#><Badge kind=\"gold\"/> ok<#end#> 100%"
	items, err := NewTemplateParser(source, nil).Parse()
	require.NoError(t, err)

	ast.Walk(items, func(item ast.Item, _ int) bool {
		lit, ok := item.(*ast.Literal)
		if !ok {
			return true
		}
		require.True(t, lit.Text.IsBorrowed())
		start := lit.Text.Offset()
		assert.Equal(t, source[start:start+lit.Text.Len()], lit.Text.String())
		return true
	})
}

func TestTemplateParser_UnescapedRoundTrip(t *testing.T) {
	source := "<p class=\"x\">Plain {text} with 5% and a <br/> tag</p>\n"
	items, err := NewTemplateParser(source, nil).Parse()
	require.NoError(t, err)

	var joined string
	for _, item := range items {
		lit, ok := item.(*ast.Literal)
		require.True(t, ok)
		joined += lit.Text.String()
	}
	assert.Equal(t, source, joined)
}
