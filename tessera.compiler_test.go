package tessera

import (
	"errors"
	"sync"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-tessera/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, ContentTypeHTML, c.ContentType())
	assert.Equal(t, DefaultMaxDepth, c.MaxDepth())
	assert.Equal(t, DefaultSyntax(), c.Syntax())
	assert.Empty(t, c.Names())
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithMaxDepth(-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidMaxDepth)

	_, err = New(WithDelimiters("<#", "", "<#", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidSyntax)

	assert.Panics(t, func() { MustNew(WithMaxDepth(-1)) })
}

func TestCompiler_Parse(t *testing.T) {
	c := MustNew()
	tmpl, err := c.Parse(`<#if admin#><Badge level="gold"/><#else>guest<#end>`)
	require.NoError(t, err)

	assert.Equal(t,
		`KeywordStatement{if "admin", [ChildTemplate{Badge, [level="gold"], []}]}, KeywordStatement{else, [Literal("guest")]}`,
		tmpl.String())
	assert.Equal(t, ContentTypeHTML, tmpl.ContentType())
	assert.Equal(t, "", tmpl.Name())
	assert.Equal(t, tmpl.Source(), tmpl.Body())
}

func TestCompiler_ParseError(t *testing.T) {
	c := MustNew()
	_, err := c.Parse("Hello\n  {{ name")
	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	line, _ := customErr.GetMetadata(MetaKeyLine)
	column, _ := customErr.GetMetadata(MetaKeyColumn)
	assert.Equal(t, "2", line)
	assert.Equal(t, "3", column)

	pos, ok := ErrorPosition(err)
	require.True(t, ok)
	assert.Equal(t, 8, pos.Offset)
}

func TestCompiler_ParseAs(t *testing.T) {
	c := MustNew(WithFrontmatter(true))
	tmpl, err := c.ParseAs("---\ncontent_type: html\n---\nhi", ContentTypePlain)
	require.NoError(t, err)
	assert.Equal(t, ContentTypePlain, tmpl.ContentType(), "ParseAs wins over frontmatter")
}

func TestCompiler_Frontmatter(t *testing.T) {
	source := "---\nname: greeting\ncontent_type: plain\n---\nHi {{ who }}"

	t.Run("enabled", func(t *testing.T) {
		c := MustNew(WithFrontmatter(true))
		tmpl, err := c.Parse(source)
		require.NoError(t, err)
		assert.Equal(t, "greeting", tmpl.Name())
		assert.Equal(t, ContentTypePlain, tmpl.ContentType())
		assert.Equal(t, "Hi {{ who }}", tmpl.Body())
		require.Len(t, tmpl.Items(), 2)

		pos := tmpl.Position(tmpl.Items()[1].Offset())
		assert.Equal(t, 5, pos.Line)
		assert.Equal(t, 4, pos.Column)
	})

	t.Run("disabled", func(t *testing.T) {
		c := MustNew()
		tmpl, err := c.Parse(source)
		require.NoError(t, err)
		assert.Equal(t, "", tmpl.Name())
		assert.Equal(t, ContentTypeHTML, tmpl.ContentType())
	})

	t.Run("invalid content type", func(t *testing.T) {
		c := MustNew(WithFrontmatter(true))
		_, err := c.Parse("---\ncontent_type: xml\n---\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidContentType)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		c := MustNew(WithFrontmatter(true))
		_, err := c.Parse("---\nname: [unclosed\n---\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFrontmatterInvalid)
	})

	t.Run("unclosed block", func(t *testing.T) {
		c := MustNew(WithFrontmatter(true))
		_, err := c.Parse("---\nname: x\n")
		require.Error(t, err)
		pos, ok := ErrorPosition(err)
		require.True(t, ok)
		assert.Equal(t, 1, pos.Line)
	})
}

func TestCompiler_CustomDelimiters(t *testing.T) {
	c := MustNew(WithDelimiters("${", "}", "{%", "%}"))
	tmpl, err := c.Parse("${ x }{%if y%}z{%end%}")
	require.NoError(t, err)
	assert.Equal(t, `Expression("x"), KeywordStatement{if "y", [Literal("z")]}`, tmpl.String())
}

func TestCompiler_MaxDepth(t *testing.T) {
	source := "<A><B><C/></B></A>"

	_, err := MustNew(WithMaxDepth(1)).Parse(source)
	require.Error(t, err)

	_, err = MustNew(WithMaxDepth(2)).Parse(source)
	require.NoError(t, err)
}

func TestCompiler_Registry(t *testing.T) {
	c := MustNew()

	require.NoError(t, c.Register("Card", `<div class="card">{{ children }}</div>`))
	c.MustRegister("Badge", "<b>{{ label }}</b>")

	err := c.Register("Card", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgTemplateExists)

	err = c.Register("", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEmptyTemplateName)

	err = c.Register("Broken", "{{")
	require.Error(t, err)
	assert.False(t, c.Has("Broken"))

	assert.Equal(t, []string{"Badge", "Card"}, c.Names())

	tmpl, ok := c.Lookup("Card")
	require.True(t, ok)
	assert.Equal(t, "Card", tmpl.Name())

	_, err = c.Get("Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgTemplateNotFound)

	assert.True(t, c.Unregister("Badge"))
	assert.False(t, c.Unregister("Badge"))
	assert.Equal(t, []string{"Card"}, c.Names())

	assert.Panics(t, func() { c.MustRegister("Card", "x") })
}

func TestCompiler_ConcurrentRegister(t *testing.T) {
	c := MustNew()
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			assert.NoError(t, c.Register(name, "<"+name+"/>"))
			_, _ = c.Lookup(name)
			_ = c.Names()
		}(name)
	}
	wg.Wait()

	assert.Equal(t, names, c.Names())
}

func TestTemplate_Components(t *testing.T) {
	c := MustNew()
	tmpl, err := c.Parse(`<Layout><Card/><#for x in xs#><Card/><ui::Row/><#end#></Layout><div/>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Layout", "Card", "ui::Row"}, tmpl.Components())

	count := 0
	tmpl.Walk(func(item ast.Item, _ int) bool {
		count++
		return true
	})
	assert.Equal(t, 6, count)
}

func TestCompiler_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := MustNew(WithLogger(zap.New(core)))

	require.NoError(t, c.Register("Card", "x"))

	assert.Equal(t, 1, logs.FilterMessage(LogMsgCompilerCreated).Len())
	assert.Equal(t, 1, logs.FilterMessage(LogMsgTemplateParsed).Len())
	registered := logs.FilterMessage(LogMsgTemplateRegistered).All()
	require.Len(t, registered, 1)
	assert.Equal(t, "Card", registered[0].ContextMap()[LogFieldTemplateName])
}
