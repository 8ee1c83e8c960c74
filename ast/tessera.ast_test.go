package ast

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyword_Predicates(t *testing.T) {
	tests := []struct {
		keyword    Keyword
		hasBody    bool
		terminator bool
	}{
		{KeywordIf, true, false},
		{KeywordElse, true, true},
		{KeywordElseIf, true, true},
		{KeywordFor, true, false},
		{KeywordWhile, true, false},
		{KeywordLoop, true, false},
		{KeywordEnd, false, true},
		{KeywordBreak, false, false},
		{KeywordContinue, false, false},
		{KeywordLet, false, false},
	}

	require.Len(t, tests, len(Keywords()))
	for _, tt := range tests {
		t.Run(tt.keyword.String(), func(t *testing.T) {
			assert.Equal(t, tt.hasBody, tt.keyword.HasBody())
			assert.Equal(t, tt.terminator, tt.keyword.IsBlockTerminator())
		})
	}
}

func TestParseKeyword(t *testing.T) {
	k, ok := ParseKeyword("else if")
	require.True(t, ok)
	assert.Equal(t, KeywordElseIf, k)

	_, ok = ParseKeyword("elif")
	assert.False(t, ok)

	assert.Equal(t, KeywordNameUnknown, Keyword(99).String())
}

func TestText(t *testing.T) {
	b := Borrowed("abc", 4)
	assert.True(t, b.IsBorrowed())
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 4, b.Offset())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, TextKindNameBorrowed, b.Kind().String())

	o := Owned("{{", 0)
	assert.False(t, o.IsBorrowed())
	assert.Equal(t, TextKindNameOwned, o.Kind().String())
	assert.False(t, o.IsEmpty())
	assert.True(t, Text{}.IsEmpty())
}

func sampleTree() []Item {
	cond := Borrowed("C", 5)
	return []Item{
		NewKeywordStatement(KeywordIf, &cond, []Item{
			NewLiteral(Borrowed("A", 8), 8),
			NewChildTemplate(Borrowed("Foo", 10), []TemplateArgument{
				NewTemplateArgument(Borrowed("flag", 14), BoolLiteral{Value: true}, 14),
			}, []Item{NewExpression(Borrowed("x", 23), 21)}, false, 9),
		}, 0),
		NewKeywordStatement(KeywordElse, nil, []Item{NewLiteral(Borrowed("B", 40), 40)}, 33),
	}
}

func TestFormat(t *testing.T) {
	got := Format(sampleTree())
	assert.Equal(t,
		`KeywordStatement{if "C", [Literal("A"), ChildTemplate{Foo, [flag=true], [Expression("x")]}]}, `+
			`KeywordStatement{else, [Literal("B")]}`,
		got)
}

func TestWalk(t *testing.T) {
	var kinds []Kind
	var depths []int
	Walk(sampleTree(), func(item Item, depth int) bool {
		kinds = append(kinds, item.Kind())
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []Kind{
		KindKeywordStatement, KindLiteral, KindChildTemplate, KindExpression,
		KindKeywordStatement, KindLiteral,
	}, kinds)
	assert.Equal(t, []int{0, 1, 1, 2, 0, 1}, depths)

	t.Run("skip children", func(t *testing.T) {
		n := 0
		Walk(sampleTree(), func(item Item, depth int) bool {
			n++
			return false
		})
		assert.Equal(t, 2, n)
	})

	assert.Equal(t, 1, Count(sampleTree(), KindExpression))
	assert.Equal(t, 2, MaxDepth(sampleTree()))
}

func TestItemStrings(t *testing.T) {
	tree := sampleTree()
	assert.Equal(t, `KeywordStatement{if "C", body=2 @ 0}`, tree[0].String())
	assert.Equal(t, `KeywordStatement{else, body=1 @ 33}`, tree[1].String())

	child := tree[0].(*KeywordStatement).Body[1].(*ChildTemplate)
	assert.Equal(t, "ChildTemplate{Foo, args=1, children=1 @ 9}", child.String())

	arg, ok := child.Argument("flag")
	require.True(t, ok)
	assert.Equal(t, ValueKindBool, arg.Value.ValueKind())
	_, ok = child.Argument("missing")
	assert.False(t, ok)

	long := NewLiteral(Borrowed(string(make([]byte, 60)), 0), 0)
	assert.Contains(t, long.String(), TruncationSuffix)
}

func TestDisplay_TruncatesOnRuneBoundary(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		truncated bool
	}{
		{"short", "abc", false},
		{"exact limit in runes", strings.Repeat("日", MaxStringDisplayLength), false},
		{"multibyte over limit", strings.Repeat("日", 60), true},
		{"mixed widths", strings.Repeat("aé", 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := display(tt.input)
			assert.True(t, utf8.ValidString(out))
			if !tt.truncated {
				assert.Equal(t, tt.input, out)
				return
			}
			require.True(t, strings.HasSuffix(out, TruncationSuffix))
			kept := strings.TrimSuffix(out, TruncationSuffix)
			assert.Equal(t, TruncatedStringLength, utf8.RuneCountInString(kept))
			assert.True(t, strings.HasPrefix(tt.input, kept))
		})
	}

	lit := NewLiteral(Borrowed(strings.Repeat("ü", 55), 0), 0)
	assert.True(t, utf8.ValidString(lit.String()))
}

func TestArgumentValues(t *testing.T) {
	assert.Equal(t, `"a\"b"`, StrLiteral{Text: Owned(`a"b`, 0)}.String())
	assert.Equal(t, "false", BoolLiteral{}.String())
	assert.Equal(t, "{{x}}", ExpressionValue{Text: Borrowed("x", 0)}.String())
	assert.Equal(t, ValueKindNameExpression, ValueKindExpression.String())
}
