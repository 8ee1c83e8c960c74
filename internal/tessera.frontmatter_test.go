package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFrontmatter(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		hasBlock   bool
		yaml       string
		bodyOffset int
	}{
		{
			name:       "no frontmatter",
			input:      "Hello {{ name }}",
			hasBlock:   false,
			bodyOffset: 0,
		},
		{
			name:       "with frontmatter",
			input:      "---\ncontent_type: plain\n---\nHello",
			hasBlock:   true,
			yaml:       "content_type: plain\n",
			bodyOffset: 28,
		},
		{
			name:       "empty block",
			input:      "---\n---\nbody",
			hasBlock:   true,
			yaml:       "",
			bodyOffset: 8,
		},
		{
			name:       "crlf line endings",
			input:      "---\r\nname: x\r\n---\r\nbody",
			hasBlock:   true,
			yaml:       "name: x\r\n",
			bodyOffset: 19,
		},
		{
			name:       "closing delimiter at end of input",
			input:      "---\nname: x\n---",
			hasBlock:   true,
			yaml:       "name: x\n",
			bodyOffset: 15,
		},
		{
			name:     "delimiter not on first line",
			input:    "text\n---\na: b\n---\n",
			hasBlock: false,
		},
		{
			name:       "blanks after delimiters",
			input:      "--- \t\nname: x\n---  \nbody",
			hasBlock:   true,
			yaml:       "name: x\n",
			bodyOffset: 20,
		},
		{
			name:       "dashes inside block content",
			input:      "---\nnote: ---x\n----\n---\nbody",
			hasBlock:   true,
			yaml:       "note: ---x\n----\n",
			bodyOffset: 24,
		},
		{
			name:     "four dashes do not open a block",
			input:    "----\nbody",
			hasBlock: false,
		},
		{
			name:     "dashes without newline",
			input:    "---",
			hasBlock: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtractFrontmatter(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.hasBlock, result.HasFrontmatter)
			assert.Equal(t, tt.yaml, result.YAML)
			assert.Equal(t, tt.bodyOffset, result.BodyOffset)
		})
	}
}

func TestExtractFrontmatter_Unclosed(t *testing.T) {
	for _, input := range []string{"---\nname: x\nHello", "---\n", "---\nname: x\n--- x\n"} {
		t.Run(input, func(t *testing.T) {
			result, err := ExtractFrontmatter(input)
			assert.Nil(t, result)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, ErrMsgFrontmatterUnclosed, syntaxErr.Message)
			assert.Equal(t, ConstructFrontmatter, syntaxErr.Construct)
		})
	}
}

func TestExtractFrontmatter_BodyParsesWithSourceOffsets(t *testing.T) {
	source := "---\nname: card\n---\nHi {{ who }}"
	fm, err := ExtractFrontmatter(source)
	require.NoError(t, err)

	config := DefaultParserConfig()
	config.Start = fm.BodyOffset
	items, err := NewTemplateParserWithConfig(source, config, nil).Parse()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, fm.BodyOffset, items[0].Offset())
	assert.Equal(t, "Hi ", source[items[0].Offset():items[1].Offset()])
}
