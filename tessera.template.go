package tessera

import (
	"github.com/itsatony/go-tessera/ast"
	"go.uber.org/zap"
)

// Template is a parsed template source. It is immutable and safe for
// concurrent use.
type Template struct {
	name        string
	source      string
	bodyOffset  int
	contentType ContentType
	items       []ast.Item
	logger      *zap.Logger
}

// Name returns the registered or frontmatter name, or "" for anonymous
// templates.
func (t *Template) Name() string { return t.name }

// Source returns the full template source, including any frontmatter.
func (t *Template) Source() string { return t.source }

// Body returns the source after the frontmatter block.
func (t *Template) Body() string { return t.source[t.bodyOffset:] }

// ContentType returns the content type the template renders as.
func (t *Template) ContentType() ContentType { return t.contentType }

// Items returns the top-level items. Offsets in the tree are byte
// offsets into Source.
func (t *Template) Items() []ast.Item { return t.items }

// Position resolves a byte offset of the source to line and column.
func (t *Template) Position(offset int) Position {
	return PositionAt(t.source, offset)
}

// Walk visits every item of the template depth-first.
func (t *Template) Walk(fn ast.WalkFunc) {
	ast.Walk(t.items, fn)
}

// Components returns the distinct child template names in order of
// first use.
func (t *Template) Components() []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	t.Walk(func(item ast.Item, _ int) bool {
		if ct, ok := item.(*ast.ChildTemplate); ok {
			name := ct.Name.String()
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		return true
	})
	return names
}

// String returns the item tree in compact notation.
func (t *Template) String() string {
	return ast.Format(t.items)
}
