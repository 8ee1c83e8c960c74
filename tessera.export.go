package tessera

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/itsatony/go-tessera/ast"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// ExportedItem is the tooling view of an item: a plain document with
// resolved positions, stable across releases.
type ExportedItem struct {
	Kind        string             `json:"kind" yaml:"kind"`
	Text        string             `json:"text,omitempty" yaml:"text,omitempty"`
	Keyword     string             `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Statement   *string            `json:"statement,omitempty" yaml:"statement,omitempty"`
	Body        []ExportedItem     `json:"body,omitempty" yaml:"body,omitempty"`
	Name        string             `json:"name,omitempty" yaml:"name,omitempty"`
	Arguments   []ExportedArgument `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	Children    []ExportedItem     `json:"children,omitempty" yaml:"children,omitempty"`
	SelfClosing bool               `json:"self_closing,omitempty" yaml:"self_closing,omitempty"`
	Offset      int                `json:"offset" yaml:"offset"`
	Line        int                `json:"line" yaml:"line"`
	Column      int                `json:"column" yaml:"column"`
}

// ExportedArgument is the tooling view of a template argument.
type ExportedArgument struct {
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
	Value string `json:"value" yaml:"value"`
}

const (
	yamlStrTag = "!!str"
	yamlMapTag = "!!map"
)

// MarshalYAML writes text and statement fields as quoted scalars when
// they carry surrounding whitespace, which block scalars drop.
func (e ExportedItem) MarshalYAML() (any, error) {
	type plain ExportedItem
	p := plain(e)
	p.Text, p.Statement = "", nil

	var node yaml.Node
	if err := node.Encode(p); err != nil {
		return nil, err
	}
	if e.Text != "" {
		insertScalarAfter(&node, "kind", "text", e.Text)
	}
	if e.Statement != nil {
		insertScalarAfter(&node, "keyword", "statement", *e.Statement)
	}
	return &node, nil
}

// MarshalYAML quotes argument values the same way as item text.
func (a ExportedArgument) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     yamlMapTag,
		Content: []*yaml.Node{
			yamlString("name"), yamlString(a.Name),
			yamlString("kind"), yamlString(a.Kind),
			yamlString("value"), yamlString(a.Value),
		},
	}, nil
}

func insertScalarAfter(m *yaml.Node, after, key, value string) {
	at := len(m.Content)
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == after {
			at = i + 2
			break
		}
	}
	m.Content = slices.Insert(m.Content, at, yamlString(key), yamlString(value))
}

func yamlString(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: s}
	if strings.TrimSpace(s) != s {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// ExportItems converts an item tree. source resolves offsets to lines
// and columns.
func ExportItems(items []ast.Item, source string) []ExportedItem {
	out := make([]ExportedItem, 0, len(items))
	for _, item := range items {
		out = append(out, exportItem(item, source))
	}
	return out
}

func exportItem(item ast.Item, source string) ExportedItem {
	pos := PositionAt(source, item.Offset())
	e := ExportedItem{
		Kind:   item.Kind().String(),
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}

	switch it := item.(type) {
	case *ast.Literal:
		e.Text = it.Text.String()
	case *ast.Expression:
		e.Text = it.Text.String()
	case *ast.PlainStatement:
		e.Text = it.Text.String()
	case *ast.KeywordStatement:
		e.Keyword = it.Keyword.String()
		if it.HasStatement() {
			stmt := it.StatementText()
			e.Statement = &stmt
		}
		if len(it.Body) > 0 {
			e.Body = ExportItems(it.Body, source)
		}
	case *ast.ChildTemplate:
		e.Name = it.Name.String()
		e.SelfClosing = it.SelfClosing
		for _, arg := range it.Arguments {
			e.Arguments = append(e.Arguments, exportArgument(arg))
		}
		if len(it.Children) > 0 {
			e.Children = ExportItems(it.Children, source)
		}
	}
	return e
}

func exportArgument(arg ast.TemplateArgument) ExportedArgument {
	out := ExportedArgument{
		Name: arg.Name.String(),
		Kind: arg.Value.ValueKind().String(),
	}
	switch v := arg.Value.(type) {
	case ast.StrLiteral:
		out.Value = v.Text.String()
	case ast.ExpressionValue:
		out.Value = v.Text.String()
	default:
		out.Value = v.String()
	}
	return out
}

// ExportItems converts the template's item tree.
func (t *Template) ExportItems() []ExportedItem {
	return ExportItems(t.items, t.source)
}

// ExportJSON returns the item tree as indented JSON.
func (t *Template) ExportJSON() ([]byte, error) {
	return t.Export(FormatJSON)
}

// ExportYAML returns the item tree as YAML.
func (t *Template) ExportYAML() ([]byte, error) {
	return t.Export(FormatYAML)
}

// Export returns the item tree as json, yaml or text (compact notation).
func (t *Template) Export(format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(t.ExportItems(), "", "  ")
	case FormatYAML:
		data, err = yaml.Marshal(t.ExportItems())
	case FormatText:
		data = []byte(t.String())
	default:
		return nil, NewExportError(format, nil)
	}
	if err != nil {
		return nil, NewExportError(format, err)
	}

	t.logger.Debug(LogMsgExportComplete,
		zap.String(LogFieldFormat, format),
		zap.Int(LogFieldBytes, len(data)))
	return data, nil
}
