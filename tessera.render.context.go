package tessera

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
)

// Component is a compiled template. Generated code implements Render by
// writing literals and expression results through the RenderContext.
type Component interface {
	Render(rc *RenderContext) error
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(rc *RenderContext) error

// Render calls f(rc).
func (f ComponentFunc) Render(rc *RenderContext) error { return f(rc) }

// Children is the content passed between a child template's tags. It
// renders with the context of the template that receives it.
type Children func(rc *RenderContext) error

// RenderContext carries the output writer, the escaper of the current
// content type and the parameters visible to the template being rendered.
type RenderContext struct {
	w      io.Writer
	esc    Escaper
	params *Params
}

// NewRenderContext creates a render context. A nil escaper renders
// HTML.
func NewRenderContext(w io.Writer, esc Escaper, params *Params) *RenderContext {
	if esc == nil {
		esc = HTMLEscaper
	}
	return &RenderContext{w: w, esc: esc, params: params}
}

// Writer returns the output writer.
func (rc *RenderContext) Writer() io.Writer { return rc.w }

// Escaper returns the active escaper.
func (rc *RenderContext) Escaper() Escaper { return rc.esc }

// Params returns the parameters visible at this point.
func (rc *RenderContext) Params() *Params { return rc.params }

// WithParams returns a context sharing the writer and escaper with a
// different parameter store.
func (rc *RenderContext) WithParams(p *Params) *RenderContext {
	return &RenderContext{w: rc.w, esc: rc.esc, params: p}
}

// RenderLiteral writes template text verbatim.
func (rc *RenderContext) RenderLiteral(s string) error {
	_, err := io.WriteString(rc.w, s)
	return err
}

// RenderExpression writes an expression result. Children render in
// place; every other value goes through Value.
func (rc *RenderContext) RenderExpression(v any) error {
	switch x := v.(type) {
	case Children:
		return rc.RenderChildren(x)
	case Component:
		return rc.RenderTemplate(x)
	default:
		return renderValue(rc.w, rc.esc, v)
	}
}

// RenderRenderable renders r with the active escaper.
func (rc *RenderContext) RenderRenderable(r Renderable) error {
	if r == nil {
		return nil
	}
	return r.Render(rc.w, rc.esc)
}

// RenderTemplate renders a child template, which inherits the current
// parameters.
func (rc *RenderContext) RenderTemplate(c Component) error {
	if c == nil {
		return nil
	}
	return c.Render(rc)
}

// RenderChildren renders child content. Nil children render nothing.
func (rc *RenderContext) RenderChildren(children Children) error {
	if children == nil {
		return nil
	}
	return children(rc)
}

// Provide wraps inner so that it, and every template it renders, sees
// param in addition to the parameters of the enclosing template.
func Provide[P any](inner Component, param P) Component {
	return ComponentFunc(func(rc *RenderContext) error {
		return rc.WithParams(WithParam(rc.params, param)).RenderTemplate(inner)
	})
}

// Render renders c to w with the escaper of contentType.
func Render(w io.Writer, c Component, contentType ContentType) error {
	if c == nil {
		return NewRenderError(nil)
	}
	if err := c.Render(NewRenderContext(w, contentType.Escaper(), nil)); err != nil {
		return NewRenderError(err)
	}
	return nil
}

// RenderToString renders c into a string.
func RenderToString(c Component, contentType ContentType) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, c, contentType); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FromNode embeds a gomponents node. The node escapes its own text.
func FromNode(n g.Node) Renderable {
	return RenderableFunc(func(w io.Writer, _ Escaper) error {
		if n == nil {
			return nil
		}
		return n.Render(w)
	})
}

// ToNode exposes a component as a gomponents node.
func ToNode(c Component, contentType ContentType) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return c.Render(NewRenderContext(w, contentType.Escaper(), nil))
	})
}
