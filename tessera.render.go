package tessera

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Escaper maps raw text to text that is safe in the output context.
type Escaper interface {
	Escape(s string) string
}

// EscaperFunc adapts a function to the Escaper interface.
type EscaperFunc func(string) string

// Escape calls f(s).
func (f EscaperFunc) Escape(s string) string { return f(s) }

const htmlSpecialChars = "&<>\"'"

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

type htmlEscaper struct{}

// Escape returns s itself when nothing needs escaping.
func (htmlEscaper) Escape(s string) string {
	if !strings.ContainsAny(s, htmlSpecialChars) {
		return s
	}
	return htmlReplacer.Replace(s)
}

type plainEscaper struct{}

func (plainEscaper) Escape(s string) string { return s }

var (
	// HTMLEscaper replaces & < > " ' with HTML entities.
	HTMLEscaper Escaper = htmlEscaper{}
	// PlainEscaper leaves text unchanged.
	PlainEscaper Escaper = plainEscaper{}
)

// ContentType selects the escaper used for a template's output.
type ContentType int

const (
	ContentTypeHTML ContentType = iota
	ContentTypePlain
)

// String returns the configuration name of the content type
func (ct ContentType) String() string {
	switch ct {
	case ContentTypePlain:
		return ContentTypeNamePlain
	default:
		return ContentTypeNameHTML
	}
}

// Escaper returns the escaper for the content type.
func (ct ContentType) Escaper() Escaper {
	if ct == ContentTypePlain {
		return PlainEscaper
	}
	return HTMLEscaper
}

// ParseContentType parses "html" or "plain", case-insensitively.
func ParseContentType(name string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ContentTypeNameHTML:
		return ContentTypeHTML, nil
	case ContentTypeNamePlain:
		return ContentTypePlain, nil
	default:
		return ContentTypeHTML, NewInvalidContentTypeError(name)
	}
}

// Renderable writes itself to w, escaping untrusted text with esc.
type Renderable interface {
	Render(w io.Writer, esc Escaper) error
}

// RenderableFunc adapts a function to the Renderable interface.
type RenderableFunc func(w io.Writer, esc Escaper) error

// Render calls f(w, esc).
func (f RenderableFunc) Render(w io.Writer, esc Escaper) error { return f(w, esc) }

// Text renders s escaped.
func Text(s string) Renderable {
	return RenderableFunc(func(w io.Writer, esc Escaper) error {
		_, err := io.WriteString(w, esc.Escape(s))
		return err
	})
}

// Raw renders s verbatim. Only use it for trusted markup.
func Raw(s string) Renderable {
	return RenderableFunc(func(w io.Writer, _ Escaper) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// Value renders an arbitrary expression result. Strings, Stringers and
// errors are escaped; booleans and numbers are written verbatim; nil
// renders nothing; Renderables render themselves.
func Value(v any) Renderable {
	return RenderableFunc(func(w io.Writer, esc Escaper) error {
		return renderValue(w, esc, v)
	})
}

func renderValue(w io.Writer, esc Escaper, v any) error {
	var s string
	switch x := v.(type) {
	case nil:
		return nil
	case Renderable:
		return x.Render(w, esc)
	case string:
		s = esc.Escape(x)
	case bool:
		s = strconv.FormatBool(x)
	case int:
		s = strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		s = fmt.Sprint(x)
	case fmt.Stringer:
		s = esc.Escape(x.String())
	case error:
		s = esc.Escape(x.Error())
	default:
		s = esc.Escape(fmt.Sprint(x))
	}
	_, err := io.WriteString(w, s)
	return err
}

// Optional is a value that may be absent. An absent Optional renders
// nothing.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an absent Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool { return o.ok }

// Render renders the value when present.
func (o Optional[T]) Render(w io.Writer, esc Escaper) error {
	if !o.ok {
		return nil
	}
	return renderValue(w, esc, o.value)
}

func (o Optional[T]) optional() (any, bool) { return o.value, o.ok }

// optionalValue is implemented by every Optional instantiation.
type optionalValue interface {
	optional() (any, bool)
}
