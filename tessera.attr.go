package tessera

import "io"

// Attr renders an HTML attribute with a leading space, for use right
// after a tag name:
//
//	true             ` name`
//	false            nothing
//	absent Optional  nothing
//	nil              nothing
//	anything else    ` name="value"` with value escaped
//
// Pointers to string and bool behave like their pointee.
func Attr(name string, value any) Renderable {
	return RenderableFunc(func(w io.Writer, esc Escaper) error {
		v, ok := attrValue(value)
		if !ok {
			return nil
		}
		if b, isBool := v.(bool); isBool {
			if !b {
				return nil
			}
			_, err := io.WriteString(w, " "+name)
			return err
		}

		if _, err := io.WriteString(w, " "+name+`="`); err != nil {
			return err
		}
		if err := renderValue(w, esc, v); err != nil {
			return err
		}
		_, err := io.WriteString(w, `"`)
		return err
	})
}

// attrValue unwraps optionals and pointers. ok is false when the
// attribute is absent.
func attrValue(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case optionalValue:
		inner, ok := v.optional()
		if !ok {
			return nil, false
		}
		return attrValue(inner)
	case *string:
		if v == nil {
			return nil, false
		}
		return *v, true
	case *bool:
		if v == nil {
			return nil, false
		}
		return *v, true
	default:
		return value, true
	}
}
