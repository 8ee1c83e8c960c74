package tessera

// Params is a hierarchical, type-keyed parameter store. Each layer holds
// one value keyed by its type; lookups walk from the innermost layer to
// the root. Layers are immutable, so a Params may be shared between
// concurrent renders. The nil *Params is an empty store.
type Params struct {
	parent *Params
	key    any
	value  any
}

// paramKey[T] is a distinct comparable key per type.
type paramKey[T any] struct{}

// WithParam returns a child layer of p holding v. The value shadows any
// value of the same type in p.
func WithParam[T any](p *Params, v T) *Params {
	return &Params{parent: p, key: paramKey[T]{}, value: v}
}

// Param returns the innermost value of type T.
func Param[T any](p *Params) (T, bool) {
	for layer := p; layer != nil; layer = layer.parent {
		if layer.key == (paramKey[T]{}) {
			v, ok := layer.value.(T)
			return v, ok
		}
	}
	var zero T
	return zero, false
}

// ParamOr returns the innermost value of type T, or def when absent.
func ParamOr[T any](p *Params, def T) T {
	if v, ok := Param[T](p); ok {
		return v
	}
	return def
}

// Parent returns the enclosing layer, or nil for the root.
func (p *Params) Parent() *Params {
	if p == nil {
		return nil
	}
	return p.parent
}

// Depth returns the number of layers.
func (p *Params) Depth() int {
	n := 0
	for layer := p; layer != nil; layer = layer.parent {
		n++
	}
	return n
}
