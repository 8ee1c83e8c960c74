package tessera

import "strconv"

// Property describes one field of a template's parameter struct.
type Property struct {
	Name     string
	Required bool
}

// Builder assembles a value of T field by field and checks at Build time
// that every required property was set. Generated code declares the
// properties of a template once and calls Set with the property index.
type Builder[T any] struct {
	target string
	props  []Property
	set    []uint64
	value  T
}

// NewBuilder creates a builder for a value named target, used in error
// messages.
func NewBuilder[T any](target string, props ...Property) *Builder[T] {
	return &Builder[T]{
		target: target,
		props:  props,
		set:    make([]uint64, (len(props)+63)/64),
	}
}

// Set applies setter and marks property index as set. It panics if index
// does not name a declared property.
func (b *Builder[T]) Set(index int, setter func(*T)) *Builder[T] {
	if index < 0 || index >= len(b.props) {
		panic(ErrMsgPropertyIndex + ": " + strconv.Itoa(index))
	}
	setter(&b.value)
	b.set[index/64] |= 1 << (uint(index) % 64)
	return b
}

// IsSet reports whether property index was set.
func (b *Builder[T]) IsSet(index int) bool {
	if index < 0 || index >= len(b.props) {
		return false
	}
	return b.set[index/64]&(1<<(uint(index)%64)) != 0
}

// Missing returns the names of required properties not yet set.
func (b *Builder[T]) Missing() []string {
	var missing []string
	for i, p := range b.props {
		if p.Required && !b.IsSet(i) {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// Build returns the value, or an error naming every missing required
// property.
func (b *Builder[T]) Build() (T, error) {
	if missing := b.Missing(); len(missing) > 0 {
		var zero T
		return zero, NewMissingPropertiesError(b.target, missing)
	}
	return b.value, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder[T]) MustBuild() T {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}
