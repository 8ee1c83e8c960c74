package internal

// Parser recognizes a T at the cursor. It returns one of three outcomes:
//
//   - (v, true, nil): matched, input consumed as needed
//   - (zero, false, nil): no match, cursor restored to where it was
//   - (zero, false, err): unrecoverable syntax error
//
// Every parser that can fail part way through must restore the cursor
// before reporting no match.
type Parser[T any] func(c *Cursor) (T, bool, error)

// Parse runs the parser.
func (p Parser[T]) Parse(c *Cursor) (T, bool, error) {
	return p(c)
}

// Maybe holds an optional value.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Maybe[T] { return Maybe[T]{value: v, ok: true} }

// None returns an absent value.
func None[T any]() Maybe[T] { return Maybe[T]{} }

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) { return m.value, m.ok }

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool { return m.ok }

// Value returns the value or the zero value.
func (m Maybe[T]) Value() T { return m.value }

// Pair is the result of sequencing two parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map transforms a successful result.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c *Cursor) (U, bool, error) {
		v, ok, err := p(c)
		if err != nil || !ok {
			var zero U
			return zero, false, err
		}
		return f(v), true, nil
	}
}

// To replaces a successful result with value.
func To[T, U any](p Parser[T], value U) Parser[U] {
	return Map(p, func(T) U { return value })
}

// Filter turns a match into no match when pred rejects the value.
func (p Parser[T]) Filter(pred func(T) bool) Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		start := c.Position()
		v, ok, err := p(c)
		if err != nil || !ok {
			return v, false, err
		}
		if !pred(v) {
			c.ResetTo(start)
			var zero T
			return zero, false, nil
		}
		return v, true, nil
	}
}

// Optional always matches, wrapping the result in a Maybe.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(c *Cursor) (Maybe[T], bool, error) {
		v, ok, err := p(c)
		if err != nil {
			return None[T](), false, err
		}
		if !ok {
			return None[T](), true, nil
		}
		return Some(v), true, nil
	}
}

// Peek runs p and rewinds, so a match consumes nothing.
func (p Parser[T]) Peek() Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		start := c.Position()
		v, ok, err := p(c)
		c.ResetTo(start)
		return v, ok, err
	}
}

// Not matches, consuming nothing, exactly when p does not match.
func Not[T any](p Parser[T]) Parser[struct{}] {
	return func(c *Cursor) (struct{}, bool, error) {
		_, ok, err := p.Peek()(c)
		if err != nil {
			return struct{}{}, false, err
		}
		return struct{}{}, !ok, nil
	}
}

// Recognize returns the source span consumed by p.
func Recognize[T any](p Parser[T]) Parser[Span] {
	return func(c *Cursor) (Span, bool, error) {
		start := c.Position()
		_, ok, err := p(c)
		if err != nil || !ok {
			return Span{}, false, err
		}
		return c.PeekRange(start, c.Position()), true, nil
	}
}

// Then runs first and second in sequence. If either does not match the
// cursor goes back to where first started.
func Then[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return func(c *Cursor) (Pair[A, B], bool, error) {
		start := c.Position()
		a, ok, err := first(c)
		if err != nil || !ok {
			return Pair[A, B]{}, false, err
		}
		b, ok, err := second(c)
		if err != nil {
			return Pair[A, B]{}, false, err
		}
		if !ok {
			c.ResetTo(start)
			return Pair[A, B]{}, false, nil
		}
		return Pair[A, B]{First: a, Second: b}, true, nil
	}
}

// IgnoreThen sequences two parsers and keeps the second result.
func IgnoreThen[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return Map(Then(first, second), func(p Pair[A, B]) B { return p.Second })
}

// ThenIgnore sequences two parsers and keeps the first result.
func ThenIgnore[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return Map(Then(first, second), func(p Pair[A, B]) A { return p.First })
}

// ThenExpect is ThenIgnore where second is mandatory once first matched:
// a missing second is a syntax error located where first started.
func ThenExpect[A, B any](first Parser[A], second Parser[B], construct, msg string) Parser[A] {
	return func(c *Cursor) (A, bool, error) {
		start := c.Offset()
		a, ok, err := first(c)
		if err != nil || !ok {
			return a, false, err
		}
		_, ok, err = second(c)
		if err != nil {
			var zero A
			return zero, false, err
		}
		if !ok {
			var zero A
			return zero, false, NewSyntaxError(msg, construct, start)
		}
		return a, true, nil
	}
}

// Expect turns a no match of p into a syntax error at the current offset.
func Expect[T any](p Parser[T], construct, msg string) Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		v, ok, err := p(c)
		if err == nil && !ok {
			return v, false, NewSyntaxError(msg, construct, c.Offset())
		}
		return v, ok, err
	}
}

// Select tries parsers in order and returns the first match.
func Select[T any](parsers ...Parser[T]) Parser[T] {
	return func(c *Cursor) (T, bool, error) {
		for _, p := range parsers {
			v, ok, err := p(c)
			if err != nil || ok {
				return v, ok, err
			}
		}
		var zero T
		return zero, false, nil
	}
}
