package internal

// Repeated matches p zero or more times. It never reports no match; it
// stops at the first no match, at end of input, or after a match that
// consumed nothing.
func Repeated[T any](p Parser[T]) Parser[[]T] {
	return func(c *Cursor) ([]T, bool, error) {
		var out []T
		for !c.IsAtEnd() {
			before := c.Position()
			v, ok, err := p(c)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				break
			}
			out = append(out, v)
			if c.Position() == before {
				break
			}
		}
		return out, true, nil
	}
}

// Until is the result of RepeatedUntil.
type Until[T, U any] struct {
	Items []T
	// Terminated is false when the input ended, or p stopped matching,
	// before the terminator was seen.
	Terminated bool
	Terminator U
	// TerminatorEnd is where the cursor would be had the terminator been
	// consumed. ResetTo(TerminatorEnd) consumes it.
	TerminatorEnd Position
}

// RepeatedUntil matches p repeatedly until terminator matches at the
// current position. The terminator is checked before every item and is
// not consumed.
func RepeatedUntil[T, U any](p Parser[T], terminator Parser[U]) Parser[Until[T, U]] {
	return func(c *Cursor) (Until[T, U], bool, error) {
		var res Until[T, U]
		for {
			before := c.Position()
			term, ok, err := terminator(c)
			if err != nil {
				return res, false, err
			}
			if ok {
				res.Terminated = true
				res.Terminator = term
				res.TerminatorEnd = c.Position()
				c.ResetTo(before)
				return res, true, nil
			}
			if c.IsAtEnd() {
				return res, true, nil
			}

			v, ok, err := p(c)
			if err != nil {
				return res, false, err
			}
			if !ok {
				return res, true, nil
			}
			res.Items = append(res.Items, v)
			if c.Position() == before {
				return res, true, nil
			}
		}
	}
}

// CollectUntil matches p repeatedly until sentinel matches, leaving the
// sentinel unconsumed. If p fails or input ends first, nothing matches.
func CollectUntil[T, U any](p Parser[T], sentinel Parser[U]) Parser[[]T] {
	return func(c *Cursor) ([]T, bool, error) {
		start := c.Position()
		out := make([]T, 0)
		for !c.IsAtEnd() {
			_, ok, err := sentinel.Peek()(c)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return out, true, nil
			}

			before := c.Position()
			v, ok, err := p(c)
			if err != nil {
				return nil, false, err
			}
			if !ok || c.Position() == before {
				c.ResetTo(start)
				return nil, false, nil
			}
			out = append(out, v)
		}
		c.ResetTo(start)
		return nil, false, nil
	}
}
