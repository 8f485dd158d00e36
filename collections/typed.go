package collections

// The typed collections (Numbers, Text, Objects) shadow the type-preserving
// combinators of the embedded Collection so results keep their helpers.

func wrap[W, T any](c *Collection[T], err error, as func(*Collection[T]) W) (W, error) {
	if err != nil {
		var zero W
		return zero, err
	}
	return as(c), nil
}

func wrapEach[W, T any](cs []*Collection[T], err error, as func(*Collection[T]) W) ([]W, error) {
	if err != nil {
		return nil, err
	}
	out := make([]W, len(cs))
	for i, c := range cs {
		out[i] = as(c)
	}
	return out, nil
}
