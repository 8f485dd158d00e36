package collections

// This file contains package-level generic functions for operations that
// transform a Collection[T] into a Collection[U] or a value of another type.
// Go generics do not allow methods to introduce new type parameters.

// Map applies fn to every value of c and returns a Collection[U] governed by
// policy (nil accepts everything). Keys follow [Collection.Map]: a keyed
// source keeps its keys, a sequential one is renumbered.
//
//	labels, err := collections.Map(c, collections.NonEmptyString(),
//	    func(n int, _ collections.Key) string { return strconv.Itoa(n) })
func Map[T, U any](c *Collection[T], policy Validator[U], fn func(T, Key) U) (*Collection[U], error) {
	if policy == nil {
		policy = AcceptAll[U]()
	}
	keyed := !c.IsSequential()
	out := &Collection[U]{policy: policy}
	for pos, e := range c.Entries() {
		key := Index(pos)
		if keyed {
			key = e.Key
		}
		v := fn(e.Value, e.Key)
		if err := policy.Validate(v); err != nil {
			return nil, out.reject("map", key, pos, v, err)
		}
		out.put(key, v)
	}
	return out, nil
}

// Reduce folds c into a single value of type U, starting from initial.
//
//	total := collections.Reduce(prices, func(sum float64, p Price, _ collections.Key) float64 {
//	    return sum + p.Amount
//	}, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, Key) U, initial U) U {
	result := initial
	for k, v := range c.All() {
		result = fn(result, v, k)
	}
	return result
}
