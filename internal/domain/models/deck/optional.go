package deck

// Optional tracks whether an argument was supplied at all, separately from its value.
//   - Set=false: argument absent (leave unchanged)
//   - Set=true, Value=zero: argument explicitly empty
//   - Set=true, Value=v: argument supplied
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a set Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}
