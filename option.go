package commander

// Option is a single result slot returned by the "any" accessors. A slot is either empty or
// holds the value produced by the parser at the same position.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a present slot holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty slot.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Nones returns n empty slots.
func Nones[T any](n int) []Option[T] {
	return make([]Option[T], n)
}

// IsSome reports whether the slot holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the slot is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the held value and whether the slot is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// OrElse returns the held value, or fallback if the slot is empty.
func (o Option[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Which reports the index and value of the present slot. It returns -1 when every slot is
// empty.
func Which[T any](opts []Option[T]) (int, T) {
	for i, o := range opts {
		if o.some {
			return i, o.value
		}
	}
	var zero T
	return -1, zero
}
