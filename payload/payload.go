package payload

// Payload wraps exactly one value of the application payload type.
//
// It can be used as both the request and response payload type; the wire
// format is chosen by content negotiation, never by the payload itself.
// Access to the inner value goes through explicit accessors rather than
// embedding, so the wrapper adds no behavior of its own.
type Payload[T any] struct {
	value T
}

// New creates a payload owning the given value.
func New[T any](value T) *Payload[T] {
	return &Payload[T]{value: value}
}

// Value returns a copy of the inner value.
func (p *Payload[T]) Value() T {
	return p.value
}

// Ref returns a pointer to the inner value for in-place access.
func (p *Payload[T]) Ref() *T {
	return &p.value
}

// Set replaces the inner value.
func (p *Payload[T]) Set(value T) {
	p.value = value
}
