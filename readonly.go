package val

import "github.com/AnatoleLucet/val/internal"

// Readonly is a forwarding facade over another value. It exposes every read
// operation but no mutator, and carries its own identity so handing it out
// does not leak the write capability.
type Readonly[T any] struct {
	value *internal.Readonly
}

func (r *Readonly[T]) Get() T {
	return as[T](r.value.Get())
}

func (r *Readonly[T]) Peek() T {
	return as[T](r.value.Peek())
}

func (r *Readonly[T]) Getter() func() T {
	return r.Get
}

func (r *Readonly[T]) Version() int { return r.value.Version() }

func (r *Readonly[T]) IsValid() bool { return r.value.IsValid() }
func (r *Readonly[T]) Validate()     { r.value.Validate() }

func (r *Readonly[T]) IsWatched() bool { return r.value.IsWatched() }

func (r *Readonly[T]) Subscribe(o Observer[T]) Subscription {
	return subscribe(r.value, o)
}

func (r *Readonly[T]) Kind() Kind { return r.value.Kind() }
