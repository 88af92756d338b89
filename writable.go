package val

import "github.com/AnatoleLucet/val/internal"

// Writable is a source node holding a stored datum. It has no dependencies
// and is always valid.
type Writable[T any] struct {
	value *internal.Writable
}

// NewWritable creates a source value holding initial.
func NewWritable[T any](initial T) *Writable[T] {
	return &Writable[T]{internal.NewWritable(initial)}
}

// Get returns the stored datum, registering this node as a dependency of the
// recording in progress, if any.
func (w *Writable[T]) Get() T {
	return as[T](w.value.Get())
}

// Peek returns the stored datum without registering a dependency.
func (w *Writable[T]) Peek() T {
	return as[T](w.value.Peek())
}

// Getter returns the datum accessor as a plain function.
func (w *Writable[T]) Getter() func() T {
	return w.Get
}

// Set replaces the stored datum. A datum equal to the current one has no
// observable effect: no version bump, no emission.
func (w *Writable[T]) Set(v T) {
	w.value.Set(v)
}

// Update derives the next datum from the current one. The read does not
// register a dependency.
func (w *Writable[T]) Update(fn func(T) T) {
	w.value.Update(func(v any) any { return fn(as[T](v)) })
}

func (w *Writable[T]) Version() int { return w.value.Version() }

func (w *Writable[T]) IsValid() bool { return w.value.IsValid() }
func (w *Writable[T]) Validate()     { w.value.Validate() }

func (w *Writable[T]) IsWatched() bool { return w.value.IsWatched() }

// Subscribe attaches an observer. It immediately receives the current datum,
// then each observably changed one.
func (w *Writable[T]) Subscribe(o Observer[T]) Subscription {
	return subscribe(w.value, o)
}

// AsReadonly wraps the value in a facade without the write capability.
func (w *Writable[T]) AsReadonly() *Readonly[T] {
	return &Readonly[T]{internal.NewReadonly(w.value)}
}

func (w *Writable[T]) Kind() Kind { return w.value.Kind() }
