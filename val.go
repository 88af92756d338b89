package val

import "github.com/AnatoleLucet/val/internal"

// Kind discriminates the node flavors of the graph.
type Kind = internal.Kind

const (
	KindSource   = internal.KindSource
	KindDerived  = internal.KindDerived
	KindReadonly = internal.KindReadonly
)

// Equaler lets a datum type carry its own equality, used instead of the
// structural comparison when deciding whether a datum changed observably.
type Equaler = internal.Equaler

// Programmer errors the graph panics with.
var (
	ErrAlreadyWatched = internal.ErrAlreadyWatched
	ErrNotWatched     = internal.ErrNotWatched
	ErrCircular       = internal.ErrCircular
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Value is a node in the reactive graph.
type Value[T any] interface {
	// Get returns the current datum, registering the node as a dependency of
	// the recording in progress, if any.
	Get() T

	// Peek returns the current datum without registering a dependency.
	Peek() T

	// Getter returns the datum accessor as a plain function.
	Getter() func() T

	// Version is bumped exactly when the datum changes observably.
	Version() int

	IsValid() bool
	Validate()

	// IsWatched reports whether at least one observer is subscribed.
	IsWatched() bool
	Subscribe(o Observer[T]) Subscription

	Kind() Kind
}

var (
	_ Value[int] = (*Writable[int])(nil)
	_ Value[int] = (*Computed[int])(nil)
	_ Value[int] = (*Readonly[int])(nil)
)

// Untracked runs fn with dependency recording suspended, so reads inside it
// do not register edges.
func Untracked[T any](fn func() T) T {
	result := internal.Untracked(func() any { return fn() })
	return as[T](result)
}

// subscribe attaches the observer and hands it the node's current datum.
func subscribe[T any](node internal.Value, o Observer[T]) Subscription {
	sub := node.Subscribe(o.untyped())

	if o.Next != nil && !sub.Closed() {
		o.Next(as[T](node.Peek()))
	}

	return sub
}
