package val

import "github.com/AnatoleLucet/val/internal"

// Computed is a derived node whose datum is produced by a pure function of
// other values. The compute runs lazily on first read; afterwards it re-runs
// only when a value it read actually changed, and it emits downstream only
// when its own datum changed under deep equality.
type Computed[T any] struct {
	value *internal.Computed
}

// NewComputed creates a derived value. The compute function must be pure: it
// reads other values and returns a datum, nothing else. Which values it
// reads may change from run to run; the dependency set follows.
func NewComputed[T any](compute func() T) *Computed[T] {
	return &Computed[T]{internal.NewComputed(func() any {
		return compute()
	})}
}

// Get returns the current datum, registering this node as a dependency of
// the recording in progress, if any.
func (c *Computed[T]) Get() T {
	return as[T](c.value.Get())
}

// Peek returns the current datum without registering a dependency.
func (c *Computed[T]) Peek() T {
	return as[T](c.value.Peek())
}

// Getter returns the datum accessor as a plain function.
func (c *Computed[T]) Getter() func() T {
	return c.Get
}

func (c *Computed[T]) Version() int { return c.value.Version() }

// IsValid reports whether a read would return the cached datum as-is.
func (c *Computed[T]) IsValid() bool { return c.value.IsValid() }

// Validate brings the datum up to date, recomputing only if a dependency
// actually changed.
func (c *Computed[T]) Validate() { c.value.Validate() }

func (c *Computed[T]) IsWatched() bool { return c.value.IsWatched() }

// Subscribe attaches an observer. It immediately receives the current datum,
// then each observably changed one. The first observer makes the node watch
// its dependencies; the last to unsubscribe tears the watches down again.
func (c *Computed[T]) Subscribe(o Observer[T]) Subscription {
	return subscribe(c.value, o)
}

// AsReadonly wraps the value in a facade with a distinct identity.
func (c *Computed[T]) AsReadonly() *Readonly[T] {
	return &Readonly[T]{internal.NewReadonly(c.value)}
}

func (c *Computed[T]) Kind() Kind { return c.value.Kind() }
