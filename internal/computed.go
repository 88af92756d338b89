package internal

import (
	"errors"
	"fmt"
)

// ErrCircular reports a compute function that reads its own value before the
// first datum exists.
var ErrCircular = errors.New("val: compute depends on its own value")

// unset is the cached-slot sentinel for "compute has never run".
type unset struct{}

// Computed is a derived node: its datum is produced by a pure function of
// other values. The first read computes lazily without a version bump; later
// reads revalidate, recompute only when a producer actually changed, and
// emit only when the recomputed datum differs from the cached one.
type Computed struct {
	compute func() any

	cached  any
	version int

	deps *Dependencies
	sink *Sink

	// computing guards against re-entrant evaluation: a push-driven re-read
	// arriving mid-validate returns the cached datum instead of recursing.
	computing bool
}

func NewComputed(compute func() any) *Computed {
	c := &Computed{
		compute: compute,
		cached:  unset{},
	}

	c.deps = NewDependencies(c, c.react)
	c.sink = NewSink(c.deps.Watch, c.deps.Unwatch)

	return c
}

func (c *Computed) Kind() Kind { return KindDerived }

// Get returns the current datum, registering this node with the recording in
// progress, if any.
func (c *Computed) Get() any {
	Register(c)
	return c.Peek()
}

// Peek returns the current datum without registering, computing it on first
// read and revalidating it when a producer may have changed.
func (c *Computed) Peek() any {
	if c.computing {
		if _, fresh := c.cached.(unset); fresh {
			panic(ErrCircular)
		}

		return c.cached
	}

	if _, fresh := c.cached.(unset); fresh {
		c.computing = true
		defer func() { c.computing = false }()

		// first compute; downstream has no prior datum, so no version bump
		c.cached = c.deps.Record(c.compute)
		return c.cached
	}

	if !c.deps.IsValid() {
		c.Validate()
	}

	return c.cached
}

// Validate brings the datum up to date. The compute only runs when a
// producer actually changed, and the node only emits when the recomputed
// datum differs from the cached one (a changed input converging on an
// unchanged output stays silent).
func (c *Computed) Validate() {
	if c.computing {
		return
	}

	if _, fresh := c.cached.(unset); fresh {
		c.Peek()
		return
	}

	c.computing = true
	defer func() { c.computing = false }()

	if !c.deps.Validate() {
		return
	}

	next := c.deps.Record(c.compute)
	if Equal(next, c.cached) {
		return
	}

	c.cached = next
	c.version++
	c.sink.Next(next)
}

func (c *Computed) Version() int { return c.version }

// IsValid reports whether a read would return the cached datum as-is.
func (c *Computed) IsValid() bool {
	if _, fresh := c.cached.(unset); fresh {
		return false
	}

	return c.deps.IsValid()
}

func (c *Computed) IsWatched() bool {
	return c.sink.HasObservers()
}

// Subscribe attaches an observer to the node's broadcast. The first observer
// starts the watch lifecycle, the last one ends it.
func (c *Computed) Subscribe(o Observer) Subscription {
	return c.sink.Subscribe(o)
}

// react is what watched edges fire when a producer emits. A compute failure
// during this push-driven re-read is reported to the node's observers before
// the panic continues into the producer's fan-out.
func (c *Computed) react() {
	defer func() {
		if r := recover(); r != nil {
			c.sink.Error(recoveredError(r))
			panic(r)
		}
	}()

	c.Get()
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("val: compute panicked: %v", r)
}
