package val

import "github.com/AnatoleLucet/val/internal"

// EffectComputation is either a plain effect body or one returning a cleanup
// function to run before the next execution and on Stop.
type EffectComputation interface {
	func() | func() func()
}

// Effect is a side effect kept in sync with the values it reads.
type Effect struct {
	node    *internal.Computed
	sub     Subscription
	cleanup func()
	stopped bool
}

// NewEffect runs computation immediately and re-runs it whenever a value it
// read changes observably. Reads inside the computation are recorded the
// same way a compute function's are, so conditional reads rewire what the
// effect listens to.
func NewEffect[T EffectComputation](computation T) *Effect {
	e := &Effect{}

	e.node = internal.NewComputed(func() any {
		if e.cleanup != nil {
			e.cleanup()
			e.cleanup = nil
		}

		switch fn := any(computation).(type) {
		case func():
			fn()
		case func() func():
			e.cleanup = fn()
		}

		return nil
	})

	// keeping the node watched is what makes it re-run on pushes
	e.sub = e.node.Subscribe(internal.Observer{})

	return e
}

// Stop detaches the effect from its dependencies and runs the final cleanup.
// Idempotent.
func (e *Effect) Stop() {
	if e.stopped {
		return
	}
	e.stopped = true

	e.sub.Unsubscribe()

	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}
}
