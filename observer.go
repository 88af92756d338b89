package val

import "github.com/AnatoleLucet/val/internal"

// Subscription is the handle returned by Subscribe. Unsubscribe is
// idempotent; Closed reports whether the subscription no longer delivers.
type Subscription = internal.Subscription

// Observer receives notifications from a value. Any capability may be nil.
// Next fires with each observably changed datum (and once with the current
// datum on subscribe); Error fires when a push-driven recompute fails;
// Complete fires on a terminal completion. At most one terminal notification
// is delivered, and nothing follows it.
type Observer[T any] struct {
	Next     func(T)
	Error    func(error)
	Complete func()
}

// OnNext builds an observer carrying only the next capability.
func OnNext[T any](fn func(T)) Observer[T] {
	return Observer[T]{Next: fn}
}

func (o Observer[T]) untyped() internal.Observer {
	u := internal.Observer{
		Error:    o.Error,
		Complete: o.Complete,
	}

	if o.Next != nil {
		u.Next = func(v any) { o.Next(as[T](v)) }
	}

	return u
}
