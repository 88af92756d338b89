package internal

// Observer receives notifications from a value. Any capability may be nil.
type Observer struct {
	Next     func(any)
	Error    func(error)
	Complete func()
}

// Subscription is the handle returned by Subscribe.
type Subscription interface {
	// Unsubscribe halts all future deliveries to the observer. Idempotent.
	Unsubscribe()

	// Closed reports whether the subscription no longer delivers.
	Closed() bool
}
