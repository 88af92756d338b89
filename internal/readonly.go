package internal

// Readonly is a forwarding facade over another value. It carries its own
// identity so handing it out does not leak the write capability.
type Readonly struct {
	wrapped Value
}

func NewReadonly(wrapped Value) *Readonly {
	return &Readonly{wrapped: wrapped}
}

func (r *Readonly) Kind() Kind { return KindReadonly }

func (r *Readonly) Get() any  { return r.wrapped.Get() }
func (r *Readonly) Peek() any { return r.wrapped.Peek() }

func (r *Readonly) Version() int { return r.wrapped.Version() }

func (r *Readonly) IsValid() bool { return r.wrapped.IsValid() }
func (r *Readonly) Validate()     { r.wrapped.Validate() }

func (r *Readonly) IsWatched() bool { return r.wrapped.IsWatched() }

func (r *Readonly) Subscribe(o Observer) Subscription {
	return r.wrapped.Subscribe(o)
}
