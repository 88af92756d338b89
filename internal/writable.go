package internal

// Writable is a source node holding a stored datum. It has no dependencies
// and is always valid.
type Writable struct {
	value   any
	version int
	sink    *Sink
}

func NewWritable(initial any) *Writable {
	return &Writable{
		value: initial,
		sink:  NewSink(nil, nil),
	}
}

func (w *Writable) Kind() Kind { return KindSource }

// Get returns the stored datum, registering this node with the recording in
// progress, if any.
func (w *Writable) Get() any {
	Register(w)
	return w.value
}

// Peek returns the stored datum without registering.
func (w *Writable) Peek() any {
	return w.value
}

// Set replaces the stored datum. A datum equal to the current one has no
// observable effect: no version bump, no emission.
func (w *Writable) Set(v any) {
	if Equal(w.value, v) {
		return
	}

	w.value = v
	w.version++
	w.sink.Next(v)
}

// Update derives the next datum from the current one. The read does not
// register a dependency.
func (w *Writable) Update(fn func(any) any) {
	w.Set(fn(w.value))
}

func (w *Writable) Version() int { return w.version }

func (w *Writable) IsValid() bool { return true }

func (w *Writable) Validate() {}

func (w *Writable) IsWatched() bool {
	return w.sink.HasObservers()
}

func (w *Writable) Subscribe(o Observer) Subscription {
	return w.sink.Subscribe(o)
}
