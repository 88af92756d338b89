package internal

import "slices"

// Sink is the per-node broadcaster. It multiplexes one emission to many
// observers and couples the owner's lifecycle to observer interest: the init
// hook runs right before the first observer is registered (so the owner is
// not yet watched while it executes), the teardown hook right after the last
// one is removed.
type Sink struct {
	onInit     func()
	onTeardown func()

	observers []*sinkSubscription
}

type sinkSubscription struct {
	sink     *Sink
	observer Observer
	closed   bool
}

func NewSink(onInit, onTeardown func()) *Sink {
	return &Sink{onInit: onInit, onTeardown: onTeardown}
}

// HasObservers reports whether at least one observer is subscribed.
func (s *Sink) HasObservers() bool {
	return len(s.observers) > 0
}

// Subscribe registers an observer with the broadcast.
func (s *Sink) Subscribe(o Observer) Subscription {
	if len(s.observers) == 0 && s.onInit != nil {
		s.onInit()
	}

	sub := &sinkSubscription{sink: s, observer: o}
	s.observers = append(s.observers, sub)

	return sub
}

func (sub *sinkSubscription) Unsubscribe() {
	if sub.closed {
		return
	}
	sub.closed = true

	s := sub.sink
	if i := slices.Index(s.observers, sub); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}

	if len(s.observers) == 0 && s.onTeardown != nil {
		s.onTeardown()
	}
}

func (sub *sinkSubscription) Closed() bool {
	return sub.closed
}

// Next fans the datum out to the current observers, synchronously and in
// subscription order. Observers added during the fan-out do not receive this
// emission; removed ones stop receiving at their removal point. A panicking
// observer does not stop the fan-out: the first panic is re-raised once
// delivery is done.
func (s *Sink) Next(v any) {
	// cloning so mid-fan-out subscribes don't see this emission
	observers := slices.Clone(s.observers)

	var panicked any
	for _, sub := range observers {
		if sub.closed || sub.observer.Next == nil {
			continue
		}

		if r := deliver(func() { sub.observer.Next(v) }); r != nil && panicked == nil {
			panicked = r
		}
	}

	if panicked != nil {
		panic(panicked)
	}
}

// Error delivers a terminal error notification, closing every current
// subscription. The first observer panic is re-raised after cleanup.
func (s *Sink) Error(err error) {
	s.terminate(func(o Observer) {
		if o.Error != nil {
			o.Error(err)
		}
	})
}

// Complete delivers a terminal completion, closing every current subscription.
func (s *Sink) Complete() {
	s.terminate(func(o Observer) {
		if o.Complete != nil {
			o.Complete()
		}
	})
}

func (s *Sink) terminate(notify func(Observer)) {
	if len(s.observers) == 0 {
		return
	}

	observers := slices.Clone(s.observers)

	var panicked any
	for _, sub := range observers {
		if sub.closed {
			continue
		}
		sub.closed = true

		if r := deliver(func() { notify(sub.observer) }); r != nil && panicked == nil {
			panicked = r
		}
	}

	s.observers = slices.DeleteFunc(s.observers, func(sub *sinkSubscription) bool {
		return sub.closed
	})

	if len(s.observers) == 0 && s.onTeardown != nil {
		s.onTeardown()
	}

	if panicked != nil {
		panic(panicked)
	}
}

func deliver(fn func()) (panicked any) {
	defer func() { panicked = recover() }()

	fn()
	return nil
}
