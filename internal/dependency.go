package internal

import "errors"

var (
	// ErrAlreadyWatched reports a watch on an edge that already holds a live
	// subscription.
	ErrAlreadyWatched = errors.New("val: dependency is already watched")

	// ErrNotWatched reports an unwatch on an edge with no live subscription.
	ErrNotWatched = errors.New("val: dependency is not watched")
)

// dependency is a directed edge from a consumer to one of its producers.
type dependency struct {
	producer Value

	// producer's version when the consumer last observed it
	seenVersion int

	// sweep number of the recording that last touched this edge
	recordVersion uint64

	// live only while the consumer is watched
	subscription Subscription
}

func newDependency(producer Value, recordVersion uint64) *dependency {
	return &dependency{
		producer:      producer,
		seenVersion:   producer.Version(),
		recordVersion: recordVersion,
	}
}

// isValid reports whether the producer is unchanged since last observed and
// itself valid.
func (d *dependency) isValid() bool {
	return d.producer.Version() == d.seenVersion && d.producer.IsValid()
}

// validate revalidates the producer and reports whether its version moved.
func (d *dependency) validate() bool {
	d.producer.Validate()

	if d.producer.Version() != d.seenVersion {
		d.seenVersion = d.producer.Version()
		return true
	}

	return false
}

// refresh realigns the seen version with the producer's current one.
func (d *dependency) refresh() {
	d.seenVersion = d.producer.Version()
}

func (d *dependency) watching() bool {
	return d.subscription != nil
}

// watch subscribes to the producer so that callback fires on each emission.
func (d *dependency) watch(callback func()) {
	if d.subscription != nil {
		panic(ErrAlreadyWatched)
	}

	d.subscription = d.producer.Subscribe(Observer{
		Next: func(any) { callback() },
	})
}

// unwatch cancels the producer subscription.
func (d *dependency) unwatch() {
	if d.subscription == nil {
		panic(ErrNotWatched)
	}

	d.subscription.Unsubscribe()
	d.subscription = nil
}
