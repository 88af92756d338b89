// Package val provides an incremental-computation graph of observable
// values: writable sources, lazily recomputed derived values, and a
// push-based notification channel between them.
//
// A Writable holds a datum; a Computed derives one by reading other values.
// Dependencies are discovered by running the compute function, so
// conditional reads rewire the graph automatically. Each value carries a
// version that moves exactly when its datum changes under deep equality,
// which is what keeps diamond-shaped graphs glitch-free: per upstream write,
// a downstream observer hears at most once.
//
//	celsius := val.NewWritable(21.0)
//	fahrenheit := val.NewComputed(func() float64 {
//		return celsius.Get()*9/5 + 32
//	})
//
//	sub := fahrenheit.Subscribe(val.OnNext(func(f float64) {
//		fmt.Println(f)
//	}))
//	defer sub.Unsubscribe()
//
//	celsius.Set(28) // observer hears 82.4
//
// Derived values stay lazy until observed: subscribing starts the watch
// lifecycle (the value subscribes to its own producers), unsubscribing the
// last observer tears it down again. The cached datum survives teardown.
//
// A graph belongs to the goroutine that runs it. Dependency recording is
// keyed per goroutine, so reads made from other goroutines register nothing.
//
// There is no well-known interop symbol to implement in Go; anything
// satisfying Value[T] is an observable value.
package val
