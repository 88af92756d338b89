package val

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchLifecycle(t *testing.T) {
	t.Run("watch follows the subscriber count", func(t *testing.T) {
		a := NewWritable(1)
		b := NewComputed(func() int { return a.Get() * 2 })

		assert.False(t, a.IsWatched())
		assert.False(t, b.IsWatched())

		sub := b.Subscribe(Observer[int]{})
		assert.True(t, a.IsWatched())
		assert.True(t, b.IsWatched())

		sub.Unsubscribe()
		assert.False(t, a.IsWatched())
		assert.False(t, b.IsWatched())
	})

	t.Run("watching cascades through chains", func(t *testing.T) {
		a := NewWritable(1)
		b := NewComputed(func() int { return a.Get() + 1 })
		c := NewComputed(func() int { return b.Get() + 1 })

		sub := c.Subscribe(Observer[int]{})
		assert.True(t, a.IsWatched())
		assert.True(t, b.IsWatched())

		sub.Unsubscribe()
		assert.False(t, a.IsWatched())
		assert.False(t, b.IsWatched())
	})

	t.Run("teardown keeps the cached datum", func(t *testing.T) {
		computes := 0

		a := NewWritable(1)
		b := NewComputed(func() int {
			computes++
			return a.Get()
		})

		sub := b.Subscribe(Observer[int]{})
		assert.Equal(t, 1, computes)

		sub.Unsubscribe()
		assert.Equal(t, 1, b.Get())
		assert.Equal(t, 1, computes)
	})

	t.Run("re-subscribe reuses the cache when nothing changed", func(t *testing.T) {
		computes := 0

		a := NewWritable(1)
		b := NewComputed(func() int {
			computes++
			return a.Get()
		})

		b.Subscribe(Observer[int]{}).Unsubscribe()
		assert.Equal(t, 1, computes)

		log := []int{}
		b.Subscribe(OnNext(func(v int) { log = append(log, v) }))

		assert.Equal(t, 1, computes)
		assert.Equal(t, []int{1}, log)
	})

	t.Run("re-subscribe recomputes after a missed write", func(t *testing.T) {
		computes := 0

		a := NewWritable(1)
		b := NewComputed(func() int {
			computes++
			return a.Get()
		})

		b.Subscribe(Observer[int]{}).Unsubscribe()

		a.Set(7) // nobody is watching

		log := []int{}
		b.Subscribe(OnNext(func(v int) { log = append(log, v) }))

		assert.Equal(t, 2, computes)
		assert.Equal(t, []int{7}, log)
		assert.Equal(t, 1, b.Version())
	})

	t.Run("glitch-free diamond", func(t *testing.T) {
		runs := map[string]int{}
		log := []int{}

		a := NewWritable(1)
		b := NewComputed(func() int {
			runs["b"]++
			return a.Get() + 1
		})
		c := NewComputed(func() int {
			runs["c"]++
			return a.Get() + b.Get()
		})

		c.Subscribe(OnNext(func(v int) { log = append(log, v) }))
		assert.Equal(t, []int{3}, log)
		assert.Equal(t, map[string]int{"b": 1, "c": 1}, runs)

		a.Set(2)

		// one write, one delivery, one run each
		assert.Equal(t, []int{3, 5}, log)
		assert.Equal(t, map[string]int{"b": 2, "c": 2}, runs)
	})

	t.Run("conditional rewiring", func(t *testing.T) {
		log := []int{}

		a := NewWritable(1)
		b := NewWritable(2)
		cond := NewWritable(false)
		out := NewComputed(func() int {
			if cond.Get() {
				return a.Get()
			}
			return b.Get()
		})

		out.Subscribe(OnNext(func(v int) { log = append(log, v) }))
		assert.Equal(t, []int{2}, log)
		assert.False(t, a.IsWatched())
		assert.True(t, b.IsWatched())

		b.Set(3)
		assert.Equal(t, []int{2, 3}, log)

		cond.Set(true)
		assert.Equal(t, []int{2, 3, 1}, log)

		// the branch flip rewired the dependency set
		assert.True(t, a.IsWatched())
		assert.False(t, b.IsWatched())

		b.Set(99)
		assert.Equal(t, []int{2, 3, 1}, log)

		a.Set(4)
		assert.Equal(t, []int{2, 3, 1, 4}, log)
	})

	t.Run("new dependencies found while watched are watched", func(t *testing.T) {
		a := NewWritable(1)
		b := NewWritable(10)
		wide := NewWritable(false)
		sum := NewComputed(func() int {
			if wide.Get() {
				return a.Get() + b.Get()
			}
			return a.Get()
		})

		sum.Subscribe(Observer[int]{})
		assert.False(t, b.IsWatched())

		wide.Set(true)
		assert.True(t, b.IsWatched())
	})
}
