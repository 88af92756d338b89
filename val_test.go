package val

import "fmt"

func ExampleWritable() {
	count := NewWritable(0)
	fmt.Println(count.Get())

	count.Set(10)
	fmt.Println(count.Get())

	// Output:
	// 0
	// 10
}

func ExampleComputed() {
	count := NewWritable(1)
	double := NewComputed(func() int {
		fmt.Println("doubling")
		return count.Get() * 2
	})

	fmt.Println(double.Get())
	fmt.Println(double.Get())

	count.Set(10)
	fmt.Println(double.Get())

	// Output:
	// doubling
	// 2
	// 2
	// doubling
	// 20
}

func ExampleComputed_convergence() {
	count := NewWritable(1)
	small := NewComputed(func() bool {
		return count.Get() < 10
	})

	fmt.Println(small.Get(), small.Version())

	count.Set(2)
	fmt.Println(small.Get(), small.Version())

	count.Set(12)
	fmt.Println(small.Get(), small.Version())

	// Output:
	// true 0
	// true 0
	// false 1
}

func ExampleWritable_Subscribe() {
	count := NewWritable(1)

	sub := count.Subscribe(OnNext(func(v int) {
		fmt.Println("saw", v)
	}))
	defer sub.Unsubscribe()

	count.Set(1)
	count.Set(2)

	// Output:
	// saw 1
	// saw 2
}

func ExampleUntracked() {
	tracked := NewWritable(1)
	hidden := NewWritable(10)

	sum := NewComputed(func() int {
		return tracked.Get() + Untracked(hidden.Get)
	})
	fmt.Println(sum.Get())

	hidden.Set(20) // not a dependency, sum stays valid
	fmt.Println(sum.Get())

	tracked.Set(2)
	fmt.Println(sum.Get())

	// Output:
	// 11
	// 11
	// 22
}

func ExampleNewEffect() {
	count := NewWritable(0)

	eff := NewEffect(func() {
		fmt.Println("count is", count.Get())
	})
	defer eff.Stop()

	count.Set(3)

	// Output:
	// count is 0
	// count is 3
}
