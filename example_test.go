package govec_test

import (
	"errors"
	"fmt"

	"github.com/c2h5oh/datasize"

	"github.com/hupe1980/govec"
	"github.com/hupe1980/govec/resource"
)

func Example() {
	v := govec.New[string]()
	for _, s := range []string{"a", "b", "c"} {
		if err := v.PushBack(s); err != nil {
			panic(err)
		}
	}

	if _, err := v.Insert(1, "x"); err != nil {
		panic(err)
	}
	v.Erase(0)

	for i, s := range v.All() {
		fmt.Println(i, s)
	}
	fmt.Println("size:", v.Size(), "capacity:", v.Capacity())
	// Output:
	// 0 x
	// 1 b
	// 2 c
	// size: 3 capacity: 4
}

func ExampleVector_Reserve() {
	v := govec.New[int]()
	if err := v.Reserve(100); err != nil {
		panic(err)
	}
	for i := range 100 {
		_ = v.PushBack(i)
	}
	fmt.Println(v.Capacity())
	// Output: 100
}

func ExampleVector_EmplaceBack() {
	type point struct{ X, Y int }

	v := govec.New[point]()
	p, err := v.EmplaceBack(func(p *point) error {
		p.X, p.Y = 3, 4
		return nil
	})
	if err != nil {
		panic(err)
	}
	p.Y = 5
	fmt.Println(*v.Front())
	// Output: {3 5}
}

func ExampleWithMemoryLimit() {
	v := govec.New[int64](govec.WithMemoryLimit(64 * datasize.B))

	err := v.Resize(16)
	fmt.Println(errors.Is(err, govec.ErrMemoryLimitExceeded), v.Size())
	// Output: true 0
}

func ExampleWithMemoryAcquirer() {
	rc := resource.NewController(resource.Config{MemoryLimit: 1 * datasize.KB})

	ids := govec.New[int64](govec.WithMemoryAcquirer(rc))
	flags := govec.New[bool](govec.WithMemoryAcquirer(rc))

	if err := ids.Reserve(100); err != nil {
		panic(err)
	}
	if err := flags.Reserve(200); err != nil {
		panic(err)
	}
	fmt.Println("usage:", rc.MemoryUsage(), "limit:", rc.MemoryLimit())

	err := flags.Reserve(300)
	fmt.Println(errors.Is(err, govec.ErrMemoryLimitExceeded), flags.Capacity())

	ids.Free()
	fmt.Println("usage:", rc.MemoryUsage(), "peak:", rc.PeakMemoryUsage())
	// Output:
	// usage: 1000 limit: 1024
	// true 200
	// usage: 200 peak: 1000
}
