package deque_test

import (
	"fmt"

	"github.com/lucasgdosr/deque/v2"
)

func Example() {
	d := deque.New[int]()
	for i := 1; i <= 5; i++ {
		_ = d.PushBack(i)
	}
	d.PopFront()
	_ = d.PushBack(200)
	_ = d.PushBack(300)
	fmt.Println(d)
	// Output: {2, 3, 4, 5, 200, 300}
}

func ExampleDeque_Insert() {
	d, _ := deque.FromSlice([]int{1, 2, 3, 4})
	it, _ := d.Insert(d.CBegin().Add(2), 5)
	fmt.Println(d, it.Index())
	d.Erase(it.Const())
	fmt.Println(d)
	// Output:
	// {1, 2, 5, 3, 4} 2
	// {1, 2, 3, 4}
}

func ExampleSwap() {
	a, _ := deque.FromSlice([]string{"a", "b"})
	b, _ := deque.FromSlice([]string{"c"})
	it := a.CBegin()
	deque.Swap(a, b)
	fmt.Println(a, b, it.Get())
	// Output: {c} {a, b} a
}
