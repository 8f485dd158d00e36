package collections_test

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-typed-collections/collections"
)

func ExampleNew() {
	c := collections.New(1, 2, 3, 4, 5)
	fmt.Println(c.Count(), c.IsSequential(), c)
	// Output: 5 true [1,2,3,4,5]
}

func ExampleNewWithPolicy() {
	_, err := collections.NewWithPolicy(collections.NonEmptyString(), "alpha", "")
	fmt.Println(errors.Is(err, collections.ErrInvalidItem))

	var verr *collections.ValidationError
	if errors.As(err, &verr) {
		fmt.Println("position", verr.Position)
	}
	// Output:
	// true
	// position 1
}

func ExampleCollection_GetNth() {
	c := collections.New("a", "b", "c")
	v, ok := c.GetNth(2)
	fmt.Println(v, ok)
	_, ok = c.GetNth(4)
	fmt.Println(ok)
	// Output:
	// b true
	// false
}

func ExampleCollection_Slice() {
	c := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	s, _ := c.Slice(3, 5)
	fmt.Println(s.Values())
	// Output: [4 5 6 7 8]
}

func ExampleCollection_Chunk() {
	chunks, _ := collections.New(1, 2, 3, 4, 5).Chunk(2)
	for _, chunk := range chunks {
		fmt.Println(chunk)
	}
	// Output:
	// [1,2]
	// [3,4]
	// [5]
}

func ExampleCollection_Absorb() {
	list := collections.New(1, 2)
	extra := collections.Empty[int]()
	_ = extra.Set(collections.Index(3), 3)
	_ = list.Absorb(extra)
	fmt.Println(list)

	byKey := collections.Empty[string]()
	_ = byKey.Set(collections.Index(1), "A")
	update := collections.Empty[string]()
	_ = update.Set(collections.Index(1), "B")
	_ = byKey.Absorb(update)
	fmt.Println(byKey)
	// Output:
	// [1,2,3]
	// {"1":"B"}
}

func ExampleCollection_ToJSON() {
	c := collections.Empty[int]()
	_ = c.Set(collections.Label("alpha"), 1)
	_ = c.Set(collections.Label("beta"), 2)
	_ = c.Set(collections.Label("gamma"), 3)
	b, _ := c.ToJSON()
	fmt.Println(string(b))

	_ = c.RenameKey(collections.Label("alpha"), collections.Index(0))
	_ = c.RenameKey(collections.Label("beta"), collections.Index(1))
	_ = c.RenameKey(collections.Label("gamma"), collections.Index(2))
	b, _ = c.ToJSON()
	fmt.Println(string(b))
	// Output:
	// {"alpha":1,"beta":2,"gamma":3}
	// [1,2,3]
}

func ExampleNumbers_Integers() {
	n, _ := collections.NewNumbers(1, 2.9, 4.8756, "5.6", "9")
	integers, _ := n.Integers()
	floats, _ := n.Floats()
	fmt.Println(integers.Values())
	fmt.Println(floats.Values())
	// Output:
	// [1 2 4 5 9]
	// [1 2.9 4.8756 5.6 9]
}

func ExampleText_Concat() {
	t, _ := collections.NewText("alpha", "beta", "gamma")
	fmt.Println(t.Concat())
	// Output: alpha, beta, gamma
}

func ExampleMap() {
	c := collections.New(1, 2, 3)
	labels, _ := collections.Map(c, collections.NonEmptyString(), func(n int, _ collections.Key) string {
		return fmt.Sprintf("#%d", n*n)
	})
	fmt.Println(labels)
	// Output: ["#1","#4","#9"]
}

func ExampleReduce() {
	sum := collections.Reduce(
		collections.New(1, 2, 3, 4, 5),
		func(acc, n int, _ collections.Key) int { return acc + n },
		0,
	)
	fmt.Println(sum)
	// Output: 15
}
