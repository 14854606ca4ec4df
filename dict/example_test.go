package dict_test

import (
	"fmt"

	"github.com/hasbyte1/go-sanity/dict"
)

func ExampleMerge() {
	m := dict.Merge(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3, "c": 4})
	fmt.Println(m)
	// Output: map[a:1 b:3 c:4]
}

func ExampleMergeWith() {
	sum := func(a, b int) int { return a + b }
	fmt.Println(dict.MergeWith(sum, map[string]int{"x": 1}, map[string]int{"x": 2, "y": 5}))
	// Output: map[x:3 y:5]
}

func ExampleRenameKeys() {
	m := dict.RenameKeys(map[string]int{"a": 1, "b": 2}, map[string]string{"a": "alpha"})
	fmt.Println(m)
	// Output: map[alpha:1 b:2]
}

func ExampleGetIn() {
	m := map[string]any{"user": map[string]any{"address": map[string]any{"city": "London"}}}
	fmt.Println(dict.GetIn(m, dict.Path("user.address.city"), "unknown"))
	// Output: London
}
