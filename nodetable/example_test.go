package nodetable_test

import (
	"fmt"

	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// ExampleBuilder shows index and bit assignment for a three-node universe.
func ExampleBuilder() {
	b := nodetable.NewBuilder(nodetable.WithStart("AA"))
	_ = b.AddNode("BB", 13, "AA")
	_ = b.AddNode("AA", 0, "BB", "CC")
	_ = b.AddNode("CC", 2, "AA")

	t, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < t.Len(); i++ {
		n := t.Node(i)
		fmt.Printf("%d %s weight=%d bit=%d\n", i, n.Name, n.Weight, n.Bit)
	}
	m, _ := t.MaskOf("CC")
	fmt.Println(t.Names(m))
	// Output:
	// 0 AA weight=0 bit=-1
	// 1 BB weight=13 bit=0
	// 2 CC weight=2 bit=1
	// [CC]
}
