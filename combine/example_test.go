package combine_test

import (
	"fmt"

	"github.com/adrianroos/advent-of-code-2022/combine"
	"github.com/adrianroos/advent-of-code-2022/nodetable"
)

// ExampleCombineDisjoint pairs two agents over three activatable nodes.
// {0,1} alone is worth 9, but {0} + {1,2} is worth 4 + 8.
func ExampleCombineDisjoint() {
	table := map[nodetable.Mask]int{
		0b000: 0,
		0b001: 4,
		0b011: 9,
		0b110: 8,
	}
	p, err := combine.CombineDisjoint(table)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%03b + %03b = %d\n", p.A, p.B, p.Value)
	// Output:
	// 001 + 110 = 12
}
