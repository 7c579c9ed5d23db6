package cell_test

import (
	"fmt"

	"go.alis.build/cell"
)

func ExampleIsValid() {
	fmt.Println(cell.IsValid("e4"))
	fmt.Println(cell.IsValid("h8Hh8"))
	fmt.Println(cell.IsValid("1a"))

	// Output:
	// true
	// true
	// false
}

func ExampleParse() {
	components, err := cell.Parse("h8Hh8")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(components)

	// Output:
	// [h 8 H h 8]
}

func ExampleToIndices() {
	// The chess square e4: file e is the fifth file, rank 4 is the
	// fourth rank, both zero-based as indices.
	indices, err := cell.ToIndices("e4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(indices)

	// Output:
	// [4 3]
}

func ExampleFromIndices() {
	coordinate, err := cell.FromIndices([]int{4, 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(coordinate)

	// Output:
	// e4
}

func ExampleFromIndices_emptyTuple() {
	_, err := cell.FromIndices(nil)
	fmt.Println(err)

	// Output:
	// Cannot convert empty tuple to CELL coordinate
}

func ExampleDimensions() {
	fmt.Println(cell.Dimensions("h8Hh8"))
	fmt.Println(cell.Dimensions("zebra"))
	fmt.Println(cell.Dimensions("not a coordinate"))

	// Output:
	// 5
	// 1
	// 0
}

func ExampleClassFor() {
	for dim := 1; dim <= 6; dim++ {
		fmt.Printf("dimension %d: %s\n", dim, cell.ClassFor(dim))
	}

	// Output:
	// dimension 1: lowercase
	// dimension 2: numeric
	// dimension 3: uppercase
	// dimension 4: lowercase
	// dimension 5: numeric
	// dimension 6: uppercase
}
