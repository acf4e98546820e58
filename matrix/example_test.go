// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// ExampleInverse inverts a diagonal matrix and prints the result.
func ExampleInverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{0, 4},
	})

	inv, err := matrix.Inverse(m)
	if err != nil {
		fmt.Println("inverse failed:", err)
		return
	}
	fmt.Print(inv)
	// Output:
	// [0.5, 0]
	// [0, 0.25]
}

// ExampleInverse_singular shows sentinel matching on a rank-deficient input.
func ExampleInverse_singular() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{2, 4},
	})

	_, err := matrix.Inverse(m)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// true
}

// ExampleMul multiplies two small matrices.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})

	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [2, 1]
	// [4, 3]
}
