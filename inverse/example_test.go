// SPDX-License-Identifier: MIT
package inverse_test

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/matcache/inverse"
	"github.com/katalvlaran/matcache/matrix"
)

// ExampleCachedMatrix_Inverse shows the compute-once, return-cached flow.
func ExampleCachedMatrix_Inverse() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{2, 0},
		{0, 2},
	})
	cm := inverse.NewCachedMatrix(m)
	silent := inverse.WithLogger(zerolog.Nop())

	inv, _ := cm.Inverse(silent) // computed and stored
	fmt.Print(inv)

	again, _ := cm.Inverse(silent) // cache hit: identical stored value
	fmt.Println(inv == again)
	// Output:
	// [0.5, 0]
	// [0, 0.5]
	// true
}

// ExampleCachedMatrix_SetSource shows invalidation on source replacement.
func ExampleCachedMatrix_SetSource() {
	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
	cm := inverse.NewCachedMatrix(m)
	silent := inverse.WithLogger(zerolog.Nop())

	_, _ = cm.Inverse(silent)
	_, populated := cm.CachedInverse()
	fmt.Println("populated:", populated)

	m2, _ := matrix.NewDenseFromRows([][]float64{{4, 0}, {0, 4}})
	cm.SetSource(m2) // cache dropped
	_, populated = cm.CachedInverse()
	fmt.Println("populated:", populated)
	// Output:
	// populated: true
	// populated: false
}

// ExampleCachedMatrix_Inverse_singular shows that a failed solve leaves the
// cache empty and keeps the sentinel matchable.
func ExampleCachedMatrix_Inverse_singular() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {2, 4}})
	cm := inverse.NewCachedMatrix(m)

	_, err := cm.Inverse(inverse.WithLogger(zerolog.Nop()))
	fmt.Println(errors.Is(err, matrix.ErrSingular))

	_, populated := cm.CachedInverse()
	fmt.Println("populated:", populated)
	// Output:
	// true
	// populated: false
}
