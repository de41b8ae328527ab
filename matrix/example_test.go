// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/epdcentrality/matrix"
)

// ExampleTranspose turns a ring-major table (2 rings × 3 events) into
// event-major feature rows.
func ExampleTranspose() {
	rings, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3}, // ring 0, events 0..2
		{4, 5, 6}, // ring 1, events 0..2
	})

	events, _ := matrix.Transpose(rings)
	fmt.Print(events)

	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
