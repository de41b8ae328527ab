// SPDX-License-Identifier: MIT

package container_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if a backend leaves goroutines behind after Close.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
