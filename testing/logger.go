package testing

import (
	"testing"

	"github.com/arloliu/prunecluster/internal/logger"
	"github.com/arloliu/prunecluster/types"
)

// NewTestLogger creates a logger that writes through t, so log output shows up next to
// the test that produced it.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
