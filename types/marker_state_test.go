package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkerStateString(t *testing.T) {
	require.Equal(t, "Absent", MarkerAbsent.String())
	require.Equal(t, "Creating", MarkerCreating.String())
	require.Equal(t, "Active", MarkerActive.String())
	require.Equal(t, "FadingOut", MarkerFadingOut.String())
	require.Equal(t, "Removed", MarkerRemoved.String())
	require.Equal(t, "Unknown", MarkerState(42).String())
}
