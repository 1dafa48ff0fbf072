package types

// MarkerState is the lifecycle state of a displayed marker.
//
//	Absent → Creating → Active → FadingOut → Removed
//
// Creating and FadingOut are only entered through the lifecycle scheduler; Active is
// re-entered on every view update that reuses the marker instead of replacing it.
type MarkerState int

const (
	// MarkerAbsent is the zero state before a marker exists.
	MarkerAbsent MarkerState = iota

	// MarkerCreating is a placed marker at opacity 0 with its entrance suppressed.
	MarkerCreating

	// MarkerActive is a fully visible marker.
	MarkerActive

	// MarkerFadingOut is a marker at opacity 0 waiting to be detached.
	MarkerFadingOut

	// MarkerRemoved is a detached marker.
	MarkerRemoved
)

// String returns the string representation of the marker state.
func (s MarkerState) String() string {
	switch s {
	case MarkerAbsent:
		return "Absent"
	case MarkerCreating:
		return "Creating"
	case MarkerActive:
		return "Active"
	case MarkerFadingOut:
		return "FadingOut"
	case MarkerRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}
