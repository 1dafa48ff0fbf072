package types

// Icon describes the appearance of a marker.
//
// The overlay never interprets icons; it only builds them through a Styler and hands
// them to the Surface.
type Icon struct {
	// ClassName is the style class applied to the marker element.
	ClassName string `json:"className"`

	// HTML is optional inner markup.
	HTML string `json:"html,omitempty"`

	// Label is the text shown on the marker (population for clusters).
	Label string `json:"label,omitempty"`

	// Size is the square icon size in pixels (0 = surface default).
	Size int `json:"size,omitempty"`
}

// Marker is a handle to a visual created by a Surface.
//
// Handles are compared by identity: a marker that is reused across view updates keeps
// the same handle and the same ID.
type Marker interface {
	// ID returns the stable identifier of the marker.
	ID() uint64

	// SetPosition moves the marker.
	SetPosition(pos LatLng)

	// SetIcon replaces the marker appearance.
	SetIcon(icon Icon)

	// SetOpacity sets the marker opacity in [0, 1].
	SetOpacity(opacity float64)

	// SetEntranceSuppressed toggles the "no transition" state used while a marker is
	// placed for the first time, so it fades in where it stands instead of sliding in.
	SetEntranceSuppressed(suppressed bool)
}

// Surface is the rendering target the overlay draws on.
//
// All methods are invoked with the overlay lock held, from the goroutine that called
// the overlay or from a Scheduler callback.
type Surface interface {
	// Bounds returns the visible area.
	Bounds() Bounds

	// Zoom returns the current zoom level.
	Zoom() int

	// CreateMarker creates a detached marker.
	CreateMarker(pos LatLng, icon Icon) Marker

	// Attach makes the marker visible on the surface.
	Attach(m Marker)

	// Detach removes the marker from the surface.
	Detach(m Marker)

	// FitBounds moves the view to frame b with the given pixel padding.
	FitBounds(b Bounds, padding int)

	// BoundsZoom returns the zoom FitBounds(b, padding) would settle on.
	BoundsZoom(b Bounds, padding int) int

	// SetView centers the view on center at the given zoom.
	SetView(center LatLng, zoom int)
}
