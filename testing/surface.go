package testing

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arloliu/prunecluster/internal/mercator"
	"github.com/arloliu/prunecluster/types"
)

// Default viewport of a Surface in pixels.
const (
	DefaultViewportWidth  = 1024
	DefaultViewportHeight = 768
	DefaultMaxZoom        = 18
)

// OpKind names a recorded surface operation.
type OpKind string

// Recorded operation kinds.
const (
	OpCreate   OpKind = "create"
	OpAttach   OpKind = "attach"
	OpDetach   OpKind = "detach"
	OpMove     OpKind = "move"
	OpIcon     OpKind = "icon"
	OpOpacity  OpKind = "opacity"
	OpSuppress OpKind = "suppress"
	OpFit      OpKind = "fit"
	OpView     OpKind = "view"
)

// Op is one recorded surface operation.
type Op struct {
	Kind       OpKind
	Marker     uint64
	Position   types.LatLng
	Icon       types.Icon
	Opacity    float64
	Suppressed bool
	Bounds     types.Bounds
	Zoom       int
}

// String renders the operation on one line.
func (o Op) String() string {
	switch o.Kind {
	case OpCreate:
		return fmt.Sprintf("create #%d at %.5f,%.5f %s %q", o.Marker, o.Position.Lat, o.Position.Lng, o.Icon.ClassName, o.Icon.Label)
	case OpMove:
		return fmt.Sprintf("move #%d to %.5f,%.5f", o.Marker, o.Position.Lat, o.Position.Lng)
	case OpIcon:
		return fmt.Sprintf("icon #%d %s %q", o.Marker, o.Icon.ClassName, o.Icon.Label)
	case OpOpacity:
		return fmt.Sprintf("opacity #%d %g", o.Marker, o.Opacity)
	case OpSuppress:
		return fmt.Sprintf("suppress #%d %t", o.Marker, o.Suppressed)
	case OpFit:
		return fmt.Sprintf("fit %.5f,%.5f %.5f,%.5f zoom %d",
			o.Bounds.MinLat, o.Bounds.MinLng, o.Bounds.MaxLat, o.Bounds.MaxLng, o.Zoom)
	case OpView:
		return fmt.Sprintf("view %.5f,%.5f zoom %d", o.Position.Lat, o.Position.Lng, o.Zoom)
	default:
		return fmt.Sprintf("%s #%d", o.Kind, o.Marker)
	}
}

// SurfaceOption configures a Surface.
type SurfaceOption func(*Surface)

// WithViewport sets the viewport size in pixels.
func WithViewport(width, height int) SurfaceOption {
	return func(s *Surface) {
		s.width = width
		s.height = height
	}
}

// WithMaxZoom sets the highest zoom BoundsZoom may return.
func WithMaxZoom(zoom int) SurfaceOption {
	return func(s *Surface) {
		s.maxZoom = zoom
	}
}

// Surface is an in-memory types.Surface that records every operation.
//
// The view is a Web Mercator viewport of fixed pixel size. Methods are safe for
// concurrent use so tests may inspect it while timer callbacks run.
type Surface struct {
	mu       sync.Mutex
	center   types.LatLng
	zoom     int
	width    int
	height   int
	maxZoom  int
	nextID   uint64
	markers  map[uint64]*Marker
	attached map[uint64]*Marker
	ops      []Op
}

var _ types.Surface = (*Surface)(nil)

// NewSurface creates a surface centered on center at zoom.
//
// Parameters:
//   - center: Initial view center
//   - zoom: Initial zoom
//   - opts: Optional viewport settings
//
// Returns:
//   - *Surface: Surface with no markers
func NewSurface(center types.LatLng, zoom int, opts ...SurfaceOption) *Surface {
	s := &Surface{
		center:   center,
		zoom:     zoom,
		width:    DefaultViewportWidth,
		height:   DefaultViewportHeight,
		maxZoom:  DefaultMaxZoom,
		markers:  make(map[uint64]*Marker),
		attached: make(map[uint64]*Marker),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Bounds returns the visible area.
func (s *Surface) Bounds() types.Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, y := mercator.Project(s.center, s.zoom, mercator.DefaultTileSize)
	hw, hh := float64(s.width)/2, float64(s.height)/2
	nw := mercator.Unproject(x-hw, y-hh, s.zoom, mercator.DefaultTileSize)
	se := mercator.Unproject(x+hw, y+hh, s.zoom, mercator.DefaultTileSize)

	return types.Bounds{MinLat: se.Lat, MinLng: nw.Lng, MaxLat: nw.Lat, MaxLng: se.Lng}
}

// Zoom returns the current zoom.
func (s *Surface) Zoom() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.zoom
}

// Center returns the current view center.
func (s *Surface) Center() types.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.center
}

// CreateMarker creates a detached marker.
func (s *Surface) CreateMarker(pos types.LatLng, icon types.Icon) types.Marker {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	m := &Marker{surface: s, id: s.nextID, position: pos, icon: icon, opacity: 1}
	s.markers[m.id] = m
	s.ops = append(s.ops, Op{Kind: OpCreate, Marker: m.id, Position: pos, Icon: icon})

	return m
}

// Attach makes m visible.
func (s *Surface) Attach(m types.Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mk := s.markers[m.ID()]
	mk.attached = true
	s.attached[mk.id] = mk
	s.ops = append(s.ops, Op{Kind: OpAttach, Marker: mk.id})
}

// Detach removes m from the surface.
func (s *Surface) Detach(m types.Marker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	mk := s.markers[m.ID()]
	mk.attached = false
	delete(s.attached, mk.id)
	s.ops = append(s.ops, Op{Kind: OpDetach, Marker: mk.id})
}

// FitBounds centers b and zooms to the highest level that shows it with padding.
func (s *Surface) FitBounds(b types.Bounds, padding int) {
	zoom := s.BoundsZoom(b, padding)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.center = b.Center()
	s.zoom = zoom
	s.ops = append(s.ops, Op{Kind: OpFit, Bounds: b, Zoom: zoom})
}

// BoundsZoom returns the highest zoom at which b plus padding fits the viewport.
func (s *Surface) BoundsZoom(b types.Bounds, padding int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	availW := float64(s.width - 2*padding)
	availH := float64(s.height - 2*padding)
	for zoom := s.maxZoom; zoom > 0; zoom-- {
		w, h := mercator.PixelSpan(b, zoom, mercator.DefaultTileSize)
		if w <= availW && h <= availH {
			return zoom
		}
	}

	return 0
}

// SetView centers the view on center at zoom.
func (s *Surface) SetView(center types.LatLng, zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.center = center
	s.zoom = zoom
	s.ops = append(s.ops, Op{Kind: OpView, Position: center, Zoom: zoom})
}

// Pan moves the view center without recording an operation, as a user drag would.
func (s *Surface) Pan(center types.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.center = center
}

// SetZoom changes the zoom without recording an operation, as a user zoom would.
func (s *Surface) SetZoom(zoom int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.zoom = zoom
}

// Attached returns the attached markers ordered by ID.
func (s *Surface) Attached() []*Marker {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Marker, 0, len(s.attached))
	for _, m := range s.attached {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })

	return out
}

// Marker returns the marker with the given ID, nil if it was never created.
func (s *Surface) Marker(id uint64) *Marker {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.markers[id]
}

// Created returns the number of markers created so far.
func (s *Surface) Created() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.markers)
}

// Ops returns a copy of the recorded operations.
func (s *Surface) Ops() []Op {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Op(nil), s.ops...)
}

// OpsOf returns the recorded operations of one kind.
func (s *Surface) OpsOf(kind OpKind) []Op {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Op
	for _, op := range s.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}

	return out
}

// ResetOps clears the operation log.
func (s *Surface) ResetOps() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = nil
}

func (s *Surface) record(op Op) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = append(s.ops, op)
}

// Marker is a marker created by a Surface.
type Marker struct {
	surface    *Surface
	id         uint64
	position   types.LatLng
	icon       types.Icon
	opacity    float64
	suppressed bool
	attached   bool
}

var _ types.Marker = (*Marker)(nil)

// ID returns the marker ID.
func (m *Marker) ID() uint64 {
	return m.id
}

// SetPosition moves the marker.
func (m *Marker) SetPosition(pos types.LatLng) {
	m.surface.mu.Lock()
	m.position = pos
	m.surface.mu.Unlock()
	m.surface.record(Op{Kind: OpMove, Marker: m.id, Position: pos})
}

// SetIcon replaces the icon.
func (m *Marker) SetIcon(icon types.Icon) {
	m.surface.mu.Lock()
	m.icon = icon
	m.surface.mu.Unlock()
	m.surface.record(Op{Kind: OpIcon, Marker: m.id, Icon: icon})
}

// SetOpacity sets the opacity.
func (m *Marker) SetOpacity(opacity float64) {
	m.surface.mu.Lock()
	m.opacity = opacity
	m.surface.mu.Unlock()
	m.surface.record(Op{Kind: OpOpacity, Marker: m.id, Opacity: opacity})
}

// SetEntranceSuppressed toggles the entrance transition.
func (m *Marker) SetEntranceSuppressed(suppressed bool) {
	m.surface.mu.Lock()
	m.suppressed = suppressed
	m.surface.mu.Unlock()
	m.surface.record(Op{Kind: OpSuppress, Marker: m.id, Suppressed: suppressed})
}

// Position returns the marker position.
func (m *Marker) Position() types.LatLng {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	return m.position
}

// Icon returns the marker icon.
func (m *Marker) Icon() types.Icon {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	return m.icon
}

// Opacity returns the marker opacity.
func (m *Marker) Opacity() float64 {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	return m.opacity
}

// Suppressed reports whether the entrance transition is suppressed.
func (m *Marker) Suppressed() bool {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	return m.suppressed
}

// Attached reports whether the marker is on the surface.
func (m *Marker) Attached() bool {
	m.surface.mu.Lock()
	defer m.surface.mu.Unlock()

	return m.attached
}
