package types

import "math"

// LatLng is a geographic position in degrees.
type LatLng struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Equal reports whether both coordinates are exactly equal.
func (p LatLng) Equal(q LatLng) bool {
	return p.Lat == q.Lat && p.Lng == q.Lng
}

// Bounds is an axis-aligned latitude/longitude rectangle.
type Bounds struct {
	MinLat float64 `json:"minLat" yaml:"minLat"`
	MinLng float64 `json:"minLng" yaml:"minLng"`
	MaxLat float64 `json:"maxLat" yaml:"maxLat"`
	MaxLng float64 `json:"maxLng" yaml:"maxLng"`
}

// EmptyBounds returns inverted bounds that any call to Extend will replace.
//
// Returns:
//   - Bounds: Bounds with +Inf minimums and -Inf maximums
func EmptyBounds() Bounds {
	return Bounds{
		MinLat: math.Inf(1),
		MinLng: math.Inf(1),
		MaxLat: math.Inf(-1),
		MaxLng: math.Inf(-1),
	}
}

// Extend grows the bounds to include p.
func (b *Bounds) Extend(p LatLng) {
	b.MinLat = math.Min(b.MinLat, p.Lat)
	b.MinLng = math.Min(b.MinLng, p.Lng)
	b.MaxLat = math.Max(b.MaxLat, p.Lat)
	b.MaxLng = math.Max(b.MaxLng, p.Lng)
}

// Union grows the bounds to include o.
func (b *Bounds) Union(o Bounds) {
	b.MinLat = math.Min(b.MinLat, o.MinLat)
	b.MinLng = math.Min(b.MinLng, o.MinLng)
	b.MaxLat = math.Max(b.MaxLat, o.MaxLat)
	b.MaxLng = math.Max(b.MaxLng, o.MaxLng)
}

// Valid reports whether the minimums do not exceed the maximums.
func (b Bounds) Valid() bool {
	return b.MinLat <= b.MaxLat && b.MinLng <= b.MaxLng
}

// Contains reports whether p lies inside the bounds (edges inclusive).
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Intersects reports whether the two bounds share any point (edges inclusive).
func (b Bounds) Intersects(o Bounds) bool {
	return b.MinLat <= o.MaxLat && o.MinLat <= b.MaxLat &&
		b.MinLng <= o.MaxLng && o.MinLng <= b.MaxLng
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

// Span returns the latitude and longitude extent of the bounds.
//
// Returns:
//   - lat: MaxLat - MinLat
//   - lng: MaxLng - MinLng
func (b Bounds) Span() (lat, lng float64) {
	return b.MaxLat - b.MinLat, b.MaxLng - b.MinLng
}
