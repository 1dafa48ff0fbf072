// Package mercator converts between geographic coordinates and Web Mercator pixels.
package mercator

import (
	"math"

	"github.com/arloliu/prunecluster/types"
)

// DefaultTileSize is the pixel size of one tile at zoom 0.
const DefaultTileSize = 256

// MaxLatitude is the latitude limit of the Web Mercator projection.
const MaxLatitude = 85.0511287798

// Project converts a position to world pixel coordinates at the given zoom.
//
// Parameters:
//   - p: Position in degrees
//   - zoom: Zoom level
//   - tileSize: Tile size in pixels (DefaultTileSize if <= 0)
//
// Returns:
//   - x, y: Pixel coordinates, origin at the top-left of the world
func Project(p types.LatLng, zoom int, tileSize int) (x, y float64) {
	scale := worldSize(zoom, tileSize)
	lat := math.Max(-MaxLatitude, math.Min(MaxLatitude, p.Lat))
	sin := math.Sin(lat * math.Pi / 180)

	x = (p.Lng + 180) / 360 * scale
	y = (0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi) * scale

	return x, y
}

// Unproject converts world pixel coordinates back to a position.
func Unproject(x, y float64, zoom int, tileSize int) types.LatLng {
	scale := worldSize(zoom, tileSize)
	nx := x / scale
	ny := y / scale

	return types.LatLng{
		Lat: math.Atan(math.Sinh(math.Pi*(1-2*ny))) * 180 / math.Pi,
		Lng: nx*360 - 180,
	}
}

// Cell returns the square of side px pixels centered on p.
func Cell(p types.LatLng, zoom int, px float64, tileSize int) types.Bounds {
	x, y := Project(p, zoom, tileSize)
	half := px / 2
	nw := Unproject(x-half, y-half, zoom, tileSize)
	se := Unproject(x+half, y+half, zoom, tileSize)

	return types.Bounds{MinLat: se.Lat, MinLng: nw.Lng, MaxLat: nw.Lat, MaxLng: se.Lng}
}

// PixelSpan returns the pixel width and height of b at the given zoom.
func PixelSpan(b types.Bounds, zoom int, tileSize int) (w, h float64) {
	x1, y1 := Project(types.LatLng{Lat: b.MaxLat, Lng: b.MinLng}, zoom, tileSize)
	x2, y2 := Project(types.LatLng{Lat: b.MinLat, Lng: b.MaxLng}, zoom, tileSize)

	return x2 - x1, y2 - y1
}

func worldSize(zoom int, tileSize int) float64 {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	return float64(tileSize) * math.Pow(2, float64(zoom))
}
