package matrix

import "github.com/jbeda/geom"

// Bounds returns the smallest axis-aligned rectangle containing every point.
// An empty slice yields the zero Rect.
func Bounds(points []geom.Coord) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(p)
	}

	return r
}
