package geofence

import (
	"math"

	"github.com/bsm/hexfence/hexgrid"
	"github.com/golang/geo/s2"
)

// Polygon is an ordered vertex ring. A well-formed polygon is closed
// explicitly by repeating the first vertex as the last one.
type Polygon []hexgrid.LatLng

// IsClosed returns true if the first and last vertices are identical.
func (p Polygon) IsClosed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// NumDistinct returns the number of distinct vertices.
func (p Polygon) NumDistinct() int {
	seen := make(map[hexgrid.LatLng]struct{}, len(p))
	for _, ll := range p {
		seen[ll] = struct{}{}
	}
	return len(seen)
}

// Bounds returns the bounding box of all vertices.
func (p Polygon) Bounds() BoundingBox {
	b := EmptyBoundingBox()
	for _, ll := range p {
		b.Extend(ll)
	}
	return b
}

// Contains returns true if ll is inside the polygon. Polygons with fewer
// than three distinct vertices contain nothing.
func (p Polygon) Contains(ll hexgrid.LatLng) bool {
	loop := p.loop()
	if loop == nil {
		return false
	}
	return loop.ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(ll.Lat, ll.Lng)))
}

func (p Polygon) loop() *s2.Loop {
	pts := make([]s2.Point, 0, len(p))
	for _, ll := range p {
		pt := s2.PointFromLatLng(s2.LatLngFromDegrees(ll.Lat, ll.Lng))
		if n := len(pts); n != 0 && pts[n-1] == pt {
			continue
		}
		pts = append(pts, pt)
	}
	// s2 loops are implicitly closed
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if len(pts) < 3 {
		return nil
	}

	// A loop is assumed clockwise if its bounding rectangle covers
	// more than half of the sphere. No city comes close to that.
	loop := s2.LoopFromPoints(pts)
	if loop.RectBound().Area() >= 2*math.Pi {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
		loop = s2.LoopFromPoints(pts)
	}
	return loop
}
