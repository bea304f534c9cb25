package geofence

import (
	"fmt"

	"github.com/bsm/hexfence/hexgrid"
	"github.com/golang/geo/s2"
)

// BoundingBox is the lat/lng extent of a polygon. It is a diagnostic only.
type BoundingBox struct{ rect s2.Rect }

// EmptyBoundingBox returns a box which contains nothing.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{rect: s2.EmptyRect()}
}

// Extend grows the box to include ll.
func (b *BoundingBox) Extend(ll hexgrid.LatLng) {
	b.rect = b.rect.AddPoint(s2.LatLngFromDegrees(ll.Lat, ll.Lng))
}

// IsEmpty returns true if the box contains nothing.
func (b BoundingBox) IsEmpty() bool { return b.rect.IsEmpty() }

// Min returns the south-west corner.
func (b BoundingBox) Min() hexgrid.LatLng { return latLngOf(b.rect.Lo()) }

// Max returns the north-east corner.
func (b BoundingBox) Max() hexgrid.LatLng { return latLngOf(b.rect.Hi()) }

// Contains returns true if ll is within the box.
func (b BoundingBox) Contains(ll hexgrid.LatLng) bool {
	return b.rect.ContainsLatLng(s2.LatLngFromDegrees(ll.Lat, ll.Lng))
}

func (b BoundingBox) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	lo, hi := b.Min(), b.Max()
	return fmt.Sprintf("[%f,%f]-[%f,%f]", lo.Lat, lo.Lng, hi.Lat, hi.Lng)
}

func latLngOf(ll s2.LatLng) hexgrid.LatLng {
	return hexgrid.LatLng{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}
