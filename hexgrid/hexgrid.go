// Package hexgrid describes the hierarchical hex-grid capabilities used to
// rasterise regions and provides an implementation on top of Uber's H3.
package hexgrid

import (
	"errors"
	"strconv"
)

// ErrLineUndefined is returned by Grid.Line when no cell path can be
// resolved between two cells, e.g. across pentagon distortion.
var ErrLineUndefined = errors.New("hexgrid: line undefined")

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewLatLng inits a LatLng.
func NewLatLng(lat, lng float64) LatLng { return LatLng{Lat: lat, Lng: lng} }

// Cell is an opaque grid cell identifier. It encodes the resolution as well
// as the hierarchical address; cells at different resolutions never compare
// equal, even when nested.
type Cell uint64

// CellFromString parses the hexadecimal text form of a cell.
func CellFromString(s string) (Cell, error) {
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.New("hexgrid: invalid cell " + strconv.Quote(s))
	}
	return Cell(u), nil
}

// String returns the hexadecimal text form.
func (c Cell) String() string { return strconv.FormatUint(uint64(c), 16) }

// Grid is the cell addressing capability consumed by region builders.
type Grid interface {
	// Cell returns the cell containing ll at resolution res.
	Cell(ll LatLng, res int) (Cell, error)
	// Boundary returns the ordered boundary vertices of c.
	Boundary(c Cell) ([]LatLng, error)
	// Neighbors returns all cells within k steps of c, c included.
	Neighbors(c Cell, k int) ([]Cell, error)
	// Line returns an ordered path of cells approximating a straight line
	// from a to b, both included. Must return an error wrapping
	// ErrLineUndefined when no such path exists.
	Line(a, b Cell) ([]Cell, error)
	// Resolution returns the resolution of c.
	Resolution(c Cell) int
	// Compact replaces complete sibling sets with their parents, recursively.
	Compact(cells []Cell) ([]Cell, error)
	// Uncompact expands cells to resolution res.
	Uncompact(cells []Cell, res int) ([]Cell, error)
	// Parent returns the ancestor of c at resolution res.
	Parent(c Cell, res int) (Cell, error)
	// IsPentagon reports whether c is one of the fixed pentagon cells.
	IsPentagon(c Cell) bool
}
