package hexgrid

import (
	"fmt"

	"github.com/uber/h3-go/v4"
)

// MaxResolution is the finest resolution supported by H3.
const MaxResolution = 15

// H3 implements Grid on top of Uber's H3 library.
type H3 struct{}

// NewH3 returns an H3 grid.
func NewH3() *H3 { return &H3{} }

// Cell implements Grid.
func (*H3) Cell(ll LatLng, res int) (Cell, error) {
	if res < 0 || res > MaxResolution {
		return 0, fmt.Errorf("hexgrid: invalid resolution %d", res)
	}

	c, err := h3.LatLngToCell(h3.NewLatLng(ll.Lat, ll.Lng), res)
	if err != nil {
		return 0, fmt.Errorf("hexgrid: cell for %v: %w", ll, err)
	}
	return Cell(c), nil
}

// Boundary implements Grid.
func (*H3) Boundary(c Cell) ([]LatLng, error) {
	if !h3.Cell(c).IsValid() {
		return nil, fmt.Errorf("hexgrid: invalid cell %s", c)
	}

	cb, err := h3.Cell(c).Boundary()
	if err != nil {
		return nil, fmt.Errorf("hexgrid: boundary of %s: %w", c, err)
	}

	pts := make([]LatLng, 0, len(cb))
	for _, v := range cb {
		pts = append(pts, LatLng{Lat: v.Lat, Lng: v.Lng})
	}
	return pts, nil
}

// Neighbors implements Grid.
func (*H3) Neighbors(c Cell, k int) ([]Cell, error) {
	disk, err := h3.GridDisk(h3.Cell(c), k)
	if err != nil {
		return nil, fmt.Errorf("hexgrid: ring %d around %s: %w", k, c, err)
	}
	return fromH3(disk), nil
}

// Line implements Grid.
func (*H3) Line(a, b Cell) ([]Cell, error) {
	path, err := h3.GridPath(h3.Cell(a), h3.Cell(b))
	if err != nil {
		return nil, fmt.Errorf("%w between %s and %s: %v", ErrLineUndefined, a, b, err)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w between %s and %s", ErrLineUndefined, a, b)
	}
	return fromH3(path), nil
}

// Resolution implements Grid.
func (*H3) Resolution(c Cell) int { return c.Resolution() }

// Compact implements Grid.
func (*H3) Compact(cells []Cell) ([]Cell, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	res, err := h3.CompactCells(toH3(cells))
	if err != nil {
		return nil, fmt.Errorf("hexgrid: compact %d cells: %w", len(cells), err)
	}
	return fromH3(res), nil
}

// Uncompact implements Grid.
func (*H3) Uncompact(cells []Cell, res int) ([]Cell, error) {
	if len(cells) == 0 {
		return nil, nil
	}

	out, err := h3.UncompactCells(toH3(cells), res)
	if err != nil {
		return nil, fmt.Errorf("hexgrid: uncompact %d cells to resolution %d: %w", len(cells), res, err)
	}
	return fromH3(out), nil
}

// Parent implements Grid.
func (*H3) Parent(c Cell, res int) (Cell, error) {
	p, err := h3.Cell(c).Parent(res)
	if err != nil {
		return 0, fmt.Errorf("hexgrid: parent of %s at resolution %d: %w", c, res, err)
	}
	return Cell(p), nil
}

// IsPentagon implements Grid.
func (*H3) IsPentagon(c Cell) bool { return h3.Cell(c).IsPentagon() }

// --------------------------------------------------------------------

// IsValid reports whether c is a valid H3 cell index.
func (c Cell) IsValid() bool { return h3.Cell(c).IsValid() }

// Resolution returns the H3 resolution encoded in c.
func (c Cell) Resolution() int { return h3.Cell(c).Resolution() }

// --------------------------------------------------------------------

func toH3(cells []Cell) []h3.Cell {
	out := make([]h3.Cell, len(cells))
	for i, c := range cells {
		out[i] = h3.Cell(c)
	}
	return out
}

func fromH3(cells []h3.Cell) []Cell {
	out := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c == 0 { // GridDisk pads with zero when distortion drops cells
			continue
		}
		out = append(out, Cell(c))
	}
	return out
}
