package geofence

import (
	"errors"
	"fmt"

	"github.com/bsm/hexfence/hexgrid"
)

var (
	ErrOpenBoundary   = errors.New("geofence: boundary is not a closed ring")
	ErrLeakingWall    = errors.New("geofence: wall has gaps")
	ErrSeedOnBoundary = errors.New("geofence: seed lies on the wall")
	ErrSeedOutside    = errors.New("geofence: seed lies outside the boundary")
)

// CheckRing verifies the preconditions of FloodFill: the boundary must be
// closed, each traced edge must be a gap-free chain of neighbouring cells,
// and the seed must lie inside the boundary without touching the wall.
func CheckRing(grid hexgrid.Grid, boundary Polygon, wall CellSet, seed hexgrid.LatLng, res int) error {
	if !boundary.IsClosed() || boundary.NumDistinct() < 3 {
		return ErrOpenBoundary
	}

	prev, err := grid.Cell(boundary[0], res)
	if err != nil {
		return err
	}
	for i, ll := range boundary[1:] {
		cur, err := grid.Cell(ll, res)
		if err != nil {
			return err
		}

		line, err := grid.Line(prev, cur)
		if err != nil {
			return fmt.Errorf("geofence: trace edge %d: %w", i, err)
		}
		for j := 1; j < len(line); j++ {
			if ok, err := adjacent(grid, line[j-1], line[j]); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("%w: %s and %s on edge %d are not neighbours", ErrLeakingWall, line[j-1], line[j], i)
			}
		}
		prev = cur
	}

	start, err := grid.Cell(seed, res)
	if err != nil {
		return err
	}
	if wall.Has(start) {
		return ErrSeedOnBoundary
	}
	if !boundary.Contains(seed) {
		return ErrSeedOutside
	}
	return nil
}

func adjacent(grid hexgrid.Grid, a, b hexgrid.Cell) (bool, error) {
	if a == b {
		return true, nil
	}

	ring, err := grid.Neighbors(a, 1)
	if err != nil {
		return false, err
	}
	for _, c := range ring {
		if c == b {
			return true, nil
		}
	}
	return false, nil
}
