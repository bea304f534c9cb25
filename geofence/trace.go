package geofence

import (
	"fmt"

	"github.com/bsm/hexfence/hexgrid"
)

// Trace returns the wall: all cells at resolution res which are crossed by
// the lines between consecutive vertices of the boundary. It also returns
// the bounding box of all vertices.
//
// An undefined line between two vertices is fatal, the returned error
// wraps hexgrid.ErrLineUndefined.
func Trace(grid hexgrid.Grid, boundary Polygon, res int) (CellSet, BoundingBox, error) {
	wall := NewCellSet()
	bounds := EmptyBoundingBox()
	if len(boundary) == 0 {
		return wall, bounds, nil
	}

	bounds.Extend(boundary[0])
	prev, err := grid.Cell(boundary[0], res)
	if err != nil {
		return nil, bounds, fmt.Errorf("geofence: trace vertex 0: %w", err)
	}

	for i, ll := range boundary[1:] {
		bounds.Extend(ll)

		cur, err := grid.Cell(ll, res)
		if err != nil {
			return nil, bounds, fmt.Errorf("geofence: trace vertex %d: %w", i+1, err)
		}

		line, err := grid.Line(prev, cur)
		if err != nil {
			return nil, bounds, fmt.Errorf("geofence: trace edge %d: %w", i, err)
		}
		for _, c := range line {
			wall.Add(c)
		}
		prev = cur
	}
	return wall, bounds, nil
}
