package geofence

import (
	"fmt"

	"github.com/bsm/hexfence/hexgrid"
)

// FloodFill grows the wall into the full region by traversing the grid
// breadth-first from the cell containing seed. FloodFill takes ownership of
// wall and returns it as the region; Clone it first if it is needed again.
//
// Wall cells are marked as visited but never queued, which stops the
// traversal at the boundary. The wall must therefore be a closed, gap-free
// ring at resolution res and the seed must be strictly inside it, otherwise
// the fill leaks into the exterior without any error. See CheckRing.
func FloodFill(grid hexgrid.Grid, wall CellSet, seed hexgrid.LatLng, res int) (CellSet, error) {
	start, err := grid.Cell(seed, res)
	if err != nil {
		return nil, fmt.Errorf("geofence: fill seed %v: %w", seed, err)
	}

	visited := wall
	if visited == nil {
		visited = NewCellSet()
	}
	visited.Add(start)

	queue := []hexgrid.Cell{start}
	for head := 0; head < len(queue); head++ {
		ring, err := grid.Neighbors(queue[head], 1)
		if err != nil {
			return nil, err
		}

		for _, c := range ring {
			if visited.Add(c) {
				queue = append(queue, c)
			}
		}
	}
	return visited, nil
}
