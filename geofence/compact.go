package geofence

import (
	"github.com/bsm/hexfence/hexgrid"
)

// Compact replaces every complete set of siblings in the region with its
// parent, recursively. The result covers the same area with fewer cells.
func Compact(grid hexgrid.Grid, region CellSet) (CellSet, error) {
	cells, err := grid.Compact(region.Slice())
	if err != nil {
		return nil, err
	}
	return NewCellSet(cells...), nil
}

// Uncompact expands a (compacted) set back to resolution res.
func Uncompact(grid hexgrid.Grid, set CellSet, res int) (CellSet, error) {
	cells, err := grid.Uncompact(set.Slice(), res)
	if err != nil {
		return nil, err
	}
	return NewCellSet(cells...), nil
}
