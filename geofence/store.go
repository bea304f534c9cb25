package geofence

import (
	"io"

	"github.com/bsm/hexfence/cellstore"
	"github.com/bsm/hexfence/hexgrid"
)

// WriteStore writes set, a cover rasterised at resolution res, to w as a
// cellstore. The value stored for each cell is its resolution. The store
// records res so lookups resolve coordinates at the build resolution.
func WriteStore(w io.Writer, grid hexgrid.Grid, set CellSet, res int, o *cellstore.Options) error {
	var opts cellstore.Options
	if o != nil {
		opts = *o
	}
	opts.Resolution = res

	sorterOpts := cellstore.SorterOptions{TempDir: opts.TempDir}

	sorter := cellstore.NewSorter(&sorterOpts)
	defer sorter.Close()

	for c := range set {
		if err := sorter.Append(c, []byte{byte(grid.Resolution(c))}); err != nil {
			return err
		}
	}

	iter, err := sorter.Sort()
	if err != nil {
		return err
	}
	defer iter.Close()

	sw := cellstore.NewWriter(w, &opts)
	for {
		cell, vals, err := iter.NextEntry()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}

		if err := sw.Append(cell, vals[0]); err != nil {
			return err
		}
	}
	return sw.Close()
}

// WriteStoreFile writes set to name, replacing any existing file.
func WriteStoreFile(name string, grid hexgrid.Grid, set CellSet, res int, o *cellstore.Options) error {
	return writeFile(name, func(w io.Writer) error {
		return WriteStore(w, grid, set, res, o)
	})
}
