package geofence

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/bsm/hexfence/hexgrid"
)

// DefaultBoundaryFile is the file name the boundary document is written to.
const DefaultBoundaryFile = "geo_coord.json"

// FileWriteError is returned when an artifact cannot be persisted.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return "geofence: failed to write " + e.Path + ": " + e.Err.Error()
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// ExportBoundary concatenates the boundary vertices of all cells, in
// ascending cell order. Edges shared by adjacent cells are emitted once
// for each of them.
func ExportBoundary(grid hexgrid.Grid, set CellSet) ([]hexgrid.LatLng, error) {
	var out []hexgrid.LatLng
	for _, c := range set.Slice() {
		pts, err := grid.Boundary(c)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	return out, nil
}

// WriteBoundary encodes records as a JSON array of {"lat","lng"} objects.
func WriteBoundary(w io.Writer, records []hexgrid.LatLng) error {
	if records == nil {
		records = []hexgrid.LatLng{}
	}
	return json.NewEncoder(w).Encode(records)
}

// WriteBoundaryFile writes records to name, replacing any existing file.
func WriteBoundaryFile(name string, records []hexgrid.LatLng) error {
	return writeFile(name, func(w io.Writer) error {
		return WriteBoundary(w, records)
	})
}

func writeFile(name string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return &FileWriteError{Path: name, Err: err}
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = &FileWriteError{Path: name, Err: e}
		}
	}()

	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		return &FileWriteError{Path: name, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &FileWriteError{Path: name, Err: err}
	}
	return nil
}
