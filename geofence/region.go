package geofence

import (
	"github.com/bsm/hexfence/cellstore"
	"github.com/bsm/hexfence/hexgrid"
	"github.com/sirupsen/logrus"
)

// Config configures a region build.
type Config struct {
	// Boundary is the closed outline of the region.
	Boundary Polygon
	// Seed is a coordinate strictly inside the boundary.
	Seed hexgrid.LatLng
	// Resolution is used for tracing and filling.
	Resolution int
	// Strict enables CheckRing before the flood fill.
	Strict bool
	// Logger receives progress information. Default: logrus.StandardLogger()
	Logger logrus.FieldLogger
}

func (c *Config) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}

// Region is the rasterised cover of a boundary.
type Region struct {
	// Resolution of Cells.
	Resolution int
	// Bounds of the boundary vertices.
	Bounds BoundingBox
	// WallSize is the number of cells traced along the boundary.
	WallSize int
	// Cells holds the wall and the interior, all at Resolution.
	Cells CellSet
	// Compacted covers the same area as Cells, with mixed resolutions.
	Compacted CellSet
}

// Build traces the boundary, fills the interior and compacts the result.
func Build(grid hexgrid.Grid, cfg *Config) (*Region, error) {
	log := cfg.logger().WithField("resolution", cfg.Resolution)

	wall, bounds, err := Trace(grid, cfg.Boundary, cfg.Resolution)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"wall":   wall.Len(),
		"bounds": bounds.String(),
	}).Info("traced boundary")

	if cfg.Strict {
		if err := CheckRing(grid, cfg.Boundary, wall, cfg.Seed, cfg.Resolution); err != nil {
			return nil, err
		}
	}

	wallSize := wall.Len()
	cells, err := FloodFill(grid, wall, cfg.Seed, cfg.Resolution)
	if err != nil {
		return nil, err
	}
	log.WithField("cells", cells.Len()).Info("filled region")

	compacted, err := Compact(grid, cells)
	if err != nil {
		return nil, err
	}

	minRes, maxRes := resolutionSpan(grid, compacted)
	log.WithFields(logrus.Fields{
		"cells":          compacted.Len(),
		"min_resolution": minRes,
		"max_resolution": maxRes,
	}).Info("compacted region")

	return &Region{
		Resolution: cfg.Resolution,
		Bounds:     bounds,
		WallSize:   wallSize,
		Cells:      cells,
		Compacted:  compacted,
	}, nil
}

// Contains returns true if ll lies within the region.
func (r *Region) Contains(grid hexgrid.Grid, ll hexgrid.LatLng) (bool, error) {
	cell, err := grid.Cell(ll, r.Resolution)
	if err != nil {
		return false, err
	}

	for res := r.Resolution; res >= 0; res-- {
		parent, err := grid.Parent(cell, res)
		if err != nil {
			return false, err
		}
		if r.Compacted.Has(parent) {
			return true, nil
		}
	}
	return false, nil
}

// --------------------------------------------------------------------

// Outputs names the artifacts written by Run. Empty names are skipped.
type Outputs struct {
	// Boundary receives the vertices of all region cells as JSON.
	Boundary string
	// GeoJSON receives the compacted cells as a feature collection.
	GeoJSON string
	// Store receives the compacted cells as a cellstore.
	Store string
	// StoreOptions are passed to the cellstore writer.
	StoreOptions *cellstore.Options
}

// Run builds the region and writes the requested artifacts. Failures to
// write an artifact are logged, the region remains valid and is returned
// regardless.
func Run(grid hexgrid.Grid, cfg *Config, out *Outputs) (*Region, error) {
	region, err := Build(grid, cfg)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return region, nil
	}

	log := cfg.logger()
	if out.Boundary != "" {
		if err := writeBoundary(grid, region, out.Boundary); err != nil {
			log.WithError(err).Error("unable to write boundary")
		} else {
			log.WithField("path", out.Boundary).Info("wrote boundary")
		}
	}
	if out.GeoJSON != "" {
		if err := writeGeoJSON(grid, region, out.GeoJSON); err != nil {
			log.WithError(err).Error("unable to write geojson")
		} else {
			log.WithField("path", out.GeoJSON).Info("wrote geojson")
		}
	}
	if out.Store != "" {
		if err := WriteStoreFile(out.Store, grid, region.Compacted, region.Resolution, out.StoreOptions); err != nil {
			log.WithError(err).Error("unable to write store")
		} else {
			log.WithField("path", out.Store).Info("wrote store")
		}
	}
	return region, nil
}

func writeBoundary(grid hexgrid.Grid, region *Region, name string) error {
	records, err := ExportBoundary(grid, region.Cells)
	if err != nil {
		return err
	}
	return WriteBoundaryFile(name, records)
}

func writeGeoJSON(grid hexgrid.Grid, region *Region, name string) error {
	fc, err := ExportGeoJSON(grid, region.Compacted)
	if err != nil {
		return err
	}
	return WriteGeoJSONFile(name, fc)
}

func resolutionSpan(grid hexgrid.Grid, set CellSet) (min, max int) {
	min, max = -1, -1
	for c := range set {
		res := grid.Resolution(c)
		if min < 0 || res < min {
			min = res
		}
		if res > max {
			max = res
		}
	}
	return
}
