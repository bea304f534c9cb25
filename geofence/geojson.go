package geofence

import (
	"encoding/json"
	"io"

	"github.com/bsm/hexfence/hexgrid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ExportGeoJSON returns a feature collection with one polygon per cell.
// Each feature carries the cell and its resolution as properties.
func ExportGeoJSON(grid hexgrid.Grid, set CellSet) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, c := range set.Slice() {
		pts, err := grid.Boundary(c)
		if err != nil {
			return nil, err
		}
		if len(pts) == 0 {
			continue
		}

		ring := make(orb.Ring, 0, len(pts)+1)
		for _, p := range pts {
			ring = append(ring, orb.Point{p.Lng, p.Lat})
		}
		ring = append(ring, ring[0])

		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["cell"] = c.String()
		f.Properties["resolution"] = grid.Resolution(c)
		fc.Append(f)
	}
	return fc, nil
}

// WriteGeoJSONFile writes fc to name, replacing any existing file.
func WriteGeoJSONFile(name string, fc *geojson.FeatureCollection) error {
	return writeFile(name, func(w io.Writer) error {
		return json.NewEncoder(w).Encode(fc)
	})
}
