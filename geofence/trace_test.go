package geofence_test

import (
	"math"

	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	"github.com/bsm/hexfence/geofence"
	"github.com/bsm/hexfence/hexgrid"
)

var _ = Describe("Trace", func() {
	It("should trace the edges", func() {
		wall, bounds, err := geofence.Trace(grid, square, geofence.DefaultResolution)
		Expect(err).NotTo(HaveOccurred())
		Expect(wall.Len()).To(BeNumerically(">", 4))

		exp := geofence.NewCellSet()
		for i := 1; i < len(square); i++ {
			line, err := grid.Line(mustCell(square[i-1]), mustCell(square[i]))
			Expect(err).NotTo(HaveOccurred())
			for _, c := range line {
				exp.Add(c)
			}
		}
		Expect(wall.Equal(exp)).To(BeTrue())

		for c := range wall {
			Expect(grid.Resolution(c)).To(Equal(geofence.DefaultResolution))
		}

		Expect(bounds.Min().Lat).To(BeNumerically("~", 36.32, 1e-9))
		Expect(bounds.Min().Lng).To(BeNumerically("~", 127.35, 1e-9))
		Expect(bounds.Max().Lat).To(BeNumerically("~", 36.38, 1e-9))
		Expect(bounds.Max().Lng).To(BeNumerically("~", 127.41, 1e-9))
		Expect(bounds.Contains(center)).To(BeTrue())
		Expect(bounds.Contains(exteriorPoints[0])).To(BeFalse())
	})

	It("should trace open polylines", func() {
		wall := mustTrace(geofence.Polygon{sw, se})
		Expect(wall.Len()).To(BeNumerically(">=", 2))
		Expect(wall.Has(mustCell(sw))).To(BeTrue())
		Expect(wall.Has(mustCell(se))).To(BeTrue())
	})

	It("should return nothing for single vertices", func() {
		wall, bounds, err := geofence.Trace(grid, geofence.Polygon{center}, geofence.DefaultResolution)
		Expect(err).NotTo(HaveOccurred())
		Expect(wall.Len()).To(Equal(0))
		Expect(bounds.IsEmpty()).To(BeFalse())
		Expect(bounds.Contains(center)).To(BeTrue())
	})

	It("should return nothing for empty polygons", func() {
		wall, bounds, err := geofence.Trace(grid, nil, geofence.DefaultResolution)
		Expect(err).NotTo(HaveOccurred())
		Expect(wall.Len()).To(Equal(0))
		Expect(bounds.IsEmpty()).To(BeTrue())
		Expect(bounds.String()).To(Equal("[empty]"))
	})

	It("should absorb duplicate vertices", func() {
		wall := mustTrace(geofence.Polygon{sw, sw, se, se, se, ne, nw, nw, sw})
		Expect(wall.Equal(mustTrace(square))).To(BeTrue())
		Expect(wall.Len()).To(Equal(len(wall.Slice())))
	})

	It("should abort on undefined lines", func() {
		_, _, err := geofence.Trace(lineFailGrid{grid}, square, geofence.DefaultResolution)
		Expect(err).To(MatchError(hexgrid.ErrLineUndefined))
		Expect(err.Error()).To(HavePrefix("geofence: trace edge 0: hexgrid: line undefined"))
	})

	It("should fail on invalid resolutions", func() {
		_, _, err := geofence.Trace(grid, square, 16)
		Expect(err).To(MatchError(`geofence: trace vertex 0: hexgrid: invalid resolution 16`))
	})

	It("should name the failing vertex", func() {
		bad := geofence.Polygon{sw, se, hexgrid.NewLatLng(math.NaN(), 127.4), sw}
		_, _, err := geofence.Trace(grid, bad, geofence.DefaultResolution)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(HavePrefix("geofence: trace vertex 2: "))
	})
})
