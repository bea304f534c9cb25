package geofence_test

import (
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	"github.com/bsm/hexfence/geofence"
	"github.com/bsm/hexfence/hexgrid"
)

var _ = Describe("FloodFill", func() {
	var wall, region geofence.CellSet

	BeforeEach(func() {
		wall = mustTrace(square)
		region = mustFill(wall.Clone(), center)
	})

	It("should keep the wall", func() {
		Expect(wall.IsSubsetOf(region)).To(BeTrue())
		Expect(region.Len()).To(BeNumerically(">", wall.Len()))
	})

	It("should fill the interior", func() {
		Expect(region.Has(mustCell(center))).To(BeTrue())
		for _, ll := range interiorPoints() {
			Expect(region.Has(mustCell(ll))).To(BeTrue(), "expected %v to be included", ll)
		}
	})

	It("should stop at the wall", func() {
		Expect(region.Len()).To(BeNumerically("<", 200))
		for _, ll := range exteriorPoints {
			Expect(region.Has(mustCell(ll))).To(BeFalse(), "expected %v to be excluded", ll)
		}
	})

	It("should be a fixed point", func() {
		again := mustFill(region.Clone(), center)
		Expect(again.Equal(region)).To(BeTrue())
	})

	It("should not depend on the seed position", func() {
		other := mustFill(wall.Clone(), hexgrid.NewLatLng(36.345, 127.375))
		Expect(other.Equal(region)).To(BeTrue())
	})

	It("should take ownership of the wall", func() {
		owned := wall.Clone()
		filled := mustFill(owned, center)
		Expect(owned.Len()).To(Equal(filled.Len()))
	})

	It("should fail on invalid resolutions", func() {
		_, err := geofence.FloodFill(grid, wall, center, 16)
		Expect(err).To(MatchError(`geofence: fill seed {36.35 127.38}: hexgrid: invalid resolution 16`))
	})
})
