package geofence_test

import (
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	"github.com/bsm/hexfence/geofence"
	"github.com/bsm/hexfence/hexgrid"
)

var _ = Describe("CellSet", func() {
	var subject geofence.CellSet

	BeforeEach(func() {
		subject = geofence.NewCellSet(3, 1, 2, 1)
	})

	It("should init", func() {
		Expect(subject.Len()).To(Equal(3))
		Expect(subject.Slice()).To(Equal([]hexgrid.Cell{1, 2, 3}))
	})

	It("should add", func() {
		Expect(subject.Add(4)).To(BeTrue())
		Expect(subject.Add(4)).To(BeFalse())
		Expect(subject.Has(4)).To(BeTrue())
		Expect(subject.Has(5)).To(BeFalse())
		Expect(subject.Len()).To(Equal(4))
	})

	It("should iterate", func() {
		var seen []hexgrid.Cell
		subject.Do(func(c hexgrid.Cell) { seen = append(seen, c) })
		Expect(seen).To(ConsistOf(hexgrid.Cell(1), hexgrid.Cell(2), hexgrid.Cell(3)))

		n := 0
		geofence.NewCellSet().Do(func(hexgrid.Cell) { n++ })
		Expect(n).To(BeZero())
	})

	It("should clone", func() {
		clone := subject.Clone()
		clone.Add(9)
		Expect(clone.Len()).To(Equal(4))
		Expect(subject.Len()).To(Equal(3))
	})

	It("should compare", func() {
		Expect(subject.Equal(geofence.NewCellSet(1, 2, 3))).To(BeTrue())
		Expect(subject.Equal(geofence.NewCellSet(1, 2, 4))).To(BeFalse())
		Expect(subject.Equal(geofence.NewCellSet(1, 2))).To(BeFalse())

		Expect(geofence.NewCellSet(1, 2).IsSubsetOf(subject)).To(BeTrue())
		Expect(geofence.NewCellSet().IsSubsetOf(subject)).To(BeTrue())
		Expect(subject.IsSubsetOf(geofence.NewCellSet(1, 2))).To(BeFalse())
	})

	It("should union", func() {
		subject.Union(geofence.NewCellSet(2, 5))
		Expect(subject.Slice()).To(Equal([]hexgrid.Cell{1, 2, 3, 5}))
	})
})
