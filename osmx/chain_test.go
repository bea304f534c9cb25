package osmx

import (
	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	osm "github.com/glaslos/go-osm"
)

var _ = Describe("chain", func() {
	It("should detect closed chains", func() {
		Expect((&chain{Nodes: mockNodes(1, 2, 3, 2, 1)}).closed()).To(BeTrue())
		Expect((&chain{Nodes: mockNodes(1, 2, 3)}).closed()).To(BeFalse())
	})

	It("should validate", func() {
		Expect((&chain{Role: "inner", Nodes: mockNodes(1, 2, 3)}).valid()).To(BeTrue())
		Expect((&chain{Role: "outer", Nodes: mockNodes(1, 2)}).valid()).To(BeTrue())
		Expect((&chain{Nodes: mockNodes(1, 2, 3)}).valid()).To(BeFalse())
		Expect((&chain{Role: "outer", Nodes: mockNodes(1)}).valid()).To(BeFalse())
		Expect((&chain{Role: "admin_centre", Nodes: mockNodes(1, 2)}).valid()).To(BeFalse())
	})

	DescribeTable("joinShared",
		func(a, b []int64, exp []int64) {
			c := &chain{Role: "outer", Nodes: mockNodes(a...)}
			ok := c.joinShared(&chain{Role: "outer", Nodes: mockNodes(b...)})
			if exp == nil {
				Expect(ok).To(BeFalse())
				Expect(c.Nodes).To(Equal(mockNodes(a...)))
				return
			}
			Expect(ok).To(BeTrue())
			Expect(c.Nodes).To(Equal(mockNodes(exp...)))
		},
		Entry("tail to head", []int64{1, 2, 3}, []int64{3, 4, 5}, []int64{1, 2, 3, 4, 5}),
		Entry("head to tail", []int64{3, 4, 5}, []int64{1, 2, 3}, []int64{1, 2, 3, 4, 5}),
		Entry("head to head", []int64{3, 2, 1}, []int64{3, 4, 5}, []int64{1, 2, 3, 4, 5}),
		Entry("tail to tail", []int64{1, 2, 3}, []int64{5, 4, 3}, []int64{1, 2, 3, 4, 5}),
		Entry("disjoint", []int64{1, 2, 3}, []int64{4, 5, 6}, nil),
	)

	It("should not join across roles", func() {
		c := &chain{Role: "outer", Nodes: mockNodes(1, 2, 3)}
		Expect(c.joinShared(&chain{Role: "inner", Nodes: mockNodes(3, 4)})).To(BeFalse())

		d, mode := c.gap(&chain{Role: "inner", Nodes: mockNodes(3, 4)})
		Expect(d.Radians()).To(BeNumerically(">", 1e300))
		Expect(mode).To(BeZero())
	})

	It("should measure gaps", func() {
		c := &chain{Role: "outer", Nodes: []*osm.Node{mockNode(1, 10, 10), mockNode(2, 10, 20)}}
		o := &chain{Role: "outer", Nodes: []*osm.Node{mockNode(3, 10, 10.5), mockNode(4, 10, 30)}}

		d, mode := c.gap(o)
		Expect(mode).To(Equal(joinHeadHead))
		Expect(d.Degrees()).To(BeNumerically("~", 0.49, 0.01))

		c.joinForced(o, mode)
		Expect(c.Nodes).To(Equal([]*osm.Node{
			mockNode(2, 10, 20), mockNode(1, 10, 10), mockNode(3, 10, 10.5), mockNode(4, 10, 30),
		}))
	})
})

var _ = DescribeTable("chains.rings",
	func(src chains, exp chains) {
		Expect(src.rings()).To(Equal(exp))
	},

	Entry("closed",
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3, 2, 1)},
		},
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3, 2, 1)},
		},
	),
	Entry("mixed roles, closed",
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3, 2, 1)},
			{Role: "inner", Nodes: mockNodes(1, 2, 3, 4, 3, 2, 1)},
		},
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3, 2, 1)},
			{Role: "inner", Nodes: mockNodes(1, 2, 3, 4, 3, 2, 1)},
		},
	),
	Entry("shared ends",
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3, 4, 5)},
			{Role: "outer", Nodes: mockNodes(5, 6, 7, 2, 1)},
		},
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3, 4, 5, 6, 7, 2, 1)},
		},
	),
	Entry("shared ends, mixed directions",
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3)},
			{Role: "outer", Nodes: mockNodes(5, 4, 3)},
			{Role: "outer", Nodes: mockNodes(5, 6, 7)},
			{Role: "outer", Nodes: mockNodes(1, 8, 7)},
		},
		chains{
			{Role: "outer", Nodes: mockNodes(7, 6, 5, 4, 3, 2, 1, 8, 7)},
		},
	),
	Entry("shared ends, interleaved roles",
		chains{
			{Role: "outer", Nodes: mockNodes(1, 2, 3)},
			{Role: "inner", Nodes: mockNodes(11, 12, 13)},
			{Role: "outer", Nodes: mockNodes(5, 4, 3)},
			{Role: "inner", Nodes: mockNodes(15, 14, 13)},
			{Role: "outer", Nodes: mockNodes(5, 6, 7)},
			{Role: "inner", Nodes: mockNodes(15, 16, 17)},
			{Role: "outer", Nodes: mockNodes(1, 8, 7)},
			{Role: "inner", Nodes: mockNodes(11, 18, 17)},
		},
		chains{
			{Role: "outer", Nodes: mockNodes(7, 6, 5, 4, 3, 2, 1, 8, 7)},
			{Role: "inner", Nodes: mockNodes(17, 16, 15, 14, 13, 12, 11, 18, 17)},
		},
	),
	Entry("detached",
		chains{
			{Role: "outer", Nodes: []*osm.Node{mockNode(1, 36.32, 127.35), mockNode(2, 36.32, 127.41)}},
			{Role: "outer", Nodes: []*osm.Node{mockNode(3, 36.38, 127.41), mockNode(4, 36.38, 127.34)}},
		},
		chains{
			{Role: "outer", Nodes: []*osm.Node{
				mockNode(1, 36.32, 127.35),
				mockNode(2, 36.32, 127.41),
				mockNode(3, 36.38, 127.41),
				mockNode(4, 36.38, 127.34),
				mockNode(1, 36.32, 127.35),
			}},
		},
	),
)
