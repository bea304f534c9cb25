package osmx

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"

	. "github.com/bsm/ginkgo/v2"
	. "github.com/bsm/gomega"
	"github.com/bsm/hexfence/geofence"
	"github.com/bsm/hexfence/hexgrid"
	osm "github.com/glaslos/go-osm"
)

var _ = Describe("Map", func() {
	var subject *Map

	BeforeEach(func() {
		var err error
		subject, err = Decode(strings.NewReader(sampleXML))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should require at least one relation to wrap", func() {
		_, err := WrapMap(new(osm.Map))
		Expect(err).To(MatchError(`osmx: map contains no relations`))
	})

	It("should require a relation with ways", func() {
		_, err := WrapMap(&osm.Map{
			Relations: []osm.Relation{
				{Members: []osm.Member{{Type: "node"}}},
				{Members: []osm.Member{{Type: "relation"}}},
			},
		})
		Expect(err).To(MatchError(`osmx: map contains no valid relations`))
	})

	It("should wrap the first relation with way members", func() {
		m, err := WrapMap(&osm.Map{
			Relations: []osm.Relation{
				{Members: []osm.Member{{Type: "node"}}},
				{Members: []osm.Member{{Type: "way", Ref: 1}}},
				{Members: []osm.Member{{Type: "way", Ref: 2}}},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Rel().Members).To(Equal([]osm.Member{{Type: "way", Ref: 1}}))
	})

	It("should retrieve tags", func() {
		Expect(subject.Name()).To(Equal("Daejeon"))
		Expect(subject.Tag("admin_level")).To(Equal("4"))
		Expect(subject.Tag("notfound")).To(Equal(""))
	})

	It("should find nodes", func() {
		node, err := subject.FindNode(3)
		Expect(err).NotTo(HaveOccurred())
		Expect(node.Lat).To(Equal(36.38))
		Expect(node.Lng).To(Equal(127.41))

		_, err = subject.FindNode(99)
		Expect(err).To(MatchError(`osmx: node #99 not found`))
	})

	It("should find ways", func() {
		way, err := subject.FindWay(13)
		Expect(err).NotTo(HaveOccurred())
		Expect(way.Nds).To(HaveLen(4))

		_, err = subject.FindWay(99)
		Expect(err).To(MatchError(`osmx: way #99 not found`))
	})

	It("should extract the boundary", func() {
		poly, err := subject.Boundary()
		Expect(err).NotTo(HaveOccurred())
		Expect(poly).To(Equal(geofence.Polygon{
			{Lat: 36.38, Lng: 127.35},
			{Lat: 36.33, Lng: 127.35},
			{Lat: 36.32, Lng: 127.35},
			{Lat: 36.32, Lng: 127.41},
			{Lat: 36.38, Lng: 127.41},
			{Lat: 36.38, Lng: 127.35},
		}))
		Expect(poly.IsClosed()).To(BeTrue())
		Expect(poly.Contains(hexgrid.NewLatLng(36.35, 127.38))).To(BeTrue())
	})

	It("should fail without outer ways", func() {
		subject.rel.Members = []osm.Member{{Type: "way", Ref: 13, Role: "inner"}}
		_, err := subject.Boundary()
		Expect(err).To(MatchError(ErrNoOuterRing))
	})

	It("should fail on missing ways", func() {
		subject.rel.Members = append(subject.rel.Members, osm.Member{Type: "way", Ref: 42, Role: "outer"})
		_, err := subject.Boundary()
		Expect(err).To(MatchError(`osmx: way #42 not found`))
	})

	It("should decode gzipped files", func() {
		name := filepath.Join(GinkgoT().TempDir(), "daejeon.osm.gz")
		f, err := os.Create(name)
		Expect(err).NotTo(HaveOccurred())
		z := gzip.NewWriter(f)
		_, err = z.Write([]byte(sampleXML))
		Expect(err).NotTo(HaveOccurred())
		Expect(z.Close()).To(Succeed())
		Expect(f.Close()).To(Succeed())

		m, err := DecodeFile(name)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Name()).To(Equal("Daejeon"))
		Expect(m.Nodes).To(HaveLen(8))
	})
})
