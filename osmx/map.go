// Package osmx loads region boundaries from OpenStreetMap XML relations.
package osmx

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bsm/hexfence/geofence"
	"github.com/bsm/hexfence/hexgrid"
	osm "github.com/glaslos/go-osm"
)

var (
	errNoRelations      = errors.New("osmx: map contains no relations")
	errNoValidRelations = errors.New("osmx: map contains no valid relations")

	// ErrNoOuterRing is returned by Boundary if the relation has no usable
	// outer ways.
	ErrNoOuterRing = errors.New("osmx: no outer ring")
)

// Decode parses OSM XML from r and wraps the result.
func Decode(r io.Reader) (*Map, error) {
	parent, err := osm.Decode(r)
	if err != nil {
		return nil, err
	}
	return WrapMap(parent)
}

// DecodeFile opens and decodes name. Files ending in .gz are decompressed.
func DecodeFile(name string) (*Map, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer z.Close()
		r = z
	}
	return Decode(r)
}

// Map wraps osm.Map.
type Map struct {
	*osm.Map
	rel osm.Relation
}

// WrapMap picks the first relation with way members and sorts nodes and
// ways for lookup.
func WrapMap(parent *osm.Map) (*Map, error) {
	if len(parent.Relations) == 0 {
		return nil, errNoRelations
	}

	var m *Map
outer:
	for _, rel := range parent.Relations {
		for _, mem := range rel.Members {
			if mem.Type == "way" {
				m = &Map{Map: parent, rel: rel}
				break outer
			}
		}
	}
	if m == nil {
		return nil, errNoValidRelations
	}

	sort.Slice(m.Nodes, func(i, j int) bool { return m.Nodes[i].ID < m.Nodes[j].ID })
	sort.Slice(m.Ways, func(i, j int) bool { return m.Ways[i].ID < m.Ways[j].ID })
	return m, nil
}

// Rel returns the boundary relation.
func (m *Map) Rel() *osm.Relation { return &m.rel }

// Tag returns the value of a relation tag, or an empty string.
func (m *Map) Tag(key string) string {
	for _, tag := range m.rel.Tags {
		if tag.Key == key {
			return tag.Value
		}
	}
	return ""
}

// Name returns the relation name.
func (m *Map) Name() string { return m.Tag("name") }

// FindNode finds a node by ID.
func (m *Map) FindNode(id int64) (*osm.Node, error) {
	pos := sort.Search(len(m.Nodes), func(i int) bool { return m.Nodes[i].ID >= id })
	if pos < len(m.Nodes) && m.Nodes[pos].ID == id {
		return &m.Nodes[pos], nil
	}
	return nil, fmt.Errorf("osmx: node #%d not found", id)
}

// FindWay finds a way by ID. Ways without nodes are treated as missing.
func (m *Map) FindWay(id int64) (*osm.Way, error) {
	pos := sort.Search(len(m.Ways), func(i int) bool { return m.Ways[i].ID >= id })
	if pos < len(m.Ways) && m.Ways[pos].ID == id && len(m.Ways[pos].Nds) != 0 {
		return &m.Ways[pos], nil
	}
	return nil, fmt.Errorf("osmx: way #%d not found", id)
}

// Boundary joins the outer ways of the relation into closed rings and
// returns the one with the most vertices.
func (m *Map) Boundary() (geofence.Polygon, error) {
	cs, err := m.chains(roleOuter)
	if err != nil {
		return nil, err
	}

	var best *chain
	for _, c := range cs.rings() {
		if best == nil || len(c.Nodes) > len(best.Nodes) {
			best = c
		}
	}
	if best == nil {
		return nil, ErrNoOuterRing
	}

	poly := make(geofence.Polygon, 0, len(best.Nodes))
	for _, n := range best.Nodes {
		poly = append(poly, hexgrid.NewLatLng(n.Lat, n.Lng))
	}
	return poly, nil
}

func (m *Map) chains(role string) (chains, error) {
	var cs chains
	for _, mem := range m.rel.Members {
		if mem.Type != "way" || mem.Role != role {
			continue
		}

		way, err := m.FindWay(mem.Ref)
		if err != nil {
			return nil, err
		}

		c := &chain{Role: mem.Role, Nodes: make([]*osm.Node, 0, len(way.Nds))}
		for _, nd := range way.Nds {
			node, err := m.FindNode(nd.ID)
			if err != nil {
				return nil, err
			}
			c.Nodes = append(c.Nodes, node)
		}
		if c.valid() {
			cs = append(cs, c)
		}
	}
	return cs, nil
}
