package osmx

import (
	osm "github.com/glaslos/go-osm"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	roleOuter = "outer"
	roleInner = "inner"
)

// chain is a sequence of nodes taken from one or more relation ways.
type chain struct {
	Role  string
	Nodes []*osm.Node
}

func (c *chain) head() int64 { return c.Nodes[0].ID }
func (c *chain) tail() int64 { return c.Nodes[len(c.Nodes)-1].ID }

// closed is true when the chain ends where it starts.
func (c *chain) closed() bool { return c.head() == c.tail() }

func (c *chain) valid() bool {
	return len(c.Nodes) > 1 && (c.Role == roleOuter || c.Role == roleInner)
}

// reverse flips the node order in place and returns the nodes.
func (c *chain) reverse() []*osm.Node {
	for i, j := 0, len(c.Nodes)-1; i < j; i, j = i+1, j-1 {
		c.Nodes[i], c.Nodes[j] = c.Nodes[j], c.Nodes[i]
	}
	return c.Nodes
}

// joinShared appends o to c if both share an end node. The shared node is
// kept once.
func (c *chain) joinShared(o *chain) bool {
	if c.Role != o.Role {
		return false
	}

	switch {
	case c.tail() == o.head():
		c.Nodes = append(c.Nodes, o.Nodes[1:]...)
	case c.head() == o.tail():
		c.Nodes = append(o.Nodes, c.Nodes[1:]...)
	case c.head() == o.head():
		c.Nodes = append(c.reverse(), o.Nodes[1:]...)
	case c.tail() == o.tail():
		c.Nodes = append(c.Nodes, o.reverse()[1:]...)
	default:
		return false
	}
	return true
}

// joinMode tells joinForced which ends to connect.
type joinMode int

const (
	joinTailHead joinMode = iota + 1 // c + o
	joinHeadTail                     // o + c
	joinHeadHead                     // rev(c) + o
	joinTailTail                     // c + rev(o)
)

// joinForced connects c and o with a new edge.
func (c *chain) joinForced(o *chain, mode joinMode) {
	switch mode {
	case joinTailHead:
		c.Nodes = append(c.Nodes, o.Nodes...)
	case joinHeadTail:
		c.Nodes = append(o.Nodes, c.Nodes...)
	case joinHeadHead:
		c.Nodes = append(c.reverse(), o.Nodes...)
	case joinTailTail:
		c.Nodes = append(c.Nodes, o.reverse()...)
	}
}

// gap returns the shortest distance between an end of c and an end of o,
// and the mode which joins them there.
func (c *chain) gap(o *chain) (min s1.Angle, mode joinMode) {
	min = s1.InfAngle()
	if c.Role != o.Role {
		return min, 0
	}

	c1, c2 := nodePoint(c.Nodes[0]), nodePoint(c.Nodes[len(c.Nodes)-1])
	o1, o2 := nodePoint(o.Nodes[0]), nodePoint(o.Nodes[len(o.Nodes)-1])

	for _, cand := range []struct {
		a, b s2.Point
		mode joinMode
	}{
		{c2, o1, joinTailHead},
		{c1, o2, joinHeadTail},
		{c1, o1, joinHeadHead},
		{c2, o2, joinTailTail},
	} {
		if d := cand.a.Distance(cand.b); d < min {
			min, mode = d, cand.mode
		}
	}
	return min, mode
}

func nodePoint(n *osm.Node) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(n.Lat, n.Lng))
}

// --------------------------------------------------------------------

type chains []*chain

// rings joins chains into closed rings. First chains sharing end nodes are
// merged, remaining open chains are then connected to their nearest open
// neighbour and closed. The receiver is modified.
func (s chains) rings() chains {
	for i, c := range s {
		if c != nil {
			s.joinAllShared(c, i+1)
		}
	}
	s = s.pack(false)

	for i, c := range s {
		if c != nil && !c.closed() {
			s.joinNearest(c, i+1)
		}
	}
	return s.pack(true)
}

// pack drops merged chains, optionally closing open ones.
func (s chains) pack(close bool) chains {
	out := s[:0]
	for _, c := range s {
		if c == nil {
			continue
		}
		if close && !c.closed() {
			c.Nodes = append(c.Nodes, c.Nodes[0])
		}
		out = append(out, c)
	}
	return out
}

func (s chains) joinAllShared(c *chain, off int) {
	for {
		joined := false
		for i, o := range s[off:] {
			if o != nil && c.joinShared(o) {
				s[off+i] = nil
				joined = true
			}
		}
		if !joined {
			return
		}
	}
}

func (s chains) joinNearest(c *chain, off int) {
	for {
		pos, mode, dist := -1, joinMode(0), s1.InfAngle()
		for i, o := range s[off:] {
			if o == nil || o.closed() {
				continue
			}
			if d, m := c.gap(o); d < dist {
				pos, mode, dist = off+i, m, d
			}
		}
		if pos < 0 {
			return
		}

		c.joinForced(s[pos], mode)
		s[pos] = nil
	}
}
