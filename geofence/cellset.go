package geofence

import (
	"sort"

	"github.com/bsm/hexfence/hexgrid"
)

// CellSet is an unordered set of cells.
type CellSet map[hexgrid.Cell]struct{}

// NewCellSet inits a set from cells.
func NewCellSet(cells ...hexgrid.Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add adds c and reports whether it was not a member before.
func (s CellSet) Add(c hexgrid.Cell) bool {
	if _, ok := s[c]; ok {
		return false
	}
	s[c] = struct{}{}
	return true
}

// Has returns true if c is a member.
func (s CellSet) Has(c hexgrid.Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s CellSet) Len() int { return len(s) }

// Do calls fn for each member, in no particular order.
func (s CellSet) Do(fn func(hexgrid.Cell)) {
	for c := range s {
		fn(c)
	}
}

// Union adds all members of o to s.
func (s CellSet) Union(o CellSet) {
	for c := range o {
		s[c] = struct{}{}
	}
}

// Clone returns a copy of s.
func (s CellSet) Clone() CellSet {
	o := make(CellSet, len(s))
	o.Union(s)
	return o
}

// IsSubsetOf returns true if every member of s is also a member of o.
func (s CellSet) IsSubsetOf(o CellSet) bool {
	if len(s) > len(o) {
		return false
	}
	for c := range s {
		if !o.Has(c) {
			return false
		}
	}
	return true
}

// Equal returns true if both sets have the same members.
func (s CellSet) Equal(o CellSet) bool {
	return len(s) == len(o) && s.IsSubsetOf(o)
}

// Slice returns the members in ascending order.
func (s CellSet) Slice() []hexgrid.Cell {
	cells := make([]hexgrid.Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })
	return cells
}
