package cellstore

import (
	"encoding/binary"
	"sort"

	"github.com/bsm/hexfence/hexgrid"
)

// Iterator walks the entries of a single block. It can move to adjacent
// blocks with NextBlock and PrevBlock.
type Iterator struct {
	parent     *Reader
	blockNum   int
	sectionNum int   // section of the current entry
	index      []int // section offsets within buf

	buf []byte // decoded block, without section index
	pos int    // read position within buf

	cell  hexgrid.Cell
	value []byte
	err   error
}

// Next advances to the next entry.
func (i *Iterator) Next() bool {
	if i.err != nil || i.pos >= len(i.buf) {
		return false
	}

	// entering a new section resets the delta base
	if next := i.sectionNum + 1; next < len(i.index) && i.index[next] == i.pos {
		i.sectionNum = next
		i.cell = 0
	}

	key, ok := i.uvarint()
	if !ok {
		return false
	}
	size, ok := i.uvarint()
	if !ok || i.pos+int(size) > len(i.buf) {
		return false
	}

	i.cell += hexgrid.Cell(key)
	i.value = i.buf[i.pos : i.pos+int(size)]
	i.pos += int(size)
	return true
}

func (i *Iterator) uvarint() (uint64, bool) {
	if i.pos >= len(i.buf) {
		return 0, false
	}
	u, n := binary.Uvarint(i.buf[i.pos:])
	if n <= 0 {
		return 0, false
	}
	i.pos += n
	return u, true
}

// SeekSection positions the cursor before the last section whose first
// cell is <= cell, or before the first section.
func (i *Iterator) SeekSection(cell hexgrid.Cell) bool {
	if len(i.index) == 0 {
		return false
	}

	num := sort.Search(len(i.index), func(n int) bool {
		first, _ := binary.Uvarint(i.buf[i.index[n]:])
		return hexgrid.Cell(first) > cell
	})
	if num > 0 {
		num--
	}
	return i.advanceSection(num)
}

// Seek advances to the first entry with a cell >= the given one.
func (i *Iterator) Seek(cell hexgrid.Cell) bool {
	if !i.SeekSection(cell) {
		return false
	}
	for i.Next() {
		if i.cell >= cell {
			return true
		}
	}
	return false
}

// NextBlock moves to the following block.
func (i *Iterator) NextBlock() bool { return i.advanceBlock(i.blockNum + 1) }

// PrevBlock moves to the preceding block.
func (i *Iterator) PrevBlock() bool { return i.advanceBlock(i.blockNum - 1) }

func (i *Iterator) advanceBlock(num int) bool {
	if i.err != nil || num < 0 || num >= len(i.parent.index) {
		return false
	}

	next, err := i.parent.readBlock(num)
	if err != nil {
		i.err = err
		return false
	}

	i.Release()
	*i = *next
	return true
}

// advanceSection positions the cursor before section num.
func (i *Iterator) advanceSection(num int) bool {
	if num < 0 || num >= len(i.index) {
		return false
	}

	i.sectionNum = num - 1
	i.pos = i.index[num]
	i.cell = 0
	return true
}

// Cell returns the cell of the current entry.
func (i *Iterator) Cell() hexgrid.Cell { return i.cell }

// Value returns the value of the current entry. The slice is only valid
// until the next call to Next or Release.
func (i *Iterator) Value() []byte { return i.value }

// Err returns the first read error.
func (i *Iterator) Err() error { return i.err }

// Release returns the block buffer to the pool. The iterator must not be
// used afterwards.
func (i *Iterator) Release() {
	releaseBuffer(i.buf)
	i.buf = nil
}
