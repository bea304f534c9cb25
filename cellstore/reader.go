package cellstore

import (
	"bytes"
	"encoding/binary"
	"io"
	"sort"

	"github.com/bsm/hexfence/hexgrid"
	"github.com/golang/snappy"
)

// Reader represents a cellstore reader
type Reader struct {
	r io.ReaderAt

	index       []blockInfo
	indexOffset int64
	res         int
}

// NewReader opens a reader.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	if size < footerSize {
		return nil, errBadMagic
	}

	tmp := make([]byte, footerSize+binary.MaxVarintLen64)

	// read footer
	footerOffset := size - footerSize
	if _, err := r.ReadAt(tmp[:footerSize], footerOffset); err != nil {
		return nil, err
	}

	// parse footer
	if !bytes.Equal(tmp[9:footerSize], magic) {
		return nil, errBadMagic
	}
	indexOffset := int64(binary.LittleEndian.Uint64(tmp[:8]))
	res := int(tmp[8])
	if indexOffset > footerOffset || res > hexgrid.MaxResolution {
		return nil, errBadMagic
	}

	// read index
	var index []blockInfo
	var info blockInfo

	for pos := indexOffset; pos < footerOffset; {
		tmp = tmp[:2*binary.MaxVarintLen64]
		if x := footerOffset - pos; x < int64(len(tmp)) {
			tmp = tmp[:int(x)]
		}

		if _, err := r.ReadAt(tmp, pos); err != nil {
			return nil, err
		}

		u1, n := binary.Uvarint(tmp[0:])
		pos += int64(n)

		u2, m := binary.Uvarint(tmp[n:])
		pos += int64(m)

		info.MaxCell += hexgrid.Cell(u1)
		info.Offset += int64(u2)
		index = append(index, info)
	}

	return &Reader{
		r: r,

		index:       index,
		indexOffset: indexOffset,
		res:         res,
	}, nil
}

// Resolution returns the resolution the stored cells were rasterised at.
func (r *Reader) Resolution() int {
	return r.res
}

// NumBlocks returns the number of stored blocks.
func (r *Reader) NumBlocks() int {
	return len(r.index)
}

// FindBlock returns an iterator over the block which may contain cell.
func (r *Reader) FindBlock(cell hexgrid.Cell) (*Iterator, error) {
	if !cell.IsValid() {
		return nil, errInvalidCell
	}

	blockNum := sort.Search(len(r.index), func(i int) bool {
		return r.index[i].MaxCell >= cell
	})
	if blockNum >= len(r.index) {
		return &Iterator{parent: r, blockNum: len(r.index)}, nil
	}
	return r.readBlock(blockNum)
}

// Get returns the value stored for cell or nil if not found.
func (r *Reader) Get(cell hexgrid.Cell) ([]byte, error) {
	it, err := r.FindBlock(cell)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	if it.Seek(cell) && it.Cell() == cell {
		return append([]byte{}, it.Value()...), nil
	}
	return nil, it.Err()
}

// Contains returns true if the cell containing ll at the stored resolution,
// or any of its ancestors, is stored. This is how a compacted cover is
// queried.
func (r *Reader) Contains(grid hexgrid.Grid, ll hexgrid.LatLng) (bool, error) {
	cell, err := grid.Cell(ll, r.res)
	if err != nil {
		return false, err
	}

	for res := r.res; res >= 0; res-- {
		parent, err := grid.Parent(cell, res)
		if err != nil {
			return false, err
		}

		val, err := r.Get(parent)
		if err != nil {
			return false, err
		} else if val != nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *Reader) readBlock(blockNum int) (*Iterator, error) {
	min := r.index[blockNum].Offset
	max := r.indexOffset
	if next := blockNum + 1; next < len(r.index) {
		max = r.index[next].Offset
	}

	raw := fetchBuffer(int(max - min))
	if _, err := r.r.ReadAt(raw, min); err != nil {
		releaseBuffer(raw)
		return nil, err
	}

	var buf []byte
	switch maxPos := len(raw) - 1; raw[maxPos] {
	case blockNoCompression:
		buf = raw[:maxPos]
	case blockSnappyCompression:
		defer releaseBuffer(raw)

		sz, err := snappy.DecodedLen(raw[:maxPos])
		if err != nil {
			return nil, err
		}

		pln := fetchBuffer(sz)
		res, err := snappy.Decode(pln, raw[:maxPos])
		if err != nil {
			releaseBuffer(pln)
			return nil, err
		}
		buf = res
	default:
		releaseBuffer(raw)
		return nil, errInvalidCompression
	}

	// parse section index
	eoi := len(buf) - 4
	numSections := int(binary.LittleEndian.Uint32(buf[eoi:]))
	soi := eoi - 4*numSections

	index := make([]int, numSections)
	for i := range index {
		index[i] = int(binary.LittleEndian.Uint32(buf[soi+4*i:]))
	}

	return &Iterator{
		parent:     r,
		blockNum:   blockNum,
		sectionNum: -1,
		index:      index,
		buf:        buf[:soi],
	}, nil
}
