package cellstore

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bsm/hexfence/hexgrid"
	"github.com/golang/snappy"
)

// Writer writes a cellstore. Cells are appended in ascending order, grouped
// into sections and blocks and sealed with a block index and a footer which
// records the resolution of the stored cover.
type Writer struct {
	w   io.Writer
	o   *Options
	pos int64 // bytes written so far

	res   int          // finest resolution seen
	last  hexgrid.Cell // last appended cell
	index []blockInfo  // sealed blocks

	// current block
	block    []byte
	sections []int // section offsets within block
	entries  int   // entries within block

	zbuf    []byte // compression buffer
	scratch []byte // varint scratch space
}

// NewWriter wraps w and returns a cellstore Writer.
func NewWriter(w io.Writer, o *Options) *Writer {
	o = o.norm()
	return &Writer{
		w:       w,
		o:       o,
		res:     o.Resolution,
		scratch: make([]byte, 2*binary.MaxVarintLen64),
	}
}

// Append appends a cell and its value. Cells must be valid, strictly
// ascending and no finer than Options.Resolution, if set.
func (w *Writer) Append(cell hexgrid.Cell, data []byte) error {
	if w.scratch == nil {
		return errClosed
	}
	if err := w.check(cell); err != nil {
		return err
	}

	if len(w.block) != 0 && len(w.block)+len(data)+2*binary.MaxVarintLen64 > w.o.BlockSize {
		if err := w.sealBlock(); err != nil {
			return err
		}
	}

	// each section starts with a full cell, the rest are deltas
	key := uint64(cell)
	if w.entries%w.o.SectionSize == 0 {
		w.sections = append(w.sections, len(w.block))
	} else {
		key -= uint64(w.last)
	}

	n := binary.PutUvarint(w.scratch, key)
	n += binary.PutUvarint(w.scratch[n:], uint64(len(data)))
	w.block = append(w.block, w.scratch[:n]...)
	w.block = append(w.block, data...)
	w.entries++
	w.last = cell

	if res := cell.Resolution(); res > w.res {
		w.res = res
	}
	return nil
}

func (w *Writer) check(cell hexgrid.Cell) error {
	if !cell.IsValid() {
		return fmt.Errorf("%w %s", errInvalidCell, cell)
	}
	if w.last >= cell {
		return fmt.Errorf("cellstore: attempted an out-of-order append, %v must be > %v", cell, w.last)
	}
	if w.o.Resolution > 0 && cell.Resolution() > w.o.Resolution {
		return fmt.Errorf("cellstore: cell %s at resolution %d is finer than %d", cell, cell.Resolution(), w.o.Resolution)
	}
	return nil
}

// Close seals the last block and writes the index and footer. It does not
// close the underlying writer.
func (w *Writer) Close() error {
	if w.scratch == nil {
		return errClosed
	}
	if err := w.sealBlock(); err != nil {
		return err
	}

	indexOffset := w.pos
	var prev blockInfo
	for _, ent := range w.index {
		// delta-encoded against the previous entry, the first against zero
		n := binary.PutUvarint(w.scratch, uint64(ent.MaxCell-prev.MaxCell))
		n += binary.PutUvarint(w.scratch[n:], uint64(ent.Offset-prev.Offset))
		if err := w.write(w.scratch[:n]); err != nil {
			return err
		}
		prev = ent
	}

	footer := make([]byte, footerSize)
	binary.LittleEndian.PutUint64(footer, uint64(indexOffset))
	footer[8] = byte(w.res)
	copy(footer[9:], magic)
	if err := w.write(footer); err != nil {
		return err
	}

	w.scratch = nil
	return nil
}

func (w *Writer) write(p []byte) error {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return err
}

// sealBlock appends the section index and compression marker to the
// current block and writes it out.
func (w *Writer) sealBlock() error {
	if len(w.block) == 0 {
		return nil
	}

	for _, off := range w.sections {
		w.block = binary.LittleEndian.AppendUint32(w.block, uint32(off))
	}
	w.block = binary.LittleEndian.AppendUint32(w.block, uint32(len(w.sections)))

	out := append(w.block, blockNoCompression)
	if w.o.Compression == SnappyCompression {
		w.zbuf = snappy.Encode(w.zbuf[:cap(w.zbuf)], w.block)
		// only worth it when saving at least 1/8th
		if len(w.zbuf) < len(w.block)-len(w.block)/8 {
			out = append(w.zbuf, blockSnappyCompression)
		}
	}

	w.index = append(w.index, blockInfo{MaxCell: w.last, Offset: w.pos})
	w.block = w.block[:0]
	w.sections = w.sections[:0]
	w.entries = 0

	return w.write(out)
}
