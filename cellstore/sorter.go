package cellstore

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bsm/extsort"
	"github.com/bsm/hexfence/hexgrid"
)

// SorterOptions define Sorter specific options.
type SorterOptions struct {
	// An optional temporary directory. Default: os.TempDir()
	TempDir string
}

// Sorter orders cells of arbitrary input order so they can be appended to
// a Writer. Values of duplicate cells are grouped.
type Sorter struct {
	x   *extsort.Sorter
	rec []byte
}

// NewSorter creates a sorter.
func NewSorter(o *SorterOptions) *Sorter {
	var dir string
	if o != nil {
		dir = o.TempDir
	}
	return &Sorter{x: extsort.New(&extsort.Options{WorkDir: dir})}
}

// Append adds a cell and its value.
func (s *Sorter) Append(cell hexgrid.Cell, data []byte) error {
	if !cell.IsValid() {
		return fmt.Errorf("%w %s", errInvalidCell, cell)
	}

	// records are big-endian cells followed by the value, so the
	// byte-wise sort orders them by cell
	s.rec = binary.BigEndian.AppendUint64(s.rec[:0], uint64(cell))
	s.rec = append(s.rec, data...)
	return s.x.Append(s.rec)
}

// Sort sorts appended values and returns an iterator.
func (s *Sorter) Sort() (*SorterIterator, error) {
	it, err := s.x.Sort()
	if err != nil {
		return nil, err
	}
	return &SorterIterator{it: it}, nil
}

// Close closes the sorter and releases all resources.
func (s *Sorter) Close() error {
	return s.x.Close()
}

// SorterIterator iterates over sorted cells.
type SorterIterator struct {
	it *extsort.Iterator

	// the first record of the next group, read ahead
	peeked    bool
	peekCell  hexgrid.Cell
	peekValue []byte

	values [][]byte
}

// NextEntry returns the next cell together with all values appended for
// it. It returns io.EOF when exhausted. The returned values are reused by
// the following call.
func (i *SorterIterator) NextEntry() (hexgrid.Cell, [][]byte, error) {
	if !i.peeked && !i.read() {
		return 0, nil, i.done()
	}

	cell := i.peekCell
	i.values = i.values[:0]
	i.values = i.collect(i.values, i.peekValue)
	i.peeked = false

	for i.read() {
		if i.peekCell != cell {
			break
		}
		i.values = i.collect(i.values, i.peekValue)
		i.peeked = false
	}
	if err := i.it.Err(); err != nil {
		return 0, nil, err
	}
	return cell, i.values, nil
}

// Close closes iterator and releases resources.
func (i *SorterIterator) Close() error {
	return i.it.Close()
}

// read advances the underlying iterator into the peek slot.
func (i *SorterIterator) read() bool {
	if !i.it.Next() {
		return false
	}
	rec := i.it.Data()
	i.peekCell = hexgrid.Cell(binary.BigEndian.Uint64(rec))
	i.peekValue = append(i.peekValue[:0], rec[8:]...)
	i.peeked = true
	return true
}

func (i *SorterIterator) done() error {
	if err := i.it.Err(); err != nil {
		return err
	}
	return io.EOF
}

// collect appends a copy of v, reusing previously allocated slots.
func (*SorterIterator) collect(dst [][]byte, v []byte) [][]byte {
	if n := len(dst); n < cap(dst) {
		dst = dst[:n+1]
		dst[n] = append(dst[n][:0], v...)
		return dst
	}
	return append(dst, append([]byte(nil), v...))
}
