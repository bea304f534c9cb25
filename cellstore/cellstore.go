package cellstore

import (
	"errors"
	"sync"

	"github.com/bsm/hexfence/hexgrid"
)

const (
	KiB = 1024
	MiB = 1024 * KiB
)

var magic = []byte{104, 101, 120, 102, 101, 110, 99, 51}

// footer: index offset (8) + resolution (1) + magic (8)
const footerSize = 17

var (
	errClosed             = errors.New("cellstore: is closed")
	errBadMagic           = errors.New("cellstore: bad magic byte sequence")
	errInvalidCompression = errors.New("cellstore: invalid compression setting")
	errInvalidCell        = errors.New("cellstore: invalid cell")
)

const (
	blockNoCompression     = 0
	blockSnappyCompression = 1
)

// --------------------------------------------------------------------

type Compression byte

func (c Compression) isValid() bool {
	return c >= NoCompression && c < unknownCompression
}

const (
	NoCompression Compression = iota + 1
	SnappyCompression
	unknownCompression
)

type Options struct {
	// The size of a block. Must be >= 1KiB. Default: 16KiB.
	BlockSize int

	// The maximum number of entries per section. Must be > 0. Default: 16.
	SectionSize int

	// The compression algorithm to use. Default: SnappyCompression.
	Compression Compression

	// The resolution the stored cells were rasterised at. Coarser cells
	// are accepted, finer ones are rejected. Default: the finest resolution
	// of all appended cells.
	Resolution int

	// An optional temporary directory, used by Sorter. Default: os.TempDir()
	TempDir string
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if oo.BlockSize < 1 {
		oo.BlockSize = 16 * KiB
	}
	if oo.SectionSize < 1 {
		oo.SectionSize = 16
	}
	if !oo.Compression.isValid() {
		oo.Compression = SnappyCompression
	}
	if oo.Resolution < 0 || oo.Resolution > hexgrid.MaxResolution {
		oo.Resolution = 0
	}
	return &oo
}

// --------------------------------------------------------------------

type blockInfo struct {
	MaxCell hexgrid.Cell // maximum cell in the block
	Offset  int64        // block offset position
}

// --------------------------------------------------------------------

var bufPool sync.Pool

func fetchBuffer(sz int) []byte {
	if v := bufPool.Get(); v != nil {
		if p := v.([]byte); sz <= cap(p) {
			return p[:sz]
		}
	}
	return make([]byte, sz)
}

func releaseBuffer(p []byte) {
	if cap(p) != 0 {
		bufPool.Put(p)
	}
}
