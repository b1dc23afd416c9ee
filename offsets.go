package exr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// OffsetTable holds one absolute byte offset per scanline block, in file
// order. Offsets are raw values: monotonicity and range are not checked.
type OffsetTable []uint64

// scanlineBlockCount derives the offset table length from the data window
// and the compression block size.
//
// The reference rule counts the inclusive window height and rounds the last
// partial block up. The legacy rule, produced by some older writers, uses
// the exclusive height and drops the partial block; it is kept behind
// DecodeOptions.LegacyBlockCount.
func scanlineBlockCount(dataWindow Box2i, c Compression, legacy bool) (int, error) {
	if dataWindow.Max.Y < dataWindow.Min.Y {
		return 0, fmt.Errorf("%w: yMin %d, yMax %d",
			ErrInvalidGeometry, dataWindow.Min.Y, dataWindow.Max.Y)
	}

	perBlock := int64(c.ScanlinesPerBlock())
	if legacy {
		height := int64(dataWindow.Max.Y) - int64(dataWindow.Min.Y)
		return int(height / perBlock), nil
	}

	height := int64(dataWindow.Max.Y) - int64(dataWindow.Min.Y) + 1
	return int((height + perBlock - 1) / perBlock), nil
}

// readOffsetTable reads the block offsets for an already-decoded header.
func readOffsetTable(r io.Reader, h *Header, legacy bool) (OffsetTable, error) {
	count, err := scanlineBlockCount(h.DataWindow, h.Compression, legacy)
	if err != nil {
		return nil, err
	}

	offsets := make(OffsetTable, count)
	for i := range offsets {
		if err := binary.Read(r, binary.LittleEndian, &offsets[i]); err != nil {
			return nil, fmt.Errorf("%w: entry %d of %d: %v", ErrReadOffsetTable, i, count, err)
		}
	}

	return offsets, nil
}
