package exr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// V2i is a 2D integer vector.
type V2i struct {
	X, Y int32
}

// V2f is a 2D float vector.
type V2f struct {
	X, Y float32
}

// Box2i is an axis-aligned 2D integer bounding box with inclusive corners.
type Box2i struct {
	Min, Max V2i
}

// Width returns the inclusive width of the box.
func (b Box2i) Width() int32 {
	return b.Max.X - b.Min.X + 1
}

// Height returns the inclusive height of the box.
func (b Box2i) Height() int32 {
	return b.Max.Y - b.Min.Y + 1
}

// IsEmpty reports whether the box has no area.
func (b Box2i) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// PixelType identifies the sample type of a channel.
type PixelType int32

const (
	// PixelTypeUint stores 32-bit unsigned integer samples.
	PixelTypeUint PixelType = 0
	// PixelTypeHalf stores 16-bit float samples.
	PixelTypeHalf PixelType = 1
	// PixelTypeFloat stores 32-bit float samples.
	PixelTypeFloat PixelType = 2
)

// String returns the pixel type name.
func (p PixelType) String() string {
	switch p {
	case PixelTypeUint:
		return "uint"
	case PixelTypeHalf:
		return "half"
	case PixelTypeFloat:
		return "float"
	default:
		return fmt.Sprintf("pixelType(%d)", int32(p))
	}
}

// Compression identifies the scheme used for scanline block payloads.
// The header records the scheme only; inverting it is the consumer's job.
type Compression uint8

const (
	// CompressionNone stores uncompressed scanlines.
	CompressionNone Compression = 0
	// CompressionRLE uses run-length encoding.
	CompressionRLE Compression = 1
	// CompressionZIPS uses zlib on single scanlines.
	CompressionZIPS Compression = 2
	// CompressionZIP uses zlib on blocks of 16 scanlines.
	CompressionZIP Compression = 3
	// CompressionPIZ uses wavelet compression.
	CompressionPIZ Compression = 4
	// CompressionPXR24 uses 24-bit float conversion with zlib.
	CompressionPXR24 Compression = 5
	// CompressionB44 uses 4x4 block lossy compression.
	CompressionB44 Compression = 6
	// CompressionB44A uses B44 with flat-area detection.
	CompressionB44A Compression = 7
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionRLE:
		return "rle"
	case CompressionZIPS:
		return "zips"
	case CompressionZIP:
		return "zip"
	case CompressionPIZ:
		return "piz"
	case CompressionPXR24:
		return "pxr24"
	case CompressionB44:
		return "b44"
	case CompressionB44A:
		return "b44a"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ScanlinesPerBlock returns the number of consecutive scanlines grouped
// into one compressed block for this scheme.
func (c Compression) ScanlinesPerBlock() int {
	switch c {
	case CompressionZIP, CompressionPXR24:
		return 16
	case CompressionPIZ, CompressionB44, CompressionB44A:
		return 32
	default:
		return 1
	}
}

// LineOrder identifies the order of scanline blocks in the file.
type LineOrder uint8

const (
	// LineOrderIncreasingY stores scanlines top to bottom.
	LineOrderIncreasingY LineOrder = 0
	// LineOrderDecreasingY stores scanlines bottom to top.
	LineOrderDecreasingY LineOrder = 1
	// LineOrderRandomY allows any order.
	LineOrderRandomY LineOrder = 2
)

// String returns the line order name.
func (lo LineOrder) String() string {
	switch lo {
	case LineOrderIncreasingY:
		return "increasing_y"
	case LineOrderDecreasingY:
		return "decreasing_y"
	case LineOrderRandomY:
		return "random_y"
	default:
		return fmt.Sprintf("lineOrder(%d)", uint8(lo))
	}
}

func readBox2i(r io.Reader) (Box2i, error) {
	var b Box2i
	if err := binary.Read(r, binary.LittleEndian, &b); err != nil {
		return Box2i{}, fmt.Errorf("%w: %v", ErrReadAttributeValue, err)
	}

	return b, nil
}

func readV2f(r io.Reader) (V2f, error) {
	var v V2f
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return V2f{}, fmt.Errorf("%w: %v", ErrReadAttributeValue, err)
	}

	return v, nil
}

func readFloat32(r io.Reader) (float32, error) {
	var f float32
	if err := binary.Read(r, binary.LittleEndian, &f); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadAttributeValue, err)
	}

	return f, nil
}

func readCompression(r io.Reader) (Compression, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadAttributeValue, err)
	}
	if b[0] > uint8(CompressionB44A) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownCompression, b[0])
	}

	return Compression(b[0]), nil
}

func readLineOrder(r io.Reader) (LineOrder, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadAttributeValue, err)
	}
	if b[0] > uint8(LineOrderRandomY) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownLineOrder, b[0])
	}

	return LineOrder(b[0]), nil
}

// readPrefixedString reads an int32 length prefix followed by that many raw
// bytes into a fresh string.
func readPrefixedString(r io.Reader) (string, error) {
	var length int32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadAttributeValue, err)
	}

	n, err := intFromInt32(length)
	if err != nil {
		return "", fmt.Errorf("%w: string length %d", err, length)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadAttributeValue, err)
	}

	return string(buf), nil
}
