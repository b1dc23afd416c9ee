package exr

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// MagicNumber is the int32 value every EXR file starts with,
// 0x76 0x2f 0x31 0x01 on the wire.
const MagicNumber int32 = 20000630

// maxNameLen bounds attribute, type and channel names to 31 usable bytes
// before the null terminator. Longer names are a decode error.
const maxNameLen = 31

// Image is a fully parsed scanline container header.
type Image struct {
	// Version is the file version byte; its flag bytes are all zero,
	// anything else fails the parse.
	Version uint8
	Header  Header
	Offsets OffsetTable
}

// BlockCount returns the number of scanline blocks in the file.
func (img *Image) BlockCount() int {
	return len(img.Offsets)
}

// DecodeOptions configures container decoding. The zero value gives the
// reference behavior.
type DecodeOptions struct {
	// LegacyBlockCount sizes the offset table with the floor rule
	// ((yMax-yMin)/scanlinesPerBlock) used by some older writers instead
	// of rounding the inclusive window height up.
	LegacyBlockCount bool
}

// Decode parses a complete container from r: preamble, header and offset
// table. It reads r in a single forward pass.
func Decode(r io.Reader) (*Image, error) {
	return DecodeWithOptions(r, nil)
}

// DecodeWithOptions parses a complete container with the given options.
// Nil opts uses defaults.
func DecodeWithOptions(r io.Reader, opts *DecodeOptions) (*Image, error) {
	br := bufio.NewReader(r)

	version, err := readPreamble(br)
	if err != nil {
		return nil, err
	}

	header, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	legacy := opts != nil && opts.LegacyBlockCount
	offsets, err := readOffsetTable(br, header, legacy)
	if err != nil {
		return nil, err
	}

	return &Image{Version: version, Header: *header, Offsets: offsets}, nil
}

// DecodeFile parses a complete container from a file.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeHeader parses the preamble and header only, stopping before the
// offset table.
func DecodeHeader(r io.Reader) (*Header, error) {
	br := bufio.NewReader(r)

	if _, err := readPreamble(br); err != nil {
		return nil, err
	}

	return readHeader(br)
}

// readPreamble validates the 8-byte magic/version preamble and returns the
// version byte.
func readPreamble(r io.Reader) (uint8, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrReadPreamble, err)
	}

	magic := int32(binary.LittleEndian.Uint32(buf[:4]))
	if magic != MagicNumber {
		return 0, fmt.Errorf("%w: %d", ErrBadMagic, magic)
	}

	if buf[5] != 0 || buf[6] != 0 || buf[7] != 0 {
		return 0, fmt.Errorf("%w: 0x%02x%02x%02x",
			ErrUnsupportedVersionFlags, buf[5], buf[6], buf[7])
	}

	return buf[4], nil
}

// readName reads a null-terminated name of at most maxNameLen bytes. The
// terminator is consumed but not returned; an immediate terminator yields
// the empty string.
func readName(r io.Reader) (string, error) {
	var buf [maxNameLen]byte
	var b [1]byte

	for i := 0; ; i++ {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", err
		}
		if b[0] == 0 {
			return string(buf[:i]), nil
		}
		if i == maxNameLen {
			return "", fmt.Errorf("%w: %q...", ErrNameTooLong, string(buf[:]))
		}
		buf[i] = b[0]
	}
}

func readInt32(r io.Reader) (int32, error) {
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}

	return v, nil
}
