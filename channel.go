package exr

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Channel describes one image channel within a channel list.
type Channel struct {
	Name string
	Type PixelType
	// Linear marks samples as linear-light.
	Linear bool
	// Reserved carries the three padding bytes of the record verbatim.
	Reserved  [3]byte
	XSampling int32
	YSampling int32
}

// ChannelList is an ordered sequence of channels in file order.
type ChannelList []Channel

// channelRecord is the fixed-size tail of a channel record, after the name.
type channelRecord struct {
	Type      int32
	Linear    uint8
	Reserved  [3]byte
	XSampling int32
	YSampling int32
}

// readChannelList reads channel records until the empty-name terminator.
// The terminator is consumed but not stored; a list may be empty.
func readChannelList(r io.Reader) (ChannelList, error) {
	cl := ChannelList{}
	seen := make(map[string]struct{})

	for {
		name, err := readName(r)
		if err != nil {
			return nil, fmt.Errorf("%w: channel %d: %w", ErrReadChannel, len(cl), err)
		}
		if name == "" {
			return cl, nil
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateChannelName, name)
		}
		seen[name] = struct{}{}

		var rec channelRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: channel %q: %v", ErrReadChannel, name, err)
		}
		if rec.Type < int32(PixelTypeUint) || rec.Type > int32(PixelTypeFloat) {
			return nil, fmt.Errorf("%w: channel %q: %d", ErrUnknownPixelType, name, rec.Type)
		}

		cl = append(cl, Channel{
			Name:      name,
			Type:      PixelType(rec.Type),
			Linear:    rec.Linear != 0,
			Reserved:  rec.Reserved,
			XSampling: rec.XSampling,
			YSampling: rec.YSampling,
		})
	}
}
