package exr

import (
	"fmt"
	"io"
	"strings"
)

// Mandatory attribute names. Each must occur exactly once per header.
const (
	AttrNameChannels           = "channels"
	AttrNameCompression        = "compression"
	AttrNameDataWindow         = "dataWindow"
	AttrNameDisplayWindow      = "displayWindow"
	AttrNameLineOrder          = "lineOrder"
	AttrNamePixelAspectRatio   = "pixelAspectRatio"
	AttrNameScreenWindowCenter = "screenWindowCenter"
	AttrNameScreenWindowWidth  = "screenWindowWidth"
)

// mandatoryNames lists the eight required attributes in the order missing
// ones are reported.
var mandatoryNames = []string{
	AttrNameChannels,
	AttrNameCompression,
	AttrNameDataWindow,
	AttrNameDisplayWindow,
	AttrNameLineOrder,
	AttrNamePixelAspectRatio,
	AttrNameScreenWindowCenter,
	AttrNameScreenWindowWidth,
}

// Header holds the eight mandatory attributes as fixed fields and every
// other attribute, in file order, in Attributes.
type Header struct {
	Channels           ChannelList
	Compression        Compression
	DataWindow         Box2i
	DisplayWindow      Box2i
	LineOrder          LineOrder
	PixelAspectRatio   float32
	ScreenWindowCenter V2f
	ScreenWindowWidth  float32

	Attributes []Attribute
}

// readHeader scans attribute records until the empty-name terminator.
// Mandatory attributes route by name to their fixed field and fixed type,
// ignoring the declared type name; anything else decodes via its declared
// type and is appended to Attributes.
func readHeader(r io.Reader) (*Header, error) {
	h := &Header{}
	seen := make(map[string]bool, len(mandatoryNames))

	for {
		name, err := readName(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadAttributeName, err)
		}
		if name == "" {
			break
		}

		typeName, err := readName(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrReadAttributeType, name, err)
		}

		size, err := readInt32(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrReadAttributeSize, name, err)
		}
		if _, err := intFromInt32(size); err != nil {
			return nil, fmt.Errorf("%w: attribute %q: size %d", err, name, size)
		}

		if isMandatory(name) {
			if seen[name] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateAttribute, name)
			}
			if err := h.setMandatory(r, name); err != nil {
				return nil, err
			}
			seen[name] = true
			continue
		}

		value, err := readAttrValue(r, AttrType(typeName))
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		h.Attributes = append(h.Attributes, Attribute{
			Name:  name,
			Type:  AttrType(typeName),
			Value: value,
		})
	}

	if missing := missingNames(seen); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttributes, strings.Join(missing, ", "))
	}

	return h, nil
}

func isMandatory(name string) bool {
	switch name {
	case AttrNameChannels, AttrNameCompression, AttrNameDataWindow,
		AttrNameDisplayWindow, AttrNameLineOrder, AttrNamePixelAspectRatio,
		AttrNameScreenWindowCenter, AttrNameScreenWindowWidth:
		return true
	default:
		return false
	}
}

// setMandatory decodes the fixed type associated with a mandatory name and
// assigns the matching Header field.
func (h *Header) setMandatory(r io.Reader, name string) error {
	var err error

	switch name {
	case AttrNameChannels:
		h.Channels, err = readChannelList(r)
	case AttrNameCompression:
		h.Compression, err = readCompression(r)
	case AttrNameDataWindow:
		h.DataWindow, err = readBox2i(r)
	case AttrNameDisplayWindow:
		h.DisplayWindow, err = readBox2i(r)
	case AttrNameLineOrder:
		h.LineOrder, err = readLineOrder(r)
	case AttrNamePixelAspectRatio:
		h.PixelAspectRatio, err = readFloat32(r)
	case AttrNameScreenWindowCenter:
		h.ScreenWindowCenter, err = readV2f(r)
	case AttrNameScreenWindowWidth:
		h.ScreenWindowWidth, err = readFloat32(r)
	}

	if err != nil {
		return fmt.Errorf("attribute %q: %w", name, err)
	}

	return nil
}

func missingNames(seen map[string]bool) []string {
	var missing []string
	for _, name := range mandatoryNames {
		if !seen[name] {
			missing = append(missing, name)
		}
	}

	return missing
}
