package exr

import (
	"fmt"
	"io"
)

// AttrType identifies the wire type of an attribute value.
type AttrType string

// The seven attribute types this format is closed over.
const (
	AttrTypeChlist      AttrType = "chlist"
	AttrTypeString      AttrType = "string"
	AttrTypeCompression AttrType = "compression"
	AttrTypeBox2i       AttrType = "box2i"
	AttrTypeLineOrder   AttrType = "lineOrder"
	AttrTypeFloat       AttrType = "float"
	AttrTypeV2f         AttrType = "v2f"
)

// Attribute is a named, typed header record. Value's dynamic type always
// matches Type: ChannelList, string, Compression, Box2i, LineOrder,
// float32 or V2f.
type Attribute struct {
	Name  string
	Type  AttrType
	Value any
}

// readAttrValue decodes one attribute value of the given type. The declared
// size has already been consumed by the caller; the typed decoders derive
// their own lengths (fixed widths, inner length prefix, list terminator).
func readAttrValue(r io.Reader, typ AttrType) (any, error) {
	switch typ {
	case AttrTypeChlist:
		return readChannelList(r)
	case AttrTypeString:
		return readPrefixedString(r)
	case AttrTypeCompression:
		return readCompression(r)
	case AttrTypeBox2i:
		return readBox2i(r)
	case AttrTypeLineOrder:
		return readLineOrder(r)
	case AttrTypeFloat:
		return readFloat32(r)
	case AttrTypeV2f:
		return readV2f(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttributeType, typ)
	}
}
