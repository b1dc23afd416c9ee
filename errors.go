package exr

import "errors"

var (
	// ErrBadMagic indicates the file does not start with the EXR magic number.
	ErrBadMagic = errors.New("bad magic number")
	// ErrUnsupportedVersionFlags indicates nonzero version flag bits (tiled,
	// multi-part or deep files).
	ErrUnsupportedVersionFlags = errors.New("unsupported version flags")
	// ErrReadPreamble indicates the magic/version preamble read failed.
	ErrReadPreamble = errors.New("reading preamble failed")
	// ErrReadAttributeName indicates an attribute name read failed.
	ErrReadAttributeName = errors.New("reading attribute name failed")
	// ErrReadAttributeType indicates an attribute type name read failed.
	ErrReadAttributeType = errors.New("reading attribute type failed")
	// ErrReadAttributeSize indicates an attribute size read failed.
	ErrReadAttributeSize = errors.New("reading attribute size failed")
	// ErrReadAttributeValue indicates an attribute value read failed.
	ErrReadAttributeValue = errors.New("reading attribute value failed")
	// ErrNameTooLong indicates a name exceeds the 31-byte bound.
	ErrNameTooLong = errors.New("name too long")
	// ErrUnknownAttributeType indicates an unrecognized attribute type name.
	ErrUnknownAttributeType = errors.New("unknown attribute type")
	// ErrInvalidSize indicates a negative declared size or length.
	ErrInvalidSize = errors.New("invalid declared size")
	// ErrDuplicateAttribute indicates a mandatory attribute occurs twice.
	ErrDuplicateAttribute = errors.New("duplicate mandatory attribute")
	// ErrMissingAttributes indicates mandatory attributes never occurred.
	ErrMissingAttributes = errors.New("missing mandatory attributes")
	// ErrUnknownCompression indicates an out-of-range compression ordinal.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrUnknownLineOrder indicates an out-of-range line order ordinal.
	ErrUnknownLineOrder = errors.New("unknown line order")
	// ErrUnknownPixelType indicates an out-of-range pixel type ordinal.
	ErrUnknownPixelType = errors.New("unknown pixel type")
	// ErrEmptyChannelName indicates a channel record with an empty name
	// where a channel was expected.
	ErrEmptyChannelName = errors.New("empty channel name")
	// ErrDuplicateChannelName indicates a repeated name within one channel list.
	ErrDuplicateChannelName = errors.New("duplicate channel name")
	// ErrReadChannel indicates a channel record read failed.
	ErrReadChannel = errors.New("reading channel record failed")
	// ErrInvalidGeometry indicates a data window with yMax below yMin.
	ErrInvalidGeometry = errors.New("invalid data window geometry")
	// ErrReadOffsetTable indicates an offset table read failed.
	ErrReadOffsetTable = errors.New("reading offset table failed")
	// ErrOpenFile indicates an EXR file open failed.
	ErrOpenFile = errors.New("open file failed")
)
