package exr

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// Test-side serializers for the container layout. Decoding is the package's
// job; these builders exist so tests can construct streams and round-trip
// in-memory headers.

func writeName(buf *bytes.Buffer, name string) {
	buf.WriteString(name)
	buf.WriteByte(0)
}

func writeAttr(buf *bytes.Buffer, name string, typ AttrType, payload []byte) {
	writeName(buf, name)
	writeName(buf, string(typ))
	_ = binary.Write(buf, binary.LittleEndian, int32(len(payload)))
	buf.Write(payload)
}

// rewriteAttrs re-encodes each attribute record from data into buf, dropping
// records whose name matches skip. It fails the test on any malformed record
// so a broken fixture cannot pass silently.
func rewriteAttrs(t testing.TB, buf *bytes.Buffer, data []byte, skip string) {
	t.Helper()

	r := bytes.NewReader(data)
	for {
		name, err := readName(r)
		if err != nil {
			t.Fatalf("readName: %v", err)
		}
		if name == "" {
			return
		}
		typeName, err := readName(r)
		if err != nil {
			t.Fatalf("readName: %v", err)
		}
		size, err := readInt32(r)
		if err != nil {
			t.Fatalf("readInt32: %v", err)
		}
		payload := make([]byte, size)
		if _, err := io.ReadFull(r, payload); err != nil {
			t.Fatalf("read payload: %v", err)
		}
		if name != skip {
			writeAttr(buf, name, AttrType(typeName), payload)
		}
	}
}

func encodeBox2i(b Box2i) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, b)
	return buf.Bytes()
}

func encodeV2f(v V2f) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func encodeFloat32(f float32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f))
	return buf[:]
}

func encodeString(s string) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, int32(len(s)))
	buf.WriteString(s)
	return buf.Bytes()
}

func encodeChannelList(cl ChannelList) []byte {
	var buf bytes.Buffer
	for _, ch := range cl {
		writeName(&buf, ch.Name)
		linear := uint8(0)
		if ch.Linear {
			linear = 1
		}
		_ = binary.Write(&buf, binary.LittleEndian, channelRecord{
			Type:      int32(ch.Type),
			Linear:    linear,
			Reserved:  ch.Reserved,
			XSampling: ch.XSampling,
			YSampling: ch.YSampling,
		})
	}
	buf.WriteByte(0)
	return buf.Bytes()
}

func encodeAttrValue(t testing.TB, typ AttrType, value any) []byte {
	t.Helper()

	switch typ {
	case AttrTypeChlist:
		return encodeChannelList(value.(ChannelList))
	case AttrTypeString:
		return encodeString(value.(string))
	case AttrTypeCompression:
		return []byte{byte(value.(Compression))}
	case AttrTypeBox2i:
		return encodeBox2i(value.(Box2i))
	case AttrTypeLineOrder:
		return []byte{byte(value.(LineOrder))}
	case AttrTypeFloat:
		return encodeFloat32(value.(float32))
	case AttrTypeV2f:
		return encodeV2f(value.(V2f))
	default:
		t.Fatalf("encodeAttrValue: unknown type %q", typ)
		return nil
	}
}

// encodeHeader serializes all eight mandatory attributes followed by the
// miscellaneous attributes and the terminator.
func encodeHeader(t testing.TB, h *Header) []byte {
	t.Helper()

	var buf bytes.Buffer
	writeAttr(&buf, AttrNameChannels, AttrTypeChlist, encodeChannelList(h.Channels))
	writeAttr(&buf, AttrNameCompression, AttrTypeCompression, []byte{byte(h.Compression)})
	writeAttr(&buf, AttrNameDataWindow, AttrTypeBox2i, encodeBox2i(h.DataWindow))
	writeAttr(&buf, AttrNameDisplayWindow, AttrTypeBox2i, encodeBox2i(h.DisplayWindow))
	writeAttr(&buf, AttrNameLineOrder, AttrTypeLineOrder, []byte{byte(h.LineOrder)})
	writeAttr(&buf, AttrNamePixelAspectRatio, AttrTypeFloat, encodeFloat32(h.PixelAspectRatio))
	writeAttr(&buf, AttrNameScreenWindowCenter, AttrTypeV2f, encodeV2f(h.ScreenWindowCenter))
	writeAttr(&buf, AttrNameScreenWindowWidth, AttrTypeFloat, encodeFloat32(h.ScreenWindowWidth))
	for _, attr := range h.Attributes {
		writeAttr(&buf, attr.Name, attr.Type, encodeAttrValue(t, attr.Type, attr.Value))
	}
	buf.WriteByte(0)
	return buf.Bytes()
}

func encodePreamble(version uint8) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(MagicNumber))
	buf[4] = version
	return buf[:]
}

// encodeImage serializes a complete container: preamble, header, offsets.
func encodeImage(t testing.TB, img *Image) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.Write(encodePreamble(img.Version))
	buf.Write(encodeHeader(t, &img.Header))
	for _, off := range img.Offsets {
		_ = binary.Write(&buf, binary.LittleEndian, off)
	}
	return buf.Bytes()
}

// testHeader builds a representative valid header used across tests.
func testHeader() Header {
	return Header{
		Channels: ChannelList{
			{Name: "B", Type: PixelTypeHalf, Linear: false, XSampling: 1, YSampling: 1},
			{Name: "G", Type: PixelTypeHalf, Linear: false, XSampling: 1, YSampling: 1},
			{Name: "R", Type: PixelTypeHalf, Linear: false, XSampling: 1, YSampling: 1},
		},
		Compression:        CompressionZIP,
		DataWindow:         Box2i{Min: V2i{0, 0}, Max: V2i{63, 31}},
		DisplayWindow:      Box2i{Min: V2i{0, 0}, Max: V2i{63, 31}},
		LineOrder:          LineOrderIncreasingY,
		PixelAspectRatio:   1,
		ScreenWindowCenter: V2f{0, 0},
		ScreenWindowWidth:  1,
	}
}
