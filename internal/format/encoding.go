package format

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/resxtools/resxkit/pkg/types"
)

// Encoding identifies the on-disk text encoding of a resource document.
type Encoding int

const (
	// EncodingUTF8 is plain UTF-8 with no marker.
	EncodingUTF8 Encoding = iota
	// EncodingUTF8BOM is UTF-8 with a leading EF BB BF marker.
	EncodingUTF8BOM
	// EncodingUTF16LE is little-endian UTF-16 with a FF FE marker.
	EncodingUTF16LE
	// EncodingUTF16BE is big-endian UTF-16 with a FE FF marker.
	EncodingUTF16BE
)

var (
	utf8Marker    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEMarker = []byte{0xFF, 0xFE}
	utf16BEMarker = []byte{0xFE, 0xFF}
)

// HasMarker reports whether the encoding carries a byte-order marker.
func (e Encoding) HasMarker() bool { return e != EncodingUTF8 }

// String returns a short human-readable encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8 (bom)"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// Decode strips any leading byte-order marker and converts the document
// to UTF-8 text ready for scanning. The returned Encoding tells Encode
// how to reproduce the original bytes.
func Decode(raw []byte) ([]byte, Encoding, error) {
	switch {
	case bytes.HasPrefix(raw, utf8Marker):
		return raw[len(utf8Marker):], EncodingUTF8BOM, nil
	case bytes.HasPrefix(raw, utf16LEMarker):
		text, _, err := transform.Bytes(
			unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(),
			raw[len(utf16LEMarker):],
		)
		if err != nil {
			return nil, EncodingUTF16LE, &types.Error{
				Kind: types.ErrKindUnsupported,
				Msg:  "format: invalid utf-16le document",
				Err:  err,
			}
		}
		return text, EncodingUTF16LE, nil
	case bytes.HasPrefix(raw, utf16BEMarker):
		text, _, err := transform.Bytes(
			unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(),
			raw[len(utf16BEMarker):],
		)
		if err != nil {
			return nil, EncodingUTF16BE, &types.Error{
				Kind: types.ErrKindUnsupported,
				Msg:  "format: invalid utf-16be document",
				Err:  err,
			}
		}
		return text, EncodingUTF16BE, nil
	default:
		return raw, EncodingUTF8, nil
	}
}

// Encode converts UTF-8 text back to enc, re-attaching the byte-order
// marker that Decode stripped.
func Encode(text []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8:
		return text, nil
	case EncodingUTF8BOM:
		out := make([]byte, 0, len(utf8Marker)+len(text))
		out = append(out, utf8Marker...)
		return append(out, text...), nil
	case EncodingUTF16LE, EncodingUTF16BE:
		endian := unicode.LittleEndian
		marker := utf16LEMarker
		if enc == EncodingUTF16BE {
			endian = unicode.BigEndian
			marker = utf16BEMarker
		}
		encoded, _, err := transform.Bytes(unicode.UTF16(endian, unicode.IgnoreBOM).NewEncoder(), text)
		if err != nil {
			return nil, &types.Error{
				Kind: types.ErrKindUnsupported,
				Msg:  "format: cannot encode document text",
				Err:  err,
			}
		}
		out := make([]byte, 0, len(marker)+len(encoded))
		out = append(out, marker...)
		return append(out, encoded...), nil
	default:
		return nil, types.ErrUnsupportedEncoding
	}
}
