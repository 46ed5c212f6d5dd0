package vfs

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding represents a character encoding.
type Encoding string

const (
	// EncodingUTF8 is UTF-8 encoding (default).
	EncodingUTF8 Encoding = "utf-8"

	// EncodingUTF8BOM is UTF-8 encoding with BOM.
	EncodingUTF8BOM Encoding = "utf-8-bom"

	// EncodingUTF16LE is UTF-16 Little Endian.
	EncodingUTF16LE Encoding = "utf-16le"

	// EncodingUTF16BE is UTF-16 Big Endian.
	EncodingUTF16BE Encoding = "utf-16be"

	// EncodingLatin1 is ISO-8859-1 (Latin-1).
	EncodingLatin1 Encoding = "iso-8859-1"
)

// BOM (Byte Order Mark) constants
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding attempts to detect the encoding of file content.
// It checks for BOM markers first, then validates UTF-8.
// Falls back to Latin-1 which accepts all byte sequences.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		return EncodingUTF8BOM
	case bytes.HasPrefix(content, bomUTF16LE):
		return EncodingUTF16LE
	case bytes.HasPrefix(content, bomUTF16BE):
		return EncodingUTF16BE
	case utf8.Valid(content):
		return EncodingUTF8
	default:
		return EncodingLatin1
	}
}

// codec returns the x/text encoding for enc. UTF-8 needs none.
func codec(enc Encoding) encoding.Encoding {
	switch enc {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case EncodingLatin1:
		return charmap.ISO8859_1
	default:
		return nil
	}
}

// Decode converts raw file content to UTF-8 text, returning the encoding
// it was stored in.
func Decode(content []byte) (string, Encoding, error) {
	enc := DetectEncoding(content)
	if enc == EncodingUTF8BOM {
		return string(content[len(bomUTF8):]), enc, nil
	}
	c := codec(enc)
	if c == nil {
		return string(content), enc, nil
	}
	out, err := c.NewDecoder().Bytes(content)
	if err != nil {
		return "", enc, fmt.Errorf("decoding %s: %w", enc, err)
	}
	return string(out), enc, nil
}

// Encode converts UTF-8 text back to enc, restoring any BOM.
func Encode(text string, enc Encoding) ([]byte, error) {
	if enc == EncodingUTF8BOM {
		return append(append([]byte{}, bomUTF8...), text...), nil
	}
	c := codec(enc)
	if c == nil {
		return []byte(text), nil
	}
	out, err := c.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", enc, err)
	}
	return out, nil
}
