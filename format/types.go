package format

import "strings"

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw  EncodingType = 0x1 // TypeRaw represents values stored unchanged.
	TypeFOR1 EncodingType = 0x2 // TypeFOR1 represents frame-of-reference with 1-byte codes.
	TypeFOR2 EncodingType = 0x3 // TypeFOR2 represents frame-of-reference with 2-byte codes.
	TypeFOR4 EncodingType = 0x4 // TypeFOR4 represents frame-of-reference with 4-byte codes.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// EncodingTypes lists every column encoding in ascending code width order.
var EncodingTypes = []EncodingType{TypeRaw, TypeFOR1, TypeFOR2, TypeFOR4}

// CompressionTypes lists every supported payload compression.
var CompressionTypes = []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeFOR1:
		return "FOR1"
	case TypeFOR2:
		return "FOR2"
	case TypeFOR4:
		return "FOR4"
	default:
		return "Unknown"
	}
}

// CodeWidth returns the byte width of stored codes, or 0 for Raw and unknown types.
func (e EncodingType) CodeWidth() int {
	switch e {
	case TypeFOR1:
		return 1
	case TypeFOR2:
		return 2
	case TypeFOR4:
		return 4
	default:
		return 0
	}
}

// IsFOR reports whether e is one of the frame-of-reference encodings.
func (e EncodingType) IsFOR() bool {
	return e.CodeWidth() > 0
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a compression name case-insensitively ("zstd", "LZ4", ...).
func ParseCompressionType(name string) (CompressionType, bool) {
	for _, c := range CompressionTypes {
		if strings.EqualFold(name, c.String()) {
			return c, true
		}
	}

	return 0, false
}
