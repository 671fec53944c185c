package detect

// Encoding represents a detected character encoding.
type Encoding uint8

const (
	EncodingUnknown Encoding = iota
	EncodingUCS4
	EncodingUCS4LE
	EncodingUTF8
	EncodingUTF16
	EncodingUTF16LE
	EncodingASCII
	EncodingLatin1
	EncodingGB2312
	EncodingGBK
	EncodingBig5
	EncodingBinary
)

// String returns the encoding label.
func (e Encoding) String() string {
	switch e {
	case EncodingUCS4:
		return "ucs-4"
	case EncodingUCS4LE:
		return "ucs-4le"
	case EncodingUTF8:
		return "utf-8"
	case EncodingUTF16:
		return "utf-16"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingASCII:
		return "ascii"
	case EncodingLatin1:
		return "latin1"
	case EncodingGB2312:
		return "gb2312"
	case EncodingGBK:
		return "gbk"
	case EncodingBig5:
		return "big5"
	case EncodingBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParseEncoding parses an encoding label. Unrecognized labels map to
// EncodingUnknown.
func ParseEncoding(s string) Encoding {
	switch s {
	case "ucs-4", "ucs4":
		return EncodingUCS4
	case "ucs-4le", "ucs4le":
		return EncodingUCS4LE
	case "utf-8", "utf8", "UTF-8":
		return EncodingUTF8
	case "utf-16", "utf16":
		return EncodingUTF16
	case "utf-16le", "utf16le":
		return EncodingUTF16LE
	case "ascii", "ASCII":
		return EncodingASCII
	case "latin1", "latin-1", "iso-8859-1":
		return EncodingLatin1
	case "gb2312", "GB2312":
		return EncodingGB2312
	case "gbk", "GBK":
		return EncodingGBK
	case "big5", "Big5", "BIG5":
		return EncodingBig5
	case "binary":
		return EncodingBinary
	default:
		return EncodingUnknown
	}
}
