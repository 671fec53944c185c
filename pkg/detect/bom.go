package detect

import "bytes"

// bomPatterns in priority order: the UCS-4 marks subsume the UTF-16 ones, so
// the longer prefixes must be tried first.
var bomPatterns = []struct {
	enc    Encoding
	prefix []byte
}{
	{EncodingUCS4, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{EncodingUCS4LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{EncodingUTF8, []byte{0xEF, 0xBB, 0xBF}},
	{EncodingUTF16, []byte{0xFE, 0xFF}},
	{EncodingUTF16LE, []byte{0xFF, 0xFE}},
}

// sniffBOM matches the buffer prefix against the known byte-order marks.
// Callers only invoke it for buffers longer than 4 bytes; shorter inputs go
// straight to statistical analysis.
func sniffBOM(buf []byte) (Encoding, bool) {
	for _, p := range bomPatterns {
		if bytes.HasPrefix(buf, p.prefix) {
			return p.enc, true
		}
	}
	return EncodingUnknown, false
}
