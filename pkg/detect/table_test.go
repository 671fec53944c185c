package detect

import "testing"

func TestByteClassTable_Boundaries(t *testing.T) {
	tests := []struct {
		b    byte
		want byteClass
	}{
		{0x00, classInvalid},
		{0x01, classSingle},
		{0x7F, classSingle},
		{0x80, classTail},
		{0xBF, classTail},
		{0xC0, classInvalid},
		{0xC1, classInvalid},
		{0xC2, classLead2},
		{0xDF, classLead2},
		{0xE0, classLead3},
		{0xEF, classLead3},
		{0xF0, classLead4},
		{0xF4, classLead4},
		{0xF5, classInvalid},
		{0xFF, classInvalid},
	}
	for _, tt := range tests {
		if got := byteClassTable[tt.b]; got != tt.want {
			t.Errorf("byteClassTable[%#02x] = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestFreqTable_Counts(t *testing.T) {
	gbk, big5 := 0, 0
	for _, e := range defaultFreqTable {
		switch e.Encoding {
		case EncodingGBK:
			gbk++
		case EncodingBig5:
			big5++
		default:
			t.Errorf("unexpected encoding %v for pair %04x", e.Encoding, e.Pair)
		}
	}
	if gbk != 16 {
		t.Errorf("gbk entries = %d, want 16", gbk)
	}
	if big5 != 13 {
		t.Errorf("big5 entries = %d, want 13", big5)
	}
}

func TestEncoding_StringRoundTrip(t *testing.T) {
	encs := []Encoding{
		EncodingUCS4, EncodingUCS4LE, EncodingUTF8, EncodingUTF16,
		EncodingUTF16LE, EncodingASCII, EncodingLatin1, EncodingGB2312,
		EncodingGBK, EncodingBig5, EncodingBinary,
	}
	for _, e := range encs {
		if got := ParseEncoding(e.String()); got != e {
			t.Errorf("ParseEncoding(%q) = %v, want %v", e.String(), got, e)
		}
	}
	if EncodingUnknown.String() != "unknown" {
		t.Errorf("unknown label = %q", EncodingUnknown.String())
	}
}
