package detect

// byteClass categorizes a byte value by the role it can play in a UTF-8
// byte sequence.
type byteClass uint8

const (
	classInvalid byteClass = iota
	classSingle            // 0x01-0x7F, a complete one-byte sequence
	classLead2             // 0xC2-0xDF, leads a two-byte sequence
	classLead3             // 0xE0-0xEF, leads a three-byte sequence
	classLead4             // 0xF0-0xF4, leads a four-byte sequence
	classTail              // 0x80-0xBF, continuation byte
)

// byteClassTable maps every byte value to its UTF-8 byte class. Built once;
// never mutated.
var byteClassTable = buildByteClassTable()

func buildByteClassTable() [256]byteClass {
	var t [256]byteClass
	t[0x00] = classInvalid
	for b := 0x01; b <= 0x7F; b++ {
		t[b] = classSingle
	}
	for b := 0x80; b <= 0xBF; b++ {
		t[b] = classTail
	}
	// 0xC0 and 0xC1 would encode overlong two-byte sequences.
	t[0xC0] = classInvalid
	t[0xC1] = classInvalid
	for b := 0xC2; b <= 0xDF; b++ {
		t[b] = classLead2
	}
	for b := 0xE0; b <= 0xEF; b++ {
		t[b] = classLead3
	}
	for b := 0xF0; b <= 0xF4; b++ {
		t[b] = classLead4
	}
	for b := 0xF5; b <= 0xFF; b++ {
		t[b] = classInvalid
	}
	return t
}
