package detect

// NUL positional parity, accumulated across every NUL byte seen. A buffer
// whose NULs sit only at even offsets looks like big-endian UTF-16 ASCII
// text; only at odd offsets, little-endian.
const (
	parityOdd  = 1
	parityEven = 2
)

// nonText returns true for byte values that do not occur in plain text.
func nonText(b byte) bool {
	return b == 0 || b == 26 || b == 127 || b == 255
}

// accumulator collects every statistic the decision cascade consumes. One
// accumulator is created per analysis call; nothing here outlives the call.
type accumulator struct {
	byteCnt   [256]int
	pairCnt   map[uint16]int
	pairTotal int
	hihiTotal int

	binary     bool
	conformant bool
	nulParity  int

	// UTF-8 decoder state: continuation bytes still expected.
	utf8Need int

	// Held high byte awaiting its pair partner; -1 when none.
	pending int
}

func newAccumulator() *accumulator {
	return &accumulator{
		pairCnt:    make(map[uint16]int),
		conformant: true,
		pending:    -1,
	}
}

// feed advances all statistics by one byte at buffer offset pos.
func (a *accumulator) feed(pos int, b byte) {
	if nonText(b) {
		a.binary = true
		if b == 0 {
			if pos&1 == 1 {
				a.nulParity |= parityOdd
			} else {
				a.nulParity |= parityEven
			}
		}
	}

	if a.conformant {
		a.feedUTF8(b)
	}

	a.byteCnt[b]++

	if a.pending >= 0 {
		pair := uint16(a.pending)<<8 | uint16(b)
		a.pairCnt[pair]++
		a.pairTotal++
		if a.pending > 0xA0 && b > 0xA0 {
			a.hihiTotal++
		}
		a.pending = -1
	} else if b >= 0x80 {
		a.pending = int(b)
	}
}

// feedUTF8 advances the conformance state machine. Failure is sticky: the
// caller stops feeding once conformant goes false.
func (a *accumulator) feedUTF8(b byte) {
	switch byteClassTable[b] {
	case classSingle:
		if a.utf8Need != 0 {
			a.conformant = false
		}
	case classLead2:
		if a.utf8Need == 0 {
			a.utf8Need = 1
		} else {
			a.conformant = false
		}
	case classLead3:
		if a.utf8Need == 0 {
			a.utf8Need = 2
		} else {
			a.conformant = false
		}
	case classLead4:
		if a.utf8Need == 0 {
			a.utf8Need = 3
		} else {
			a.conformant = false
		}
	case classTail:
		if a.utf8Need > 0 {
			a.utf8Need--
		} else {
			a.conformant = false
		}
	default: // classInvalid
		a.conformant = false
	}
}
