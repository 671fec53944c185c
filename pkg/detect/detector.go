// Package detect guesses the character encoding of a byte buffer by
// statistical and structural analysis: byte-order-mark sniffing, UTF-8
// conformance validation via a per-byte state table, and double-byte pair
// frequency heuristics for the CJK encodings.
package detect

// DefaultSampleSize is the default number of bytes callers should feed the
// detector; a file's leading sample is representative enough.
const DefaultSampleSize = 100000

// Analysis contains the full result of one detection pass: the label plus
// every statistic it was derived from, for diagnostic reporting.
type Analysis struct {
	Encoding Encoding
	Length   int

	// FromBOM is true when a byte-order mark decided the result; no
	// statistics are collected in that case.
	FromBOM bool

	// ByteCounts holds all 256 byte values in descending count order.
	ByteCounts []ByteCount

	// PairCounts holds the observed double-byte values in descending count
	// order.
	PairCounts []PairCount

	PairTotal      int
	HighHighPairs  int
	Binary         bool
	UTF8Conformant bool
}

// UniquePairs returns the number of distinct double-byte values observed.
func (a *Analysis) UniquePairs() int {
	return len(a.PairCounts)
}

// Detector guesses encodings. The zero value is not usable; construct with
// NewDetector. A Detector is immutable after construction and safe for
// concurrent use.
type Detector struct {
	freq map[uint16]Encoding
}

// NewDetector creates a detector using the built-in frequency reference
// table, optionally extended with extra entries. Extra entries override
// built-in ones for the same pair value.
func NewDetector(extra ...FreqEntry) *Detector {
	freq := make(map[uint16]Encoding, len(defaultFreqTable)+len(extra))
	for _, e := range defaultFreqTable {
		freq[e.Pair] = e.Encoding
	}
	for _, e := range extra {
		freq[e.Pair] = e.Encoding
	}
	return &Detector{freq: freq}
}

// Detect returns the encoding label for buf. EncodingUnknown means the
// cascade reached no conclusion; it is a valid classification, not an error.
func (d *Detector) Detect(buf []byte) Encoding {
	return d.Analyze(buf).Encoding
}

// Analyze runs one full detection pass over buf and returns the label
// together with the statistics that produced it. All accumulator state is
// local to the call; repeated calls on the same buffer yield the same
// result.
func (d *Detector) Analyze(buf []byte) *Analysis {
	if len(buf) > 4 {
		if enc, ok := sniffBOM(buf); ok {
			return &Analysis{Encoding: enc, Length: len(buf), FromBOM: true}
		}
	}

	acc := newAccumulator()
	for i := 0; i < len(buf); i++ {
		acc.feed(i, buf[i])
	}

	a := &Analysis{
		Length:         len(buf),
		ByteCounts:     rankBytes(&acc.byteCnt),
		PairCounts:     rankPairs(acc.pairCnt),
		PairTotal:      acc.pairTotal,
		HighHighPairs:  acc.hihiTotal,
		Binary:         acc.binary,
		UTF8Conformant: acc.conformant,
	}
	a.Encoding = d.classify(acc, a.PairCounts)
	return a
}

// classify runs the decision cascade. Branch order matters: each test
// assumes everything above it failed.
func (d *Detector) classify(acc *accumulator, pairs []PairCount) Encoding {
	switch {
	case !acc.conformant && acc.binary:
		// Non-text bytes with consistent NUL placement mean UTF-16 ASCII
		// text; inconsistent or absent NULs mean raw binary.
		switch acc.nulParity {
		case parityOdd:
			return EncodingUTF16LE
		case parityEven:
			return EncodingUTF16
		default:
			return EncodingBinary
		}

	case acc.pairTotal == 0:
		return EncodingASCII

	case acc.conformant:
		return EncodingUTF8

	case acc.hihiTotal*100/acc.pairTotal < 5:
		// High bytes rarely adjacent: stray accented characters, not DBCS.
		return EncodingLatin1

	case acc.hihiTotal == acc.pairTotal:
		return EncodingGB2312

	default:
		if enc, ok := d.checkFreqPairs(pairs); ok {
			return enc
		}
		return EncodingUnknown
	}
}
