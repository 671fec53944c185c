package detect

// FreqEntry associates a high-frequency double-byte value with the encoding
// it is characteristic of. The built-in table covers a handful of very
// common GBK and Big5 characters and punctuation; it is reference data, not
// a language model, and can be extended per Detector.
type FreqEntry struct {
	Pair     uint16
	Encoding Encoding
}

// defaultFreqTable holds 16 GBK entries followed by 13 Big5 entries.
var defaultFreqTable = []FreqEntry{
	{0xA3AC, EncodingGBK},
	{0xA1A3, EncodingGBK},
	{0xA1A1, EncodingGBK},
	{0xA1AD, EncodingGBK},
	{0xB5C4, EncodingGBK},
	{0xBFC9, EncodingGBK},
	{0xBAF3, EncodingGBK},
	{0xD2BB, EncodingGBK},
	{0xCED2, EncodingGBK},
	{0xCAC7, EncodingGBK},
	{0xB8F6, EncodingGBK},
	{0xB2BB, EncodingGBK},
	{0xC8CB, EncodingGBK},
	{0xD5E2, EncodingGBK},
	{0xC1CB, EncodingGBK},
	{0xD6AE, EncodingGBK},
	{0xA141, EncodingBig5},
	{0xA143, EncodingBig5},
	{0xAABA, EncodingBig5},
	{0xA7DA, EncodingBig5},
	{0xA54C, EncodingBig5},
	{0xA66F, EncodingBig5},
	{0xA4A3, EncodingBig5},
	{0xA440, EncodingBig5},
	{0xA446, EncodingBig5},
	{0xA457, EncodingBig5},
	{0xBBA1, EncodingBig5},
	{0xAC4F, EncodingBig5},
	{0xA662, EncodingBig5},
}

// maxFreqRank limits the frequency lookup to the most common pairs; anything
// past the first few ranks is noise.
const maxFreqRank = 10

// checkFreqPairs looks up the top-ranked double-byte values in the frequency
// reference table. pairs must be sorted descending by count.
func (d *Detector) checkFreqPairs(pairs []PairCount) (Encoding, bool) {
	n := maxFreqRank
	if n > len(pairs) {
		n = len(pairs)
	}
	for i := 0; i < n; i++ {
		if enc, ok := d.freq[pairs[i].Value]; ok {
			return enc, true
		}
	}
	return EncodingUnknown, false
}
