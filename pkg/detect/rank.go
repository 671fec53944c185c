package detect

import "sort"

// ByteCount is the occurrence count of one byte value. All 256 values are
// always present, zero-initialized.
type ByteCount struct {
	Value byte
	Count int
}

// PairCount is the occurrence count of one double-byte value. Sparse: only
// pairs that occurred are present.
type PairCount struct {
	Value uint16
	Count int
}

// rankBytes materializes per-byte counts in descending count order. The base
// sequence is value-ordered and the sort is stable, so equal counts tie-break
// by ascending byte value.
func rankBytes(cnt *[256]int) []ByteCount {
	out := make([]ByteCount, 256)
	for i := range out {
		out[i] = ByteCount{Value: byte(i), Count: cnt[i]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// rankPairs materializes the pair map in descending count order, ties broken
// by ascending pair value.
func rankPairs(cnt map[uint16]int) []PairCount {
	out := make([]PairCount, 0, len(cnt))
	for v, c := range cnt {
		out = append(out, PairCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
