package detect

import "testing"

func TestRankBytes_OrderAndTieBreak(t *testing.T) {
	var cnt [256]int
	cnt['b'] = 3
	cnt['a'] = 3
	cnt['z'] = 5

	ranked := rankBytes(&cnt)
	if len(ranked) != 256 {
		t.Fatalf("len = %d, want 256", len(ranked))
	}
	if ranked[0].Value != 'z' || ranked[0].Count != 5 {
		t.Errorf("rank 0 = %c/%d, want z/5", ranked[0].Value, ranked[0].Count)
	}
	// Equal counts tie-break by ascending byte value.
	if ranked[1].Value != 'a' || ranked[2].Value != 'b' {
		t.Errorf("tie order = %c, %c; want a, b", ranked[1].Value, ranked[2].Value)
	}
	// Zero-count entries follow in value order.
	if ranked[3].Count != 0 || ranked[3].Value != 0x00 {
		t.Errorf("rank 3 = %#02x/%d, want 0x00/0", ranked[3].Value, ranked[3].Count)
	}
}

func TestRankPairs_OrderAndTieBreak(t *testing.T) {
	cnt := map[uint16]int{
		0xB5C4: 2,
		0xA1A1: 2,
		0xD2BB: 7,
	}

	ranked := rankPairs(cnt)
	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	if ranked[0].Value != 0xD2BB {
		t.Errorf("rank 0 = %04x, want d2bb", ranked[0].Value)
	}
	if ranked[1].Value != 0xA1A1 || ranked[2].Value != 0xB5C4 {
		t.Errorf("tie order = %04x, %04x; want a1a1, b5c4", ranked[1].Value, ranked[2].Value)
	}
}

func TestRankPairs_Empty(t *testing.T) {
	if got := rankPairs(map[uint16]int{}); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
