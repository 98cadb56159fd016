package bridge

import "testing"

func TestSeatOf(t *testing.T) {
	tests := []struct {
		i      int
		dealer Seat
		want   Seat
	}{
		{0, 0, 0},
		{3, 2, 1},
		{7, 3, 2},
		{1, -2, 3},
		{-1, 0, 3},
		{-6, 1, 3},
	}
	for _, tt := range tests {
		if got := SeatOf(tt.i, tt.dealer); got != tt.want {
			t.Fatalf("SeatOf(%d, %d) = %d, want %d", tt.i, tt.dealer, got, tt.want)
		}
	}
}

func TestSeatRotation(t *testing.T) {
	for s := Seat(-4); s < 8; s++ {
		next, partner := s.Next(), s.Partner()
		if !next.Valid() || !partner.Valid() {
			t.Fatalf("seat %d: next %d and partner %d should be valid", s, next, partner)
		}
		if partner.Partner() != SeatOf(int(s), 0) {
			t.Fatalf("seat %d: partner of partner is %d", s, partner.Partner())
		}
		if next.Next() != partner {
			t.Fatalf("seat %d: two to the left should be the partner", s)
		}
	}
}
