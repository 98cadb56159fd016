package deck

import "testing"

func TestNewCardValidation(t *testing.T) {
	tests := []struct {
		name    string
		suit    Suit
		rank    Rank
		wantErr bool
	}{
		{name: "ace of spades", suit: Spades, rank: Ace},
		{name: "two of clubs", suit: Clubs, rank: 2},
		{name: "king of hearts", suit: Hearts, rank: King},
		{name: "rank zero", suit: Clubs, rank: 0, wantErr: true},
		{name: "rank fourteen", suit: Clubs, rank: 14, wantErr: true},
		{name: "unknown suit", suit: Suit(4), rank: 5, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCard(tt.suit, tt.rank)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %d, %d", tt.suit, tt.rank)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Suit() != tt.suit || c.Rank() != tt.rank {
				t.Fatalf("expected %d/%d, got %d/%d", tt.suit, tt.rank, c.Suit(), c.Rank())
			}
		})
	}
}

func TestCardString(t *testing.T) {
	if got := MustCard(Hearts, Ace).String(); got != "A♥" {
		t.Fatalf("expected A♥, got %s", got)
	}
	if got := MustCard(Clubs, Jack).String(); got != "J♣" {
		t.Fatalf("expected J♣, got %s", got)
	}
	if got := MustCard(Diamonds, 10).String(); got != "10♦" {
		t.Fatalf("expected 10♦, got %s", got)
	}
}

func TestCardCodeIdentity(t *testing.T) {
	a := MustCard(Spades, Queen)
	b := MustCard(Spades, Queen)
	c := MustCard(Hearts, Queen)
	if a.Code() != b.Code() {
		t.Fatalf("same card should share a code")
	}
	if a.Code() == c.Code() {
		t.Fatalf("different cards should not share a code")
	}
}

func TestAceRanking(t *testing.T) {
	if !AceHigh.Less(King, Ace) {
		t.Fatalf("ace-high: king should rank below ace")
	}
	if !AceLow.Less(Ace, 2) {
		t.Fatalf("ace-low: ace should rank below two")
	}
	high := AceHigh.Ranks()
	if len(high) != 13 || high[0] != 2 || high[12] != Ace {
		t.Fatalf("unexpected ace-high order %v", high)
	}
	low := AceLow.Ranks()
	if len(low) != 13 || low[0] != Ace || low[12] != King {
		t.Fatalf("unexpected ace-low order %v", low)
	}
	for i := 1; i < len(high); i++ {
		if !AceHigh.Less(high[i-1], high[i]) {
			t.Fatalf("ace-high ranks not increasing at %d", i)
		}
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		name    string
		want    Card
		wantErr bool
	}{
		{name: "HA", want: MustCard(Hearts, Ace)},
		{name: "c8", want: MustCard(Clubs, 8)},
		{name: "ST", want: MustCard(Spades, 10)},
		{name: "D10", want: MustCard(Diamonds, 10)},
		{name: " sk ", want: MustCard(Spades, King)},
		{name: "AH", wantErr: true},
		{name: "X5", wantErr: true},
		{name: "H1", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCard(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %s", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, c)
			}
		})
	}
}

func TestCardFromCode(t *testing.T) {
	for _, s := range Suits() {
		for _, r := range AceHigh.Ranks() {
			c := MustCard(s, r)
			if !c.Valid() {
				t.Fatalf("%s should be valid", c)
			}
			if c.Suit() != s || c.Rank() != r {
				t.Fatalf("expected %d/%d, got %d/%d", s, r, c.Suit(), c.Rank())
			}
			if int(c.Code().Suit()) != int(s) || int(c.Code().Rank()) != int(r) {
				t.Fatalf("code %v does not encode %s", c.Code(), c)
			}
		}
	}
	if (Card{}).Valid() {
		t.Fatalf("the zero card should not be valid")
	}
}
