package bridge

import (
	"errors"
	"slices"
	"testing"

	"github.com/luca-patrignani/contract-bridge/domain/deck"
)

func TestStrainOrdering(t *testing.T) {
	shuffled := []Strain{NoTrump, Hearts, Clubs, Spades, Diamonds}
	slices.SortStableFunc(shuffled, Strain.Compare)
	if !slices.Equal(shuffled, Strains()) {
		t.Fatalf("sorted strains = %v, want %v", shuffled, Strains())
	}
	names := make([]string, 0, len(shuffled))
	for _, s := range shuffled {
		names = append(names, s.String())
	}
	want := []string{"Clubs", "Diamonds", "Hearts", "Spades", "No Trump"}
	if !slices.Equal(names, want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	all := Strains()
	for i := range all {
		for j := range all {
			if got, want := all[i].Less(all[j]), i < j; got != want {
				t.Fatalf("%s < %s = %v, want %v", all[i], all[j], got, want)
			}
		}
	}
}

func TestCompareAbbrev(t *testing.T) {
	c, err := Clubs.CompareAbbrev("H")
	if err != nil {
		t.Fatal(err)
	}
	if c >= 0 {
		t.Fatalf("Clubs should rank below H, got %d", c)
	}
	c, err = NoTrump.CompareAbbrev("nt")
	if err != nil {
		t.Fatal(err)
	}
	if c != 0 {
		t.Fatalf("NoTrump should equal nt, got %d", c)
	}
	_, err = Spades.CompareAbbrev("Q")
	var lookup *LookupError
	if !errors.As(err, &lookup) {
		t.Fatalf("expected LookupError, got %v", err)
	}
	if lookup.Abbrev != "Q" {
		t.Fatalf("unexpected abbreviation %q", lookup.Abbrev)
	}
}

func TestParseStrain(t *testing.T) {
	tests := map[string]Strain{
		"C": Clubs, "c": Clubs, "Clubs": Clubs,
		"D": Diamonds, "d": Diamonds, "Diamonds": Diamonds,
		"H": Hearts, "h": Hearts, "Hearts": Hearts,
		"S": Spades, "s": Spades, "Spades": Spades,
		"N": NoTrump, "n": NoTrump, "NT": NoTrump, "nt": NoTrump, "No Trump": NoTrump,
	}
	for abbrev, want := range tests {
		got, err := ParseStrain(abbrev)
		if err != nil {
			t.Fatalf("ParseStrain(%q): %v", abbrev, err)
		}
		if got != want {
			t.Fatalf("ParseStrain(%q) = %s, want %s", abbrev, got, want)
		}
	}
	if _, err := ParseStrain("x"); err == nil {
		t.Fatal("expected error for unknown abbreviation")
	}
}

func TestStrainSuit(t *testing.T) {
	for _, s := range deck.Suits() {
		strain := StrainOf(s)
		got, ok := strain.Suit()
		if !ok || got != s {
			t.Fatalf("StrainOf(%s).Suit() = %s, %v", s, got, ok)
		}
	}
	if _, ok := NoTrump.Suit(); ok {
		t.Fatal("NoTrump should have no suit")
	}
}

func TestBidOrdering(t *testing.T) {
	tests := []struct {
		a, b Bid
		want int
	}{
		{MustBid(7, Hearts), MustBid(6, Hearts), 1},
		{MustBid(2, Spades), MustBid(2, NoTrump), -1},
		{MustBid(2, Spades), MustBid(1, NoTrump), 1},
		{MustBid(2, Clubs), MustBid(2, Clubs), 0},
		{MustBid(3, Clubs), MustBid(3, Diamonds), -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%s vs %s = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	for la := MinLevel; la <= MaxLevel; la++ {
		for _, sa := range Strains() {
			for lb := MinLevel; lb <= MaxLevel; lb++ {
				for _, sb := range Strains() {
					a, b := MustBid(la, sa), MustBid(lb, sb)
					want := la < lb || (la == lb && sa.Less(sb))
					if a.Less(b) != want {
						t.Fatalf("%s < %s = %v, want %v", a, b, a.Less(b), want)
					}
				}
			}
		}
	}
}

func TestNewBidValidation(t *testing.T) {
	var fe *FormatError
	if _, err := NewBid(0, Hearts); !errors.As(err, &fe) || fe.Reason != "invalid level" {
		t.Fatalf("expected invalid level, got %v", err)
	}
	if _, err := NewBid(8, Hearts); !errors.As(err, &fe) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if _, err := NewBid(1, Strain(9)); !errors.As(err, &fe) || fe.Reason != "unrecognized strain" {
		t.Fatalf("expected unrecognized strain, got %v", err)
	}
}

func TestCompareOutOfRangeStrain(t *testing.T) {
	bogus := Strain(9)
	for _, s := range Strains() {
		if got := bogus.Compare(s); got != -1 {
			t.Fatalf("Strain(9).Compare(%s) = %d, want -1", s, got)
		}
		if got := s.Compare(bogus); got != 1 {
			t.Fatalf("%s.Compare(Strain(9)) = %d, want 1", s, got)
		}
	}
	if got := bogus.Compare(Strain(200)); got != 0 {
		t.Fatalf("two unknown strains should compare equal, got %d", got)
	}
}

func TestBuildStrainIndex(t *testing.T) {
	index, err := buildStrainIndex(strainTable[:])
	if err != nil {
		t.Fatalf("the strain table should be consistent: %v", err)
	}
	if index["No Trump"] != NoTrump || index["h"] != Hearts {
		t.Fatalf("unexpected index %v", index)
	}

	tests := []struct {
		name  string
		table []strainInfo
	}{
		{
			name: "equal magnitude different suit",
			table: []strainInfo{
				{magnitude: 0, suit: deck.Clubs, trumps: true, name: "Clubs", abbrevs: []string{"C"}},
				{magnitude: 0, suit: deck.Hearts, trumps: true, name: "Hearts", abbrevs: []string{"H"}},
			},
		},
		{
			name: "equal magnitude suit and no trump",
			table: []strainInfo{
				{magnitude: 3, suit: deck.Spades, trumps: true, name: "Spades", abbrevs: []string{"S"}},
				{magnitude: 3, name: "No Trump", abbrevs: []string{"NT"}},
			},
		},
		{
			name: "abbreviation names two strains",
			table: []strainInfo{
				{magnitude: 0, suit: deck.Clubs, trumps: true, name: "Clubs", abbrevs: []string{"C"}},
				{magnitude: 1, suit: deck.Diamonds, trumps: true, name: "Diamonds", abbrevs: []string{"D", "C"}},
			},
		},
		{
			name: "abbreviation clashes with a name",
			table: []strainInfo{
				{magnitude: 0, suit: deck.Clubs, trumps: true, name: "Clubs", abbrevs: []string{"C"}},
				{magnitude: 1, suit: deck.Diamonds, trumps: true, name: "Diamonds", abbrevs: []string{"Clubs"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildStrainIndex(tt.table); err == nil {
				t.Fatalf("expected the table to be rejected")
			}
			defer func() {
				if recover() == nil {
					t.Fatalf("mustStrainIndex should panic on a broken table")
				}
			}()
			mustStrainIndex(tt.table)
		})
	}
}
