package bridge

import (
	"fmt"
	"slices"

	"github.com/luca-patrignani/contract-bridge/domain/deck"
)

// Strain is the denomination of a bid.
type Strain uint8

const (
	Clubs Strain = iota
	Diamonds
	Hearts
	Spades
	NoTrump
)

type strainInfo struct {
	magnitude int
	suit      deck.Suit
	trumps    bool // false for NoTrump
	name      string
	abbrevs   []string
}

var strainTable = [...]strainInfo{
	Clubs:    {magnitude: 0, suit: deck.Clubs, trumps: true, name: "Clubs", abbrevs: []string{"C", "c"}},
	Diamonds: {magnitude: 1, suit: deck.Diamonds, trumps: true, name: "Diamonds", abbrevs: []string{"D", "d"}},
	Hearts:   {magnitude: 2, suit: deck.Hearts, trumps: true, name: "Hearts", abbrevs: []string{"H", "h"}},
	Spades:   {magnitude: 3, suit: deck.Spades, trumps: true, name: "Spades", abbrevs: []string{"S", "s"}},
	NoTrump:  {magnitude: 4, name: "No Trump", abbrevs: []string{"NT", "nt", "N", "n"}},
}

// strainByAbbrev maps every abbreviation and full name onto its strain.
var strainByAbbrev = mustStrainIndex(strainTable[:])

func mustStrainIndex(table []strainInfo) map[string]Strain {
	index, err := buildStrainIndex(table)
	if err != nil {
		panic("bridge: " + err.Error())
	}
	return index
}

// buildStrainIndex checks a strain table and indexes it. Two strains
// sharing a magnitude must be the same denomination, and no abbreviation may
// name two strains.
func buildStrainIndex(table []strainInfo) (map[string]Strain, error) {
	for i := range table {
		for j := i + 1; j < len(table); j++ {
			a, b := table[i], table[j]
			if a.magnitude == b.magnitude && (a.trumps != b.trumps || a.suit != b.suit) {
				return nil, fmt.Errorf("strains %s and %s share magnitude %d", a.name, b.name, a.magnitude)
			}
		}
	}
	index := make(map[string]Strain)
	for i, info := range table {
		for _, key := range append(slices.Clone(info.abbrevs), info.name) {
			if prev, ok := index[key]; ok && prev != Strain(i) {
				return nil, fmt.Errorf("abbreviation %q names both %s and %s", key, table[prev].name, info.name)
			}
			index[key] = Strain(i)
		}
	}
	return index, nil
}

// Strains returns all strains from lowest to highest.
func Strains() []Strain {
	return []Strain{Clubs, Diamonds, Hearts, Spades, NoTrump}
}

// ParseStrain resolves an abbreviation ("H", "nt", ...) or a full name
// ("Hearts", "No Trump").
func ParseStrain(abbrev string) (Strain, error) {
	s, ok := strainByAbbrev[abbrev]
	if !ok {
		return 0, &LookupError{Abbrev: abbrev}
	}
	return s, nil
}

// StrainOf returns the suit strain for a card suit.
func StrainOf(suit deck.Suit) Strain {
	for i, info := range strainTable {
		if info.trumps && info.suit == suit {
			return Strain(i)
		}
	}
	panic(fmt.Sprintf("bridge: no strain for %s", suit))
}

func (s Strain) valid() bool {
	return int(s) < len(strainTable)
}

// Suit returns the card suit of a suit strain; ok is false for NoTrump.
func (s Strain) Suit() (suit deck.Suit, ok bool) {
	if !s.valid() {
		return 0, false
	}
	info := strainTable[s]
	return info.suit, info.trumps
}

// Abbrev returns the canonical abbreviation: C, D, H, S or NT.
func (s Strain) Abbrev() string {
	if !s.valid() {
		return "?"
	}
	return strainTable[s].abbrevs[0]
}

func (s Strain) String() string {
	if !s.valid() {
		return fmt.Sprintf("Strain(%d)", uint8(s))
	}
	return strainTable[s].name
}

func (s Strain) magnitude() int {
	if !s.valid() {
		return -1
	}
	return strainTable[s].magnitude
}

// Compare returns -1, 0 or +1 as s ranks below, equal to or above o.
// Values outside Clubs..NoTrump rank below every strain.
func (s Strain) Compare(o Strain) int {
	a, b := s.magnitude(), o.magnitude()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether s ranks below o.
func (s Strain) Less(o Strain) bool {
	return s.Compare(o) < 0
}

// CompareAbbrev compares s with the strain named by abbrev.
func (s Strain) CompareAbbrev(abbrev string) (int, error) {
	o, err := ParseStrain(abbrev)
	if err != nil {
		return 0, err
	}
	return s.Compare(o), nil
}
