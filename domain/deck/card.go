package deck

import (
	"fmt"
	"strings"

	"github.com/paulhankin/poker"
)

// Suit of a card. The numeric order matches the bridge suit order
// (clubs, diamonds, hearts, spades).
type Suit uint8

const (
	Clubs    Suit = iota // ♣
	Diamonds             // ♦
	Hearts               // ♥
	Spades               // ♠
)

// Suits returns the four suits from lowest to highest.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// Symbol returns the unicode glyph of the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Rank is the face value of a card: Ace=1, 2-10, Jack=11, Queen=12, King=13.
// How an ace compares to the other ranks depends on the AceRanking in effect.
type Rank uint8

// Card rank constants for face cards and ace
const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", uint8(r))
	}
}

// AceRanking fixes where the ace sits in the rank order. It is chosen once
// per rules context and passed explicitly to whatever compares ranks.
type AceRanking uint8

const (
	AceHigh AceRanking = iota
	AceLow
)

func (a AceRanking) String() string {
	if a == AceLow {
		return "ace-low"
	}
	return "ace-high"
}

// Value maps a rank onto its position in the total order: 1..13 when aces
// are low, 2..14 when aces are high.
func (a AceRanking) Value(r Rank) int {
	if r == Ace && a == AceHigh {
		return 14
	}
	return int(r)
}

// Less reports whether x ranks below y.
func (a AceRanking) Less(x, y Rank) bool {
	return a.Value(x) < a.Value(y)
}

// Ranks returns the thirteen ranks from lowest to highest.
func (a AceRanking) Ranks() []Rank {
	ranks := make([]Rank, 0, 13)
	if a == AceLow {
		ranks = append(ranks, Ace)
	}
	for r := Rank(2); r <= King; r++ {
		ranks = append(ranks, r)
	}
	if a == AceHigh {
		ranks = append(ranks, Ace)
	}
	return ranks
}

// Card represents a playing card. It is stored in the compact poker
// encoding, which carries both suit and rank; the zero Card is not a card.
type Card struct {
	code poker.Card
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Clubs, Diamonds, Hearts or Spades
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	code, err := poker.MakeCard(poker.Suit(suit), poker.Rank(rank))
	if err != nil {
		return Card{}, fmt.Errorf("invalid card: %w", err)
	}
	return Card{code: code}, nil
}

// MustCard is like NewCard but panics on invalid input. Intended for
// fixed tables and tests.
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard reads a card name: the suit letter followed by the rank, e.g.
// "HA", "c8", "ST" or "D10". Case is ignored.
func ParseCard(name string) (Card, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if len(key) == 3 && key[1:] == "10" {
		key = key[:1] + "T"
	}
	code, ok := poker.NameToCard[key]
	if !ok {
		return Card{}, fmt.Errorf("unknown card %q", name)
	}
	return Card{code: code}, nil
}

// Valid reports whether c is one of the 52 cards.
func (c Card) Valid() bool {
	return c.code.Valid()
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return Suit(c.code.Suit())
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return Rank(c.code.Rank())
}

// Code returns the compact 52-card encoding of the card. Two cards are the
// same physical card exactly when their codes are equal.
func (c Card) Code() poker.Card {
	return c.code
}

// String returns the rank abbreviation followed by the suit symbol, e.g. "A♠".
func (c Card) String() string {
	return c.Rank().String() + c.Suit().Symbol()
}
