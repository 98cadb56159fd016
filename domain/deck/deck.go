package deck

import (
	"errors"
	"fmt"

	"github.com/paulhankin/poker"
)

// ErrEmptyDeck is returned when more cards are requested than remain.
var ErrEmptyDeck = errors.New("deck: not enough cards")

// Deck is an ordered pile of cards. Cards are taken from the top, which is
// the end of the underlying slice.
//
// A Deck is not safe for concurrent use; callers own it and serialize draws.
type Deck struct {
	cards []Card
}

// NewStandard returns the 52-card deck ordered suit by suit (clubs first)
// and, within a suit, from the lowest to the highest rank under aces.
// The top card is therefore the highest spade.
func NewStandard(aces AceRanking) *Deck {
	cards := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range aces.Ranks() {
			cards = append(cards, MustCard(s, r))
		}
	}
	return &Deck{cards: cards}
}

// New builds a deck from the given cards, the last one being on top.
// The same physical card may not appear twice.
func New(cards ...Card) (*Deck, error) {
	seen := make(map[poker.Card]struct{}, len(cards))
	for i, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("card %d is not initialized", i)
		}
		if _, ok := seen[c.Code()]; ok {
			return nil, fmt.Errorf("duplicate card %s", c)
		}
		seen[c.Code()] = struct{}{}
	}
	return &Deck{cards: append([]Card(nil), cards...)}, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Pick removes and returns the top card.
func (d *Deck) Pick() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// PickN removes and returns the top n cards in deck order. When fewer than n
// cards remain nothing is removed. n <= 0 yields an empty slice.
func (d *Deck) PickN(n int) ([]Card, error) {
	if n <= 0 {
		return []Card{}, nil
	}
	if len(d.cards) < n {
		return nil, fmt.Errorf("tried to take %d cards, %d remaining: %w", n, len(d.cards), ErrEmptyDeck)
	}
	cut := len(d.cards) - n
	picked := append([]Card(nil), d.cards[cut:]...)
	d.cards = d.cards[:cut]
	return picked, nil
}
