package bridge

import "github.com/luca-patrignani/contract-bridge/domain/deck"

// Trick is one round of four cards.
type Trick struct {
	// Cards in play order, starting with the card led.
	Cards [Players]deck.Card
	// Leader is the seat that led the first card.
	Leader Seat
	// Trump is the contract strain; nil or NoTrump means no trump suit.
	Trump *Strain
}

// Winner returns the seat that wins the trick under the given ace ranking.
func (t Trick) Winner(aces deck.AceRanking) Seat {
	return EvaluateTrick(t.Cards, t.Leader, t.Trump, aces)
}

// EvaluateTrick determines the winner of a trick. The highest trump wins if
// any trump was played; otherwise the highest card of the suit led wins.
func EvaluateTrick(cards [Players]deck.Card, leader Seat, trump *Strain, aces deck.AceRanking) Seat {
	if trump != nil {
		if suit, ok := trump.Suit(); ok {
			if pos, found := highestOfSuit(cards, suit, aces); found {
				return SeatOf(pos, leader)
			}
		}
	}
	pos, _ := highestOfSuit(cards, cards[0].Suit(), aces)
	return SeatOf(pos, leader)
}

// highestOfSuit returns the position of the highest card of suit.
func highestOfSuit(cards [Players]deck.Card, suit deck.Suit, aces deck.AceRanking) (int, bool) {
	best := -1
	for i, c := range cards {
		if c.Suit() != suit {
			continue
		}
		if best < 0 || aces.Less(cards[best].Rank(), c.Rank()) {
			best = i
		}
	}
	return best, best >= 0
}
