package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/luca-patrignani/contract-bridge/domain/bridge"
	"github.com/luca-patrignani/contract-bridge/domain/deck"
	"github.com/luca-patrignani/contract-bridge/ledger"
)

// HandSize is the number of cards dealt to each player.
const HandSize = 13

var (
	// ErrAuctionClosed is returned for calls made after the auction ended.
	ErrAuctionClosed = errors.New("the auction is over")
	// ErrAuctionOpen is returned when play is attempted before the auction ended.
	ErrAuctionOpen = errors.New("the auction is still open")
	// ErrPassedOut is returned when play is attempted after four passes.
	ErrPassedOut = errors.New("the hand was passed out")
)

// Table runs one deal: it owns the auction log, appends calls the rules
// accept and, once a contract is reached, resolves tricks against it.
//
// A Table is not safe for concurrent use; it is the single writer of its
// auction.
type Table struct {
	players  [bridge.Players]string
	dealer   bridge.Seat
	aces     deck.AceRanking
	rng      *rand.Rand
	logger   *slog.Logger
	auction  *ledger.AuctionLog
	contract *bridge.Contract
}

// NewTable seats exactly four players, player i at seat i.
func NewTable(players []string, opts ...Option) (*Table, error) {
	if len(players) != bridge.Players {
		return nil, fmt.Errorf("%d is the wrong number of players", len(players))
	}
	cfg := config{aces: deck.AceHigh}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = deck.NewRandom()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if !cfg.hasDealer {
		cfg.dealer = cfg.rng.IntN(bridge.Players)
	}
	dealer := bridge.Seat(cfg.dealer)
	if !dealer.Valid() {
		return nil, fmt.Errorf("illegal initial dealer %d", cfg.dealer)
	}

	t := &Table{
		dealer:  dealer,
		aces:    cfg.aces,
		rng:     cfg.rng,
		logger:  cfg.logger.With("dealer", int(dealer)),
		auction: ledger.NewAuctionLog(dealer),
	}
	copy(t.players[:], players)
	return t, nil
}

// Dealer returns the seat that calls first.
func (t *Table) Dealer() bridge.Seat {
	return t.dealer
}

// Player returns the name of the player at seat; ok is false when seat is
// not one of the four seats.
func (t *Table) Player(seat bridge.Seat) (name string, ok bool) {
	if !seat.Valid() {
		return "", false
	}
	return t.players[seat], true
}

// Players returns the player names by seat.
func (t *Table) Players() [bridge.Players]string {
	return t.players
}

// AceRanking returns the rank order used for tricks.
func (t *Table) AceRanking() deck.AceRanking {
	return t.aces
}

// Turn returns the seat due to call next.
func (t *Table) Turn() bridge.Seat {
	return bridge.SeatOf(t.auction.Len(), t.dealer)
}

// Auction returns a copy of the calls made so far.
func (t *Table) Auction() []bridge.Call {
	return t.auction.Calls()
}

// Log exposes the auction log for auditing.
func (t *Table) Log() *ledger.AuctionLog {
	return t.auction
}

// Contract returns the result of the auction; ok is false while the auction
// is still open.
func (t *Table) Contract() (c bridge.Contract, ok bool) {
	if t.contract == nil {
		return bridge.Contract{}, false
	}
	return *t.contract, true
}

// Call parses token and submits it for the player whose turn it is.
func (t *Table) Call(token string) (bridge.Outcome, error) {
	call, err := bridge.ParseCall(token)
	if err != nil {
		t.logger.Warn("unreadable call", "token", token, "error", err)
		return bridge.Outcome{}, err
	}
	return t.Submit(call)
}

// Submit evaluates call against the auction and records it when legal. An
// illegal call leaves the auction untouched; asking again is up to the
// caller.
func (t *Table) Submit(call bridge.Call) (bridge.Outcome, error) {
	if t.contract != nil {
		return bridge.Outcome{}, ErrAuctionClosed
	}
	seat := t.Turn()
	out, err := bridge.Evaluate(t.auction.Calls(), t.dealer, call)
	if err != nil {
		t.logger.Warn("call rejected", "seat", int(seat), "player", t.players[seat], "call", call.String(), "error", err)
		return bridge.Outcome{}, err
	}
	if _, err := t.auction.Append(call); err != nil {
		return bridge.Outcome{}, err
	}
	t.logger.Info("call accepted", "seat", int(seat), "player", t.players[seat], "call", call.String())

	if out.Terminal {
		c := out.Contract
		t.contract = &c
		if c.IsNoContract() {
			t.logger.Info("auction passed out")
		} else {
			t.logger.Info("auction closed", "contract", c.String(), "declarer", t.players[c.Declarer()])
		}
	}
	return out, nil
}

// Deal shuffles a fresh deck and gives each player HandSize cards, starting
// with the player to the dealer's left. Hands are indexed by seat.
func (t *Table) Deal() ([bridge.Players][]deck.Card, error) {
	var hands [bridge.Players][]deck.Card
	d := deck.NewStandard(t.aces)
	d.Shuffle(t.rng)
	seat := t.dealer.Next()
	for range bridge.Players {
		cards, err := d.PickN(HandSize)
		if err != nil {
			return hands, fmt.Errorf("dealing to %s: %w", seat, err)
		}
		hands[seat] = cards
		seat = seat.Next()
	}
	t.logger.Debug("hands dealt", "remaining", d.Len())
	return hands, nil
}

// PlayTrick resolves one trick of the contract. cards are in play order,
// the first one led from leader.
func (t *Table) PlayTrick(cards [bridge.Players]deck.Card, leader bridge.Seat) (bridge.Seat, error) {
	c, ok := t.Contract()
	if !ok {
		return 0, ErrAuctionOpen
	}
	if c.IsNoContract() {
		return 0, ErrPassedOut
	}
	if !leader.Valid() {
		return 0, fmt.Errorf("illegal leader %d", int(leader))
	}
	winner := bridge.EvaluateTrick(cards, leader, c.Trump(), t.aces)
	t.logger.Debug("trick played", "leader", int(leader), "winner", int(winner))
	return winner, nil
}
