package application

import (
	"log/slog"
	"math/rand/v2"

	"github.com/luca-patrignani/contract-bridge/domain/deck"
)

type config struct {
	dealer    int
	hasDealer bool
	aces      deck.AceRanking
	logger    *slog.Logger
	rng       *rand.Rand
}

// Option configures a Table.
type Option func(config) config

// WithDealer fixes the dealer seat (0..3). Without it the dealer is drawn
// at random.
func WithDealer(dealer int) Option {
	return func(c config) config {
		c.dealer = dealer
		c.hasDealer = true
		return c
	}
}

// WithAceRanking sets the rank order used when resolving tricks. Bridge
// plays aces high, the default.
func WithAceRanking(aces deck.AceRanking) Option {
	return func(c config) config {
		c.aces = aces
		return c
	}
}

// WithLogger sets the logger that records accepted and rejected calls.
func WithLogger(logger *slog.Logger) Option {
	return func(c config) config {
		c.logger = logger
		return c
	}
}

// WithRand sets the generator used to pick the dealer and shuffle the deck.
func WithRand(r *rand.Rand) Option {
	return func(c config) config {
		c.rng = r
		return c
	}
}
