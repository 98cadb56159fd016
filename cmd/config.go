package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/luca-patrignani/contract-bridge/application"
	"github.com/luca-patrignani/contract-bridge/domain/bridge"
	"github.com/luca-patrignani/contract-bridge/domain/deck"
)

const (
	envPlayers = "BRIDGE_PLAYERS"
	envDealer  = "BRIDGE_DEALER"
	envAces    = "BRIDGE_ACES"
)

var defaultPlayers = []string{"North", "East", "South", "West"}

type tableConfig struct {
	players []string
	dealer  int
	random  bool
	aces    deck.AceRanking
}

// loadConfig reads the table settings through getenv. Unset variables fall
// back to the default players, a random dealer and aces high.
func loadConfig(getenv func(string) string) (tableConfig, error) {
	cfg := tableConfig{players: defaultPlayers, random: true, aces: deck.AceHigh}
	var errs []error

	if v := strings.TrimSpace(getenv(envPlayers)); v != "" {
		names := strings.Split(v, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		if len(names) != bridge.Players {
			errs = append(errs, fmt.Errorf("%s: need %d names, got %d", envPlayers, bridge.Players, len(names)))
		} else {
			cfg.players = names
		}
	}

	if v := strings.TrimSpace(getenv(envDealer)); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || !bridge.Seat(d).Valid() {
			errs = append(errs, fmt.Errorf("%s: %q is not a seat between 0 and 3", envDealer, v))
		} else {
			cfg.dealer = d
			cfg.random = false
		}
	}

	switch v := strings.ToLower(strings.TrimSpace(getenv(envAces))); v {
	case "", "high":
	case "low":
		cfg.aces = deck.AceLow
	default:
		errs = append(errs, fmt.Errorf("%s: %q is neither high nor low", envAces, v))
	}

	return cfg, errors.Join(errs...)
}

func (c tableConfig) options(logger *slog.Logger) []application.Option {
	opts := []application.Option{
		application.WithAceRanking(c.aces),
		application.WithLogger(logger),
	}
	if !c.random {
		opts = append(opts, application.WithDealer(c.dealer))
	}
	return opts
}
