package main

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/contract-bridge/domain/bridge"
	"github.com/luca-patrignani/contract-bridge/domain/deck"
)

const playKeyword = "play"

// splitArgs separates call tokens from the card names given after "play".
func splitArgs(args []string) (calls, cards []string) {
	fields := strings.Fields(strings.Join(args, " "))
	for i, f := range fields {
		if strings.EqualFold(f, playKeyword) {
			return fields[:i], fields[i+1:]
		}
	}
	return fields, nil
}

// parseTrick reads four card names, e.g. "HK HA S2 H3", in play order.
func parseTrick(names []string) ([bridge.Players]deck.Card, error) {
	var cards [bridge.Players]deck.Card
	if len(names) != bridge.Players {
		return cards, fmt.Errorf("a trick needs %d cards, got %d", bridge.Players, len(names))
	}
	for i, name := range names {
		c, err := deck.ParseCard(name)
		if err != nil {
			return cards, err
		}
		for _, prev := range cards[:i] {
			if prev == c {
				return cards, fmt.Errorf("%s played twice", c)
			}
		}
		cards[i] = c
	}
	return cards, nil
}
