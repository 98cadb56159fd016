package main

import (
	"slices"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/contract-bridge/application"
	"github.com/luca-patrignani/contract-bridge/domain/bridge"
	"github.com/luca-patrignani/contract-bridge/domain/deck"
)

// playerName falls back to the seat number for seats nobody sits at.
func playerName(t *application.Table, seat bridge.Seat) string {
	if name, ok := t.Player(seat); ok {
		return name
	}
	return seat.String()
}

// auctionGrid lays the calls out one column per seat, with the dealer's
// first call in its own column.
func auctionGrid(players [bridge.Players]string, dealer bridge.Seat, calls []bridge.Call) [][]string {
	grid := [][]string{players[:]}
	row := make([]string, bridge.Players)
	col := int(dealer)
	for _, c := range calls {
		row[col] = c.String()
		col++
		if col == bridge.Players {
			grid = append(grid, row)
			row = make([]string, bridge.Players)
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, row)
	}
	return grid
}

func renderAuction(t *application.Table) {
	grid := auctionGrid(t.Players(), t.Dealer(), t.Auction())
	s, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(grid).Srender()
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Println(s)
}

func contractPanel(t *application.Table) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	c, ok := t.Contract()
	var info string
	switch {
	case !ok:
		info = pterm.Sprintfln("Auction still open, %s to call", pterm.LightCyan(playerName(t, t.Turn())))
	case c.IsNoContract():
		info = pterm.Sprintfln("%s", c)
	default:
		info = pterm.Sprintfln("%s by %s", pterm.LightGreen(c.String()), pterm.LightCyan(playerName(t, c.Declarer())))
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|CONTRACT|")).WithTitleTopCenter().Sprint(info)}
}

// handLines returns one line per suit, spades first, ranks high to low.
func handLines(cards []deck.Card, aces deck.AceRanking) []string {
	suits := deck.Suits()
	lines := make([]string, 0, len(suits))
	for i := len(suits) - 1; i >= 0; i-- {
		s := suits[i]
		var ranks []deck.Rank
		for _, c := range cards {
			if c.Suit() == s {
				ranks = append(ranks, c.Rank())
			}
		}
		slices.SortFunc(ranks, func(a, b deck.Rank) int {
			return aces.Value(b) - aces.Value(a)
		})
		line := s.Symbol()
		for _, r := range ranks {
			line += " " + r.String()
		}
		if s.Red() {
			line = pterm.LightRed(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func handPanel(name string, cards []deck.Card, aces deck.AceRanking) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: pbox.WithTitle(name).WithTitleTopLeft().Sprint(strings.Join(handLines(cards, aces), "\n"))}
}

func printState(t *application.Table, hands [bridge.Players][]deck.Card) {
	var panels []pterm.Panel
	for seat, hand := range hands {
		panels = append(panels, handPanel(playerName(t, bridge.Seat(seat)), hand, t.AceRanking()))
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		panels,
		{contractPanel(t)},
	}).Render()
}
