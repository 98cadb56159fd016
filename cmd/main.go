package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/contract-bridge/application"
	"github.com/luca-patrignani/contract-bridge/domain/bridge"
)

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	// .env is optional
	_ = godotenv.Load()

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	table, err := application.NewTable(cfg.players, cfg.options(logger)...)
	if err != nil {
		logger.Error("cannot seat the players", "error", err)
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ridge", pterm.FgDarkGray.ToStyle()),
	).Render()
	pterm.Info.Printfln("%s deals", playerName(table, table.Dealer()))

	calls, trick := splitArgs(os.Args[1:])
	if len(calls) > 0 {
		replay(table, calls)
	} else {
		interactive(table)
	}

	renderAuction(table)
	c, ok := table.Contract()
	if !ok || c.IsNoContract() {
		pterm.DefaultPanel.WithPanels([][]pterm.Panel{{contractPanel(table)}}).Render()
		if len(trick) > 0 {
			pterm.Warning.Println("no contract, the trick is not played")
		}
		return
	}

	spinner, _ := pterm.DefaultSpinner.Start("Dealing the cards ...")
	hands, err := table.Deal()
	if err != nil {
		spinner.Fail(err.Error())
		os.Exit(1)
	}
	spinner.Success()
	printState(table, hands)

	if len(trick) > 0 {
		playTrick(table, c.Declarer().Next(), trick)
	}
}

// playTrick resolves one trick led by leader, the player left of declarer.
func playTrick(table *application.Table, leader bridge.Seat, names []string) {
	cards, err := parseTrick(names)
	if err != nil {
		pterm.Error.Printfln("Invalid trick: %v", err)
		return
	}
	winner, err := table.PlayTrick(cards, leader)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Success.Printfln("%s wins the trick led by %s", playerName(table, winner), playerName(table, leader))
}

// replay submits the given tokens in order.
func replay(table *application.Table, tokens []string) {
	for _, tok := range tokens {
		out, err := table.Call(tok)
		if err != nil {
			pterm.Error.Printfln("%s: %v", tok, err)
			continue
		}
		if out.Terminal {
			return
		}
	}
	if _, ok := table.Contract(); !ok {
		pterm.Warning.Println("the auction was left open")
	}
}

func interactive(table *application.Table) {
	for {
		if _, ok := table.Contract(); ok {
			return
		}
		renderAuction(table)
		prompt := fmt.Sprintf("%s, your call (pass, X, XX or e.g. 1NT)", playerName(table, table.Turn()))
		tok, err := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		pterm.Println()
		if _, err := table.Call(strings.TrimSpace(tok)); err != nil {
			pterm.Error.Printfln("Invalid call: %v", err)
		}
	}
}
