package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/coder/quartz"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
	"github.com/KelvinUbaechu/PokerProject/internal/game"
	"github.com/KelvinUbaechu/PokerProject/internal/randutil"
	"github.com/KelvinUbaechu/PokerProject/internal/rank"
	"github.com/KelvinUbaechu/PokerProject/internal/tui"
)

// PlayCmd runs an interactive game against computer players
type PlayCmd struct {
	Config string `short:"c" default:"game.hcl" help:"Game configuration file (HCL)"`
	Seed   int64  `help:"Seed for the shuffle; 0 uses the current time"`
	Debug  bool   `short:"d" help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	logger := setupLogger(c.Debug)

	cfg, err := game.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	timeout := time.Duration(cfg.Game.TurnTimeoutSeconds) * time.Second
	players := make([]*game.Player, 0, len(cfg.Players))
	for _, pc := range cfg.Players {
		var agent game.Agent
		if pc.Strategy == game.StrategyHuman {
			agent = game.NewHumanAgent(
				tui.SelectDiscards,
				game.StrategyDiscarder(game.StrategyFrequency),
				quartz.NewReal(),
				timeout,
				logger,
			)
		} else {
			agent = game.DiscarderAgent{Discarder: game.StrategyDiscarder(pc.Strategy)}
		}
		players = append(players, game.NewPlayer(pc.Name, agent))
	}

	d := deck.New(randutil.New(seed))
	g, err := game.New(players, d, cfg.Game.Rounds, cfg.Game.MaxDiscards, logger)
	if err != nil {
		return err
	}

	stdin := bufio.NewReader(os.Stdin)
	for {
		result, err := g.Run()
		if err != nil {
			return err
		}
		showResult(g, result)

		fmt.Print("Press ENTER to play again, anything else to quit: ")
		line, err := stdin.ReadString('\n')
		if err != nil || strings.TrimSpace(line) != "" {
			break
		}
		g.Reset()
	}

	fmt.Println("Thanks for playing!")
	return nil
}

func showResult(g *game.Game, result *game.Result) {
	fmt.Println()
	for _, p := range g.Players() {
		handRank := rank.Classify(p.Hand)
		fmt.Printf("%-12s %s  %s\n", p.Name, tui.RenderHand(p.Hand), tui.RankStyle.Render(handRank.Name))
	}

	fmt.Println()
	names := make([]string, len(result.Winners))
	for i, w := range result.Winners {
		names[i] = w.Name
	}
	banner := fmt.Sprintf(" %s wins with a %s ", strings.Join(names, ", "), result.WinningRank.Name)
	fmt.Println(tui.WinnerStyle.Render(banner))
	fmt.Println()
}
