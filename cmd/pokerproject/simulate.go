package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/KelvinUbaechu/PokerProject/internal/rank"
	"github.com/KelvinUbaechu/PokerProject/internal/simulator"
)

// SimulateCmd deals random hands and reports rank frequencies
type SimulateCmd struct {
	Hands   int   `default:"100000" help:"Number of hands to deal"`
	Workers int   `default:"0" help:"Worker goroutines; 0 uses GOMAXPROCS"`
	Seed    int64 `help:"Seed for the deals; 0 uses the current time"`
	Debug   bool  `short:"d" help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := setupStructuredLogger(c.Debug)

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim, err := simulator.New(simulator.Config{
		Hands:   c.Hands,
		Workers: workers,
		Seed:    seed,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	results, err := sim.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("%-16s %10s %12s\n", "rank", "count", "frequency")
	for _, r := range rank.DefaultRanks() {
		fmt.Printf("%-16s %10d %11.5f%%\n",
			r.Name, results.Counts[r.Name], results.Frequency(r.Name)*100)
	}
	return nil
}
