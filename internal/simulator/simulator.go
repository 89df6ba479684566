// Package simulator deals large batches of random five-card hands and
// tallies how often each rank occurs. Classification is referentially
// transparent over a hand's contents, so workers share the rank catalog
// without synchronization.
package simulator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/KelvinUbaechu/PokerProject/internal/analysis"
	"github.com/KelvinUbaechu/PokerProject/internal/deck"
	"github.com/KelvinUbaechu/PokerProject/internal/randutil"
	"github.com/KelvinUbaechu/PokerProject/internal/rank"
)

// Config controls a simulation run
type Config struct {
	Hands   int
	Workers int
	Seed    int64
	Logger  zerolog.Logger
}

// Results aggregates rank counts across all workers
type Results struct {
	Total   int
	Counts  map[string]int
	Elapsed time.Duration
}

// Frequency returns the observed frequency of the named rank
func (r *Results) Frequency(name string) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Counts[name]) / float64(r.Total)
}

// Simulator deals and classifies random hands in parallel
type Simulator struct {
	cfg Config
}

// New creates a simulator. Workers defaults to 1 when unset.
func New(cfg Config) (*Simulator, error) {
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", cfg.Hands)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Simulator{cfg: cfg}, nil
}

// Run deals cfg.Hands random hands across cfg.Workers goroutines and
// returns the aggregated rank counts. Deterministic for a fixed seed and
// worker count: each worker derives its own seed and hand quota.
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	start := time.Now()

	var (
		mu     sync.Mutex
		counts = make(map[string]int)
	)

	grp, ctx := errgroup.WithContext(ctx)
	for worker := range s.cfg.Workers {
		quota := s.cfg.Hands / s.cfg.Workers
		if worker < s.cfg.Hands%s.cfg.Workers {
			quota++
		}
		if quota == 0 {
			continue
		}

		seed := randutil.Derive(s.cfg.Seed, worker)
		grp.Go(func() error {
			local, err := dealAndClassify(ctx, seed, quota)
			if err != nil {
				return err
			}
			mu.Lock()
			for name, count := range local {
				counts[name] += count
			}
			mu.Unlock()
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	results := &Results{
		Total:   s.cfg.Hands,
		Counts:  counts,
		Elapsed: time.Since(start),
	}

	s.cfg.Logger.Info().
		Int("hands", results.Total).
		Int("workers", s.cfg.Workers).
		Dur("elapsed", results.Elapsed).
		Msg("Simulation complete")
	for name, count := range counts {
		s.cfg.Logger.Debug().
			Str("rank", name).
			Int("count", count).
			Float64("frequency", results.Frequency(name)).
			Msg("Rank tally")
	}

	return results, nil
}

func dealAndClassify(ctx context.Context, seed int64, hands int) (map[string]int, error) {
	counts := make(map[string]int)
	d := deck.New(randutil.New(seed))

	for i := range hands {
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		d.Reset()
		hand := analysis.NewHand(d.DealN(rank.RequiredHandSize)...)
		counts[rank.Classify(hand).Name]++
	}
	return counts, nil
}
