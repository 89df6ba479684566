package game

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/KelvinUbaechu/PokerProject/internal/deck"
)

// PromptFunc asks a human which cards to discard
type PromptFunc func(hand []deck.Card, maxDiscards int) ([]deck.Card, error)

// HumanAgent drives a seat through an interactive prompt. If the prompt
// errors or the turn timer fires first, the fallback strategy discards
// instead so a stalled player cannot hang the round.
type HumanAgent struct {
	prompt   PromptFunc
	fallback Discarder
	clock    quartz.Clock
	timeout  time.Duration
	logger   *log.Logger
}

// NewHumanAgent creates a human agent. A timeout of zero disables the turn
// timer.
func NewHumanAgent(prompt PromptFunc, fallback Discarder, clock quartz.Clock, timeout time.Duration, logger *log.Logger) *HumanAgent {
	return &HumanAgent{
		prompt:   prompt,
		fallback: fallback,
		clock:    clock,
		timeout:  timeout,
		logger:   logger,
	}
}

type promptResult struct {
	discards []deck.Card
	err      error
}

// SelectDiscards runs the prompt, racing it against the turn timer
func (a *HumanAgent) SelectDiscards(hand []deck.Card, maxDiscards int) []deck.Card {
	results := make(chan promptResult, 1)
	go func() {
		discards, err := a.prompt(hand, maxDiscards)
		results <- promptResult{discards: discards, err: err}
	}()

	var timedOut chan struct{}
	if a.timeout > 0 {
		timedOut = make(chan struct{})
		timer := a.clock.AfterFunc(a.timeout, func() {
			close(timedOut)
		})
		defer timer.Stop()
	}

	select {
	case result := <-results:
		if result.err != nil {
			a.logger.Warn("Discard prompt failed, using fallback strategy", "err", result.err)
			return a.fallbackDiscards(hand, maxDiscards)
		}
		if len(result.discards) > maxDiscards {
			result.discards = result.discards[:maxDiscards]
		}
		return result.discards
	case <-timedOut:
		a.logger.Warn("Turn timed out, using fallback strategy", "timeout", a.timeout)
		return a.fallbackDiscards(hand, maxDiscards)
	}
}

func (a *HumanAgent) fallbackDiscards(hand []deck.Card, maxDiscards int) []deck.Card {
	d := a.fallback
	if maxDiscards < d.MaxDiscards {
		d.MaxDiscards = maxDiscards
	}
	return d.Discards(hand)
}
