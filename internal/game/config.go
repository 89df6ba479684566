package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete game configuration
type Config struct {
	Game    Settings       `hcl:"game,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// Settings contains table-level configuration
type Settings struct {
	Rounds             int   `hcl:"rounds,optional"`
	MaxDiscards        int   `hcl:"max_discards,optional"`
	Seed               int64 `hcl:"seed,optional"`
	TurnTimeoutSeconds int   `hcl:"turn_timeout_seconds,optional"`
}

// PlayerConfig defines one seat
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
}

// Strategies players can be configured with
const (
	StrategyFrequency = "frequency"
	StrategyFlush     = "flush"
	StrategyStraight  = "straight"
	StrategyHuman     = "human"
)

// DefaultConfig returns the classic table: three computer players and one
// human seat, two discard rounds.
func DefaultConfig() *Config {
	return &Config{
		Game: Settings{
			Rounds:             2,
			MaxDiscards:        MaxDiscards,
			TurnTimeoutSeconds: 60,
		},
		Players: []PlayerConfig{
			{Name: "Player 1", Strategy: StrategyFlush},
			{Name: "Player 2", Strategy: StrategyStraight},
			{Name: "Player 3", Strategy: StrategyFrequency},
			{Name: "You", Strategy: StrategyHuman},
		},
	}
}

// LoadConfig loads game configuration from an HCL file, falling back to
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Game.Rounds == 0 {
		config.Game.Rounds = 2
	}
	if config.Game.MaxDiscards == 0 {
		config.Game.MaxDiscards = MaxDiscards
	}
	if config.Game.TurnTimeoutSeconds == 0 {
		config.Game.TurnTimeoutSeconds = 60
	}
	if len(config.Players) == 0 {
		config.Players = DefaultConfig().Players
	}

	return &config, nil
}

// Validate validates the game configuration
func (c *Config) Validate() error {
	if c.Game.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", c.Game.Rounds)
	}
	if c.Game.MaxDiscards < 0 || c.Game.MaxDiscards > HandSize {
		return fmt.Errorf("max_discards must be between 0 and %d, got %d", HandSize, c.Game.MaxDiscards)
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("at least two players must be configured, got %d", len(c.Players))
	}

	// Every player holds a full hand through each deal, plus discards drawn
	// back over the rounds.
	worstCase := len(c.Players) * (HandSize + c.Game.Rounds*c.Game.MaxDiscards)
	if worstCase > 52 {
		return fmt.Errorf("configuration can exhaust the deck: %d players x (%d cards + %d rounds x %d discards) > 52",
			len(c.Players), HandSize, c.Game.Rounds, c.Game.MaxDiscards)
	}

	validStrategies := map[string]bool{
		StrategyFrequency: true,
		StrategyFlush:     true,
		StrategyStraight:  true,
		StrategyHuman:     true,
	}
	humans := 0
	for _, p := range c.Players {
		if !validStrategies[p.Strategy] {
			return fmt.Errorf("player %s: invalid strategy %q", p.Name, p.Strategy)
		}
		if p.Strategy == StrategyHuman {
			humans++
		}
	}
	if humans > 1 {
		return fmt.Errorf("at most one human seat is supported, got %d", humans)
	}

	return nil
}

// StrategyDiscarder returns the discarder for a configured strategy.
// StrategyHuman has no discarder of its own; callers wire a HumanAgent and
// use the returned frequency discarder as its timeout fallback.
func StrategyDiscarder(strategy string) Discarder {
	switch strategy {
	case StrategyFlush:
		return NewFlushDiscarder()
	case StrategyStraight:
		return NewStraightDiscarder()
	default:
		return NewFrequencyDiscarder()
	}
}
