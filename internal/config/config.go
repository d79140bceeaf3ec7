package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/ZygmuntJakub/pinochle/internal/engine"
)

// GameConfig holds house rules read from a JSON file. Omitted fields keep
// the engine defaults, and so do fields set to 0: "last_trick_bonus": 0 or
// "min_meld": 0 cannot turn those rules off.
type GameConfig struct {
	MinBid          int `json:"min_bid"`
	RaiseByFiveFrom int `json:"raise_by_five_from"`
	LargeRaise      int `json:"large_raise"`
	MinMeld         int `json:"min_meld"`
	// MinTricks makes a team score nothing for a hand unless it takes at
	// least this many trick points. Zero disables the rule.
	MinTricks      int `json:"min_tricks"`
	LastTrickBonus int `json:"last_trick_bonus"`
	WinningScore   int `json:"winning_score"`
	DealPacket     int `json:"deal_packet"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Load reads and validates a game configuration file.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return &c, nil
}

// LoadGameConfig loads the process wide game configuration from the given
// path. Only the first call reads the file.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg, loadErr = Load(path)
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, nil if not loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// Validate rejects values the engine cannot play with, using the same
// rules as NewGame.
func (c *GameConfig) Validate() error {
	return c.Params().Validate()
}

// Params converts the configuration into engine rules. A nil config yields
// the defaults.
func (c *GameConfig) Params() engine.GameParams {
	if c == nil {
		return engine.DefaultParams()
	}
	return engine.GameParams{
		MinBid:          c.MinBid,
		RaiseByFiveFrom: c.RaiseByFiveFrom,
		LargeRaise:      c.LargeRaise,
		MinMeld:         c.MinMeld,
		MinTricks:       c.MinTricks,
		LastTrickBonus:  c.LastTrickBonus,
		WinningScore:    c.WinningScore,
		DealPacket:      c.DealPacket,
	}
}
