package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZygmuntJakub/pinochle/internal/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
		check   func(t *testing.T, p engine.GameParams)
	}{
		{
			name: "partial file keeps defaults",
			body: `{"winning_score": 1000, "min_tricks": 20}`,
			check: func(t *testing.T, p engine.GameParams) {
				g := engine.NewGame(p)
				got := g.Params()
				if got.WinningScore != 1000 || got.MinTricks != 20 || got.MinBid != 50 || got.MinMeld != 20 {
					t.Fatalf("params = %+v", got)
				}
			},
		},
		{
			name: "every field",
			body: `{"min_bid": 25, "raise_by_five_from": 30, "large_raise": 10, "min_meld": 10,
				"min_tricks": 5, "last_trick_bonus": 10, "winning_score": 250, "deal_packet": 5}`,
			check: func(t *testing.T, p engine.GameParams) {
				want := engine.GameParams{
					MinBid: 25, RaiseByFiveFrom: 30, LargeRaise: 10, MinMeld: 10,
					MinTricks: 5, LastTrickBonus: 10, WinningScore: 250, DealPacket: 5,
				}
				if p != want {
					t.Fatalf("params = %+v, want %+v", p, want)
				}
			},
		},
		{
			name: "explicit zeros take defaults",
			body: `{"last_trick_bonus": 0, "min_meld": 0, "deal_packet": 0}`,
			check: func(t *testing.T, p engine.GameParams) {
				got := engine.NewGame(p).Params()
				if got.LastTrickBonus != 2 || got.MinMeld != 20 || got.DealPacket != 4 {
					t.Fatalf("params = %+v", got)
				}
			},
		},
		{name: "malformed json", body: `{"min_bid": `, wantErr: true},
		{name: "negative value", body: `{"min_meld": -1}`, wantErr: true},
		{name: "negative deal packet", body: `{"deal_packet": -1}`, wantErr: true},
		{name: "packet larger than a hand", body: `{"deal_packet": 21}`, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, c.body))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			c.check(t, cfg.Params())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestNilConfigParams(t *testing.T) {
	var c *GameConfig
	if c.Params() != engine.DefaultParams() {
		t.Fatalf("nil config should give default params")
	}
}

func TestLoadGameConfigOnce(t *testing.T) {
	first := writeConfig(t, `{"winning_score": 300}`)
	second := writeConfig(t, `{"winning_score": 700}`)
	if err := LoadGameConfig(first); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := LoadGameConfig(second); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got := GetGameConfig().WinningScore; got != 300 {
		t.Fatalf("winning score = %d, want the first file's 300", got)
	}
}
