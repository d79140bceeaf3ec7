package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZygmuntJakub/pinochle/internal/engine"
)

func TestRunSimulation_Deterministic(t *testing.T) {
	opts := simulationOptions{games: 3, seed: 9, hands: 100}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	params := engine.GameParams{WinningScore: 250}

	first, err := runSimulation(opts, params, logger)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := runSimulation(opts, params, logger)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 games, got %d and %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Scores != b.Scores || a.Hands != b.Hands || a.Winner != b.Winner || a.Trumps != b.Trumps {
			t.Fatalf("game %d differs between runs: %+v vs %+v", i, a, b)
		}
		if a.ID == b.ID {
			t.Fatalf("game ids should be unique")
		}
		total := 0
		for _, n := range a.Trumps {
			total += n
		}
		if total != a.Hands {
			t.Fatalf("game %d: %d trumps for %d hands", i, total, a.Hands)
		}
	}
}

func TestParseSimulationFlags(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr bool
		want    simulationOptions
	}{
		{name: "defaults", want: simulationOptions{games: 10, seed: 1, hands: 200}},
		{
			name: "all flags",
			args: []string{"-games", "4", "-seed", "77", "-hands", "0", "-config", "rules.json", "-v"},
			want: simulationOptions{games: 4, seed: 77, hands: 0, configPath: "rules.json", verbose: true},
		},
		{name: "zero games", args: []string{"-games", "0"}, wantErr: true},
		{name: "negative hands", args: []string{"-hands", "-1"}, wantErr: true},
		{name: "unknown flag", args: []string{"-fast"}, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := parseSimulationFlags(c.args, io.Discard)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != c.want {
				t.Fatalf("options = %+v, want %+v", got, c.want)
			}
		})
	}
}

func TestStartSimulation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte(`{"winning_score": 200}`), 0o600); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if err := StartSimulation([]string{"-games", "2", "-seed", "3", "-config", path}, &stdout, &stderr); err != nil {
		t.Fatalf("simulation: %v", err)
	}
	for _, want := range []string{"hands", "Summary", "wins", "unfinished"} {
		if !strings.Contains(stdout.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, stdout.String())
		}
	}
	if !strings.Contains(stderr.String(), "starting simulation") || !strings.Contains(stderr.String(), "winning_score=200") {
		t.Fatalf("unexpected log output:\n%s", stderr.String())
	}
}
