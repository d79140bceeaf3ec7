package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
	"github.com/pterm/pterm"

	"github.com/ZygmuntJakub/pinochle/internal/config"
	"github.com/ZygmuntJakub/pinochle/internal/engine"
	"github.com/ZygmuntJakub/pinochle/internal/player"
)

type simulationOptions struct {
	games      int
	seed       uint64
	hands      int
	configPath string
	verbose    bool
}

func parseSimulationFlags(args []string, stderr io.Writer) (simulationOptions, error) {
	var opts simulationOptions
	fs := flag.NewFlagSet("simulation", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.games, "games", 10, "number of games to play")
	fs.Uint64Var(&opts.seed, "seed", 1, "seed for shuffles and bot choices")
	fs.IntVar(&opts.hands, "hands", 200, "hand limit per game, 0 for none")
	fs.StringVar(&opts.configPath, "config", "", "JSON rules file")
	fs.BoolVar(&opts.verbose, "v", false, "log every hand to stderr")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.games <= 0 {
		return opts, fmt.Errorf("games must be positive, got %d", opts.games)
	}
	if opts.hands < 0 {
		return opts, fmt.Errorf("hands must not be negative, got %d", opts.hands)
	}
	return opts, nil
}

type gameSummary struct {
	ID       uuid.UUID
	Hands    int
	Sets     int
	Scores   [2]int
	Winner   engine.Team
	Finished bool
	Trumps   [len(engine.Suits)]int
}

// runSimulation plays opts.games games between random bots. Game i is fully
// determined by the seed and i.
func runSimulation(opts simulationOptions, params engine.GameParams, logger *slog.Logger) ([]gameSummary, error) {
	out := make([]gameSummary, 0, opts.games)
	for i := range opts.games {
		g := engine.NewGame(params,
			engine.WithRand(rand.New(rand.NewPCG(opts.seed, uint64(i)))),
			engine.WithDealer(engine.Seat(i%engine.Seats)),
			engine.WithLogger(logger),
		)
		newBot := player.RandomBotFactory(rand.New(rand.NewPCG(opts.seed+1, uint64(i))))
		var seats [engine.Seats]player.Player
		for s := range seats {
			seats[s] = newBot()
		}

		err := player.Play(g, seats, opts.hands)
		if err != nil && !errors.Is(err, player.ErrHandLimit) {
			return out, fmt.Errorf("game %d: %w", i, err)
		}

		sum := gameSummary{ID: g.ID, Scores: g.Scores()}
		sum.Winner, sum.Finished = g.Winner()
		for _, h := range g.History() {
			sum.Hands++
			sum.Trumps[h.Trump]++
			if h.Teams[h.Bidder.Team()].Set {
				sum.Sets++
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

func suitLabel(s engine.Suit) string {
	if s == engine.Diamonds || s == engine.Hearts {
		return pterm.LightRed(s.String())
	}
	return pterm.Black(s.String())
}

func renderSimulation(w io.Writer, games []gameSummary) error {
	data := pterm.TableData{{"game", "hands", "sets", "team A", "team B", "winner"}}
	var wins [2]int
	var trumps [len(engine.Suits)]int
	unfinished, hands := 0, 0
	for _, g := range games {
		winner := pterm.Gray("none")
		if g.Finished {
			winner = pterm.Green(g.Winner.String())
			wins[g.Winner]++
		} else {
			unfinished++
		}
		hands += g.Hands
		for s, n := range g.Trumps {
			trumps[s] += n
		}
		data = append(data, []string{
			g.ID.String()[:8],
			strconv.Itoa(g.Hands),
			strconv.Itoa(g.Sets),
			strconv.Itoa(g.Scores[engine.TeamA]),
			strconv.Itoa(g.Scores[engine.TeamB]),
			winner,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)

	summary := pterm.TableData{
		{"games", strconv.Itoa(len(games))},
		{engine.TeamA.String() + " wins", strconv.Itoa(wins[engine.TeamA])},
		{engine.TeamB.String() + " wins", strconv.Itoa(wins[engine.TeamB])},
		{"unfinished", strconv.Itoa(unfinished)},
	}
	if len(games) > 0 {
		summary = append(summary, []string{"hands per game", strconv.FormatFloat(float64(hands)/float64(len(games)), 'f', 1, 64)})
	}
	for _, s := range engine.Suits {
		summary = append(summary, []string{suitLabel(s) + " trump", strconv.Itoa(trumps[s])})
	}
	table, err = pterm.DefaultTable.WithData(summary).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, pterm.Bold.Sprint("Summary"))
	fmt.Fprintln(w, table)
	return nil
}

// StartSimulation plays bot games according to args and prints the results
// to stdout. Logs go to stderr.
func StartSimulation(args []string, stdout, stderr io.Writer) error {
	opts, err := parseSimulationFlags(args, stderr)
	if err != nil {
		return err
	}

	params := engine.DefaultParams()
	if opts.configPath != "" {
		if err := config.LoadGameConfig(opts.configPath); err != nil {
			return err
		}
		params = config.GetGameConfig().Params()
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Info("starting simulation", "games", opts.games, "seed", opts.seed, "winning_score", params.WinningScore)

	games, err := runSimulation(opts, params, logger)
	if err != nil {
		return err
	}
	return renderSimulation(stdout, games)
}
