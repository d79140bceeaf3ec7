package player

import (
	"errors"
	"fmt"

	"github.com/ZygmuntJakub/pinochle/internal/engine"
)

// ErrHandLimit is returned by Play when the game is still running after the
// allowed number of hands.
var ErrHandLimit = errors.New("hand limit reached")

// Play drives g with one player per seat until the game is over. maxHands
// bounds the number of hands dealt; zero means no limit. Any rule error from
// a player's choice aborts the game.
func Play(g *engine.Game, seats [engine.Seats]Player, maxHands int) error {
	for hands := 0; g.Phase() != engine.PhaseGameOver; hands++ {
		if maxHands > 0 && hands >= maxHands {
			return ErrHandLimit
		}
		if _, err := g.Deal(); err != nil {
			return err
		}
		if err := playHand(g, seats); err != nil {
			return err
		}
	}
	return nil
}

func playHand(g *engine.Game, seats [engine.Seats]Player) error {
	for {
		seat := g.CurrentSeat()
		switch g.Phase() {
		case engine.PhaseBidding:
			p := seats[seat]
			bid, err := p.MakeBidDecision(g.RemainingCards(seat), g.LegalBids(seat))
			if err != nil {
				return fmt.Errorf("%s bid: %w", p.Name(), err)
			}
			if bid == 0 {
				_, err = g.Pass(seat)
			} else {
				_, err = g.Bid(seat, bid)
			}
			if err != nil {
				return fmt.Errorf("%s bid %d: %w", p.Name(), bid, err)
			}
		case engine.PhaseDeclareTrump:
			p := seats[seat]
			suit, err := p.ChooseTrump(g.RemainingCards(seat))
			if err != nil {
				return fmt.Errorf("%s trump: %w", p.Name(), err)
			}
			if _, err := g.DeclareTrump(seat, suit); err != nil {
				return fmt.Errorf("%s trump %s: %w", p.Name(), suit, err)
			}
		case engine.PhasePlay:
			p := seats[seat]
			card, err := p.PlayCard(g.RemainingCards(seat), g.LegalPlays(seat), g.CurrentTrick())
			if err != nil {
				return fmt.Errorf("%s play: %w", p.Name(), err)
			}
			if _, err := g.PlayCard(seat, card); err != nil {
				return fmt.Errorf("%s play %s: %w", p.Name(), card, err)
			}
		default:
			return nil
		}
	}
}
