package player

import "github.com/ZygmuntJakub/pinochle/internal/engine"

// Player makes the decisions for one seat. Every call receives a copy of the
// seat's hand and the options the engine accepts.
type Player interface {
	Name() string
	// MakeBidDecision returns one of legalBids; 0 passes.
	MakeBidDecision(hand []engine.Card, legalBids []int) (int, error)
	ChooseTrump(hand []engine.Card) (engine.Suit, error)
	PlayCard(hand []engine.Card, legal []engine.Card, trick [engine.Seats]*engine.Card) (engine.Card, error)
}

type PlayerFactory func() Player
