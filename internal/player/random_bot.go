package player

import (
	"math/rand/v2"
	"strconv"

	"github.com/ZygmuntJakub/pinochle/internal/engine"
)

// RandomBot picks uniformly among the options it is offered.
type RandomBot struct {
	BotName string
	rng     *rand.Rand
}

func (b *RandomBot) Name() string {
	if b.BotName == "" {
		b.BotName = "RandomBot_" + strconv.Itoa(b.rng.IntN(100))
	}
	return b.BotName
}

func (b *RandomBot) MakeBidDecision(hand []engine.Card, legalBids []int) (int, error) {
	return legalBids[b.rng.IntN(len(legalBids))], nil
}

func (b *RandomBot) ChooseTrump(hand []engine.Card) (engine.Suit, error) {
	return engine.Suits[b.rng.IntN(len(engine.Suits))], nil
}

func (b *RandomBot) PlayCard(hand []engine.Card, legal []engine.Card, trick [engine.Seats]*engine.Card) (engine.Card, error) {
	return legal[b.rng.IntN(len(legal))], nil
}

// NewRandomBot returns a bot drawing from rng. A nil rng uses a randomly
// seeded source.
func NewRandomBot(rng *rand.Rand) Player {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomBot{rng: rng}
}

// RandomBotFactory returns a factory whose bots all draw from rng.
func RandomBotFactory(rng *rand.Rand) PlayerFactory {
	return func() Player { return NewRandomBot(rng) }
}
