package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/ZygmuntJakub/pinochle/internal/deck"
)

// Game runs a four handed partnership pinochle game: dealing, the auction,
// trump, meld, trick play and scoring, hand after hand until a team reaches
// the winning score.
//
// A Game is not safe for concurrent use. Drivers serving several clients
// must serialize calls.
type Game struct {
	ID uuid.UUID

	params GameParams
	deck   *deck.Deck[Card]
	hands  [Seats]*deck.Hand[Card]
	scores [2]int
	dealer Seat

	phase   Phase
	current Seat

	bids         *BidTracker
	trick        *Trick
	seatMeld     [Seats]MeldBreakdown
	meld         [2]int
	tricks       [2]int
	tricksPlayed int

	history   []HandResult
	winner    Team
	hasWinner bool

	log *slog.Logger
	rng *rand.Rand
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the source used to shuffle the deck.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithDealer sets the dealer of the first hand.
func WithDealer(s Seat) Option {
	return func(g *Game) { g.dealer = s }
}

// NewGame creates a game waiting for the first deal. Zero params take
// defaults. It panics if params fail Validate.
func NewGame(params GameParams, opts ...Option) *Game {
	if err := params.Validate(); err != nil {
		panic("engine: " + err.Error())
	}
	g := &Game{
		ID:      uuid.New(),
		params:  params.withDefaults(),
		dealer:  0,
		phase:   PhaseDeal,
		current: NoSeat,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	if !g.dealer.Valid() {
		panic(fmt.Sprintf("engine: invalid dealer %d", g.dealer))
	}
	g.current = g.dealer
	g.log = g.log.With("game_id", g.ID.String())

	d, err := deck.New(NewPinochleDeck(), g.rng)
	if err != nil {
		panic(err)
	}
	g.deck = d
	for i := range g.hands {
		g.hands[i] = deck.NewHand[Card]()
	}
	return g
}

// Deal shuffles the deck and deals HandSize cards to every seat, DealPacket
// at a time, starting left of the dealer.
func (g *Game) Deal() (Turn, error) {
	if g.phase != PhaseDeal {
		return g.turn(), PhaseError("not in deal phase")
	}
	g.deck.Shuffle()
	for _, h := range g.hands {
		h.Clear()
	}
	seat := g.dealer.Next()
	for dealt := 0; dealt < Seats*HandSize; {
		n := min(g.params.DealPacket, HandSize-g.hands[seat].Len())
		for range n {
			c, ok := g.deck.Deal()
			if !ok {
				panic("engine: deck exhausted while dealing")
			}
			g.hands[seat].Add(c)
		}
		dealt += n
		seat = seat.Next()
	}
	g.startHand()
	return g.turn(), nil
}

// SetDealtCards deals the given hands instead of shuffling. The hands must
// hold HandSize cards each and together form exactly one pinochle deck.
func (g *Game) SetDealtCards(hands [Seats][]Card) error {
	if g.phase != PhaseDeal {
		return PhaseError("not in deal phase")
	}
	seen := map[Card]int{}
	for s, h := range hands {
		if len(h) != HandSize {
			return fmt.Errorf("seat %d must have %d cards, got %d", s, HandSize, len(h))
		}
		for _, c := range h {
			if !c.Valid() {
				return fmt.Errorf("seat %d holds a card outside the deck: suit %d rank %d", s, c.Suit, c.Rank)
			}
			seen[c]++
			if seen[c] > CopiesPerCard {
				return fmt.Errorf("card %s dealt more than %d times", c, CopiesPerCard)
			}
		}
	}

	// Mark the whole deck dealt so played cards can be discarded.
	g.deck.Shuffle()
	for {
		if _, ok := g.deck.Deal(); !ok {
			break
		}
	}
	for s, h := range hands {
		g.hands[s].Clear()
		g.hands[s].Add(h...)
	}
	g.startHand()
	return nil
}

func (g *Game) startHand() {
	g.bids = NewBidTracker(g.dealer, g.params)
	g.trick = nil
	g.seatMeld = [Seats]MeldBreakdown{}
	g.meld = [2]int{}
	g.tricks = [2]int{}
	g.tricksPlayed = 0
	g.phase = PhaseBidding
	g.current = g.dealer.Next()
	g.log.Debug("hand dealt", "dealer", g.dealer, "first_bidder", g.current)
}

// Bid raises the high bid for seat.
func (g *Game) Bid(seat Seat, amount int) (Turn, error) {
	if g.phase != PhaseBidding {
		return g.turn(), PhaseError("not in bidding phase")
	}
	if seat != g.current {
		return g.turn(), &RuleError{Kind: ErrNotYourTurn, Seat: seat}
	}
	if err := g.bids.Bid(seat, amount); err != nil {
		return g.turn(), err
	}
	g.log.Debug("bid accepted", "seat", seat, "amount", amount)
	g.nextBidder()
	return g.turn(), nil
}

// Pass withdraws seat from the auction.
func (g *Game) Pass(seat Seat) (Turn, error) {
	if g.phase != PhaseBidding {
		return g.turn(), PhaseError("not in bidding phase")
	}
	if seat != g.current {
		return g.turn(), &RuleError{Kind: ErrNotYourTurn, Seat: seat}
	}
	if err := g.bids.Pass(seat); err != nil {
		return g.turn(), err
	}
	g.log.Debug("pass", "seat", seat)
	if g.bids.IsBidding() {
		g.nextBidder()
		return g.turn(), nil
	}
	g.phase = PhaseDeclareTrump
	g.current = g.bids.HighBidder()
	g.log.Debug("bidding closed", "bidder", g.current, "bid", g.bids.HighBid())
	return g.turn(), nil
}

// nextBidder moves the turn left, skipping seats that passed.
func (g *Game) nextBidder() {
	s := g.current.Next()
	for g.bids.Passed(s) {
		s = s.Next()
	}
	g.current = s
}

// DeclareTrump names trump for the hand. Only the winning bidder may call it.
// Meld is counted immediately; a bidding team short of the minimum meld is
// set without playing a trick.
func (g *Game) DeclareTrump(seat Seat, suit Suit) (Turn, error) {
	if g.phase != PhaseDeclareTrump {
		return g.turn(), PhaseError("not in declare trump phase")
	}
	if seat != g.bids.HighBidder() {
		return g.turn(), &RuleError{Kind: ErrNotYourTurn, Seat: seat}
	}
	if err := g.bids.DeclareTrump(suit); err != nil {
		return g.turn(), err
	}
	g.log.Debug("trump declared", "seat", seat, "trump", suit)

	for s := range Seat(Seats) {
		g.seatMeld[s] = CountMeldBreakdown(g.hands[s].Cards(), suit)
		g.meld[s.Team()] += g.seatMeld[s].Total
	}
	for t := range g.meld {
		if g.meld[t] < g.params.MinMeld {
			g.meld[t] = 0
		}
	}
	g.log.Debug("meld computed", "team_a", g.meld[TeamA], "team_b", g.meld[TeamB])

	if g.meld[seat.Team()] < g.params.MinMeld {
		g.finishHand(true)
		return g.turn(), nil
	}
	g.phase = PhasePlay
	g.trick = NewTrick(suit)
	g.current = seat
	return g.turn(), nil
}

// PlayCard plays card from seat's hand to the current trick. A rejected play
// changes nothing.
func (g *Game) PlayCard(seat Seat, card Card) (Turn, error) {
	if g.phase != PhasePlay {
		return g.turn(), PhaseError("not in play phase")
	}
	if seat != g.current {
		return g.turn(), &RuleError{Kind: ErrNotYourTurn, Seat: seat, Card: &card}
	}
	if err := g.trick.PlayCard(seat, card, g.hands[seat].Cards()); err != nil {
		return g.turn(), err
	}
	g.hands[seat].Remove(card)

	if !g.trick.Complete() {
		g.current = seat.Next()
		return g.turn(), nil
	}

	winner := g.trick.Winner()
	points := Seats
	g.tricksPlayed++
	if g.tricksPlayed == HandSize {
		points += g.params.LastTrickBonus
	}
	g.tricks[winner.Team()] += points
	for _, c := range g.trick.Plays() {
		g.deck.Discard(*c)
	}
	g.log.Debug("trick won", "seat", winner, "points", points, "trick", g.tricksPlayed)

	if g.tricksPlayed == HandSize {
		g.finishHand(false)
		return g.turn(), nil
	}
	g.trick = NewTrick(g.trick.Trump())
	g.current = winner
	return g.turn(), nil
}

// finishHand scores the hand, records it and either ends the game or rotates
// the deal.
func (g *Game) finishHand(endedEarly bool) {
	g.phase = PhaseScoring
	trump, _ := g.bids.Trump()
	bidder := g.bids.HighBidder()
	bid := g.bids.HighBid()
	res := HandResult{
		Dealer:     g.dealer,
		Bidder:     bidder,
		Bid:        bid,
		Trump:      trump,
		EndedEarly: endedEarly,
	}

	for t := range res.Teams {
		team := Team(t)
		rec := TeamHandRecord{Meld: g.meld[t], Tricks: g.tricks[t]}
		rec.Total = rec.Meld + rec.Tricks
		if !endedEarly && g.params.MinTricks > 0 && rec.Tricks < g.params.MinTricks {
			rec.Total = 0
		}
		if team == bidder.Team() && (endedEarly || rec.Total < bid) {
			rec.Total = -bid
			rec.Set = true
		}
		g.scores[t] += rec.Total
		res.Teams[t] = rec
	}
	g.history = append(g.history, res)
	g.log.Debug("hand scored",
		"bidder", bidder,
		"bid", bid,
		"set", res.Teams[bidder.Team()].Set,
		"team_a", g.scores[TeamA],
		"team_b", g.scores[TeamB],
	)

	g.winner, g.hasWinner = gameWinner(g.scores, g.params.WinningScore, bidder.Team())
	if g.hasWinner {
		g.phase = PhaseGameOver
		g.current = NoSeat
		g.log.Info("game over", "winner", g.winner, "team_a", g.scores[TeamA], "team_b", g.scores[TeamB], "hands", len(g.history))
		return
	}

	g.dealer = g.dealer.Next()
	g.current = g.dealer
	g.phase = PhaseDeal
}

// gameWinner returns the team that reached target. When both did, the
// bidding team wins.
func gameWinner(scores [2]int, target int, bidding Team) (Team, bool) {
	reachedA := scores[TeamA] >= target
	reachedB := scores[TeamB] >= target
	switch {
	case reachedA && reachedB:
		return bidding, true
	case reachedA:
		return TeamA, true
	case reachedB:
		return TeamB, true
	}
	return 0, false
}

func (g *Game) turn() Turn { return Turn{Seat: g.current, Phase: g.phase} }

// Params returns the rules in effect.
func (g *Game) Params() GameParams { return g.params }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// CurrentSeat returns the seat to act. During PhaseDeal it is the dealer.
func (g *Game) CurrentSeat() Seat { return g.current }

// Dealer returns the dealer of the current hand.
func (g *Game) Dealer() Seat { return g.dealer }

// CurrentBid returns the high bid of the hand in progress.
func (g *Game) CurrentBid() int {
	if g.bids == nil {
		return 0
	}
	return g.bids.HighBid()
}

// HighBidder returns the seat holding the high bid, NoSeat if none.
func (g *Game) HighBidder() Seat {
	if g.bids == nil {
		return NoSeat
	}
	return g.bids.HighBidder()
}

// Trump returns the trump of the hand in progress, if declared.
func (g *Game) Trump() (Suit, bool) {
	if g.bids == nil {
		return 0, false
	}
	return g.bids.Trump()
}

// CurrentTrick returns the card each seat played to the trick in progress.
func (g *Game) CurrentTrick() [Seats]*Card {
	if g.trick == nil {
		return [Seats]*Card{}
	}
	return g.trick.Plays()
}

// RemainingCards returns a copy of the cards seat still holds.
func (g *Game) RemainingCards(seat Seat) []Card { return g.hands[seat].Cards() }

// Scores returns the cumulative score of each team.
func (g *Game) Scores() [2]int { return g.scores }

// TeamMeld returns each team's meld for the hand, zero below the minimum.
func (g *Game) TeamMeld() [2]int { return g.meld }

// SeatMeld returns the meld counted in seat's hand once trump is declared.
func (g *Game) SeatMeld(seat Seat) MeldBreakdown { return g.seatMeld[seat] }

// TeamTricks returns the trick points each team has taken this hand.
func (g *Game) TeamTricks() [2]int { return g.tricks }

// History returns the results of every completed hand.
func (g *Game) History() []HandResult { return append([]HandResult(nil), g.history...) }

// Winner returns the winning team once the game is over.
func (g *Game) Winner() (Team, bool) { return g.winner, g.hasWinner }

// LegalBids returns the bid options for seat: 0 for a pass, when allowed,
// followed by the minimum bid. It returns nil when seat may not bid.
func (g *Game) LegalBids(seat Seat) []int {
	if g.phase != PhaseBidding || seat != g.current {
		return nil
	}
	minBid := g.bids.MinimumBid()
	if seat == g.dealer && g.bids.HighBidder() == NoSeat {
		return []int{minBid}
	}
	return []int{0, minBid}
}

// LegalPlays returns the cards seat may play now.
func (g *Game) LegalPlays(seat Seat) []Card {
	if g.phase != PhasePlay || seat != g.current {
		return nil
	}
	return g.trick.LegalPlays(seat, g.hands[seat].Cards())
}
