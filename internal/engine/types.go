//go:generate stringer -type=Phase,Suit,Rank -linecomment

package engine

import (
	"cmp"
	"fmt"
	"slices"
)

// Suit represents a card suit.
type Suit int

const (
	Clubs    Suit = iota // ♣
	Diamonds             // ♦
	Hearts               // ♥
	Spades               // ♠
)

// Suits lists every suit in order.
var Suits = [...]Suit{Clubs, Diamonds, Hearts, Spades}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool { return s >= Clubs && s <= Spades }

// Rank represents a card rank, declared in natural face order.
type Rank int

const (
	Ten   Rank = iota // 10
	Jack              // J
	Queen             // Q
	King              // K
	Ace               // A
)

// Ranks lists every rank in declaration order.
var Ranks = [...]Rank{Ten, Jack, Queen, King, Ace}

// Valid reports whether r is one of the five ranks.
func (r Rank) Valid() bool { return r >= Ten && r <= Ace }

// rankStrength orders ranks for taking tricks. A Ten outranks a King, unlike
// the declaration order.
var rankStrength = [...]int{
	Jack:  1,
	Queen: 2,
	King:  3,
	Ten:   4,
	Ace:   5,
}

// Strength returns the trick-taking strength of a rank.
func (r Rank) Strength() int { return rankStrength[r] }

// Card represents a playing card. A pinochle deck holds four copies of each.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// Valid reports whether c belongs to a pinochle deck.
func (c Card) Valid() bool { return c.Suit.Valid() && c.Rank.Valid() }

// Strength returns the trick-taking strength of the card's rank.
func (c Card) Strength() int { return c.Rank.Strength() }

// Beats reports whether c is the same suit as other and strictly stronger.
func (c Card) Beats(other Card) bool {
	return c.Suit == other.Suit && c.Strength() > other.Strength()
}

// CopiesPerCard is the number of identical copies of every card in the deck.
const CopiesPerCard = 4

// HandSize is the number of cards dealt to each seat.
const HandSize = 20

// NewPinochleDeck returns the ordered 80 card double deck.
func NewPinochleDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks)*CopiesPerCard)
	for _, s := range Suits {
		for _, r := range Ranks {
			for range CopiesPerCard {
				deck = append(deck, Card{Suit: s, Rank: r})
			}
		}
	}
	return deck
}

// SortCards orders cards by suit, then by ascending strength.
func SortCards(cards []Card) {
	slices.SortStableFunc(cards, func(a, b Card) int {
		if c := cmp.Compare(a.Suit, b.Suit); c != 0 {
			return c
		}
		return cmp.Compare(a.Strength(), b.Strength())
	})
}

// Seat identifies a position at the table, 0 through 3.
type Seat int

// NoSeat marks an absent seat, e.g. before anyone has bid.
const NoSeat Seat = -1

// Seats is the number of players at the table.
const Seats = 4

// Next returns the seat to the left.
func (s Seat) Next() Seat { return (s + 1) % Seats }

// Team returns the partnership the seat belongs to.
func (s Seat) Team() Team { return Team(s % 2) }

// Valid reports whether s is a real seat.
func (s Seat) Valid() bool { return s >= 0 && s < Seats }

// Team identifies a partnership. Seats 0 and 2 form TeamA, 1 and 3 TeamB.
type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	if t == TeamA {
		return "team A"
	}
	return "team B"
}

// Seats returns both seats of the partnership.
func (t Team) Seats() [2]Seat { return [2]Seat{Seat(t), Seat(t) + 2} }

// Other returns the opposing partnership.
func (t Team) Other() Team { return 1 - t }

// Phase represents the hand phase.
type Phase int

const (
	PhaseDeal         Phase = iota // deal
	PhaseBidding                   // bidding
	PhaseDeclareTrump              // declare trump
	PhasePlay                      // play
	PhaseScoring                   // scoring
	PhaseGameOver                  // game over
)

// Turn is the authoritative state returned after every accepted action.
type Turn struct {
	Seat  Seat
	Phase Phase
}

// GameParams parameterizes game rules. Zero fields take defaults in NewGame,
// so a rule cannot be set to zero: LastTrickBonus 0 still awards 2 and
// MinMeld 0 still requires 20. MinTricks has no default and 0 disables it.
type GameParams struct {
	MinBid          int
	RaiseByFiveFrom int
	LargeRaise      int
	MinMeld         int
	MinTricks       int
	LastTrickBonus  int
	WinningScore    int
	DealPacket      int
}

// DefaultParams returns the standard double deck rules.
func DefaultParams() GameParams {
	return GameParams{}.withDefaults()
}

// Validate rejects parameters the engine cannot play with. Negative fields
// are errors, and a deal packet may not exceed a hand.
func (p GameParams) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"MinBid", p.MinBid},
		{"RaiseByFiveFrom", p.RaiseByFiveFrom},
		{"LargeRaise", p.LargeRaise},
		{"MinMeld", p.MinMeld},
		{"MinTricks", p.MinTricks},
		{"LastTrickBonus", p.LastTrickBonus},
		{"WinningScore", p.WinningScore},
		{"DealPacket", p.DealPacket},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", f.name, f.value)
		}
	}
	if p.DealPacket > HandSize {
		return fmt.Errorf("DealPacket must be at most %d, got %d", HandSize, p.DealPacket)
	}
	return nil
}

func (p GameParams) withDefaults() GameParams {
	if p.MinBid == 0 {
		p.MinBid = 50
	}
	if p.RaiseByFiveFrom == 0 {
		p.RaiseByFiveFrom = 60
	}
	if p.LargeRaise == 0 {
		p.LargeRaise = 5
	}
	if p.MinMeld == 0 {
		p.MinMeld = 20
	}
	if p.LastTrickBonus == 0 {
		p.LastTrickBonus = 2
	}
	if p.WinningScore == 0 {
		p.WinningScore = 500
	}
	if p.DealPacket == 0 {
		p.DealPacket = 4
	}
	return p
}

// TeamHandRecord is one team's result for a single hand.
type TeamHandRecord struct {
	Meld   int
	Tricks int
	Total  int
	Set    bool
}

// HandResult summarizes a completed hand.
type HandResult struct {
	Dealer     Seat
	Bidder     Seat
	Bid        int
	Trump      Suit
	Teams      [2]TeamHandRecord
	EndedEarly bool // bidding team lacked meld, no tricks were played
}
