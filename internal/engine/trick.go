package engine

import (
	"fmt"
	"slices"
)

// Trick validates the cards played to a single trick and tracks the running
// high card of the led suit and the high trump. It guards against renege:
// following suit, heading the trick and trumping in are all enforced against
// the cards left in the playing seat's hand.
type Trick struct {
	trump  Suit
	leader Seat
	plays  [Seats]*Card
	order  []Seat

	highCard      *Card
	highCardSeat  Seat
	highTrump     *Card
	highTrumpSeat Seat
}

// NewTrick starts an empty trick for the given trump suit.
func NewTrick(trump Suit) *Trick {
	return &Trick{
		trump:         trump,
		leader:        NoSeat,
		order:         make([]Seat, 0, Seats),
		highCardSeat:  NoSeat,
		highTrumpSeat: NoSeat,
	}
}

// trickUpdate is the effect a validated play has on the high cards.
type trickUpdate struct {
	raisesHighCard  bool
	raisesHighTrump bool
}

// Check validates card as seat's play without recording it. hand is every
// card the seat still holds, including card itself.
//
// Playing twice for a seat or playing a fifth card is a caller bug and
// panics.
func (t *Trick) Check(seat Seat, card Card, hand []Card) error {
	_, err := t.check(seat, card, hand)
	return err
}

func (t *Trick) check(seat Seat, card Card, hand []Card) (trickUpdate, error) {
	if len(t.order) >= Seats {
		panic("trick: more than four cards played")
	}
	if !seat.Valid() {
		panic(fmt.Sprintf("trick: invalid seat %d", seat))
	}
	if t.plays[seat] != nil {
		panic(fmt.Sprintf("trick: seat %d already played %s", seat, t.plays[seat]))
	}
	if !slices.Contains(hand, card) {
		return trickUpdate{}, cardError(ErrCardNotHeld, seat, card, nil)
	}

	if t.highCard == nil || card.Suit == t.highCard.Suit {
		if t.highTrump == nil && mustHead(hand, card, t.highCard) {
			return trickUpdate{}, cardError(ErrMustBeatHighestCard, seat, card, t.highCard)
		}
		return trickUpdate{raisesHighCard: t.highCard == nil || card.Beats(*t.highCard)}, nil
	}

	led := t.highCard.Suit
	if holdsSuit(hand, led) {
		return trickUpdate{}, cardError(ErrMustFollowSuit, seat, card, t.highCard)
	}
	if card.Suit == t.trump {
		if mustHead(hand, card, t.highTrump) {
			return trickUpdate{}, cardError(ErrMustBeatHighestTrump, seat, card, t.highTrump)
		}
		return trickUpdate{raisesHighTrump: t.highTrump == nil || card.Beats(*t.highTrump)}, nil
	}
	if holdsSuit(hand, t.trump) {
		ref := t.highTrump
		if ref == nil {
			ref = &Card{Suit: t.trump, Rank: Jack}
		}
		return trickUpdate{}, cardError(ErrMustPlayTrump, seat, card, ref)
	}
	return trickUpdate{}, nil
}

// PlayCard validates and records card as seat's play. A rejected play
// leaves the trick untouched.
func (t *Trick) PlayCard(seat Seat, card Card, hand []Card) error {
	u, err := t.check(seat, card, hand)
	if err != nil {
		return err
	}
	c := card
	if u.raisesHighCard {
		t.highCard, t.highCardSeat = &c, seat
	}
	if u.raisesHighTrump {
		t.highTrump, t.highTrumpSeat = &c, seat
	}
	if t.leader == NoSeat {
		t.leader = seat
	}
	t.plays[seat] = &c
	t.order = append(t.order, seat)
	return nil
}

// mustHead reports whether playing card fails to beat high while the hand
// holds a card of high's suit that would.
func mustHead(hand []Card, card Card, high *Card) bool {
	if high == nil || card.Beats(*high) {
		return false
	}
	return slices.ContainsFunc(hand, func(c Card) bool { return c.Beats(*high) })
}

func holdsSuit(hand []Card, s Suit) bool {
	return slices.ContainsFunc(hand, func(c Card) bool { return c.Suit == s })
}

// LegalPlays returns the cards in hand seat may play to the trick.
func (t *Trick) LegalPlays(seat Seat, hand []Card) []Card {
	var out []Card
	for _, c := range hand {
		if slices.Contains(out, c) {
			continue
		}
		if t.Check(seat, c, hand) == nil {
			out = append(out, c)
		}
	}
	return out
}

// Trump returns the trump suit for the trick.
func (t *Trick) Trump() Suit { return t.trump }

// Leader returns the seat that led, NoSeat before the first play.
func (t *Trick) Leader() Seat { return t.leader }

// Count returns the number of cards played.
func (t *Trick) Count() int { return len(t.order) }

// Complete reports whether every seat has played.
func (t *Trick) Complete() bool { return len(t.order) == Seats }

// Plays returns the card played by each seat, nil for seats yet to play.
func (t *Trick) Plays() [Seats]*Card {
	var out [Seats]*Card
	for i, c := range t.plays {
		if c != nil {
			cc := *c
			out[i] = &cc
		}
	}
	return out
}

// LedSuit returns the suit led, if any card has been played.
func (t *Trick) LedSuit() (Suit, bool) {
	if t.highCard == nil {
		return 0, false
	}
	return t.highCard.Suit, true
}

// HighCard returns the highest card of the led suit and who played it.
func (t *Trick) HighCard() (Card, Seat, bool) {
	if t.highCard == nil {
		return Card{}, NoSeat, false
	}
	return *t.highCard, t.highCardSeat, true
}

// HighTrump returns the highest trump played onto an off-suit lead and who
// played it.
func (t *Trick) HighTrump() (Card, Seat, bool) {
	if t.highTrump == nil {
		return Card{}, NoSeat, false
	}
	return *t.highTrump, t.highTrumpSeat, true
}

// Winner returns the seat currently taking the trick, NoSeat if empty.
func (t *Trick) Winner() Seat {
	if t.highTrump != nil {
		return t.highTrumpSeat
	}
	return t.highCardSeat
}

// ResolveWinner derives the winner of a trick from the cards each seat
// played. Ties go to the seat that played first, counting from leader.
func ResolveWinner(trump Suit, leader Seat, plays [Seats]*Card) Seat {
	lead := plays[leader]
	if lead == nil {
		return NoSeat
	}
	best, bestSeat := *lead, leader
	trumped := false
	for i := 1; i < Seats; i++ {
		s := (leader + Seat(i)) % Seats
		c := plays[s]
		if c == nil {
			continue
		}
		switch {
		case lead.Suit != trump && c.Suit == trump && !trumped:
			best, bestSeat, trumped = *c, s, true
		case c.Beats(best):
			best, bestSeat = *c, s
		}
	}
	return bestSeat
}
