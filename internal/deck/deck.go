// Package deck provides rule-free card containers: a deck that shuffles,
// deals and keeps a discard pile, and a hand of cards.
package deck

import (
	"errors"
	"math/rand/v2"
)

// ErrEmpty is returned when a deck is built without cards.
var ErrEmpty = errors.New("deck: card list cannot be empty")

// Deck tracks every card of a fixed set as remaining, dealt or discarded.
type Deck[T comparable] struct {
	size      int
	remaining []T
	dealt     []T
	discards  []T
	rng       *rand.Rand
}

// New builds a deck from cards in the given order. A nil rng uses a randomly
// seeded source.
func New[T comparable](cards []T, rng *rand.Rand) (*Deck[T], error) {
	if len(cards) == 0 {
		return nil, ErrEmpty
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Deck[T]{
		size:      len(cards),
		remaining: append([]T(nil), cards...),
		rng:       rng,
	}, nil
}

// Size returns the number of cards the deck was built with.
func (d *Deck[T]) Size() int { return d.size }

// Shuffle gathers dealt and discarded cards back into the deck and shuffles.
func (d *Deck[T]) Shuffle() {
	d.remaining = append(d.remaining, d.dealt...)
	d.remaining = append(d.remaining, d.discards...)
	d.dealt = d.dealt[:0]
	d.discards = d.discards[:0]
	d.rng.Shuffle(len(d.remaining), func(i, j int) {
		d.remaining[i], d.remaining[j] = d.remaining[j], d.remaining[i]
	})
}

// Deal takes the top card. ok is false once the deck is exhausted.
func (d *Deck[T]) Deal() (card T, ok bool) {
	if len(d.remaining) == 0 {
		return card, false
	}
	card = d.remaining[0]
	d.remaining = d.remaining[1:]
	d.dealt = append(d.dealt, card)
	return card, true
}

// Remaining returns a copy of the undealt cards, top first.
func (d *Deck[T]) Remaining() []T { return append([]T(nil), d.remaining...) }

// RemainingCount returns the number of undealt cards.
func (d *Deck[T]) RemainingCount() int { return len(d.remaining) }

// DealtCount returns the number of cards dealt and not discarded.
func (d *Deck[T]) DealtCount() int { return len(d.dealt) }

// DiscardCount returns the size of the discard pile.
func (d *Deck[T]) DiscardCount() int { return len(d.discards) }

// Discard moves a dealt card onto the discard pile. Discarding a card that
// was never dealt panics.
func (d *Deck[T]) Discard(card T) {
	for i, c := range d.dealt {
		if c == card {
			d.dealt = append(d.dealt[:i], d.dealt[i+1:]...)
			d.discards = append(d.discards, card)
			return
		}
	}
	panic("deck: cannot discard a card that was not dealt")
}

// LastDiscard returns the top of the discard pile without taking it.
func (d *Deck[T]) LastDiscard() (card T, ok bool) {
	if len(d.discards) == 0 {
		return card, false
	}
	return d.discards[len(d.discards)-1], true
}

// DrawDiscard takes the top of the discard pile back into play.
func (d *Deck[T]) DrawDiscard() (card T, ok bool) {
	if len(d.discards) == 0 {
		return card, false
	}
	card = d.discards[len(d.discards)-1]
	d.discards = d.discards[:len(d.discards)-1]
	d.dealt = append(d.dealt, card)
	return card, true
}
