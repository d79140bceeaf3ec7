package deck

import "slices"

// Hand is an unordered multiset of cards held by one player.
type Hand[T comparable] struct {
	cards []T
}

// NewHand returns a hand holding cards.
func NewHand[T comparable](cards ...T) *Hand[T] {
	return &Hand[T]{cards: append([]T(nil), cards...)}
}

// Add puts cards into the hand.
func (h *Hand[T]) Add(cards ...T) { h.cards = append(h.cards, cards...) }

// Remove takes one copy of card out of the hand.
func (h *Hand[T]) Remove(card T) bool {
	i := slices.Index(h.cards, card)
	if i < 0 {
		return false
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return true
}

// Contains reports whether the hand holds at least one copy of card.
func (h *Hand[T]) Contains(card T) bool { return slices.Contains(h.cards, card) }

// Count returns how many copies of card the hand holds.
func (h *Hand[T]) Count(card T) int {
	n := 0
	for _, c := range h.cards {
		if c == card {
			n++
		}
	}
	return n
}

// Len returns the number of cards held.
func (h *Hand[T]) Len() int { return len(h.cards) }

// Cards returns a copy of the cards held.
func (h *Hand[T]) Cards() []T { return slices.Clone(h.cards) }

// Clear empties the hand.
func (h *Hand[T]) Clear() { h.cards = h.cards[:0] }
