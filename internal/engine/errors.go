package engine

import (
	"errors"
	"fmt"
	"strings"
)

// PhaseError reports an action attempted in the wrong phase.
type PhaseError string

func (e PhaseError) Error() string { return string(e) }

// Rule violations. Every one of them is returned wrapped in a *RuleError.
var (
	ErrBiddingClosed        = errors.New("bidding is closed")
	ErrAlreadyPassed        = errors.New("seat already passed")
	ErrBidTooLow            = errors.New("bid too low")
	ErrMustIncrementByFive  = errors.New("bid must be an increment of five")
	ErrHighBidderCannotPass = errors.New("high bidder cannot pass")
	ErrDealerCannotPass     = errors.New("dealer cannot pass without a bid")
	ErrBiddingStillOpen     = errors.New("bidding still open")
	ErrTrumpAlreadyDeclared = errors.New("trump already declared")
	ErrInvalidSuit          = errors.New("invalid suit")
	ErrNotYourTurn          = errors.New("not your turn")
	ErrCardNotHeld          = errors.New("card not held")
	ErrMustFollowSuit       = errors.New("must follow suit")
	ErrMustBeatHighestCard  = errors.New("must beat highest card")
	ErrMustPlayTrump        = errors.New("must play trump")
	ErrMustBeatHighestTrump = errors.New("must beat highest trump")
)

// RuleError is a recoverable rule violation. It carries what a driver needs
// to tell the player exactly why the action was rejected.
type RuleError struct {
	Kind error
	Seat Seat

	// Bidding context.
	Amount  int
	Minimum int

	// Card play context. Reference is the card the play failed to beat or
	// follow, when there is one.
	Card      *Card
	Reference *Card
}

func (e *RuleError) Error() string {
	var b strings.Builder
	if e.Seat.Valid() {
		fmt.Fprintf(&b, "seat %d: ", e.Seat)
	}
	b.WriteString(e.Kind.Error())
	switch {
	case e.Card != nil && e.Reference != nil:
		fmt.Fprintf(&b, ": played %s against %s", e.Card, e.Reference)
	case e.Card != nil:
		fmt.Fprintf(&b, ": %s", e.Card)
	case e.Minimum > 0:
		fmt.Fprintf(&b, ": bid %d, minimum %d", e.Amount, e.Minimum)
	}
	return b.String()
}

func (e *RuleError) Unwrap() error { return e.Kind }

func bidError(kind error, seat Seat, amount, minimum int) *RuleError {
	return &RuleError{Kind: kind, Seat: seat, Amount: amount, Minimum: minimum}
}

func cardError(kind error, seat Seat, card Card, reference *Card) *RuleError {
	return &RuleError{Kind: kind, Seat: seat, Card: &card, Reference: reference}
}
