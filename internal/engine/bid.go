package engine

import "fmt"

// BidTracker tracks the auction for a single hand: the high bid and bidder,
// which seats have passed, and the trump declared by the winner.
//
// It does not track whose turn it is; the Game advances turns when a call
// succeeds.
type BidTracker struct {
	params     GameParams
	dealer     Seat
	highBid    int
	highBidder Seat
	passed     [Seats]bool
	closed     bool
	trump      *Suit
}

// NewBidTracker opens bidding for a hand dealt by dealer.
func NewBidTracker(dealer Seat, params GameParams) *BidTracker {
	return &BidTracker{
		params:     params.withDefaults(),
		dealer:     dealer,
		highBidder: NoSeat,
	}
}

// Bid records amount as the new high bid for seat.
func (b *BidTracker) Bid(seat Seat, amount int) error {
	checkBidSeat(seat)
	if b.closed {
		return bidError(ErrBiddingClosed, seat, amount, 0)
	}
	if b.passed[seat] {
		return bidError(ErrAlreadyPassed, seat, amount, 0)
	}
	minBid := b.MinimumBid()
	if amount < minBid {
		if minBid > b.params.RaiseByFiveFrom {
			return bidError(ErrMustIncrementByFive, seat, amount, minBid)
		}
		return bidError(ErrBidTooLow, seat, amount, minBid)
	}
	if amount > b.params.RaiseByFiveFrom && amount%b.params.LargeRaise != 0 {
		return bidError(ErrMustIncrementByFive, seat, amount, minBid)
	}
	b.highBid = amount
	b.highBidder = seat
	return nil
}

// Pass withdraws seat from the auction. Passing twice is a no-op. When only
// one seat is left bidding closes, and if nobody ever bid the dealer is
// stuck with the minimum bid.
func (b *BidTracker) Pass(seat Seat) error {
	checkBidSeat(seat)
	if b.passed[seat] {
		return nil
	}
	if b.closed {
		return bidError(ErrBiddingClosed, seat, 0, 0)
	}
	if seat == b.highBidder {
		return bidError(ErrHighBidderCannotPass, seat, 0, 0)
	}
	if seat == b.dealer && b.highBidder == NoSeat {
		return bidError(ErrDealerCannotPass, seat, 0, 0)
	}
	b.passed[seat] = true

	remaining := 0
	for _, p := range b.passed {
		if !p {
			remaining++
		}
	}
	if remaining == 1 {
		b.closed = true
		if b.highBidder == NoSeat {
			b.highBidder = b.dealer
			b.highBid = b.params.MinBid
		}
	}
	return nil
}

// DeclareTrump records the trump suit named by the winning bidder.
func (b *BidTracker) DeclareTrump(suit Suit) error {
	if b.trump != nil {
		return &RuleError{Kind: ErrTrumpAlreadyDeclared, Seat: b.highBidder}
	}
	if !b.closed {
		return &RuleError{Kind: ErrBiddingStillOpen, Seat: NoSeat}
	}
	if !suit.Valid() {
		return &RuleError{Kind: ErrInvalidSuit, Seat: b.highBidder}
	}
	b.trump = &suit
	return nil
}

// MinimumBid returns the lowest amount the next bid may be.
func (b *BidTracker) MinimumBid() int {
	switch {
	case b.highBid < b.params.MinBid:
		return b.params.MinBid
	case b.highBid < b.params.RaiseByFiveFrom:
		return b.highBid + 1
	default:
		return b.highBid + b.params.LargeRaise
	}
}

// HighBid returns the current high bid, 0 if nobody has bid.
func (b *BidTracker) HighBid() int { return b.highBid }

// HighBidder returns the seat holding the high bid, NoSeat if none.
func (b *BidTracker) HighBidder() Seat { return b.highBidder }

// Dealer returns the dealer for the hand.
func (b *BidTracker) Dealer() Seat { return b.dealer }

// Passed reports whether seat has passed.
func (b *BidTracker) Passed(seat Seat) bool {
	checkBidSeat(seat)
	return b.passed[seat]
}

func checkBidSeat(seat Seat) {
	if !seat.Valid() {
		panic(fmt.Sprintf("bid: invalid seat %d", seat))
	}
}

// Trump returns the declared trump suit, if any.
func (b *BidTracker) Trump() (Suit, bool) {
	if b.trump == nil {
		return 0, false
	}
	return *b.trump, true
}

// IsBidding reports whether the auction is still open.
func (b *BidTracker) IsBidding() bool { return !b.closed }

// IsDeclaringTrump reports whether the auction closed but trump is not yet named.
func (b *BidTracker) IsDeclaringTrump() bool { return b.closed && b.trump == nil }

// IsComplete reports whether trump has been declared.
func (b *BidTracker) IsComplete() bool { return b.trump != nil }
