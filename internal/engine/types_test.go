package engine

import (
	"slices"
	"testing"
)

func TestRankStrength(t *testing.T) {
	order := []Rank{Jack, Queen, King, Ten, Ace}
	for i := 1; i < len(order); i++ {
		if order[i].Strength() <= order[i-1].Strength() {
			t.Fatalf("%s should outrank %s", order[i], order[i-1])
		}
	}
	if !card(Ten, Clubs).Beats(card(King, Clubs)) {
		t.Fatalf("ten should beat king")
	}
	if card(Ace, Clubs).Beats(card(Jack, Hearts)) {
		t.Fatalf("cards of different suits never beat each other")
	}
	if card(Ace, Clubs).Beats(card(Ace, Clubs)) {
		t.Fatalf("equal cards do not beat each other")
	}
}

func TestNewPinochleDeck(t *testing.T) {
	deck := NewPinochleDeck()
	if len(deck) != Seats*HandSize {
		t.Fatalf("deck has %d cards", len(deck))
	}
	counts := map[Card]int{}
	for _, c := range deck {
		counts[c]++
	}
	if len(counts) != len(Suits)*len(Ranks) {
		t.Fatalf("deck has %d distinct cards", len(counts))
	}
	for c, n := range counts {
		if n != CopiesPerCard {
			t.Fatalf("%s appears %d times", c, n)
		}
	}
}

func TestSortCards(t *testing.T) {
	hand := []Card{card(Ace, Spades), card(Jack, Clubs), card(Ten, Clubs), card(King, Clubs)}
	SortCards(hand)
	want := []Card{card(Jack, Clubs), card(King, Clubs), card(Ten, Clubs), card(Ace, Spades)}
	if !slices.Equal(hand, want) {
		t.Fatalf("sorted = %v, want %v", hand, want)
	}
}

func TestSeatsAndTeams(t *testing.T) {
	if Seat(3).Next() != 0 || Seat(1).Next() != 2 {
		t.Fatalf("Next does not wrap")
	}
	if Seat(0).Team() != TeamA || Seat(2).Team() != TeamA || Seat(1).Team() != TeamB || Seat(3).Team() != TeamB {
		t.Fatalf("wrong partnerships")
	}
	if TeamB.Seats() != [2]Seat{1, 3} || TeamA.Other() != TeamB {
		t.Fatalf("team helpers broken")
	}
	if NoSeat.Valid() || Seat(4).Valid() {
		t.Fatalf("invalid seats reported valid")
	}
}

func TestCardValid(t *testing.T) {
	for _, c := range NewPinochleDeck() {
		if !c.Valid() {
			t.Fatalf("%s reported invalid", c)
		}
	}
	for _, c := range []Card{{Suit: -1, Rank: Ace}, {Suit: 4, Rank: Ace}, {Suit: Clubs, Rank: -1}, {Suit: Clubs, Rank: 5}, {Suit: 9, Rank: 9}} {
		if c.Valid() {
			t.Fatalf("suit %d rank %d reported valid", c.Suit, c.Rank)
		}
	}
}

func TestGameParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		params  GameParams
		wantErr bool
	}{
		{name: "zero value", params: GameParams{}},
		{name: "defaults", params: DefaultParams()},
		{name: "packet of a whole hand", params: GameParams{DealPacket: HandSize}},
		{name: "negative packet", params: GameParams{DealPacket: -1}, wantErr: true},
		{name: "packet larger than a hand", params: GameParams{DealPacket: HandSize + 1}, wantErr: true},
		{name: "negative large raise", params: GameParams{LargeRaise: -5}, wantErr: true},
		{name: "negative winning score", params: GameParams{WinningScore: -500}, wantErr: true},
		{name: "negative min tricks", params: GameParams{MinTricks: -1}, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.params.Validate()
			if c.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !c.wantErr && err != nil {
				t.Fatalf("validate: %v", err)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	cases := map[string]string{
		card(Ace, Spades).String(): "A♠",
		card(Ten, Hearts).String(): "10♥",
		PhaseDeclareTrump.String(): "declare trump",
		PhaseGameOver.String():     "game over",
		Phase(42).String():         "Phase(42)",
		TeamB.String():             "team B",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
