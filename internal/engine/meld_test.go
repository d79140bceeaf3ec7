package engine

import "testing"

func cards(pairs ...any) []Card {
	var out []Card
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Card{Rank: pairs[i].(Rank), Suit: pairs[i+1].(Suit)})
	}
	return out
}

func repeat(n int, cs []Card) []Card {
	var out []Card
	for range n {
		out = append(out, cs...)
	}
	return out
}

func TestCountMeld(t *testing.T) {
	run := cards(Jack, Hearts, Queen, Hearts, King, Hearts, Ten, Hearts, Ace, Hearts)
	jacks := cards(Jack, Clubs, Jack, Diamonds, Jack, Hearts, Jack, Spades)
	aces := cards(Ace, Clubs, Ace, Diamonds, Ace, Hearts, Ace, Spades)
	pinochle := cards(Jack, Diamonds, Queen, Spades)

	cases := []struct {
		name  string
		hand  []Card
		trump Suit
		want  int
	}{
		{"empty", nil, Hearts, 0},
		{"run alone", run, Hearts, 15},
		{"run plus royal marriage", append(cards(King, Hearts, Queen, Hearts), run...), Hearts, 19},
		{"run outside trump is a marriage", run, Clubs, 2},
		{"double run", repeat(2, run), Hearts, 150},
		{"triple run", repeat(3, run), Hearts, 225},
		{"quadruple run", repeat(4, run), Hearts, 300},
		{"jacks around", jacks, Spades, 4},
		{"double jacks around", repeat(2, jacks), Spades, 40},
		{"triple aces around", repeat(3, aces), Spades, 150},
		{"quadruple aces around", repeat(4, aces), Spades, 200},
		{"jacks around missing a suit", cards(Jack, Clubs, Jack, Clubs, Jack, Hearts, Jack, Spades), Spades, 0},
		{"tens do not go around", cards(Ten, Clubs, Ten, Diamonds, Ten, Hearts, Ten, Spades), Spades, 0},
		{"pinochle", pinochle, Clubs, 4},
		{"double pinochle", repeat(2, pinochle), Clubs, 30},
		{"quadruple pinochle", repeat(4, pinochle), Clubs, 90},
		{"common marriage", cards(King, Clubs, Queen, Clubs), Spades, 2},
		{"royal marriage", cards(King, Spades, Queen, Spades), Spades, 4},
		{"unmatched king and queen", cards(King, Clubs, Queen, Diamonds), Spades, 0},
		{"pinochle shares the jack with jacks around", append(jacks, card(Queen, Spades)), Hearts, 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CountMeld(c.hand, c.trump); got != c.want {
				t.Fatalf("CountMeld = %d, want %d (%+v)", got, c.want, CountMeldBreakdown(c.hand, c.trump))
			}
		})
	}
}

func TestCountMeldBreakdown(t *testing.T) {
	hand := cards(
		Jack, Hearts, Queen, Hearts, King, Hearts, Ten, Hearts, Ace, Hearts,
		King, Clubs, Queen, Clubs,
		Jack, Diamonds, Queen, Spades,
		Ace, Clubs, Ace, Diamonds, Ace, Spades,
	)
	got := CountMeldBreakdown(hand, Hearts)
	want := MeldBreakdown{Arounds: 10, Pinochles: 4, Marriages: 2, Runs: 15, Total: 31}
	if got != want {
		t.Fatalf("breakdown = %+v, want %+v", got, want)
	}
}

func TestCountMeld_IsPure(t *testing.T) {
	hand := cards(King, Hearts, Queen, Hearts)
	first := CountMeld(hand, Hearts)
	CountMeld(repeat(4, hand), Hearts)
	if again := CountMeld(hand, Hearts); again != first {
		t.Fatalf("meld changed between calls: %d then %d", first, again)
	}
	if len(hand) != 2 {
		t.Fatalf("hand mutated")
	}
}
