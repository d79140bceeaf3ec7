package engine

// Meld tables, indexed by how many complete sets are held (0-4).
var (
	aroundsMeld = map[Rank][5]int{
		Jack:  {0, 4, 40, 60, 80},
		Queen: {0, 6, 60, 90, 120},
		King:  {0, 8, 80, 120, 160},
		Ace:   {0, 10, 100, 150, 200},
	}
	pinochleMeld = [5]int{0, 4, 30, 60, 90}
	runMeld      = [5]int{0, 15, 150, 225, 300}
)

// MarriageMultiplier is the value of a single marriage. A royal marriage
// (king and queen of trump) is worth two marriages.
const MarriageMultiplier = 2

// MeldBreakdown itemizes the meld in a hand.
type MeldBreakdown struct {
	Arounds   int
	Pinochles int
	Marriages int
	Runs      int
	Total     int
}

// cardCounts tallies cards by suit and rank.
type cardCounts [len(Suits)][len(Ranks)]int

func countCards(cards []Card) cardCounts {
	var m cardCounts
	for _, c := range cards {
		m[c.Suit][c.Rank]++
	}
	return m
}

// around returns how many of r are held in every suit.
func (m *cardCounts) around(r Rank) int {
	n := CopiesPerCard
	for _, s := range Suits {
		n = min(n, m[s][r])
	}
	return n
}

// run returns how many complete runs of s are held.
func (m *cardCounts) run(s Suit) int {
	n := CopiesPerCard
	for _, r := range Ranks {
		n = min(n, m[s][r])
	}
	return n
}

// CountMeld returns the meld in cards with trump declared.
func CountMeld(cards []Card, trump Suit) int {
	return CountMeldBreakdown(cards, trump).Total
}

// CountMeldBreakdown itemizes the meld in cards with trump declared.
//
// A run contains a royal marriage that is paid by the run alone, so each
// run cancels one marriage and one royal marriage bonus: the trump run
// scores 15, not 19.
func CountMeldBreakdown(cards []Card, trump Suit) MeldBreakdown {
	m := countCards(cards)
	var b MeldBreakdown

	for _, r := range [...]Rank{Jack, Queen, King, Ace} {
		b.Arounds += aroundsMeld[r][m.around(r)]
	}

	b.Pinochles = pinochleMeld[min(m[Diamonds][Jack], m[Spades][Queen], CopiesPerCard)]

	marriages := 0
	for _, s := range Suits {
		marriages += min(m[s][Queen], m[s][King])
	}
	marriages += min(m[trump][King], m[trump][Queen])

	runs := m.run(trump)
	b.Marriages = (marriages - runs*MarriageMultiplier) * MarriageMultiplier
	b.Runs = runMeld[runs]

	b.Total = b.Arounds + b.Pinochles + b.Marriages + b.Runs
	return b
}
