package blackjack

import "github.com/unmined/spinrewards/internal/domain"

// Suit of a playing card
type Suit string

// Suits
const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

// Ranks in deck order. T is ten.
const Ranks = "A23456789TJQK"

var suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Card is a rank and a suit
type Card struct {
	Rank string `json:"rank"`
	Suit Suit   `json:"suit"`
}

func (c Card) String() string {
	return c.Rank + string(c.Suit)
}

// Value is the base point value: aces 11, faces and tens 10
func (c Card) Value() int {
	switch c.Rank {
	case "A":
		return 11
	case "T", "J", "Q", "K":
		return 10
	default:
		return int(c.Rank[0] - '0')
	}
}

// NewDeck returns the 52 cards in suit-major order
func NewDeck() []Card {
	deck := make([]Card, 0, len(suits)*len(Ranks))
	for _, s := range suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Rank: string(r), Suit: s})
		}
	}
	return deck
}

// Shuffle applies an unbiased Fisher-Yates shuffle in place
func Shuffle(deck []Card, rng domain.Random) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Score totals a hand, demoting aces from 11 to 1 while it is over 21
func Score(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += c.Value()
		if c.Rank == "A" {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsNatural reports a two-card 21
func IsNatural(hand []Card) bool {
	return len(hand) == 2 && Score(hand) == 21
}
