package blackjack

import (
	"slices"

	"github.com/unmined/spinrewards/internal/domain"
)

// Phase of a blackjack round
type Phase string

// Phases
const (
	PhaseBet    Phase = "bet"
	PhasePlay   Phase = "play"
	PhaseResult Phase = "result"
)

// Outcome of a settled round
type Outcome string

// Outcomes
const (
	OutcomeNone            Outcome = ""
	OutcomeBust            Outcome = "bust"
	OutcomeBlackjack       Outcome = "blackjack"
	OutcomeDealerBlackjack Outcome = "dealer_blackjack"
	OutcomeDealerBust      Outcome = "dealer_bust"
	OutcomeWin             Outcome = "win"
	OutcomeLose            Outcome = "lose"
	OutcomePush            Outcome = "push"
)

// DealerStandsOn is the total at which the dealer stops drawing
const DealerStandsOn = 17

// Round is one blackjack hand against the dealer.
// The bet is debited by the caller before Deal; Payout is what the
// caller credits back once the round reaches PhaseResult.
type Round struct {
	Phase   Phase   `json:"phase"`
	Bet     int64   `json:"bet"`
	Deck    []Card  `json:"-"`
	Player  []Card  `json:"player"`
	Dealer  []Card  `json:"dealer"`
	Outcome Outcome `json:"outcome,omitempty"`
	Payout  int64   `json:"payout"`
}

// NewRound returns a round waiting for a bet
func NewRound() *Round {
	return &Round{Phase: PhaseBet}
}

// Snapshot returns a copy of the visible round that shares no slices with r.
// The undealt deck is left out.
func (r *Round) Snapshot() *Round {
	return &Round{
		Phase:   r.Phase,
		Bet:     r.Bet,
		Player:  slices.Clone(r.Player),
		Dealer:  slices.Clone(r.Dealer),
		Outcome: r.Outcome,
		Payout:  r.Payout,
	}
}

// Deal shuffles a fresh deck and deals the opening hands
func (r *Round) Deal(bet int64, rng domain.Random) error {
	deck := NewDeck()
	Shuffle(deck, rng)
	return r.DealFrom(bet, deck)
}

// DealFrom deals from deck, drawing from its end: two cards to the
// player, then two to the dealer.
func (r *Round) DealFrom(bet int64, deck []Card) error {
	if r.Phase != PhaseBet {
		return domain.NewGameStateError("A round is already in progress.")
	}
	if bet <= 0 {
		return domain.NewAppError(domain.ErrCodeInvalidAmount, "Bet must be a positive whole number.", 400, nil)
	}
	if len(deck) < 4 {
		return domain.NewGameStateError("Not enough cards to deal.")
	}

	r.Deck = deck
	r.Bet = bet
	r.Outcome = OutcomeNone
	r.Payout = 0
	r.Player = []Card{r.draw(), r.draw()}
	r.Dealer = []Card{r.draw(), r.draw()}
	r.Phase = PhasePlay
	return nil
}

// Hit draws one card for the player. Busting ends the round with no payout.
func (r *Round) Hit() error {
	if r.Phase != PhasePlay {
		return domain.NewGameStateError("You can only hit during play.")
	}
	if len(r.Deck) == 0 {
		return domain.NewGameStateError("The deck is empty.")
	}

	r.Player = append(r.Player, r.draw())
	if Score(r.Player) > 21 {
		r.finish(OutcomeBust, 0)
	}
	return nil
}

// Stand plays out the dealer hand and settles the round
func (r *Round) Stand() error {
	if r.Phase != PhasePlay {
		return domain.NewGameStateError("You can only stand during play.")
	}

	for Score(r.Dealer) < DealerStandsOn && len(r.Deck) > 0 {
		r.Dealer = append(r.Dealer, r.draw())
	}

	outcome, payout := Settle(r.Player, r.Dealer, r.Bet)
	r.finish(outcome, payout)
	return nil
}

// Reset returns a finished round to the betting phase
func (r *Round) Reset() error {
	if r.Phase != PhaseResult {
		return domain.NewGameStateError("Finish the current round first.")
	}
	*r = Round{Phase: PhaseBet}
	return nil
}

// Settle decides a stood hand. Checks apply in order: player natural,
// dealer natural, dealer bust, higher total, tie.
func Settle(player, dealer []Card, bet int64) (Outcome, int64) {
	switch {
	case IsNatural(player) && !IsNatural(dealer):
		return OutcomeBlackjack, bet * 5 / 2
	case IsNatural(dealer) && !IsNatural(player):
		return OutcomeDealerBlackjack, 0
	}

	ps, ds := Score(player), Score(dealer)
	switch {
	case ds > 21:
		return OutcomeDealerBust, bet * 2
	case ps > ds:
		return OutcomeWin, bet * 2
	case ps < ds:
		return OutcomeLose, 0
	default:
		return OutcomePush, bet
	}
}

func (r *Round) draw() Card {
	last := len(r.Deck) - 1
	card := r.Deck[last]
	r.Deck = r.Deck[:last]
	return card
}

func (r *Round) finish(outcome Outcome, payout int64) {
	r.Outcome = outcome
	r.Payout = payout
	r.Phase = PhaseResult
}
