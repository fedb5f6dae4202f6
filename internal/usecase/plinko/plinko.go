package plinko

import (
	"fmt"
	"math"

	"github.com/unmined/spinrewards/internal/domain"
)

// DefaultMultipliers is the symmetric nine-slot pyramid
var DefaultMultipliers = []float64{0, 0.5, 1, 2, 5, 2, 1, 0.5, 0}

// Phase of a plinko round
type Phase string

// Phases
const (
	PhaseBet      Phase = "bet"
	PhaseDropping Phase = "dropping"
	PhaseSettled  Phase = "settled"
)

// Round is a single drop. The bet is debited by the caller before the drop.
type Round struct {
	Phase      Phase   `json:"phase"`
	Bet        int64   `json:"bet"`
	Slot       int     `json:"slot"`
	Multiplier float64 `json:"multiplier"`
	Payout     int64   `json:"payout"`
}

// NewRound starts a drop for bet
func NewRound(bet int64) (*Round, error) {
	if bet <= 0 {
		return nil, domain.NewAppError(domain.ErrCodeInvalidAmount, "Bet must be a positive whole number.", 400, nil)
	}
	return &Round{Phase: PhaseDropping, Bet: bet, Slot: -1}, nil
}

// Land settles the round in slot with multiplier
func (r *Round) Land(slot int, multiplier float64) error {
	if r.Phase != PhaseDropping {
		return domain.NewGameStateError("No ball is dropping.")
	}
	r.Slot = slot
	r.Multiplier = multiplier
	r.Payout = Payout(r.Bet, multiplier)
	r.Phase = PhaseSettled
	return nil
}

// Payout is floor(bet × multiplier)
func Payout(bet int64, multiplier float64) int64 {
	return int64(math.Floor(float64(bet) * multiplier))
}

// Board is an ordered multiplier table
type Board struct {
	multipliers []float64
}

// NewBoard validates and copies the multiplier table
func NewBoard(multipliers []float64) (*Board, error) {
	if len(multipliers) == 0 {
		return nil, fmt.Errorf("plinko: empty multiplier table")
	}
	for i, m := range multipliers {
		if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, fmt.Errorf("plinko: slot %d has invalid multiplier %v", i, m)
		}
	}
	return &Board{multipliers: append([]float64(nil), multipliers...)}, nil
}

// NewDefaultBoard returns a board over DefaultMultipliers
func NewDefaultBoard() *Board {
	return &Board{multipliers: append([]float64(nil), DefaultMultipliers...)}
}

// Multipliers returns a copy of the table
func (b *Board) Multipliers() []float64 {
	return append([]float64(nil), b.multipliers...)
}

// Drop picks a slot uniformly by position and lands r in it
func (b *Board) Drop(r *Round, rng domain.Random) error {
	slot := rng.IntN(len(b.multipliers))
	return r.Land(slot, b.multipliers[slot])
}
