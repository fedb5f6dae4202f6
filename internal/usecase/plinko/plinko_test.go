package plinko

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
)

type fixedSlot int

func (f fixedSlot) Float64() float64 { return 0 }
func (f fixedSlot) IntN(n int) int   { return int(f) % n }

func TestPayout(t *testing.T) {
	tests := []struct {
		bet        int64
		multiplier float64
		want       int64
	}{
		{bet: 10, multiplier: 0, want: 0},
		{bet: 3, multiplier: 0.5, want: 1},
		{bet: 1, multiplier: 0.5, want: 0},
		{bet: 7, multiplier: 1, want: 7},
		{bet: 7, multiplier: 2, want: 14},
		{bet: 7, multiplier: 5, want: 35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Payout(tt.bet, tt.multiplier))
	}
}

func TestDropLandsOnPickedSlot(t *testing.T) {
	board := NewDefaultBoard()

	round, err := NewRound(4)
	require.NoError(t, err)
	assert.Equal(t, PhaseDropping, round.Phase)

	require.NoError(t, board.Drop(round, fixedSlot(4)))
	assert.Equal(t, PhaseSettled, round.Phase)
	assert.Equal(t, 4, round.Slot)
	assert.Equal(t, 5.0, round.Multiplier)
	assert.Equal(t, int64(20), round.Payout)

	err = board.Drop(round, fixedSlot(0))
	assert.True(t, domain.HasCode(err, domain.ErrCodeGameInvalidState))
}

func TestNewRoundRejectsNonPositiveBet(t *testing.T) {
	_, err := NewRound(0)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidAmount))
	_, err = NewRound(-3)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidAmount))
}

func TestDropIsUniformByPosition(t *testing.T) {
	board := NewDefaultBoard()
	rng := rand.New(rand.NewPCG(5, 6))
	const drops = 90000

	counts := make([]int, len(DefaultMultipliers))
	for i := 0; i < drops; i++ {
		round, err := NewRound(1)
		require.NoError(t, err)
		require.NoError(t, board.Drop(round, rng))
		counts[round.Slot]++
	}

	for slot, n := range counts {
		assert.InDelta(t, 1.0/9, float64(n)/drops, 0.01, "slot %d", slot)
	}
}

func TestNewBoard(t *testing.T) {
	_, err := NewBoard(nil)
	assert.Error(t, err)
	_, err = NewBoard([]float64{1, -1})
	assert.Error(t, err)

	board, err := NewBoard([]float64{0, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 0}, board.Multipliers())
}
