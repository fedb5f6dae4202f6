package funding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/domain/mocks"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/infrastructure/receipt"
	"github.com/unmined/spinrewards/internal/infrastructure/repository"
	"github.com/unmined/spinrewards/internal/infrastructure/storage"
	"github.com/unmined/spinrewards/internal/usecase/balance"
)

const bank = "rBankAddress"

type fixture struct {
	svc      *Service
	ledger   *mocks.MockLedgerService
	balances *balance.Ledger
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logger.NewNop()
	mockLedger := mocks.NewMockLedgerService(ctrl)
	balances := balance.NewLedger(
		repository.NewBalanceRepository(storage.NewMemoryStore()),
		balance.BackdoorPolicy{Username: "tyspn", Amount: 999999999},
		lock.NewKeyedLockManager(log),
		log,
	)
	poller := receipt.NewPoller(mockLedger, time.Millisecond, 50*time.Millisecond, log)

	return &fixture{
		svc:      NewService(mockLedger, poller, balances, bank, decimal.RequireFromString("0.1"), log),
		ledger:   mockLedger,
		balances: balances,
	}
}

func TestQuoteAndDrops(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, int64(3), f.svc.Quote(decimal.RequireFromString("0.3")))
	assert.Equal(t, int64(2), f.svc.Quote(decimal.RequireFromString("0.25")))
	assert.Equal(t, int64(0), f.svc.Quote(decimal.RequireFromString("0.09")))
	assert.Equal(t, int64(0), f.svc.Quote(decimal.RequireFromString("-1")))

	drops, err := ToDrops(decimal.RequireFromString("1.5"))
	require.NoError(t, err)
	assert.Equal(t, int64(1500000), drops)

	_, err = ToDrops(decimal.RequireFromString("0.0000001"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidAmount))
}

func TestBuySpinsCreditsAfterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.EXPECT().DeriveAddress(ctx, "sSecret").Return("rAlice", nil)
	f.ledger.EXPECT().SignAndSubmit(ctx, "sSecret", bank, int64(1000000)).
		Return(&domain.SubmitResult{TxHash: "TX1", Account: "rAlice", EngineResult: "tesSUCCESS"}, nil)
	f.ledger.EXPECT().QueryTransaction(gomock.Any(), "TX1").
		Return(&domain.TransactionStatus{TxHash: "TX1", Result: "tesSUCCESS", LedgerIndex: 9, Validated: true}, nil)

	purchase, err := f.svc.BuySpins(ctx, "alice", " sSecret ", decimal.RequireFromString("1"))
	require.NoError(t, err)
	assert.Equal(t, int64(10), purchase.Spins)
	assert.Equal(t, int64(10), purchase.Balance)
	assert.Equal(t, "rAlice", purchase.Account)
	assert.Equal(t, int64(9), purchase.LedgerIndex)
	assert.Equal(t, int64(10), f.balances.Load(ctx, "alice"))
}

func TestBuySpinsValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.BuySpins(ctx, "alice", "  ", decimal.RequireFromString("1"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeRequiredField))

	_, err = f.svc.BuySpins(ctx, "tyspn", "sSecret", decimal.RequireFromString("1"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeValidation))

	_, err = f.svc.BuySpins(ctx, "alice", "sSecret", decimal.RequireFromString("0.05"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidAmount))
}

func TestBuySpinsNoCreditOnFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("bad_secret", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().DeriveAddress(ctx, "bad").
			Return("", &domain.LedgerServiceError{StatusCode: 400, Code: "badSeed"})

		_, err := f.svc.BuySpins(ctx, "alice", "bad", decimal.RequireFromString("1"))
		assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidFormat))
		assert.Equal(t, int64(0), f.balances.Load(ctx, "alice"))
	})

	t.Run("node_down", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().DeriveAddress(ctx, "sSecret").Return("rAlice", nil)
		f.ledger.EXPECT().SignAndSubmit(ctx, "sSecret", bank, int64(500000)).
			Return(nil, errors.New("dial tcp: connection refused"))

		_, err := f.svc.BuySpins(ctx, "alice", "sSecret", decimal.RequireFromString("0.5"))
		assert.True(t, domain.HasCode(err, domain.ErrCodeLedgerService))
		assert.Equal(t, int64(0), f.balances.Load(ctx, "alice"))
	})

	t.Run("failed_on_ledger", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().DeriveAddress(ctx, "sSecret").Return("rAlice", nil)
		f.ledger.EXPECT().SignAndSubmit(ctx, "sSecret", bank, int64(500000)).
			Return(&domain.SubmitResult{TxHash: "TX2"}, nil)
		f.ledger.EXPECT().QueryTransaction(gomock.Any(), "TX2").
			Return(&domain.TransactionStatus{TxHash: "TX2", Result: "tecUNFUNDED_PAYMENT", Validated: true}, nil)

		_, err := f.svc.BuySpins(ctx, "alice", "sSecret", decimal.RequireFromString("0.5"))
		assert.True(t, domain.HasCode(err, domain.ErrCodeLedgerRejected))
		assert.Equal(t, int64(0), f.balances.Load(ctx, "alice"))
	})

	t.Run("never_validated", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().DeriveAddress(ctx, "sSecret").Return("rAlice", nil)
		f.ledger.EXPECT().SignAndSubmit(ctx, "sSecret", bank, int64(500000)).
			Return(&domain.SubmitResult{TxHash: "TX3"}, nil)
		f.ledger.EXPECT().QueryTransaction(gomock.Any(), "TX3").
			Return(&domain.TransactionStatus{TxHash: "TX3"}, nil).AnyTimes()

		_, err := f.svc.BuySpins(ctx, "alice", "sSecret", decimal.RequireFromString("0.5"))
		assert.True(t, domain.HasCode(err, domain.ErrCodeLedgerTimeout))
		assert.Equal(t, int64(0), f.balances.Load(ctx, "alice"))
	})
}
