package payment

import (
	"context"
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
	"github.com/unmined/spinrewards/internal/usecase/settings"
	"github.com/unmined/spinrewards/internal/usecase/wallet"
)

const defaultDest = "rnLDsmcYdsFiP9iad1dmaFJwy2VLRPsHNa"

type fixture struct {
	svc     *Service
	ledger  *mocks.MockLedgerService
	dests   *settings.DestinationService
	wallets *wallet.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	log := logger.NewNop()
	store := storage.NewMemoryStore()
	mockLedger := mocks.NewMockLedgerService(ctrl)
	dests := settings.NewDestinationService(repository.NewSettingsRepository(store), defaultDest, log)
	poller := receipt.NewPoller(mockLedger, time.Millisecond, 50*time.Millisecond, log)
	wallets := wallet.NewService(mockLedger,
		repository.NewReceiptRepository(store),
		repository.NewSentValueRepository(store),
		lock.NewKeyedLockManager(log),
		log)

	return &fixture{
		svc:     NewService(mockLedger, poller, dests, wallets, log),
		ledger:  mockLedger,
		dests:   dests,
		wallets: wallets,
	}
}

func newTestService(t *testing.T) (*Service, *mocks.MockLedgerService, *settings.DestinationService) {
	f := newFixture(t)
	return f.svc, f.ledger, f.dests
}

func TestSendToDefaultDestination(t *testing.T) {
	svc, mockLedger, _ := newTestService(t)
	ctx := context.Background()

	mockLedger.EXPECT().SignAndSubmit(ctx, "sSecret", defaultDest, int64(2000000)).
		Return(&domain.SubmitResult{TxHash: "P1", Account: "rAlice"}, nil)
	mockLedger.EXPECT().QueryTransaction(gomock.Any(), "P1").
		Return(&domain.TransactionStatus{TxHash: "P1", Result: "tesSUCCESS", LedgerIndex: 5, Validated: true}, nil)

	rcpt, err := svc.Send(ctx, "sSecret", decimal.RequireFromString("2"))
	require.NoError(t, err)
	assert.True(t, rcpt.Success)
	assert.Equal(t, defaultDest, rcpt.Destination)
	assert.Equal(t, int64(2000000), rcpt.Drops)
}

func TestSendReportsLedgerFailure(t *testing.T) {
	svc, mockLedger, _ := newTestService(t)
	ctx := context.Background()

	mockLedger.EXPECT().SignAndSubmit(ctx, "sSecret", defaultDest, int64(1)).
		Return(&domain.SubmitResult{TxHash: "P2"}, nil)
	mockLedger.EXPECT().QueryTransaction(gomock.Any(), "P2").
		Return(&domain.TransactionStatus{TxHash: "P2", Result: "tecNO_DST_INSUF_XRP", Validated: true}, nil)

	rcpt, err := svc.Send(ctx, "sSecret", decimal.RequireFromString("0.000001"))
	require.NoError(t, err)
	assert.False(t, rcpt.Success)
	assert.Equal(t, "tecNO_DST_INSUF_XRP", rcpt.Result)
}

func TestSendRefusesSpinDestination(t *testing.T) {
	svc, _, dests := newTestService(t)
	ctx := context.Background()

	_, err := dests.Set(ctx, "spin")
	require.NoError(t, err)

	_, err = svc.Send(ctx, "sSecret", decimal.RequireFromString("1"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeValidation))

	_, err = svc.Send(ctx, "", decimal.RequireFromString("1"))
	assert.True(t, domain.HasCode(err, domain.ErrCodeRequiredField))
}

func TestSendRecordsReceiptAndSentTotal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.EXPECT().SignAndSubmit(ctx, "sSecret", defaultDest, gomock.Any()).
		Return(&domain.SubmitResult{TxHash: "P3", Account: "rAlice"}, nil)
	f.ledger.EXPECT().QueryTransaction(gomock.Any(), "P3").
		Return(&domain.TransactionStatus{TxHash: "P3", Result: "tesSUCCESS", LedgerIndex: 6, Validated: true}, nil)
	f.ledger.EXPECT().SignAndSubmit(ctx, "sSecret", defaultDest, gomock.Any()).
		Return(&domain.SubmitResult{TxHash: "P4", Account: "rAlice"}, nil)
	f.ledger.EXPECT().QueryTransaction(gomock.Any(), "P4").
		Return(&domain.TransactionStatus{TxHash: "P4", Result: "tecPATH_DRY", LedgerIndex: 7, Validated: true}, nil)

	_, err := f.svc.Send(ctx, "sSecret", decimal.RequireFromString("1.5"))
	require.NoError(t, err)
	_, err = f.svc.Send(ctx, "sSecret", decimal.RequireFromString("4"))
	require.NoError(t, err)

	stored, err := f.wallets.Receipt(ctx, "P3")
	require.NoError(t, err)
	assert.True(t, stored.Success)
	assert.Equal(t, int64(6), stored.LedgerIndex)

	failed, err := f.wallets.Receipt(ctx, "P4")
	require.NoError(t, err)
	assert.False(t, failed.Success)

	assert.Equal(t, "1.5", f.wallets.SentTotal(ctx, "rAlice").String())
}
