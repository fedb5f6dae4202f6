package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/domain/mocks"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
)

func TestAwaitUntilValidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	poller := NewPoller(mockLedger, time.Millisecond, time.Second, logger.NewNop())

	gomock.InOrder(
		mockLedger.EXPECT().QueryTransaction(gomock.Any(), "H1").
			Return(nil, &domain.LedgerServiceError{StatusCode: 400, Code: "txnNotFound"}),
		mockLedger.EXPECT().QueryTransaction(gomock.Any(), "H1").
			Return(nil, errors.New("connection reset")),
		mockLedger.EXPECT().QueryTransaction(gomock.Any(), "H1").
			Return(&domain.TransactionStatus{TxHash: "H1", Result: "tesSUCCESS"}, nil),
		mockLedger.EXPECT().QueryTransaction(gomock.Any(), "H1").
			Return(&domain.TransactionStatus{TxHash: "H1", Result: "tesSUCCESS", LedgerIndex: 77, Validated: true}, nil),
	)

	status, err := poller.Await(context.Background(), "H1")
	require.NoError(t, err)
	assert.True(t, status.Succeeded())
	assert.Equal(t, int64(77), status.LedgerIndex)
}

func TestAwaitTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mocks.NewMockLedgerService(ctrl)
	poller := NewPoller(mockLedger, 5*time.Millisecond, 30*time.Millisecond, logger.NewNop())

	mockLedger.EXPECT().QueryTransaction(gomock.Any(), "H2").
		Return(&domain.TransactionStatus{TxHash: "H2"}, nil).
		AnyTimes()

	_, err := poller.Await(context.Background(), "H2")
	assert.ErrorIs(t, err, ErrTimeout)
}
