package ledger

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/unmined/spinrewards/internal/domain"
	"go.uber.org/zap"
)

// IsRejected reports an engine result that can never apply:
// malformed (tem), failed (tef) or local (tel) results.
func IsRejected(engineResult string) bool {
	for _, prefix := range []string{"tem", "tef", "tel"} {
		if strings.HasPrefix(engineResult, prefix) {
			return true
		}
	}
	return false
}

// decodeAmount reads a ledger Amount: a string of drops for XRP, or an
// object with value and currency for issued currencies
func decodeAmount(raw json.RawMessage) (int64, string) {
	if len(raw) == 0 {
		return 0, ""
	}
	var drops string
	if err := json.Unmarshal(raw, &drops); err == nil {
		n, _ := strconv.ParseInt(drops, 10, 64)
		return n, ""
	}
	var issued issuedAmount
	if err := json.Unmarshal(raw, &issued); err == nil && issued.Value != "" {
		return 0, strings.TrimSpace(issued.Value + " " + issued.Currency)
	}
	return 0, ""
}

// IsAccountNotFound checks if the account is not funded on the ledger
func IsAccountNotFound(err error) bool {
	return domain.IsAccountNotFound(err)
}

// IsNotFound checks if the node does not know the transaction yet
func IsNotFound(err error) bool {
	var ledgerErr *domain.LedgerServiceError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Code == "txnNotFound"
	}
	return false
}

// Is4xxError checks if the error is a 4xx client error
func Is4xxError(err error) bool {
	var ledgerErr *domain.LedgerServiceError
	if errors.As(err, &ledgerErr) {
		return ledgerErr.Is4xxError()
	}
	return false
}

// leveledLogger adapts zap to retryablehttp.LeveledLogger
type leveledLogger struct {
	sugar *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
