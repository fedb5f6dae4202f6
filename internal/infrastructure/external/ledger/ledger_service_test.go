package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
)

type recordedCall struct {
	Method string           `json:"method"`
	Params []map[string]any `json:"params"`
}

func newTestService(t *testing.T, handler func(call recordedCall) (int, string)) (*ledgerServiceImpl, *int32) {
	t.Helper()
	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		var call recordedCall
		require.NoError(t, json.NewDecoder(r.Body).Decode(&call))
		status, body := handler(call)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	svc := NewLedgerService(Config{URL: server.URL, Timeout: 5 * time.Second, RetryMax: 2}, logger.NewNop()).(*ledgerServiceImpl)
	svc.client.RetryWaitMin = time.Millisecond
	svc.client.RetryWaitMax = 5 * time.Millisecond
	return svc, &hits
}

func TestDeriveAddress(t *testing.T) {
	svc, _ := newTestService(t, func(call recordedCall) (int, string) {
		assert.Equal(t, "wallet_propose", call.Method)
		if call.Params[0]["seed"] == "sGood" {
			return 200, `{"result":{"status":"success","account_id":"rAlice"}}`
		}
		return 200, `{"result":{"status":"error","error":"badSeed","error_message":"Disallowed seed."}}`
	})

	address, err := svc.DeriveAddress(context.Background(), "sGood")
	require.NoError(t, err)
	assert.Equal(t, "rAlice", address)

	_, err = svc.DeriveAddress(context.Background(), "nope")
	var ledgerErr *domain.LedgerServiceError
	require.ErrorAs(t, err, &ledgerErr)
	assert.Equal(t, "badSeed", ledgerErr.Code)
	assert.True(t, Is4xxError(err))
}

func TestSignAndSubmit(t *testing.T) {
	svc, _ := newTestService(t, func(call recordedCall) (int, string) {
		switch call.Method {
		case "wallet_propose":
			return 200, `{"result":{"status":"success","account_id":"rAlice"}}`
		case "submit":
			tx := call.Params[0]["tx_json"].(map[string]any)
			assert.Equal(t, "Payment", tx["TransactionType"])
			assert.Equal(t, "rAlice", tx["Account"])
			assert.Equal(t, "rBank", tx["Destination"])
			assert.Equal(t, "2500000", tx["Amount"])
			return 200, `{"result":{"status":"success","engine_result":"tesSUCCESS","tx_json":{"Account":"rAlice","hash":"ABC123"}}}`
		}
		return 500, "unexpected"
	})

	result, err := svc.SignAndSubmit(context.Background(), "sGood", "rBank", 2500000)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", result.TxHash)
	assert.Equal(t, "rAlice", result.Account)
	assert.Equal(t, domain.LedgerResultSuccess, result.EngineResult)
}

func TestSignAndSubmitRejected(t *testing.T) {
	svc, _ := newTestService(t, func(call recordedCall) (int, string) {
		if call.Method == "wallet_propose" {
			return 200, `{"result":{"status":"success","account_id":"rAlice"}}`
		}
		return 200, `{"result":{"status":"success","engine_result":"temBAD_AMOUNT","engine_result_message":"Can only send positive amounts.","tx_json":{"hash":"X"}}}`
	})

	_, err := svc.SignAndSubmit(context.Background(), "sGood", "rBank", 0)
	var ledgerErr *domain.LedgerServiceError
	require.ErrorAs(t, err, &ledgerErr)
	assert.Equal(t, "temBAD_AMOUNT", ledgerErr.Code)
}

func TestSubmitIsNotRetried(t *testing.T) {
	var submits int32
	svc, _ := newTestService(t, func(call recordedCall) (int, string) {
		if call.Method == "wallet_propose" {
			return 200, `{"result":{"status":"success","account_id":"rAlice"}}`
		}
		atomic.AddInt32(&submits, 1)
		return 503, "busy"
	})

	_, err := svc.SignAndSubmit(context.Background(), "sGood", "rBank", 100)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&submits))
}

func TestQueryTransactionRetries(t *testing.T) {
	var attempts int32
	svc, hits := newTestService(t, func(call recordedCall) (int, string) {
		assert.Equal(t, "tx", call.Method)
		assert.Equal(t, "ABC123", call.Params[0]["transaction"])
		if atomic.AddInt32(&attempts, 1) == 1 {
			return 502, "bad gateway"
		}
		return 200, `{"result":{"status":"success","hash":"ABC123","ledger_index":4242,"validated":true,"meta":{"TransactionResult":"tesSUCCESS"}}}`
	})

	status, err := svc.QueryTransaction(context.Background(), "ABC123")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
	assert.True(t, status.Succeeded())
	assert.Equal(t, int64(4242), status.LedgerIndex)
}

func TestIsNotFound(t *testing.T) {
	svc, _ := newTestService(t, func(call recordedCall) (int, string) {
		return 200, `{"result":{"status":"error","error":"txnNotFound","error_message":"Transaction not found."}}`
	})

	_, err := svc.QueryTransaction(context.Background(), "MISSING")
	assert.True(t, IsNotFound(err))
}

func TestIsRejected(t *testing.T) {
	assert.True(t, IsRejected("temMALFORMED"))
	assert.True(t, IsRejected("tefPAST_SEQ"))
	assert.True(t, IsRejected("telINSUF_FEE_P"))
	assert.False(t, IsRejected("tesSUCCESS"))
	assert.False(t, IsRejected("terQUEUED"))
	assert.False(t, IsRejected("tecUNFUNDED_PAYMENT"))
}

func TestAccountInfo(t *testing.T) {
	svc, _ := newTestService(t, func(call recordedCall) (int, string) {
		assert.Equal(t, "account_info", call.Method)
		assert.Equal(t, "validated", call.Params[0]["ledger_index"])
		switch call.Params[0]["account"] {
		case "rAlice":
			return 200, `{"result":{"status":"success","validated":true,"ledger_index":77,"account_data":{"Account":"rAlice","Balance":"12345678"}}}`
		default:
			return 200, `{"result":{"status":"error","error":"actNotFound","error_message":"Account not found."}}`
		}
	})

	info, err := svc.AccountInfo(context.Background(), "rAlice")
	require.NoError(t, err)
	assert.Equal(t, int64(12345678), info.Drops)
	assert.Equal(t, int64(77), info.LedgerIndex)
	assert.Equal(t, "rAlice", info.Address)

	_, err = svc.AccountInfo(context.Background(), "rNobody")
	assert.True(t, IsAccountNotFound(err))
	assert.False(t, IsNotFound(err))
}

func TestAccountTransactions(t *testing.T) {
	svc, _ := newTestService(t, func(call recordedCall) (int, string) {
		assert.Equal(t, "account_tx", call.Method)
		assert.Equal(t, "rAlice", call.Params[0]["account"])
		assert.Equal(t, float64(20), call.Params[0]["limit"])
		return 200, `{"result":{"status":"success","account":"rAlice","transactions":[
			{"tx":{"hash":"H1","TransactionType":"Payment","Account":"rAlice","Destination":"rBank","Amount":"1500000","date":800000000,"ledger_index":90},"meta":{"TransactionResult":"tesSUCCESS"},"validated":true},
			{"tx":{"hash":"H2","TransactionType":"Payment","Account":"rBob","Destination":"rAlice","Amount":{"value":"2.5","currency":"USD","issuer":"rIssuer"},"ledger_index":88},"meta":{"TransactionResult":"tesSUCCESS"},"validated":true},
			{"tx":{"hash":"H3","TransactionType":"TrustSet","Account":"rAlice","ledger_index":80},"meta":{"TransactionResult":"tesSUCCESS"},"validated":false}
		]}}`
	})

	txs, err := svc.AccountTransactions(context.Background(), "rAlice", 20)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	assert.Equal(t, "H1", txs[0].TxHash)
	assert.Equal(t, int64(1500000), txs[0].Drops)
	assert.Equal(t, "rBank", txs[0].Destination)
	assert.Equal(t, int64(800000000), txs[0].Date)
	assert.Equal(t, int64(90), txs[0].LedgerIndex)

	assert.Equal(t, int64(0), txs[1].Drops)
	assert.Equal(t, "2.5 USD", txs[1].IssuedAmount)

	assert.Equal(t, "TrustSet", txs[2].Type)
	assert.Empty(t, txs[2].IssuedAmount)
	assert.False(t, txs[2].Validated)
}
