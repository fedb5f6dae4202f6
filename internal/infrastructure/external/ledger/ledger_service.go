package ledger

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Config holds the ledger node client settings
type Config struct {
	URL      string
	Timeout  time.Duration
	RetryMax int
}

type ledgerServiceImpl struct {
	url    string
	client *retryablehttp.Client
	logger *logger.Logger
}

// NewLedgerService creates a JSON-RPC client for a rippled-compatible node
func NewLedgerService(cfg Config, log *logger.Logger) domain.LedgerService {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.RetryMax
	client.HTTPClient.Timeout = cfg.Timeout
	client.CheckRetry = checkRetry
	client.Logger = leveledLogger{sugar: log.Zap().Sugar().Named("ledger")}

	return &ledgerServiceImpl{
		url:    cfg.URL,
		client: client,
		logger: log,
	}
}

type walletProposeResult struct {
	AccountID string `json:"account_id"`
}

type submitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultMessage string `json:"engine_result_message"`
	TxJSON              struct {
		Account string `json:"Account"`
		Hash    string `json:"hash"`
	} `json:"tx_json"`
}

type txResult struct {
	Hash        string `json:"hash"`
	LedgerIndex int64  `json:"ledger_index"`
	Validated   bool   `json:"validated"`
	Meta        struct {
		TransactionResult string `json:"TransactionResult"`
	} `json:"meta"`
}

type accountInfoResult struct {
	AccountData struct {
		Account string `json:"Account"`
		Balance string `json:"Balance"`
	} `json:"account_data"`
	LedgerIndex int64 `json:"ledger_index"`
}

type issuedAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type accountTxResult struct {
	Transactions []struct {
		Tx struct {
			Hash            string          `json:"hash"`
			TransactionType string          `json:"TransactionType"`
			Account         string          `json:"Account"`
			Destination     string          `json:"Destination"`
			Amount          json.RawMessage `json:"Amount"`
			Date            int64           `json:"date"`
			LedgerIndex     int64           `json:"ledger_index"`
		} `json:"tx"`
		Meta struct {
			TransactionResult string `json:"TransactionResult"`
		} `json:"meta"`
		Validated bool `json:"validated"`
	} `json:"transactions"`
}

// DeriveAddress returns the classic address of the family seed
func (s *ledgerServiceImpl) DeriveAddress(ctx context.Context, secret string) (string, error) {
	var out walletProposeResult
	if err := s.call(ctx, "wallet_propose", map[string]any{"seed": secret}, &out); err != nil {
		return "", err
	}
	if out.AccountID == "" {
		return "", &domain.LedgerServiceError{Code: "badSeed", Message: "node returned no account"}
	}
	return out.AccountID, nil
}

// SignAndSubmit signs a Payment of drops to destination with secret and
// submits it. The node signs; the secret is only forwarded.
func (s *ledgerServiceImpl) SignAndSubmit(ctx context.Context, secret, destination string, drops int64) (*domain.SubmitResult, error) {
	account, err := s.DeriveAddress(ctx, secret)
	if err != nil {
		return nil, err
	}

	params := map[string]any{
		"secret":       secret,
		"fee_mult_max": 1000,
		"tx_json": map[string]any{
			"TransactionType": "Payment",
			"Account":         account,
			"Destination":     destination,
			"Amount":          strconv.FormatInt(drops, 10),
		},
	}

	var out submitResult
	if err := s.call(withoutRetry(ctx), "submit", params, &out); err != nil {
		return nil, err
	}

	s.logger.Info("Payment submitted",
		zap.String("account", account),
		zap.String("destination", destination),
		zap.Int64("drops", drops),
		zap.String("tx_hash", out.TxJSON.Hash),
		zap.String("engine_result", out.EngineResult))

	if IsRejected(out.EngineResult) {
		return nil, &domain.LedgerServiceError{
			StatusCode: 422,
			Code:       out.EngineResult,
			Message:    out.EngineResultMessage,
		}
	}

	return &domain.SubmitResult{
		TxHash:       out.TxJSON.Hash,
		Account:      account,
		EngineResult: out.EngineResult,
	}, nil
}

// QueryTransaction looks a transaction up by hash
func (s *ledgerServiceImpl) QueryTransaction(ctx context.Context, txHash string) (*domain.TransactionStatus, error) {
	var out txResult
	if err := s.call(ctx, "tx", map[string]any{"transaction": txHash}, &out); err != nil {
		return nil, err
	}

	return &domain.TransactionStatus{
		TxHash:      out.Hash,
		Result:      out.Meta.TransactionResult,
		LedgerIndex: out.LedgerIndex,
		Validated:   out.Validated,
	}, nil
}

// AccountInfo reads the balance of address from the last validated ledger
func (s *ledgerServiceImpl) AccountInfo(ctx context.Context, address string) (*domain.AccountInfo, error) {
	params := map[string]any{
		"account":      address,
		"ledger_index": "validated",
		"strict":       true,
	}

	var out accountInfoResult
	if err := s.call(ctx, "account_info", params, &out); err != nil {
		return nil, err
	}

	drops, err := strconv.ParseInt(out.AccountData.Balance, 10, 64)
	if err != nil {
		return nil, &domain.LedgerServiceError{Code: "badBalance", Message: "node returned balance " + strconv.Quote(out.AccountData.Balance)}
	}

	return &domain.AccountInfo{
		Address:     address,
		Drops:       drops,
		LedgerIndex: out.LedgerIndex,
	}, nil
}

// AccountTransactions returns up to limit of the most recent transactions
// touching address, newest first
func (s *ledgerServiceImpl) AccountTransactions(ctx context.Context, address string, limit int) ([]domain.AccountTx, error) {
	params := map[string]any{
		"account": address,
		"limit":   limit,
	}

	var out accountTxResult
	if err := s.call(ctx, "account_tx", params, &out); err != nil {
		return nil, err
	}

	txs := make([]domain.AccountTx, 0, len(out.Transactions))
	for _, entry := range out.Transactions {
		tx := domain.AccountTx{
			TxHash:      entry.Tx.Hash,
			Type:        entry.Tx.TransactionType,
			Account:     entry.Tx.Account,
			Destination: entry.Tx.Destination,
			Result:      entry.Meta.TransactionResult,
			LedgerIndex: entry.Tx.LedgerIndex,
			Date:        entry.Tx.Date,
			Validated:   entry.Validated,
		}
		tx.Drops, tx.IssuedAmount = decodeAmount(entry.Tx.Amount)
		txs = append(txs, tx)
	}
	return txs, nil
}
