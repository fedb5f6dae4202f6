package app

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/lock"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/infrastructure/random"
	"github.com/unmined/spinrewards/internal/usecase/auth"
	"github.com/unmined/spinrewards/internal/usecase/balance"
	"github.com/unmined/spinrewards/internal/usecase/funding"
	"github.com/unmined/spinrewards/internal/usecase/inventory"
	"github.com/unmined/spinrewards/internal/usecase/payment"
	"github.com/unmined/spinrewards/internal/usecase/plinko"
	"github.com/unmined/spinrewards/internal/usecase/settings"
	"github.com/unmined/spinrewards/internal/usecase/spin"
	"github.com/unmined/spinrewards/internal/usecase/wallet"
)

func (a *application) InitRandom() domain.Random {
	return random.New()
}

// InitBalanceLedger gives the ledger its own lock manager so usernames
// never share a lock with session ids
func (a *application) InitBalanceLedger(repo domain.BalanceRepository, log *logger.Logger) domain.BalanceLedger {
	policy := balance.BackdoorPolicy{
		Username: a.config.Rewards.BackdoorUser,
		Amount:   a.config.Rewards.BackdoorAmount,
	}
	return balance.NewLedger(repo, policy, lock.NewKeyedLockManager(log), log)
}

func (a *application) InitInventory(repo domain.InventoryRepository, log *logger.Logger) domain.Inventory {
	return inventory.NewInventory(repo, a.config.Rewards.SavedMax, log)
}

func (a *application) InitAuthRegistry(repo domain.CredentialRepository, log *logger.Logger) domain.AuthRegistry {
	return auth.NewRegistry(repo, log)
}

func (a *application) InitSpinEngine(rng domain.Random) (domain.SpinEngine, error) {
	engine, err := spin.NewEngine(spin.DefaultShapes, spin.DefaultColors, rng)
	if err != nil {
		return nil, err
	}
	return engine, nil
}

func (a *application) InitPlinkoBoard() *plinko.Board {
	return plinko.NewDefaultBoard()
}

func (a *application) InitDestinationService(repo domain.SettingsRepository, log *logger.Logger) *settings.DestinationService {
	return settings.NewDestinationService(repo, a.config.Rewards.DefaultDestination, log)
}

func (a *application) InitFundingService(
	ledgerSvc domain.LedgerService,
	receipts domain.ReceiptAwaiter,
	balances domain.BalanceLedger,
	log *logger.Logger,
) (*funding.Service, error) {
	xrpPerSpin, err := decimal.NewFromString(a.config.Rewards.XRPPerSpin)
	if err != nil {
		return nil, fmt.Errorf("invalid rewards.xrp_per_spin %q: %w", a.config.Rewards.XRPPerSpin, err)
	}
	if !xrpPerSpin.IsPositive() {
		return nil, fmt.Errorf("rewards.xrp_per_spin must be positive, got %s", xrpPerSpin)
	}
	return funding.NewService(ledgerSvc, receipts, balances, a.config.Ledger.BankAddress, xrpPerSpin, log), nil
}

// InitWalletService gives sent totals their own lock manager, keyed by
// ledger address
func (a *application) InitWalletService(
	ledgerSvc domain.LedgerService,
	receipts domain.ReceiptRepository,
	sent domain.SentValueRepository,
	log *logger.Logger,
) *wallet.Service {
	return wallet.NewService(ledgerSvc, receipts, sent, lock.NewKeyedLockManager(log), log)
}

func (a *application) InitPaymentService(
	ledgerSvc domain.LedgerService,
	receipts domain.ReceiptAwaiter,
	destinations *settings.DestinationService,
	wallets *wallet.Service,
	log *logger.Logger,
) *payment.Service {
	return payment.NewService(ledgerSvc, receipts, destinations, wallets, log)
}
