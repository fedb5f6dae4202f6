package session

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/usecase/blackjack"
	"github.com/unmined/spinrewards/internal/usecase/funding"
	"github.com/unmined/spinrewards/internal/usecase/plinko"
	"github.com/unmined/spinrewards/internal/usecase/spin"
	"go.uber.org/zap"
)

// Funder buys spins for a user
type Funder interface {
	BuySpins(ctx context.Context, username, secret string, xrp decimal.Decimal) (*funding.Purchase, error)
}

// Dependencies are the collaborators shared by every controller
type Dependencies struct {
	Auth      domain.AuthRegistry
	Balances  domain.BalanceLedger
	Inventory domain.Inventory
	Settings  domain.SettingsRepository
	Engine    domain.SpinEngine
	Board     *plinko.Board
	Random    domain.Random
	Funder    Funder
	Logger    *logger.Logger

	MaxBatch          int
	SpinRevealDelay   time.Duration
	PlinkoSettleDelay time.Duration
}

// Option configures a Controller
type Option func(*Controller)

// WithActiveUserKey overrides the storage key of the active-user pointer.
// The default is the bare "activeUser" key; the session manager passes
// "activeUser:{sid}" (see ActiveUserKey) so each JWT session resumes its
// own user.
func WithActiveUserKey(key string) Option {
	return func(c *Controller) {
		c.activeUserKey = key
	}
}

// Controller holds the signed-in user and the in-memory state bound to
// them: cached balance and inventory, the spin batch being revealed and
// the current game rounds. It is not safe for concurrent use.
type Controller struct {
	deps          Dependencies
	activeUserKey string

	user    string
	balance int64
	slots   []domain.SpinOutcome

	batch       []domain.SpinOutcome
	revealIndex int

	blackjack *blackjack.Round
	plinko    *plinko.Round
}

// NewController creates a signed-out controller
func NewController(deps Dependencies, opts ...Option) *Controller {
	if deps.MaxBatch <= 0 {
		deps.MaxBatch = 10
	}
	c := &Controller{
		deps:          deps,
		activeUserKey: domain.KeyActiveUser,
		revealIndex:   -1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot is the user-visible state of a controller
type Snapshot struct {
	Username  string               `json:"username"`
	Balance   int64                `json:"balance"`
	Inventory []domain.SpinOutcome `json:"inventory"`
	Capacity  int                  `json:"capacity"`
	Revealing bool                 `json:"revealing"`
	Backdoor  bool                 `json:"backdoor"`
}

// SpinBatch is the result of a paid spin request
type SpinBatch struct {
	Outcomes    []domain.SpinOutcome `json:"outcomes"`
	Balance     int64                `json:"balance"`
	RevealDelay time.Duration        `json:"reveal_delay"`
}

// Reveal is the outcome currently shown during reveal sequencing
type Reveal struct {
	Index   int                `json:"index"`
	Total   int                `json:"total"`
	Outcome domain.SpinOutcome `json:"outcome"`
}

// PlinkoDrop is a settled plinko drop
type PlinkoDrop struct {
	Round       *plinko.Round `json:"round"`
	Balance     int64         `json:"balance"`
	SettleDelay time.Duration `json:"settle_delay"`
}

// Resume restores the user named by the active-user pointer, if any
func (c *Controller) Resume(ctx context.Context) bool {
	name, err := c.deps.Settings.Get(ctx, c.activeUserKey)
	if err != nil {
		c.deps.Logger.Warn("Failed to read active user", zap.Error(err))
		return false
	}
	if name == "" {
		return false
	}
	c.hydrate(ctx, name)
	return true
}

// SignIn authenticates username and binds the controller to them
func (c *Controller) SignIn(ctx context.Context, username, password string) (string, error) {
	name, err := c.deps.Auth.SignIn(ctx, username, password)
	if err != nil {
		return "", err
	}

	if err := c.deps.Settings.Set(ctx, c.activeUserKey, name); err != nil {
		c.deps.Logger.Warn("Failed to persist active user",
			zap.String("username", name),
			zap.Error(err))
	}
	c.hydrate(ctx, name)
	return name, nil
}

// SignOut forgets the active user and clears all user-scoped state.
// Stored balance, inventory and credential are left untouched.
func (c *Controller) SignOut(ctx context.Context) {
	if err := c.deps.Settings.Clear(ctx, c.activeUserKey); err != nil {
		c.deps.Logger.Warn("Failed to clear active user", zap.Error(err))
	}
	c.reset()
}

// ActiveUser returns the signed-in username
func (c *Controller) ActiveUser() (string, bool) {
	return c.user, c.user != ""
}

// Balance returns the cached effective balance
func (c *Controller) Balance() int64 {
	return c.balance
}

// Refresh reloads balance and inventory from storage. Other sessions of
// the same user may have changed them.
func (c *Controller) Refresh(ctx context.Context) {
	if c.user == "" {
		return
	}
	c.balance = c.deps.Balances.Load(ctx, c.user)
	c.slots = c.deps.Inventory.List(ctx, c.user)
}

// Inventory returns the cached saved slots
func (c *Controller) Inventory() []domain.SpinOutcome {
	return append([]domain.SpinOutcome{}, c.slots...)
}

// Snapshot returns the user-visible state
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Username:  c.user,
		Balance:   c.balance,
		Inventory: c.Inventory(),
		Capacity:  c.deps.Inventory.Capacity(),
		Revealing: c.Revealing(),
		Backdoor:  c.user != "" && c.deps.Balances.IsPrivileged(c.user),
	}
}

// Spin charges count spins and draws count outcomes, then starts
// revealing them from the first.
func (c *Controller) Spin(ctx context.Context, count int) (*SpinBatch, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	if c.Revealing() {
		return nil, domain.NewGameStateError("Finish revealing the current spins first.")
	}
	if count < 1 || count > c.deps.MaxBatch {
		return nil, domain.NewValidationError("count", "must be between 1 and the batch limit")
	}
	if err := c.charge(ctx, int64(count)); err != nil {
		return nil, err
	}

	c.batch = spin.RunBatch(c.deps.Engine, count)
	c.revealIndex = 0

	c.deps.Logger.Info("Spins drawn",
		zap.String("username", c.user),
		zap.Int("count", count),
		zap.Int64("balance", c.balance))

	return &SpinBatch{
		Outcomes:    append([]domain.SpinOutcome{}, c.batch...),
		Balance:     c.balance,
		RevealDelay: c.deps.SpinRevealDelay,
	}, nil
}

// Revealing reports whether a batch is being revealed one at a time
func (c *Controller) Revealing() bool {
	return c.revealIndex >= 0 && c.revealIndex < len(c.batch)
}

// CurrentReveal returns the outcome being shown
func (c *Controller) CurrentReveal() (*Reveal, bool) {
	if !c.Revealing() {
		return nil, false
	}
	return &Reveal{
		Index:   c.revealIndex,
		Total:   len(c.batch),
		Outcome: c.batch[c.revealIndex],
	}, true
}

// Advance moves to the next outcome. Advancing past the last one ends
// reveal sequencing and exposes the batch through Results.
func (c *Controller) Advance() (*Reveal, bool) {
	if !c.Revealing() {
		return nil, false
	}
	if c.revealIndex < len(c.batch)-1 {
		c.revealIndex++
		return c.CurrentReveal()
	}
	c.revealIndex = -1
	return nil, false
}

// Results returns the last batch once it has been fully revealed
func (c *Controller) Results() []domain.SpinOutcome {
	if c.Revealing() {
		return nil
	}
	return append([]domain.SpinOutcome{}, c.batch...)
}

// SaveResult saves the outcome at index of the revealed batch
func (c *Controller) SaveResult(ctx context.Context, index int) ([]domain.SpinOutcome, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	if c.Revealing() {
		return nil, domain.NewGameStateError("Finish revealing the current spins first.")
	}
	if index < 0 || index >= len(c.batch) {
		return nil, domain.NewValidationError("result_index", "no spin result at that index")
	}
	c.Refresh(ctx)
	if len(c.slots) >= c.deps.Inventory.Capacity() {
		return nil, domain.NewAppError(domain.ErrCodeInventoryFull, "Inventory is full.", http.StatusConflict, nil)
	}

	if !c.deps.Inventory.Save(ctx, c.user, c.batch[index]) {
		c.slots = c.deps.Inventory.List(ctx, c.user)
		return nil, domain.NewAppError(domain.ErrCodeInventoryFull, "Inventory is full.", http.StatusConflict, nil)
	}
	c.slots = c.deps.Inventory.List(ctx, c.user)
	return c.Inventory(), nil
}

// RemoveSaved deletes the saved slot at index
func (c *Controller) RemoveSaved(ctx context.Context, index int) ([]domain.SpinOutcome, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	if !c.deps.Inventory.Remove(ctx, c.user, index) {
		return nil, domain.NewValidationError("index", "no saved slot at that index")
	}
	c.slots = c.deps.Inventory.List(ctx, c.user)
	return c.Inventory(), nil
}

// Blackjack returns the current round, creating one in the betting phase
func (c *Controller) Blackjack() *blackjack.Round {
	if c.blackjack == nil {
		c.blackjack = blackjack.NewRound()
	}
	return c.blackjack
}

// PlaceBet debits bet and deals a new blackjack round
func (c *Controller) PlaceBet(ctx context.Context, bet int64) (*blackjack.Round, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	round := c.Blackjack()
	if round.Phase != blackjack.PhaseBet {
		return nil, domain.NewGameStateError("A round is already in progress.")
	}
	if err := c.checkWager(bet); err != nil {
		return nil, err
	}
	if err := c.charge(ctx, bet); err != nil {
		return nil, err
	}

	if err := round.Deal(bet, c.deps.Random); err != nil {
		c.balance = c.deps.Balances.Adjust(ctx, c.user, bet)
		return nil, err
	}

	c.deps.Logger.Info("Blackjack round dealt",
		zap.String("username", c.user),
		zap.Int64("bet", bet),
		zap.Int("player_score", blackjack.Score(round.Player)),
		zap.Int("dealer_score", blackjack.Score(round.Dealer)))
	return round, nil
}

// Hit draws a card for the player
func (c *Controller) Hit(ctx context.Context) (*blackjack.Round, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	round := c.Blackjack()
	if err := round.Hit(); err != nil {
		return nil, err
	}
	return round, nil
}

// Stand resolves the dealer hand and credits any payout
func (c *Controller) Stand(ctx context.Context) (*blackjack.Round, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	round := c.Blackjack()
	if err := round.Stand(); err != nil {
		return nil, err
	}

	if round.Payout > 0 {
		c.balance = c.deps.Balances.Adjust(ctx, c.user, round.Payout)
	}

	c.deps.Logger.Info("Blackjack round settled",
		zap.String("username", c.user),
		zap.String("outcome", string(round.Outcome)),
		zap.Int64("payout", round.Payout),
		zap.Int64("balance", c.balance))
	return round, nil
}

// ResetBlackjack returns a finished round to betting
func (c *Controller) ResetBlackjack() (*blackjack.Round, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	round := c.Blackjack()
	if err := round.Reset(); err != nil {
		return nil, err
	}
	return round, nil
}

// Drop debits bet, drops a ball and credits the payout
func (c *Controller) Drop(ctx context.Context, bet int64) (*PlinkoDrop, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	if c.plinko != nil && c.plinko.Phase == plinko.PhaseDropping {
		return nil, domain.NewGameStateError("A ball is already dropping.")
	}
	if err := c.checkWager(bet); err != nil {
		return nil, err
	}

	round, err := plinko.NewRound(bet)
	if err != nil {
		return nil, err
	}
	if err := c.charge(ctx, bet); err != nil {
		return nil, err
	}
	c.plinko = round

	if err := c.deps.Board.Drop(round, c.deps.Random); err != nil {
		return nil, err
	}
	if round.Payout > 0 {
		c.balance = c.deps.Balances.Adjust(ctx, c.user, round.Payout)
	}

	c.deps.Logger.Info("Plinko drop settled",
		zap.String("username", c.user),
		zap.Int64("bet", bet),
		zap.Int("slot", round.Slot),
		zap.Float64("multiplier", round.Multiplier),
		zap.Int64("payout", round.Payout))

	settled := *round
	return &PlinkoDrop{
		Round:       &settled,
		Balance:     c.balance,
		SettleDelay: c.deps.PlinkoSettleDelay,
	}, nil
}

// BuySpins funds spins with XRP and refreshes the cached balance
func (c *Controller) BuySpins(ctx context.Context, secret string, xrp decimal.Decimal) (*funding.Purchase, error) {
	if err := c.requireUser(); err != nil {
		return nil, err
	}
	purchase, err := c.deps.Funder.BuySpins(ctx, c.user, secret, xrp)
	if err != nil {
		return nil, err
	}
	c.balance = purchase.Balance
	return purchase, nil
}

func (c *Controller) checkWager(bet int64) error {
	if bet <= 0 {
		return domain.NewAppError(domain.ErrCodeInvalidAmount, "Bet must be a positive whole number.", http.StatusBadRequest, nil)
	}
	return nil
}

// charge debits amount from the stored balance in one checked step.
// On failure the cached balance is re-read so callers see what is left.
func (c *Controller) charge(ctx context.Context, amount int64) error {
	next, err := c.deps.Balances.Debit(ctx, c.user, amount)
	if err != nil {
		c.Refresh(ctx)
		return err
	}
	c.balance = next
	return nil
}

func (c *Controller) requireUser() error {
	if c.user == "" {
		return domain.NewAppError(domain.ErrCodeNotSignedIn, "Sign in first.", http.StatusUnauthorized, nil)
	}
	return nil
}

func (c *Controller) hydrate(ctx context.Context, username string) {
	c.reset()
	c.user = username
	c.Refresh(ctx)

	c.deps.Logger.Debug("Session hydrated",
		zap.String("username", username),
		zap.Int64("balance", c.balance),
		zap.Int("saved", len(c.slots)))
}

func (c *Controller) reset() {
	c.user = ""
	c.balance = 0
	c.slots = nil
	c.batch = nil
	c.revealIndex = -1
	c.blackjack = nil
	c.plinko = nil
}
