package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/http/middleware"
	"github.com/unmined/spinrewards/internal/infrastructure/logger"
	"github.com/unmined/spinrewards/internal/usecase/funding"
	"github.com/unmined/spinrewards/internal/usecase/payment"
	"github.com/unmined/spinrewards/internal/usecase/session"
	"github.com/unmined/spinrewards/internal/usecase/settings"
	"github.com/unmined/spinrewards/internal/usecase/wallet"
	"go.uber.org/zap"
)

// WalletHandler handles ledger funding, wallet lookups, the destination
// setting and payments
type WalletHandler struct {
	sessions     *session.Manager
	destinations *settings.DestinationService
	payments     *payment.Service
	wallets      *wallet.Service
	logger       *logger.Logger
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(
	sessions *session.Manager,
	destinations *settings.DestinationService,
	payments *payment.Service,
	wallets *wallet.Service,
	logger *logger.Logger,
) *WalletHandler {
	return &WalletHandler{
		sessions:     sessions,
		destinations: destinations,
		payments:     payments,
		wallets:      wallets,
		logger:       logger,
	}
}

// TransferRequest carries a wallet secret and an XRP amount
type TransferRequest struct {
	Secret string          `json:"secret" example:"sn3nxiW7v8KXzPzAqzyHXbSSKNuN9"`
	XRP    decimal.Decimal `json:"xrp" swaggertype:"string" example:"1.5"`
}

// SecretRequest carries a wallet secret. Secrets travel in the body only,
// never in a URL.
type SecretRequest struct {
	Secret string `json:"secret" example:"sn3nxiW7v8KXzPzAqzyHXbSSKNuN9"`
}

// DestinationRequest sets the payment destination
type DestinationRequest struct {
	Address string `json:"address" example:"rnLDsmcYdsFiP9iad1dmaFJwy2VLRPsHNa"`
}

// BuySpins pays XRP to the bank and credits spins
// @Summary Buy spins
// @Description Pay XRP to the bank address and credit floor(xrp / xrp_per_spin) spins once the payment validates
// @Tags funding
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransferRequest true "Wallet secret and amount"
// @Success 200 {object} funding.Purchase
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /funding/buy [post]
func (h *WalletHandler) BuySpins(c *gin.Context) {
	var req TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var purchase *funding.Purchase
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		var err error
		purchase, err = ctrl.BuySpins(ctx, req.Secret, req.XRP)
		return err
	}) {
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// Destination returns the payment destination
// @Summary Get destination
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Destination
// @Router /settings/destination [get]
func (h *WalletHandler) Destination(c *gin.Context) {
	c.JSON(http.StatusOK, h.destinations.Get(c.Request.Context()))
}

// SetDestination stores the payment destination
// @Summary Set destination
// @Description Store a classic XRP address, or "spin" to open the spin menu instead of paying
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DestinationRequest true "Destination"
// @Success 200 {object} domain.Destination
// @Failure 400 {object} ErrorResponse
// @Router /settings/destination [put]
func (h *WalletHandler) SetDestination(c *gin.Context) {
	var req DestinationRequest
	if !bindJSON(c, &req) {
		return
	}

	dest, err := h.destinations.Set(c.Request.Context(), req.Address)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dest)
}

// Send pays XRP to the stored destination
// @Summary Send payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransferRequest true "Wallet secret and amount"
// @Success 200 {object} domain.PaymentReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /payments [post]
func (h *WalletHandler) Send(c *gin.Context) {
	var req TransferRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var username string
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		user, ok := ctrl.ActiveUser()
		if !ok {
			return domain.NewAppError(domain.ErrCodeNotSignedIn, "Sign in first.", http.StatusUnauthorized, nil)
		}
		username = user
		return nil
	}) {
		return
	}

	receipt, err := h.payments.Send(ctx, req.Secret, req.XRP)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	h.logger.Info("Payment sent",
		zap.String("username", username),
		zap.String("tx_hash", receipt.TxHash),
		zap.String("result", receipt.Result))

	c.JSON(http.StatusOK, receipt)
}

// Balance reads the XRP balance of a wallet
// @Summary Wallet balance
// @Description Validated XRP balance of the wallet of the secret, plus the XRP it has sent through payments
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SecretRequest true "Wallet secret"
// @Success 200 {object} wallet.Balance
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /wallet/balance [post]
func (h *WalletHandler) Balance(c *gin.Context) {
	var req SecretRequest
	if !bindJSON(c, &req) {
		return
	}

	balance, err := h.wallets.Balance(c.Request.Context(), req.Secret)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

// History lists recent transactions of a wallet
// @Summary Wallet history
// @Description The most recent ledger transactions of the wallet of the secret, newest first
// @Tags wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SecretRequest true "Wallet secret"
// @Success 200 {object} wallet.History
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /wallet/history [post]
func (h *WalletHandler) History(c *gin.Context) {
	var req SecretRequest
	if !bindJSON(c, &req) {
		return
	}

	history, err := h.wallets.History(c.Request.Context(), req.Secret)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// Receipt returns a stored payment receipt
// @Summary Payment receipt
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param tx_hash path string true "Transaction hash"
// @Success 200 {object} domain.PaymentReceipt
// @Failure 404 {object} ErrorResponse
// @Router /payments/{tx_hash} [get]
func (h *WalletHandler) Receipt(c *gin.Context) {
	receipt, err := h.wallets.Receipt(c.Request.Context(), c.Param("tx_hash"))
	if err != nil {
		middleware.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, receipt)
}
