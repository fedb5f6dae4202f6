package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unmined/spinrewards/internal/usecase/blackjack"
	"github.com/unmined/spinrewards/internal/usecase/session"
)

// GameHandler handles blackjack and plinko
type GameHandler struct {
	sessions *session.Manager
}

// NewGameHandler creates a new game handler
func NewGameHandler(sessions *session.Manager) *GameHandler {
	return &GameHandler{sessions: sessions}
}

// BetRequest represents a wager
type BetRequest struct {
	Bet int64 `json:"bet" example:"5"`
}

// BlackjackResponse is the visible state of a blackjack round
type BlackjackResponse struct {
	Round       *blackjack.Round `json:"round"`
	PlayerScore int              `json:"player_score" example:"19"`
	DealerScore int              `json:"dealer_score" example:"17"`
	Balance     int64            `json:"balance" example:"42"`
}

// blackjackResponse must run while the session is held; the round is
// copied so rendering never reads the live hands.
func blackjackResponse(ctrl *session.Controller, round *blackjack.Round) BlackjackResponse {
	return BlackjackResponse{
		Round:       round.Snapshot(),
		PlayerScore: blackjack.Score(round.Player),
		DealerScore: blackjack.Score(round.Dealer),
		Balance:     ctrl.Balance(),
	}
}

// blackjackAction runs one round transition and writes the resulting state
func (h *GameHandler) blackjackAction(c *gin.Context, action func(ctrl *session.Controller) (*blackjack.Round, error)) {
	var resp BlackjackResponse
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		round, err := action(ctrl)
		if err != nil {
			return err
		}
		resp = blackjackResponse(ctrl, round)
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Blackjack returns the current round
// @Summary Blackjack state
// @Tags blackjack
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BlackjackResponse
// @Router /blackjack [get]
func (h *GameHandler) Blackjack(c *gin.Context) {
	h.blackjackAction(c, func(ctrl *session.Controller) (*blackjack.Round, error) {
		return ctrl.Blackjack(), nil
	})
}

// Bet places a wager and deals
// @Summary Blackjack bet
// @Description Debit the bet and deal two cards each to player and dealer
// @Tags blackjack
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BetRequest true "Wager"
// @Success 200 {object} BlackjackResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /blackjack/bet [post]
func (h *GameHandler) Bet(c *gin.Context) {
	var req BetRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	h.blackjackAction(c, func(ctrl *session.Controller) (*blackjack.Round, error) {
		return ctrl.PlaceBet(ctx, req.Bet)
	})
}

// Hit draws a card
// @Summary Blackjack hit
// @Tags blackjack
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BlackjackResponse
// @Failure 409 {object} ErrorResponse
// @Router /blackjack/hit [post]
func (h *GameHandler) Hit(c *gin.Context) {
	ctx := c.Request.Context()
	h.blackjackAction(c, func(ctrl *session.Controller) (*blackjack.Round, error) {
		return ctrl.Hit(ctx)
	})
}

// Stand settles the round
// @Summary Blackjack stand
// @Tags blackjack
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BlackjackResponse
// @Failure 409 {object} ErrorResponse
// @Router /blackjack/stand [post]
func (h *GameHandler) Stand(c *gin.Context) {
	ctx := c.Request.Context()
	h.blackjackAction(c, func(ctrl *session.Controller) (*blackjack.Round, error) {
		return ctrl.Stand(ctx)
	})
}

// Reset returns a finished round to betting
// @Summary Blackjack reset
// @Tags blackjack
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BlackjackResponse
// @Failure 409 {object} ErrorResponse
// @Router /blackjack/reset [post]
func (h *GameHandler) Reset(c *gin.Context) {
	h.blackjackAction(c, func(ctrl *session.Controller) (*blackjack.Round, error) {
		return ctrl.ResetBlackjack()
	})
}

// Drop drops a plinko ball
// @Summary Plinko drop
// @Description Debit the bet, land in a uniformly drawn slot and credit floor(bet x multiplier)
// @Tags plinko
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BetRequest true "Wager"
// @Success 200 {object} session.PlinkoDrop
// @Failure 400 {object} ErrorResponse
// @Router /plinko/drop [post]
func (h *GameHandler) Drop(c *gin.Context) {
	var req BetRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var drop *session.PlinkoDrop
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		var err error
		drop, err = ctrl.Drop(ctx, req.Bet)
		return err
	}) {
		return
	}

	c.JSON(http.StatusOK, drop)
}
