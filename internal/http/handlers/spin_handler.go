package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unmined/spinrewards/internal/domain"
	"github.com/unmined/spinrewards/internal/http/middleware"
	"github.com/unmined/spinrewards/internal/usecase/session"
)

// SpinHandler handles spins, reveal sequencing and the inventory
type SpinHandler struct {
	sessions *session.Manager
}

// NewSpinHandler creates a new spin handler
func NewSpinHandler(sessions *session.Manager) *SpinHandler {
	return &SpinHandler{sessions: sessions}
}

// SpinRequest represents the spin request body
type SpinRequest struct {
	Count int `json:"count" example:"3"`
}

// RevealResponse describes reveal sequencing state
type RevealResponse struct {
	Revealing bool                 `json:"revealing"`
	Reveal    *session.Reveal      `json:"reveal,omitempty"`
	Results   []domain.SpinOutcome `json:"results,omitempty"`
}

// SaveRequest selects a revealed spin result to save
type SaveRequest struct {
	ResultIndex *int `json:"result_index" binding:"required" example:"0"`
}

// InventoryResponse lists the saved slots
type InventoryResponse struct {
	Slots    []domain.SpinOutcome `json:"slots"`
	Capacity int                  `json:"capacity" example:"8"`
}

// Spin handles a paid batch of spins
// @Summary Spin
// @Description Pay one credit per spin and draw count outcomes, revealed one at a time
// @Tags spins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SpinRequest true "Number of spins"
// @Success 200 {object} session.SpinBatch
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /spins [post]
func (h *SpinHandler) Spin(c *gin.Context) {
	var req SpinRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var batch *session.SpinBatch
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		var err error
		batch, err = ctrl.Spin(ctx, req.Count)
		return err
	}) {
		return
	}

	c.JSON(http.StatusOK, batch)
}

// Reveal returns the outcome currently revealed
// @Summary Current reveal
// @Tags spins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RevealResponse
// @Router /spins/reveal [get]
func (h *SpinHandler) Reveal(c *gin.Context) {
	var resp RevealResponse
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		resp.Reveal, resp.Revealing = ctrl.CurrentReveal()
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Next advances reveal sequencing
// @Summary Reveal next
// @Description Advance to the next outcome; past the last one the whole batch is returned
// @Tags spins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RevealResponse
// @Failure 409 {object} ErrorResponse
// @Router /spins/reveal/next [post]
func (h *SpinHandler) Next(c *gin.Context) {
	var resp RevealResponse
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		if !ctrl.Revealing() {
			return domain.NewGameStateError("Nothing is being revealed.")
		}
		resp.Reveal, resp.Revealing = ctrl.Advance()
		if !resp.Revealing {
			resp.Results = ctrl.Results()
		}
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Results returns the last fully revealed batch
// @Summary Spin results
// @Tags spins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RevealResponse
// @Router /spins/results [get]
func (h *SpinHandler) Results(c *gin.Context) {
	var resp RevealResponse
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		resp.Revealing = ctrl.Revealing()
		resp.Results = ctrl.Results()
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Inventory lists the saved slots
// @Summary Inventory
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} InventoryResponse
// @Failure 401 {object} ErrorResponse
// @Router /inventory [get]
func (h *SpinHandler) Inventory(c *gin.Context) {
	ctx := c.Request.Context()
	var resp InventoryResponse
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		if _, ok := ctrl.ActiveUser(); !ok {
			return domain.NewAppError(domain.ErrCodeNotSignedIn, "Sign in first.", http.StatusUnauthorized, nil)
		}
		ctrl.Refresh(ctx)
		snapshot := ctrl.Snapshot()
		resp = InventoryResponse{Slots: snapshot.Inventory, Capacity: snapshot.Capacity}
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Save stores a revealed result in the inventory
// @Summary Save result
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveRequest true "Result to save"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /inventory [post]
func (h *SpinHandler) Save(c *gin.Context) {
	var req SaveRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	var resp InventoryResponse
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		slots, err := ctrl.SaveResult(ctx, *req.ResultIndex)
		if err != nil {
			return err
		}
		resp = InventoryResponse{Slots: slots, Capacity: ctrl.Snapshot().Capacity}
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Remove deletes a saved slot
// @Summary Remove saved slot
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param index path int true "Slot index"
// @Success 200 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory/{index} [delete]
func (h *SpinHandler) Remove(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		middleware.RespondError(c, domain.NewAppError(domain.ErrCodeInvalidFormat, "Index must be a number", http.StatusBadRequest, err))
		return
	}

	ctx := c.Request.Context()
	var resp InventoryResponse
	if !withSession(c, h.sessions, func(ctrl *session.Controller) error {
		slots, err := ctrl.RemoveSaved(ctx, index)
		if err != nil {
			return err
		}
		resp = InventoryResponse{Slots: slots, Capacity: ctrl.Snapshot().Capacity}
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, resp)
}
