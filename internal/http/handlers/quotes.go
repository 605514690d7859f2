package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voltline/backend/internal/lifecycle"
	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/notify"
	"github.com/voltline/backend/internal/store"
)

const defaultQuoteValidDays = 7

type CreateQuoteInput struct {
	RequestID    int64    `json:"request_id" validate:"required"`
	TechnicianID string   `json:"technician_id" validate:"required"`
	Amount       float64  `json:"amount" validate:"required,gt=0"`
	LaborCost    *float64 `json:"labor_cost" validate:"omitempty,gte=0"`
	MaterialCost *float64 `json:"material_cost" validate:"omitempty,gte=0"`
	Description  string   `json:"description" validate:"required,min=10"`
	ValidDays    int      `json:"valid_days" validate:"omitempty,gt=0"`
}

type ReviewQuoteInput struct {
	Action string `json:"action" validate:"required"`
}

// @Summary Submit quote
// @Tags quotes
// @Accept json
// @Produce json
// @Success 201 {object} models.Quote
// @Failure 400 {object} map[string]any
// @Router /api/quotes [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	var in CreateQuoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(in); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err), err.Error())
		return
	}

	validDays := in.ValidDays
	if validDays == 0 {
		validDays = defaultQuoteValidDays
	}
	now := time.Now().UTC()
	q := models.Quote{
		RequestID:    in.RequestID,
		TechnicianID: in.TechnicianID,
		Amount:       in.Amount,
		LaborCost:    in.LaborCost,
		MaterialCost: in.MaterialCost,
		Description:  in.Description,
		ValidUntil:   now.AddDate(0, 0, validDays),
		Status:       lifecycle.InitialStatus(lifecycle.KindQuote),
		CreatedAt:    now,
	}

	if err := h.Store.CreateQuote(c.Request.Context(), &q); err != nil {
		h.Logger.Error().Err(err).Msg("create quote")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to create quote", nil)
		return
	}
	c.JSON(http.StatusCreated, q)
}

func (h *Handler) ListQuotes(c *gin.Context) {
	var f store.QuoteFilter
	if raw := c.Query("requestId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "requestId must be an integer", nil)
			return
		}
		f.RequestID = id
	}
	f.TechnicianID = c.Query("technicianId")
	f.Status = c.Query("status")

	items, err := h.Store.ListQuotes(c.Request.Context(), f)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list quotes", nil)
		return
	}
	if items == nil {
		items = []models.Quote{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *Handler) GetQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	q, err := h.Store.GetQuote(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Quote not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get quote", nil)
		return
	}
	c.JSON(http.StatusOK, q)
}

// ReviewQuote applies an accept/reject action. Accepting a quote does not
// touch the parent request.
func (h *Handler) ReviewQuote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in ReviewQuoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	current, err := h.Store.GetQuote(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Quote not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get quote", nil)
		return
	}

	status, ok := lifecycle.QuoteActionStatus(in.Action)
	if !ok {
		writeError(c, http.StatusBadRequest, "INVALID_ACTION", "Action must be accept or reject", nil)
		return
	}

	updated, err := h.Store.UpdateQuoteStatus(c.Request.Context(), id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Quote not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to update quote", nil)
		return
	}

	if h.Notifier != nil {
		ev := notify.Event{Kind: "quote", ID: updated.ID, Status: updated.Status, OldStatus: current.Status}
		if err := h.Notifier.StatusChanged(c.Request.Context(), ev); err != nil {
			h.Logger.Warn().Err(err).Int64("quote_id", updated.ID).Msg("notify status changed")
		}
	}

	c.JSON(http.StatusOK, updated)
}
