package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/voltline/backend/internal/catalog"
	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/service"
	"github.com/voltline/backend/internal/store"
)

// Catalog returns the static list of offered services.
func (h *Handler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": catalog.Services()})
}

type RegisterInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

// Register is a demo endpoint: it validates the payload shape and fabricates
// an account id, but stores nothing and hashes nothing.
func (h *Handler) Register(c *gin.Context) {
	var in RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(in); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         uuid.NewString(),
			"full_name":  in.FullName,
			"email":      in.Email,
			"phone":      in.Phone,
			"created_at": time.Now().UTC(),
		},
	})
}

// RequestMatches lists accepted technician applications that can serve the
// request, most experienced first.
func (h *Handler) RequestMatches(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, err := h.Store.GetServiceRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Service request not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get service request", nil)
		return
	}

	apps, err := h.Store.ListApplications(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list applications", nil)
		return
	}

	res := service.MatchTechnicians(req, apps)
	matches := res.Matches
	if matches == nil {
		matches = []models.TechnicianApplication{}
	}
	c.JSON(http.StatusOK, gin.H{
		"request_id":  req.ID,
		"matches":     matches,
		"count":       len(res.Matches),
		"reason_code": res.ReasonCode,
		"reason_text": res.ReasonText,
	})
}
