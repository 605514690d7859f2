package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/voltline/backend/internal/geocode"
	"github.com/voltline/backend/internal/lifecycle"
	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/notify"
	"github.com/voltline/backend/internal/store"
)

type Handler struct {
	Store     store.Store
	Validator *validator.Validate
	Logger    zerolog.Logger
	Notifier  notify.Notifier
	Geocoder  geocode.Geocoder
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Storage unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Health is the legacy liveness probe; it reports ok without touching storage.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type CreateServiceRequestInput struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Address      string `json:"address" validate:"required"`
	ServiceType  string `json:"service_type" validate:"required,oneof=electrical solar both"`
	Description  string `json:"description" validate:"required"`
	Urgency      string `json:"urgency"`
	CustomerID   string `json:"customer_id"`
	TechnicianID string `json:"technician_id"`
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// @Summary Create service request
// @Tags services
// @Accept json
// @Produce json
// @Success 201 {object} models.ServiceRequest
// @Failure 400 {object} map[string]any
// @Router /api/services [post]
func (h *Handler) CreateServiceRequest(c *gin.Context) {
	var in CreateServiceRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(in); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err), err.Error())
		return
	}

	r := models.ServiceRequest{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		ServiceType:  in.ServiceType,
		Description:  in.Description,
		Urgency:      in.Urgency,
		CustomerID:   in.CustomerID,
		TechnicianID: in.TechnicianID,
		Status:       lifecycle.InitialStatus(lifecycle.KindRequest),
		CreatedAt:    time.Now().UTC(),
	}

	if h.Geocoder != nil && geocode.ShouldGeocode(r) {
		if lat, lon, err := h.Geocoder.Geocode(c.Request.Context(), geocode.RequestQuery(r)); err == nil {
			r.Lat = &lat
			r.Lon = &lon
		} else {
			h.Logger.Warn().Err(err).Str("address", r.Address).Msg("geocode failed")
		}
	}

	if err := h.Store.CreateServiceRequest(c.Request.Context(), &r); err != nil {
		h.Logger.Error().Err(err).Msg("create service request")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to create service request", nil)
		return
	}

	if h.Notifier != nil {
		if err := h.Notifier.RequestCreated(c.Request.Context(), r); err != nil {
			h.Logger.Warn().Err(err).Int64("request_id", r.ID).Msg("notify request created")
		}
	}

	c.JSON(http.StatusCreated, r)
}

// ListServiceRequests serves the legacy surface: a plain array, newest first.
func (h *Handler) ListServiceRequests(c *gin.Context) {
	items, err := h.Store.ListServiceRequests(c.Request.Context(), store.RequestFilter{})
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list service requests", nil)
		return
	}
	if items == nil {
		items = []models.ServiceRequest{}
	}
	c.JSON(http.StatusOK, items)
}

// ListRequests serves the filterable surface and returns a count alongside
// the items. Filters are plain equality on customerId/technicianId/status.
func (h *Handler) ListRequests(c *gin.Context) {
	f := store.RequestFilter{
		CustomerID:   c.Query("customerId"),
		TechnicianID: c.Query("technicianId"),
		Status:       c.Query("status"),
	}
	items, err := h.Store.ListServiceRequests(c.Request.Context(), f)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list requests", nil)
		return
	}
	if items == nil {
		items = []models.ServiceRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

func (h *Handler) GetServiceRequest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	r, err := h.Store.GetServiceRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Service request not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get service request", nil)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Update service request status
// @Tags services
// @Accept json
// @Produce json
// @Success 200 {object} models.ServiceRequest
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/services/{id}/status [patch]
func (h *Handler) UpdateServiceRequestStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in UpdateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	// existence first, then the enum guard
	current, err := h.Store.GetServiceRequest(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Service request not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get service request", nil)
		return
	}
	if !lifecycle.CanTransition(lifecycle.KindRequest, current.Status, in.Status) {
		writeError(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid status: "+in.Status, nil)
		return
	}

	updated, err := h.Store.UpdateServiceRequestStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Service request not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to update status", nil)
		return
	}

	if h.Notifier != nil {
		ev := notify.Event{Kind: "service_request", ID: updated.ID, Status: updated.Status, OldStatus: current.Status}
		if err := h.Notifier.StatusChanged(c.Request.Context(), ev); err != nil {
			h.Logger.Warn().Err(err).Int64("request_id", updated.ID).Msg("notify status changed")
		}
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteRequest is a placeholder kept for surface parity: it acknowledges the
// call without removing anything. Cancellation is a status value, not a
// deletion.
func (h *Handler) DeleteRequest(c *gin.Context) {
	if _, ok := parseID(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type CreateApplicationInput struct {
	FullName        string          `json:"full_name" validate:"required"`
	Email           string          `json:"email" validate:"required"`
	Phone           string          `json:"phone" validate:"required"`
	Specialization  string          `json:"specialization" validate:"required,oneof=electrical solar both"`
	YearsExperience *models.FlexInt `json:"years_experience" validate:"required,gte=0"`
	Certifications  string          `json:"certifications"`
	CoverLetter     string          `json:"cover_letter" validate:"required"`
}

// @Summary Submit technician application
// @Tags technicians
// @Accept json
// @Produce json
// @Success 201 {object} models.TechnicianApplication
// @Failure 400 {object} map[string]any
// @Router /api/technicians [post]
func (h *Handler) CreateApplication(c *gin.Context) {
	var in CreateApplicationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(in); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err), err.Error())
		return
	}

	a := models.TechnicianApplication{
		FullName:        strings.TrimSpace(in.FullName),
		Email:           strings.TrimSpace(in.Email),
		Phone:           strings.TrimSpace(in.Phone),
		Specialization:  in.Specialization,
		YearsExperience: in.YearsExperience.Int(),
		Certifications:  in.Certifications,
		CoverLetter:     in.CoverLetter,
		Status:          lifecycle.InitialStatus(lifecycle.KindApplication),
		CreatedAt:       time.Now().UTC(),
	}

	if err := h.Store.CreateApplication(c.Request.Context(), &a); err != nil {
		h.Logger.Error().Err(err).Msg("create application")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to create application", nil)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListApplications(c *gin.Context) {
	items, err := h.Store.ListApplications(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list applications", nil)
		return
	}
	if items == nil {
		items = []models.TechnicianApplication{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.Store.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Application not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get application", nil)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in UpdateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	current, err := h.Store.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Application not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get application", nil)
		return
	}
	if !lifecycle.CanTransition(lifecycle.KindApplication, current.Status, in.Status) {
		writeError(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid status: "+in.Status, nil)
		return
	}

	updated, err := h.Store.UpdateApplicationStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Application not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to update status", nil)
		return
	}

	if h.Notifier != nil {
		ev := notify.Event{Kind: "technician_application", ID: updated.ID, Status: updated.Status, OldStatus: current.Status}
		if err := h.Notifier.StatusChanged(c.Request.Context(), ev); err != nil {
			h.Logger.Warn().Err(err).Int64("application_id", updated.ID).Msg("notify status changed")
		}
	}

	c.JSON(http.StatusOK, updated)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// non-numeric ids match nothing
		writeError(c, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return 0, false
	}
	return id, true
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation failed"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "gte", "gt", "min":
			parts = append(parts, fmt.Sprintf("%s is out of range", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(parts, "; ")
}
