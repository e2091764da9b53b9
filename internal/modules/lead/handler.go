package lead

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/pkg/response"
	"dealershub/internal/pkg/validator"
	"dealershub/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, admin *gin.RouterGroup) {
	r.POST("/leads", h.Create)
	r.GET("/leads", h.List)
	r.GET("/leads/:id", h.Get)
	r.PATCH("/leads/:id/status", h.UpdateStatus)
	admin.DELETE("/leads/:id", h.Delete)
}

// actorEntry captures the caller's identity for the activity trail.
func actorEntry(c *gin.Context) activity.Entry {
	e := activity.Entry{UserName: c.GetString("user_name")}
	if id := c.GetInt64("user_id"); id != 0 {
		e.UserID = &id
	}
	return e
}

// Create handles POST /api/v1/leads
// @Summary Create a sales lead
// @Description Deduplicates on email/phone, scores and auto-assigns the lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLeadRequest true "Lead intake data"
// @Success 201 {object} response.Response{data=domain.Lead}
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /leads [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	l, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var dup *DuplicateError
		if errors.As(err, &dup) {
			response.ErrorWithDetails(c, http.StatusConflict, "DUPLICATE_LEAD", "A lead with this email or phone already exists",
				gin.H{"existing_lead_id": dup.ExistingID})
			return
		}
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name, phone and email are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, l)
}

// Get handles GET /api/v1/leads/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, l)
}

// List handles GET /api/v1/leads
func (h *Handler) List(c *gin.Context) {
	f := repository.LeadFilter{
		Status:      domain.LeadStatus(c.Query("status")),
		Temperature: domain.LeadTemperature(c.Query("temperature")),
		Limit:       50,
	}
	if a := c.Query("assigned_to"); a != "" {
		if v, err := strconv.ParseInt(a, 10, 64); err == nil {
			f.AssignedTo = &v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			f.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			f.Offset = v
		}
	}

	leads, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Leads: leads, Total: total})
}

// UpdateStatus handles PATCH /api/v1/leads/:id/status
// @Summary Update lead status
// @Description Moves the lead along the pipeline; Won is reserved for booking creation
// @Tags Leads
// @Security BearerAuth
// @Router /leads/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	l, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, actorEntry(c))
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		if errors.Is(err, ErrInvalidTransition) {
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Lead cannot move to the requested status")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, l)
}

// Delete handles DELETE /api/v1/admin/leads/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Lead deleted"})
}
