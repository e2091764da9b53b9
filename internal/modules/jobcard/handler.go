package jobcard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dealershub/internal/domain"
	"dealershub/internal/modules/activity"
	"dealershub/internal/pkg/response"
	"dealershub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/job-cards", h.Create)
	r.GET("/job-cards", h.List)
	r.GET("/job-cards/:id", h.Get)
	r.PATCH("/job-cards/:id/status", h.UpdateStatus)
	r.POST("/job-cards/:id/complete", h.Complete)
}

func actorEntry(c *gin.Context) activity.Entry {
	e := activity.Entry{UserName: c.GetString("user_name")}
	if id := c.GetInt64("user_id"); id != 0 {
		e.UserID = &id
	}
	return e
}

// Create handles POST /api/v1/job-cards
func (h *Handler) Create(c *gin.Context) {
	var req CreateJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	j, err := h.service.Create(c.Request.Context(), req, actorEntry(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Technician is required")
		case errors.Is(err, ErrAppointmentNotFound):
			response.Error(c, http.StatusNotFound, "APPOINTMENT_NOT_FOUND", "Referenced appointment not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, j)
}

// Complete handles POST /api/v1/job-cards/:id/complete
// @Summary Complete a job card
// @Description Deducts consumed parts, computes totals and generates the invoice
// @Tags JobCards
// @Security BearerAuth
// @Success 200 {object} response.Response{data=CompleteJobCardResponse}
// @Router /job-cards/{id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job card ID")
		return
	}

	var req CompleteJobCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	res, err := h.service.Complete(c.Request.Context(), id, req, actorEntry(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrJobCardNotFound):
			response.Error(c, http.StatusNotFound, "JOB_CARD_NOT_FOUND", "Job card not found")
		case errors.Is(err, ErrAlreadyCompleted):
			response.Error(c, http.StatusConflict, "ALREADY_COMPLETED", "Job card has already been completed")
		case errors.Is(err, ErrAppointmentNotFound):
			response.Error(c, http.StatusNotFound, "APPOINTMENT_NOT_FOUND", "Referenced appointment not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// UpdateStatus handles PATCH /api/v1/job-cards/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job card ID")
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

	j, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, actorEntry(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrJobCardNotFound):
			response.Error(c, http.StatusNotFound, "JOB_CARD_NOT_FOUND", "Job card not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be InProgress or WaitingForParts")
		case errors.Is(err, ErrAlreadyCompleted):
			response.Error(c, http.StatusConflict, "ALREADY_COMPLETED", "Completed job cards cannot change status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, j)
}

// Get handles GET /api/v1/job-cards/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job card ID")
		return
	}

	j, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrJobCardNotFound) {
			response.Error(c, http.StatusNotFound, "JOB_CARD_NOT_FOUND", "Job card not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, j)
}

// List handles GET /api/v1/job-cards
func (h *Handler) List(c *gin.Context) {
	status := domain.JobCardStatus(c.Query("status"))
	limit := 50
	offset := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	jobCards, total, err := h.service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{JobCards: jobCards, Total: total})
}
