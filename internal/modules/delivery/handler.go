package delivery

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
	r.POST("/deliveries", h.Schedule)
	r.GET("/deliveries", h.List)
	r.GET("/deliveries/:id", h.Get)
	r.POST("/deliveries/:id/complete", h.Complete)
}

func actorEntry(c *gin.Context) activity.Entry {
	e := activity.Entry{UserName: c.GetString("user_name")}
	if id := c.GetInt64("user_id"); id != 0 {
		e.UserID = &id
	}
	return e
}

// Schedule handles POST /api/v1/deliveries
func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	d, err := h.service.Schedule(c.Request.Context(), req, actorEntry(c))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Referenced booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, d)
}

// Complete handles POST /api/v1/deliveries/:id/complete
// @Summary Complete a vehicle handover
// @Description Flips the booking to Delivered and schedules the first free service
// @Tags Deliveries
// @Security BearerAuth
// @Success 200 {object} response.Response{data=CompleteDeliveryResponse}
// @Router /deliveries/{id}/complete [post]
func (h *Handler) Complete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid delivery ID")
		return
	}

	var req CompleteDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	res, err := h.service.Complete(c.Request.Context(), id, req, actorEntry(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrDeliveryNotFound):
			response.Error(c, http.StatusNotFound, "DELIVERY_NOT_FOUND", "Delivery not found")
		case errors.Is(err, ErrAlreadyCompleted):
			response.Error(c, http.StatusConflict, "ALREADY_COMPLETED", "Delivery has already been completed")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Referenced booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// Get handles GET /api/v1/deliveries/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid delivery ID")
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDeliveryNotFound) {
			response.Error(c, http.StatusNotFound, "DELIVERY_NOT_FOUND", "Delivery not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, d)
}

// List handles GET /api/v1/deliveries
func (h *Handler) List(c *gin.Context) {
	status := domain.DeliveryStatus(c.Query("status"))
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

	deliveries, total, err := h.service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Deliveries: deliveries, Total: total})
}
