package quotation

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

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/quotations", h.Create)
	r.GET("/quotations", h.List)
	r.GET("/quotations/:id", h.Get)
	r.POST("/quotations/:id/send", h.Send)
	r.PUT("/quotations/:id/items", h.Recompute)
	r.PUT("/quotations/:id/totals", h.OverrideTotals)
}

func actorEntry(c *gin.Context) activity.Entry {
	e := activity.Entry{UserName: c.GetString("user_name")}
	if id := c.GetInt64("user_id"); id != 0 {
		e.UserID = &id
	}
	return e
}

// Create handles POST /api/v1/quotations
// @Summary Create a quotation
// @Description Totals are computed server-side from the line items
// @Tags Quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateQuotationRequest true "Quotation data"
// @Success 201 {object} response.Response{data=domain.Quotation}
// @Router /quotations [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	q, err := h.service.Create(c.Request.Context(), req, actorEntry(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoLineItems):
			response.Error(c, http.StatusBadRequest, "NO_LINE_ITEMS", "At least one line item is required")
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Referenced lead not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, q)
}

// Get handles GET /api/v1/quotations/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quotation ID")
		return
	}

	q, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuotationNotFound) {
			response.Error(c, http.StatusNotFound, "QUOTATION_NOT_FOUND", "Quotation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, q)
}

// List handles GET /api/v1/quotations
func (h *Handler) List(c *gin.Context) {
	f := repository.QuotationFilter{
		Status: domain.QuotationStatus(c.Query("status")),
		Limit:  50,
	}
	if l := c.Query("lead_id"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil {
			f.LeadID = &v
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

	quotations, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Quotations: quotations, Total: total})
}

// Send handles POST /api/v1/quotations/:id/send
func (h *Handler) Send(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quotation ID")
		return
	}

	q, err := h.service.Send(c.Request.Context(), id, actorEntry(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, q)
}

// Recompute handles PUT /api/v1/quotations/:id/items
func (h *Handler) Recompute(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quotation ID")
		return
	}

	var req RecomputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	q, err := h.service.Recompute(c.Request.Context(), id, req, actorEntry(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, q)
}

// OverrideTotals handles PUT /api/v1/quotations/:id/totals
func (h *Handler) OverrideTotals(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid quotation ID")
		return
	}

	var req OverrideTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	q, err := h.service.OverrideTotals(c.Request.Context(), id, req, actorEntry(c))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, q)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrQuotationNotFound):
		response.Error(c, http.StatusNotFound, "QUOTATION_NOT_FOUND", "Quotation not found")
	case errors.Is(err, ErrNotEditable):
		response.Error(c, http.StatusConflict, "NOT_EDITABLE", "Quotation can no longer be modified")
	case errors.Is(err, ErrNoLineItems):
		response.Error(c, http.StatusBadRequest, "NO_LINE_ITEMS", "At least one line item is required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
	}
}
