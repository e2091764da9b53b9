package inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dealershub/internal/domain"
	"dealershub/internal/pkg/response"
	"dealershub/internal/pkg/validator"
	"dealershub/internal/repository"
)

type CreatePartRequest struct {
	SKU          string `json:"sku" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Stock        int64  `json:"stock" validate:"gte=0"`
	ReorderPoint int64  `json:"reorder_point" validate:"gte=0"`
	UnitPrice    int64  `json:"unit_price" validate:"gte=0"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/spare-parts", h.CreatePart)
	r.GET("/spare-parts", h.ListParts)
	r.GET("/spare-parts/low-stock", h.ListLowStock)
	r.GET("/spare-parts/:id", h.GetPart)
}

// CreatePart handles POST /api/v1/spare-parts
// @Summary Create a spare part
// @Tags Inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response{data=domain.SparePart}
// @Failure 409 {object} response.Response
// @Router /spare-parts [post]
func (h *Handler) CreatePart(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	part := &domain.SparePart{
		SKU:          req.SKU,
		Name:         req.Name,
		Stock:        req.Stock,
		ReorderPoint: req.ReorderPoint,
		UnitPrice:    req.UnitPrice,
	}
	if err := h.service.CreatePart(c.Request.Context(), part); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid spare part fields")
			return
		}
		if repository.IsDuplicate(err) {
			response.Error(c, http.StatusConflict, "DUPLICATE_SKU", "Spare part SKU already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, part)
}

// GetPart handles GET /api/v1/spare-parts/:id
func (h *Handler) GetPart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid spare part ID")
		return
	}

	part, err := h.service.GetPart(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPartNotFound) {
			response.Error(c, http.StatusNotFound, "PART_NOT_FOUND", "Spare part not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, part)
}

// ListParts handles GET /api/v1/spare-parts
func (h *Handler) ListParts(c *gin.Context) {
	limit, offset := 50, 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	parts, total, err := h.service.ListParts(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"parts": parts, "total": total})
}

// ListLowStock handles GET /api/v1/spare-parts/low-stock
func (h *Handler) ListLowStock(c *gin.Context) {
	parts, err := h.service.ListLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, parts)
}
