package activity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dealershub/internal/pkg/response"
	"dealershub/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/activity", h.List)
}

// List handles GET /api/v1/activity
// @Summary List activity log entries
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param entity_type query string false "Filter by entity type"
// @Param search query string false "Free-text search over entity/user/action"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response
// @Router /activity [get]
func (h *Handler) List(c *gin.Context) {
	f := repository.ActivityFilter{
		EntityType: c.Query("entity_type"),
		Search:     c.Query("search"),
		Limit:      50,
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 200 {
			f.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			f.Offset = v
		}
	}

	entries, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
	})
}
