package payroll

import (
	"errors"
	"net/http"

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
	r.POST("/payroll/generate", h.Generate)
	r.GET("/payroll", h.List)
	r.GET("/employees", h.ListEmployees)
}

func actorEntry(c *gin.Context) activity.Entry {
	e := activity.Entry{UserName: c.GetString("user_name")}
	if id := c.GetInt64("user_id"); id != 0 {
		e.UserID = &id
	}
	return e
}

// Generate handles POST /api/v1/payroll/generate
// @Summary Generate monthly payroll
// @Description Creates payroll rows for active employees not yet covered for the month
// @Tags Payroll
// @Security BearerAuth
// @Success 200 {object} response.Response{data=GeneratePayrollResponse}
// @Router /payroll/generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	res, err := h.service.Generate(c.Request.Context(), req.Month, actorEntry(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidMonth):
			response.Error(c, http.StatusBadRequest, "INVALID_MONTH", "Month must be formatted as YYYY-MM")
		case repository.IsDuplicate(err):
			response.Error(c, http.StatusConflict, "CONCURRENT_RUN", "Another payroll run for this month is in progress; retry")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// ListEmployees handles GET /api/v1/employees?status=Active
func (h *Handler) ListEmployees(c *gin.Context) {
	status := domain.EmployeeStatus(c.Query("status"))
	employees, err := h.service.ListEmployees(c.Request.Context(), status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"employees": employees})
}

// List handles GET /api/v1/payroll?month=YYYY-MM
func (h *Handler) List(c *gin.Context) {
	month := c.Query("month")
	rows, err := h.service.ListByMonth(c.Request.Context(), month)
	if err != nil {
		if errors.Is(err, ErrInvalidMonth) {
			response.Error(c, http.StatusBadRequest, "INVALID_MONTH", "Month must be formatted as YYYY-MM")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Payrolls: rows})
}
