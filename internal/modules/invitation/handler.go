package invitation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes wires issuing under the admin group and consumption on the
// public group, since the invited person has no account yet.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup, admin *gin.RouterGroup) {
	admin.POST("/invitations", h.Create)
	admin.GET("/invitations", h.List)
	public.POST("/invitations/accept", h.Consume)
}

func actorEntry(c *gin.Context) activity.Entry {
	e := activity.Entry{UserName: c.GetString("user_name")}
	if id := c.GetInt64("user_id"); id != 0 {
		e.UserID = &id
	}
	return e
}

// Create handles POST /api/v1/admin/invitations
// @Summary Invite a staff member
// @Tags Invitations
// @Security BearerAuth
// @Router /admin/invitations [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req, actorEntry(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "A user with this email already exists")
		case errors.Is(err, ErrPendingExists):
			response.Error(c, http.StatusConflict, "INVITATION_PENDING", "A pending invitation for this email already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, inv)
}

// Consume handles POST /api/v1/invitations/accept
// @Summary Accept an invitation
// @Description Redeems the single-use token and creates the account
// @Tags Invitations
// @Router /invitations/accept [post]
func (h *Handler) Consume(c *gin.Context) {
	var req ConsumeInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", errs)
		return
	}

	res, err := h.service.Consume(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvitationNotFound):
			response.Error(c, http.StatusNotFound, "INVITATION_NOT_FOUND", "Invitation not found")
		case errors.Is(err, ErrAlreadyAccepted):
			response.Error(c, http.StatusConflict, "ALREADY_ACCEPTED", "Invitation has already been accepted")
		case errors.Is(err, ErrExpired):
			response.Error(c, http.StatusGone, "INVITATION_EXPIRED", "Invitation has expired")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "A user with this email already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

// List handles GET /api/v1/admin/invitations
func (h *Handler) List(c *gin.Context) {
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

	invitations, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ListResponse{Invitations: invitations, Total: total})
}
