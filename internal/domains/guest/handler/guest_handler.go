package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	"eventgallery-backend/internal/domains/guest/model"
	"eventgallery-backend/internal/domains/guest/service"
	"eventgallery-backend/internal/shared/middleware"
	"eventgallery-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type GuestHandler struct {
	service service.GuestService
}

func NewGuestHandler(svc service.GuestService) *GuestHandler {
	return &GuestHandler{service: svc}
}

// ========== CREATE: POST /v1/guest-auth/join ==========
func (h *GuestHandler) Join(c *gin.Context) {
	var req model.JoinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Join(c.Request.Context(), req)
	if err != nil {
		writeGuestError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== CREATE: POST /v1/guest-auth/login ==========
func (h *GuestHandler) Login(c *gin.Context) {
	var req model.GuestLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeGuestError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ: GET /v1/guest/dashboard ==========
func (h *GuestHandler) Dashboard(c *gin.Context) {
	guest, ok := middleware.GuestFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	resp, err := h.service.Dashboard(c.Request.Context(), guest.ID, guest.EventID)
	if err != nil {
		writeGuestError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func writeGuestError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
	case errors.Is(err, model.ErrGuestEmailTaken):
		response.ErrorResponse(c, http.StatusConflict, model.ErrCodeGuestEmailTaken, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, model.ErrGuestNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeGuestNotFound, err.Error())
	case errors.Is(err, eventmodel.ErrEventNotFound):
		response.ErrorResponse(c, http.StatusNotFound, eventmodel.ErrCodeEventNotFound, err.Error())
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
