package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"eventgallery-backend/internal/domains/admin/model"
	"eventgallery-backend/internal/domains/admin/service"
	"eventgallery-backend/internal/shared/middleware"
	"eventgallery-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{service: svc}
}

// ========== CREATE: POST /v1/admin/login ==========
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeAdminError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ: GET /v1/admin/stats ==========
func (h *AdminHandler) Stats(c *gin.Context) {
	if _, ok := middleware.AdminFrom(c); !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "something went wrong")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func writeAdminError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
	case errors.Is(err, model.ErrInvalidCredentials):
		response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeInvalidCredentials, err.Error())
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
