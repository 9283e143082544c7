package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	"eventgallery-backend/internal/domains/share/model"
	"eventgallery-backend/internal/domains/share/service"
	"eventgallery-backend/internal/shared/middleware"
	"eventgallery-backend/internal/shared/response"
)

// the password travels in a header so it never lands in access logs or
// browser history alongside the share URL
const passwordHeader = "X-Share-Password"

// ============================================================
// HANDLER STRUCT
// ============================================================
type ShareHandler struct {
	service service.ShareLinkService
}

func NewShareHandler(svc service.ShareLinkService) *ShareHandler {
	return &ShareHandler{service: svc}
}

// ========== CREATE: POST /v1/share-links ==========
func (h *ShareHandler) Create(c *gin.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), customer.ID, req)
	if err != nil {
		writeShareError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== READ: GET /v1/events/:id/share-links ==========
func (h *ShareHandler) ListByEvent(c *gin.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	resp, err := h.service.ListByEvent(c.Request.Context(), customer.ID, eventID)
	if err != nil {
		writeShareError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ: GET /v1/shared/:code ==========
// Anonymous resolution of a shared gallery
func (h *ShareHandler) Resolve(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "share code is required")
		return
	}

	var password *string
	if v := c.GetHeader(passwordHeader); v != "" {
		password = &v
	}

	resp, err := h.service.Resolve(c.Request.Context(), code, password)
	if err != nil {
		writeShareError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== DELETE: DELETE /v1/share-links/:code ==========
func (h *ShareHandler) Revoke(c *gin.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "share code is required")
		return
	}

	if err := h.service.Revoke(c.Request.Context(), customer.ID, code); err != nil {
		writeShareError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"revoked": code})
}

func writeShareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrShareNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeShareNotFound, err.Error())
	case errors.Is(err, model.ErrShareExpired):
		response.ErrorResponse(c, http.StatusGone, model.ErrCodeShareExpired, err.Error())
	case errors.Is(err, model.ErrSharePasswordRequired):
		response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeSharePasswordRequired, err.Error())
	case errors.Is(err, model.ErrForbidden):
		response.ErrorResponse(c, http.StatusForbidden, model.ErrCodeForbidden, err.Error())
	case errors.Is(err, model.ErrEmptySelection):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeEmptySelection, err.Error())
	case errors.Is(err, model.ErrImageNotInEvent):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeImageNotInEvent, err.Error())
	case errors.Is(err, model.ErrInvalidExpiry):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidExpiry, err.Error())
	case errors.Is(err, model.ErrShareCodeTaken):
		response.ErrorResponse(c, http.StatusConflict, model.ErrCodeShareCodeTaken, err.Error())
	case errors.Is(err, eventmodel.ErrEventNotFound):
		response.ErrorResponse(c, http.StatusNotFound, eventmodel.ErrCodeEventNotFound, err.Error())
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
