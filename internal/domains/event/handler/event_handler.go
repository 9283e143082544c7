package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventgallery-backend/internal/domains/event/model"
	"eventgallery-backend/internal/domains/event/service"
	"eventgallery-backend/internal/shared/middleware"
	"eventgallery-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type EventHandler struct {
	service service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{service: svc}
}

// ========== CREATE: POST /v1/events ==========
func (h *EventHandler) Create(c *gin.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.CreateEvent(c.Request.Context(), customer.ID, req)
	if err != nil {
		writeEventError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== READ: GET /v1/events ==========
func (h *EventHandler) ListMine(c *gin.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	resp, err := h.service.ListMyEvents(c.Request.Context(), customer.ID)
	if err != nil {
		writeEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ: GET /v1/events/:id ==========
func (h *EventHandler) GetMine(c *gin.Context) {
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

	resp, err := h.service.GetMyEvent(c.Request.Context(), customer.ID, eventID)
	if err != nil {
		writeEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ: GET /v1/events/:id/gallery ==========
// Owner-only grouped view: one folder per guest
func (h *EventHandler) GroupedGallery(c *gin.Context) {
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

	resp, err := h.service.GroupedGallery(c.Request.Context(), customer.ID, eventID)
	if err != nil {
		writeEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== READ: GET /v1/public/events/:code ==========
// Unauthenticated lookup used by the guest join page
func (h *EventHandler) GetPublicByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, "event code is required")
		return
	}

	resp, err := h.service.GetByCodePublic(c.Request.Context(), code)
	if err != nil {
		writeEventError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEventNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeEventNotFound, err.Error())
	case errors.Is(err, model.ErrNotEventOwner):
		response.ErrorResponse(c, http.StatusForbidden, model.ErrCodeNotEventOwner, err.Error())
	case errors.Is(err, model.ErrInvalidEventDate):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidEventDate, err.Error())
	case errors.Is(err, model.ErrEventCodeTaken):
		response.ErrorResponse(c, http.StatusConflict, model.ErrCodeEventCodeTaken, err.Error())
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
