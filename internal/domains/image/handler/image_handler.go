package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	eventmodel "eventgallery-backend/internal/domains/event/model"
	"eventgallery-backend/internal/domains/image/model"
	"eventgallery-backend/internal/domains/image/service"
	"eventgallery-backend/internal/shared/middleware"
	"eventgallery-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type ImageHandler struct {
	service service.ImageService
}

func NewImageHandler(svc service.ImageService) *ImageHandler {
	return &ImageHandler{service: svc}
}

// ========== CREATE: POST /v1/guest/images ==========
// The guest principal carries its event; uploads always land there.
func (h *ImageHandler) RecordUpload(c *gin.Context) {
	guest, ok := middleware.GuestFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.RecordUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.RecordUpload(c.Request.Context(), guest.ID, guest.EventID, req)
	if err != nil {
		writeImageError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== READ: GET /v1/guest/images ==========
func (h *ImageHandler) ListMyUploads(c *gin.Context) {
	guest, ok := middleware.GuestFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	resp, err := h.service.ListMyUploads(c.Request.Context(), guest.ID, guest.EventID)
	if err != nil {
		writeImageError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ========== DELETE: DELETE /v1/guest/images/:id ==========
// Only the uploader, and only while the event's edit window is open
func (h *ImageHandler) DeleteAsGuest(c *gin.Context) {
	guest, ok := middleware.GuestFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid image id")
		return
	}

	if err := h.service.DeleteAsGuest(c.Request.Context(), guest.ID, imageID); err != nil {
		writeImageError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": imageID})
}

// ========== DELETE: DELETE /v1/images/:id ==========
// Event owners curate their gallery at any time
func (h *ImageHandler) DeleteAsCustomer(c *gin.Context) {
	customer, ok := middleware.CustomerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid image id")
		return
	}

	if err := h.service.DeleteAsCustomer(c.Request.Context(), customer.ID, imageID); err != nil {
		writeImageError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": imageID})
}

func writeImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrImageNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeImageNotFound, err.Error())
	case errors.Is(err, model.ErrNotImageOwner):
		response.ErrorResponse(c, http.StatusForbidden, model.ErrCodeNotImageOwner, err.Error())
	case errors.Is(err, model.ErrEditWindowClosed):
		response.ErrorResponse(c, http.StatusForbidden, model.ErrCodeEditWindowClosed, err.Error())
	case errors.Is(err, model.ErrWrongEvent):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeWrongEvent, err.Error())
	case errors.Is(err, eventmodel.ErrEventNotFound):
		response.ErrorResponse(c, http.StatusNotFound, eventmodel.ErrCodeEventNotFound, err.Error())
	case errors.Is(err, eventmodel.ErrNotEventOwner):
		response.ErrorResponse(c, http.StatusForbidden, eventmodel.ErrCodeNotEventOwner, err.Error())
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
