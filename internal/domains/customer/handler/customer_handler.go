package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"eventgallery-backend/internal/domains/customer/model"
	"eventgallery-backend/internal/domains/customer/service"
	"eventgallery-backend/internal/shared/response"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

// ========== CREATE: POST /v1/auth/register ==========
func (h *CustomerHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeCustomerError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ========== CREATE: POST /v1/auth/login ==========
func (h *CustomerHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeCustomerError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func writeCustomerError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", verrs)
	case errors.Is(err, model.ErrEmailTaken):
		response.ErrorResponse(c, http.StatusConflict, model.ErrCodeEmailTaken, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials):
		response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, model.ErrCustomerNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeCustomerNotFound, err.Error())
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
