package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/user/model"
	"waterpolo-backend/internal/domains/user/service"
	"waterpolo-backend/internal/shared/middleware"
	"waterpolo-backend/internal/shared/response"
)

type UserHandler struct {
	service service.Service
}

func NewUserHandler(svc service.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// Register - POST /v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		var verr validation.Errors
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration", verr)
		case errors.Is(err, model.ErrEmailAlreadyExists):
			response.Conflict(c, model.ErrEmailAlreadyExists.Error())
		default:
			response.InternalServerError(c, "Failed to register account")
		}
		return
	}

	response.Success(c, http.StatusCreated, created.ToDTO())
}

// Login - POST /v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var verr validation.Errors
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid login", verr)
		case errors.Is(err, model.ErrInvalidCredentials):
			response.Unauthorized(c, model.ErrInvalidCredentials.Error())
		default:
			response.InternalServerError(c, "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, session)
}

// Me - GET /v1/auth/me
//
// Runs behind AuthMiddleware, so reaching the handler already means the
// token checked out. The account is reloaded so a freshly granted admin
// flag takes effect without reissuing the token.
func (h *UserHandler) Me(c *gin.Context) {
	userID, exists := c.Get(middleware.CtxUserID)
	if !exists {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID.(uuid.UUID))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			response.Unauthorized(c, "Account no longer exists")
			return
		}
		response.InternalServerError(c, "Failed to load session")
		return
	}

	dto := user.ToDTO()
	response.Success(c, http.StatusOK, model.SessionResponse{
		Authenticated: true,
		User:          &dto,
	})
}
