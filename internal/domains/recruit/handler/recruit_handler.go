package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"waterpolo-backend/internal/domains/recruit/model"
	"waterpolo-backend/internal/domains/recruit/service"
	"waterpolo-backend/internal/shared/response"
)

type RecruitHandler struct {
	service service.Service
}

func NewRecruitHandler(svc service.Service) *RecruitHandler {
	return &RecruitHandler{service: svc}
}

// Submit - POST /v1/recruits
func (h *RecruitHandler) Submit(c *gin.Context) {
	var req model.SubmitRecruitRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		var verr validation.Errors
		if errors.As(err, &verr) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid submission", verr)
			return
		}
		response.InternalServerError(c, "Failed to submit interest form")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": created.ID})
}
