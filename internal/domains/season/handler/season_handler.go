package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/season/model"
	"waterpolo-backend/internal/domains/season/service"
	"waterpolo-backend/internal/shared/response"
)

type SeasonHandler struct {
	service service.Service
}

func NewSeasonHandler(svc service.Service) *SeasonHandler {
	return &SeasonHandler{service: svc}
}

// List - GET /v1/seasons
func (h *SeasonHandler) List(c *gin.Context) {
	seasons, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch seasons")
		return
	}

	resp := make([]*model.SeasonResponse, 0, len(seasons))
	for i := range seasons {
		resp = append(resp, seasons[i].ToResponse())
	}

	response.Success(c, http.StatusOK, resp)
}

// GetByID - GET /v1/seasons/:id
func (h *SeasonHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a valid UUID")
		return
	}

	season, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSeasonNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "Failed to fetch season")
		return
	}

	response.Success(c, http.StatusOK, season.ToResponse())
}

// GetCurrent - GET /v1/seasons/current
func (h *SeasonHandler) GetCurrent(c *gin.Context) {
	season, err := h.service.GetCurrent(c.Request.Context())
	if err != nil {
		if errors.Is(err, model.ErrNoCurrentSeason) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalServerError(c, "Failed to fetch current season")
		return
	}

	response.Success(c, http.StatusOK, season.ToResponse())
}
