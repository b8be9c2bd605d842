package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/roster/model"
	"waterpolo-backend/internal/domains/roster/service"
	"waterpolo-backend/internal/shared/response"
)

type RosterHandler struct {
	service service.Service
}

func NewRosterHandler(svc service.Service) *RosterHandler {
	return &RosterHandler{service: svc}
}

// ListBySeason - GET /v1/roster?season_id=<uuid>
func (h *RosterHandler) ListBySeason(c *gin.Context) {
	seasonID, err := uuid.Parse(c.Query("season_id"))
	if err != nil {
		response.BadRequest(c, "season_id must be a valid UUID")
		return
	}

	players, err := h.service.ListBySeason(c.Request.Context(), seasonID)
	if err != nil {
		response.InternalServerError(c, "Failed to load roster")
		return
	}

	response.Success(c, http.StatusOK, model.ToResponseList(players))
}

// GetByID - GET /v1/roster/:id
func (h *RosterHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a valid UUID")
		return
	}

	player, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			response.NotFound(c, model.ErrPlayerNotFound.Error())
			return
		}
		response.InternalServerError(c, "Failed to load roster entry")
		return
	}

	response.Success(c, http.StatusOK, player.ToResponse())
}

// Create - POST /v1/admin/roster (multipart/form-data)
func (h *RosterHandler) Create(c *gin.Context) {
	fields, err := bindPlayerForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	upload, err := readHeadshot(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	req := model.CreatePlayerRequest(*fields)
	created, err := h.service.Create(c.Request.Context(), &req, upload)
	if err != nil {
		h.writeWorkflowError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// Update - PUT /v1/admin/roster/:id (multipart/form-data)
func (h *RosterHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a valid UUID")
		return
	}

	fields, err := bindPlayerForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	upload, err := readHeadshot(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, fields, upload)
	if err != nil {
		h.writeWorkflowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// Delete - DELETE /v1/admin/roster/:id
func (h *RosterHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "id must be a valid UUID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			response.NotFound(c, model.ErrPlayerNotFound.Error())
			return
		}
		response.InternalServerError(c, "Failed to delete roster entry")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Export - GET /v1/admin/roster/export?season_id=<uuid>
func (h *RosterHandler) Export(c *gin.Context) {
	seasonID, err := uuid.Parse(c.Query("season_id"))
	if err != nil {
		response.BadRequest(c, "season_id must be a valid UUID")
		return
	}

	f, err := h.service.ExportSeason(c.Request.Context(), seasonID)
	if err != nil {
		response.InternalServerError(c, "Failed to export roster")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("roster-%s.xlsx", seasonID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "Failed to write export")
	}
}

func (h *RosterHandler) writeWorkflowError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid roster entry", verr)
	case errors.Is(err, model.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrUploadFailed):
		response.BadGateway(c, model.ErrUploadFailed.Error())
	case errors.Is(err, model.ErrPlayerNotFound):
		response.NotFound(c, model.ErrPlayerNotFound.Error())
	default:
		response.InternalServerError(c, "Failed to save roster entry")
	}
}

// bindPlayerForm parses the multipart fields shared by create and update.
// Fields are parsed by hand because the form mixes text inputs with a file
// part and uses UUID values gin's form binder does not handle.
func bindPlayerForm(c *gin.Context) (*model.UpdatePlayerRequest, error) {
	req := &model.UpdatePlayerRequest{
		Name:           c.PostForm("name"),
		Position:       c.PostForm("position"),
		GraduationYear: c.PostForm("graduation_year"),
		Hometown:       c.PostForm("hometown"),
		Major:          c.PostForm("major"),
	}

	if raw := c.PostForm("number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("number must be an integer")
		}
		req.Number = number
	}

	if raw := c.PostForm("is_staff"); raw != "" {
		isStaff, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("is_staff must be a boolean")
		}
		req.IsStaff = isStaff
	}

	seasonID, err := uuid.Parse(c.PostForm("roster_year_id"))
	if err != nil {
		return nil, fmt.Errorf("roster_year_id must be a valid UUID")
	}
	req.RosterYearID = seasonID

	return req, nil
}

// readHeadshot pulls the optional image part out of the form. A missing part
// means the entry keeps its current headshot.
func readHeadshot(c *gin.Context) (*model.HeadshotUpload, error) {
	fileHeader, err := c.FormFile("headshot")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid headshot upload: %w", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open headshot upload: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read headshot upload: %w", err)
	}

	return &model.HeadshotUpload{
		Data:     data,
		Filename: fileHeader.Filename,
	}, nil
}
