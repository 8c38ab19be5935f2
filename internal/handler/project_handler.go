package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"protrack/internal/auth"
	apperrors "protrack/internal/errors"
	"protrack/internal/model"
	"protrack/internal/service"
	"protrack/internal/validation"
)

// ProjectHandler handles project CRUD endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
	debug          bool
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(projectService service.ProjectService, debug bool) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, debug: debug}
}

// CreateProjectRequest represents a project creation request.
type CreateProjectRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=500"`
	Status      string   `json:"status" validate:"omitempty,oneof=ACTIVE ON_HOLD COMPLETED"`
	Deadline    string   `json:"deadline" validate:"required,dateparse"`
	TeamMember  string   `json:"teamMember" validate:"required,max=100"`
	Budget      *float64 `json:"budget" validate:"required,gte=0,lte=10000000"`
}

// UpdateProjectRequest represents a partial project update; absent fields are
// left unchanged.
type UpdateProjectRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Status      *string  `json:"status" validate:"omitempty,oneof=ACTIVE ON_HOLD COMPLETED"`
	Deadline    *string  `json:"deadline" validate:"omitempty,dateparse"`
	TeamMember  *string  `json:"teamMember" validate:"omitempty,min=1,max=100"`
	Budget      *float64 `json:"budget" validate:"omitempty,gte=0,lte=10000000"`
}

// ProjectListResponse is one page of projects plus pagination metadata.
type ProjectListResponse struct {
	Projects   []model.Project `json:"projects"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}

// callerID extracts the authenticated user's id from the request context.
func callerID(c echo.Context) (uuid.UUID, error) {
	claims, err := auth.FromContext(c)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.ParsedUserID()
}

// projectID parses the :id path parameter. An unparseable id behaves exactly
// like a missing project.
func projectID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrProjectNotFound
	}
	return id, nil
}

// List godoc
// @Summary List the caller's projects with filtering and pagination
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(ACTIVE, ON_HOLD, COMPLETED)
// @Param search query string false "Substring match on name, team member or description"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size 1-100 (default 10)"
// @Success 200 {object} Envelope{data=ProjectListResponse}
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return RespondUnauthorized(c)
	}

	query, err := validation.ParseListQuery(c.QueryParams())
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	page, err := h.projectService.List(c.Request().Context(), ownerID, service.ListProjectsInput{
		Status: query.Status,
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusOK, ProjectListResponse{
		Projects:   page.Projects,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// Create godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} Envelope{data=model.Project}
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return RespondUnauthorized(c)
	}

	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondServiceError(c, err, h.debug)
	}

	deadline, err := validation.ParseDate(req.Deadline)
	if err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid date format")
	}

	project, err := h.projectService.Create(c.Request().Context(), ownerID, service.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      model.Status(req.Status),
		Deadline:    deadline,
		TeamMember:  req.TeamMember,
		Budget:      decimal.NewFromFloat(*req.Budget),
	})
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusCreated, project)
}

// Get godoc
// @Summary Get a single project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} Envelope{data=model.Project}
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return RespondUnauthorized(c)
	}
	id, err := projectID(c)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	project, err := h.projectService.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusOK, project)
}

// Update godoc
// @Summary Update a project's supplied fields
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param request body UpdateProjectRequest true "Fields to change"
// @Success 200 {object} Envelope{data=model.Project}
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return RespondUnauthorized(c)
	}
	id, err := projectID(c)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return respondServiceError(c, err, h.debug)
	}

	input := service.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		TeamMember:  req.TeamMember,
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		input.Status = &status
	}
	if req.Deadline != nil {
		deadline, err := validation.ParseDate(*req.Deadline)
		if err != nil {
			return respondError(c, http.StatusBadRequest, "Invalid date format")
		}
		input.Deadline = &deadline
	}
	if req.Budget != nil {
		budget := decimal.NewFromFloat(*req.Budget)
		input.Budget = &budget
	}

	project, err := h.projectService.Update(c.Request().Context(), ownerID, id, input)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusOK, project)
}

// Delete godoc
// @Summary Delete a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} Envelope{data=DeleteResponse}
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return RespondUnauthorized(c)
	}
	id, err := projectID(c)
	if err != nil {
		return respondServiceError(c, err, h.debug)
	}

	if err := h.projectService.Delete(c.Request().Context(), ownerID, id); err != nil {
		return respondServiceError(c, err, h.debug)
	}

	return respondData(c, http.StatusOK, DeleteResponse{Message: "Project deleted successfully"})
}
