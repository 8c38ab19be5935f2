package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"protrack/internal/auth"
	apperrors "protrack/internal/errors"
	"protrack/internal/model"
	"protrack/internal/service"
	"protrack/internal/validation"
)

// MockProjectService is a mock implementation of service.ProjectService.
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, ownerID uuid.UUID, in service.CreateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, ownerID uuid.UUID, in service.ListProjectsInput) (*service.ProjectPage, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectPage), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, ownerID, id uuid.UUID, in service.UpdateProjectInput) (*model.Project, error) {
	args := m.Called(ctx, ownerID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func newTestContext(t *testing.T, method, target, body string, ownerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validation.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("user", &auth.Claims{
		UserID: ownerID.String(),
		Email:  "a@x.com",
		Role:   "USER",
	})

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestProjectHandler_CreateReturnsCreatedProject(t *testing.T) {
	ownerID := uuid.New()
	mockSvc := new(MockProjectService)
	mockSvc.On("Create", mock.Anything, ownerID, mock.AnythingOfType("service.CreateProjectInput")).
		Return(&model.Project{Name: "P1", Status: model.StatusActive, UserID: ownerID}, nil)

	h := NewProjectHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodPost, "/api/projects",
		`{"name":"P1","teamMember":"A","deadline":"2025-01-01","budget":1000}`, ownerID)

	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	data := env.Data.(map[string]interface{})
	assert.Equal(t, "P1", data["name"])
	assert.Equal(t, "ACTIVE", data["status"])
	mockSvc.AssertExpectations(t)
}

func TestProjectHandler_CreateValidationFirstMessage(t *testing.T) {
	mockSvc := new(MockProjectService)
	h := NewProjectHandler(mockSvc, false)

	c, rec := newTestContext(t, http.MethodPost, "/api/projects",
		`{"teamMember":"A","deadline":"2025-01-01","budget":1000}`, uuid.New())

	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Name is required", env.Error)
	mockSvc.AssertNotCalled(t, "Create")
}

func TestProjectHandler_GetNotOwnedIs404(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()

	mockSvc := new(MockProjectService)
	mockSvc.On("Get", mock.Anything, ownerID, projectID).Return(nil, apperrors.ErrProjectNotFound)

	h := NewProjectHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodGet, "/api/projects/"+projectID.String(), "", ownerID)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Project not found", env.Error)
}

func TestProjectHandler_GetMalformedIDIs404(t *testing.T) {
	mockSvc := new(MockProjectService)
	h := NewProjectHandler(mockSvc, false)

	c, rec := newTestContext(t, http.MethodGet, "/api/projects/not-a-uuid", "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockSvc.AssertNotCalled(t, "Get")
}

func TestProjectHandler_UpdatePartialBody(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()

	mockSvc := new(MockProjectService)
	mockSvc.On("Update", mock.Anything, ownerID, projectID, mock.MatchedBy(func(in service.UpdateProjectInput) bool {
		// Only budget supplied: everything else must stay nil.
		return in.Budget != nil && in.Budget.IntPart() == 500 &&
			in.Name == nil && in.Description == nil && in.Status == nil &&
			in.Deadline == nil && in.TeamMember == nil
	})).Return(&model.Project{ID: projectID, UserID: ownerID}, nil)

	h := NewProjectHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodPut, "/api/projects/"+projectID.String(),
		`{"budget":500}`, ownerID)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestProjectHandler_ListPaginationEnvelope(t *testing.T) {
	ownerID := uuid.New()

	mockSvc := new(MockProjectService)
	mockSvc.On("List", mock.Anything, ownerID, service.ListProjectsInput{Status: "ACTIVE", Page: 2, Limit: 5}).
		Return(&service.ProjectPage{
			Projects:   []model.Project{},
			Total:      11,
			Page:       2,
			Limit:      5,
			TotalPages: 3,
		}, nil)

	h := NewProjectHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodGet, "/api/projects?status=ACTIVE&page=2&limit=5", "", ownerID)

	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, float64(11), data["total"])
	assert.Equal(t, float64(3), data["totalPages"])
	assert.Equal(t, float64(2), data["page"])
}

func TestProjectHandler_ListRejectsBadQuery(t *testing.T) {
	mockSvc := new(MockProjectService)
	h := NewProjectHandler(mockSvc, false)

	c, rec := newTestContext(t, http.MethodGet, "/api/projects?limit=9999", "", uuid.New())

	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid limit", env.Error)
	mockSvc.AssertNotCalled(t, "List")
}

func TestProjectHandler_DeleteNotOwnedIs404(t *testing.T) {
	ownerID := uuid.New()
	projectID := uuid.New()

	mockSvc := new(MockProjectService)
	mockSvc.On("Delete", mock.Anything, ownerID, projectID).Return(apperrors.ErrProjectNotFound)

	h := NewProjectHandler(mockSvc, false)
	c, rec := newTestContext(t, http.MethodDelete, "/api/projects/"+projectID.String(), "", ownerID)
	c.SetParamNames("id")
	c.SetParamValues(projectID.String())

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
