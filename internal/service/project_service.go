package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "protrack/internal/errors"
	"protrack/internal/model"
	"protrack/internal/repository"
)

// CreateProjectInput carries validated fields for project creation.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      model.Status
	Deadline    time.Time
	TeamMember  string
	Budget      decimal.Decimal
}

// UpdateProjectInput carries the subset of fields supplied in a partial
// update; nil pointers leave the stored value untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *model.Status
	Deadline    *time.Time
	TeamMember  *string
	Budget      *decimal.Decimal
}

// ListProjectsInput carries validated list-query parameters.
type ListProjectsInput struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ProjectPage is one page of list results plus pagination metadata.
type ProjectPage struct {
	Projects   []model.Project
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProjectService handles project CRUD scoped to the owning user.
type ProjectService interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (*model.Project, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, ownerID uuid.UUID, in ListProjectsInput) (*ProjectPage, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

// Create stores a new project owned by the caller. Status defaults to ACTIVE.
func (s *projectService) Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (*model.Project, error) {
	status := in.Status
	if status == "" {
		status = model.StatusActive
	}

	project := &model.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		Deadline:    in.Deadline,
		TeamMember:  in.TeamMember,
		Budget:      in.Budget,
		UserID:      ownerID,
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return project, nil
}

// Get returns the project only if it is owned by the caller.
func (s *projectService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Project, error) {
	project, err := s.projectRepo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

// List returns one page of the caller's projects, newest first.
func (s *projectService) List(ctx context.Context, ownerID uuid.UUID, in ListProjectsInput) (*ProjectPage, error) {
	filter := repository.ProjectFilter{
		Status: in.Status,
		Search: in.Search,
		Offset: (in.Page - 1) * in.Limit,
		Limit:  in.Limit,
	}

	projects, total, err := s.projectRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if projects == nil {
		projects = []model.Project{}
	}

	return &ProjectPage{
		Projects:   projects,
		Total:      total,
		Page:       in.Page,
		Limit:      in.Limit,
		TotalPages: int((total + int64(in.Limit) - 1) / int64(in.Limit)),
	}, nil
}

// Update verifies ownership first, then applies only the supplied fields.
func (s *projectService) Update(ctx context.Context, ownerID, id uuid.UUID, in UpdateProjectInput) (*model.Project, error) {
	project, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		project.Status = *in.Status
	}
	if in.Deadline != nil {
		project.Deadline = *in.Deadline
	}
	if in.TeamMember != nil {
		project.TeamMember = *in.TeamMember
	}
	if in.Budget != nil {
		project.Budget = *in.Budget
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	return project, nil
}

// Delete verifies ownership first, then removes the project permanently.
func (s *projectService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteByIDAndOwner(ctx, id, ownerID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}

	return nil
}
