package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"protrack/internal/model"
)

// ProjectFilter narrows the project list query. Zero values mean "no filter".
type ProjectFilter struct {
	Status string
	Search string
	Offset int
	Limit  int
}

// ProjectRepository defines project persistence operations. Every read, update
// and delete is scoped by the owning user id inside the query itself, so
// cross-tenant access is impossible at this layer.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, filter ProjectFilter) ([]model.Project, int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List returns one page of the owner's projects plus the total match count.
// The filter is conjunctive: owner AND optional status AND an optional
// case-insensitive substring search across name, team member and description.
func (r *projectRepository) List(ctx context.Context, ownerID uuid.UUID, filter ProjectFilter) ([]model.Project, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Project{}).
		Where("user_id = ?", ownerID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(team_member) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []model.Project
	err := query.
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}
