package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"assignment-service/internal/models"
)

// AssignmentRepository defines the storage operations for assignments. Absence of
// a record is reported through nil results (or the boolean on Delete), never
// through an error; errors always mean the store itself failed.
type AssignmentRepository interface {
	Create(ctx context.Context, payload *models.AssignmentPayload) (*models.Assignment, error)
	List(ctx context.Context) ([]models.Assignment, error)
	GetByID(ctx context.Context, id uint) (*models.Assignment, error)
	Update(ctx context.Context, id uint, patch *models.AssignmentPayload) (*models.Assignment, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// AssignmentRepositoryImpl provides methods to interact with the Assignment model
// in the database.
type AssignmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new AssignmentRepositoryImpl instance with the
// provided GORM database connection.
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepositoryImpl {
	return &AssignmentRepositoryImpl{db: db}
}

// Create persists a new Assignment. The id is assigned by the database and all
// three timestamps are set to the same instant.
func (r *AssignmentRepositoryImpl) Create(ctx context.Context, payload *models.AssignmentPayload) (*models.Assignment, error) {
	now := time.Now()
	assignment := &models.Assignment{
		Title:       deref(payload.Title),
		Content:     deref(payload.Content),
		Category:    deref(payload.Category),
		Length:      payload.Length,
		UserID:      payload.UserID,
		Status:      payload.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
		PublishedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return nil, errors.Wrap(err, "could not insert assignment")
	}
	return assignment, nil
}

// List retrieves all Assignments from the database. An empty store yields an empty
// slice, not an error.
func (r *AssignmentRepositoryImpl) List(ctx context.Context) ([]models.Assignment, error) {
	assignments := make([]models.Assignment, 0)
	if err := r.db.WithContext(ctx).Find(&assignments).Error; err != nil {
		return nil, errors.Wrap(err, "could not list assignments")
	}
	return assignments, nil
}

// GetByID retrieves an Assignment by its ID, or nil when no record exists.
func (r *AssignmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not load assignment %d", id)
	}
	return &assignment, nil
}

// Update overlays the supplied fields onto the stored record and stamps a fresh
// updated_at, as a single conditional UPDATE keyed by id. Two concurrent updates
// therefore serialize at the database; neither can lose the other's columns, and
// an update can never insert a new row. Returns nil when the id does not exist.
func (r *AssignmentRepositoryImpl) Update(ctx context.Context, id uint, patch *models.AssignmentPayload) (*models.Assignment, error) {
	cols := patch.Columns()
	cols["updated_at"] = time.Now()

	res := r.db.WithContext(ctx).Model(&models.Assignment{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return nil, errors.Wrapf(res.Error, "could not update assignment %d", id)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes an Assignment by its ID. The boolean reports whether a record
// existed and was removed.
func (r *AssignmentRepositoryImpl) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Assignment{}, "id = ?", id)
	if res.Error != nil {
		return false, errors.Wrapf(res.Error, "could not delete assignment %d", id)
	}
	return res.RowsAffected > 0, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
