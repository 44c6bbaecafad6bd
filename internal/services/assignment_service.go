package services

import (
	"context"

	"go.uber.org/zap"

	"assignment-service/internal/apperr"
	"assignment-service/internal/events"
	"assignment-service/internal/logger"
	"assignment-service/internal/models"
	"assignment-service/internal/repository"
	"assignment-service/internal/validation"
)

// AssignmentService orchestrates validation, repository calls and outcome
// classification for the assignment resource. It holds no per-request state.
type AssignmentService struct {
	Repo   repository.AssignmentRepository
	Events events.Publisher
	Log    *logger.Logger
}

// NewAssignmentService creates a new AssignmentService with the given repository
// and event publisher.
func NewAssignmentService(repo repository.AssignmentRepository, publisher events.Publisher, log *logger.Logger) *AssignmentService {
	return &AssignmentService{
		Repo:   repo,
		Events: publisher,
		Log:    log,
	}
}

// CreateAssignment validates the payload and persists a new assignment. Returns
// the stored record with its server-assigned id and timestamps.
func (s *AssignmentService) CreateAssignment(ctx context.Context, payload *models.AssignmentPayload) (*models.Assignment, error) {
	if err := validation.ValidatePayload(payload, validation.OpCreate); err != nil {
		return nil, err
	}

	assignment, err := s.Repo.Create(ctx, payload)
	if err != nil {
		return nil, &apperr.StorageError{Op: "create", Err: err}
	}

	s.publish(ctx, events.TypeAssignmentCreated, assignment.ID)
	return assignment, nil
}

// ListAssignments returns every stored assignment. An empty store is a valid,
// successful result.
func (s *AssignmentService) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.Repo.List(ctx)
	if err != nil {
		return nil, &apperr.StorageError{Op: "list", Err: err}
	}
	return assignments, nil
}

// GetAssignment returns the assignment under the given id.
func (s *AssignmentService) GetAssignment(ctx context.Context, id uint) (*models.Assignment, error) {
	assignment, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, &apperr.StorageError{Op: "get", Err: err}
	}
	if assignment == nil {
		return nil, &apperr.NotFoundError{ID: id}
	}
	return assignment, nil
}

// UpdateAssignment merges the supplied fields over the stored record. Omitted
// fields keep their prior values.
func (s *AssignmentService) UpdateAssignment(ctx context.Context, id uint, payload *models.AssignmentPayload) (*models.Assignment, error) {
	if err := validation.ValidatePayload(payload, validation.OpUpdate); err != nil {
		return nil, err
	}

	assignment, err := s.Repo.Update(ctx, id, payload)
	if err != nil {
		return nil, &apperr.StorageError{Op: "update", Err: err}
	}
	if assignment == nil {
		return nil, &apperr.NotFoundError{ID: id}
	}

	s.publish(ctx, events.TypeAssignmentUpdated, assignment.ID)
	return assignment, nil
}

// DeleteAssignment removes the assignment under the given id.
func (s *AssignmentService) DeleteAssignment(ctx context.Context, id uint) error {
	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return &apperr.StorageError{Op: "delete", Err: err}
	}
	if !deleted {
		return &apperr.NotFoundError{ID: id}
	}

	s.publish(ctx, events.TypeAssignmentDeleted, id)
	return nil
}

// publish emits a lifecycle event. A publish failure is logged and swallowed; the
// mutation already committed and must not be reported as failed.
func (s *AssignmentService) publish(ctx context.Context, eventType string, id uint) {
	if err := s.Events.Publish(ctx, events.NewEvent(eventType, id)); err != nil {
		s.Log.Warn("failed to publish event",
			zap.String("type", eventType), zap.Uint("assignment_id", id), zap.Error(err))
	}
}
