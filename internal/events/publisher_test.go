package events_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"assignment-service/internal/events"
)

func TestNewEvent(t *testing.T) {
	event := events.NewEvent(events.TypeAssignmentCreated, 12)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, events.TypeAssignmentCreated, event.Type)
	assert.Equal(t, uint(12), event.AssignmentID)
	assert.False(t, event.OccurredAt.IsZero())

	other := events.NewEvent(events.TypeAssignmentDeleted, 12)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestNoopPublisher(t *testing.T) {
	p := events.NoopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), events.NewEvent(events.TypeAssignmentUpdated, 1)))
	assert.NoError(t, p.Close())
}
