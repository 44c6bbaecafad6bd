package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assignment-service/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestPayloadColumns(t *testing.T) {
	t.Run("only supplied fields appear", func(t *testing.T) {
		p := models.AssignmentPayload{
			Title:  strPtr("A2"),
			UserID: intPtr(7),
		}

		cols := p.Columns()

		assert.Equal(t, map[string]interface{}{
			"title":   "A2",
			"user_id": 7,
		}, cols)
	})

	t.Run("empty payload yields no columns", func(t *testing.T) {
		p := models.AssignmentPayload{}
		assert.Empty(t, p.Columns())
	})

	t.Run("zero values supplied explicitly are kept", func(t *testing.T) {
		p := models.AssignmentPayload{
			Length: intPtr(0),
			Status: strPtr(""),
		}

		cols := p.Columns()

		assert.Equal(t, 0, cols["length"])
		assert.Equal(t, "", cols["status"])
	})
}
