package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assignment-service/internal/apperr"
	"assignment-service/internal/models"
	"assignment-service/internal/validation"
)

func strPtr(s string) *string { return &s }

func TestValidatePayloadCreate(t *testing.T) {
	tests := []struct {
		name    string
		payload models.AssignmentPayload
		wantBad []string
	}{
		{
			name: "all required fields present",
			payload: models.AssignmentPayload{
				Title:    strPtr("Intro"),
				Content:  strPtr("Read chapter one"),
				Category: strPtr("reading"),
			},
		},
		{
			name:    "missing everything",
			payload: models.AssignmentPayload{},
			wantBad: []string{"title", "content", "category"},
		},
		{
			name: "empty title",
			payload: models.AssignmentPayload{
				Title:    strPtr(""),
				Content:  strPtr("Read chapter one"),
				Category: strPtr("reading"),
			},
			wantBad: []string{"title"},
		},
		{
			name: "whitespace-only content counts as empty",
			payload: models.AssignmentPayload{
				Title:    strPtr("Intro"),
				Content:  strPtr("   "),
				Category: strPtr("reading"),
			},
			wantBad: []string{"content"},
		},
		{
			name: "optional fields alone do not satisfy create",
			payload: models.AssignmentPayload{
				Length: intPtr(45),
				Status: strPtr("draft"),
			},
			wantBad: []string{"title", "content", "category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidatePayload(&tt.payload, validation.OpCreate)
			if len(tt.wantBad) == 0 {
				assert.NoError(t, err)
				return
			}
			var validationErr *apperr.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ElementsMatch(t, tt.wantBad, validationErr.Fields)
		})
	}
}

func TestValidatePayloadUpdate(t *testing.T) {
	t.Run("omitted required fields are allowed", func(t *testing.T) {
		payload := models.AssignmentPayload{Title: strPtr("New title")}
		assert.NoError(t, validation.ValidatePayload(&payload, validation.OpUpdate))
	})

	t.Run("fully empty patch is allowed", func(t *testing.T) {
		assert.NoError(t, validation.ValidatePayload(&models.AssignmentPayload{}, validation.OpUpdate))
	})

	t.Run("supplying an empty required field is rejected", func(t *testing.T) {
		payload := models.AssignmentPayload{Category: strPtr("")}
		err := validation.ValidatePayload(&payload, validation.OpUpdate)

		var validationErr *apperr.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"category"}, validationErr.Fields)
	})

	t.Run("optional fields are never validated", func(t *testing.T) {
		payload := models.AssignmentPayload{Status: strPtr(""), UserID: intPtr(0)}
		assert.NoError(t, validation.ValidatePayload(&payload, validation.OpUpdate))
	})
}

func intPtr(i int) *int { return &i }
