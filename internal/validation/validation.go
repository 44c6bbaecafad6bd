// Package validation checks assignment payloads against the required-field rules
// before anything touches the database.
package validation

import (
	"strings"

	"assignment-service/internal/apperr"
	"assignment-service/internal/models"
)

// Op is the kind of mutating operation a payload is validated for.
type Op int

const (
	OpCreate Op = iota
	OpUpdate
)

// requiredFields lists the fields every stored assignment must carry non-empty.
var requiredFields = []string{"title", "content", "category"}

// ValidatePayload checks the required-field rules for the given operation.
//
// On create, title, content and category must each be present and non-empty after
// trimming. On update a field may be omitted entirely (the stored value is kept),
// but supplying one of the required fields as an empty string is rejected, since
// merging it would blank out a field the record must keep.
//
// Returns nil on success, or an *apperr.ValidationError naming every offending
// field. The payload is never modified.
func ValidatePayload(p *models.AssignmentPayload, op Op) error {
	supplied := map[string]*string{
		"title":    p.Title,
		"content":  p.Content,
		"category": p.Category,
	}

	var bad []string
	for _, field := range requiredFields {
		val := supplied[field]
		if val == nil {
			if op == OpCreate {
				bad = append(bad, field)
			}
			continue
		}
		if strings.TrimSpace(*val) == "" {
			bad = append(bad, field)
		}
	}

	if len(bad) > 0 {
		return &apperr.ValidationError{Fields: bad}
	}
	return nil
}
