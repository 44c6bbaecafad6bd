package models

import (
	"time"
)

// Assignment represents a single assignment record stored in the database.
type Assignment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	Category    string    `gorm:"not null" json:"category"`
	Length      *int      `json:"length,omitempty"`
	UserID      *int      `gorm:"column:user_id" json:"userId,omitempty"`
	Status      *string   `json:"status,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PublishedAt time.Time `json:"publishedAt"`
}

// AssignmentPayload is a client-supplied create or update body. Pointer fields
// distinguish an omitted field from one supplied with a zero value, which is what
// makes merge-not-replace updates possible.
type AssignmentPayload struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	Length   *int    `json:"length"`
	UserID   *int    `json:"userId"`
	Status   *string `json:"status"`
}

// Columns returns the database column values for every field the client actually
// supplied, keyed by column name. Omitted fields are absent from the map.
func (p *AssignmentPayload) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Length != nil {
		cols["length"] = *p.Length
	}
	if p.UserID != nil {
		cols["user_id"] = *p.UserID
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}
