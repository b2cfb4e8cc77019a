package model

import (
	"time"
)

// Card is a single task on the board. Description and DueDate are optional:
// an empty description and a nil due date are both omitted when stored.
type Card struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     *Date     `json:"dueDate,omitempty"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`

	// Overdue is derived from DueDate when a board is shown and never stored.
	Overdue bool `json:"overdue,omitempty"`
}

// IsOverdue reports whether the card has a due date before the day of now.
func (c Card) IsOverdue(now time.Time) bool {
	return c.DueDate != nil && c.DueDate.Overdue(now)
}
