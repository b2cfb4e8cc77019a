package model

import (
	"time"
)

// Board is the top-level kanban entity. Columns are kept in display order.
type Board struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Columns   []Column  `json:"columns"`
	CreatedAt time.Time `json:"createdAt"`
}

// Collection is the ordered set of boards persisted as a single value.
type Collection []Board

// BoardSummary is the list-view projection of a board.
type BoardSummary struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"createdAt"`
	Columns   []ColumnSummary `json:"columns"`
}

type ColumnSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CardCount int    `json:"cardCount"`
}

// Summary projects the board for the board list.
func (b Board) Summary() BoardSummary {
	cols := make([]ColumnSummary, len(b.Columns))
	for i, col := range b.Columns {
		cols[i] = ColumnSummary{
			ID:        col.ID,
			Title:     col.Title,
			CardCount: len(col.Cards),
		}
	}
	return BoardSummary{
		ID:        b.ID,
		Title:     b.Title,
		CreatedAt: b.CreatedAt,
		Columns:   cols,
	}
}

// Normalize repairs records written by older versions: nil slices become
// empty, unknown priorities fall back to medium and blank due dates are
// dropped. Derived flags are reset.
func (b Board) Normalize() Board {
	cols := make([]Column, len(b.Columns))
	for i, col := range b.Columns {
		cards := make([]Card, len(col.Cards))
		for j, card := range col.Cards {
			card.Priority = card.Priority.OrDefault()
			card.Overdue = false
			if card.DueDate != nil && card.DueDate.IsZero() {
				card.DueDate = nil
			}
			cards[j] = card
		}
		col.Cards = cards
		cols[i] = col
	}
	b.Columns = cols
	return b
}
