// Package board holds the pure transformations over the board tree
// (Board -> Column -> Card). Every function returns a new value and leaves
// its input untouched, so callers can compare snapshots by reference.
package board

import (
	"strings"
	"time"

	"github.com/sodamelon/kanban/internal/model"

	"github.com/google/uuid"
)

// DefaultColumns seed every new board.
var DefaultColumns = []string{"To Do", "In Progress", "Done"}

// Tree creates entities that need fresh ids and timestamps.
type Tree struct {
	newID func() string
	now   func() time.Time
}

type Option func(*Tree)

// WithIDs replaces the id generator.
func WithIDs(fn func() string) Option {
	return func(t *Tree) { t.newID = fn }
}

// WithClock replaces the clock.
func WithClock(fn func() time.Time) Option {
	return func(t *Tree) { t.now = fn }
}

func NewTree(opts ...Option) *Tree {
	t := &Tree{
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewBoard builds a board with the default columns. A blank title yields false.
func (t *Tree) NewBoard(title string) (model.Board, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Board{}, false
	}
	cols := make([]model.Column, len(DefaultColumns))
	for i, name := range DefaultColumns {
		cols[i] = model.Column{ID: t.newID(), Title: name, Cards: []model.Card{}}
	}
	return model.Board{
		ID:        t.newID(),
		Title:     title,
		Columns:   cols,
		CreatedAt: t.now(),
	}, true
}

// AddColumn appends an empty column.
func (t *Tree) AddColumn(b model.Board, title string) model.Board {
	title = strings.TrimSpace(title)
	if title == "" {
		return b
	}
	cols := make([]model.Column, len(b.Columns), len(b.Columns)+1)
	copy(cols, b.Columns)
	b.Columns = append(cols, model.Column{ID: t.newID(), Title: title, Cards: []model.Card{}})
	return b
}

// AddCard appends a new medium-priority card to the column.
func (t *Tree) AddCard(b model.Board, columnID, title string) model.Board {
	title = strings.TrimSpace(title)
	if title == "" {
		return b
	}
	idx := columnIndex(b, columnID)
	if idx < 0 {
		return b
	}
	card := model.Card{
		ID:        t.newID(),
		Title:     title,
		Priority:  model.DefaultPriority,
		CreatedAt: t.now(),
	}
	col := b.Columns[idx]
	cards := make([]model.Card, len(col.Cards), len(col.Cards)+1)
	copy(cards, col.Cards)
	col.Cards = append(cards, card)
	return withColumn(b, idx, col)
}

// UpdateColumn replaces the column with the same id.
func UpdateColumn(b model.Board, column model.Column) model.Board {
	idx := columnIndex(b, column.ID)
	if idx < 0 {
		return b
	}
	return withColumn(b, idx, column)
}

// RenameColumn changes a column title. Blank or unchanged titles are ignored.
func RenameColumn(b model.Board, columnID, title string) model.Board {
	title = strings.TrimSpace(title)
	idx := columnIndex(b, columnID)
	if idx < 0 || title == "" || b.Columns[idx].Title == title {
		return b
	}
	col := b.Columns[idx]
	col.Title = title
	return withColumn(b, idx, col)
}

// DeleteColumn removes the column together with its cards.
func DeleteColumn(b model.Board, columnID string) model.Board {
	idx := columnIndex(b, columnID)
	if idx < 0 {
		return b
	}
	cols := make([]model.Column, 0, len(b.Columns)-1)
	cols = append(cols, b.Columns[:idx]...)
	b.Columns = append(cols, b.Columns[idx+1:]...)
	return b
}

// UpdateCard replaces the card with card.ID inside the column. A blank title
// keeps the current one, an empty description or nil due date is stored as
// absent and an invalid priority keeps the current priority.
func UpdateCard(b model.Board, columnID string, card model.Card) model.Board {
	idx := columnIndex(b, columnID)
	if idx < 0 {
		return b
	}
	col := b.Columns[idx]
	pos := col.IndexOf(card.ID)
	if pos < 0 {
		return b
	}
	current := col.Cards[pos]

	updated := current
	if title := strings.TrimSpace(card.Title); title != "" {
		updated.Title = title
	}
	updated.Description = strings.TrimSpace(card.Description)
	updated.DueDate = nil
	if card.DueDate != nil && !card.DueDate.IsZero() {
		due := *card.DueDate
		updated.DueDate = &due
	}
	if card.Priority.Valid() {
		updated.Priority = card.Priority
	}

	cards := make([]model.Card, len(col.Cards))
	copy(cards, col.Cards)
	cards[pos] = updated
	col.Cards = cards
	return withColumn(b, idx, col)
}

// DeleteCard removes the card from the column.
func DeleteCard(b model.Board, columnID, cardID string) model.Board {
	idx := columnIndex(b, columnID)
	if idx < 0 {
		return b
	}
	col := b.Columns[idx]
	pos := col.IndexOf(cardID)
	if pos < 0 {
		return b
	}
	cards := make([]model.Card, 0, len(col.Cards)-1)
	cards = append(cards, col.Cards[:pos]...)
	col.Cards = append(cards, col.Cards[pos+1:]...)
	return withColumn(b, idx, col)
}

// RenameBoard replaces the title when it is non-blank and different.
func RenameBoard(b model.Board, title string) model.Board {
	title = strings.TrimSpace(title)
	if title == "" || title == b.Title {
		return b
	}
	b.Title = title
	return b
}

// FindCard locates a card anywhere on the board. The indexes are -1 when
// the card is missing.
func FindCard(b model.Board, cardID string) (colIdx, cardIdx int) {
	for i, col := range b.Columns {
		if j := col.IndexOf(cardID); j >= 0 {
			return i, j
		}
	}
	return -1, -1
}

// ColumnOf returns the column owning the card.
func ColumnOf(b model.Board, cardID string) (model.Column, bool) {
	i, _ := FindCard(b, cardID)
	if i < 0 {
		return model.Column{}, false
	}
	return b.Columns[i], true
}

// ColumnIndex returns the position of the column, or -1.
func ColumnIndex(b model.Board, columnID string) int {
	return columnIndex(b, columnID)
}

// CardCount is the total number of cards across all columns.
func CardCount(b model.Board) int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Cards)
	}
	return n
}

func columnIndex(b model.Board, columnID string) int {
	for i, col := range b.Columns {
		if col.ID == columnID {
			return i
		}
	}
	return -1
}

// withColumn returns b with the column at idx replaced, copying the slice.
func withColumn(b model.Board, idx int, col model.Column) model.Board {
	cols := make([]model.Column, len(b.Columns))
	copy(cols, b.Columns)
	cols[idx] = col
	b.Columns = cols
	return b
}

// MarkOverdue returns a copy of b with Overdue set on every card whose due
// date has passed by the tree's clock.
func (t *Tree) MarkOverdue(b model.Board) model.Board {
	now := t.now()
	cols := make([]model.Column, len(b.Columns))
	for i, col := range b.Columns {
		cards := make([]model.Card, len(col.Cards))
		for j, card := range col.Cards {
			card.Overdue = card.IsOverdue(now)
			cards[j] = card
		}
		col.Cards = cards
		cols[i] = col
	}
	b.Columns = cols
	return b
}
