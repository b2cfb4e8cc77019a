package board

import (
	"github.com/sodamelon/kanban/internal/model"
)

// AddBoard appends the board to the collection.
func AddBoard(c model.Collection, b model.Board) model.Collection {
	out := make(model.Collection, len(c), len(c)+1)
	copy(out, c)
	return append(out, b)
}

// ReplaceBoard swaps in the board with the same id, keeping its position.
func ReplaceBoard(c model.Collection, b model.Board) model.Collection {
	idx := boardIndex(c, b.ID)
	if idx < 0 {
		return c
	}
	out := make(model.Collection, len(c))
	copy(out, c)
	out[idx] = b
	return out
}

// DeleteBoard drops the board and everything it owns.
func DeleteBoard(c model.Collection, boardID string) model.Collection {
	idx := boardIndex(c, boardID)
	if idx < 0 {
		return c
	}
	out := make(model.Collection, 0, len(c)-1)
	out = append(out, c[:idx]...)
	return append(out, c[idx+1:]...)
}

func FindBoard(c model.Collection, boardID string) (model.Board, bool) {
	idx := boardIndex(c, boardID)
	if idx < 0 {
		return model.Board{}, false
	}
	return c[idx], true
}

func Summaries(c model.Collection) []model.BoardSummary {
	out := make([]model.BoardSummary, len(c))
	for i, b := range c {
		out[i] = b.Summary()
	}
	return out
}

func boardIndex(c model.Collection, boardID string) int {
	for i, b := range c {
		if b.ID == boardID {
			return i
		}
	}
	return -1
}
