package drag

import (
	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/model"
)

// MoveAcross moves the active card into the column under the pointer. When
// overID names a card the active card is inserted at that card's position,
// when it names a column the card is appended. Moves within one column, an
// empty overID and unknown ids leave the board unchanged and report false.
func MoveAcross(b model.Board, activeID, overID string) (model.Board, bool) {
	if overID == "" {
		return b, false
	}
	srcIdx, cardIdx := board.FindCard(b, activeID)
	if srcIdx < 0 {
		return b, false
	}
	dstIdx, _ := board.FindCard(b, overID)
	if dstIdx < 0 {
		dstIdx = board.ColumnIndex(b, overID)
	}
	if dstIdx < 0 || dstIdx == srcIdx {
		return b, false
	}

	src := b.Columns[srcIdx]
	card := src.Cards[cardIdx]
	srcCards := make([]model.Card, 0, len(src.Cards)-1)
	srcCards = append(srcCards, src.Cards[:cardIdx]...)
	src.Cards = append(srcCards, src.Cards[cardIdx+1:]...)

	dst := b.Columns[dstIdx]
	at := dst.IndexOf(overID)
	if at < 0 {
		at = len(dst.Cards)
	}
	dstCards := make([]model.Card, 0, len(dst.Cards)+1)
	dstCards = append(dstCards, dst.Cards[:at]...)
	dstCards = append(dstCards, card)
	dst.Cards = append(dstCards, dst.Cards[at:]...)

	b = board.UpdateColumn(b, src)
	return board.UpdateColumn(b, dst), true
}

// Reorder moves the active card to the position of the card under the
// pointer when both sit in the same column. Every other card keeps its
// relative order.
func Reorder(b model.Board, activeID, overID string) (model.Board, bool) {
	if overID == "" || activeID == overID {
		return b, false
	}
	col, ok := board.ColumnOf(b, activeID)
	if !ok {
		return b, false
	}
	from := col.IndexOf(activeID)
	to := col.IndexOf(overID)
	if to < 0 {
		return b, false
	}
	col.Cards = arrayMove(col.Cards, from, to)
	return board.UpdateColumn(b, col), true
}

// arrayMove returns a copy of cards with the element at from moved to to.
func arrayMove(cards []model.Card, from, to int) []model.Card {
	out := make([]model.Card, 0, len(cards))
	out = append(out, cards[:from]...)
	out = append(out, cards[from+1:]...)
	moved := cards[from]
	out = append(out, model.Card{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}
