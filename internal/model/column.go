package model

// Column is a named, ordered list of cards within a board.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// IndexOf returns the position of the card in the column, or -1.
func (c Column) IndexOf(cardID string) int {
	for i, card := range c.Cards {
		if card.ID == cardID {
			return i
		}
	}
	return -1
}
