package handler

import (
	"net/http"
	"strings"

	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/model"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	boards BoardRepository
	tree   *board.Tree
}

func NewCardHandler(boards BoardRepository, tree *board.Tree) *CardHandler {
	return &CardHandler{
		boards: boards,
		tree:   tree,
	}
}

// UpdateCardRequest is the card edit form. Empty description and due date
// clear the field; an empty priority keeps the current one.
type UpdateCardRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// Create godoc
// @Summary      Append a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        column_id  path  string  true  "Column ID"
// @Param        request  body  handler.TitleRequest  true  "Request body"
// @Success      201 {object} model.Board
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/columns/{column_id}/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	columnID := c.Param("column_id")
	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), func(cur model.Board) model.Board {
		return h.tree.AddCard(cur, columnID, req.Title)
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.tree.MarkOverdue(b))
}

// Update godoc
// @Summary      Edit a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        column_id  path  string  true  "Column ID"
// @Param        card_id  path  string  true  "Card ID"
// @Param        request  body  handler.UpdateCardRequest  true  "Request body"
// @Success      200 {object} model.Board
// @Failure      400 {object} ErrorResponse
// @Router       /boards/{id}/columns/{column_id}/cards/{card_id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card := model.Card{
		ID:          c.Param("card_id"),
		Title:       req.Title,
		Description: req.Description,
		Priority:    model.Priority(req.Priority),
	}
	if req.DueDate != "" {
		due, err := model.ParseDate(req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid due date format, expected YYYY-MM-DD"})
			return
		}
		card.DueDate = &due
	}

	columnID := c.Param("column_id")
	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), func(cur model.Board) model.Board {
		return board.UpdateCard(cur, columnID, card)
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tree.MarkOverdue(b))
}

// Delete godoc
// @Summary      Delete a card
// @Tags         Cards
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        column_id  path  string  true  "Column ID"
// @Param        card_id  path  string  true  "Card ID"
// @Success      200 {object} model.Board
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/columns/{column_id}/cards/{card_id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	columnID := c.Param("column_id")
	cardID := c.Param("card_id")
	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), func(cur model.Board) model.Board {
		return board.DeleteCard(cur, columnID, cardID)
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tree.MarkOverdue(b))
}
