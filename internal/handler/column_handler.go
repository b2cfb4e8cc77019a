package handler

import (
	"net/http"
	"strings"

	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/model"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	boards BoardRepository
	tree   *board.Tree
}

func NewColumnHandler(boards BoardRepository, tree *board.Tree) *ColumnHandler {
	return &ColumnHandler{
		boards: boards,
		tree:   tree,
	}
}

// Create godoc
// @Summary      Append a column
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        request  body  handler.TitleRequest  true  "Request body"
// @Success      201 {object} model.Board
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), func(cur model.Board) model.Board {
		return h.tree.AddColumn(cur, req.Title)
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.tree.MarkOverdue(b))
}

// Update godoc
// @Summary      Rename a column
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        column_id  path  string  true  "Column ID"
// @Param        request  body  handler.TitleRequest  true  "Request body"
// @Success      200 {object} model.Board
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/columns/{column_id} [put]
func (h *ColumnHandler) Update(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	columnID := c.Param("column_id")
	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), func(cur model.Board) model.Board {
		return board.RenameColumn(cur, columnID, req.Title)
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tree.MarkOverdue(b))
}

// Delete godoc
// @Summary      Delete a column and its cards
// @Tags         Columns
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        column_id  path  string  true  "Column ID"
// @Success      200 {object} model.Board
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/columns/{column_id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	columnID := c.Param("column_id")
	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), func(cur model.Board) model.Board {
		return board.DeleteColumn(cur, columnID)
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tree.MarkOverdue(b))
}
