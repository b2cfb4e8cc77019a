package handler

import (
	"net/http"
	"strings"

	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/model"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boards BoardRepository
	tree   *board.Tree
}

func NewBoardHandler(boards BoardRepository, tree *board.Tree) *BoardHandler {
	return &BoardHandler{
		boards: boards,
		tree:   tree,
	}
}

// Create godoc
// @Summary      Create a board with the default columns
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Param        request  body  handler.TitleRequest  true  "Request body"
// @Success      201 {object} model.Board
// @Failure      400 {object} ErrorResponse
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	b, _ := h.tree.NewBoard(req.Title)
	h.boards.Create(c.Request.Context(), b)

	c.JSON(http.StatusCreated, h.tree.MarkOverdue(b))
}

// GetAll godoc
// @Summary      List boards with per-column card counts
// @Tags         Boards
// @Produce      json
// @Success      200 {array} model.BoardSummary
// @Router       /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	boards := h.boards.List(c.Request.Context())
	c.JSON(http.StatusOK, board.Summaries(boards))
}

// GetByID godoc
// @Summary      Get a board
// @Tags         Boards
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Success      200 {object} model.Board
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	b, err := h.boards.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tree.MarkOverdue(b))
}

// Update godoc
// @Summary      Rename a board
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        request  body  handler.TitleRequest  true  "Request body"
// @Success      200 {object} model.Board
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	var req TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	b, err := h.boards.Update(c.Request.Context(), c.Param("id"), func(cur model.Board) model.Board {
		return board.RenameBoard(cur, req.Title)
	})
	if err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.tree.MarkOverdue(b))
}

// Delete godoc
// @Summary      Delete a board
// @Tags         Boards
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	if err := h.boards.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondBoardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Board deleted successfully"})
}
