package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sodamelon/kanban/internal/model"
	"github.com/sodamelon/kanban/internal/repository"

	"github.com/gin-gonic/gin"
)

// BoardRepository is the session state the handlers read and mutate.
type BoardRepository interface {
	List(ctx context.Context) model.Collection
	GetByID(ctx context.Context, id string) (model.Board, error)
	Create(ctx context.Context, b model.Board)
	Update(ctx context.Context, id string, fn func(model.Board) model.Board) (model.Board, error)
	Replace(ctx context.Context, b model.Board) error
	Delete(ctx context.Context, id string) error
}

// TitleRequest is the body of every create/rename call.
type TitleRequest struct {
	Title string `json:"title" binding:"required"`
}

func respondBoardError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrBoardNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update board"})
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
