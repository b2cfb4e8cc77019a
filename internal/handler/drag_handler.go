package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/drag"
	"github.com/sodamelon/kanban/internal/model"
	"github.com/sodamelon/kanban/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DragHandler drives one drag engine per board from pointer callbacks sent
// by the web UI. An engine lives only while its gesture is in progress.
type DragHandler struct {
	boards  BoardRepository
	tree    *board.Tree
	opts    drag.Options
	log     *logrus.Entry
	mu      sync.Mutex
	engines map[string]*drag.Engine
}

func NewDragHandler(boards BoardRepository, tree *board.Tree, opts drag.Options, log *logrus.Entry) *DragHandler {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &DragHandler{
		boards:  boards,
		tree:    tree,
		opts:    opts,
		log:     log,
		engines: make(map[string]*drag.Engine),
	}
}

// DragRequest carries the dragged card and whatever is under the pointer.
// OverID is empty when the pointer is outside every drop zone.
type DragRequest struct {
	ActiveID string `json:"activeId" binding:"required"`
	OverID   string `json:"overId"`
}

type DragResponse struct {
	State  string      `json:"state"`
	Active *model.Card `json:"active,omitempty"`
	Board  model.Board `json:"board"`
}

func (h *DragHandler) engine(boardID string) *drag.Engine {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.engines[boardID]; ok {
		return e
	}
	e := drag.NewEngine(h.opts, h.persist, h.log.WithField("board_id", boardID))
	h.engines[boardID] = e
	return e
}

func (h *DragHandler) lookup(boardID string) (*drag.Engine, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.engines[boardID]
	return e, ok
}

// release drops the board's engine once it is idle again.
func (h *DragHandler) release(boardID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.engines[boardID]; ok && e.State() == drag.Idle {
		delete(h.engines, boardID)
	}
}

// persist is the engine sink. The gesture outlives any single request, so
// it writes with a background context.
func (h *DragHandler) persist(b model.Board) {
	if err := h.boards.Replace(context.Background(), b); err != nil {
		h.log.WithError(err).WithField("board_id", b.ID).Warn("drag result not saved")
	}
}

// respond reports the engine state with the board the UI should render:
// the speculative board while dragging, otherwise b.
func (h *DragHandler) respond(c *gin.Context, e *drag.Engine, b model.Board) {
	resp := DragResponse{State: drag.Idle.String()}
	if e != nil {
		resp.State = e.State().String()
		if working, dragging := e.Working(); dragging {
			b = working
		}
		if active, dragging := e.Active(); dragging {
			resp.Active = &active
		}
	}
	resp.Board = h.tree.MarkOverdue(b)
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Current drag state of a board
// @Tags         Drag
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Success      200 {object} DragResponse
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/drag [get]
func (h *DragHandler) Get(c *gin.Context) {
	b, ok := h.stored(c)
	if !ok {
		return
	}
	e, _ := h.lookup(b.ID)
	h.respond(c, e, b)
}

// Start godoc
// @Summary      Begin dragging a card
// @Tags         Drag
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        request  body  handler.DragRequest  true  "Request body"
// @Success      200 {object} DragResponse
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/drag/start [post]
func (h *DragHandler) Start(c *gin.Context) {
	var req DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	b, ok := h.stored(c)
	if !ok {
		return
	}

	e := h.engine(b.ID)
	if !e.Start(b, req.ActiveID) {
		h.release(b.ID)
	}
	h.respond(c, e, b)
}

// Over godoc
// @Summary      Pointer moved over a card or column
// @Tags         Drag
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        request  body  handler.DragRequest  true  "Request body"
// @Success      200 {object} DragResponse
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/drag/over [post]
func (h *DragHandler) Over(c *gin.Context) {
	var req DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	b, ok := h.stored(c)
	if !ok {
		return
	}
	e, active := h.lookup(b.ID)
	if active {
		e.Over(req.ActiveID, req.OverID)
	}
	h.respond(c, e, b)
}

// End godoc
// @Summary      Drop the card
// @Tags         Drag
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Param        request  body  handler.DragRequest  true  "Request body"
// @Success      200 {object} DragResponse
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/drag/end [post]
func (h *DragHandler) End(c *gin.Context) {
	var req DragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	b, ok := h.stored(c)
	if !ok {
		return
	}
	e, active := h.lookup(b.ID)
	if active {
		if final, ended := e.End(req.ActiveID, req.OverID); ended {
			b = final
		}
		h.release(b.ID)
	}
	h.respond(c, e, b)
}

// Cancel godoc
// @Summary      Abort the gesture
// @Tags         Drag
// @Produce      json
// @Param        id  path  string  true  "Board ID"
// @Success      200 {object} DragResponse
// @Failure      404 {object} ErrorResponse
// @Router       /boards/{id}/drag/cancel [post]
func (h *DragHandler) Cancel(c *gin.Context) {
	b, ok := h.stored(c)
	if !ok {
		return
	}
	e, active := h.lookup(b.ID)
	if active {
		if origin, cancelled := e.Cancel(); cancelled {
			b = origin
		}
		h.release(b.ID)
	}
	h.respond(c, e, b)
}

// stored loads the board named in the path. A board that no longer exists
// takes its engine with it.
func (h *DragHandler) stored(c *gin.Context) (model.Board, bool) {
	id := c.Param("id")
	b, err := h.boards.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			h.mu.Lock()
			delete(h.engines, id)
			h.mu.Unlock()
		}
		respondBoardError(c, err)
		return model.Board{}, false
	}
	return b, true
}
