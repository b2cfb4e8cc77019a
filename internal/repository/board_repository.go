package repository

import (
	"context"
	"sync"

	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/model"
	"github.com/sodamelon/kanban/internal/store"

	"github.com/sirupsen/logrus"
)

// DefaultStorageKey is the key the whole board collection lives under.
const DefaultStorageKey = "kanban-boards"

// BoardRepository holds the session's board collection. The in-memory copy
// is authoritative: every mutation lands there first and is then written to
// the store as a full snapshot. A failed write is logged and retried
// implicitly by the next mutation.
type BoardRepository struct {
	mu      sync.RWMutex
	store   *store.Store
	key     string
	boards  model.Collection
	durable bool
	log     *logrus.Entry
}

func NewBoardRepository(ctx context.Context, s *store.Store, key string, log *logrus.Entry) *BoardRepository {
	if key == "" {
		key = DefaultStorageKey
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	r := &BoardRepository{
		store: s,
		key:   key,
		log:   log.WithField("component", "repository"),
	}
	r.Reload(ctx)
	return r
}

// Reload replaces the session state with what the store holds, as a fresh
// session would see it. Missing or corrupt data yields an empty collection.
func (r *BoardRepository) Reload(ctx context.Context) {
	loaded := store.Load(ctx, r.store, r.key, model.Collection{})
	boards := make(model.Collection, len(loaded))
	for i, b := range loaded {
		boards[i] = b.Normalize()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards = boards
	r.durable = true
	r.log.WithField("boards", len(boards)).Debug("board collection loaded")
}

func (r *BoardRepository) List(ctx context.Context) model.Collection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(model.Collection, len(r.boards))
	copy(out, r.boards)
	return out
}

func (r *BoardRepository) GetByID(ctx context.Context, id string) (model.Board, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := board.FindBoard(r.boards, id)
	if !ok {
		return model.Board{}, ErrBoardNotFound
	}
	return b, nil
}

func (r *BoardRepository) Create(ctx context.Context, b model.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commit(ctx, board.AddBoard(r.boards, b))
}

// Update applies fn to the stored board and saves the result.
func (r *BoardRepository) Update(ctx context.Context, id string, fn func(model.Board) model.Board) (model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := board.FindBoard(r.boards, id)
	if !ok {
		return model.Board{}, ErrBoardNotFound
	}
	updated := fn(current)
	updated.ID = current.ID
	r.commit(ctx, board.ReplaceBoard(r.boards, updated))
	return updated, nil
}

// Replace overwrites the board with the same id.
func (r *BoardRepository) Replace(ctx context.Context, b model.Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := board.FindBoard(r.boards, b.ID); !ok {
		return ErrBoardNotFound
	}
	r.commit(ctx, board.ReplaceBoard(r.boards, b))
	return nil
}

func (r *BoardRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := board.FindBoard(r.boards, id); !ok {
		return ErrBoardNotFound
	}
	r.commit(ctx, board.DeleteBoard(r.boards, id))
	return nil
}

// Durable reports whether the last write reached the store.
func (r *BoardRepository) Durable() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.durable
}

// commit must be called with mu held.
func (r *BoardRepository) commit(ctx context.Context, next model.Collection) {
	r.boards = next
	r.durable = store.Save(ctx, r.store, r.key, next)
	if !r.durable {
		r.log.Warn("board collection kept in memory only")
	}
}
