// Package drag implements the card drag gesture as a three-phase state
// machine (Start, Over, End) over an immutable board snapshot.
package drag

import (
	"context"
	"sync"

	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/model"

	"github.com/sirupsen/logrus"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Sink receives board snapshots that should be persisted.
type Sink func(model.Board)

type Options struct {
	// PersistOnOver also hands every speculative Over snapshot to the sink.
	PersistOnOver bool
	// RevertOnNoTarget restores the pre-drag board when End has no target.
	RevertOnNoTarget bool
}

func DefaultOptions() Options {
	return Options{RevertOnNoTarget: true}
}

// Engine tracks one drag gesture at a time.
type Engine struct {
	mu      sync.Mutex
	opts    Options
	sink    Sink
	log     *logrus.Entry
	state   State
	active  model.Card
	origin  model.Board
	working model.Board
}

func NewEngine(opts Options, sink Sink, log *logrus.Entry) *Engine {
	if sink == nil {
		sink = func(model.Board) {}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		opts: opts,
		sink: sink,
		log:  log.WithField("component", "drag"),
	}
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Active returns the card being dragged.
func (e *Engine) Active() (model.Card, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active, e.state == Dragging
}

// Working returns the current speculative board.
func (e *Engine) Working() (model.Board, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.working, e.state == Dragging
}

// Start begins a gesture for the card. A card that is not on the board
// leaves the engine idle and the gesture inert.
func (e *Engine) Start(b model.Board, activeID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	colIdx, cardIdx := board.FindCard(b, activeID)
	if colIdx < 0 {
		e.reset()
		e.log.WithField("card_id", activeID).Debug("drag start ignored: card not on board")
		return false
	}
	e.state = Dragging
	e.active = b.Columns[colIdx].Cards[cardIdx]
	e.origin = b
	e.working = b
	return true
}

// Over moves the card across columns as the pointer travels. Each call
// re-derives from the latest working board.
func (e *Engine) Over(activeID, overID string) model.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Dragging || activeID != e.active.ID {
		return e.working
	}
	next, moved := MoveAcross(e.working, activeID, overID)
	if !moved {
		return e.working
	}
	e.working = next
	if e.opts.PersistOnOver {
		e.sink(next)
	}
	return next
}

// End finishes the gesture and returns the final board. Cross-column
// placement was already applied by Over; End only settles the order
// inside the owning column. The second result is false when no gesture
// was in progress.
func (e *Engine) End(activeID, overID string) (model.Board, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Dragging || activeID != e.active.ID {
		return e.working, false
	}
	final := e.working
	switch {
	case overID == "" && e.opts.RevertOnNoTarget:
		final = e.origin
		e.log.WithField("card_id", activeID).Debug("drag ended without target, reverting")
	case overID != "":
		final, _ = Reorder(final, activeID, overID)
	}
	e.reset()
	e.sink(final)
	return final, true
}

// Cancel abandons the gesture and restores the pre-drag board.
func (e *Engine) Cancel() (model.Board, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != Dragging {
		return model.Board{}, false
	}
	origin := e.origin
	// Speculative states may already be stored when PersistOnOver is set.
	if e.opts.PersistOnOver {
		e.sink(origin)
	}
	e.reset()
	return origin, true
}

func (e *Engine) reset() {
	e.state = Idle
	e.active = model.Card{}
	e.origin = model.Board{}
	e.working = model.Board{}
}

// Drive feeds events from src into the engine, starting from b, until the
// gesture ends, the source is exhausted or ctx is done. It returns the last
// board the engine produced.
func (e *Engine) Drive(ctx context.Context, b model.Board, src Source) (model.Board, error) {
	current := b
	for {
		ev, ok, err := src.Next(ctx)
		if err != nil {
			return current, err
		}
		if !ok {
			return current, nil
		}
		if ev.Phase == PhaseStart {
			ev.Board = current
		}
		next, done := e.Dispatch(ev)
		if next.ID != "" {
			current = next
		}
		if done {
			return current, nil
		}
	}
}

// Dispatch routes a single event. done reports that the gesture finished.
func (e *Engine) Dispatch(ev Event) (b model.Board, done bool) {
	switch ev.Phase {
	case PhaseStart:
		if !e.Start(ev.Board, ev.ActiveID) {
			return ev.Board, true
		}
		return ev.Board, false
	case PhaseOver:
		return e.Over(ev.ActiveID, ev.OverID), false
	case PhaseEnd:
		final, _ := e.End(ev.ActiveID, ev.OverID)
		return final, true
	case PhaseCancel:
		origin, _ := e.Cancel()
		return origin, true
	}
	return model.Board{}, false
}
