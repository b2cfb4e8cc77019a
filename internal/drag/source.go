package drag

import (
	"context"

	"github.com/sodamelon/kanban/internal/model"
)

type Phase string

const (
	PhaseStart  Phase = "start"
	PhaseOver   Phase = "over"
	PhaseEnd    Phase = "end"
	PhaseCancel Phase = "cancel"
)

// Event is one pointer callback. OverID is empty when the pointer is outside
// every drop zone. Board is only read for PhaseStart.
type Event struct {
	Phase    Phase
	ActiveID string
	OverID   string
	Board    model.Board
}

// Source delivers pointer events in the order the host produced them.
// ok is false once the source is exhausted.
type Source interface {
	Next(ctx context.Context) (ev Event, ok bool, err error)
}

// SliceSource replays a fixed sequence of events.
type SliceSource struct {
	events []Event
}

func Events(events ...Event) *SliceSource {
	return &SliceSource{events: events}
}

func (s *SliceSource) Next(ctx context.Context) (Event, bool, error) {
	if err := ctx.Err(); err != nil {
		return Event{}, false, err
	}
	if len(s.events) == 0 {
		return Event{}, false, nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true, nil
}

// ChanSource reads events from a channel until it is closed.
type ChanSource <-chan Event

func (c ChanSource) Next(ctx context.Context) (Event, bool, error) {
	select {
	case <-ctx.Done():
		return Event{}, false, ctx.Err()
	case ev, ok := <-c:
		return ev, ok, nil
	}
}
