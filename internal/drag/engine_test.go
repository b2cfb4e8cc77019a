package drag_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/drag"
	"github.com/sodamelon/kanban/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture: To Do [A B C], In Progress [D], Done []
func fixture(t *testing.T) model.Board {
	t.Helper()
	n := 0
	tree := board.NewTree(
		board.WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		board.WithClock(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }),
	)
	b, ok := tree.NewBoard("Sprint 1")
	require.True(t, ok)
	for _, title := range []string{"A", "B", "C"} {
		b = tree.AddCard(b, b.Columns[0].ID, title)
	}
	b = tree.AddCard(b, b.Columns[1].ID, "D")
	return b
}

func cardID(t *testing.T, b model.Board, title string) string {
	t.Helper()
	for _, col := range b.Columns {
		for _, c := range col.Cards {
			if c.Title == title {
				return c.ID
			}
		}
	}
	t.Fatalf("card %q not found", title)
	return ""
}

func titles(col model.Column) []string {
	out := []string{}
	for _, c := range col.Cards {
		out = append(out, c.Title)
	}
	return out
}

func ids(col model.Column) map[string]bool {
	out := map[string]bool{}
	for _, c := range col.Cards {
		out[c.ID] = true
	}
	return out
}

func TestMoveAcross_OverCardInsertsAtPosition(t *testing.T) {
	b := fixture(t)

	out, moved := drag.MoveAcross(b, cardID(t, b, "B"), cardID(t, b, "D"))
	require.True(t, moved)
	assert.Equal(t, []string{"A", "C"}, titles(out.Columns[0]))
	assert.Equal(t, []string{"B", "D"}, titles(out.Columns[1]))
	assert.Equal(t, board.CardCount(b), board.CardCount(out))
	assert.Equal(t, []string{"A", "B", "C"}, titles(b.Columns[0]), "input must not change")
}

func TestMoveAcross_OverColumnAppends(t *testing.T) {
	b := fixture(t)

	out, moved := drag.MoveAcross(b, cardID(t, b, "A"), b.Columns[2].ID)
	require.True(t, moved)
	assert.Equal(t, []string{"B", "C"}, titles(out.Columns[0]))
	assert.Equal(t, []string{"A"}, titles(out.Columns[2]))

	out, moved = drag.MoveAcross(out, cardID(t, b, "B"), b.Columns[1].ID)
	require.True(t, moved)
	assert.Equal(t, []string{"D", "B"}, titles(out.Columns[1]))
}

func TestMoveAcross_NoOps(t *testing.T) {
	b := fixture(t)
	a := cardID(t, b, "A")

	cases := map[string]string{
		"same column card":   cardID(t, b, "C"),
		"same column itself": b.Columns[0].ID,
		"no target":          "",
		"unknown target":     "missing",
	}
	for name, over := range cases {
		t.Run(name, func(t *testing.T) {
			out, moved := drag.MoveAcross(b, a, over)
			assert.False(t, moved)
			assert.Equal(t, b, out)
		})
	}

	out, moved := drag.MoveAcross(b, "missing", b.Columns[1].ID)
	assert.False(t, moved)
	assert.Equal(t, b, out)
}

func TestMoveAcross_ConservesCardCount(t *testing.T) {
	b := fixture(t)
	total := board.CardCount(b)
	moving := cardID(t, b, "B")
	targets := []string{b.Columns[1].ID, cardID(t, b, "D"), b.Columns[2].ID, b.Columns[0].ID}

	current := b
	for _, over := range targets {
		current, _ = drag.MoveAcross(current, moving, over)
		assert.Equal(t, total, board.CardCount(current))
		assert.Equal(t, 1, occurrences(current, moving), "card must live in exactly one column")
	}
}

func occurrences(b model.Board, id string) int {
	n := 0
	for _, col := range b.Columns {
		if ids(col)[id] {
			n++
		}
	}
	return n
}

func TestReorder_SameColumn(t *testing.T) {
	b := fixture(t)

	out, moved := drag.Reorder(b, cardID(t, b, "A"), cardID(t, b, "C"))
	require.True(t, moved)
	assert.Equal(t, []string{"B", "C", "A"}, titles(out.Columns[0]))
	assert.Equal(t, ids(b.Columns[0]), ids(out.Columns[0]))

	out, moved = drag.Reorder(out, cardID(t, b, "A"), cardID(t, b, "B"))
	require.True(t, moved)
	assert.Equal(t, []string{"A", "B", "C"}, titles(out.Columns[0]))
}

func TestReorder_NoOps(t *testing.T) {
	b := fixture(t)
	a := cardID(t, b, "A")

	for _, over := range []string{"", a, cardID(t, b, "D"), b.Columns[1].ID} {
		out, moved := drag.Reorder(b, a, over)
		assert.False(t, moved)
		assert.Equal(t, b, out)
	}
}

type recorder struct {
	boards []model.Board
}

func (r *recorder) sink(b model.Board) { r.boards = append(r.boards, b) }

func TestEngine_CrossColumnGesture(t *testing.T) {
	b := fixture(t)
	rec := &recorder{}
	engine := drag.NewEngine(drag.DefaultOptions(), rec.sink, nil)
	a := cardID(t, b, "A")

	require.True(t, engine.Start(b, a))
	assert.Equal(t, drag.Dragging, engine.State())
	active, ok := engine.Active()
	assert.True(t, ok)
	assert.Equal(t, "A", active.Title)

	// pointer travels over In Progress, then Done, then back onto D
	engine.Over(a, b.Columns[1].ID)
	engine.Over(a, b.Columns[2].ID)
	working := engine.Over(a, cardID(t, b, "D"))
	assert.Equal(t, []string{"A", "D"}, titles(working.Columns[1]))
	assert.Empty(t, rec.boards, "speculative states are not persisted by default")

	final, ok := engine.End(a, cardID(t, b, "D"))
	require.True(t, ok)
	assert.Equal(t, []string{"B", "C"}, titles(final.Columns[0]))
	assert.Equal(t, []string{"D", "A"}, titles(final.Columns[1]))
	assert.Empty(t, titles(final.Columns[2]))
	assert.Equal(t, board.CardCount(b), board.CardCount(final))

	require.Len(t, rec.boards, 1)
	assert.Equal(t, final, rec.boards[0])
	assert.Equal(t, drag.Idle, engine.State())
}

func TestEngine_SameColumnReorderOnEnd(t *testing.T) {
	b := fixture(t)
	engine := drag.NewEngine(drag.DefaultOptions(), nil, nil)
	c := cardID(t, b, "C")

	require.True(t, engine.Start(b, c))
	working := engine.Over(c, cardID(t, b, "A"))
	assert.Equal(t, b, working, "same-column moves wait for End")

	final, ok := engine.End(c, cardID(t, b, "A"))
	require.True(t, ok)
	assert.Equal(t, []string{"C", "A", "B"}, titles(final.Columns[0]))
	assert.Equal(t, ids(b.Columns[0]), ids(final.Columns[0]))
}

func TestEngine_EndOnSelfIsNoOp(t *testing.T) {
	b := fixture(t)
	engine := drag.NewEngine(drag.DefaultOptions(), nil, nil)
	a := cardID(t, b, "A")

	require.True(t, engine.Start(b, a))
	final, ok := engine.End(a, a)
	assert.True(t, ok)
	assert.Equal(t, b, final)
}

func TestEngine_NoTargetRevertsByDefault(t *testing.T) {
	b := fixture(t)
	rec := &recorder{}
	engine := drag.NewEngine(drag.DefaultOptions(), rec.sink, nil)
	a := cardID(t, b, "A")

	require.True(t, engine.Start(b, a))
	engine.Over(a, b.Columns[2].ID)
	engine.Over(a, "")

	final, ok := engine.End(a, "")
	require.True(t, ok)
	assert.Equal(t, b, final)
	require.Len(t, rec.boards, 1)
	assert.Equal(t, b, rec.boards[0])
}

func TestEngine_NoTargetKeepsSpeculativeState(t *testing.T) {
	b := fixture(t)
	engine := drag.NewEngine(drag.Options{RevertOnNoTarget: false}, nil, nil)
	a := cardID(t, b, "A")

	require.True(t, engine.Start(b, a))
	working := engine.Over(a, b.Columns[2].ID)

	final, ok := engine.End(a, "")
	require.True(t, ok)
	assert.Equal(t, working, final)
	assert.Equal(t, []string{"A"}, titles(final.Columns[2]))
}

func TestEngine_PersistOnOver(t *testing.T) {
	b := fixture(t)
	rec := &recorder{}
	engine := drag.NewEngine(drag.Options{PersistOnOver: true, RevertOnNoTarget: true}, rec.sink, nil)
	a := cardID(t, b, "A")

	require.True(t, engine.Start(b, a))
	engine.Over(a, b.Columns[1].ID)
	engine.Over(a, b.Columns[1].ID) // same column now, no change
	engine.Over(a, b.Columns[2].ID)
	assert.Len(t, rec.boards, 2)

	origin, ok := engine.Cancel()
	require.True(t, ok)
	assert.Equal(t, b, origin)
	require.Len(t, rec.boards, 3)
	assert.Equal(t, b, rec.boards[2], "cancel must overwrite persisted speculative state")
}

func TestEngine_InertGesture(t *testing.T) {
	b := fixture(t)
	rec := &recorder{}
	engine := drag.NewEngine(drag.DefaultOptions(), rec.sink, nil)

	assert.False(t, engine.Start(b, "missing"))
	assert.Equal(t, drag.Idle, engine.State())

	assert.Equal(t, model.Board{}, engine.Over("missing", b.Columns[1].ID))
	_, ok := engine.End("missing", b.Columns[1].ID)
	assert.False(t, ok)
	_, ok = engine.Cancel()
	assert.False(t, ok)
	assert.Empty(t, rec.boards)
}

func TestEngine_IgnoresForeignCard(t *testing.T) {
	b := fixture(t)
	engine := drag.NewEngine(drag.DefaultOptions(), nil, nil)
	a := cardID(t, b, "A")

	require.True(t, engine.Start(b, a))
	working := engine.Over(cardID(t, b, "B"), b.Columns[2].ID)
	assert.Equal(t, b, working)

	_, ok := engine.End(cardID(t, b, "B"), b.Columns[2].ID)
	assert.False(t, ok)
	assert.Equal(t, drag.Dragging, engine.State())
}

func TestEngine_DriveSyntheticEvents(t *testing.T) {
	b := fixture(t)
	rec := &recorder{}
	engine := drag.NewEngine(drag.DefaultOptions(), rec.sink, nil)
	a := cardID(t, b, "A")
	d := cardID(t, b, "D")

	src := drag.Events(
		drag.Event{Phase: drag.PhaseStart, ActiveID: a},
		drag.Event{Phase: drag.PhaseOver, ActiveID: a, OverID: b.Columns[1].ID},
		drag.Event{Phase: drag.PhaseOver, ActiveID: a, OverID: ""},
		drag.Event{Phase: drag.PhaseOver, ActiveID: a, OverID: d},
		drag.Event{Phase: drag.PhaseEnd, ActiveID: a, OverID: d},
		drag.Event{Phase: drag.PhaseOver, ActiveID: a, OverID: b.Columns[2].ID},
	)

	final, err := engine.Drive(context.Background(), b, src)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "D"}, titles(final.Columns[1]))
	assert.Len(t, rec.boards, 1)
	assert.Equal(t, drag.Idle, engine.State())
}

func TestEngine_DriveChannelCancelled(t *testing.T) {
	b := fixture(t)
	engine := drag.NewEngine(drag.DefaultOptions(), nil, nil)
	a := cardID(t, b, "A")

	events := make(chan drag.Event, 2)
	events <- drag.Event{Phase: drag.PhaseStart, ActiveID: a}
	events <- drag.Event{Phase: drag.PhaseOver, ActiveID: a, OverID: b.Columns[2].ID}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	current, err := engine.Drive(ctx, b, drag.ChanSource(events))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []string{"A"}, titles(current.Columns[2]))
	assert.Equal(t, drag.Dragging, engine.State())
}

func TestEngine_DriveClosedChannel(t *testing.T) {
	b := fixture(t)
	engine := drag.NewEngine(drag.DefaultOptions(), nil, nil)

	events := make(chan drag.Event)
	close(events)

	current, err := engine.Drive(context.Background(), b, drag.ChanSource(events))
	require.NoError(t, err)
	assert.Equal(t, b, current)
}
