package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopAdvance(t *testing.T) {
	l := NewLoop(NewGameState(NewSequence(PieceO)))

	_, dropped := l.Advance(600 * time.Millisecond)
	assert.False(t, dropped)
	_, dropped = l.Advance(400 * time.Millisecond)
	assert.False(t, dropped, "the counter must exceed the interval")
	assert.Equal(t, 0, l.State.Player.Pos.Y)

	_, dropped = l.Advance(time.Millisecond)
	assert.True(t, dropped)
	assert.Equal(t, 1, l.State.Player.Pos.Y)
	assert.Zero(t, l.Pending())
}

func TestLoopFrameUsesElapsedTime(t *testing.T) {
	l := NewLoop(NewGameState(NewSequence(PieceO)))
	start := time.Unix(1000, 0)

	_, dropped := l.Frame(start)
	assert.False(t, dropped)
	assert.Zero(t, l.Pending())

	// irregular frame times add up the same as one long frame
	now := start
	for _, step := range []int{16, 33, 7, 250, 500, 100} {
		now = now.Add(time.Duration(step) * time.Millisecond)
		_, dropped = l.Frame(now)
		assert.False(t, dropped)
	}
	assert.Equal(t, 906*time.Millisecond, l.Pending())

	_, dropped = l.Frame(now.Add(100 * time.Millisecond))
	assert.True(t, dropped)
	assert.Equal(t, 1, l.State.Player.Pos.Y)
}

func TestLoopSoftDropResetsTimer(t *testing.T) {
	l := NewLoop(NewGameState(NewSequence(PieceO)))
	l.Advance(900 * time.Millisecond)
	l.Command(SoftDrop)
	assert.Zero(t, l.Pending())
	assert.Equal(t, 1, l.State.Player.Pos.Y)

	l.Advance(900 * time.Millisecond)
	l.Command(MoveLeft)
	assert.Equal(t, 900*time.Millisecond, l.Pending())
	assert.Equal(t, 4, l.State.Player.Pos.X)
}

func TestLoopReportsLanding(t *testing.T) {
	l := NewLoop(NewGameState(NewSequence(PieceO)))
	l.Interval = 10 * time.Millisecond
	var landed DropResult
	for i := 0; i < 19; i++ {
		res, dropped := l.Advance(11 * time.Millisecond)
		assert.True(t, dropped)
		if res.Landed {
			landed = res
		}
	}
	assert.True(t, landed.Landed)
	assert.Equal(t, 1, l.State.Pieces)
}
