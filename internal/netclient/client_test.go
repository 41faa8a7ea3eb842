package netclient

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockdrop/internal/game"
	"github.com/hersh/blockdrop/internal/spectate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func next(t *testing.T, ch <-chan tea.Msg) tea.Msg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestClientReceivesSnapshots(t *testing.T) {
	hub := spectate.NewHub()
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()
	defer hub.Close()

	gs := game.NewGameState(game.NewSequence(game.PieceO))
	gs.Player.Score = 70
	hub.Publish(gs.Snapshot())

	c, err := New("ws" + strings.TrimPrefix(srv.URL, "http") + "/ws")
	require.NoError(t, err)

	msgs := make(chan tea.Msg, 8)
	c.SetSink(func(m tea.Msg) { msgs <- m })
	c.Start()

	connected, ok := next(t, msgs).(ConnectedMsg)
	require.True(t, ok)
	assert.NotEmpty(t, connected.ViewerID)

	snap, ok := next(t, msgs).(SnapshotMsg)
	require.True(t, ok)
	assert.Equal(t, 70, snap.Snapshot.Score)
	assert.Equal(t, 4, snap.Snapshot.Rows()[0][5])

	c.Close()
	_, ok = next(t, msgs).(DisconnectedMsg)
	assert.True(t, ok)
	c.Close()
}

func TestNewFailsWithoutServer(t *testing.T) {
	_, err := New("ws://127.0.0.1:1/ws")
	assert.Error(t, err)
}
