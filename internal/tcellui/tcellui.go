// Package tcellui runs the game on a raw tcell screen.
package tcellui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hersh/blockdrop/internal/game"
	"github.com/hersh/blockdrop/internal/tui"
)

const (
	frameInterval    = 16 * time.Millisecond
	snapshotInterval = 100 * time.Millisecond

	// board origin on screen, inside the border
	originX = 2
	originY = 1
)

var cellStyles = func() [len(game.Colors)]tcell.Style {
	var styles [len(game.Colors)]tcell.Style
	for i, c := range game.Colors {
		styles[i] = tcell.StyleDefault.Foreground(tcell.GetColor(c))
	}
	return styles
}()

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ghostStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

type Options struct {
	Music     tui.Music
	Publisher tui.Publisher
}

// Run drives loop until ctx is done or the player quits. The screen must
// already be initialised; the caller finalises it. All game state is
// touched from the calling goroutine only.
func Run(ctx context.Context, screen tcell.Screen, loop *game.Loop, opts Options) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frames := time.NewTicker(frameInterval)
	defer frames.Stop()

	var publish <-chan time.Time
	if opts.Publisher != nil {
		t := time.NewTicker(snapshotInterval)
		defer t.Stop()
		publish = t.C
	}

	draw(screen, loop.State.Snapshot(), playing(opts.Music))
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit := handleKey(ev, loop, opts.Music); quit {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-frames.C:
			if res, dropped := loop.Frame(now); dropped && res.GameOver {
				slog.Info("game over", "pieces", loop.State.Pieces, "games", loop.State.GameOvers)
			}
		case <-publish:
			opts.Publisher.Publish(loop.State.Snapshot())
			continue
		}
		draw(screen, loop.State.Snapshot(), playing(opts.Music))
	}
}

func playing(m tui.Music) bool {
	return m != nil && m.Playing()
}

// handleKey applies a key press and reports whether the player quit.
func handleKey(ev *tcell.EventKey, loop *game.Loop, music tui.Music) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		loop.Command(game.MoveLeft)
	case tcell.KeyRight:
		loop.Command(game.MoveRight)
	case tcell.KeyDown:
		loop.Command(game.SoftDrop)
	case tcell.KeyUp:
		loop.Command(game.RotateCW)
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && ev.Rune() == 'c' {
			return true
		}
		switch ev.Rune() {
		case 'q':
			loop.Command(game.RotateCCW)
		case 'w':
			loop.Command(game.RotateCW)
		case 'h':
			loop.Command(game.MoveLeft)
		case 'l':
			loop.Command(game.MoveRight)
		case 'j':
			loop.Command(game.SoftDrop)
		case 'p':
			if music != nil {
				music.Play()
			}
		case 'm':
			if music != nil {
				music.Mute()
			}
		}
	}
	return false
}

func draw(screen tcell.Screen, s game.Snapshot, music bool) {
	screen.Clear()

	w, h := s.Board.Width(), s.Board.Height()
	for y := -1; y <= h; y++ {
		screen.SetContent(originX-1, originY+y, '│', nil, borderStyle)
		screen.SetContent(originX+2*w, originY+y, '│', nil, borderStyle)
	}
	for x := -1; x <= 2*w; x++ {
		screen.SetContent(originX+x, originY-1, '─', nil, borderStyle)
		screen.SetContent(originX+x, originY+h, '─', nil, borderStyle)
	}

	for y, row := range s.Board {
		for x, v := range row {
			if v != 0 {
				block(screen, x, y, '█', cellStyles[v])
			}
		}
	}
	for py, row := range s.Piece {
		for px, v := range row {
			if v == 0 {
				continue
			}
			x, gy := s.Pos.X+px, s.GhostY+py
			if gy >= 0 && gy < h && x >= 0 && x < w && s.Board[gy][x] == 0 {
				screen.SetContent(originX+2*x, originY+gy, '[', nil, ghostStyle)
				screen.SetContent(originX+2*x+1, originY+gy, ']', nil, ghostStyle)
			}
		}
	}
	for py, row := range s.Piece {
		for px, v := range row {
			x, y := s.Pos.X+px, s.Pos.Y+py
			if v != 0 && y >= 0 && y < h && x >= 0 && x < w {
				block(screen, x, y, '█', cellStyles[v])
			}
		}
	}

	infoX := originX + 2*w + 3
	text(screen, infoX, originY, "BLOCKDROP", textStyle)
	text(screen, infoX, originY+2, fmt.Sprintf("Score: %d", s.Score), textStyle)
	text(screen, infoX, originY+3, fmt.Sprintf("Lines: %d", s.Lines), textStyle)
	status := "off"
	if music {
		status = "on"
	}
	text(screen, infoX, originY+4, "Music: "+status, textStyle)
	if s.Phase == game.PhaseGameOver {
		text(screen, infoX, originY+6, "GAME OVER", alertStyle)
	}

	screen.Show()
}

func block(screen tcell.Screen, x, y int, r rune, style tcell.Style) {
	screen.SetContent(originX+2*x, originY+y, r, nil, style)
	screen.SetContent(originX+2*x+1, originY+y, r, nil, style)
}

func text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
