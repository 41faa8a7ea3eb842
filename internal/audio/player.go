// Package audio plays the background music. It has no effect on gameplay.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	tempo      = 144
)

// Player is a play/mute switch over one looping track. Without an audio
// device it still tracks the switch so the UI stays consistent.
type Player struct {
	mu          sync.Mutex
	ctrl        *beep.Ctrl
	initialized bool
}

func NewPlayer() *Player {
	track := NewTrack(sampleRate, tempo, 1)
	return &Player{
		ctrl: &beep.Ctrl{
			Streamer: &effects.Volume{Streamer: track, Base: 2, Volume: -3},
			Paused:   true,
		},
	}
}

// Init opens the audio device and starts streaming (paused).
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.ctrl)
	p.initialized = true
	slog.Info("audio initialized", "sample_rate", int(sampleRate))
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) Play() { p.setPaused(false) }
func (p *Player) Mute() { p.setPaused(true) }

// Toggle flips between playing and muted and returns the new state.
func (p *Player) Toggle() bool {
	playing := !p.Playing()
	p.setPaused(!playing)
	return playing
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return !p.ctrl.Paused
}

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.ctrl.Paused = paused
}
