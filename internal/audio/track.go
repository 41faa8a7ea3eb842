package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

type note struct {
	freq  float64 // 0 is a rest
	beats float64
}

const (
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
)

var theme = []note{
	{noteE5, 1}, {noteB4, 0.5}, {noteC5, 0.5}, {noteD5, 1}, {noteC5, 0.5}, {noteB4, 0.5},
	{noteA4, 1}, {noteA4, 0.5}, {noteC5, 0.5}, {noteE5, 1}, {noteD5, 0.5}, {noteC5, 0.5},
	{noteB4, 1.5}, {noteC5, 0.5}, {noteD5, 1}, {noteE5, 1},
	{noteC5, 1}, {noteA4, 1}, {noteA4, 1}, {0, 1},
}

// Track is a square-wave rendition of the theme that repeats forever.
type Track struct {
	sr       beep.SampleRate
	beat     int
	volume   float64
	note     int
	pos      int // sample within the current note
	noteLen  int
	phase    float64
	streamed int
}

// NewTrack creates a looping track at the given tempo.
func NewTrack(sr beep.SampleRate, bpm int, volume float64) *Track {
	t := &Track{
		sr:     sr,
		beat:   sr.N(time.Minute / time.Duration(bpm)),
		volume: volume,
	}
	t.noteLen = t.lenOf(0)
	return t
}

func (t *Track) lenOf(i int) int {
	return int(float64(t.beat) * theme[i].beats)
}

func (t *Track) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.noteLen {
			t.note = (t.note + 1) % len(theme)
			t.pos = 0
			t.noteLen = t.lenOf(t.note)
		}
		cur := theme[t.note]

		var val float64
		if cur.freq > 0 {
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
			// short release so consecutive equal notes stay distinct
			if rest := t.noteLen - t.pos; rest < t.sr.N(20*time.Millisecond) {
				val *= float64(rest) / float64(t.sr.N(20*time.Millisecond))
			}
			t.phase += cur.freq / float64(t.sr)
			t.phase -= math.Floor(t.phase)
		}

		samples[i][0] = val * t.volume
		samples[i][1] = val * t.volume
		t.pos++
		t.streamed++
	}
	return len(samples), true
}

func (t *Track) Err() error { return nil }

// Loops returns how many full passes of the theme have been streamed.
func (t *Track) Loops() int {
	total := 0
	for i := range theme {
		total += t.lenOf(i)
	}
	return t.streamed / total
}
