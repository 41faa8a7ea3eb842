package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func TestTrackLoopsForever(t *testing.T) {
	sr := beep.SampleRate(8000)
	track := NewTrack(sr, 240, 0.5)
	buf := make([][2]float64, 512)

	var lo, hi float64
	stereo := true
	for track.Loops() < 2 {
		n, ok := track.Stream(buf)
		assert.True(t, ok)
		assert.Equal(t, len(buf), n)
		for _, s := range buf {
			lo, hi = min(lo, s[0]), max(hi, s[0])
			stereo = stereo && s[0] == s[1]
		}
	}
	assert.Equal(t, -0.5, lo)
	assert.Equal(t, 0.5, hi)
	assert.True(t, stereo)
	assert.NoError(t, track.Err())
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer()
	assert.False(t, p.Playing())

	p.Play()
	assert.True(t, p.Playing())
	p.Mute()
	assert.False(t, p.Playing())

	assert.True(t, p.Toggle())
	assert.True(t, p.Playing())
	assert.False(t, p.Toggle())

	// closing a player that never opened the device is harmless
	p.Close()
}
