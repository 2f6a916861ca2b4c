package audio

import (
	"testing"
	"time"

	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			require.GreaterOrEqual(t, buf[i][0], -1.0)
			require.LessOrEqual(t, buf[i][0], 1.0)
			require.Equal(t, buf[i][0], buf[i][1])
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestCueForGameplayEvents(t *testing.T) {
	for _, k := range []breakout.EventKind{
		breakout.EventPaddleHit, breakout.EventBrickBroken, breakout.EventSpeedBoost,
		breakout.EventLifeLost, breakout.EventGameOver, breakout.EventWin,
	} {
		c, ok := CueFor(k)
		assert.True(t, ok, k.String())
		assert.Positive(t, c.Duration, k.String())
		assert.Positive(t, c.Freq, k.String())
	}
}

func TestCueForSilentEvents(t *testing.T) {
	for _, k := range []breakout.EventKind{breakout.EventRoundStart, breakout.EventPaused, breakout.EventAIToggled} {
		_, ok := CueFor(k)
		assert.False(t, ok, k.String())
	}
}

func TestCueStreamerLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	c := Cue{Freq: 440, Duration: 100 * time.Millisecond, Wave: WaveSquare, Volume: 0.5}
	assert.Equal(t, rate.N(c.Duration), drain(t, c.Streamer(rate)))
}

func TestToneReleaseEndsNearZero(t *testing.T) {
	rate := beep.SampleRate(8000)
	tn := newTone(Cue{Freq: 200, Duration: 50 * time.Millisecond, Wave: WaveSquare}, rate)
	buf := make([][2]float64, tn.total)
	n, ok := tn.Stream(buf)
	require.True(t, ok)
	require.Equal(t, tn.total, n)
	assert.InDelta(t, 0, buf[n-1][0], 1.0/float64(tn.release)+1e-9)

	n, ok = tn.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer()
	assert.NotPanics(t, func() {
		p.HandleEvent(breakout.Event{Kind: breakout.EventBrickBroken})
		p.HandleEvent(breakout.Event{Kind: breakout.EventWin})
		p.Close()
	})
	assert.Zero(t, p.Played())
}

func TestPlayerToggleMute(t *testing.T) {
	p := NewPlayer()
	assert.False(t, p.Muted())
	assert.True(t, p.ToggleMute())
	assert.True(t, p.Muted())
	assert.False(t, p.ToggleMute())
}

func TestPlayerInitOptional(t *testing.T) {
	p := NewPlayer()
	if err := p.Init(); err != nil {
		t.Logf("no audio device: %v", err)
		return
	}
	defer p.Close()
	require.NoError(t, p.Init())

	p.HandleEvent(breakout.Event{Kind: breakout.EventPaddleHit})
	assert.Equal(t, 1, p.Played())
	p.ToggleMute()
	p.HandleEvent(breakout.Event{Kind: breakout.EventPaddleHit})
	assert.Equal(t, 1, p.Played())
}
