// Package audio plays short synthesized cues for game events. It degrades to
// a silent player when no output device is available.
package audio

import (
	"sync"
	"time"

	"fortio.org/log"
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var cues = map[breakout.EventKind]Cue{
	breakout.EventWallBounce:    {Freq: 330, Duration: 30 * time.Millisecond, Wave: WaveSine, Volume: 0.25},
	breakout.EventCeilingBounce: {Freq: 330, Duration: 30 * time.Millisecond, Wave: WaveSine, Volume: 0.25},
	breakout.EventPaddleHit:     {Freq: 440, Duration: 50 * time.Millisecond, Wave: WaveSquare, Volume: 0.3},
	breakout.EventBrickBroken:   {Freq: 660, Duration: 60 * time.Millisecond, Wave: WaveSquare, Volume: 0.35},
	breakout.EventSpeedBoost:    {Freq: 520, Slide: 2400, Duration: 150 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
	breakout.EventLifeLost:      {Freq: 300, Slide: -800, Duration: 300 * time.Millisecond, Wave: WaveSquare, Volume: 0.4},
	breakout.EventGameOver:      {Freq: 220, Slide: -400, Duration: 600 * time.Millisecond, Wave: WaveSquare, Volume: 0.45},
	breakout.EventWin:           {Freq: 520, Slide: 1200, Duration: 500 * time.Millisecond, Wave: WaveSine, Volume: 0.45},
}

// CueFor returns the cue played for an event kind. Kinds without a sound
// report false.
func CueFor(k breakout.EventKind) (Cue, bool) {
	c, ok := cues[k]
	return c, ok
}

// Player routes game events to the speaker. The zero value is not usable;
// call NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      int
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. A failure leaves the player silent; callers log it
// and carry on.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Debugf("audio: speaker ready at %d Hz", sampleRate)
	return nil
}

// Close stops playback. The speaker itself stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played counts cues handed to the speaker since NewPlayer.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// HandleEvent implements breakout.Listener.
func (p *Player) HandleEvent(e breakout.Event) {
	c, ok := CueFor(e.Kind)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(c.Streamer(sampleRate))
	speaker.Unlock()
	p.played++
}
