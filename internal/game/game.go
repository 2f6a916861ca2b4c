// Package game is the ebiten window frontend: it samples the keyboard, feeds
// the breakout state machine and draws whatever screen it is on.
package game

import (
	"errors"

	"fortio.org/log"
	"github.com/Garsondee/breakout/internal/audio"
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	width  int
	height int

	machine *breakout.Machine
	feed    *EventFeed
	simLog  *breakout.SimLog
	player  *audio.Player
	keys    keySource
	face    *text.GoXFace

	// state the listeners were last attached for; a new game gets a fresh log.
	attached *breakout.GameState

	showFeed       bool // toggled with H
	showLegend     bool
	writeClipboard func(string) error
}

// New builds a game for the variant. seed fixes ball launch directions.
func New(variant breakout.Variant, seed int64) *Game {
	cfg := breakout.ConfigFor(variant)
	g := &Game{
		width:          int(cfg.ScreenWidth),
		height:         int(cfg.ScreenHeight),
		machine:        breakout.NewMachine(cfg, seed, nil),
		feed:           NewEventFeed(),
		player:         audio.NewPlayer(),
		keys:           ebitenKeys{},
		face:           text.NewGoXFace(basicfont.Face7x13),
		showLegend:     true,
		writeClipboard: systemClipboard,
	}
	g.attach()
	return g
}

// EnableAudio opens the speaker. Without a device the game stays silent.
func (g *Game) EnableAudio() {
	if err := g.player.Init(); err != nil {
		log.Debugf("audio disabled: %v", err)
	}
}

// Close releases the audio output.
func (g *Game) Close() {
	g.player.Close()
}

// Machine exposes the state machine, mainly for tests.
func (g *Game) Machine() *breakout.Machine { return g.machine }

func (g *Game) attach() {
	g.attached = g.machine.State
	g.simLog = breakout.NewSimLog(false)
	g.machine.SetListener(breakout.Listeners{g.feed, g.simLog, g.player, roundLogger{}})
}

func (g *Game) Update() error {
	in, fk := readInput(g.keys)

	if fk.toggleHUD {
		g.showFeed = !g.showFeed
	}
	if fk.mute {
		muted := g.player.ToggleMute()
		log.S(log.Info, "audio", log.Attr("muted", muted))
	}
	if fk.copy && g.machine.Screen == breakout.ScreenIdle {
		g.copySummary(g.simLog.Summary(g.machine.State))
	}

	if err := g.machine.Update(in); err != nil {
		if errors.Is(err, breakout.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	if g.machine.State != g.attached {
		g.attach()
	}
	return nil
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// roundLogger writes one structured line per round-level event.
type roundLogger struct{}

func (roundLogger) HandleEvent(e breakout.Event) {
	switch e.Kind {
	case breakout.EventRoundStart, breakout.EventLifeLost, breakout.EventGameOver,
		breakout.EventWin, breakout.EventPaused:
		log.S(log.Info, "round", log.Str("event", e.Kind.String()),
			log.Attr("tick", e.Tick), log.Attr("score", e.Score), log.Attr("lives", e.Lives))
	case breakout.EventAIToggled:
		log.S(log.Info, "ai", log.Attr("enabled", e.On))
	case breakout.EventSpeedBoost:
		log.Debugf("speed boost at tick %d: %.2f", e.Tick, e.Speed)
	}
}
