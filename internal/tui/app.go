// Package tui runs breakout in a terminal. World coordinates are scaled onto
// the terminal grid, so the game plays the same at any terminal size.
package tui

import (
	"context"
	"errors"
	"time"

	"fortio.org/log"
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses but not releases. An arrow press holds the
// paddle direction for this many ticks; auto-repeat keeps it alive.
const holdTicks = 6

// App owns the terminal screen and the state machine.
type App struct {
	screen  tcell.Screen
	machine *breakout.Machine
	cfg     breakout.Config

	pending   breakout.Input // edge presses since the last tick
	holdLeft  int
	holdRight int

	lastEvent string
}

// NewApp wires a machine for variant to an already initialised screen.
func NewApp(screen tcell.Screen, variant breakout.Variant, seed int64) *App {
	cfg := breakout.ConfigFor(variant)
	a := &App{
		screen: screen,
		cfg:    cfg,
	}
	a.machine = breakout.NewMachine(cfg, seed, breakout.ListenerFunc(a.handleEvent))
	return a
}

// Machine exposes the state machine, mainly for tests.
func (a *App) Machine() *breakout.Machine { return a.machine }

func (a *App) handleEvent(e breakout.Event) {
	switch e.Kind {
	case breakout.EventWallBounce, breakout.EventCeilingBounce, breakout.EventPaddleHit:
		return
	}
	a.lastEvent = e.Kind.String()
	log.Debugf("tui: T=%d %s score=%d lives=%d", e.Tick, e.Kind, e.Score, e.Lives)
}

// HandleKey records a key press for the next tick.
func (a *App) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		a.holdLeft, a.holdRight = holdTicks, 0
	case tcell.KeyRight:
		a.holdRight, a.holdLeft = holdTicks, 0
	case tcell.KeyEscape:
		a.pending.Escape = true
	case tcell.KeyCtrlC:
		a.pending.Quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			a.pending.Start = true
			a.pending.Confirm = true
		case 'i', 'I':
			a.pending.Info = true
		case 'p', 'P':
			a.pending.Pause = true
		case 'a', 'A':
			a.pending.ToggleAI = true
		case 'q', 'Q':
			a.pending.Quit = true
		case 's', 'S':
			a.holdLeft, a.holdRight = 0, 0
		}
	}
}

// Tick advances the machine one frame. It returns breakout.ErrQuit when the
// player quits.
func (a *App) Tick() error {
	in := a.pending
	in.Left = a.holdLeft > 0
	in.Right = a.holdRight > 0
	a.pending = breakout.Input{}
	if a.holdLeft > 0 {
		a.holdLeft--
	}
	if a.holdRight > 0 {
		a.holdRight--
	}
	return a.machine.Update(in)
}

// Run polls terminal events on a separate goroutine and advances the game at
// fps until the player quits or ctx is done.
func (a *App) Run(ctx context.Context, fps float64) error {
	ticker := time.NewTicker(time.Duration(float64(time.Second) / fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				a.HandleKey(ev)
			case *tcell.EventResize:
				a.screen.Sync()
			}
		case <-ticker.C:
			if err := a.Tick(); err != nil {
				if errors.Is(err, breakout.ErrQuit) {
					return nil
				}
				return err
			}
			a.Draw()
		}
	}
}
