package breakout

import (
	"errors"
	"math/rand"
)

// ErrQuit is returned by Machine.Update when the player asked to quit.
var ErrQuit = errors.New("breakout: quit requested")

// Screen is the top-level mode of the game.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenInstructions
	ScreenPlaying
	ScreenIdle // paused, game over or won; see IdleStatusOf
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenInstructions:
		return "instructions"
	case ScreenPlaying:
		return "playing"
	case ScreenIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// Input is one frame of player intent. Left and Right are level-triggered
// (held); every other field is an edge-triggered key press.
type Input struct {
	Left, Right bool

	Start    bool // start or resume a round
	Info     bool // open the instructions
	Confirm  bool // leave the instructions
	Pause    bool
	ToggleAI bool
	Escape   bool // back to the menu from idle
	Quit     bool
}

// Machine drives the menu → instructions → playing → idle flow and owns the
// current GameState.
type Machine struct {
	Screen Screen
	State  *GameState

	cfg       Config
	rng       *rand.Rand
	listener  Listener
	aiEnabled bool
}

// NewMachine starts on the menu with a fresh GameState. seed fixes the ball
// launch directions for reproducible runs.
func NewMachine(cfg Config, seed int64, listener Listener) *Machine {
	m := &Machine{
		Screen:    ScreenMenu,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
		listener:  listener,
		aiEnabled: cfg.AIAvailable && cfg.AIEnabledAtStart,
	}
	m.newGame()
	return m
}

// Config returns the machine's configuration.
func (m *Machine) Config() Config { return m.cfg }

// SetListener routes events of the current and all future states to l.
func (m *Machine) SetListener(l Listener) {
	m.listener = l
	m.State.SetListener(l)
}

// AIEnabled reports whether the AI controls the paddle.
func (m *Machine) AIEnabled() bool { return m.aiEnabled }

// IdleStatus is only meaningful on ScreenIdle.
func (m *Machine) IdleStatus() IdleStatus { return IdleStatusOf(m.State) }

func (m *Machine) newGame() {
	m.State = NewGameState(m.cfg, m.rng, m.listener)
	m.State.AIEnabled = m.aiEnabled
}

// Update consumes one frame of input. It returns ErrQuit when the player
// quits; no other error is possible.
func (m *Machine) Update(in Input) error {
	if in.Quit {
		return ErrQuit
	}
	if in.ToggleAI && m.cfg.AIAvailable {
		m.aiEnabled = !m.aiEnabled
		m.State.AIEnabled = m.aiEnabled
		if m.State.AI != nil {
			m.State.AI.Resync()
		}
		m.State.emit(EventAIToggled, -1)
	}

	switch m.Screen {
	case ScreenMenu:
		switch {
		case in.Start:
			m.newGame()
			m.play()
		case in.Info:
			m.Screen = ScreenInstructions
		}
	case ScreenInstructions:
		if in.Confirm {
			m.Screen = ScreenMenu
		}
	case ScreenPlaying:
		if in.Pause {
			m.State.Active = false
			m.Screen = ScreenIdle
			m.State.emit(EventPaused, -1)
			return nil
		}
		if Step(m.State, in).Ended() {
			m.Screen = ScreenIdle
		}
	case ScreenIdle:
		switch {
		case in.Start:
			if m.State.Lives <= 0 || m.State.Bricks.Empty() {
				m.newGame()
			}
			m.play()
		case in.Escape && m.cfg.AIAvailable:
			m.Screen = ScreenMenu
		}
	}
	return nil
}

func (m *Machine) play() {
	m.State.Active = true
	m.Screen = ScreenPlaying
	m.State.emit(EventRoundStart, -1)
}
