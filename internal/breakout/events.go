package breakout

// EventKind identifies something that happened during a physics step or a
// screen transition.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventCeilingBounce
	EventPaddleHit
	EventBrickBroken
	EventSpeedBoost
	EventLifeLost
	EventGameOver
	EventWin
	EventRoundStart
	EventPaused
	EventAIToggled
)

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventCeilingBounce:
		return "ceiling_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickBroken:
		return "brick_broken"
	case EventSpeedBoost:
		return "speed_boost"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventWin:
		return "win"
	case EventRoundStart:
		return "round_start"
	case EventPaused:
		return "paused"
	case EventAIToggled:
		return "ai_toggled"
	default:
		return "unknown"
	}
}

// Event is one occurrence reported to listeners. Slot is the brick slot for
// EventBrickBroken and -1 otherwise.
type Event struct {
	Tick  int
	Kind  EventKind
	Slot  int
	Score int
	Lives int
	Speed float64 // ball speed after the event
	On    bool    // new AI state for EventAIToggled
}

// Listener receives events synchronously on the game loop.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Listeners fans an event out to several listeners in order.
type Listeners []Listener

func (ls Listeners) HandleEvent(e Event) {
	for _, l := range ls {
		if l != nil {
			l.HandleEvent(e)
		}
	}
}
