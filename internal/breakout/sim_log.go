package breakout

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a headless simulation.
type SimLogEntry struct {
	Tick     int
	Category string  // ball, brick, round, control
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] brick    brick_broken     slot=12 score=50 lives=3
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless simulation. It is
// unbounded and machine-readable, unlike the on-screen EventFeed.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick ball and paddle
// positions are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, category, key, value, numVal)
}

// HandleEvent records a game event, so a SimLog can be used as a Listener.
func (sl *SimLog) HandleEvent(e Event) {
	var value string
	numVal := e.Speed
	switch e.Kind {
	case EventBrickBroken:
		value = fmt.Sprintf("slot=%d score=%d lives=%d", e.Slot, e.Score, e.Lives)
		numVal = float64(e.Slot)
	case EventAIToggled:
		value = fmt.Sprintf("on=%t", e.On)
	default:
		value = fmt.Sprintf("score=%d lives=%d speed=%.2f", e.Score, e.Lives, e.Speed)
	}
	sl.Add(e.Tick, eventCategory(e.Kind), e.Kind.String(), value, numVal)
}

func eventCategory(k EventKind) string {
	switch k {
	case EventWallBounce, EventCeilingBounce, EventPaddleHit, EventSpeedBoost:
		return "ball"
	case EventBrickBroken:
		return "brick"
	case EventAIToggled:
		return "control"
	default:
		return "round"
	}
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries match the given category and key.
func (sl *SimLog) Count(category, key string) int {
	return len(sl.Filter(category, key))
}

// FirstOf returns the earliest entry matching category+key, or false if none.
func (sl *SimLog) FirstOf(category, key string) (SimLogEntry, bool) {
	for _, e := range sl.entries {
		if (category == "" || e.Category == category) && (key == "" || e.Key == key) {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of a game at tick.
func (sl *SimLog) Summary(s *GameState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%04d ---\n", s.Tick)
	fmt.Fprintf(&sb, "Score: %d  Lives: %d  Bricks: %d/%d\n",
		s.Score, s.Lives, s.Bricks.Len(), s.Bricks.Total())
	fmt.Fprintf(&sb, "Ball: (%.1f,%.1f) v=(%.2f,%.2f) speed=%.2f\n",
		s.Ball.X, s.Ball.Y, s.Ball.DX, s.Ball.DY, s.Ball.Speed())
	fmt.Fprintf(&sb, "Paddle: x=%.1f  AI=%t\n", s.Paddle.X, s.AIEnabled)
	fmt.Fprintf(&sb, "Events: paddle=%d bricks=%d boosts=%d lives_lost=%d\n",
		sl.Count("ball", "paddle_hit"), sl.Count("brick", "brick_broken"),
		sl.Count("ball", "speed_boost"), sl.Count("round", "life_lost"))
	return sb.String()
}
