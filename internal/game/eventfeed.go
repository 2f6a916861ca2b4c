package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 260
	feedMaxEntries = 24
	feedLineHeight = 14
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Kind    breakout.EventKind
	Message string
}

// EventFeed is a ring buffer of recent game events rendered as a debug panel.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// HandleEvent appends the event. Wall bounces are too frequent to be useful
// and are skipped.
func (f *EventFeed) HandleEvent(e breakout.Event) {
	if e.Kind == breakout.EventWallBounce || e.Kind == breakout.EventCeilingBounce {
		return
	}
	f.Add(e.Tick, e.Kind, describeEvent(e))
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(tick int, kind breakout.EventKind, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Kind: kind, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

func describeEvent(e breakout.Event) string {
	switch e.Kind {
	case breakout.EventBrickBroken:
		return fmt.Sprintf("brick %d  score %d", e.Slot, e.Score)
	case breakout.EventSpeedBoost:
		return fmt.Sprintf("boost  speed %.2f", e.Speed)
	case breakout.EventPaddleHit:
		return fmt.Sprintf("paddle  speed %.2f", e.Speed)
	case breakout.EventLifeLost:
		return fmt.Sprintf("life lost  %d left", e.Lives)
	case breakout.EventAIToggled:
		if e.On {
			return "AI on"
		}
		return "AI off"
	default:
		return e.Kind.String()
	}
}

// feedColor picks the marker colour for an entry.
func feedColor(k breakout.EventKind) color.RGBA {
	switch k {
	case breakout.EventBrickBroken, breakout.EventSpeedBoost:
		return color.RGBA{R: 90, G: 160, B: 255, A: 255}
	case breakout.EventLifeLost, breakout.EventGameOver:
		return color.RGBA{R: 230, G: 70, B: 70, A: 255}
	case breakout.EventWin:
		return color.RGBA{R: 255, G: 230, B: 0, A: 255}
	default:
		return color.RGBA{R: 160, G: 160, B: 160, A: 255}
	}
}

// Draw renders the feed panel along the right edge of the screen, newest at
// the bottom.
func (f *EventFeed) Draw(screen *ebiten.Image, screenW, panelH int) {
	panelX := screenW - feedPanelWidth
	vector.FillRect(screen, float32(panelX), 0, feedPanelWidth, float32(panelH), color.RGBA{R: 8, G: 8, B: 16, A: 220}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 60, B: 100, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)

	entries := f.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for _, e := range entries {
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, feedColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s", e.Tick, e.Message), panelX+12, y)
		y += feedLineHeight
	}
}
