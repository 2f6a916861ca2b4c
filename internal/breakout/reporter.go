package breakout

import (
	"fmt"
	"strings"
)

// RunReport summarises one game from start to its last observed tick.
type RunReport struct {
	Ticks          int
	Score          int
	Lives          int
	BricksTotal    int
	BricksLeft     int
	PaddleHits     int
	WallBounces    int
	SpeedBoosts    int
	LivesLost      int
	MaxSpeed       float64
	FirstBrickTick int // -1 if no brick was broken
	Outcome        Outcome

	// DestroyOrder lists brick slots in the order they were broken.
	DestroyOrder []int
}

// Format renders the report as a short multi-line block.
func (r *RunReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "outcome=%s ticks=%d score=%d lives=%d\n", r.Outcome, r.Ticks, r.Score, r.Lives)
	fmt.Fprintf(&sb, "bricks: %d/%d broken  first_brick_tick=%d\n",
		r.BricksTotal-r.BricksLeft, r.BricksTotal, r.FirstBrickTick)
	fmt.Fprintf(&sb, "paddle_hits=%d wall_bounces=%d boosts=%d lives_lost=%d max_speed=%.2f\n",
		r.PaddleHits, r.WallBounces, r.SpeedBoosts, r.LivesLost, r.MaxSpeed)
	return sb.String()
}

// RunReporter collects a RunReport from events and per-tick observations.
type RunReporter struct {
	report RunReport
}

// NewRunReporter creates an empty reporter.
func NewRunReporter() *RunReporter {
	return &RunReporter{report: RunReport{FirstBrickTick: -1}}
}

// Begin records the starting layout of s.
func (rr *RunReporter) Begin(s *GameState) {
	rr.report.BricksTotal = s.Bricks.Total()
	rr.report.BricksLeft = s.Bricks.Len()
	rr.report.Lives = s.Lives
	rr.report.MaxSpeed = s.Ball.Speed()
}

// HandleEvent counts the event.
func (rr *RunReporter) HandleEvent(e Event) {
	r := &rr.report
	switch e.Kind {
	case EventWallBounce, EventCeilingBounce:
		r.WallBounces++
	case EventPaddleHit:
		r.PaddleHits++
	case EventSpeedBoost:
		r.SpeedBoosts++
	case EventLifeLost:
		r.LivesLost++
	case EventGameOver:
		r.LivesLost++
		r.Outcome = OutcomeGameOver
	case EventWin:
		r.Outcome = OutcomeWin
	case EventBrickBroken:
		if r.FirstBrickTick < 0 {
			r.FirstBrickTick = e.Tick
		}
		r.DestroyOrder = append(r.DestroyOrder, e.Slot)
	}
	if e.Speed > r.MaxSpeed {
		r.MaxSpeed = e.Speed
	}
}

// Observe samples the state after a tick.
func (rr *RunReporter) Observe(s *GameState, o Outcome) {
	r := &rr.report
	r.Ticks = s.Tick
	r.Score = s.Score
	r.Lives = s.Lives
	r.BricksTotal = s.Bricks.Total()
	r.BricksLeft = s.Bricks.Len()
	if sp := s.Ball.Speed(); sp > r.MaxSpeed {
		r.MaxSpeed = sp
	}
	if o.Ended() {
		r.Outcome = o
	}
}

// Report returns a copy of the collected report.
func (rr *RunReporter) Report() RunReport {
	r := rr.report
	r.DestroyOrder = append([]int(nil), rr.report.DestroyOrder...)
	return r
}
