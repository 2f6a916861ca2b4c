package breakout

import "fmt"

// TestSim is a headless harness around GameState. It mirrors one frontend
// frame per tick, has no rendering dependency and records every event in
// SimLog. Tests and the headless report tool build games through it.
type TestSim struct {
	Config   Config
	State    *GameState
	SimLog   *SimLog
	Reporter *RunReporter

	// Input is applied unchanged on every tick.
	Input Input
	// Outcome is the result of the most recent tick.
	Outcome Outcome

	seed int64
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptConfig simOptionKind = iota // variant, seed and tunables; applied before the state exists
	simOptState                       // entity placement on the built state
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithVariant starts from the stock configuration of v.
func WithVariant(v Variant) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config = ConfigFor(v)
	}}
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config = cfg
	}}
}

// WithSeed sets the RNG seed for deterministic launches.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.seed = seed
	}}
}

// WithVerbose enables per-tick position logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithLives overrides the starting lives.
func WithLives(n int) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.Lives = n
	}}
}

// WithAI makes the AI controller available and hands it the paddle.
func WithAI(on bool) SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Config.AIAvailable = on
		ts.Config.AIEnabledAtStart = on
	}}
}

// WithReporter attaches a RunReporter that collects per-run statistics.
func WithReporter() SimOption {
	return SimOption{simOptConfig, func(ts *TestSim) {
		ts.Reporter = NewRunReporter()
	}}
}

// WithBall places the ball's top-left corner at (x, y) with velocity (dx, dy).
func WithBall(x, y, dx, dy float64) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.State.Ball.X, ts.State.Ball.Y = x, y
		ts.State.Ball.DX, ts.State.Ball.DY = dx, dy
	}}
}

// WithPaddleX moves the paddle's left edge to x.
func WithPaddleX(x float64) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.State.Paddle.X = x
		if ts.State.AI != nil {
			ts.State.AI.Resync()
		}
	}}
}

// WithScore sets the starting score.
func WithScore(score int) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.State.Score = score
	}}
}

// WithBricks replaces the generated layout with bricks at the given rects.
func WithBricks(rects ...Rect) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		bf := &BrickField{}
		for i, r := range rects {
			bf.Add(Brick{Rect: r, Col: i})
		}
		ts.State.Bricks = bf
	}}
}

// WithInput holds the given input on every tick.
func WithInput(in Input) SimOption {
	return SimOption{simOptState, func(ts *TestSim) {
		ts.Input = in
	}}
}

// NewTestSim constructs an active game from the given options in two ordered
// passes: configuration first, then entity placement on the built state.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Config: ConfigFor(VariantClassic),
		SimLog: NewSimLog(false),
		seed:   1,
	}
	for _, o := range opts {
		if o.kind == simOptConfig {
			o.fn(ts)
		}
	}
	m := NewMachine(ts.Config, ts.seed, nil)
	ts.State = m.State
	var listeners Listeners
	listeners = append(listeners, ts.SimLog)
	if ts.Reporter != nil {
		listeners = append(listeners, ts.Reporter)
	}
	ts.State.SetListener(listeners)
	ts.State.Active = true
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(ts)
		}
	}
	if ts.Reporter != nil {
		ts.Reporter.Begin(ts.State)
	}
	return ts
}

// RunTicks advances the game n ticks or until the round ends.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		if !ts.step() {
			return
		}
	}
}

// RunUntil advances the game up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		alive := ts.step()
		if predicate(ts) {
			return ts.State.Tick
		}
		if !alive {
			return -1
		}
	}
	return -1
}

// step runs one tick and reports whether the round is still active.
func (ts *TestSim) step() bool {
	if !ts.State.Active {
		return false
	}
	ts.Outcome = Step(ts.State, ts.Input)
	s := ts.State
	ts.SimLog.AddVerbose(s.Tick, "ball", "position",
		fmt.Sprintf("(%.1f,%.1f)", s.Ball.X, s.Ball.Y), s.Ball.Speed())
	ts.SimLog.AddVerbose(s.Tick, "paddle", "position",
		fmt.Sprintf("x=%.1f", s.Paddle.X), s.Paddle.X)
	if ts.Reporter != nil {
		ts.Reporter.Observe(s, ts.Outcome)
	}
	return s.Active
}

// CurrentTick returns the number of physics steps taken.
func (ts *TestSim) CurrentTick() int {
	return ts.State.Tick
}
