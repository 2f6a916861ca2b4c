package breakout

import "math/rand"

// GameState is everything that belongs to one game: score, lives and the
// three kinds of entity. It must not be copied once created because the AI
// controller holds a pointer to Paddle.
type GameState struct {
	Score  int
	Lives  int
	Ball   Ball
	Paddle Paddle
	Bricks *BrickField

	Active    bool
	AIEnabled bool
	AI        *AIController

	// Tick counts physics steps since the state was created.
	Tick int

	cfg      Config
	rng      *rand.Rand
	listener Listener
}

// NewGameState builds a fresh game with full lives and a new layout. rng
// decides the ball's launch direction; listener may be nil.
func NewGameState(cfg Config, rng *rand.Rand, listener Listener) *GameState {
	s := &GameState{
		Lives:     cfg.Lives,
		AIEnabled: cfg.AIAvailable && cfg.AIEnabledAtStart,
		cfg:       cfg,
		rng:       rng,
		listener:  listener,
	}
	s.ResetObjects()
	if cfg.AIAvailable {
		s.AI = NewAIController(&s.Paddle, cfg)
	}
	return s
}

// Config returns the configuration the state was built with.
func (s *GameState) Config() Config { return s.cfg }

// ResetObjects re-centres the paddle, relaunches the ball and rebuilds the
// brick field. Score and lives are untouched.
func (s *GameState) ResetObjects() {
	s.resetBallAndPaddle()
	s.Bricks = NewBrickField(s.cfg)
}

func (s *GameState) resetBallAndPaddle() {
	c := s.cfg
	s.Paddle = Paddle{
		Rect: Rect{
			X: c.ScreenWidth/2 - c.PaddleWidth/2,
			Y: c.ScreenHeight - c.PaddleBottomGap,
			W: c.PaddleWidth,
			H: c.PaddleHeight,
		},
		Speed: c.PaddleSpeed,
	}
	dir := 1.0
	if s.rng != nil && s.rng.Intn(2) == 0 {
		dir = -1
	}
	s.Ball = Ball{
		Rect: Rect{X: c.ScreenWidth / 2, Y: c.ScreenHeight / 2, W: c.BallSize, H: c.BallSize},
		DX:   c.BallSpeed * dir,
		DY:   -c.BallSpeed,
	}
	if s.AI != nil {
		s.AI.Resync()
	}
}

// SetListener replaces the event listener.
func (s *GameState) SetListener(l Listener) { s.listener = l }

// DestroyedBricks is the number of bricks broken since the layout was built.
func (s *GameState) DestroyedBricks() int {
	return s.Bricks.Total() - s.Bricks.Len()
}

func (s *GameState) emit(kind EventKind, slot int) {
	if s.listener == nil {
		return
	}
	s.listener.HandleEvent(Event{
		Tick:  s.Tick,
		Kind:  kind,
		Slot:  slot,
		Score: s.Score,
		Lives: s.Lives,
		Speed: s.Ball.Speed(),
		On:    s.AIEnabled,
	})
}
