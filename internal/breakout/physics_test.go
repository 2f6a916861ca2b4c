package breakout

import (
	"math"
	"math/rand"
	"testing"
)

// farBrick keeps the field non-empty without ever touching the ball.
var farBrick = Rect{X: 700, Y: 50, W: 60, H: 20}

func TestStep_LeftWallReflectsDX(t *testing.T) {
	ts := NewTestSim(WithBricks(farBrick), WithBall(2, 300, -4, -3))
	ts.RunTicks(1)
	b := ts.State.Ball
	if b.DX != 4 {
		t.Fatalf("expected dx=4 after left wall, got %v", b.DX)
	}
	if b.DY != -3 {
		t.Fatalf("dy should be untouched by a side wall, got %v", b.DY)
	}
	if ts.SimLog.Count("ball", "wall_bounce") != 1 {
		t.Fatalf("expected one wall_bounce entry, log:\n%s", ts.SimLog.Format())
	}
}

func TestStep_RightWallReflectsDX(t *testing.T) {
	ts := NewTestSim(WithBricks(farBrick), WithBall(789, 300, 3, 2))
	ts.RunTicks(1)
	if ts.State.Ball.DX != -3 {
		t.Fatalf("expected dx=-3 after right wall, got %v", ts.State.Ball.DX)
	}
}

func TestStep_CeilingReflectsDY(t *testing.T) {
	ts := NewTestSim(WithBricks(farBrick), WithBall(400, 2, 2, -3))
	ts.RunTicks(1)
	b := ts.State.Ball
	if b.DY != 3 || b.DX != 2 {
		t.Fatalf("expected v=(2,3) after ceiling, got (%v,%v)", b.DX, b.DY)
	}
}

func TestStep_WallReflectionKeepsMagnitude(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) // #nosec G404 -- test
	for i := 0; i < 200; i++ {
		speed := 1 + rng.Float64()*10
		ts := NewTestSim(WithBricks(farBrick), WithBall(1, 300, -speed, -1))
		ts.RunTicks(1)
		dx := ts.State.Ball.DX
		if dx <= 0 {
			t.Fatalf("speed %.3f: dx sign did not flip, got %v", speed, dx)
		}
		if math.Abs(dx-speed) > 1e-12 {
			t.Fatalf("speed %.3f: magnitude changed to %v", speed, dx)
		}
	}
}

func TestPaddle_ClampInvariant(t *testing.T) {
	const screenW = 800
	rng := rand.New(rand.NewSource(3)) // #nosec G404 -- test
	p := Paddle{Rect: Rect{X: 350, Y: 570, W: 100, H: 10}}
	for i := 0; i < 5000; i++ {
		p.Nudge((rng.Float64()-0.5)*80, screenW)
		if p.Left() < 0 || p.Right() > screenW {
			t.Fatalf("step %d: paddle out of bounds [%v, %v]", i, p.Left(), p.Right())
		}
	}
}

func TestStep_KeyboardPaddleStopsAtEdges(t *testing.T) {
	ts := NewTestSim(WithBricks(farBrick), WithBall(400, 300, 0.5, -0.5), WithPaddleX(3),
		WithInput(Input{Left: true}))
	ts.RunTicks(1)
	if ts.State.Paddle.X != 0 {
		t.Fatalf("expected paddle clamped to 0, got %v", ts.State.Paddle.X)
	}
	ts.Input = Input{Right: true}
	ts.RunTicks(200)
	if ts.State.Paddle.Right() != 800 {
		t.Fatalf("expected paddle clamped to the right edge, got right=%v", ts.State.Paddle.Right())
	}
}

func TestStep_AtMostOneBrickPerFrame(t *testing.T) {
	ts := NewTestSim(
		WithBricks(Rect{X: 100, Y: 100, W: 60, H: 20}, Rect{X: 130, Y: 100, W: 60, H: 20}),
		WithBall(140, 118, 1, -3),
	)
	ts.RunTicks(1)
	s := ts.State
	if s.Bricks.Len() != 1 {
		t.Fatalf("expected exactly one brick destroyed, %d remain", s.Bricks.Len())
	}
	if s.Bricks.Alive(0) || !s.Bricks.Alive(1) {
		t.Fatal("the first brick in slot order should be the one destroyed")
	}
	if s.Score != 10 {
		t.Fatalf("expected score 10, got %d", s.Score)
	}
	if s.Ball.DY != 3 {
		t.Fatalf("expected dy flipped to 3, got %v", s.Ball.DY)
	}
}

func TestStep_ScoreTracksDestroyedBricks(t *testing.T) {
	ts := NewTestSim(WithVariant(VariantAssisted), WithSeed(11))
	initial := ts.State.Bricks.Total()
	ts.RunUntil(func(ts *TestSim) bool {
		s := ts.State
		if s.Score < 0 || s.Score%10 != 0 {
			t.Fatalf("T=%d: score %d is not a non-negative multiple of 10", s.Tick, s.Score)
		}
		if want := 10 * (initial - s.Bricks.Len()); s.Score != want {
			t.Fatalf("T=%d: score %d, want %d", s.Tick, s.Score, want)
		}
		return false
	}, 20000)
}

func TestStep_SpeedBoostEveryFiftyPoints(t *testing.T) {
	ts := NewTestSim(
		WithVariant(VariantAssisted),
		WithBricks(Rect{X: 380, Y: 100, W: 60, H: 20}, farBrick),
		WithBall(400, 121, 4, -4),
		WithScore(40),
	)
	ts.RunTicks(1)
	b := ts.State.Ball
	if ts.State.Score != 50 {
		t.Fatalf("expected score 50, got %d", ts.State.Score)
	}
	if math.Abs(b.DX-4.4) > 1e-9 || math.Abs(b.DY-4.4) > 1e-9 {
		t.Fatalf("expected v=(4.4,4.4) after boost, got (%v,%v)", b.DX, b.DY)
	}
	if ts.SimLog.Count("ball", "speed_boost") != 1 {
		t.Fatalf("expected one speed_boost entry, log:\n%s", ts.SimLog.Format())
	}
}

func TestScenario_FifthBrickBoostsBall(t *testing.T) {
	ts := NewTestSim(WithVariant(VariantAssisted), WithLives(50), WithSeed(5))
	if ts.State.Bricks.Len() != 56 {
		t.Fatalf("expected 56 bricks, got %d", ts.State.Bricks.Len())
	}
	if ts.State.Ball.DY != -4 || ts.State.Ball.X != 400 {
		t.Fatalf("ball should start at centre with dy=-4, got x=%v dy=%v", ts.State.Ball.X, ts.State.Ball.DY)
	}
	tick := ts.RunUntil(func(ts *TestSim) bool { return ts.State.Score >= 50 }, 50000)
	if tick < 0 {
		t.Fatalf("score never reached 50:\n%s", ts.SimLog.Summary(ts.State))
	}
	b := ts.State.Ball
	if math.Abs(b.DX) <= 4 || math.Abs(b.DY) <= 4 {
		t.Fatalf("expected both components above 4 after the boost, got (%v,%v)", b.DX, b.DY)
	}
}

func TestStep_PaddleBounceClassicNegates(t *testing.T) {
	// Ball already moving up while overlapping the paddle: plain negation
	// sends it back down.
	ts := NewTestSim(WithBricks(farBrick), WithBall(395, 568, 1, -1))
	ts.RunTicks(1)
	b := ts.State.Ball
	if b.DY <= 0 {
		t.Fatalf("classic bounce should negate an upward dy, got %v", b.DY)
	}
	if math.Abs(b.DY-1.02) > 1e-9 || math.Abs(b.DX-1.02) > 1e-9 {
		t.Fatalf("expected x1.02 speed-up, got (%v,%v)", b.DX, b.DY)
	}
}

func TestStep_PaddleBounceAssistedAlwaysUp(t *testing.T) {
	ts := NewTestSim(WithVariant(VariantAssisted), WithAI(false), WithBricks(farBrick),
		WithBall(395, 568, 1, -1))
	ts.RunTicks(1)
	b := ts.State.Ball
	if b.DY >= 0 {
		t.Fatalf("assisted bounce should keep the ball moving up, got %v", b.DY)
	}
	if math.Abs(b.DY+1.01) > 1e-9 {
		t.Fatalf("expected dy=-1.01, got %v", b.DY)
	}
}

func TestStep_LifeLostResetsLayoutKeepsScore(t *testing.T) {
	ts := NewTestSim(WithBall(50, 585, 1, 5), WithScore(30))
	ts.State.Bricks.Remove(0)
	ts.RunTicks(1)
	s := ts.State
	if ts.Outcome != OutcomeLifeLost {
		t.Fatalf("expected life_lost, got %s", ts.Outcome)
	}
	if s.Lives != 2 || s.Score != 30 || !s.Active {
		t.Fatalf("expected lives=2 score=30 active, got lives=%d score=%d active=%v", s.Lives, s.Score, s.Active)
	}
	if s.Bricks.Len() != 48 {
		t.Fatalf("brick field should be rebuilt, got %d bricks", s.Bricks.Len())
	}
	if s.Ball.X != 400 || s.Ball.Y != 300 || s.Ball.DY != -3 {
		t.Fatalf("ball should be relaunched from centre, got %+v", s.Ball)
	}
}

func TestStep_LifeLostCanPreserveBricks(t *testing.T) {
	cfg := ConfigFor(VariantClassic)
	cfg.ResetBricksOnLifeLost = false
	ts := NewTestSim(WithConfig(cfg), WithBall(50, 585, 1, 5))
	ts.State.Bricks.Remove(0)
	ts.RunTicks(1)
	if ts.State.Bricks.Len() != 47 {
		t.Fatalf("bricks should be preserved, got %d", ts.State.Bricks.Len())
	}
}

func TestStep_WinEndsRoundWithoutLosingLife(t *testing.T) {
	ts := NewTestSim(WithBricks(Rect{X: 380, Y: 100, W: 60, H: 20}), WithBall(400, 121, 2, -3))
	ts.RunTicks(10)
	s := ts.State
	if ts.Outcome != OutcomeWin || s.Active {
		t.Fatalf("expected win and inactive, got %s active=%v", ts.Outcome, s.Active)
	}
	if s.Lives != 3 {
		t.Fatalf("win should not cost a life, got %d", s.Lives)
	}
	if _, ok := ts.SimLog.FirstOf("round", "win"); !ok {
		t.Fatalf("expected a win entry, log:\n%s", ts.SimLog.Format())
	}
}

func TestStep_InactiveStateDoesNothing(t *testing.T) {
	ts := NewTestSim()
	ts.State.Active = false
	before := ts.State.Ball
	if o := Step(ts.State, Input{}); o != OutcomeNone {
		t.Fatalf("expected none, got %s", o)
	}
	if ts.State.Ball != before || ts.State.Tick != 0 {
		t.Fatal("inactive state should not advance")
	}
}
