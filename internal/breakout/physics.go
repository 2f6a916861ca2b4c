package breakout

import "math"

// Step advances an active game by one fixed tick: paddle, ball, walls, floor,
// paddle bounce, at most one brick, then the win check. It does nothing when
// the state is not active.
func Step(s *GameState, in Input) Outcome {
	if !s.Active {
		return OutcomeNone
	}
	s.Tick++
	c := s.cfg

	movePaddle(s, in)
	s.Ball.Move()

	if s.Ball.Left() <= 0 || s.Ball.Right() >= c.ScreenWidth {
		s.Ball.DX = -s.Ball.DX
		s.emit(EventWallBounce, -1)
	}
	if s.Ball.Top() <= 0 {
		s.Ball.DY = -s.Ball.DY
		s.emit(EventCeilingBounce, -1)
	}

	// The floor ends the frame: nothing else is resolved against a dropped ball.
	if s.Ball.Bottom() >= c.ScreenHeight {
		return dropBall(s)
	}

	if s.Ball.Intersects(s.Paddle.Rect) {
		if c.ExplicitPaddleBounce {
			s.Ball.DY = -math.Abs(s.Ball.DY)
		} else {
			s.Ball.DY = -s.Ball.DY
		}
		s.Ball.Scale(c.PaddleSpeedUp)
		s.emit(EventPaddleHit, -1)
	}

	if slot, ok := s.Bricks.FirstIntersecting(s.Ball.Rect); ok {
		breakBrick(s, slot)
	}

	if s.Bricks.Empty() {
		s.Active = false
		s.emit(EventWin, -1)
		return OutcomeWin
	}
	return OutcomeNone
}

func movePaddle(s *GameState, in Input) {
	if s.AIEnabled && s.AI != nil {
		s.AI.Update(s.Ball.Rect, s.Ball.DX, s.Ball.DY)
		return
	}
	var dx float64
	if in.Left {
		dx -= s.Paddle.Speed
	}
	if in.Right {
		dx += s.Paddle.Speed
	}
	if dx != 0 {
		s.Paddle.Nudge(dx, s.cfg.ScreenWidth)
	}
}

func dropBall(s *GameState) Outcome {
	s.Lives--
	if s.Lives > 0 {
		s.emit(EventLifeLost, -1)
		if s.cfg.ResetBricksOnLifeLost {
			s.ResetObjects()
		} else {
			s.resetBallAndPaddle()
		}
		return OutcomeLifeLost
	}
	s.Lives = 0
	s.Active = false
	s.emit(EventGameOver, -1)
	return OutcomeGameOver
}

func breakBrick(s *GameState, slot int) {
	if !s.Bricks.Remove(slot) {
		return
	}
	c := s.cfg
	s.Ball.DY = -s.Ball.DY
	s.Score += c.BrickPoints
	s.emit(EventBrickBroken, slot)
	if s.Score%c.BoostEvery == 0 {
		s.Ball.Scale(c.BoostFactor)
		s.emit(EventSpeedBoost, slot)
	}
}
