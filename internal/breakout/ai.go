package breakout

import "math"

// AIController steers a paddle toward where the ball will cross the paddle's
// top edge. Motion is smoothed and rate-limited so the paddle can still miss.
type AIController struct {
	paddle  *Paddle
	screenW float64

	Smoothing float64 // fraction of the remaining gap closed per frame
	MaxStep   float64 // per-frame movement cap in pixels
	TargetX   float64 // smoothed paddle X the controller is tracking
}

// NewAIController binds a controller to paddle.
func NewAIController(paddle *Paddle, cfg Config) *AIController {
	return &AIController{
		paddle:    paddle,
		screenW:   cfg.ScreenWidth,
		Smoothing: cfg.AISmoothing,
		MaxStep:   cfg.AIMaxStep,
		TargetX:   paddle.X,
	}
}

// Resync snaps the tracked target back onto the paddle, e.g. after the paddle
// was re-centred by a level reset.
func (ai *AIController) Resync() {
	ai.TargetX = ai.paddle.X
}

// PredictPosition returns the ball's centre X when its bottom reaches the
// paddle's top, folding the straight-line path through both side walls. It
// returns false while the ball is not descending.
func (ai *AIController) PredictPosition(ball Rect, dx, dy float64) (float64, bool) {
	if dy <= 0 {
		return 0, false
	}
	timeToPaddle := (ai.paddle.Top() - ball.Bottom()) / dy
	x := ball.CenterX() + dx*timeToPaddle
	return foldIntoScreen(x, ai.screenW), true
}

// foldIntoScreen maps an unbounded x onto [0, w] as if it had bounced
// elastically off walls at 0 and w.
func foldIntoScreen(x, w float64) float64 {
	x = math.Mod(math.Abs(x), 2*w)
	if x > w {
		x = 2*w - x
	}
	return x
}

// Update moves the paddle one frame toward the predicted intercept. With no
// prediction the paddle stays where it is.
func (ai *AIController) Update(ball Rect, dx, dy float64) {
	predicted, ok := ai.PredictPosition(ball, dx, dy)
	if !ok {
		return
	}
	target := predicted - ai.paddle.W/2
	step := clamp((target-ai.TargetX)*ai.Smoothing, -ai.MaxStep, ai.MaxStep)
	ai.TargetX = clamp(ai.TargetX+step, 0, ai.screenW-ai.paddle.W)
	ai.paddle.X = ai.TargetX
}
