package breakout

import (
	"image/color"
	"math"
)

// Ball is the moving ball. Velocity is in pixels per frame.
type Ball struct {
	Rect
	DX, DY float64
}

// Move advances the ball by one frame of velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Scale multiplies both velocity components by f.
func (b *Ball) Scale(f float64) {
	b.DX *= f
	b.DY *= f
}

// Speed returns the magnitude of the velocity vector.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Paddle is the player's bat. Only X ever changes after construction.
type Paddle struct {
	Rect
	Speed float64
}

// Nudge moves the paddle horizontally by dx and clamps it to the screen.
func (p *Paddle) Nudge(dx, screenW float64) {
	p.X += dx
	p.Clamp(screenW)
}

// Clamp keeps the paddle inside [0, screenW].
func (p *Paddle) Clamp(screenW float64) {
	p.X = clamp(p.X, 0, screenW-p.W)
}

// Brick is one destructible block. Row and Col record its grid cell.
type Brick struct {
	Rect
	Color    color.RGBA
	Row, Col int
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
