package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colBackground = color.RGBA{A: 255}
	colWhite      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colRed        = color.RGBA{R: 255, A: 255}
	colYellow     = color.RGBA{R: 255, G: 255, A: 255}
	colAI         = color.RGBA{R: 0, G: 200, B: 120, A: 255}
)

const (
	bodyScale  = 2.0
	titleScale = 5.0
	lineStep   = 40
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	switch g.machine.Screen {
	case breakout.ScreenMenu:
		g.drawMenu(screen)
	case breakout.ScreenInstructions:
		g.drawInstructions(screen)
	case breakout.ScreenPlaying:
		g.drawField(screen)
		g.drawHUD(screen)
	case breakout.ScreenIdle:
		g.drawIdle(screen)
	}

	if g.showFeed {
		g.feed.Draw(screen, g.width, g.height)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	g.drawCentered(screen, breakout.MenuTitle, 200, titleScale, colWhite)
	g.drawCentered(screen, breakout.MenuStart, 350, bodyScale, colWhite)
	g.drawCentered(screen, breakout.MenuInfo, 400, bodyScale, colWhite)
}

func (g *Game) drawInstructions(screen *ebiten.Image) {
	y := 100.0
	for _, line := range breakout.InstructionLines(g.machine.Config()) {
		g.drawText(screen, line, 50, y, bodyScale, colWhite)
		y += lineStep
	}
}

// drawField renders bricks, paddle and ball.
func (g *Game) drawField(screen *ebiten.Image) {
	s := g.machine.State
	for _, b := range s.Bricks.Live() {
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.Color, false)
	}

	paddleCol := colWhite
	if s.AIEnabled {
		paddleCol = colAI
	}
	p := s.Paddle
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), paddleCol, false)

	ball := s.Ball
	r := float32(ball.W / 2)
	vector.FillCircle(screen, float32(ball.CenterX()), float32(ball.CenterY()), r, colRed, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.machine.State
	g.drawText(screen, fmt.Sprintf("Score: %d", s.Score), 20, 20, bodyScale, colWhite)
	g.drawText(screen, fmt.Sprintf("Lives: %d", s.Lives), float64(g.width-150), 20, bodyScale, colWhite)

	if g.machine.Config().AIAvailable {
		label, col := "AI: OFF", colWhite
		if s.AIEnabled {
			label, col = "AI: ON", colAI
		}
		g.drawCentered(screen, label, 20, bodyScale, col)
	}
	if g.showLegend {
		legend := "P=pause  M=mute  H=events"
		if g.machine.Config().AIAvailable {
			legend += "  A=AI"
		}
		ebitenutil.DebugPrintAt(screen, legend, 8, g.height-16)
	}
}

func (g *Game) drawIdle(screen *ebiten.Image) {
	st := g.machine.IdleStatus()
	col := colWhite
	switch st {
	case breakout.IdleWon:
		g.drawField(screen)
		col = colYellow
	case breakout.IdleGameOver:
		col = colRed
	}

	cx, cy := float64(g.width/2), float64(g.height/2)
	g.drawText(screen, breakout.IdleMessage(st), cx-200, cy, bodyScale, col)
	g.drawText(screen, breakout.FinalScore(g.machine.State.Score), cx-100, cy+50, bodyScale, colWhite)

	hint := "C=copy summary"
	if g.machine.Config().AIAvailable {
		hint = breakout.MsgEscapeMenu + "  " + hint
	}
	ebitenutil.DebugPrintAt(screen, hint, 8, g.height-16)
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.face, op)
}

// drawCentered draws s horizontally centred with its top at y.
func (g *Game) drawCentered(screen *ebiten.Image, s string, y, scale float64, c color.Color) {
	w, _ := text.Measure(s, g.face, 0)
	g.drawText(screen, s, (float64(g.width)-w*scale)/2, y, scale, c)
}
