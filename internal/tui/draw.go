package tui

import (
	"fmt"
	"image/color"

	"fortio.org/safecast"
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/gdamore/tcell/v2"
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePaddle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAI     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBall   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWin    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleLost   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const (
	brickRune  = '█'
	paddleRune = '▀'
	ballRune   = '●'
)

// grid maps world coordinates onto terminal cells. Row 0 is kept for the HUD.
type grid struct {
	cols, rows int
	sx, sy     float64
}

func newGrid(cfg breakout.Config, cols, rows int) grid {
	return grid{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / cfg.ScreenWidth,
		sy:   float64(rows-1) / cfg.ScreenHeight,
	}
}

func (g grid) cellX(x float64) int { return safecast.MustRound[int](x * g.sx) }
func (g grid) cellY(y float64) int { return 1 + safecast.MustRound[int](y*g.sy) }

// span returns the cells covered by r, at least one in each direction.
func (g grid) span(r breakout.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = g.cellX(r.Left()), g.cellX(r.Right())
	y0, y1 = g.cellY(r.Top()), g.cellY(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw renders the current screen and shows it.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	m := a.machine

	switch m.Screen {
	case breakout.ScreenMenu:
		a.centered(h/3, breakout.MenuTitle, styleTitle)
		a.centered(h/2, breakout.MenuStart, styleText)
		a.centered(h/2+2, breakout.MenuInfo, styleText)
		a.centered(h-1, "q or Ctrl-C quits", styleDim)
	case breakout.ScreenInstructions:
		for i, line := range breakout.InstructionLines(a.cfg) {
			a.text(2, 2+i*2, line, styleText)
		}
	case breakout.ScreenPlaying:
		a.drawField(newGrid(a.cfg, w, h))
		a.drawHUD(w)
	case breakout.ScreenIdle:
		st := m.IdleStatus()
		style := styleText
		switch st {
		case breakout.IdleWon:
			a.drawField(newGrid(a.cfg, w, h))
			style = styleWin
		case breakout.IdleGameOver:
			style = styleLost
		}
		a.centered(h/2, breakout.IdleMessage(st), style)
		a.centered(h/2+2, breakout.FinalScore(m.State.Score), styleText)
		if a.cfg.AIAvailable {
			a.centered(h/2+4, breakout.MsgEscapeMenu, styleDim)
		}
	}
	a.screen.Show()
}

func (a *App) drawField(g grid) {
	s := a.machine.State
	for _, b := range s.Bricks.Live() {
		x0, y0, x1, y1 := g.span(b.Rect)
		style := tcell.StyleDefault.Foreground(rgb(b.Color))
		// Leave the right-most column blank so neighbours stay distinct.
		if x1-x0 > 1 {
			x1--
		}
		a.fill(x0, y0, x1, y1, brickRune, style)
	}

	ps := stylePaddle
	if s.AIEnabled {
		ps = styleAI
	}
	x0, y0, x1, _ := g.span(s.Paddle.Rect)
	a.fill(x0, y0, x1, y0+1, paddleRune, ps)

	a.screen.SetContent(g.cellX(s.Ball.CenterX()), g.cellY(s.Ball.CenterY()), ballRune, nil, styleBall)
}

func (a *App) drawHUD(w int) {
	s := a.machine.State
	a.text(1, 0, fmt.Sprintf("Score: %d", s.Score), styleText)
	lives := fmt.Sprintf("Lives: %d", s.Lives)
	a.text(w-len(lives)-1, 0, lives, styleText)
	mid := a.lastEvent
	if a.cfg.AIAvailable {
		mid = "AI: OFF"
		if s.AIEnabled {
			mid = "AI: ON"
		}
	}
	a.text((w-len(mid))/2, 0, mid, styleDim)
}

func (a *App) fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			a.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (a *App) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) centered(y int, s string, style tcell.Style) {
	w, _ := a.screen.Size()
	a.text((w-len([]rune(s)))/2, y, s, style)
}
