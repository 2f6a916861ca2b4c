package main

import (
	"time"

	"fortio.org/log"
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/Garsondee/breakout/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	g := game.New(breakout.VariantClassic, time.Now().UnixNano())
	g.EnableAudio()
	defer g.Close()

	ebiten.SetWindowTitle("Breakout Game++")
	ebiten.SetWindowSize(g.Layout(0, 0))
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("breakout: %v", err)
	}
}
