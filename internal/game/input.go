package game

import (
	"github.com/Garsondee/breakout/internal/breakout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keySource is the slice of ebiten's input API the game reads. Tests swap in
// a scripted implementation.
type keySource interface {
	pressed(k ebiten.Key) bool
	justPressed(k ebiten.Key) bool
	closing() bool
}

type ebitenKeys struct{}

func (ebitenKeys) pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) justPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) closing() bool                 { return ebiten.IsWindowBeingClosed() }

// frontendKeys are handled by the Game itself rather than the machine.
type frontendKeys struct {
	toggleHUD bool
	mute      bool
	copy      bool
}

// readInput samples one frame. Space doubles as start and confirm; the
// machine only looks at the one that applies to the current screen.
func readInput(ks keySource) (breakout.Input, frontendKeys) {
	space := ks.justPressed(ebiten.KeySpace)
	in := breakout.Input{
		Left:     ks.pressed(ebiten.KeyArrowLeft),
		Right:    ks.pressed(ebiten.KeyArrowRight),
		Start:    space,
		Confirm:  space,
		Info:     ks.justPressed(ebiten.KeyI),
		Pause:    ks.justPressed(ebiten.KeyP),
		ToggleAI: ks.justPressed(ebiten.KeyA),
		Escape:   ks.justPressed(ebiten.KeyEscape),
		Quit:     ks.closing(),
	}
	fk := frontendKeys{
		toggleHUD: ks.justPressed(ebiten.KeyH),
		mute:      ks.justPressed(ebiten.KeyM),
		copy:      ks.justPressed(ebiten.KeyC),
	}
	return in, fk
}
