package breakout

import "fmt"

// Screen text shared by the window and terminal frontends.
const (
	MenuTitle     = "BREAKOUT++"
	MenuStart     = "Press SPACE to Start"
	MenuInfo      = "Press I for Instructions"
	MsgWin        = "YOU WIN! Press SPACE to continue"
	MsgGameOver   = "GAME OVER! Press SPACE to restart"
	MsgPaused     = "PAUSED - Press SPACE to continue"
	MsgEscapeMenu = "Press ESC for the menu"
)

// InstructionLines returns the instruction screen for cfg.
func InstructionLines(cfg Config) []string {
	lives := fmt.Sprintf("- You have %d lives", cfg.Lives)
	if cfg.Lives == 1 {
		lives = "- You have 1 life"
	}
	lines := []string{
		"Instructions:",
		"- Use LEFT/RIGHT arrows to move paddle",
		"- Break all bricks to win",
		lives,
		fmt.Sprintf("- Each brick gives %d points", cfg.BrickPoints),
		fmt.Sprintf("- Ball speeds up every %d bricks broken", cfg.BoostEvery/cfg.BrickPoints),
		"- Press P to pause",
	}
	if cfg.AIAvailable {
		lines = append(lines, "- Press A to toggle the AI paddle")
	}
	return append(lines, "- Press SPACE to return to menu")
}

// IdleMessage is the headline shown on the idle screen.
func IdleMessage(st IdleStatus) string {
	switch st {
	case IdleWon:
		return MsgWin
	case IdleGameOver:
		return MsgGameOver
	default:
		return MsgPaused
	}
}

// FinalScore formats the score line under the idle headline.
func FinalScore(score int) string {
	return fmt.Sprintf("Final Score: %d", score)
}
