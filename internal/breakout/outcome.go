package breakout

// Outcome is the result of one physics step.
type Outcome int

const (
	OutcomeNone     Outcome = iota // round continues
	OutcomeLifeLost                // ball dropped, lives remain, objects reset
	OutcomeGameOver                // ball dropped on the last life
	OutcomeWin                     // brick field cleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLifeLost:
		return "life_lost"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Ended reports whether the outcome stops the active phase.
func (o Outcome) Ended() bool {
	return o == OutcomeGameOver || o == OutcomeWin
}

// IdleStatus distinguishes the reasons play is not active.
type IdleStatus int

const (
	IdlePaused IdleStatus = iota
	IdleGameOver
	IdleWon
)

func (s IdleStatus) String() string {
	switch s {
	case IdlePaused:
		return "paused"
	case IdleGameOver:
		return "game_over"
	case IdleWon:
		return "won"
	default:
		return "unknown"
	}
}

// IdleStatusOf derives the idle status from a state that is not active.
func IdleStatusOf(s *GameState) IdleStatus {
	switch {
	case s.Lives <= 0:
		return IdleGameOver
	case s.Bricks.Empty():
		return IdleWon
	default:
		return IdlePaused
	}
}
