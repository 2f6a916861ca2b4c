package breakout

import (
	"fmt"
	"strings"
)

// RunGrade scores one autoplay run on a 0-100 scale.
type RunGrade struct {
	Grade string // A+, A, B+, B, C+, C, D, F
	Score float64

	Clearance  float64 // 0-100, share of the field broken
	Survival   float64 // 0-100, share of lives kept
	Efficiency float64 // 0-100, fewer paddle returns per brick is better

	Traits []string
}

// Component weights; they sum to 1.
const (
	weightClearance  = 0.6
	weightSurvival   = 0.2
	weightEfficiency = 0.2
)

// GradeRun grades a finished (or timed out) run.
func GradeRun(r RunReport) RunGrade {
	broken := r.BricksTotal - r.BricksLeft
	startLives := r.Lives + r.LivesLost

	g := RunGrade{
		Clearance: gradeClamp(100 * gradeFrac(broken, r.BricksTotal)),
		Survival:  gradeClamp(100 * gradeFrac(r.Lives, startLives)),
	}
	if broken > 0 {
		perBrick := float64(r.PaddleHits) / float64(broken)
		g.Efficiency = gradeClamp(100 - (perBrick-1)*10)
	}
	g.Score = weightClearance*g.Clearance + weightSurvival*g.Survival + weightEfficiency*g.Efficiency
	g.Grade = LetterGrade(g.Score)
	g.Traits = runTraits(r, broken)
	return g
}

func runTraits(r RunReport, broken int) []string {
	var traits []string
	if r.Outcome == OutcomeWin {
		traits = append(traits, "cleared_field")
		if r.LivesLost == 0 {
			traits = append(traits, "flawless")
		}
	}
	if r.Outcome == OutcomeNone && broken*2 < r.BricksTotal {
		traits = append(traits, "stalled")
	}
	if broken > 0 && r.PaddleHits > 5*broken {
		traits = append(traits, "long_rallies")
	}
	if r.FirstBrickTick >= 0 && r.FirstBrickTick < 120 {
		traits = append(traits, "quick_start")
	}
	return traits
}

// Format renders the grade on one line.
func (g RunGrade) Format() string {
	s := fmt.Sprintf("grade=%s score=%.1f clearance=%.0f survival=%.0f efficiency=%.0f",
		g.Grade, g.Score, g.Clearance, g.Survival, g.Efficiency)
	if len(g.Traits) > 0 {
		s += " traits=" + strings.Join(g.Traits, ",")
	}
	return s
}

func gradeFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func gradeClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}
