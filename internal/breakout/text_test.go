package breakout

import (
	"strings"
	"testing"
)

func TestInstructionLines_Classic(t *testing.T) {
	lines := InstructionLines(ConfigFor(VariantClassic))
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"You have 3 lives", "Each brick gives 10 points", "every 5 bricks"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("instructions missing %q:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, "AI") {
		t.Fatalf("classic instructions mention the AI:\n%s", joined)
	}
	if last := lines[len(lines)-1]; last != "- Press SPACE to return to menu" {
		t.Fatalf("unexpected last line %q", last)
	}
}

func TestInstructionLines_AssistedSingleLife(t *testing.T) {
	joined := strings.Join(InstructionLines(ConfigFor(VariantAssisted)), "\n")
	if !strings.Contains(joined, "You have 1 life") {
		t.Fatalf("expected singular life line:\n%s", joined)
	}
	if !strings.Contains(joined, "toggle the AI") {
		t.Fatalf("expected AI toggle line:\n%s", joined)
	}
}

func TestIdleMessage(t *testing.T) {
	cases := map[IdleStatus]string{
		IdleWon:      MsgWin,
		IdleGameOver: MsgGameOver,
		IdlePaused:   MsgPaused,
	}
	for st, want := range cases {
		if got := IdleMessage(st); got != want {
			t.Fatalf("%s: expected %q, got %q", st, want, got)
		}
	}
	if got := FinalScore(120); got != "Final Score: 120" {
		t.Fatalf("unexpected final score line %q", got)
	}
}
