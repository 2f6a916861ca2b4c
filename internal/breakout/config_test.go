package breakout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigFor_Variants(t *testing.T) {
	c := ConfigFor(VariantClassic)
	if c.Lives != 3 || c.BallSpeed != 3 || c.PaddleSpeedUp != 1.02 || c.ExplicitPaddleBounce || c.AIAvailable {
		t.Fatalf("unexpected classic config %+v", c)
	}
	a := ConfigFor(VariantAssisted)
	if a.Lives != 1 || a.BallSpeed != 4 || a.PaddleSpeedUp != 1.01 || !a.ExplicitPaddleBounce || !a.AIAvailable {
		t.Fatalf("unexpected assisted config %+v", a)
	}
	if a.BrickRows*a.BrickCols != 56 {
		t.Fatalf("assisted layout should have 56 bricks, got %d", a.BrickRows*a.BrickCols)
	}
	for _, v := range []Variant{VariantClassic, VariantAssisted} {
		if err := ConfigFor(v).Validate(); err != nil {
			t.Fatalf("%s: stock config invalid: %v", v, err)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for in, want := range map[string]Variant{
		"classic": VariantClassic, "human": VariantClassic,
		"assisted": VariantAssisted, "AI": VariantAssisted, " ai ": VariantAssisted,
	} {
		got, err := ParseVariant(in)
		if err != nil || got != want {
			t.Errorf("ParseVariant(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseVariant("tetris"); err == nil {
		t.Error("expected an error for an unknown variant")
	}
}

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}
	return path
}

func TestLoadConfig_OverlaysBase(t *testing.T) {
	path := writeTuning(t, `
lives = 5
ball_speed = 6.5
reset_bricks_on_life_lost = false
`)
	base := ConfigFor(VariantAssisted)
	cfg, err := LoadConfig(path, base)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Lives != 5 || cfg.BallSpeed != 6.5 || cfg.ResetBricksOnLifeLost {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.BrickRows != base.BrickRows || cfg.Variant != VariantAssisted || len(cfg.BrickColors) != 7 {
		t.Fatal("keys absent from the file should keep their base values")
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeTuning(t, "lives = 2\nball_spin = 3\n")
	_, err := LoadConfig(path, ConfigFor(VariantClassic))
	if err == nil || !strings.Contains(err.Error(), "ball_spin") {
		t.Fatalf("expected unknown key error naming ball_spin, got %v", err)
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := writeTuning(t, "lives = 0\nai_smoothing = 2.0\n")
	_, err := LoadConfig(path, ConfigFor(VariantClassic))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "lives") || !strings.Contains(err.Error(), "ai_smoothing") {
		t.Fatalf("expected both problems reported, got %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"), ConfigFor(VariantClassic)); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
