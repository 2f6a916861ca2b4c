package breakout

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/BurntSushi/toml"
)

// Variant selects one of the two game flavours.
type Variant int

const (
	VariantClassic  Variant = iota // human-only paddle
	VariantAssisted                // predictive AI paddle available
)

func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "classic"
	case VariantAssisted:
		return "assisted"
	default:
		return "unknown"
	}
}

// ParseVariant maps a flag value to a Variant. "ai" is accepted as an alias
// for the assisted variant.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "human":
		return VariantClassic, nil
	case "assisted", "ai":
		return VariantAssisted, nil
	}
	return 0, fmt.Errorf("unknown variant %q (supported: classic, assisted)", s)
}

// Config holds every tunable of a round. Field names double as TOML keys for
// tuning files.
type Config struct {
	Variant Variant `toml:"-"`

	ScreenWidth  float64 `toml:"screen_width"`
	ScreenHeight float64 `toml:"screen_height"`

	BrickRows    int     `toml:"brick_rows"`
	BrickCols    int     `toml:"brick_cols"`
	BrickWidth   float64 `toml:"brick_width"`
	BrickHeight  float64 `toml:"brick_height"`
	BrickGapX    float64 `toml:"brick_gap_x"`
	BrickGapY    float64 `toml:"brick_gap_y"`
	BrickOffsetX float64 `toml:"brick_offset_x"`
	BrickOffsetY float64 `toml:"brick_offset_y"`

	// BrickColors is indexed by row modulo its length.
	BrickColors []color.RGBA `toml:"-"`

	PaddleWidth     float64 `toml:"paddle_width"`
	PaddleHeight    float64 `toml:"paddle_height"`
	PaddleBottomGap float64 `toml:"paddle_bottom_gap"` // distance from screen bottom to paddle top
	PaddleSpeed     float64 `toml:"paddle_speed"`      // px per frame under keyboard control

	BallSize  float64 `toml:"ball_size"`
	BallSpeed float64 `toml:"ball_speed"` // initial |dx| and |dy|

	Lives         int     `toml:"lives"`
	BrickPoints   int     `toml:"brick_points"`
	BoostEvery    int     `toml:"boost_every"` // score interval that triggers BoostFactor
	BoostFactor   float64 `toml:"boost_factor"`
	PaddleSpeedUp float64 `toml:"paddle_speed_up"`

	// ExplicitPaddleBounce sets dy = -|dy| on a paddle hit instead of
	// negating it.
	ExplicitPaddleBounce bool `toml:"explicit_paddle_bounce"`
	// ResetBricksOnLifeLost rebuilds the whole brick field when a life is lost.
	ResetBricksOnLifeLost bool `toml:"reset_bricks_on_life_lost"`

	AIAvailable      bool    `toml:"ai_available"`
	AIEnabledAtStart bool    `toml:"ai_enabled_at_start"`
	AISmoothing      float64 `toml:"ai_smoothing"`
	AIMaxStep        float64 `toml:"ai_max_step"`
}

var (
	classicColors = []color.RGBA{
		{R: 0, G: 0, B: 255, A: 255},
		{R: 0, G: 100, B: 200, A: 255},
		{R: 50, G: 150, B: 255, A: 255},
	}
	assistedColors = []color.RGBA{
		{R: 255, G: 51, B: 51, A: 255},  // red
		{R: 255, G: 153, B: 51, A: 255}, // orange
		{R: 255, G: 255, B: 51, A: 255}, // yellow
		{R: 51, G: 255, B: 51, A: 255},  // green
		{R: 51, G: 255, B: 255, A: 255}, // cyan
		{R: 51, G: 51, B: 255, A: 255},  // blue
		{R: 204, G: 51, B: 255, A: 255}, // purple
	}
)

// ConfigFor returns the stock configuration of a variant.
func ConfigFor(v Variant) Config {
	cfg := Config{
		Variant:      v,
		ScreenWidth:  800,
		ScreenHeight: 600,

		BrickRows:    6,
		BrickCols:    8,
		BrickWidth:   60,
		BrickHeight:  20,
		BrickGapX:    10,
		BrickGapY:    5,
		BrickOffsetX: 35,
		BrickOffsetY: 50,
		BrickColors:  classicColors,

		PaddleWidth:     100,
		PaddleHeight:    10,
		PaddleBottomGap: 30,
		PaddleSpeed:     5,

		BallSize:  10,
		BallSpeed: 3,

		Lives:         3,
		BrickPoints:   10,
		BoostEvery:    50,
		BoostFactor:   1.1,
		PaddleSpeedUp: 1.02,

		ResetBricksOnLifeLost: true,

		AISmoothing: 0.1,
		AIMaxStep:   12,
	}
	if v == VariantAssisted {
		cfg.BrickRows = 7
		cfg.BrickColors = assistedColors
		cfg.BallSpeed = 4
		cfg.Lives = 1
		cfg.PaddleSpeedUp = 1.01
		cfg.ExplicitPaddleBounce = true
		cfg.AIAvailable = true
		cfg.AIEnabledAtStart = true
	}
	return cfg
}

// Validate rejects configurations that would break the physics invariants.
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %vx%v", c.ScreenWidth, c.ScreenHeight))
	}
	if c.BrickRows <= 0 || c.BrickCols <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must be non-empty, got %dx%d", c.BrickRows, c.BrickCols))
	}
	if c.BrickWidth <= 0 || c.BrickHeight <= 0 || c.PaddleWidth <= 0 || c.PaddleHeight <= 0 || c.BallSize <= 0 {
		errs = append(errs, errors.New("brick, paddle and ball sizes must be positive"))
	}
	if c.PaddleWidth > c.ScreenWidth {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds screen width %v", c.PaddleWidth, c.ScreenWidth))
	}
	if c.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %v", c.BallSpeed))
	}
	if c.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Lives))
	}
	if c.BrickPoints <= 0 || c.BoostEvery <= 0 {
		errs = append(errs, errors.New("brick_points and boost_every must be positive"))
	}
	if c.AISmoothing <= 0 || c.AISmoothing > 1 {
		errs = append(errs, fmt.Errorf("ai_smoothing must be in (0, 1], got %v", c.AISmoothing))
	}
	if c.AIMaxStep <= 0 {
		errs = append(errs, fmt.Errorf("ai_max_step must be positive, got %v", c.AIMaxStep))
	}
	return errors.Join(errs...)
}

// LoadConfig overlays the TOML tuning file at path on top of base. Keys the
// file does not mention keep their base value; unknown keys are an error.
func LoadConfig(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return base, fmt.Errorf("decode tuning file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return base, fmt.Errorf("tuning file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return cfg, nil
}
