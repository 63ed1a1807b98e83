package config

import (
	"time"

	"github.com/younwookim/skyfall/internal/domain/scenery"
	"github.com/younwookim/skyfall/internal/render"
)

// GameConfig is the root of game.yaml.
type GameConfig struct {
	Seed       int64            `yaml:"seed"`
	Display    DisplayConfig    `yaml:"display"`
	Menu       MenuConfig       `yaml:"menu"`
	Transition TransitionConfig `yaml:"transition"`
	Cutscene   CutsceneConfig   `yaml:"cutscene"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Audio      AudioConfig      `yaml:"audio"`
}

type DisplayConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	TPS    int     `yaml:"tps"`
	Title  string  `yaml:"title"`
}

// DT returns the fixed timestep in seconds.
func (d DisplayConfig) DT() float64 {
	return 1.0 / float64(d.TPS)
}

// ImageConfig names a sprite and the size it is drawn at. Color fills the
// placeholder used when the file cannot be loaded.
type ImageConfig struct {
	Path   string     `yaml:"path"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Color  render.RGB `yaml:"color"`
}

type MenuConfig struct {
	Background    scenery.ComposerConfig `yaml:"background"`
	Sparkles      scenery.ParticleConfig `yaml:"sparkles"`
	Logo          string                 `yaml:"logo"`
	LogoHold      float64                `yaml:"logo_hold"` // seconds
	LogoFade      float64                `yaml:"logo_fade"` // overlay alpha per second
	Title         string                 `yaml:"title"`
	Subtitle      string                 `yaml:"subtitle"`
	Buttons       []string               `yaml:"buttons"`
	ButtonY       int                    `yaml:"button_y"`
	ButtonSpacing int                    `yaml:"button_spacing"`
	Version       string                 `yaml:"version"`
	Hint          string                 `yaml:"hint"`
	HintPeriod    float64                `yaml:"hint_period"`
	HintShown     float64                `yaml:"hint_shown"`
}

type TransitionConfig struct {
	FadeRate float64 `yaml:"fade_rate"` // alpha per second
	Dwell    float64 `yaml:"dwell"`     // seconds the title stays up
	Title    string  `yaml:"title"`
}

type CutsceneConfig struct {
	TypingSpeed    float64                `yaml:"typing_speed"` // seconds per character
	CorruptLine    int                    `yaml:"corrupt_line"`
	CorruptFade    float64                `yaml:"corrupt_fade"`
	PortraitFade   float64                `yaml:"portrait_fade"`
	IntroFade      float64                `yaml:"intro_fade"`
	PanSpeed       float64                `yaml:"pan_speed"`
	PanLimit       float64                `yaml:"pan_limit"`
	PromptBlink    float64                `yaml:"prompt_blink"`
	Prompt         string                 `yaml:"prompt"`
	Speaker        string                 `yaml:"speaker"`
	OpeningScript  string                 `yaml:"opening_script"`
	DialogueScript string                 `yaml:"dialogue_script"`
	Opening        []string               `yaml:"opening"`
	Dialogue       []string               `yaml:"dialogue"`
	City           ImageConfig            `yaml:"city"`
	Corrupted      ImageConfig            `yaml:"corrupted"`
	Portrait       ImageConfig            `yaml:"portrait"`
	Embers         scenery.ParticleConfig `yaml:"embers"`
	Magic          scenery.ParticleConfig `yaml:"magic"`
}

type GameplayConfig struct {
	Background   scenery.ComposerConfig `yaml:"background"`
	Wind         scenery.ParticleConfig `yaml:"wind"`
	Player       PlayerConfig           `yaml:"player"`
	Bolt         BoltConfig             `yaml:"bolt"`
	ProgressRate float64                `yaml:"progress_rate"` // percent per second
}

type PlayerConfig struct {
	Idle          ImageConfig `yaml:"idle"`
	Blink         ImageConfig `yaml:"blink"`
	Attack        ImageConfig `yaml:"attack"`
	StartX        float64     `yaml:"start_x"` // fraction of the viewport width
	StartY        float64     `yaml:"start_y"` // fraction of the viewport height
	Speed         float64     `yaml:"speed"`
	VerticalSpeed float64     `yaml:"vertical_speed"`
	BobAmplitude  float64     `yaml:"bob_amplitude"`
	BobRate       float64     `yaml:"bob_rate"`
	BlinkEvery    [2]float64  `yaml:"blink_every"`
	BlinkFor      float64     `yaml:"blink_for"`
	FireCooldown  float64     `yaml:"fire_cooldown"`
	AttackFor     float64     `yaml:"attack_for"`
	Health        int         `yaml:"health"`
}

type BoltConfig struct {
	Sprite ImageConfig `yaml:"sprite"`
	Speed  float64     `yaml:"speed"`
}

type AudioConfig struct {
	SampleRate   int               `yaml:"sample_rate"`
	Volume       float64           `yaml:"volume"`
	Tracks       map[string]string `yaml:"tracks"`
	StartFade    time.Duration     `yaml:"start_fade"`
	GameplayFade time.Duration     `yaml:"gameplay_fade"`
}

// ScriptFile is the layout of scripts/<name>.yaml.
type ScriptFile struct {
	Lines []string `yaml:"lines"`
}
