package config

import (
	"time"

	"github.com/younwookim/skyfall/internal/domain/scenery"
	"github.com/younwookim/skyfall/internal/render"
)

// Default returns the built-in configuration. Files loaded by Loader are
// decoded on top of it, so they only need to name what they change.
func Default() *GameConfig {
	return &GameConfig{
		Seed: 0,
		Display: DisplayConfig{
			Width:  1280,
			Height: 720,
			Scale:  1,
			TPS:    60,
			Title:  "Zethia: Skyfall Run",
		},
		Menu:       defaultMenu(),
		Transition: TransitionConfig{FadeRate: 180, Dwell: 3.0, Title: "Zethia: Skyfall Run"},
		Cutscene:   defaultCutscene(),
		Gameplay:   defaultGameplay(),
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     0.5,
			Tracks: map[string]string{
				"menu":     "music/menu_theme.mp3",
				"cutscene": "music/cutscene_theme.mp3",
				"game":     "music/game_theme.mp3",
			},
			StartFade:    1000 * time.Millisecond,
			GameplayFade: 800 * time.Millisecond,
		},
	}
}

func menuBackground() scenery.ComposerConfig {
	return scenery.ComposerConfig{
		Sky: scenery.SkyConfig{
			Top:     render.RGB{70, 110, 180},
			Bottom:  render.RGB{180, 200, 240},
			Bands:   8,
			Quantum: 32,
			Refresh: 2.0,
		},
		Sun: scenery.SunConfig{X: 180, Y: 150, Radius: 60, Pulse: 0.8, Core: render.RGB{255, 240, 180}},
		Layers: []scenery.LayerConfig{
			{Image: "backgrounds/clouds_far.png", Speed: 6, Width: 1280, Height: 320, Color: render.RGB{150, 170, 210}},
			{Image: "backgrounds/fl_island1.png", Speed: 10, Y: 180, Width: 1280, Height: 240, Color: render.RGB{110, 140, 120}},
		},
		Hills: scenery.HillConfig{
			Count:        4,
			TileWidth:    1400,
			Speed:        18,
			Height:       scenery.Range{160, 220},
			WidthJitter:  60,
			OffsetJitter: 30,
			Steps:        8,
			Details:      scenery.Range{2, 5},
			BaseColors:   []render.RGB{{60, 100, 80}, {80, 120, 100}, {100, 140, 120}, {70, 90, 110}},
			DetailColors: []render.RGB{{90, 70, 50}, {110, 90, 70}, {80, 100, 80}, {120, 100, 80}},
		},
		Drifters: scenery.DrifterConfig{
			Image:  "backgrounds/fl_island1.png",
			Count:  2,
			Width:  180,
			Height: 100,
			Color:  render.RGB{90, 120, 90},
			Speed:  scenery.Range{0.5, 1.2},
			SpawnX: scenery.Range{900, 1500},
			SpawnY: scenery.Range{100, 220},
		},
		Fields: []scenery.ParticleConfig{
			{Kind: scenery.WindStreak, Capacity: 8, Speed: scenery.Range{15, 30}, Alpha: scenery.Range{80, 120}, Size: scenery.Range{4, 8}},
			{Kind: scenery.Glow, Capacity: 6, Speed: scenery.Range{8, 15}, Alpha: scenery.Range{80, 140}, Size: scenery.Range{2, 4},
				Colors: []render.RGB{{200, 220, 255}, {255, 240, 200}, {220, 200, 255}}},
		},
	}
}

func defaultMenu() MenuConfig {
	return MenuConfig{
		Background: menuBackground(),
		Sparkles: scenery.ParticleConfig{
			Kind:     scenery.Sparkle,
			Capacity: 15,
			Speed:    scenery.Range{3, 9},
			Size:     scenery.Range{2, 4},
			Life:     scenery.Range{5, 8.3},
			Colors:   []render.RGB{{255, 200, 80}, {80, 160, 255}, {255, 100, 150}, {100, 220, 100}},
		},
		Logo:          "ZETHIAN PRODUCTION",
		LogoHold:      1.5,
		LogoFade:      6000,
		Title:         "ZETHIA: SKYFALL RUN",
		Subtitle:      "A JOURNEY THROUGH THE WHISPERING WOODS",
		Buttons:       []string{"START GAME", "QUIT"},
		ButtonY:       280,
		ButtonSpacing: 70,
		Version:       "ZETHIA v1.0.0",
		Hint:          "ARROWS/CLICK - ENTER TO SELECT",
		HintPeriod:    6,
		HintShown:     3,
	}
}

func defaultCutscene() CutsceneConfig {
	return CutsceneConfig{
		TypingSpeed:    0.028,
		CorruptLine:    3,
		CorruptFade:    80,
		PortraitFade:   180,
		IntroFade:      120,
		PanSpeed:       15,
		PanLimit:       40,
		PromptBlink:    0.5,
		Prompt:         "Press SPACE to continue",
		Speaker:        "Mae",
		OpeningScript:  "opening",
		DialogueScript: "witch",
		Opening: []string{
			"In the heart of the Zethia Republic lies ZyriL,",
			"the ancient World Tree whose glow once sustained all life.",
			"",
			"But now its light is fading...",
			"and a mysterious gloom spreads across the land.",
			"",
			"Our story begins with Mae...",
			"the Witch of the Whispering Woods.",
		},
		Dialogue: []string{
			"Mae: The air... it grows heavy with darkness.",
			"ZyriL's glow weakens with each passing night.",
			"",
			"I can feel it in the wind's whisper,",
			"in the trembling leaves of the ancient trees.",
			"",
			"Something ancient stirs...",
			"and it hungers for the World Tree's light.",
			"",
			"But I am no ordinary witch.",
			"The woods have shared their secrets with me,",
			"and I will not let this darkness consume us.",
			"",
			"The time has come to act.",
		},
		City:      ImageConfig{Path: "cutscenes/zethia_city.png", Width: 1280, Height: 720, Color: render.RGB{60, 80, 120}},
		Corrupted: ImageConfig{Path: "cutscenes/zethia_city_corrupted.png", Width: 1280, Height: 720, Color: render.RGB{70, 30, 60}},
		Portrait:  ImageConfig{Path: "cutscenes/witch_cutscene.png", Width: 1280, Height: 720, Color: render.RGB{40, 30, 70}},
		Embers: scenery.ParticleConfig{
			Kind:     scenery.Ember,
			Capacity: 40,
			Speed:    scenery.Range{20, 50},
			Alpha:    scenery.Range{150, 230},
			Size:     scenery.Range{2, 5},
			Fade:     45,
			Colors:   []render.RGB{{255, 200, 130}},
		},
		Magic: scenery.ParticleConfig{
			Kind:     scenery.Magic,
			Capacity: 60,
			Speed:    scenery.Range{40, 100},
			Size:     scenery.Range{3, 8},
			Life:     scenery.Range{1, 2},
			Spread:   200,
			Colors: []render.RGB{
				{160, 128, 224}, {192, 128, 255}, {224, 160, 255},
				{160, 192, 255}, {255, 192, 255}, {192, 100, 224},
			},
		},
	}
}

func defaultGameplay() GameplayConfig {
	return GameplayConfig{
		Background: scenery.ComposerConfig{
			Sky: scenery.SkyConfig{
				Top:     render.RGB{90, 160, 240},
				Bottom:  render.RGB{255, 180, 100},
				Bands:   16,
				Quantum: 8,
				Refresh: 2.0,
			},
			Sun: scenery.SunConfig{X: 1024, Y: 216, Radius: 80, Pulse: 0.8, Core: render.RGB{255, 240, 180}},
			Layers: []scenery.LayerConfig{
				{Image: "backgrounds/parallax_layers/clouds_far.png", Speed: 10, Width: 1280, Height: 300, Color: render.RGB{200, 210, 240}},
				{Image: "backgrounds/parallax_layers/clouds_mid.png", Speed: 20, Y: 60, Width: 1280, Height: 280, Color: render.RGB{220, 225, 245}},
				{Image: "backgrounds/parallax_layers/mountain1.png", Speed: 15, Y: 300, Width: 1400, Height: 420, Color: render.RGB{90, 110, 140}},
				{Image: "backgrounds/parallax_layers/trees_close.png", Speed: 40, Y: 500, Width: 1280, Height: 220, Color: render.RGB{40, 80, 50}},
			},
			Fields: []scenery.ParticleConfig{
				{Kind: scenery.Glow, Capacity: 10, Speed: scenery.Range{8, 15}, Alpha: scenery.Range{80, 140}, Size: scenery.Range{2, 4},
					Colors: []render.RGB{{200, 220, 255}, {255, 240, 200}, {220, 200, 255}}},
			},
		},
		Wind: scenery.ParticleConfig{
			Kind:     scenery.Mote,
			Capacity: 30,
			Speed:    scenery.Range{40, 80},
			Alpha:    scenery.Range{80, 150},
			Size:     scenery.Range{2, 5},
		},
		Player: PlayerConfig{
			Idle:          ImageConfig{Path: "sprites/Witch/player_idle.png", Width: 96, Height: 96, Color: render.RGB{120, 80, 160}},
			Blink:         ImageConfig{Path: "sprites/Witch/player_idle2.png", Width: 96, Height: 96, Color: render.RGB{110, 70, 150}},
			Attack:        ImageConfig{Path: "sprites/Witch/player_attack.png", Width: 96, Height: 96, Color: render.RGB{160, 100, 200}},
			StartX:        0.25,
			StartY:        0.5,
			Speed:         180,
			VerticalSpeed: 160,
			BobAmplitude:  10,
			BobRate:       2,
			BlinkEvery:    [2]float64{3, 5},
			BlinkFor:      0.15,
			FireCooldown:  0.25,
			AttackFor:     0.1,
			Health:        100,
		},
		Bolt: BoltConfig{
			Sprite: ImageConfig{Path: "sprites/Witch/magic_bolt.png", Width: 32, Height: 12, Color: render.RGB{200, 160, 255}},
			Speed:  400,
		},
		ProgressRate: 0.1,
	}
}
