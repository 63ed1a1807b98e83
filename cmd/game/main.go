package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/skyfall/internal/application/event"
	"github.com/younwookim/skyfall/internal/application/game"
	"github.com/younwookim/skyfall/internal/application/input"
	"github.com/younwookim/skyfall/internal/application/replay"
	"github.com/younwookim/skyfall/internal/application/scene"
	"github.com/younwookim/skyfall/internal/application/state"
	"github.com/younwookim/skyfall/internal/infrastructure/assets"
	"github.com/younwookim/skyfall/internal/infrastructure/audio"
	"github.com/younwookim/skyfall/internal/infrastructure/config"
	renderebiten "github.com/younwookim/skyfall/internal/render/ebiten"
)

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Load game.yaml and scripts/ from this directory instead of the built-in copy")
	assetsFlag := flag.String("assets", "assets", "Directory holding images and music")
	seedFlag := flag.Int64("seed", 0, "Random seed (0 = config seed, or time based)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	verifyFlag := flag.String("verify", "", "Run a recorded input file without a window and print the outcome")
	muteFlag := flag.Bool("mute", false, "Disable music")
	flag.Parse()

	cfg, source, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *verifyFlag != "" {
		data, err := replay.LoadReplay(*verifyFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		fmt.Print(Verify(cfg, data))
		return
	}

	seed := chooseSeed(*seedFlag, cfg.Seed)
	var in input.Source = input.NewEbitenSource(nil)
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		seed = data.Seed
		in = replay.NewReplayer(*data)
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, len(data.Frames), seed)
	}

	d := cfg.Display
	factory := renderebiten.NewFactory()
	env := scene.Env{
		Width:     d.Width,
		Height:    d.Height,
		Factory:   factory,
		Images:    assets.NewLoader(*assetsFlag, factory),
		Seed:      seed,
		FrameRate: ebiten.ActualFPS,
	}
	events := &event.Queue{}
	machine := state.NewMachine(cfg, env, events)

	g := game.New(machine, in, events, d.Width, d.Height)
	g.SetDT(d.DT())

	audioCtx := ebitenaudio.NewContext(cfg.Audio.SampleRate)
	music := audio.NewPlayer(cfg.Audio.Tracks, audio.NewEbitenOpener(audioCtx, os.DirFS(*assetsFlag)), cfg.Audio.Volume)
	music.SetMuted(*muteFlag)
	defer func() { _ = music.Close() }()
	g.AddSink(music)
	g.AddSink(event.SinkFunc(logEvent))
	g.AddTicker(music)

	if *recordFlag != "" {
		g.Record(replay.NewRecorder(seed, source), *recordFlag)
		log.Printf("Recording enabled: %s (seed: %d)", *recordFlag, seed)
	}

	// Set up ebiten
	ebiten.SetWindowSize(int(float64(d.Width)*d.Scale), int(float64(d.Height)*d.Scale))
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads dir when set, else the embedded configs. It also
// returns a name for the source, stored in recordings.
func loadConfig(dir string) (*config.GameConfig, string, error) {
	if dir != "" {
		cfg, err := config.NewLoader(dir).LoadAll()
		return cfg, dir, err
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	return cfg, "embedded", err
}

func chooseSeed(flagSeed, configSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case configSeed != 0:
		return configSeed
	default:
		return time.Now().UnixNano()
	}
}

func logEvent(e event.Event) {
	log.Printf("[Event] %v", e)
}
