package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/skyfall/internal/domain/scenery"
)

// Validate rejects configurations the presentation core cannot run with.
// Every problem found is reported, joined.
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	d := c.Display
	check(d.Width > 0 && d.Height > 0, "display: size %dx%d must be positive", d.Width, d.Height)
	check(d.TPS > 0, "display: tps %d must be positive", d.TPS)

	validateComposer("menu.background", c.Menu.Background, check)
	validateComposer("gameplay.background", c.Gameplay.Background, check)
	validateField("menu.sparkles", c.Menu.Sparkles, check)
	validateField("gameplay.wind", c.Gameplay.Wind, check)
	validateField("cutscene.embers", c.Cutscene.Embers, check)
	validateField("cutscene.magic", c.Cutscene.Magic, check)
	check(len(c.Menu.Buttons) > 0, "menu: at least one button is required")

	t := c.Transition
	check(t.FadeRate > 0, "transition: fade_rate must be positive")
	check(t.Dwell >= 0, "transition: dwell must not be negative")

	cs := c.Cutscene
	check(cs.TypingSpeed > 0, "cutscene: typing_speed must be positive")
	check(cs.CorruptLine >= 0, "cutscene: corrupt_line must not be negative")
	check(cs.IntroFade > 0 && cs.PortraitFade > 0 && cs.CorruptFade > 0, "cutscene: fade rates must be positive")

	check(c.Gameplay.Bolt.Speed > 0, "gameplay: bolt speed must be positive")
	p := c.Gameplay.Player
	check(p.BlinkEvery[0] > 0 && p.BlinkEvery[1] >= p.BlinkEvery[0], "gameplay: blink_every %v is not a valid interval", p.BlinkEvery)

	return errors.Join(errs...)
}

func validateComposer(name string, cc scenery.ComposerConfig, check func(bool, string, ...any)) {
	check(cc.Sky.Bands > 0, "%s: sky bands must be positive", name)
	check(cc.Sky.Refresh > 0, "%s: sky refresh must be positive", name)
	for i, l := range cc.Layers {
		check(l.Width > 0 && l.Height > 0, "%s: layer %d has a zero size", name, i)
	}
	if h := cc.Hills; h.Count > 0 {
		check(h.TileWidth >= h.Count, "%s: hill tile_width %d is narrower than %d hills", name, h.TileWidth, h.Count)
		check(h.Steps > 0, "%s: hill steps must be positive", name)
		check(h.Height[0] > 0 && h.Height[1] >= h.Height[0], "%s: hill height %v is not a valid range", name, h.Height)
		check(h.TileWidth/h.Count-h.WidthJitter > 20, "%s: hills can become narrower than their detail margin", name)
		check(int(h.Height[0])/3 <= int(h.Height[0])-20, "%s: hills are too short for details", name)
	}
	if d := cc.Drifters; d.Count > 0 {
		check(d.Width > 0 && d.Height > 0, "%s: drifter has a zero size", name)
	}
	for i, f := range cc.Fields {
		validateField(fmt.Sprintf("%s.fields[%d]", name, i), f, check)
	}
}

func validateField(name string, f scenery.ParticleConfig, check func(bool, string, ...any)) {
	check(f.Capacity > 0, "%s: capacity must be positive", name)
	check(f.Size[0] >= 1 && f.Size[1] >= f.Size[0], "%s: size %v is not a valid range", name, f.Size)
	switch f.Kind {
	case scenery.Magic, scenery.Sparkle:
		check(f.Life[0] > 0 && f.Life[1] >= f.Life[0], "%s: life %v is not a valid range", name, f.Life)
	case scenery.Ember:
		check(f.Fade > 0, "%s: fade must be positive", name)
	case scenery.WindStreak, scenery.Glow, scenery.Mote:
		check(f.Speed[0] > 0, "%s: speed must be positive", name)
	}
}
