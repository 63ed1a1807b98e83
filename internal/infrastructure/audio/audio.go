// Package audio plays background music in response to scene events.
package audio

import (
	"log"
	"time"

	"github.com/younwookim/skyfall/internal/application/event"
)

// Stream is a looping music track. *audio.Player satisfies it.
type Stream interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
	Close() error
}

// Opener opens the stream stored at path.
type Opener func(path string) (Stream, error)

type fade struct {
	stream   Stream
	from     float64
	elapsed  float64
	duration float64
}

// Player is an event.Sink that owns at most one current track plus any
// tracks still fading out. Streams are opened once per track and reused.
type Player struct {
	tracks  map[event.Track]string
	open    Opener
	volume  float64
	muted   bool
	streams map[event.Track]Stream
	failed  map[event.Track]bool

	current      Stream
	currentTrack event.Track
	fades        []*fade
}

// NewPlayer creates a music player. tracks maps track names to the paths
// passed to open.
func NewPlayer(tracks map[string]string, open Opener, volume float64) *Player {
	p := &Player{
		tracks:  make(map[event.Track]string, len(tracks)),
		open:    open,
		volume:  volume,
		streams: make(map[event.Track]Stream),
		failed:  make(map[event.Track]bool),
	}
	for name, path := range tracks {
		p.tracks[event.Track(name)] = path
	}
	return p
}

// SetMuted silences playback and stops any fade in progress. Track changes
// are still followed so that unmuting resumes the right music.
func (p *Player) SetMuted(muted bool) {
	p.muted = muted
	if muted {
		for _, f := range p.fades {
			f.stream.Pause()
		}
		p.fades = p.fades[:0]
	}
	if p.current == nil {
		if !muted && p.currentTrack != "" {
			p.start(p.currentTrack)
		}
		return
	}
	if muted {
		p.current.SetVolume(0)
	} else {
		p.current.SetVolume(p.volume)
	}
}

// Handle implements event.Sink.
func (p *Player) Handle(e event.Event) {
	switch e := e.(type) {
	case event.MusicSwap:
		p.swap(e.Track)
	case event.MusicFadeOut:
		p.fadeOut(e.Duration)
	}
}

// Update advances fades by dt seconds.
func (p *Player) Update(dt float64) {
	kept := p.fades[:0]
	for _, f := range p.fades {
		f.elapsed += dt
		if f.elapsed >= f.duration {
			f.stream.Pause()
			continue
		}
		f.stream.SetVolume(f.from * (1 - f.elapsed/f.duration))
		kept = append(kept, f)
	}
	p.fades = kept
}

// Current returns the track most recently asked for, or "" after a fade out.
func (p *Player) Current() event.Track {
	return p.currentTrack
}

// Fading returns the number of tracks still fading out.
func (p *Player) Fading() int {
	return len(p.fades)
}

// Close stops and releases every stream.
func (p *Player) Close() error {
	var first error
	for track, s := range p.streams {
		s.Pause()
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
		delete(p.streams, track)
	}
	p.current = nil
	p.fades = nil
	return first
}

func (p *Player) swap(track event.Track) {
	if track == p.currentTrack && p.current != nil && p.current.IsPlaying() {
		return
	}
	if p.current != nil {
		p.current.Pause()
		p.current = nil
	}
	p.currentTrack = track
	if p.muted {
		return
	}
	p.start(track)
}

func (p *Player) start(track event.Track) {
	s := p.stream(track)
	if s == nil {
		return
	}
	p.cancelFade(s)
	if err := s.Rewind(); err != nil {
		log.Printf("[Audio] Warning: failed to rewind %s: %v", track, err)
	}
	s.SetVolume(p.volume)
	s.Play()
	p.current = s
	log.Printf("[Audio] Playing %s (volume: %.2f)", track, p.volume)
}

func (p *Player) fadeOut(d time.Duration) {
	p.currentTrack = ""
	if p.current == nil {
		return
	}
	s := p.current
	p.current = nil
	if d <= 0 || p.muted {
		s.Pause()
		return
	}
	p.fades = append(p.fades, &fade{stream: s, from: p.volume, duration: d.Seconds()})
}

func (p *Player) cancelFade(s Stream) {
	for i, f := range p.fades {
		if f.stream == s {
			p.fades = append(p.fades[:i], p.fades[i+1:]...)
			return
		}
	}
}

func (p *Player) stream(track event.Track) Stream {
	if s, ok := p.streams[track]; ok {
		return s
	}
	if p.failed[track] {
		return nil
	}
	path, ok := p.tracks[track]
	if !ok {
		log.Printf("[Audio] Warning: no file configured for track %s", track)
		p.failed[track] = true
		return nil
	}
	s, err := p.open(path)
	if err != nil {
		log.Printf("[Audio] Warning: failed to load %s: %v", track, err)
		p.failed[track] = true
		return nil
	}
	p.streams[track] = s
	return s
}
