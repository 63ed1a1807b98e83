// Package event carries the one-shot signals the scene state machine emits
// at its edges for collaborators such as the audio player.
package event

import (
	"fmt"
	"time"
)

// Track names a music track.
type Track string

const (
	TrackMenu     Track = "menu"
	TrackCutscene Track = "cutscene"
	TrackGame     Track = "game"
)

// Event is a boundary event.
type Event interface {
	isEvent()
}

// StateChanged is emitted on every state edge.
type StateChanged struct {
	From, To fmt.Stringer
}

// MusicFadeOut asks the current track to fade out over Duration.
type MusicFadeOut struct {
	Duration time.Duration
}

// MusicSwap asks for Track to start playing.
type MusicSwap struct {
	Track Track
}

// QuitRequested asks the host to stop the game loop.
type QuitRequested struct{}

func (StateChanged) isEvent()  {}
func (MusicFadeOut) isEvent()  {}
func (MusicSwap) isEvent()     {}
func (QuitRequested) isEvent() {}

func (e StateChanged) String() string {
	return fmt.Sprintf("StateChanged(%v -> %v)", e.From, e.To)
}

func (e MusicFadeOut) String() string {
	return fmt.Sprintf("MusicFadeOut(%v)", e.Duration)
}

func (e MusicSwap) String() string {
	return fmt.Sprintf("MusicSwap(%s)", e.Track)
}

func (QuitRequested) String() string {
	return "QuitRequested"
}

// Sink consumes drained events.
type Sink interface {
	Handle(e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(e Event)

// Handle calls f(e).
func (f SinkFunc) Handle(e Event) {
	f(e)
}

// Queue collects events emitted during one frame.
type Queue struct {
	pending []Event
}

// Emit appends e.
func (q *Queue) Emit(e Event) {
	q.pending = append(q.pending, e)
}

// Drain returns every pending event in emission order and clears the queue.
func (q *Queue) Drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Dispatch drains the queue into every sink.
func (q *Queue) Dispatch(sinks ...Sink) {
	for _, e := range q.Drain() {
		for _, s := range sinks {
			s.Handle(e)
		}
	}
}
