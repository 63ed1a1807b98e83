package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type name string

func (n name) String() string { return string(n) }

func TestQueue_DrainClears(t *testing.T) {
	var q Queue
	q.Emit(MusicFadeOut{Duration: time.Second})
	q.Emit(MusicSwap{Track: TrackCutscene})
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	assert.Equal(t, []Event{MusicFadeOut{Duration: time.Second}, MusicSwap{Track: TrackCutscene}}, got)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestQueue_Dispatch(t *testing.T) {
	var q Queue
	var a, b []Event
	q.Emit(QuitRequested{})
	q.Emit(StateChanged{From: name("Menu"), To: name("Transitioning")})

	q.Dispatch(
		SinkFunc(func(e Event) { a = append(a, e) }),
		SinkFunc(func(e Event) { b = append(b, e) }),
	)

	assert.Len(t, a, 2)
	assert.Equal(t, a, b)
	assert.Equal(t, 0, q.Len())
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "MusicSwap(game)", MusicSwap{Track: TrackGame}.String())
	assert.Equal(t, "MusicFadeOut(800ms)", MusicFadeOut{Duration: 800 * time.Millisecond}.String())
	assert.Equal(t, "StateChanged(Cutscene -> Gameplay)", StateChanged{From: name("Cutscene"), To: name("Gameplay")}.String())
}
