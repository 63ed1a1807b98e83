package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_PressOncePerHold(t *testing.T) {
	var tr Tracker
	frames := append(Hold(Continue, 5), Levels{}, Levels{Buttons: Continue})

	presses := 0
	for _, f := range frames {
		if tr.Next(f).IsPressed(Continue) {
			presses++
		}
	}
	assert.Equal(t, 2, presses)
}

func TestTracker_Snapshot(t *testing.T) {
	var tr Tracker
	s := tr.Next(Levels{Buttons: Left | Fire, MouseX: 4, MouseY: 9})
	assert.True(t, s.IsPressed(Left))
	assert.True(t, s.IsHeld(Fire))
	assert.Equal(t, 4, s.MouseX)
	assert.Equal(t, 9, s.MouseY)

	s = tr.Next(Levels{Buttons: Left | Up})
	assert.False(t, s.IsPressed(Left))
	assert.True(t, s.IsHeld(Left))
	assert.True(t, s.IsPressed(Up))
	assert.False(t, s.IsHeld(Fire))

	tr.Reset()
	s = tr.Next(Levels{Buttons: Left})
	assert.True(t, s.IsPressed(Left))
}

func TestButton_String(t *testing.T) {
	tests := []struct {
		b        Button
		expected string
	}{
		{0, "None"},
		{Left, "Left"},
		{Fire | Continue, "Fire|Continue"},
		{Back | Debug, "Back|Debug"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.b.String())
		})
	}
	assert.True(t, (Fire | Continue).Has(Continue))
	assert.False(t, Fire.Has(Fire|Continue))
}

func TestScript_Poll(t *testing.T) {
	s := NewScript(Tap(Confirm)...)

	l, ok := s.Poll()
	require.True(t, ok)
	assert.Equal(t, Confirm, l.Buttons)

	l, ok = s.Poll()
	require.True(t, ok)
	assert.Equal(t, Button(0), l.Buttons)

	_, ok = s.Poll()
	assert.False(t, ok)
}

func TestDefaultBindings_SpaceContinues(t *testing.T) {
	for k, b := range DefaultBindings {
		if b.Has(Continue) {
			assert.Equal(t, "Space", k.String())
		}
	}
}
