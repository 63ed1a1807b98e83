// Package input turns raw per-frame button levels into the press events the
// scenes consume.
package input

// Button is a bit in a held-buttons mask.
type Button uint16

const (
	Left Button = 1 << iota
	Right
	Up
	Down
	Fire
	Continue
	Confirm
	Back
	Click
	Save
	Debug
)

var buttonNames = []struct {
	b    Button
	name string
}{
	{Left, "Left"}, {Right, "Right"}, {Up, "Up"}, {Down, "Down"},
	{Fire, "Fire"}, {Continue, "Continue"}, {Confirm, "Confirm"},
	{Back, "Back"}, {Click, "Click"}, {Save, "Save"}, {Debug, "Debug"},
}

// String lists the set buttons, e.g. "Left|Fire".
func (b Button) String() string {
	if b == 0 {
		return "None"
	}
	s := ""
	for _, n := range buttonNames {
		if b&n.b == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}

// Has reports whether every button in mask is set.
func (b Button) Has(mask Button) bool {
	return b&mask == mask
}

// Levels is what a source reports for one frame: the buttons currently
// held and the cursor position.
type Levels struct {
	Buttons Button
	MouseX  int
	MouseY  int
}

// Snapshot is the input handed to scenes for one frame.
type Snapshot struct {
	Held    Button
	Pressed Button // held now, not held last frame
	MouseX  int
	MouseY  int
}

// IsHeld reports whether b is down this frame.
func (s Snapshot) IsHeld(b Button) bool {
	return s.Held&b != 0
}

// IsPressed reports whether b went down this frame.
func (s Snapshot) IsPressed(b Button) bool {
	return s.Pressed&b != 0
}

// Tracker derives press edges from successive levels. A button held across
// many frames is reported pressed exactly once.
type Tracker struct {
	prev Button
}

// Next returns the snapshot for levels and remembers them for the next frame.
func (t *Tracker) Next(l Levels) Snapshot {
	s := Snapshot{
		Held:    l.Buttons,
		Pressed: l.Buttons &^ t.prev,
		MouseX:  l.MouseX,
		MouseY:  l.MouseY,
	}
	t.prev = l.Buttons
	return s
}

// Reset forgets the previous frame, so anything held counts as a new press.
func (t *Tracker) Reset() {
	t.prev = 0
}

// Source yields one Levels per frame. ok is false once a finite source
// runs out.
type Source interface {
	Poll() (l Levels, ok bool)
}

// Script is a Source replaying a fixed slice of levels.
type Script struct {
	frames []Levels
	pos    int
}

// NewScript returns a source over frames.
func NewScript(frames ...Levels) *Script {
	return &Script{frames: frames}
}

// Poll returns the next frame.
func (s *Script) Poll() (Levels, bool) {
	if s.pos >= len(s.frames) {
		return Levels{}, false
	}
	l := s.frames[s.pos]
	s.pos++
	return l, true
}

// Hold returns n frames with buttons held.
func Hold(buttons Button, n int) []Levels {
	out := make([]Levels, n)
	for i := range out {
		out[i].Buttons = buttons
	}
	return out
}

// Tap returns a one-frame press followed by a one-frame release.
func Tap(buttons Button) []Levels {
	return []Levels{{Buttons: buttons}, {}}
}
