package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultBindings maps keys to buttons. Space both fires and continues text.
var DefaultBindings = map[ebiten.Key]Button{
	ebiten.KeyArrowLeft:  Left,
	ebiten.KeyA:          Left,
	ebiten.KeyArrowRight: Right,
	ebiten.KeyD:          Right,
	ebiten.KeyArrowUp:    Up,
	ebiten.KeyW:          Up,
	ebiten.KeyArrowDown:  Down,
	ebiten.KeyS:          Down,
	ebiten.KeySpace:      Fire | Continue,
	ebiten.KeyEnter:      Confirm,
	ebiten.KeyEscape:     Back,
	ebiten.KeyF5:         Save,
	ebiten.KeyF3:         Debug,
}

// EbitenSource reads the keyboard and mouse through ebiten.
type EbitenSource struct {
	bindings map[ebiten.Key]Button
	keys     []ebiten.Key
}

// NewEbitenSource creates a source using bindings, or DefaultBindings when nil.
func NewEbitenSource(bindings map[ebiten.Key]Button) *EbitenSource {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &EbitenSource{bindings: bindings}
}

// Poll reads the current levels. It never runs out.
func (s *EbitenSource) Poll() (Levels, bool) {
	s.keys = inpututil.AppendPressedKeys(s.keys[:0])

	var l Levels
	for _, k := range s.keys {
		l.Buttons |= s.bindings[k]
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		l.Buttons |= Click
	}
	l.MouseX, l.MouseY = ebiten.CursorPosition()
	return l, true
}
