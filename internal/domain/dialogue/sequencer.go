// Package dialogue reveals scripted lines one character at a time.
package dialogue

// Sequencer types through an ordered script.
//
// Skip and Advance are one-shot requests. Requests made between two
// updates collapse into one and are consumed by the next Update, which
// then reveals nothing on its own. Holding a key is the caller's concern:
// it should request once per press, not once per frame.
type Sequencer struct {
	lines [][]rune
	speed float64 // seconds per character

	line  int
	char  int
	timer float64
	done  bool

	skip    bool
	advance bool
}

// NewSequencer creates a sequencer over lines revealing one character every
// speed seconds. An empty script is complete immediately.
func NewSequencer(lines []string, speed float64) *Sequencer {
	s := &Sequencer{speed: speed}
	for _, l := range lines {
		s.lines = append(s.lines, []rune(l))
	}
	s.Reset()
	return s
}

// Reset rewinds to the first character of the first line.
func (s *Sequencer) Reset() {
	s.line, s.char, s.timer = 0, 0, 0
	s.skip, s.advance = false, false
	s.done = len(s.lines) == 0
}

// Skip requests the current line be revealed in full.
func (s *Sequencer) Skip() {
	s.skip = true
}

// Advance requests the next line once the current one is complete.
func (s *Sequencer) Advance() {
	s.advance = true
}

// Continue requests whichever of Skip or Advance applies right now.
func (s *Sequencer) Continue() {
	if s.LineComplete() {
		s.Advance()
		return
	}
	s.Skip()
}

// Update consumes a pending request, or types characters for dt seconds.
func (s *Sequencer) Update(dt float64) {
	skip, advance := s.skip, s.advance
	s.skip, s.advance = false, false
	if s.done {
		return
	}

	switch {
	case skip && !s.LineComplete():
		s.char = len(s.lines[s.line])
		s.timer = 0
		return
	case advance && s.LineComplete():
		s.next()
		return
	case skip, advance:
		return
	}

	current := s.lines[s.line]
	if s.char >= len(current) {
		s.timer = 0
		return
	}
	s.timer += dt
	for s.timer >= s.speed && s.char < len(current) {
		s.char++
		s.timer -= s.speed
	}
	if s.char == len(current) {
		s.timer = 0
	}
}

func (s *Sequencer) next() {
	if s.line+1 >= len(s.lines) {
		s.done = true
		return
	}
	s.line++
	s.char = 0
	s.timer = 0
}

// Revealed returns the visible part of the current line.
func (s *Sequencer) Revealed() string {
	if len(s.lines) == 0 {
		return ""
	}
	return string(s.lines[s.line][:s.char])
}

// Current returns the full text of the current line.
func (s *Sequencer) Current() string {
	if len(s.lines) == 0 {
		return ""
	}
	return string(s.lines[s.line])
}

// Line returns the index of the current line.
func (s *Sequencer) Line() int { return s.line }

// Char returns how many characters of the current line are revealed.
func (s *Sequencer) Char() int { return s.char }

// Len returns the number of script lines.
func (s *Sequencer) Len() int { return len(s.lines) }

// LineComplete reports whether the current line is fully revealed.
func (s *Sequencer) LineComplete() bool {
	if len(s.lines) == 0 {
		return true
	}
	return s.char == len(s.lines[s.line])
}

// SequenceComplete reports whether the last line has been advanced past.
func (s *Sequencer) SequenceComplete() bool {
	return s.done
}

// Chars returns the total number of characters in the script.
func (s *Sequencer) Chars() int {
	n := 0
	for _, l := range s.lines {
		n += len(l)
	}
	return n
}
