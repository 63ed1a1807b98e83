package replay

import "github.com/younwookim/skyfall/internal/application/input"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int          `json:"f"`           // Frame number
	B  input.Button `json:"b,omitempty"` // Held buttons
	MX int          `json:"mx"`          // MouseX
	MY int          `json:"my"`          // MouseY
}

// Levels converts the frame back to what an input source reports.
func (f FrameInput) Levels() input.Levels {
	return input.Levels{Buttons: f.B, MouseX: f.MX, MouseY: f.MY}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Config    string       `json:"config"` // where the game config was loaded from
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
