package audio

import "fmt"

// Cue identifies a feedback sound
type Cue uint8

const (
	CueStep   Cue = iota // Numeric value changed
	CueToggle            // Checkbox, chip or sign changed
	CueLimit             // Change rejected by clamping
)

func (c Cue) String() string {
	switch c {
	case CueStep:
		return "step"
	case CueToggle:
		return "toggle"
	case CueLimit:
		return "limit"
	}
	return fmt.Sprintf("Cue(%d)", c)
}

// Player plays feedback cues; implementations must not block the caller
type Player interface {
	Play(Cue)
}

// Silent is a Player that discards every cue
type Silent struct{}

// Play does nothing
func (Silent) Play(Cue) {}
