package constants

import "time"

// Version is shown in the status bar and by -version
const Version = "0.3.0"

// AppName names the binary, log file and window title
const AppName = "energy-calculator"

// Frame timing
const (
	// FrameInterval paces the redraw loop (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// EventBufferSize is the capacity of the input event channel
	EventBufferSize = 64
)

// UI Layout Constants
const (
	// MinWidth and MinHeight are the smallest screen the form is drawn on
	MinWidth  = 46
	MinHeight = 22

	// FormWidth caps the form width on wide terminals
	FormWidth = 56

	// FormHeight is the row count of the form including the result box
	FormHeight = 19

	// LabelColumn is where row values start
	LabelColumn = 22
)

// Input stepping
const (
	// StepLarge is the PgUp/PgDn increment for numeric rows
	StepLarge = 10

	// MaxCount bounds material, bonus and dice counts
	MaxCount = 1<<31 - 1
)
