package parameter

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the frame driver tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameRate is the nominal frames per second matching FrameUpdateInterval
	FrameRate = 60

	// MaxFrameDelta caps a single simulation step in seconds
	// A stalled terminal or a debugger pause must not launch fish across the map
	MaxFrameDelta = 0.1

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 256
)

// Logging
const (
	// LogDir is the default directory for debug logs
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "fishyman.log"
)
