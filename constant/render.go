package constant

import "time"

// Surface limits
const (
	// MaxPixelRatio caps the device pixel ratio handed to a surface
	MaxPixelRatio = 2.0

	// LayerOpacity is the opacity of the background layer over the page
	LayerOpacity = 0.7
)

// Frame pacing
const (
	DefaultFPS = 60
	MinFPS     = 1
	MaxFPS     = 240

	// DefaultFrameInterval matches DefaultFPS
	DefaultFrameInterval = time.Second / DefaultFPS
)

// Terminal geometry
const (
	// CellSamplesY is the number of vertical samples carried by one terminal cell (half blocks)
	CellSamplesY = 2

	// HalfBlockUpper paints the top sample with Fg and the bottom sample with Bg
	HalfBlockUpper = '▀'
)

// Snapshot defaults
const (
	SnapshotWidth   = 1280
	SnapshotHeight  = 720
	SnapshotFrames  = 120
	SnapshotOutput  = "backdrop.png"
	CaptionFontSize = 14.0
)
