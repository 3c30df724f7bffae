// Package stamp resizes animated gifs and re-encodes them to fit Slack's
// stamp limits: 128x128 pixels, 128KB, 50 frames.
package stamp

// Slack stamp requirements.
const (
	StampSize      = 128
	StampMaxBytes  = 128 * 1024
	StampMaxFrames = 50
)

// Accepted input bounds.
const (
	MinDimension = 10
	MaxDimension = 2000
	MaxFileSize  = 200 * 1024 * 1024
)

// Fallbacks for metadata the source may omit.
const (
	DefaultDurationMS = 100
	DefaultLoopCount  = 0 // infinite
)

// Quality descent used while re-encoding under a byte ceiling.
const (
	qualityStart       = 30
	qualityFloor       = 5
	qualityStep        = 5
	sweepMaxDurationMS = 50
)

// Frame-reduction rung.
const (
	aggressiveMaxFrames  = 20
	aggressiveDurationMS = 30
)

// Last-resort rung.
const (
	ultraStride    = 2
	ultraMaxFrames = 10
	ultraColors    = 64
)

// Bounds for percent-based scaling.
const (
	MinScalePercent = 10
	MaxScalePercent = 200
)
