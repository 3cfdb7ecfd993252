package game

import "time"

// Background grey.
const ClearGray = 0.3

// Frame pacing. With vsync off the loop sleeps to hold roughly 60 Hz so the
// per-frame simulation step keeps the same real-time speed.
const (
	TargetFrameTime = time.Second / 60
	MaxFrameStall   = 250 * time.Millisecond
)
