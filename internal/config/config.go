package config

import (
	"time"

	"golang.org/x/image/colornames"
)

const (
	WindowWidth  = 540
	WindowHeight = 960

	// Ring geometry
	BigCircleRadius   = 90.0
	SmallCircleRadius = 18.0

	// Animation timing
	PhaseDuration    = 1000 * time.Millisecond
	OvershootTension = 10.0

	// DataReadyDelay stands in for the host's data loading.
	DataReadyDelay = 5000 * time.Millisecond

	// Collapse sound cue
	SampleRate   = 44100
	CueFrequency = 660.0
	CueDuration  = 150 * time.Millisecond
)

// BackgroundColor covers the content until the reveal.
var BackgroundColor = colornames.White
