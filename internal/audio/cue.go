// Package audio plays the short tone that marks the ring collapsing.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Cue is a synthesized, decaying sine blip.
type Cue struct {
	sampleRate beep.SampleRate
	freq       float64
	length     time.Duration
}

// NewCue initializes the speaker at sampleRate. It must be called at most once.
func NewCue(sampleRate beep.SampleRate, freq float64, length time.Duration) (*Cue, error) {
	bufferSize := sampleRate.N(time.Second / 20)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Cue{sampleRate: sampleRate, freq: freq, length: length}, nil
}

// Play starts the cue without blocking; overlapping plays mix.
func (c *Cue) Play() {
	speaker.Play(&effects.Volume{
		Streamer: tone(c.sampleRate, c.freq, c.length),
		Base:     2,
		Volume:   -1,
	})
}

func tone(sr beep.SampleRate, freq float64, length time.Duration) beep.Streamer {
	total := sr.N(length)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			env := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * env * env
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}
