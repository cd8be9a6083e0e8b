package anim

import "math"

// Easing maps normalized elapsed time [0,1] to normalized progress.
// Progress may leave [0,1] for curves that overshoot.
type Easing func(t float64) float64

// Linear advances at a constant rate.
func Linear(t float64) float64 { return t }

// AccelerateDecelerate starts and ends slowly and speeds up through the middle.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Overshoot flings past the target and settles back. Larger tension means a
// bigger overshoot; a tension of 0 degenerates to a cubic ease-out.
func Overshoot(tension float64) Easing {
	return func(t float64) float64 {
		t -= 1
		return t*t*((tension+1)*t+tension) + 1
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
