package splash

import (
	"math"

	"github.com/iburimskiy/splash/internal/anim"
	"github.com/iburimskiy/splash/internal/config"
)

// Phase is the splash state. Phases only move forward.
type Phase int

const (
	Rotating Phase = iota
	Merging
	Expanding
)

func (p Phase) String() string {
	switch p {
	case Rotating:
		return "rotating"
	case Merging:
		return "merging"
	case Expanding:
		return "expanding"
	default:
		return "unknown"
	}
}

// target names the geometry field a phase's driver writes.
type target int

const (
	targetAngle target = iota
	targetRadius
	targetHole
)

type driverSpec struct {
	anim.Spec
	target target
}

// enter returns the driver a phase runs. It has no side effects.
func enter(p Phase, g Geometry) driverSpec {
	switch p {
	case Merging:
		// Played backwards, the overshoot swells the ring outward before it collapses.
		return driverSpec{
			Spec: anim.Spec{
				From:     0,
				To:       config.BigCircleRadius,
				Duration: config.PhaseDuration,
				Easing:   anim.Overshoot(config.OvershootTension),
				Reverse:  true,
			},
			target: targetRadius,
		}
	case Expanding:
		return driverSpec{
			Spec: anim.Spec{
				From:     0,
				To:       g.HalfDiagonal,
				Duration: config.PhaseDuration,
				Easing:   anim.AccelerateDecelerate,
			},
			target: targetHole,
		}
	default:
		return driverSpec{
			Spec: anim.Spec{
				From:     0,
				To:       2 * math.Pi,
				Duration: config.PhaseDuration,
				Easing:   anim.Linear,
				Repeat:   true,
			},
			target: targetAngle,
		}
	}
}
