// Package anim drives time-based value interpolation for the splash screen.
// Drivers do not own a clock: the caller advances them from its update tick,
// so every value and completion is delivered on the caller's goroutine.
package anim

import "time"

// Spec describes a single interpolation.
type Spec struct {
	From     float64
	To       float64
	Duration time.Duration
	Easing   Easing // nil means Linear

	// Repeat restarts the interpolation forever; the completion callback never fires.
	Repeat bool
	// Reverse plays the interpolation backwards in time, from To to From.
	Reverse bool
}

// ValueAt returns the interpolated value at the normalized time t.
func (s Spec) ValueAt(t float64) float64 {
	t = clamp01(t)
	if s.Reverse {
		t = 1 - t
	}
	ease := s.Easing
	if ease == nil {
		ease = Linear
	}
	return s.From + (s.To-s.From)*ease(t)
}

// Driver plays a Spec, reporting each produced value to onUpdate and the end
// of a non-repeating run to onEnd.
type Driver struct {
	spec     Spec
	elapsed  time.Duration
	running  bool
	value    float64
	onUpdate func(v float64)
	onEnd    func()
}

// New returns a stopped driver. Either callback may be nil.
func New(spec Spec, onUpdate func(v float64), onEnd func()) *Driver {
	return &Driver{
		spec:     spec,
		value:    spec.ValueAt(0),
		onUpdate: onUpdate,
		onEnd:    onEnd,
	}
}

// Start rewinds the driver and emits its initial value.
func (d *Driver) Start() {
	d.elapsed = 0
	d.running = true
	d.emit(0)
	if d.spec.Duration <= 0 && !d.spec.Repeat {
		d.finish()
	}
}

// Advance moves the driver forward by dt. It is a no-op once the driver has
// finished or been cancelled.
func (d *Driver) Advance(dt time.Duration) {
	if !d.running || dt <= 0 {
		return
	}
	if d.spec.Duration <= 0 {
		if !d.spec.Repeat {
			d.finish()
		}
		return
	}

	d.elapsed += dt
	if d.spec.Repeat {
		d.elapsed %= d.spec.Duration
		d.emit(d.fraction())
		return
	}
	if d.elapsed >= d.spec.Duration {
		d.finish()
		return
	}
	d.emit(d.fraction())
}

// Cancel stops the driver without invoking the completion callback.
func (d *Driver) Cancel() {
	d.running = false
}

// Running reports whether the driver still produces values.
func (d *Driver) Running() bool { return d.running }

// Value returns the most recently produced value.
func (d *Driver) Value() float64 { return d.value }

func (d *Driver) fraction() float64 {
	return float64(d.elapsed) / float64(d.spec.Duration)
}

func (d *Driver) emit(t float64) {
	d.value = d.spec.ValueAt(t)
	if d.onUpdate != nil {
		d.onUpdate(d.value)
	}
}

func (d *Driver) finish() {
	d.elapsed = d.spec.Duration
	d.emit(1)
	// onUpdate may have cancelled us.
	if !d.running {
		return
	}
	d.running = false
	if d.onEnd != nil {
		d.onEnd()
	}
}
