// Package splash implements the splash screen: a rotating ring of dots that,
// once the host reports its data is ready, collapses to the center and then
// opens a growing hole that reveals the content underneath.
package splash

import (
	"image/color"
	"log"
	"time"

	"github.com/iburimskiy/splash/internal/anim"
	"github.com/iburimskiy/splash/internal/config"
)

// Canvas is the drawing surface a Sequencer renders onto.
type Canvas interface {
	Fill(c color.Color)
	DrawCircle(cx, cy, r float64, c color.Color)
	DrawStrokedCircle(cx, cy, r, strokeWidth float64, c color.Color)
}

// Sequencer owns the splash state machine and its single animation driver.
// All methods must be called from the same goroutine (the render loop).
type Sequencer struct {
	// OnEnter, if set, is called after each phase change.
	OnEnter func(p Phase)
	// OnFinished, if set, is called once when the reveal completes.
	OnFinished func()

	phase        Phase
	started      bool
	pendingMerge bool
	finished     bool
	detached     bool

	geom       Geometry
	colors     []color.Color
	background color.Color
	driver     *anim.Driver
}

// New returns a Sequencer for the given circle colors. Nothing animates until
// Start is called.
func New(colors []color.Color) *Sequencer {
	cs := make([]color.Color, len(colors))
	copy(cs, colors)
	return &Sequencer{
		phase:      Rotating,
		colors:     cs,
		background: config.BackgroundColor,
		geom:       Geometry{Radius: config.BigCircleRadius},
	}
}

// Start begins the rotating phase. Later calls are ignored.
func (s *Sequencer) Start() {
	if s.started || s.detached || s.pendingMerge {
		return
	}
	s.enter(Rotating)
}

// RequestExit asks the ring to leave the rotating phase. The switch to merging
// happens on the next Draw. It reports whether the request was accepted.
func (s *Sequencer) RequestExit() bool {
	if s.detached || s.phase != Rotating || s.pendingMerge {
		return false
	}
	if s.driver != nil {
		s.driver.Cancel()
	}
	s.pendingMerge = true
	log.Printf("splash: exit requested")
	return true
}

// Resize updates the geometry for a new surface size.
func (s *Sequencer) Resize(w, h int) {
	s.geom.Resize(w, h)
}

// Update advances the active driver by dt.
func (s *Sequencer) Update(dt time.Duration) {
	if s.detached || s.driver == nil {
		return
	}
	s.driver.Advance(dt)
}

// Draw renders the current phase, applying a pending merge first.
func (s *Sequencer) Draw(c Canvas) {
	if s.detached {
		return
	}
	if s.pendingMerge {
		s.pendingMerge = false
		s.enter(Merging)
	}

	s.drawBackground(c)
	if s.phase != Expanding {
		s.drawCircles(c)
	}
}

// Detach stops all animation. Callbacks still queued on the driver become no-ops.
func (s *Sequencer) Detach() {
	s.detached = true
	if s.driver != nil {
		s.driver.Cancel()
	}
}

// Phase returns the current phase.
func (s *Sequencer) Phase() Phase { return s.phase }

// Geometry returns a snapshot of the drawing model.
func (s *Sequencer) Geometry() Geometry { return s.geom }

// Finished reports whether the reveal has completed.
func (s *Sequencer) Finished() bool { return s.finished }

// Animating reports whether a driver is currently producing values.
func (s *Sequencer) Animating() bool {
	return s.driver != nil && s.driver.Running()
}

func (s *Sequencer) enter(p Phase) {
	if s.driver != nil {
		s.driver.Cancel()
	}
	s.started = true
	s.phase = p
	spec := enter(p, s.geom)

	var onEnd func()
	switch p {
	case Merging:
		onEnd = func() {
			if s.detached || s.phase != Merging {
				return
			}
			s.enter(Expanding)
		}
	case Expanding:
		onEnd = s.finish
	}

	d := anim.New(spec.Spec, func(v float64) {
		if s.detached {
			return
		}
		s.geom.apply(spec.target, v)
	}, onEnd)
	s.driver = d

	log.Printf("splash: entering %s", p)
	if s.OnEnter != nil {
		s.OnEnter(p)
	}
	d.Start()
}

func (s *Sequencer) finish() {
	if s.detached || s.finished {
		return
	}
	s.finished = true
	log.Printf("splash: reveal finished")
	if s.OnFinished != nil {
		s.OnFinished()
	}
}

func (s *Sequencer) drawBackground(c Canvas) {
	g := s.geom
	if g.HoleRadius <= 0 {
		c.Fill(s.background)
		return
	}
	width := g.HalfDiagonal - g.HoleRadius
	c.DrawStrokedCircle(g.CenterX, g.CenterY, g.HoleRadius+width/2, width, s.background)
}

func (s *Sequencer) drawCircles(c Canvas) {
	n := len(s.colors)
	if n == 0 {
		return
	}
	for i, clr := range s.colors {
		x, y := s.geom.CirclePosition(i, n)
		c.DrawCircle(x, y, config.SmallCircleRadius, clr)
	}
}
