// Package host stands in for the application that owns the splash screen: it
// shows the splash and, once its (simulated) data load completes, asks the
// splash to exit.
package host

import (
	"log"
	"time"
)

// Exiter is the splash side of the data-ready signal.
type Exiter interface {
	Start()
	RequestExit() bool
}

// Controller runs a one-shot data-ready timer on the caller's update tick.
type Controller struct {
	splash    Exiter
	delay     time.Duration
	remaining time.Duration
	shown     bool
	fired     bool
}

// New returns a Controller that signals splash delay after Show.
func New(splash Exiter, delay time.Duration) *Controller {
	return &Controller{splash: splash, delay: delay, remaining: delay}
}

// Show starts the splash and arms the timer. Later calls are ignored.
func (c *Controller) Show() {
	if c.shown {
		return
	}
	c.shown = true
	c.splash.Start()
	log.Printf("host: data load started, ready in %s", c.delay)
}

// Advance moves the timer forward by dt and fires it once on expiry.
func (c *Controller) Advance(dt time.Duration) {
	if !c.shown || c.fired {
		return
	}
	c.remaining -= dt
	if c.remaining > 0 {
		return
	}
	c.fired = true
	log.Printf("host: data loaded")
	c.splash.RequestExit()
}

// Fired reports whether the data-ready signal has been sent.
func (c *Controller) Fired() bool { return c.fired }

// Elapsed returns the time since Show, capped at the delay.
func (c *Controller) Elapsed() time.Duration {
	if c.remaining < 0 {
		return c.delay
	}
	return c.delay - c.remaining
}

// TickDuration returns the length of one update tick at tps ticks per second.
// Non-positive rates (such as ebiten.SyncWithFPS) fall back to 60.
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
