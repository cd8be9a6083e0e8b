package host

import (
	"testing"
	"time"
)

type fakeSplash struct {
	starts int
	exits  int
}

func (f *fakeSplash) Start() { f.starts++ }

func (f *fakeSplash) RequestExit() bool {
	f.exits++
	return f.exits == 1
}

func TestControllerFiresOnce(t *testing.T) {
	cases := []struct {
		name      string
		step      time.Duration
		steps     int
		wantExits int
	}{
		{"before_delay", time.Second, 4, 0},
		{"exactly_at_delay", time.Second, 5, 1},
		{"long_after_delay", time.Second, 50, 1},
		{"frame_ticks", time.Second / 60, 60 * 6, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := &fakeSplash{}
			ctl := New(f, 5*time.Second)
			ctl.Show()
			for i := 0; i < c.steps; i++ {
				ctl.Advance(c.step)
			}
			if f.exits != c.wantExits {
				t.Fatalf("expected %d exit requests, got %d", c.wantExits, f.exits)
			}
			if ctl.Fired() != (c.wantExits == 1) {
				t.Fatalf("Fired() = %v", ctl.Fired())
			}
		})
	}
}

func TestControllerWaitsForShow(t *testing.T) {
	f := &fakeSplash{}
	ctl := New(f, time.Second)
	ctl.Advance(10 * time.Second)
	if f.exits != 0 || f.starts != 0 {
		t.Fatalf("timer ran before Show: starts=%d exits=%d", f.starts, f.exits)
	}

	ctl.Show()
	ctl.Show()
	if f.starts != 1 {
		t.Fatalf("expected one Start, got %d", f.starts)
	}
	ctl.Advance(500 * time.Millisecond)
	if got := ctl.Elapsed(); got != 500*time.Millisecond {
		t.Fatalf("Elapsed() = %v", got)
	}
	ctl.Advance(time.Second)
	if f.exits != 1 || ctl.Elapsed() != time.Second {
		t.Fatalf("exits=%d elapsed=%v", f.exits, ctl.Elapsed())
	}
}

func TestTickDuration(t *testing.T) {
	cases := []struct {
		name string
		tps  int
		want time.Duration
	}{
		{"default", 60, time.Second / 60},
		{"fast", 120, time.Second / 120},
		{"sync_with_fps", -1, time.Second / 60},
		{"zero", 0, time.Second / 60},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := TickDuration(c.tps); got != c.want {
				t.Fatalf("TickDuration(%d) = %v, want %v", c.tps, got, c.want)
			}
		})
	}
}

func TestNegativeRateStillFires(t *testing.T) {
	f := &fakeSplash{}
	ctl := New(f, time.Second)
	ctl.Show()
	for i := 0; i < 61; i++ {
		ctl.Advance(TickDuration(-1))
	}
	if !ctl.Fired() || f.exits != 1 {
		t.Fatalf("timer did not fire: fired=%v exits=%d", ctl.Fired(), f.exits)
	}
}
