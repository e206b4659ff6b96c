// The loop package provides variable and fixed timestep frame loops.
//
package loop

import (
	"time"
)

// EventProcessor wraps the ProcessEvents method.
//
// ProcessEvents is called at the top of each loop iteration. The loop exits
// as soon as it returns true.
//
type EventProcessor interface {
	ProcessEvents() (quit bool)
}

// Updater is the interface implemented by applications driven by a loop.
//
// Update is called with the time elapsed since the previous update, Draw is
// called once per iteration after all updates. Applications that need to swap
// buffers should do it at the end of Draw.
//
type Updater interface {
	EventProcessor
	Update(dt time.Duration)
	Draw()
}

// FrameStarter is the interface implemented by any Updater that wants the
// clock time at the beginning of each loop iteration.
//
type FrameStarter interface {
	FrameStart(now time.Duration)
}

// A Clock returns a monotonic time since some arbitrary origin.
//
type Clock interface {
	Now() time.Duration
}

// ClockFunc adapts a function to the Clock interface.
//
type ClockFunc func() time.Duration

// Now implements Clock.
//
func (f ClockFunc) Now() time.Duration { return f() }

// Seconds returns a Clock from a function returning a time in seconds, like
// the timers of most windowing libraries.
//
func Seconds(f func() float64) Clock {
	return ClockFunc(func() time.Duration {
		return time.Duration(f() * float64(time.Second))
	})
}

var origin = time.Now()

// SystemClock returns the time elapsed since program start.
//
var SystemClock Clock = ClockFunc(func() time.Duration { return time.Since(origin) })

// Default timings.
const (
	DefaultDT    time.Duration = time.Second / 240
	DefaultMaxFT time.Duration = time.Second
)

// Simple is a variable timestep loop: Update is called once per iteration with
// the measured frame time.
//
type Simple struct {
	Clock Clock         // defaults to SystemClock
	MaxFT time.Duration // maximum frame time, defaults to DefaultMaxFT

	ticker *time.Ticker
	minFT  time.Duration
}

// MinFrameTime sets the minimum frame time.
//
// If the t value is greater than 0, the frame rate will be clamped
// to time.Second/t.
//
func (l *Simple) MinFrameTime(t time.Duration) {
	if t == l.minFT {
		return
	}
	l.stopTicker()
	l.minFT = t
	if l.minFT > 0 {
		l.ticker = time.NewTicker(l.minFT)
	}
}

func (l *Simple) init() {
	if l.Clock == nil {
		l.Clock = SystemClock
	}
	if l.MaxFT == 0 {
		l.MaxFT = DefaultMaxFT
	}
}

func (l *Simple) now() time.Duration {
	if l.ticker != nil {
		<-l.ticker.C
	}
	return l.Clock.Now()
}

func (l *Simple) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
}

// frameTime returns the clamped time elapsed since *prev and updates *prev.
//
func (l *Simple) frameTime(prev *time.Duration) (now, ft time.Duration) {
	now = l.now()
	ft = now - *prev
	if ft > l.MaxFT {
		ft = l.MaxFT
	}
	if ft < 0 {
		ft = 0
	}
	*prev = now
	return now, ft
}

// Run runs a until its ProcessEvents method returns true.
//
func (l *Simple) Run(a Updater) {
	l.init()
	fStart, _ := a.(FrameStarter)
	tPrev := l.Clock.Now()
	for !a.ProcessEvents() {
		now, ft := l.frameTime(&tPrev)
		if fStart != nil {
			fStart.FrameStart(now)
		}
		a.Update(ft)
		a.Draw()
	}
	l.stopTicker()
}

// FixedStep is a fixed timestep loop: Update is called with a constant
// timestep as many times as needed to catch up with the clock, then Draw is
// called once.
//
type FixedStep struct {
	Simple
	DT time.Duration // timestep, defaults to DefaultDT
}

// Run runs a until its ProcessEvents method returns true.
//
func (l *FixedStep) Run(a Updater) {
	var (
		tAcc   time.Duration
		fStart FrameStarter
	)

	l.init()
	fStart, _ = a.(FrameStarter)
	if l.DT == 0 {
		l.DT = DefaultDT
	}

	tPrev := l.Clock.Now()
	for !a.ProcessEvents() {
		now, ft := l.frameTime(&tPrev)
		tAcc += ft
		if fStart != nil {
			fStart.FrameStart(now)
		}
		for dt := l.DT; tAcc >= dt; tAcc -= dt {
			a.Update(dt)
		}
		a.Draw()
	}
	l.stopTicker()
}
