package gioapp

import "time"

// Clock is the source of time used by a Timer.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock, backed by the monotonic system clock.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

const (
	defaultTickDuration  = time.Millisecond
	defaultFPSUpdateTime = 250 * time.Millisecond
)

// Timer gates the update ticks of the application loop and keeps track of the frame rate.
//
// Go yields at most once per tick duration; it is a ceiling on the update rate,
// it never asks for extra wakeups.
type Timer struct {
	clock Clock

	last          time.Time
	fps           uint32
	lastDelta     time.Duration
	tickDuration  time.Duration
	frameCount    uint32
	frameTime     time.Duration
	fpsUpdateTime time.Duration

	absTime time.Duration
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithClock replaces the system clock.
func WithClock(c Clock) TimerOption {
	return func(t *Timer) { t.clock = c }
}

// WithTickDuration sets the minimum time between two ticks.
func WithTickDuration(d time.Duration) TimerOption {
	return func(t *Timer) { t.tickDuration = d }
}

// WithFPSUpdateTime sets how often the frame rate is recomputed.
func WithFPSUpdateTime(d time.Duration) TimerOption {
	return func(t *Timer) { t.fpsUpdateTime = d }
}

// NewTimer returns a Timer with a 1ms tick duration and a 250ms frame rate window.
func NewTimer(opts ...TimerOption) *Timer {
	t := &Timer{
		clock:         SystemClock,
		tickDuration:  defaultTickDuration,
		fpsUpdateTime: defaultFPSUpdateTime,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.last = t.clock.Now()
	return t
}

// Reset sets the time back to 0.
func (t *Timer) Reset() {
	t.last = t.clock.Now()
	t.absTime = 0
}

// Go returns the time elapsed since Go last succeeded.
// If less than the tick duration has elapsed it returns false and leaves
// the timer untouched, meaning it is not yet time for the next tick.
func (t *Timer) Go() (time.Duration, bool) {
	now := t.clock.Now()
	delta := now.Sub(t.last)
	if delta < t.tickDuration {
		return 0, false
	}

	// The absolute time trails by one tick: it is advanced by the delta of
	// the previous tick. Applications rely on this, keep it.
	t.absTime += t.lastDelta

	t.frameCount++
	t.frameTime += delta
	if t.frameTime > t.fpsUpdateTime {
		t.fps = uint32(float64(t.frameCount) / t.frameTime.Seconds())
		t.frameCount = 0
		t.frameTime = 0
	}

	t.lastDelta = delta
	t.last = now
	return delta, true
}

// SetTickDuration sets how much time should pass before the next tick.
// The value is not validated.
func (t *Timer) SetTickDuration(d time.Duration) {
	t.tickDuration = d
}

// SetFPSUpdateTime sets how often the frame rate is updated. Short windows react
// faster, longer ones are steadier and more accurate.
// The value is not validated.
func (t *Timer) SetFPSUpdateTime(d time.Duration) {
	t.fpsUpdateTime = d
}

// TickDuration returns the minimum time between two ticks.
func (t *Timer) TickDuration() time.Duration {
	return t.tickDuration
}

// FPSUpdateTime returns the frame rate window.
func (t *Timer) FPSUpdateTime() time.Duration {
	return t.fpsUpdateTime
}

// FPS returns the approximate frame rate.
func (t *Timer) FPS() uint32 {
	return t.fps
}

// Delta returns the duration of the last tick, the value last returned by Go.
func (t *Timer) Delta() time.Duration {
	return t.lastDelta
}

// AbsoluteTime returns the time accumulated since the Timer was created or last reset.
func (t *Timer) AbsoluteTime() time.Duration {
	return t.absTime
}
