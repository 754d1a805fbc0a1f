package gioapp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestTimer_ShouldGateTicks(t *testing.T) {
	assert := assert.New(t)
	clk := newFakeClock()
	tm := NewTimer(WithClock(clk), WithTickDuration(10*time.Millisecond))

	clk.Advance(12 * time.Millisecond)
	d, ok := tm.Go()
	assert.True(ok)
	assert.Equal(12*time.Millisecond, d)

	clk.Advance(4 * time.Millisecond)
	_, ok = tm.Go()
	assert.False(ok)
	assert.Equal(12*time.Millisecond, tm.Delta(), "a closed gate should not mutate the timer")

	clk.Advance(7 * time.Millisecond)
	d, ok = tm.Go()
	assert.True(ok)
	assert.Equal(11*time.Millisecond, d)
}

func TestTimer_AbsoluteTimeShouldLagOneTick(t *testing.T) {
	assert := assert.New(t)
	clk := newFakeClock()
	tm := NewTimer(WithClock(clk))

	clk.Advance(5 * time.Millisecond)
	tm.Go()
	assert.Equal(time.Duration(0), tm.AbsoluteTime())

	clk.Advance(7 * time.Millisecond)
	tm.Go()
	assert.Equal(5*time.Millisecond, tm.AbsoluteTime())

	clk.Advance(3 * time.Millisecond)
	tm.Go()
	assert.Equal(12*time.Millisecond, tm.AbsoluteTime())
}

func TestTimer_FPSShouldUpdatePerWindow(t *testing.T) {
	assert := assert.New(t)
	clk := newFakeClock()
	tm := NewTimer(WithClock(clk), WithFPSUpdateTime(200*time.Millisecond))

	for i := 0; i < 4; i++ {
		clk.Advance(50 * time.Millisecond)
		tm.Go()
	}
	// The window has to be exceeded, reaching it is not enough.
	assert.Equal(uint32(0), tm.FPS())

	clk.Advance(50 * time.Millisecond)
	tm.Go()
	assert.Equal(uint32(20), tm.FPS())
	assert.Equal(uint32(0), tm.frameCount)
	assert.Equal(time.Duration(0), tm.frameTime)

	// The rate stays put until the next window closes.
	clk.Advance(125 * time.Millisecond)
	tm.Go()
	assert.Equal(uint32(20), tm.FPS())

	clk.Advance(125 * time.Millisecond)
	tm.Go()
	assert.Equal(uint32(8), tm.FPS())
}

func TestTimer_ResetShouldKeepConfiguration(t *testing.T) {
	assert := assert.New(t)
	clk := newFakeClock()
	tm := NewTimer(WithClock(clk))
	tm.SetTickDuration(20 * time.Millisecond)
	tm.SetFPSUpdateTime(time.Second)

	for i := 0; i < 3; i++ {
		clk.Advance(25 * time.Millisecond)
		tm.Go()
	}
	assert.NotZero(tm.AbsoluteTime())

	clk.Advance(15 * time.Millisecond)
	tm.Reset()
	assert.Zero(tm.AbsoluteTime())
	assert.Equal(20*time.Millisecond, tm.TickDuration())
	assert.Equal(time.Second, tm.FPSUpdateTime())

	clk.Advance(15 * time.Millisecond)
	_, ok := tm.Go()
	assert.False(ok, "reset should restart the tick gate")
}

func TestTimer_NonPositiveSettingsShouldNotPanic(t *testing.T) {
	clk := newFakeClock()
	tm := NewTimer(WithClock(clk), WithTickDuration(-time.Millisecond), WithFPSUpdateTime(-time.Second))

	assert.NotPanics(t, func() {
		for i := 0; i < 3; i++ {
			tm.Go()
		}
	})
}

func TestTimer_SystemClockDeltaShouldApproximateElapsedTime(t *testing.T) {
	tm := NewTimer(WithTickDuration(5 * time.Millisecond))

	start := time.Now()
	tm.Reset()
	time.Sleep(6 * time.Millisecond)
	d, ok := tm.Go()
	elapsed := time.Since(start)

	assert.True(t, ok)
	assert.GreaterOrEqual(t, d, 5*time.Millisecond)
	assert.LessOrEqual(t, d, elapsed)

	_, ok = tm.Go()
	assert.False(t, ok)
}
