package glint

import (
	"time"
)

// FrameTimes tracks per frame timings of the event loop.
type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	lastTime time.Time
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

func (t *FrameTimes) Tick() {
	now := time.Now()

	if t.FrameCount > 0 {
		t.update(now.Sub(t.lastTime))
	}

	t.lastTime = now
	t.FrameCount += 1
}

// pacer sleeps the remainder of each frame to hold a fixed tick rate.
type pacer struct {
	tickRate int
	lastTick time.Time
}

func (p *pacer) pace(now time.Time) time.Duration {
	if p.tickRate <= 0 {
		p.lastTick = now
		return 0
	}

	target := time.Second / time.Duration(p.tickRate)
	elapsed := now.Sub(p.lastTick)

	var sleep time.Duration
	if !p.lastTick.IsZero() && elapsed < target {
		sleep = target - elapsed
	}

	p.lastTick = now.Add(sleep)

	return sleep
}
