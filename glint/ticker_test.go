package glint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimesUpdate(t *testing.T) {
	var times FrameTimes

	times.update(16 * time.Millisecond)

	assert.Equal(t, 16*time.Millisecond, times.Delta)
	assert.Equal(t, 16*time.Millisecond, times.AverageDuration)
	assert.Equal(t, 16*time.Millisecond, times.MaxDuration)

	times.update(32 * time.Millisecond)

	assert.Equal(t, 32*time.Millisecond, times.Delta)
	assert.Equal(t, 32*time.Millisecond, times.MaxDuration)
}

func TestFrameTimesAverageConverges(t *testing.T) {
	times := FrameTimes{FrameCount: 1000}

	for range 512 {
		times.update(10 * time.Millisecond)
	}

	assert.InDelta(t, 10, times.AverageDuration.Seconds()*1000, 0.5)
}

func TestFrameTimesFPS(t *testing.T) {
	var times FrameTimes
	assert.Equal(t, float64(0), times.FPS())

	times.AverageDuration = 20 * time.Millisecond
	assert.InDelta(t, 50, times.FPS(), 0.001)
}

func TestPacerWithoutTickRate(t *testing.T) {
	var p pacer

	now := time.Unix(0, 0)

	assert.Equal(t, time.Duration(0), p.pace(now))
	assert.Equal(t, time.Duration(0), p.pace(now.Add(time.Millisecond)))
}

func TestPacer(t *testing.T) {
	p := pacer{tickRate: 100}

	now := time.Unix(0, 0)

	// the first tick establishes the baseline
	assert.Equal(t, time.Duration(0), p.pace(now))

	// a fast frame sleeps the remainder of the 10ms budget
	sleep := p.pace(now.Add(4 * time.Millisecond))
	assert.Equal(t, 6*time.Millisecond, sleep)

	// a slow frame does not sleep at all
	sleep = p.pace(now.Add(30 * time.Millisecond))
	assert.Equal(t, time.Duration(0), sleep)
}
