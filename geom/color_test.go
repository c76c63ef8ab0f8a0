package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackARGB(t *testing.T) {
	assert.Equal(t, uint32(0xffffffff), ColorWhite.PackARGB())
	assert.Equal(t, uint32(0xff000000), ColorBlack.PackARGB())
	assert.Equal(t, uint32(0x00000000), ColorTransparent.PackARGB())
	assert.Equal(t, uint32(0xffff0000), ColorRed.PackARGB())
	assert.Equal(t, uint32(0xff00ff00), ColorGreen.PackARGB())
	assert.Equal(t, uint32(0xff0000ff), ColorBlue.PackARGB())
	assert.Equal(t, uint32(0xff6495ed), ColorCornflower.PackARGB())

	// out of range components are clamped
	assert.Equal(t, uint32(0xffff0000), RGBA(2, -1, 0, 1).PackARGB())
}

func TestUnpackARGBRoundtrip(t *testing.T) {
	pixels := []uint32{0xffffffff, 0x00000000, 0x80402010, 0xff6495ed}

	for _, pixel := range pixels {
		assert.Equal(t, pixel, UnpackARGB(pixel).PackARGB())
	}
}

func TestColorLerp(t *testing.T) {
	assert.Equal(t, ColorBlack, ColorBlack.Lerp(ColorWhite, 0))
	assert.Equal(t, ColorWhite, ColorBlack.Lerp(ColorWhite, 1))
	assert.Equal(t, RGBA(0.5, 0.5, 0.5, 1), ColorBlack.Lerp(ColorWhite, 0.5))

	// t is clamped
	assert.Equal(t, ColorWhite, ColorBlack.Lerp(ColorWhite, 2))
}

func TestColorWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(0.5)

	assert.Equal(t, float32(0.5), c.A)
	assert.Equal(t, float32(1), c.R)
	assert.Equal(t, float32(1), ColorRed.A)
}
