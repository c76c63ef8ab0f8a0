package soft

import (
	"testing"

	"github.com/sablegfx/ember/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramebufferWriteCopy(t *testing.T) {
	fb := newFramebuffer(geom.Vec2i{4, 4})

	pixels := []uint32{1, 2, 3, 4}
	err := fb.write(pixels, geom.RectFromXYWH(1, 1, 2, 2), WriteCopy, BlendAlpha)
	require.NoError(t, err)

	assert.Equal(t, []uint32{
		0, 0, 0, 0,
		0, 1, 2, 0,
		0, 3, 4, 0,
		0, 0, 0, 0,
	}, fb.pix)
}

func TestFramebufferWriteClear(t *testing.T) {
	fb := newFramebuffer(geom.Vec2i{2, 2})
	fb.fill(0xffffffff)

	err := fb.write([]uint32{7}, geom.RectFromXYWH(1, 1, 1, 1), WriteClear, BlendAlpha)
	require.NoError(t, err)

	assert.Equal(t, []uint32{0, 0, 0, 7}, fb.pix)
}

func TestFramebufferWriteErrors(t *testing.T) {
	fb := newFramebuffer(geom.Vec2i{4, 4})

	// pixel count does not match the region
	err := fb.write([]uint32{1, 2, 3}, geom.RectFromXYWH(0, 0, 2, 2), WriteCopy, BlendAlpha)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	// empty region
	err = fb.write(nil, geom.Recti{}, WriteCopy, BlendAlpha)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	// region leaves the framebuffer
	err = fb.write(make([]uint32, 4), geom.RectFromXYWH(3, 3, 2, 2), WriteCopy, BlendAlpha)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// zero sized framebuffer
	empty := newFramebuffer(geom.Vec2i{})
	err = empty.write([]uint32{1}, geom.RectFromXYWH(0, 0, 1, 1), WriteCopy, BlendAlpha)
	assert.ErrorIs(t, err, ErrSurfaceNotReady)
}

func TestFramebufferResize(t *testing.T) {
	fb := newFramebuffer(geom.Vec2i{2, 2})
	copy(fb.pix, []uint32{1, 2, 3, 4})

	fb.resize(geom.Vec2i{3, 2})

	assert.Equal(t, []uint32{
		1, 2, 0,
		3, 4, 0,
	}, fb.pix)

	fb.resize(geom.Vec2i{1, 1})
	assert.Equal(t, []uint32{1}, fb.pix)
}

func TestBlendPixelAlpha(t *testing.T) {
	// opaque source replaces the destination
	assert.Equal(t, uint32(0xff123456), blendPixel(0xff123456, 0xffffffff, BlendAlpha))

	// transparent source keeps the destination
	assert.Equal(t, uint32(0xff123456), blendPixel(0x00000000, 0xff123456, BlendAlpha))

	// half transparent red over opaque blue
	assert.Equal(t, uint32(0xff80007f), blendPixel(0x80ff0000, 0xff0000ff, BlendAlpha))
}

func TestBlendPixelAdd(t *testing.T) {
	assert.Equal(t, uint32(0x11223344), blendPixel(0x10203040, 0x01020304, BlendAdd))

	// channels saturate
	assert.Equal(t, uint32(0xffffffff), blendPixel(0x20ffff20, 0xf0fffff0, BlendAdd))
}

func TestBlendPixelSubtract(t *testing.T) {
	// destination alpha is kept
	assert.Equal(t, uint32(0xff506070), blendPixel(0x40302010, 0xff808080, BlendSubtract))

	// channels saturate at zero
	assert.Equal(t, uint32(0x10000000), blendPixel(0xffffffff, 0x10203040, BlendSubtract))
}

func TestBlendPixelMultiply(t *testing.T) {
	// white is the identity
	assert.Equal(t, uint32(0x10203040), blendPixel(0xffffffff, 0x10203040, BlendMultiply))

	// black stays black
	assert.Equal(t, uint32(0x00000000), blendPixel(0x00000000, 0xffffffff, BlendMultiply))
}

func TestFramebufferWriteBlend(t *testing.T) {
	fb := newFramebuffer(geom.Vec2i{2, 1})
	copy(fb.pix, []uint32{0x01020304, 0x01020304})

	err := fb.write([]uint32{0x10203040, 0x10203040}, geom.RectFromXYWH(0, 0, 2, 1), WriteBlend, BlendAdd)
	require.NoError(t, err)

	assert.Equal(t, []uint32{0x11223344, 0x11223344}, fb.pix)
}
