package soft

import (
	"testing"

	"github.com/sablegfx/ember/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequiresWindow(t *testing.T) {
	_, err := NewPixelBuffer(nil).Build()
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestWriteDefaultsToFullFramebuffer(t *testing.T) {
	pb := &PixelBuffer{fb: newFramebuffer(geom.Vec2i{2, 2})}

	err := pb.Write([]uint32{1, 2, 3, 4}, WriteOptions{})
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 2, 3, 4}, pb.Pixels())
}

func TestWriteRegion(t *testing.T) {
	pb := &PixelBuffer{fb: newFramebuffer(geom.Vec2i{3, 3})}

	err := pb.Write([]uint32{7}, WriteOptions{
		Origin: geom.Vec2i{1, 1},
		Size:   geom.Vec2i{1, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(7), pb.Pixels()[4])
}

func TestWriteRejectsNegativeSize(t *testing.T) {
	pb := &PixelBuffer{fb: newFramebuffer(geom.Vec2i{3, 3})}

	// a negative size must not normalize into a valid region
	err := pb.Write([]uint32{7}, WriteOptions{
		Origin: geom.Vec2i{2, 2},
		Size:   geom.Vec2i{-1, -1},
	})
	assert.ErrorIs(t, err, ErrSizeMismatch)

	for _, px := range pb.Pixels() {
		assert.Zero(t, px)
	}
}

func TestWriteAfterDetach(t *testing.T) {
	pb := &PixelBuffer{fb: newFramebuffer(geom.Vec2i{2, 2}), detached: true}

	err := pb.Write([]uint32{1, 2, 3, 4}, WriteOptions{})
	assert.ErrorIs(t, err, ErrDetached)

	assert.ErrorIs(t, pb.Fill(geom.ColorBlack), ErrDetached)
	assert.ErrorIs(t, pb.Present(), ErrDetached)
}

func TestFill(t *testing.T) {
	pb := &PixelBuffer{fb: newFramebuffer(geom.Vec2i{2, 1})}

	require.NoError(t, pb.Fill(geom.ColorRed))

	assert.Equal(t, []uint32{0xffff0000, 0xffff0000}, pb.Pixels())
}

func TestModeStrings(t *testing.T) {
	assert.Equal(t, "Copy", WriteCopy.String())
	assert.Equal(t, "Clear", WriteClear.String())
	assert.Equal(t, "Blend", WriteBlend.String())

	assert.Equal(t, "Alpha", BlendAlpha.String())
	assert.Equal(t, "Add", BlendAdd.String())
	assert.Equal(t, "Subtract", BlendSubtract.String())
	assert.Equal(t, "Multiply", BlendMultiply.String())
}
