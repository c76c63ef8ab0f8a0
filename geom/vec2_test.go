package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Arithmetic(t *testing.T) {
	a := V2(3, 4)
	b := V2(1, 2)

	assert.Equal(t, V2(4, 6), a.Add(b))
	assert.Equal(t, V2(2, 2), a.Sub(b))
	assert.Equal(t, V2(3, 8), a.Mul(b))
	assert.Equal(t, V2(3, 2), a.Div(b))
	assert.Equal(t, V2(6, 8), a.MulScalar(2))
	assert.Equal(t, 11, a.Dot(b))
}

func TestVec2Magnitude(t *testing.T) {
	assert.Equal(t, 5, V2(3, 4).Magnitude())
	assert.Equal(t, float32(5), V2[float32](3, 4).Magnitude())
	assert.Equal(t, 0, Vec2i{}.Magnitude())
}

func TestVec2Area(t *testing.T) {
	assert.Equal(t, 12, V2(3, 4).Area())
	assert.Equal(t, 0, V2(3, 0).Area())
}

func TestVec2IsZero(t *testing.T) {
	assert.True(t, Vec2i{}.IsZero())
	assert.False(t, V2(0, 1).IsZero())
	assert.False(t, V2(1, 0).IsZero())
}

func TestVec2Conversions(t *testing.T) {
	v := V2(3, 4)

	assert.Equal(t, Vec2f{3, 4}, v.ToVec2f())
	assert.Equal(t, Vec2u{3, 4}, v.ToVec2u())
	assert.Equal(t, Vec2i{3, 4}, Vec2f{3.7, 4.2}.ToVec2i())
}
