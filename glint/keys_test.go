package glint

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "A", KeyA.String())
	assert.Equal(t, "Z", KeyZ.String())
	assert.Equal(t, "0", Key0.String())
	assert.Equal(t, "9", Key9.String())
	assert.Equal(t, "F1", KeyF1.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "Space", KeySpace.String())
	assert.Equal(t, "ArrowLeft", KeyArrowLeft.String())
	assert.Equal(t, "Unknown", KeyUnknown.String())
}

func TestKeyOf(t *testing.T) {
	cases := []struct {
		glfwKey glfw.Key
		want    Key
	}{
		{glfw.KeyA, KeyA},
		{glfw.KeyZ, KeyZ},
		{glfw.Key0, Key0},
		{glfw.Key9, Key9},
		{glfw.KeyF1, KeyF1},
		{glfw.KeyF12, KeyF12},
		{glfw.KeySpace, KeySpace},
		{glfw.KeyEscape, KeyEscape},
		{glfw.KeyLeft, KeyArrowLeft},
		{glfw.KeyRightSuper, KeySuperRight},
	}

	for _, tc := range cases {
		key, ok := keyOf(tc.glfwKey)
		assert.True(t, ok)
		assert.Equal(t, tc.want, key)
	}
}
