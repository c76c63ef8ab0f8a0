package forge

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestPreferredFormat(t *testing.T) {
	// BGRA8Unorm wins whenever the surface offers it
	got := preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8UnormSrgb,
		wgpu.TextureFormatBGRA8Unorm,
	})
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, got)

	// otherwise the first offered format is taken
	got = preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatRGBA8Unorm,
		wgpu.TextureFormatRGBA8UnormSrgb,
	})
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, got)

	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, preferredFormat(nil))
}

func TestViewSRGB(t *testing.T) {
	view := func(format wgpu.TextureFormat) *View {
		return &View{surfaceConfig: &wgpu.SurfaceConfiguration{Format: format}}
	}

	assert.False(t, view(wgpu.TextureFormatBGRA8Unorm).SRGB())
	assert.True(t, view(wgpu.TextureFormatBGRA8UnormSrgb).SRGB())
	assert.True(t, view(wgpu.TextureFormatRGBA8UnormSrgb).SRGB())
}

func TestPresentMode(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, presentMode(true))
	assert.Equal(t, wgpu.PresentModeImmediate, presentMode(false))
}
