package forge

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View owns the surface configuration of a Context that renders to a
// window. It reconfigures the swapchain on resize and hands out frames.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration
	vsync         bool
}

func NewView(ctx *Context, vsync bool) (*View, error) {
	if ctx.Headless() {
		return nil, fmt.Errorf("cannot create a view on a headless context")
	}

	vs := &View{Context: ctx, vsync: vsync}

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	vs.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      preferredFormat(caps.Formats),
		PresentMode: presentMode(vsync),
		AlphaMode:   caps.AlphaModes[0],

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}

	return vs, nil
}

// preferredFormat picks the surface format, favoring BGRA8Unorm which
// matches the packed pixel layout of the software path.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, format := range formats {
		if format == wgpu.TextureFormatBGRA8Unorm {
			return format
		}
	}

	if len(formats) > 0 {
		return formats[0]
	}

	return wgpu.TextureFormatBGRA8Unorm
}

func presentMode(vsync bool) wgpu.PresentMode {
	if vsync {
		return wgpu.PresentModeFifo
	}

	return wgpu.PresentModeImmediate
}

// Configure sizes the surface. Must be called before the first frame
// and again whenever the window framebuffer size changes.
func (vs *View) Configure(width, height uint32) {
	if width == 0 || height == 0 {
		// minimized, keep the old configuration
		return
	}

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)
}

func (vs *View) Size() (width, height uint32) {
	return vs.surfaceConfig.Width, vs.surfaceConfig.Height
}

func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

// SRGB reports whether the surface format applies srgb encoding.
func (vs *View) SRGB() bool {
	switch vs.surfaceConfig.Format {
	case wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb:
		return true
	default:
		return false
	}
}

func (vs *View) VSync() bool {
	return vs.vsync
}

// SetVSync switches the present mode. Takes effect with the next
// Configure call.
func (vs *View) SetVSync(vsync bool) {
	vs.vsync = vsync
	vs.surfaceConfig.PresentMode = presentMode(vsync)

	if vs.surfaceConfig.Width > 0 && vs.surfaceConfig.Height > 0 {
		vs.Surface.Configure(vs.Device, vs.surfaceConfig)
	}
}

// Frame is one acquired swapchain image. Render to View and finish
// with either Present or Discard.
type Frame struct {
	Texture *wgpu.Texture
	View    *wgpu.TextureView

	view *View
}

// Acquire fetches the next swapchain texture.
func (vs *View) Acquire() (*Frame, error) {
	texture, err := vs.Surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("get current texture: %w", err)
	}

	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, fmt.Errorf("create surface texture view: %w", err)
	}

	return &Frame{
		Texture: texture,
		View:    textureView,
		view:    vs,
	}, nil
}

// Present shows the frame on screen and releases it.
func (f *Frame) Present() {
	f.View.Release()
	f.view.Surface.Present()

	f.Texture = nil
	f.View = nil
}

// Discard drops the frame without presenting it.
func (f *Frame) Discard() {
	if f.View != nil {
		f.View.Release()
		f.View = nil
	}

	if f.Texture != nil {
		f.Texture.Release()
		f.Texture = nil
	}
}
