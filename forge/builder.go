package forge

import (
	"fmt"
	"log/slog"

	"github.com/sablegfx/ember/geom"
	"github.com/sablegfx/ember/glint"
)

// GPU is a rendering context bound to a window, or a headless compute
// context when built without one. For a window bound GPU the View keeps
// the surface configured to the window size.
type GPU struct {
	*Context

	// nil for a headless GPU
	View *View

	win *glint.Window
}

func (g *GPU) Window() *glint.Window {
	return g.win
}

type gpuAttachment struct {
	g *GPU
}

func (a *gpuAttachment) Resized(size geom.Vec2i) {
	a.g.View.Configure(uint32(size[0]), uint32(size[1]))
}

func (a *gpuAttachment) Detach() {
	a.g.win = nil
	a.g.Release()
}

// Release frees the context. A window bound GPU first unbinds from its
// window so the window may take a new rendering context afterwards.
func (g *GPU) Release() {
	if g.win != nil {
		g.win.DetachContext()
		return
	}

	g.Context.Release()
}

// ContextBuilder configures a GPU context. Zero or one window may be
// bound; without a window the context is headless.
type ContextBuilder struct {
	window  *glint.Window
	adapter *AdapterInfo
	limits  *Limits
	vsync   bool
}

func NewGPU(win *glint.Window) *ContextBuilder {
	return &ContextBuilder{window: win, vsync: true}
}

func (b *ContextBuilder) Window(win *glint.Window) *ContextBuilder {
	b.window = win
	return b
}

// Adapter pins the context to a specific gpu, see QueryAdapters. Build
// takes ownership of the adapter handle.
func (b *ContextBuilder) Adapter(info *AdapterInfo) *ContextBuilder {
	b.adapter = info
	return b
}

func (b *ContextBuilder) Limits(limits Limits) *ContextBuilder {
	b.limits = &limits
	return b
}

func (b *ContextBuilder) VSync(vsync bool) *ContextBuilder {
	b.vsync = vsync
	return b
}

func (b *ContextBuilder) Build() (*GPU, error) {
	opts := contextOptions{
		adapter: b.adapter,
		limits:  b.limits,
	}

	if b.window != nil {
		if b.window.AttachedKind() == glint.AttachmentSoftware {
			return nil, fmt.Errorf("gpu context: %w", glint.ErrWindowOccupied)
		}

		opts.surface = b.window.SurfaceDescriptor()
	}

	ctx, err := newContext(opts)
	if err != nil {
		return nil, fmt.Errorf("initialize webgpu: %w", err)
	}

	g := &GPU{Context: ctx, win: b.window}

	if b.window == nil {
		slog.Info("Headless gpu context created")
		return g, nil
	}

	view, err := NewView(ctx, b.vsync)
	if err != nil {
		ctx.Release()
		return nil, fmt.Errorf("create view: %w", err)
	}

	g.View = view

	size := b.window.Size()
	view.Configure(uint32(size[0]), uint32(size[1]))

	if err := b.window.Attach(glint.AttachmentGPU, &gpuAttachment{g: g}); err != nil {
		ctx.Release()
		return nil, fmt.Errorf("gpu context: %w", err)
	}

	return g, nil
}
