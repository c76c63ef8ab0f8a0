package soft

import (
	"fmt"
	"log/slog"

	"github.com/sablegfx/ember/geom"
	"github.com/sablegfx/ember/glint"
)

// PixelBuffer is a cpu addressable framebuffer bound to a window. Writes
// compose into local memory, Present pushes the result onto the window
// surface. The buffer tracks the window size.
type PixelBuffer struct {
	win *glint.Window

	fb framebuffer
	pr *presenter

	detached bool
}

type softAttachment struct {
	pb *PixelBuffer
}

func (a *softAttachment) Resized(size geom.Vec2i) {
	a.pb.fb.resize(size)
	a.pb.pr.resize(size)
}

func (a *softAttachment) Detach() {
	a.pb.pr.release()
	a.pb.detached = true
}

// PixelBufferBuilder configures a PixelBuffer. A window is required.
type PixelBufferBuilder struct {
	window *glint.Window
	vsync  bool
}

func NewPixelBuffer(win *glint.Window) *PixelBufferBuilder {
	return &PixelBufferBuilder{window: win, vsync: true}
}

func (b *PixelBufferBuilder) Window(win *glint.Window) *PixelBufferBuilder {
	b.window = win
	return b
}

func (b *PixelBufferBuilder) VSync(vsync bool) *PixelBufferBuilder {
	b.vsync = vsync
	return b
}

func (b *PixelBufferBuilder) Build() (*PixelBuffer, error) {
	if b.window == nil {
		return nil, ErrNoWindow
	}

	if b.window.AttachedKind() == glint.AttachmentGPU {
		return nil, fmt.Errorf("pixel buffer: %w", glint.ErrWindowOccupied)
	}

	pr, err := newPresenter(b.window, b.vsync)
	if err != nil {
		return nil, err
	}

	pb := &PixelBuffer{
		win: b.window,
		fb:  newFramebuffer(b.window.Size()),
		pr:  pr,
	}

	if err := b.window.Attach(glint.AttachmentSoftware, &softAttachment{pb}); err != nil {
		pr.release()
		return nil, err
	}

	slog.Info("Pixel buffer created",
		slog.Uint64("window", uint64(b.window.ID())),
		slog.Any("size", pb.fb.size))

	return pb, nil
}

func (pb *PixelBuffer) Window() *glint.Window {
	return pb.win
}

// Size returns the framebuffer size in pixels.
func (pb *PixelBuffer) Size() geom.Vec2i {
	return pb.fb.size
}

// Pixels exposes the framebuffer as packed 0xAARRGGBB values, row major.
// The slice is invalidated by the next resize.
func (pb *PixelBuffer) Pixels() []uint32 {
	return pb.fb.pix
}

// WriteOptions selects the target region and compositing of a Write. The
// zero value writes the full framebuffer in copy mode.
type WriteOptions struct {
	Origin geom.Vec2i

	// size of the written region, zero means full framebuffer
	Size geom.Vec2i

	Mode  WriteMode
	Blend BlendMode
}

// Write composes pixels into the framebuffer. The pixel slice must
// match the target region exactly.
func (pb *PixelBuffer) Write(pixels []uint32, opts WriteOptions) error {
	if pb.detached {
		return ErrDetached
	}

	size := opts.Size
	if size[0] < 0 || size[1] < 0 {
		return ErrSizeMismatch
	}

	if size.IsZero() {
		size = pb.fb.size
	}

	region := geom.RectFromSize(opts.Origin, size)

	return pb.fb.write(pixels, region, opts.Mode, opts.Blend)
}

// Fill sets every pixel of the framebuffer to the given color.
func (pb *PixelBuffer) Fill(color geom.Color) error {
	if pb.detached {
		return ErrDetached
	}

	pb.fb.fill(color.PackARGB())

	return nil
}

// Present uploads the framebuffer and shows it on the window.
func (pb *PixelBuffer) Present() error {
	if pb.detached {
		return ErrDetached
	}

	if pb.fb.size.IsZero() {
		return ErrSurfaceNotReady
	}

	return pb.pr.present(&pb.fb)
}

// Release frees the gpu resources and unbinds the buffer from its
// window. The window may take a new rendering context afterwards.
func (pb *PixelBuffer) Release() {
	if pb.detached {
		return
	}

	pb.win.DetachContext()
}
