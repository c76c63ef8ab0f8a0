package glint

import (
	"errors"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sablegfx/ember/geom"
)

type WindowID uint64

type AttachmentKind int

const (
	AttachmentNone AttachmentKind = iota
	AttachmentGPU
	AttachmentSoftware
)

func (k AttachmentKind) String() string {
	switch k {
	case AttachmentGPU:
		return "gpu"
	case AttachmentSoftware:
		return "software"
	default:
		return "none"
	}
}

// ErrWindowOccupied is returned when attaching a rendering context to a
// window that already owns a context of a different kind. A window holds
// either a software pixel buffer or a gpu context, never both.
var ErrWindowOccupied = errors.New("window already owns a rendering context")

// Attachment is a rendering context bound to a window. The Runner calls
// Resized when the framebuffer size changes and Detach right before the
// native window goes away.
type Attachment interface {
	Resized(size geom.Vec2i)
	Detach()
}

// Window wraps a native window created through a Runner.
type Window struct {
	id     WindowID
	win    *glfw.Window
	runner *Runner
	input  InputState
	size   geom.Vec2i

	prof interface{ Stop() }

	attachKind AttachmentKind
	attachment Attachment
}

func (w *Window) ID() WindowID {
	return w.id
}

// Size returns the current framebuffer size in pixels.
func (w *Window) Size() geom.Vec2i {
	return w.size
}

func (w *Window) Position() geom.Vec2i {
	x, y := w.win.GetPos()
	return geom.Vec2i{x, y}
}

// Input exposes the keyboard and mouse state of this window. The state
// is refreshed by Runner.Poll.
func (w *Window) Input() *InputState {
	return &w.input
}

func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *Window) SetSize(size geom.Vec2i) {
	w.win.SetSize(size[0], size[1])
}

func (w *Window) SetPosition(pos geom.Vec2i) {
	w.win.SetPos(pos[0], pos[1])
}

func (w *Window) SetCursor(cursor StandardCursor) {
	w.win.SetCursor(w.runner.standardCursor(cursor))
}

func (w *Window) RequestAttention() {
	w.win.RequestAttention()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Close requests the window to close. The Runner picks the request up
// during the next Poll, emits EventClosed and destroys the window.
func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// SurfaceDescriptor returns the native surface of this window for
// creating a webgpu surface on top of it.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

// Attach binds a rendering context to the window. Attaching fails if a
// context of a different kind is already bound.
func (w *Window) Attach(kind AttachmentKind, a Attachment) error {
	if w.attachment != nil {
		return ErrWindowOccupied
	}

	w.attachKind = kind
	w.attachment = a

	return nil
}

func (w *Window) AttachedKind() AttachmentKind {
	return w.attachKind
}

// DetachContext unbinds the rendering context from the window if one is
// attached. The context releases its resources in response.
func (w *Window) DetachContext() {
	if w.attachment != nil {
		w.attachment.Detach()
		w.attachment = nil
		w.attachKind = AttachmentNone
	}
}

// framebufferResized records the new framebuffer size. The attached
// context reconfigures before user code observes the new size through
// the event queue.
func (w *Window) framebufferResized(size geom.Vec2i) {
	w.size = size

	if w.attachment != nil {
		w.attachment.Resized(size)
	}

	w.runner.push(Event{Kind: EventResized, Window: w.id, Size: size})
}

func (w *Window) destroy() {
	w.DetachContext()

	if w.prof != nil {
		w.prof.Stop()
		w.prof = nil
	}

	w.win.Destroy()
}
