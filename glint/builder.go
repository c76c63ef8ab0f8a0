package glint

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
	"github.com/sablegfx/ember/geom"
)

// WindowBuilder configures a new window. Obtain one from Runner.NewWindow,
// chain the options you need and call Build.
type WindowBuilder struct {
	runner    *Runner
	title     string
	size      geom.Vec2i
	pos       *geom.Vec2i
	parent    *Window
	profiling bool
}

func (b *WindowBuilder) Title(title string) *WindowBuilder {
	b.title = title
	return b
}

func (b *WindowBuilder) Size(size geom.Vec2i) *WindowBuilder {
	b.size = size
	return b
}

// Position sets the initial position of the window. Without it the
// window manager picks a spot.
func (b *WindowBuilder) Position(pos geom.Vec2i) *WindowBuilder {
	b.pos = &pos
	return b
}

// Parent marks the window as a child of another window. glfw has no
// native window parenting, the new window is placed relative to the
// parent instead.
func (b *WindowBuilder) Parent(parent *Window) *WindowBuilder {
	b.parent = parent
	return b
}

// Profiling enables cpu profiling for the lifetime of the window.
func (b *WindowBuilder) Profiling() *WindowBuilder {
	b.profiling = true
	return b
}

func (b *WindowBuilder) Build() (*Window, error) {
	r := b.runner

	if r.terminated {
		return nil, ErrRunnerTerminated
	}

	pos := b.pos
	if pos == nil && b.parent != nil {
		// offset from the parent so the new window does not fully cover it
		p := b.parent.Position().Add(geom.Vec2i{48, 48})
		pos = &p
	}

	win, err := glfw.CreateWindow(b.size[0], b.size[1], b.title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	if pos != nil {
		win.SetPos((*pos)[0], (*pos)[1])
	}

	w := &Window{
		id:     r.nextWindowID(),
		win:    win,
		runner: r,
		size:   b.size,
	}

	if b.profiling {
		w.prof = profile.Start(profile.CPUProfile)
	}

	configureCallbacks(w)
	r.windows = append(r.windows, w)

	slog.Info("Window created",
		slog.Uint64("id", uint64(w.id)),
		slog.String("title", b.title),
		slog.Int("width", b.size[0]),
		slog.Int("height", b.size[1]),
	)

	return w, nil
}

func configureCallbacks(w *Window) {
	r := w.runner

	w.win.SetKeyCallback(func(_ *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			w.input.Keys.press(key)
			r.push(Event{Kind: EventKeyPressed, Window: w.id, Key: key})

		case glfw.Release:
			w.input.Keys.release(key)
			r.push(Event{Kind: EventKeyReleased, Window: w.id, Key: key})
		}
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := MouseButton(btn)

		switch action {
		case glfw.Press:
			w.input.Mouse.press(button)
			r.push(Event{Kind: EventMouseButtonPressed, Window: w.id, Button: button})
		case glfw.Release:
			w.input.Mouse.release(button)
			r.push(Event{Kind: EventMouseButtonReleased, Window: w.id, Button: button})
		}
	})

	w.win.SetCursorPosCallback(func(_ *glfw.Window, xpos float64, ypos float64) {
		w.input.Mouse.position(float32(xpos), float32(ypos))
		r.push(Event{
			Kind:   EventMouseMoved,
			Window: w.id,
			Cursor: geom.Vec2f{float32(xpos), float32(ypos)},
		})
	})

	w.win.SetScrollCallback(func(_ *glfw.Window, xoff float64, yoff float64) {
		w.input.Mouse.scroll(float32(xoff), float32(yoff))
		r.push(Event{
			Kind:   EventMouseWheel,
			Window: w.id,
			Scroll: geom.Vec2f{float32(xoff), float32(yoff)},
		})
	})

	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width int, height int) {
		w.framebufferResized(geom.Vec2i{width, height})
	})

	w.win.SetPosCallback(func(_ *glfw.Window, xpos int, ypos int) {
		r.push(Event{Kind: EventMoved, Window: w.id, Pos: geom.Vec2i{xpos, ypos}})
	})

	w.win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		kind := EventUnfocused
		if focused {
			kind = EventFocused
		}

		r.push(Event{Kind: kind, Window: w.id})
	})
}
