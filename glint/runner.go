package glint

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/sablegfx/ember/geom"
)

type PollMode int

const (
	// PollModePoll polls pending events and returns immediately.
	PollModePoll PollMode = iota
	// PollModeWait blocks until at least one event arrives.
	PollModeWait
)

var (
	ErrRunnerExists     = errors.New("a runner already exists")
	ErrRunnerTerminated = errors.New("runner is terminated")
)

var runnerLive atomic.Bool

// Runner owns the native event loop and all windows created from it.
// It must be created on the main goroutine, which it locks to the os
// thread for the lifetime of the process.
type Runner struct {
	windows []*Window
	events  []Event

	times FrameTimes
	pace  pacer

	cursors map[StandardCursor]*glfw.Cursor

	lastID     WindowID
	terminated bool
}

// NewRunner initializes the windowing library and returns the process
// wide Runner. Only a single Runner may exist at a time.
func NewRunner() (*Runner, error) {
	if !runnerLive.CompareAndSwap(false, true) {
		return nil, ErrRunnerExists
	}

	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		runnerLive.Store(false)
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	// surfaces are created through wgpu, never through a gl context
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	return &Runner{
		pace:    pacer{tickRate: 60},
		cursors: map[StandardCursor]*glfw.Cursor{},
	}, nil
}

// NewWindow starts building a window with the given title and size.
func (r *Runner) NewWindow(title string, size geom.Vec2i) *WindowBuilder {
	return &WindowBuilder{
		runner: r,
		title:  title,
		size:   size,
	}
}

// SetTickRate caps Poll to the given number of iterations per second.
// A rate of zero disables pacing.
func (r *Runner) SetTickRate(fps int) {
	r.pace.tickRate = fps
}

// Times returns timing statistics of the poll loop.
func (r *Runner) Times() FrameTimes {
	return r.times
}

// Windows returns the windows that are still open.
func (r *Runner) Windows() []*Window {
	return r.windows
}

func (r *Runner) Window(id WindowID) *Window {
	for _, w := range r.windows {
		if w.id == id {
			return w
		}
	}

	return nil
}

// Poll pumps the native event loop once. Closed windows are destroyed
// and reported via EventClosed. Poll returns false once no window is
// left, the usual shape of the main loop is
//
//	for runner.Poll(glint.PollModePoll) {
//	    // handle runner.Events(), draw
//	}
func (r *Runner) Poll(mode PollMode) bool {
	if r.terminated {
		return false
	}

	for _, w := range r.windows {
		w.input.nextTick()
	}

	switch mode {
	case PollModeWait:
		glfw.WaitEvents()
	default:
		glfw.PollEvents()
	}

	alive := r.windows[:0]
	for _, w := range r.windows {
		if w.win.ShouldClose() {
			r.push(Event{Kind: EventClosed, Window: w.id})
			w.destroy()
			continue
		}

		alive = append(alive, w)
	}

	r.windows = alive
	r.times.Tick()

	if mode == PollModePoll {
		if sleep := r.pace.pace(time.Now()); sleep > 0 {
			time.Sleep(sleep)
		}
	}

	return len(r.windows) > 0
}

// Events drains and returns the events collected since the last call.
func (r *Runner) Events() []Event {
	events := r.events
	r.events = nil

	return events
}

// Terminate destroys all remaining windows and shuts the windowing
// library down. The Runner is unusable afterwards.
func (r *Runner) Terminate() {
	if r.terminated {
		return
	}

	for _, w := range r.windows {
		w.destroy()
	}

	r.windows = nil
	r.terminated = true

	glfw.Terminate()
	runnerLive.Store(false)
}

func (r *Runner) push(ev Event) {
	r.events = append(r.events, ev)
}

func (r *Runner) nextWindowID() WindowID {
	r.lastID += 1
	return r.lastID
}
