package glint

import (
	"testing"

	"github.com/sablegfx/ember/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttachment struct {
	resized  []geom.Vec2i
	detached bool
}

func (a *fakeAttachment) Resized(size geom.Vec2i) {
	a.resized = append(a.resized, size)
}

func (a *fakeAttachment) Detach() {
	a.detached = true
}

func TestWindowAttach(t *testing.T) {
	win := &Window{}

	assert.Equal(t, AttachmentNone, win.AttachedKind())

	first := &fakeAttachment{}
	require.NoError(t, win.Attach(AttachmentGPU, first))
	assert.Equal(t, AttachmentGPU, win.AttachedKind())

	// a second context is rejected, the window is taken
	err := win.Attach(AttachmentSoftware, &fakeAttachment{})
	assert.ErrorIs(t, err, ErrWindowOccupied)

	win.DetachContext()

	assert.True(t, first.detached)
	assert.Equal(t, AttachmentNone, win.AttachedKind())

	// after detaching the window is free again
	require.NoError(t, win.Attach(AttachmentSoftware, &fakeAttachment{}))
	assert.Equal(t, AttachmentSoftware, win.AttachedKind())
}

// queueWatchingAttachment snapshots the runner event queue whenever it
// gets resized, to observe the ordering of resize handling.
type queueWatchingAttachment struct {
	runner *Runner

	size          geom.Vec2i
	pendingEvents int
}

func (a *queueWatchingAttachment) Resized(size geom.Vec2i) {
	a.size = size
	a.pendingEvents = len(a.runner.events)
}

func (a *queueWatchingAttachment) Detach() {}

func TestResizeNotifiesAttachmentBeforeEvent(t *testing.T) {
	r := &Runner{}
	win := &Window{id: 1, runner: r}

	att := &queueWatchingAttachment{runner: r}
	require.NoError(t, win.Attach(AttachmentSoftware, att))

	win.framebufferResized(geom.Vec2i{320, 200})

	// the context saw the size while the queue was still empty
	assert.Equal(t, geom.Vec2i{320, 200}, att.size)
	assert.Equal(t, 0, att.pendingEvents)
	assert.Equal(t, geom.Vec2i{320, 200}, win.Size())

	events := r.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventResized, events[0].Kind)
	assert.Equal(t, WindowID(1), events[0].Window)
	assert.Equal(t, geom.Vec2i{320, 200}, events[0].Size)
}

func TestAttachmentKindString(t *testing.T) {
	assert.Equal(t, "none", AttachmentNone.String())
	assert.Equal(t, "gpu", AttachmentGPU.String())
	assert.Equal(t, "software", AttachmentSoftware.String())
}
