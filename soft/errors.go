package soft

import "errors"

var (
	// ErrNoWindow is returned when building a pixel buffer without a window.
	ErrNoWindow = errors.New("pixel buffer requires a window")

	// ErrSurfaceNotReady is returned when writing while the window has a
	// zero sized framebuffer, e.g. while minimized.
	ErrSurfaceNotReady = errors.New("surface size is zero")

	// ErrSizeMismatch is returned when the pixel slice does not match the
	// target region.
	ErrSizeMismatch = errors.New("pixel data does not match region size")

	// ErrOutOfBounds is returned when the target region leaves the
	// framebuffer.
	ErrOutOfBounds = errors.New("region outside of framebuffer bounds")

	// ErrDetached is returned when using a pixel buffer whose window went
	// away.
	ErrDetached = errors.New("pixel buffer is detached from its window")

	// ErrPresentFailed is returned when the framebuffer could not be
	// pushed to the window surface.
	ErrPresentFailed = errors.New("present failed")
)
