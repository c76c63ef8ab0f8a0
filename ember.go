package ember

import (
	"github.com/sablegfx/ember/forge"
	"github.com/sablegfx/ember/glint"
	"github.com/sablegfx/ember/soft"
)

// CreateRunner initializes the windowing layer and returns the event
// loop owner. Must be called from the main goroutine, and only one
// Runner may exist at a time.
func CreateRunner() (*glint.Runner, error) {
	return glint.NewRunner()
}

// CreateGPU starts building a gpu rendering context for the given
// window. Pass nil for a headless compute context.
func CreateGPU(win *glint.Window) *forge.ContextBuilder {
	return forge.NewGPU(win)
}

// CreatePixelBuffer starts building a cpu pixel buffer presenting to
// the given window.
func CreatePixelBuffer(win *glint.Window) *soft.PixelBufferBuilder {
	return soft.NewPixelBuffer(win)
}

// QueryAdapters lists the gpus available on this system. Pass a window
// to restrict the result to adapters that can present to it.
func QueryAdapters(win *glint.Window) ([]forge.AdapterInfo, error) {
	return forge.QueryAdapters(win)
}
