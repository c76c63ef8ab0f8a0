package forge

import (
	"os"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter. The Surface
// is nil for a headless Context.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter
}

type contextOptions struct {
	surface *wgpu.SurfaceDescriptor
	adapter *AdapterInfo
	limits  *Limits
}

// NewContext creates a Context rendering to the given surface. Pass nil
// for a headless Context, e.g. for compute work.
func NewContext(sd *wgpu.SurfaceDescriptor) (*Context, error) {
	return newContext(contextOptions{surface: sd})
}

func newContext(opts contextOptions) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	if opts.surface != nil {
		// create a Surface based on the window
		st.Surface = instance.CreateSurface(opts.surface)
	}

	if opts.adapter != nil && opts.adapter.adapter != nil {
		// the context takes ownership of the pinned adapter
		st.Adapter = opts.adapter.adapter
		opts.adapter.adapter = nil
	} else {
		// create an adapter that can render to the Surface
		st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
			ForceFallbackAdapter: forceFallbackAdapter,
			CompatibleSurface:    st.Surface,
		})

		if err != nil {
			return
		}
	}

	var desc *wgpu.DeviceDescriptor
	if opts.limits != nil {
		desc = &wgpu.DeviceDescriptor{
			RequiredLimits: &wgpu.RequiredLimits{
				Limits: opts.limits.toWGPU(),
			},
		}
	}

	st.Device, err = st.Adapter.RequestDevice(desc)
	if err != nil {
		return
	}

	st.Queue = st.Device.GetQueue()

	return st, nil
}

// Headless reports whether the Context renders to a window surface.
func (d *Context) Headless() bool {
	return d.Surface == nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
