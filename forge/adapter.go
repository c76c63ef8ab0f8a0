package forge

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/sablegfx/ember/glint"
)

// Backend identifies the native graphics api an adapter drives.
type Backend int

const (
	BackendUnknown Backend = iota
	BackendVulkan
	BackendMetal
	BackendDX12
	BackendOpenGL
	BackendWebGPU
)

func (b Backend) String() string {
	switch b {
	case BackendVulkan:
		return "Vulkan"
	case BackendMetal:
		return "Metal"
	case BackendDX12:
		return "DirectX 12"
	case BackendOpenGL:
		return "OpenGL"
	case BackendWebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// AdapterInfo describes one gpu of the system. Pass it to
// ContextBuilder.Adapter to pin context creation to that gpu.
type AdapterInfo struct {
	Name     string
	Vendor   string
	VendorID uint32

	Backend Backend

	// true for a discrete gpu
	HighPerformance bool

	adapter *wgpu.Adapter
}

// Release frees the native adapter handle. Release every adapter
// returned by QueryAdapters that does not get pinned to a context;
// pinning through ContextBuilder.Adapter hands the handle over to the
// built context.
func (a *AdapterInfo) Release() {
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
}

func vendorName(id uint32) string {
	switch id {
	case 0x1002:
		return "AMD"
	case 0x10DE:
		return "NVIDIA"
	case 0x8086:
		return "Intel"
	case 0x13B5:
		return "ARM"
	default:
		return "Unknown"
	}
}

func backendOf(b wgpu.BackendType) Backend {
	switch b {
	case wgpu.BackendTypeVulkan:
		return BackendVulkan
	case wgpu.BackendTypeMetal:
		return BackendMetal
	case wgpu.BackendTypeD3D12:
		return BackendDX12
	case wgpu.BackendTypeOpenGL, wgpu.BackendTypeOpenGLES:
		return BackendOpenGL
	case wgpu.BackendTypeWebGPU:
		return BackendWebGPU
	default:
		return BackendUnknown
	}
}

func infoOf(adapter *wgpu.Adapter) (AdapterInfo, error) {
	info, err := adapter.GetInfo()
	if err != nil {
		return AdapterInfo{}, fmt.Errorf("get adapter info: %w", err)
	}

	return AdapterInfo{
		Name:            info.Device,
		Vendor:          vendorName(info.VendorID),
		VendorID:        info.VendorID,
		Backend:         backendOf(info.BackendType),
		HighPerformance: info.AdapterType == wgpu.AdapterTypeDiscreteGPU,
		adapter:         adapter,
	}, nil
}

// QueryAdapters lists the gpus usable for rendering. With a window the
// returned adapters are guaranteed to be able to present to it. The
// list is deduplicated by name and backend.
func QueryAdapters(win *glint.Window) ([]AdapterInfo, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	var surface *wgpu.Surface
	if win != nil {
		surface = instance.CreateSurface(win.SurfaceDescriptor())
		defer surface.Release()
	}

	requests := []wgpu.RequestAdapterOptions{
		{PowerPreference: wgpu.PowerPreferenceHighPerformance, CompatibleSurface: surface},
		{PowerPreference: wgpu.PowerPreferenceLowPower, CompatibleSurface: surface},
		{ForceFallbackAdapter: true, CompatibleSurface: surface},
	}

	type adapterKey struct {
		name    string
		backend Backend
	}

	seen := map[adapterKey]bool{}

	var adapters []AdapterInfo
	for i := range requests {
		adapter, err := instance.RequestAdapter(&requests[i])
		if err != nil || adapter == nil {
			continue
		}

		info, err := infoOf(adapter)
		if err != nil {
			adapter.Release()
			continue
		}

		key := adapterKey{name: info.Name, backend: info.Backend}
		if seen[key] {
			adapter.Release()
			continue
		}

		seen[key] = true
		adapters = append(adapters, info)
	}

	return adapters, nil
}
