package forge

import (
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestVendorName(t *testing.T) {
	assert.Equal(t, "AMD", vendorName(0x1002))
	assert.Equal(t, "NVIDIA", vendorName(0x10DE))
	assert.Equal(t, "Intel", vendorName(0x8086))
	assert.Equal(t, "ARM", vendorName(0x13B5))
	assert.Equal(t, "Unknown", vendorName(0x1234))
}

func TestBackendOf(t *testing.T) {
	assert.Equal(t, BackendVulkan, backendOf(wgpu.BackendTypeVulkan))
	assert.Equal(t, BackendMetal, backendOf(wgpu.BackendTypeMetal))
	assert.Equal(t, BackendDX12, backendOf(wgpu.BackendTypeD3D12))
	assert.Equal(t, BackendOpenGL, backendOf(wgpu.BackendTypeOpenGL))
	assert.Equal(t, BackendOpenGL, backendOf(wgpu.BackendTypeOpenGLES))
	assert.Equal(t, BackendWebGPU, backendOf(wgpu.BackendTypeWebGPU))
	assert.Equal(t, BackendUnknown, backendOf(wgpu.BackendTypeNull))
}

func TestAdapterInfoReleaseWithoutHandle(t *testing.T) {
	info := &AdapterInfo{Name: "cpu"}

	// releasing twice stays a no-op
	info.Release()
	info.Release()

	assert.Nil(t, info.adapter)
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "Vulkan", BackendVulkan.String())
	assert.Equal(t, "Metal", BackendMetal.String())
	assert.Equal(t, "DirectX 12", BackendDX12.String())
	assert.Equal(t, "OpenGL", BackendOpenGL.String())
	assert.Equal(t, "WebGPU", BackendWebGPU.String())
	assert.Equal(t, "Unknown", BackendUnknown.String())
}
