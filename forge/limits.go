package forge

import "github.com/oliverbestmann/webgpu/wgpu"

// Limits is the curated subset of device limits this package exposes.
// Zero values fall back to the defaults of DefaultLimits.
type Limits struct {
	MaxTextureDimension1D uint32
	MaxTextureDimension2D uint32
	MaxTextureDimension3D uint32
	MaxTextureArrayLayers uint32

	MaxBindGroups               uint32
	MaxBindingsPerBindGroup     uint32
	MaxUniformBufferBindingSize uint64
	MaxStorageBufferBindingSize uint64
	MaxBufferSize               uint64

	MaxVertexBuffers           uint32
	MaxVertexAttributes        uint32
	MaxVertexBufferArrayStride uint32

	MaxComputeWorkgroupStorageSize    uint32
	MaxComputeInvocationsPerWorkgroup uint32
	MaxComputeWorkgroupSizeX          uint32
	MaxComputeWorkgroupSizeY          uint32
	MaxComputeWorkgroupSizeZ          uint32
	MaxComputeWorkgroupsPerDimension  uint32
}

func DefaultLimits() Limits {
	return Limits{
		MaxTextureDimension1D: 8192,
		MaxTextureDimension2D: 8192,
		MaxTextureDimension3D: 2048,
		MaxTextureArrayLayers: 256,

		MaxBindGroups:               4,
		MaxBindingsPerBindGroup:     1000,
		MaxUniformBufferBindingSize: 64 << 10,
		MaxStorageBufferBindingSize: 128 << 20,
		MaxBufferSize:               256 << 20,

		MaxVertexBuffers:           8,
		MaxVertexAttributes:        16,
		MaxVertexBufferArrayStride: 2048,

		MaxComputeWorkgroupStorageSize:    16384,
		MaxComputeInvocationsPerWorkgroup: 256,
		MaxComputeWorkgroupSizeX:          256,
		MaxComputeWorkgroupSizeY:          256,
		MaxComputeWorkgroupSizeZ:          64,
		MaxComputeWorkgroupsPerDimension:  65535,
	}
}

func (l Limits) withDefaults() Limits {
	def := DefaultLimits()

	fill(&l.MaxTextureDimension1D, def.MaxTextureDimension1D)
	fill(&l.MaxTextureDimension2D, def.MaxTextureDimension2D)
	fill(&l.MaxTextureDimension3D, def.MaxTextureDimension3D)
	fill(&l.MaxTextureArrayLayers, def.MaxTextureArrayLayers)
	fill(&l.MaxBindGroups, def.MaxBindGroups)
	fill(&l.MaxBindingsPerBindGroup, def.MaxBindingsPerBindGroup)
	fill(&l.MaxUniformBufferBindingSize, def.MaxUniformBufferBindingSize)
	fill(&l.MaxStorageBufferBindingSize, def.MaxStorageBufferBindingSize)
	fill(&l.MaxBufferSize, def.MaxBufferSize)
	fill(&l.MaxVertexBuffers, def.MaxVertexBuffers)
	fill(&l.MaxVertexAttributes, def.MaxVertexAttributes)
	fill(&l.MaxVertexBufferArrayStride, def.MaxVertexBufferArrayStride)
	fill(&l.MaxComputeWorkgroupStorageSize, def.MaxComputeWorkgroupStorageSize)
	fill(&l.MaxComputeInvocationsPerWorkgroup, def.MaxComputeInvocationsPerWorkgroup)
	fill(&l.MaxComputeWorkgroupSizeX, def.MaxComputeWorkgroupSizeX)
	fill(&l.MaxComputeWorkgroupSizeY, def.MaxComputeWorkgroupSizeY)
	fill(&l.MaxComputeWorkgroupSizeZ, def.MaxComputeWorkgroupSizeZ)
	fill(&l.MaxComputeWorkgroupsPerDimension, def.MaxComputeWorkgroupsPerDimension)

	return l
}

func (l Limits) toWGPU() wgpu.Limits {
	l = l.withDefaults()

	var limits wgpu.Limits

	limits.MaxTextureDimension1D = l.MaxTextureDimension1D
	limits.MaxTextureDimension2D = l.MaxTextureDimension2D
	limits.MaxTextureDimension3D = l.MaxTextureDimension3D
	limits.MaxTextureArrayLayers = l.MaxTextureArrayLayers
	limits.MaxBindGroups = l.MaxBindGroups
	limits.MaxBindingsPerBindGroup = l.MaxBindingsPerBindGroup
	limits.MaxUniformBufferBindingSize = l.MaxUniformBufferBindingSize
	limits.MaxStorageBufferBindingSize = l.MaxStorageBufferBindingSize
	limits.MaxBufferSize = l.MaxBufferSize
	limits.MaxVertexBuffers = l.MaxVertexBuffers
	limits.MaxVertexAttributes = l.MaxVertexAttributes
	limits.MaxVertexBufferArrayStride = l.MaxVertexBufferArrayStride
	limits.MaxComputeWorkgroupStorageSize = l.MaxComputeWorkgroupStorageSize
	limits.MaxComputeInvocationsPerWorkgroup = l.MaxComputeInvocationsPerWorkgroup
	limits.MaxComputeWorkgroupSizeX = l.MaxComputeWorkgroupSizeX
	limits.MaxComputeWorkgroupSizeY = l.MaxComputeWorkgroupSizeY
	limits.MaxComputeWorkgroupSizeZ = l.MaxComputeWorkgroupSizeZ
	limits.MaxComputeWorkgroupsPerDimension = l.MaxComputeWorkgroupsPerDimension

	return limits
}

func fill[T uint32 | uint64](v *T, def T) {
	if *v == 0 {
		*v = def
	}
}
