package forge

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

var samplerCache, _ = lru.NewWithEvict[wgpu.SamplerDescriptor, *wgpu.Sampler](16, samplerCacheOnEvict)

func samplerCacheOnEvict(_ wgpu.SamplerDescriptor, value *wgpu.Sampler) {
	value.Release()
}

// CachedSampler returns a sampler matching the description. The sampler
// may be cached, you must not call wgpu.Sampler.Release() on it.
func CachedSampler(dev *wgpu.Device, desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
	cached, ok := samplerCache.Get(desc)
	if ok {
		return cached, nil
	}

	sampler, err := dev.CreateSampler(&desc)
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}

	samplerCache.Add(desc, sampler)

	return sampler, nil
}
