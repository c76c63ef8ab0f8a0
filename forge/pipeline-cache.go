package forge

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

const pipelineCacheSize = 16

type CachedPipeline struct {
	Pipeline   *wgpu.RenderPipeline
	bindGroups *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

func (pc *CachedPipeline) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	layout, ok := pc.bindGroups.Get(idx)
	if ok {
		return layout
	}

	layout = pc.Pipeline.GetBindGroupLayout(idx)
	pc.bindGroups.Add(idx, layout)

	return layout
}

// PipelineConfig is a comparable pipeline description that knows how to
// build the matching render pipeline.
type PipelineConfig interface {
	comparable

	// Specialize creates a specialized pipeline for the
	// current PipelineConfig
	Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error)
}

// PipelineCache deduplicates pipeline creation per config value.
// Evicted pipelines are released.
type PipelineCache[C PipelineConfig] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, CachedPipeline]
}

func NewPipelineCache[C PipelineConfig](ctx *Context) *PipelineCache[C] {
	cache, _ := lru.NewWithEvict[C, CachedPipeline](pipelineCacheSize, releasePipelineOnEviction[C])

	return &PipelineCache[C]{
		device: ctx.Device,
		cache:  cache,
	}
}

func (p *PipelineCache[C]) Get(conf C) (CachedPipeline, error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return CachedPipeline{}, fmt.Errorf("build pipeline: %w", err)
	}

	bindGroupsCache, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](pipelineCacheSize, releaseBindGroupLayoutOnEviction)

	pc := CachedPipeline{Pipeline: pipeline, bindGroups: bindGroupsCache}
	p.cache.Add(conf, pc)

	return pc, nil
}

// Release evicts and frees every cached pipeline. The cache stays
// usable, a later Get rebuilds its pipeline.
func (p *PipelineCache[C]) Release() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C any](_ C, pipe CachedPipeline) {
	pipe.bindGroups.Purge()
	pipe.Pipeline.Release()
}

func releaseBindGroupLayoutOnEviction(_ uint32, layout *wgpu.BindGroupLayout) {
	layout.Release()
}
