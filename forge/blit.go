package forge

import (
	_ "embed"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/sablegfx/ember/geom"
)

//go:embed blit.wgsl
var blitShaderCode string

type blitVertex struct {
	Position [3]float32
	Color    [4]float32
	TexCoord [2]float32
}

// BlitCommand draws a texture as a fullscreen quad onto a render
// target. It is the presentation path of the software pixel buffer and
// handy for showing any offscreen texture.
type BlitCommand struct {
	ctx *Context

	pipelines *PipelineCache[blitPipelineConfig]

	bufVertices *wgpu.Buffer
	bufIndices  *wgpu.Buffer
}

func NewBlitCommand(ctx *Context) (*BlitCommand, error) {
	bufVertices, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Blit.Vertices",
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(blitVertex{})) * 4,
	})

	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	bufIndices, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Blit.Indices",
		Contents: wgpu.ToBytes([]uint16{0, 1, 2, 2, 1, 3}),
		Usage:    wgpu.BufferUsageIndex,
	})

	if err != nil {
		bufVertices.Release()
		return nil, fmt.Errorf("create index buffer: %w", err)
	}

	b := &BlitCommand{
		ctx:         ctx,
		bufVertices: bufVertices,
		bufIndices:  bufIndices,
	}

	b.pipelines = NewPipelineCache[blitPipelineConfig](ctx)

	return b, nil
}

type BlitOptions struct {
	FilterMode wgpu.FilterMode

	// multiplied with the sampled texture, zero value means white
	Tint geom.Color
}

// Draw paints the source texture across the whole frame.
func (b *BlitCommand) Draw(target *Frame, source *Texture, opts BlitOptions) error {
	if opts.Tint == (geom.Color{}) {
		opts.Tint = geom.ColorWhite
	}

	tint := [4]float32{opts.Tint.R, opts.Tint.G, opts.Tint.B, opts.Tint.A}

	vertices := [4]blitVertex{
		{Position: [3]float32{-1, 1, 0}, Color: tint, TexCoord: [2]float32{0, 0}},
		{Position: [3]float32{-1, -1, 0}, Color: tint, TexCoord: [2]float32{0, 1}},
		{Position: [3]float32{1, 1, 0}, Color: tint, TexCoord: [2]float32{1, 0}},
		{Position: [3]float32{1, -1, 0}, Color: tint, TexCoord: [2]float32{1, 1}},
	}

	if err := b.ctx.WriteBuffer(b.bufVertices, 0, wgpu.ToBytes(vertices[:])); err != nil {
		return fmt.Errorf("update vertex buffer: %w", err)
	}

	sampler, err := CachedSampler(b.ctx.Device, wgpu.SamplerDescriptor{
		Label:         "Blit.Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		MagFilter:     opts.FilterMode,
		MinFilter:     opts.FilterMode,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})

	if err != nil {
		return err
	}

	pipeline, err := b.pipelines.Get(blitPipelineConfig{
		TargetFormat: target.Texture.GetFormat(),
	})

	if err != nil {
		return fmt.Errorf("get blit pipeline: %w", err)
	}

	bindGroupLayout := pipeline.GetBindGroupLayout(0)

	bindGroup, err := b.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Blit.BindGroup",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: source.View(),
			},
			{
				Binding: 1,
				Sampler: sampler,
			},
		},
	})

	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := b.ctx.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "RenderPassBlit",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{A: 1},
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	pass.SetPipeline(pipeline.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, b.bufVertices, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(b.bufIndices, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(6, 1, 0, 0, 0)

	if err := pass.End(); err != nil {
		return err
	}

	// must release pass before finishing the encoder
	passGuard.Release()

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}

	defer cmdBuffer.Release()

	b.ctx.Queue.Submit(cmdBuffer)

	return nil
}

func (b *BlitCommand) Release() {
	if b.pipelines != nil {
		b.pipelines.Release()
		b.pipelines = nil
	}

	if b.bufVertices != nil {
		b.bufVertices.Release()
		b.bufVertices = nil
	}

	if b.bufIndices != nil {
		b.bufIndices.Release()
		b.bufIndices = nil
	}
}

type blitPipelineConfig struct {
	TargetFormat wgpu.TextureFormat
}

func (conf blitPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create blit pipeline",
		slog.Any("format", conf.TargetFormat),
	)

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Blit.Shader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: blitShaderCode},
	})
	if err != nil {
		return nil, fmt.Errorf("compile blit shader: %w", err)
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Blit.%v", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(blitVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x3,
							Offset:         uint64(unsafe.Offsetof(blitVertex{}.Position)),
							ShaderLocation: 0,
						},
						{
							// color
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(blitVertex{}.Color)),
							ShaderLocation: 1,
						},
						{
							// texture coordinate
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(blitVertex{}.TexCoord)),
							ShaderLocation: 2,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build blit pipeline: %w", err)
	}

	return pipeline, nil
}
