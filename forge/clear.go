package forge

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/sablegfx/ember/geom"
)

// Clear fills the target view with a solid color.
func (d *Context) Clear(target *wgpu.TextureView, color geom.Color) error {
	enc, err := d.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "ClearTexture",
	})

	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer enc.Release()

	pass := enc.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ClearTexture",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    target,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: float64(color.R),
					G: float64(color.G),
					B: float64(color.B),
					A: float64(color.A),
				},
			},
		},
	})

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if err := pass.End(); err != nil {
		return err
	}

	passGuard.Release()

	buf, err := enc.Finish(&wgpu.CommandBufferDescriptor{Label: "ClearTexture"})
	if err != nil {
		return err
	}

	defer buf.Release()

	d.Queue.Submit(buf)

	return nil
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate at most once. Useful with defer
// when a resource must be released before a later call on its parent.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Keep() {
	r.delegate = nil
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
