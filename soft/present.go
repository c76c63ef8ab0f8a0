package soft

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/sablegfx/ember/forge"
	"github.com/sablegfx/ember/geom"
	"github.com/sablegfx/ember/glint"
)

// presenter moves the cpu framebuffer onto the window surface. The
// packed 0xAARRGGBB pixels are little endian b,g,r,a in memory, which
// is exactly BGRA8Unorm, so the framebuffer uploads without conversion.
type presenter struct {
	ctx  *forge.Context
	view *forge.View
	blit *forge.BlitCommand

	texture *forge.Texture
}

func newPresenter(win *glint.Window, vsync bool) (p *presenter, err error) {
	defer func() {
		if err != nil && p != nil {
			p.release()
			p = nil
		}
	}()

	p = &presenter{}

	p.ctx, err = forge.NewContext(win.SurfaceDescriptor())
	if err != nil {
		return p, fmt.Errorf("initialize webgpu: %w", err)
	}

	p.view, err = forge.NewView(p.ctx, vsync)
	if err != nil {
		return p, fmt.Errorf("create view: %w", err)
	}

	size := win.Size()
	p.view.Configure(uint32(size[0]), uint32(size[1]))

	p.blit, err = forge.NewBlitCommand(p.ctx)
	if err != nil {
		return p, fmt.Errorf("create blit command: %w", err)
	}

	return p, nil
}

func (p *presenter) resize(size geom.Vec2i) {
	p.view.Configure(uint32(size[0]), uint32(size[1]))
}

// textureFor returns the upload texture, recreating it when the
// framebuffer size changed.
func (p *presenter) textureFor(size geom.Vec2i) (*forge.Texture, error) {
	want := geom.Vec2u{uint32(size[0]), uint32(size[1])}

	if p.texture != nil && p.texture.Size() == want {
		return p.texture, nil
	}

	if p.texture != nil {
		p.texture.Release()
		p.texture = nil
	}

	texture, err := forge.NewTexture(p.ctx, forge.TextureOptions{
		Label:  "soft framebuffer",
		Format: wgpu.TextureFormatBGRA8Unorm,
		Width:  want[0],
		Height: want[1],
	})
	if err != nil {
		return nil, fmt.Errorf("create framebuffer texture: %w", err)
	}

	p.texture = texture

	return texture, nil
}

func (p *presenter) present(fb *framebuffer) error {
	texture, err := p.textureFor(fb.size)
	if err != nil {
		return err
	}

	if err := texture.WritePixels(p.ctx, wgpu.ToBytes(fb.pix)); err != nil {
		return fmt.Errorf("upload framebuffer: %w", err)
	}

	frame, err := p.view.Acquire()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPresentFailed, err)
	}

	if err := p.blit.Draw(frame, texture, forge.BlitOptions{}); err != nil {
		frame.Discard()
		return fmt.Errorf("%w: %w", ErrPresentFailed, err)
	}

	frame.Present()

	return nil
}

func (p *presenter) release() {
	if p.texture != nil {
		p.texture.Release()
		p.texture = nil
	}

	if p.blit != nil {
		p.blit.Release()
		p.blit = nil
	}

	if p.ctx != nil {
		p.ctx.Release()
		p.ctx = nil
	}
}
