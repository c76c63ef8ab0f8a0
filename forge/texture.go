package forge

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/sablegfx/ember/geom"
)

// Texture wraps a wgpu.Texture together with its identity view.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	format wgpu.TextureFormat
	size   geom.Vec2u
}

type TextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string

	// additional usages on top of TextureBinding|CopyDst
	Usage wgpu.TextureUsage
}

func NewTexture(ctx *Context, opts TextureOptions) (*Texture, error) {
	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: opts.Usage |
			wgpu.TextureUsageTextureBinding |
			wgpu.TextureUsageCopyDst,
	}

	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()

		return nil, fmt.Errorf("create texture view: %w", err)
	}

	return &Texture{
		texture:     texture,
		textureView: textureView,
		format:      desc.Format,
		size:        geom.Vec2u{opts.Width, opts.Height},
	}, nil
}

func (t *Texture) Width() uint32 {
	return t.size[0]
}

func (t *Texture) Height() uint32 {
	return t.size[1]
}

func (t *Texture) Size() geom.Vec2u {
	return t.size
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

func (t *Texture) Release() {
	if t.textureView != nil {
		t.textureView.Release()
		t.textureView = nil
	}

	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

// WritePixels uploads a full image worth of tightly packed pixel data.
func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	region := geom.RectFromXYWH[uint32](0, 0, t.Width(), t.Height())

	return t.WritePixelsToRect(ctx, WritePixelsOptions{
		Pixels: pixels,
		Region: region,
	})
}

type WritePixelsOptions struct {
	Pixels []byte
	Region geom.Rectu

	// bytes per source row, defaults to Region.Width()*4
	Stride   uint32
	MipLevel uint32
}

// WritePixelsToRect uploads pixel data into a sub region of the texture.
func (t *Texture) WritePixelsToRect(ctx *Context, opts WritePixelsOptions) error {
	bounds := geom.RectFromSize(geom.Vec2u{}, t.size)
	if !bounds.Contains(opts.Region) {
		return fmt.Errorf("target rect %s not in texture bounds %s", opts.Region, bounds)
	}

	if opts.Stride == 0 {
		opts.Stride = opts.Region.Width() * 4
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  opts.Stride,
		RowsPerImage: opts.Region.Height(),
	}

	size := &wgpu.Extent3D{
		Width:              opts.Region.Width(),
		Height:             opts.Region.Height(),
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: opts.MipLevel,
		Origin: wgpu.Origin3D{
			X: opts.Region.Min[0],
			Y: opts.Region.Min[1],
		},
		Aspect: wgpu.TextureAspectAll,
	}

	if err := ctx.WriteTexture(dest, opts.Pixels, layout, size); err != nil {
		return fmt.Errorf("copy pixel data to texture: %w", err)
	}

	return nil
}
