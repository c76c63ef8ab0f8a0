package soft

import (
	"fmt"

	"github.com/sablegfx/ember/geom"
)

// framebuffer is the cpu side pixel store. Pixels are packed as
// 0xAARRGGBB, row major, top left origin.
type framebuffer struct {
	size geom.Vec2i
	pix  []uint32
}

func newFramebuffer(size geom.Vec2i) framebuffer {
	return framebuffer{
		size: size,
		pix:  make([]uint32, size.Area()),
	}
}

func (f *framebuffer) bounds() geom.Recti {
	return geom.RectFromSize(geom.Vec2i{}, f.size)
}

// resize reallocates the pixel store, keeping the overlapping content.
func (f *framebuffer) resize(size geom.Vec2i) {
	if size == f.size {
		return
	}

	next := make([]uint32, size.Area())

	keepW := min(size[0], f.size[0])
	keepH := min(size[1], f.size[1])

	for y := 0; y < keepH; y++ {
		copy(
			next[y*size[0]:y*size[0]+keepW],
			f.pix[y*f.size[0]:y*f.size[0]+keepW],
		)
	}

	f.size = size
	f.pix = next
}

func (f *framebuffer) fill(pixel uint32) {
	for i := range f.pix {
		f.pix[i] = pixel
	}
}

// write composes pixels into region according to mode. The pixel slice
// must match the region exactly and the region must lie within bounds.
func (f *framebuffer) write(pixels []uint32, region geom.Recti, mode WriteMode, blend BlendMode) error {
	if f.size.IsZero() {
		return ErrSurfaceNotReady
	}

	if region.Empty() {
		return fmt.Errorf("%w: empty region %s", ErrSizeMismatch, region)
	}

	if len(pixels) != region.Area() {
		return fmt.Errorf("%w: got %d pixels for region %s", ErrSizeMismatch, len(pixels), region)
	}

	if !f.bounds().Contains(region) {
		return fmt.Errorf("%w: region %s, bounds %s", ErrOutOfBounds, region, f.bounds())
	}

	if mode == WriteClear {
		f.fill(0)
	}

	x0, y0, w, h := region.XYWH()

	for row := 0; row < h; row++ {
		src := pixels[row*w : (row+1)*w]
		dst := f.pix[(y0+row)*f.size[0]+x0:]

		if mode == WriteBlend {
			for i, pixel := range src {
				dst[i] = blendPixel(pixel, dst[i], blend)
			}
		} else {
			copy(dst[:w], src)
		}
	}

	return nil
}

func blendPixel(src, dst uint32, mode BlendMode) uint32 {
	sa, sr, sg, sb := channels(src)
	da, dr, dg, db := channels(dst)

	switch mode {
	case BlendAdd:
		return pack(
			addSat(da, sa),
			addSat(dr, sr),
			addSat(dg, sg),
			addSat(db, sb),
		)

	case BlendSubtract:
		return pack(
			da,
			subSat(dr, sr),
			subSat(dg, sg),
			subSat(db, sb),
		)

	case BlendMultiply:
		return pack(
			mul8(da, sa),
			mul8(dr, sr),
			mul8(dg, sg),
			mul8(db, sb),
		)

	default: // BlendAlpha
		// straight alpha source over destination
		inv := 255 - sa

		return pack(
			sa+mul8(da, inv),
			mul8(sr, sa)+mul8(dr, inv),
			mul8(sg, sa)+mul8(dg, inv),
			mul8(sb, sa)+mul8(db, inv),
		)
	}
}

func channels(pixel uint32) (a, r, g, b uint32) {
	a = pixel >> 24 & 0xff
	r = pixel >> 16 & 0xff
	g = pixel >> 8 & 0xff
	b = pixel & 0xff
	return
}

func pack(a, r, g, b uint32) uint32 {
	return a<<24 | r<<16 | g<<8 | b
}

func addSat(a, b uint32) uint32 {
	return min(a+b, 255)
}

func subSat(a, b uint32) uint32 {
	if b > a {
		return 0
	}

	return a - b
}

// mul8 multiplies two 8 bit channel values, rounding to nearest.
func mul8(a, b uint32) uint32 {
	return (a*b + 127) / 255
}
