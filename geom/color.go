package geom

// Color is a straight alpha rgba color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite       = RGBA(1, 1, 1, 1)
	ColorBlack       = RGBA(0, 0, 0, 1)
	ColorTransparent = RGBA(0, 0, 0, 0)
	ColorRed         = RGBA(1, 0, 0, 1)
	ColorGreen       = RGBA(0, 1, 0, 1)
	ColorBlue        = RGBA(0, 0, 1, 1)
	ColorLightBlue   = RGBA8(0xad, 0xd8, 0xe6, 0xff)
	ColorCornflower  = RGBA8(0x64, 0x95, 0xed, 0xff)
)

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA8 builds a Color from 8 bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// PackARGB packs the color into a single 0xAARRGGBB value, the pixel
// format of the software framebuffer.
func (c Color) PackARGB() uint32 {
	r := uint32(clamp01(c.R)*255 + 0.5)
	g := uint32(clamp01(c.G)*255 + 0.5)
	b := uint32(clamp01(c.B)*255 + 0.5)
	a := uint32(clamp01(c.A)*255 + 0.5)

	return a<<24 | r<<16 | g<<8 | b
}

// UnpackARGB is the inverse of Color.PackARGB.
func UnpackARGB(pixel uint32) Color {
	return RGBA8(
		uint8(pixel>>16),
		uint8(pixel>>8),
		uint8(pixel),
		uint8(pixel>>24),
	)
}

func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// Lerp interpolates componentwise towards other. t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	t = clamp01(t)

	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func (c Color) Components() (r, g, b, a float32) {
	return c.R, c.G, c.B, c.A
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
