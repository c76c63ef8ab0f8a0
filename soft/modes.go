package soft

// WriteMode describes how a pixel write combines with the existing
// framebuffer content.
type WriteMode int

const (
	// WriteCopy overwrites the target region with the incoming pixels.
	WriteCopy WriteMode = iota
	// WriteClear clears the whole framebuffer first, then writes the
	// incoming pixels into the target region.
	WriteClear
	// WriteBlend combines incoming and existing pixels with a BlendMode.
	WriteBlend
)

func (m WriteMode) String() string {
	switch m {
	case WriteCopy:
		return "Copy"
	case WriteClear:
		return "Clear"
	case WriteBlend:
		return "Blend"
	default:
		return "Unknown"
	}
}

// BlendMode selects the per pixel function used by WriteBlend.
type BlendMode int

const (
	// BlendAlpha composites the incoming pixel over the existing one
	// weighted by the incoming alpha.
	BlendAlpha BlendMode = iota
	// BlendAdd adds channels with saturation.
	BlendAdd
	// BlendSubtract subtracts the incoming channels from the existing
	// ones with saturation. The existing alpha is kept.
	BlendSubtract
	// BlendMultiply multiplies the channels.
	BlendMultiply
)

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "Alpha"
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	case BlendMultiply:
		return "Multiply"
	default:
		return "Unknown"
	}
}
