package render

// BlendMode selects the compositing operation for a plotted sample
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendAdd
	BlendMax
)

// Apply composites src over dst
func (m BlendMode) Apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendMax:
		return Max(dst, src, alpha)
	default:
		return src
	}
}
