package notify

// Font is a rasterised font that can both measure and draw text.
// The GPU backend binds TextureID before drawing the quads from GlyphQuads.
//
// The notify package does not depend on any concrete font implementation;
// AtlasFont is the bundled one, applications may inject their own.
type Font interface {
	// TextureID returns the texture holding the glyph atlas.
	TextureID() uint32

	// HasGlyph returns true if the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// MeasureText returns the pixel size of a single line at the given scale.
	MeasureText(text string, scale float32) Vec2

	// GlyphQuads generates quads for a single line with its top-left at (x, y).
	// The returned slice is only valid until the next call.
	GlyphQuads(text string, x, y, scale float32) []GlyphQuad

	// LineHeight returns the line height at the specified scale.
	LineHeight(scale float32) float32
}

// GlyphQuad represents a single character's rendering quad.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// fontScale converts a requested pixel size to the scale factor a Font expects.
func fontScale(f Font, spec FontSpec) float32 {
	base := f.LineHeight(1)
	if base <= 0 || spec.Size <= 0 {
		return 1
	}
	return spec.Size / base
}

// FontMeasurer adapts a Font to the TextMeasurer interface.
// The FontSpec family is ignored; only the size is honoured.
type FontMeasurer struct {
	Font Font
	Wrap TextWrapMode
}

// Measure shapes text with the wrapped font.
func (m FontMeasurer) Measure(text string, spec FontSpec, maxWidth float32) TextLayout {
	if m.Font == nil {
		return TextLayout{Font: spec}
	}
	scale := fontScale(m.Font, spec)
	width := func(line string) float32 { return m.Font.MeasureText(line, scale).X }
	lines := WrapText(text, maxWidth, m.Wrap, width)
	return layoutLines(lines, spec, m.Font.LineHeight(scale), width)
}

// MonoMeasurer measures text as a fixed-pitch grid, mirroring a bitmap font
// with CharWidth x CharHeight cells. It is the fallback when the host has no
// shaper of its own.
type MonoMeasurer struct {
	CharWidth  float32
	CharHeight float32
	Wrap       TextWrapMode
}

// NewMonoMeasurer returns a measurer for 8x8 cells, the size of the classic
// built-in bitmap font.
func NewMonoMeasurer() MonoMeasurer {
	return MonoMeasurer{CharWidth: 8, CharHeight: 8, Wrap: WrapModeAuto}
}

// Measure shapes text on the fixed grid. Cells are scaled so one line is
// spec.Size pixels tall.
func (m MonoMeasurer) Measure(text string, spec FontSpec, maxWidth float32) TextLayout {
	scale := float32(1)
	if m.CharHeight > 0 && spec.Size > 0 {
		scale = spec.Size / m.CharHeight
	}
	cw := m.CharWidth * scale
	width := func(line string) float32 {
		n := 0
		for range line {
			n++
		}
		return float32(n) * cw
	}
	lines := WrapText(text, maxWidth, m.Wrap, width)
	return layoutLines(lines, spec, m.CharHeight*scale, width)
}
