package notify

// FontSpec describes the font a caption or glyph should be shaped with.
// Family is passed through to the host untouched; an empty family means the
// host's proportional default.
type FontSpec struct {
	Family string
	Size   float32
}

// DefaultFont is the caption font used when neither the collection nor the
// toast overrides it.
var DefaultFont = FontSpec{Size: 16}

// TextLayout is the result of shaping a string: the wrapped lines and the
// bounding box they occupy. Painters blit it as-is.
type TextLayout struct {
	Lines      []string
	Size       Vec2
	LineHeight float32
	Font       FontSpec
}

// LineCount returns the number of shaped rows. Never less than 1 for a
// non-degenerate layout, but callers must tolerate 0.
func (l TextLayout) LineCount() int {
	return len(l.Lines)
}

// TextMeasurer shapes text for layout. maxWidth <= 0 means unbounded.
// Implementations may return zero-size layouts; toast layout degrades to
// empty regions rather than failing.
type TextMeasurer interface {
	Measure(text string, font FontSpec, maxWidth float32) TextLayout
}

// Shadow describes a soft drop-shadow behind a toast.
type Shadow struct {
	Offset Vec2
	Blur   float32
	Spread float32
	Color  uint32
}

// Painter receives the draw primitives of a frame. Painters draw on an
// overlay layer above normal content and never report errors; a bad frame is
// simply regenerated on the next one.
type Painter interface {
	FillRect(r Rect, rounding float32, color uint32)
	Line(from, to Vec2, thickness float32, color uint32)
	Text(pos Vec2, layout TextLayout, color uint32)
	Shadow(r Rect, rounding float32, s Shadow)
}
