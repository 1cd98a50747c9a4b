package notify

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const atlasColumns = 16

type atlasGlyph struct {
	advance        float32
	u0, v0, u1, v1 float32
}

// AtlasFont is a Font backed by an alpha-only glyph atlas rasterised from a
// font.Face. Pixels is uploaded by the GPU backend, which then reports the
// resulting texture through SetTextureID.
type AtlasFont struct {
	Pixels *image.Alpha

	glyphs     map[rune]atlasGlyph
	cellW      float32
	lineHeight float32
	fallback   rune
	textureID  uint32

	// Reused between GlyphQuads calls to avoid per-call allocations.
	quads []GlyphQuad
}

// Latin1 lists the printable ASCII and Latin-1 supplement runes.
func Latin1() []rune {
	runes := make([]rune, 0, 95+95)
	for r := rune(0x20); r < 0x7f; r++ {
		runes = append(runes, r)
	}
	for r := rune(0xa1); r <= 0xff; r++ {
		runes = append(runes, r)
	}
	return runes
}

// defaultAtlasSize is the pixel size Go Regular is rasterised at. Other
// caption sizes are scaled from it.
const defaultAtlasSize = 16

// NewDefaultAtlasFont rasterises Go Regular, bundled with x/image, over
// Latin1. The overlay uses it when the host supplies no font.
func NewDefaultAtlasFont() (*AtlasFont, error) {
	return NewOpenTypeAtlasFont(goregular.TTF, defaultAtlasSize)
}

// NewOpenTypeAtlasFont parses a TrueType or OpenType font and rasterises
// Latin1 at size pixels.
func NewOpenTypeAtlasFont(data []byte, size float64) (*AtlasFont, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	return NewAtlasFont(face, Latin1())
}

// NewBasicAtlasFont rasterises the 7x13 fixed font bundled with x/image.
// It only has printable ASCII, which includes every built-in level glyph;
// anything else draws as '?'.
func NewBasicAtlasFont() *AtlasFont {
	f, err := NewAtlasFont(basicfont.Face7x13, Latin1())
	if err != nil {
		// basicfont always has ASCII; failing here is a programming error.
		panic(fmt.Sprintf("notify: basic atlas: %v", err))
	}
	return f
}

// NewAtlasFont rasterises runes from face into a grid atlas. Runes the face
// does not support are skipped.
func NewAtlasFont(face font.Face, runes []rune) (*AtlasFont, error) {
	if face == nil {
		return nil, errors.New("nil font face")
	}

	metrics := face.Metrics()
	cellH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	supported := make([]rune, 0, len(runes))
	cellW := 0
	for _, r := range runes {
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		supported = append(supported, r)
		if w := adv.Ceil(); w > cellW {
			cellW = w
		}
	}
	if len(supported) == 0 || cellW == 0 || cellH == 0 {
		return nil, errors.New("font face has no usable glyphs")
	}

	rows := (len(supported) + atlasColumns - 1) / atlasColumns
	texW, texH := atlasColumns*cellW, rows*cellH
	pixels := image.NewAlpha(image.Rect(0, 0, texW, texH))

	f := &AtlasFont{
		Pixels:     pixels,
		glyphs:     make(map[rune]atlasGlyph, len(supported)),
		cellW:      float32(cellW),
		lineHeight: float32(cellH),
		fallback:   '?',
		quads:      make([]GlyphQuad, 0, 64),
	}

	d := font.Drawer{Dst: pixels, Src: image.Opaque, Face: face}
	for i, r := range supported {
		cx, cy := (i%atlasColumns)*cellW, (i/atlasColumns)*cellH
		d.Dot = fixed.P(cx, cy+ascent)
		d.DrawString(string(r))

		adv, _ := face.GlyphAdvance(r)
		f.glyphs[r] = atlasGlyph{
			advance: float32(adv.Ceil()),
			u0:      float32(cx) / float32(texW),
			v0:      float32(cy) / float32(texH),
			u1:      float32(cx+cellW) / float32(texW),
			v1:      float32(cy+cellH) / float32(texH),
		}
	}

	if _, ok := f.glyphs[f.fallback]; !ok {
		f.fallback = supported[0]
	}
	return f, nil
}

// SetTextureID records the texture the atlas was uploaded to.
func (f *AtlasFont) SetTextureID(id uint32) { f.textureID = id }

// TextureID implements Font.
func (f *AtlasFont) TextureID() uint32 { return f.textureID }

// HasGlyph implements Font.
func (f *AtlasFont) HasGlyph(r rune) bool {
	_, ok := f.glyphs[r]
	return ok
}

func (f *AtlasFont) glyph(r rune) atlasGlyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.glyphs[f.fallback]
}

// MeasureText implements Font.
func (f *AtlasFont) MeasureText(text string, scale float32) Vec2 {
	var w float32
	for _, r := range text {
		w += f.glyph(r).advance
	}
	return Vec2{X: w * scale, Y: f.lineHeight * scale}
}

// LineHeight implements Font.
func (f *AtlasFont) LineHeight(scale float32) float32 {
	return f.lineHeight * scale
}

// GlyphQuads implements Font.
func (f *AtlasFont) GlyphQuads(text string, x, y, scale float32) []GlyphQuad {
	f.quads = f.quads[:0]
	pen := x
	h := f.lineHeight * scale
	for _, r := range text {
		g := f.glyph(r)
		f.quads = append(f.quads, GlyphQuad{
			X0: pen, Y0: y,
			X1: pen + f.cellW*scale, Y1: y + h,
			U0: g.u0, V0: g.v0,
			U1: g.u1, V1: g.v1,
		})
		pen += g.advance * scale
	}
	return f.quads
}
