package notify

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func toColorful(c uint32) (colorful.Color, uint8) {
	r, g, b, a := UnpackRGBA(c)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, a
}

func fromColorful(col colorful.Color, a uint8) uint32 {
	r, g, b := col.Clamped().RGB255()
	return RGBA(r, g, b, a)
}

// brighten blends c toward white by t (0..1) in Lab space, keeping alpha.
func brighten(c uint32, t float64) uint32 {
	col, a := toColorful(c)
	return fromColorful(col.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t), a)
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa" into a packed color.
func ParseHexColor(s string) (uint32, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(col, alpha), nil
}

// HexColor formats a packed color as "#rrggbbaa".
func HexColor(c uint32) string {
	r, g, b, a := UnpackRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}
