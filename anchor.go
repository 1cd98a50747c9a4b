package notify

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAnchor is returned by ParseAnchor for unrecognised names.
var ErrUnknownAnchor = errors.New("unknown anchor")

// Anchor is the screen corner or edge a toast stack is attached to.
type Anchor uint8

const (
	TopRight Anchor = iota
	TopLeft
	BottomRight
	BottomLeft
	TopMiddle
	BottomMiddle
)

var anchorNames = [...]string{
	TopRight:     "top-right",
	TopLeft:      "top-left",
	BottomRight:  "bottom-right",
	BottomLeft:   "bottom-left",
	TopMiddle:    "top-middle",
	BottomMiddle: "bottom-middle",
}

// String returns the kebab-case name used in config files.
func (a Anchor) String() string {
	if int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", uint8(a))
}

// ParseAnchor maps a config name ("top-right", "BottomLeft", "bottom_middle", ...)
// to an Anchor.
func ParseAnchor(s string) (Anchor, error) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(s))
	for i, name := range anchorNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return Anchor(i), nil
		}
	}
	return TopRight, fmt.Errorf("%w: %q", ErrUnknownAnchor, s)
}

// IsTop reports whether the stack grows downward from the top edge.
func (a Anchor) IsTop() bool {
	return a == TopRight || a == TopLeft || a == TopMiddle
}

func (a Anchor) isLeft() bool {
	return a == TopLeft || a == BottomLeft
}

func (a Anchor) isMiddle() bool {
	return a == TopMiddle || a == BottomMiddle
}

// AnimSide is the sign applied to the horizontal slide-in offset:
// +1 slides in from the right, -1 from the left.
func (a Anchor) AnimSide() float32 {
	if a.isLeft() {
		return -1
	}
	return 1
}

// ScreenCorner returns the stack origin for a screen whose bottom-right corner
// is screenMax, pulled inward by margin.
func (a Anchor) ScreenCorner(screenMax, margin Vec2) Vec2 {
	var out Vec2
	switch a {
	case TopRight:
		out = Vec2{X: screenMax.X - margin.X, Y: margin.Y}
	case TopLeft:
		out = Vec2{X: margin.X, Y: margin.Y}
	case BottomRight:
		out = Vec2{X: screenMax.X - margin.X, Y: screenMax.Y - margin.Y}
	case BottomLeft:
		out = Vec2{X: margin.X, Y: screenMax.Y - margin.Y}
	case TopMiddle:
		out = Vec2{X: screenMax.X / 2, Y: margin.Y}
	case BottomMiddle:
		out = Vec2{X: screenMax.X / 2, Y: screenMax.Y - margin.Y}
	}
	return out
}
