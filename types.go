package notify

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// RectFromMinMax builds a rectangle from its top-left and bottom-right corners.
func RectFromMinMax(lo, hi Vec2) Rect {
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 { return Vec2{X: r.X + r.W, Y: r.Y + r.H} }

// Center returns the rectangle's midpoint.
func (r Rect) Center() Vec2 { return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Expand grows the rectangle by amount on every side.
// A negative amount shrinks it; the size never goes below zero.
func (r Rect) Expand(amount float32) Rect {
	r.X -= amount
	r.Y -= amount
	r.W = maxf(r.W+amount*2, 0)
	r.H = maxf(r.H+amount*2, 0)
	return r
}

// Shrink is Expand with the sign flipped.
func (r Rect) Shrink(amount float32) Rect {
	return r.Expand(-amount)
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorGray        uint32 = 0xFF808080
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGB creates an opaque packed color.
func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 255)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// WithAlpha replaces the alpha channel of a packed color.
func WithAlpha(c uint32, a uint8) uint32 {
	return c&0x00FFFFFF | uint32(a)<<24
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
