package notify

import (
	"math"
	"sync"
)

// Vertex represents a vertex for overlay rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single batched draw call.
type DrawCmd struct {
	ElemCount    uint32 // Number of indices to draw
	TextureID    uint32 // Texture ID (0 = no texture)
	VertexOffset uint32 // Offset into vertex buffer
	IndexOffset  uint32 // Offset into index buffer
}

// cornerSegments is the number of segments per rounded corner.
const cornerSegments = 4

// shadowLayers is how many translucent rings approximate a blurred shadow.
const shadowLayers = 6

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		dl.font = nil
		drawListPool.Put(dl)
	}
}

// DrawList is a Painter that accumulates triangles for a GPU backend,
// batched by texture.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	font         Font
	textureID    uint32
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

var _ Painter = (*DrawList)(nil)

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetFont sets the font used by Text. Without a font, Text draws nothing.
func (dl *DrawList) SetFont(f Font) {
	dl.font = f
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID && len(dl.CmdBuffer) > 0 {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to the
// current command.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func (dl *DrawList) addQuad(a, b, c, d Vec2, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{a.X, a.Y}, Color: color},
		Vertex{Pos: [2]float32{b.X, b.Y}, Color: color},
		Vertex{Pos: [2]float32{c.X, c.Y}, Color: color},
		Vertex{Pos: [2]float32{d.X, d.Y}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// FillRect draws a filled rectangle with rounded corners.
func (dl *DrawList) FillRect(r Rect, rounding float32, color uint32) {
	if color&0xFF000000 == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.SetTexture(0)

	rounding = minf(rounding, minf(r.W, r.H)/2)
	if rounding <= 0 {
		dl.addQuad(r.Min(), Vec2{r.X + r.W, r.Y}, r.Max(), Vec2{r.X, r.Y + r.H}, color)
		return
	}

	// Triangle fan around the centre through the four arcs, clockwise from
	// the top-right corner.
	c := r.Center()
	center := dl.addVertices(Vertex{Pos: [2]float32{c.X, c.Y}, Color: color})
	arcs := [4]struct {
		cx, cy float32
		start  float64
	}{
		{r.X + r.W - rounding, r.Y + rounding, -math.Pi / 2},
		{r.X + r.W - rounding, r.Y + r.H - rounding, 0},
		{r.X + rounding, r.Y + r.H - rounding, math.Pi / 2},
		{r.X + rounding, r.Y + rounding, math.Pi},
	}
	first := uint16(0)
	n := uint16(0)
	for _, arc := range arcs {
		for s := 0; s <= cornerSegments; s++ {
			a := arc.start + float64(s)/cornerSegments*math.Pi/2
			x := arc.cx + rounding*float32(math.Cos(a))
			y := arc.cy + rounding*float32(math.Sin(a))
			idx := dl.addVertices(Vertex{Pos: [2]float32{x, y}, Color: color})
			if n == 0 {
				first = idx
			} else {
				dl.addIndices(center, idx-1, idx)
			}
			n++
		}
	}
	dl.addIndices(center, first+n-1, first)
}

// Line draws a segment of the given thickness.
func (dl *DrawList) Line(from, to Vec2, thickness float32, color uint32) {
	if color&0xFF000000 == 0 || thickness <= 0 {
		return
	}
	dl.SetTexture(0)

	dx, dy := to.X-from.X, to.Y-from.Y
	inv := float32(1)
	if l := float32(math.Sqrt(float64(dx*dx + dy*dy))); l > 0 {
		inv = 1 / l
	}
	n := Vec2{X: -dy * inv * thickness / 2, Y: dx * inv * thickness / 2}
	dl.addQuad(from.Add(n), to.Add(n), to.Sub(n), from.Sub(n), color)
}

// Text draws a shaped layout with its top-left at pos.
func (dl *DrawList) Text(pos Vec2, layout TextLayout, color uint32) {
	if dl.font == nil || color&0xFF000000 == 0 || len(layout.Lines) == 0 {
		return
	}
	dl.SetTexture(dl.font.TextureID())

	scale := fontScale(dl.font, layout.Font)
	for i, line := range layout.Lines {
		y := pos.Y + float32(i)*layout.LineHeight
		for _, q := range dl.font.GlyphQuads(line, pos.X, y, scale) {
			idx := dl.addVertices(
				Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
				Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
				Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
				Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
			)
			dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
		}
	}
}

// Shadow approximates a blurred drop-shadow with stacked translucent rings.
func (dl *DrawList) Shadow(r Rect, rounding float32, s Shadow) {
	_, _, _, alpha := UnpackRGBA(s.Color)
	if alpha == 0 {
		return
	}
	base := r.Translate(s.Offset).Expand(s.Spread)
	if s.Blur <= 0 {
		dl.FillRect(base, rounding, s.Color)
		return
	}
	// Outermost ring first so inner rings accumulate toward the full alpha.
	per := float32(alpha) / shadowLayers
	for i := shadowLayers; i >= 1; i-- {
		grow := s.Blur * float32(i) / shadowLayers
		dl.FillRect(base.Expand(grow), rounding+grow, WithAlpha(s.Color, uint8(per)))
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
