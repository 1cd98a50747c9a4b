package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRect(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FillRect(Rect{X: 0, Y: 0, W: 100, H: 40}, 0, ColorWhite)
	assert.Len(t, dl.VtxBuffer, 4)
	assert.Len(t, dl.IdxBuffer, 6)

	dl.Clear()
	dl.FillRect(Rect{X: 0, Y: 0, W: 100, H: 40}, 4, ColorWhite)
	// Centre plus cornerSegments+1 points per corner, fanned into a closed loop.
	n := 4 * (cornerSegments + 1)
	assert.Len(t, dl.VtxBuffer, 1+n)
	assert.Len(t, dl.IdxBuffer, 3*n)
}

func TestFillRectSkipsInvisible(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorTransparent)
	dl.FillRect(Rect{W: 0, H: 10}, 0, ColorWhite)
	dl.Line(Vec2{}, Vec2{X: 10}, 0, ColorWhite)
	assert.Empty(t, dl.VtxBuffer)
}

func TestLine(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.Line(Vec2{X: 0, Y: 5}, Vec2{X: 10, Y: 5}, 2, ColorWhite)
	require.Len(t, dl.VtxBuffer, 4)
	assert.Equal(t, [2]float32{0, 6}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{10, 6}, dl.VtxBuffer[1].Pos)
	assert.Equal(t, [2]float32{10, 4}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, [2]float32{0, 4}, dl.VtxBuffer[3].Pos)

	// Degenerate segments still draw without dividing by zero.
	dl.Line(Vec2{X: 1, Y: 1}, Vec2{X: 1, Y: 1}, 2, ColorWhite)
	assert.Len(t, dl.VtxBuffer, 8)
}

func TestTextBatchesByTexture(t *testing.T) {
	font := NewBasicAtlasFont()
	font.SetTextureID(7)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.SetFont(font)

	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorWhite)
	layout := FontMeasurer{Font: font}.Measure("ab", FontSpec{Size: 13}, 0)
	dl.Text(Vec2{X: 5, Y: 5}, layout, ColorWhite)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, uint32(7), dl.CmdBuffer[1].TextureID)
	assert.Equal(t, uint32(12), dl.CmdBuffer[1].ElemCount)
	assert.Equal(t, uint32(4), dl.CmdBuffer[1].VertexOffset)
	assert.Equal(t, uint16(0), dl.IdxBuffer[dl.CmdBuffer[1].IndexOffset], "indices are relative to the command")

	assert.Equal(t, [2]float32{5, 5}, dl.VtxBuffer[4].Pos)
}

func TestTextWithoutFont(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.Text(Vec2{}, TextLayout{Lines: []string{"x"}, LineHeight: 10}, ColorWhite)
	assert.Empty(t, dl.VtxBuffer)
}

func TestShadow(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.Shadow(Rect{W: 10, H: 10}, 0, Shadow{Offset: Vec2{X: 2, Y: 3}, Spread: 1, Color: RGBA(0, 0, 0, 120)})
	require.Len(t, dl.VtxBuffer, 4)
	assert.Equal(t, [2]float32{1, 2}, dl.VtxBuffer[0].Pos)

	dl.Clear()
	dl.Shadow(Rect{W: 10, H: 10}, 0, Shadow{Blur: 6, Color: RGBA(0, 0, 0, 120)})
	require.NotEmpty(t, dl.VtxBuffer)
	for _, v := range dl.VtxBuffer {
		_, _, _, a := UnpackRGBA(v.Color)
		assert.Equal(t, uint8(120/shadowLayers), a)
	}

	dl.Clear()
	dl.Shadow(Rect{W: 10, H: 10}, 0, Shadow{Blur: 6})
	assert.Empty(t, dl.VtxBuffer, "transparent shadows draw nothing")
}

func TestFinalizeDropsEmptyCommands(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.SetTexture(3)
	dl.SetTexture(0)
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorWhite)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
}

func TestDrawListPoolClears(t *testing.T) {
	dl := AcquireDrawList()
	dl.FillRect(Rect{W: 10, H: 10}, 0, ColorWhite)
	ReleaseDrawList(dl)

	dl = AcquireDrawList()
	defer ReleaseDrawList(dl)
	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.IdxBuffer)
	assert.Empty(t, dl.CmdBuffer)
}
