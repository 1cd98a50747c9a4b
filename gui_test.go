package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/notify"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastVtx     int
	err         error
	width       int
	height      int
}

func (m *mockRenderer) Render(dl *notify.DrawList) error {
	m.renderCalls++
	m.lastVtx = len(dl.VtxBuffer)
	return m.err
}

func (m *mockRenderer) Resize(width, height int) {
	m.width, m.height = width, height
}

// uploadingRenderer also accepts font atlases.
type uploadingRenderer struct {
	mockRenderer
	uploads int
	err     error
}

func (u *uploadingRenderer) UploadFont(f *notify.AtlasFont) error {
	u.uploads++
	if u.err != nil {
		return u.err
	}
	f.SetTextureID(99)
	return nil
}

func TestOverlayBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ov, err := notify.NewOverlay(renderer, nil, notify.WithTheme(notify.GTATheme()))
	require.NoError(t, err)

	input := notify.NewInputState()
	displaySize := notify.Vec2{X: 1920, Y: 1080}

	f := ov.Begin(input, displaySize, 0.016)
	require.NotNil(t, f)
	assert.Equal(t, displaySize, f.ScreenSize)
	assert.Equal(t, notify.GTATheme(), f.Theme)

	ov.Toasts().Info("Hello World")
	require.NoError(t, ov.End())

	assert.Equal(t, 1, renderer.renderCalls)
	assert.Positive(t, renderer.lastVtx)
	assert.True(t, ov.NeedsRepaint(), "the new toast is still sliding in")
}

func TestOverlaySkipsEmptyFrames(t *testing.T) {
	renderer := &mockRenderer{}
	ov, err := notify.NewOverlay(renderer, notify.New())
	require.NoError(t, err)

	ov.Begin(notify.NewInputState(), notify.Vec2{X: 800, Y: 600}, 0.016)
	require.NoError(t, ov.End())

	assert.Equal(t, 0, renderer.renderCalls)
	assert.False(t, ov.NeedsRepaint())

	// End without Begin is a no-op.
	require.NoError(t, ov.End())
}

func TestOverlayRenderError(t *testing.T) {
	renderer := &mockRenderer{err: errors.New("device lost")}
	ov, err := notify.NewOverlay(renderer, nil)
	require.NoError(t, err)

	ov.Toasts().Warning("x")
	ov.Begin(nil, notify.Vec2{X: 800, Y: 600}, 0.016)
	err = ov.End()
	require.Error(t, err)
	assert.ErrorIs(t, err, renderer.err)
}

func TestOverlayUploadsDefaultFont(t *testing.T) {
	renderer := &uploadingRenderer{}
	_, err := notify.NewOverlay(renderer, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, renderer.uploads)

	font := notify.NewBasicAtlasFont()
	_, err = notify.NewOverlay(renderer, nil, notify.WithOverlayFont(font))
	require.NoError(t, err)
	assert.Equal(t, 1, renderer.uploads, "caller-supplied fonts are not re-uploaded")

	failing := &uploadingRenderer{err: errors.New("out of memory")}
	_, err = notify.NewOverlay(failing, nil)
	assert.ErrorIs(t, err, failing.err)
}

func TestOverlayRepaintHook(t *testing.T) {
	calls := 0
	ov, err := notify.NewOverlay(&mockRenderer{}, nil, notify.WithRepaintHook(func() { calls++ }))
	require.NoError(t, err)

	ov.Toasts().Success("done")
	ov.Begin(notify.NewInputState(), notify.Vec2{X: 800, Y: 600}, 0.016)
	require.NoError(t, ov.End())
	assert.Equal(t, 1, calls)
}

func TestOverlayClickDismisses(t *testing.T) {
	toasts := notify.New(notify.WithDefaultDuration(0), notify.WithAnchor(notify.TopLeft))
	ov, err := notify.NewOverlay(&mockRenderer{}, toasts, notify.WithMeasurer(notify.NewMonoMeasurer()))
	require.NoError(t, err)

	toast := toasts.Info("close me")
	input := notify.NewInputState()
	screen := notify.Vec2{X: 800, Y: 600}
	for i := 0; i < 30; i++ {
		ov.Begin(input, screen, 0.05)
		require.NoError(t, ov.End())
	}
	require.Equal(t, notify.StateIdle, toast.State())

	// Top-left stack: the cross is the last lineHeight square before the
	// right padding, vertically centred.
	size := toast.Size()
	x := 8 + size.X - 10 - 8
	y := 8 + size.Y/2
	input.SetMousePos(x, y)
	input.SetMouseButton(notify.MouseButtonLeft, true)
	ov.Begin(input, screen, 0.05)
	require.NoError(t, ov.End())

	assert.Equal(t, notify.StateDisappear, toast.State())
}

func TestOverlayClickAfterRelease(t *testing.T) {
	toasts := notify.New(notify.WithDefaultDuration(0), notify.WithAnchor(notify.TopLeft))
	ov, err := notify.NewOverlay(&mockRenderer{}, toasts, notify.WithMeasurer(notify.NewMonoMeasurer()))
	require.NoError(t, err)

	a := toasts.Info("close me")
	b := toasts.Info("close me")
	input := notify.NewInputState()
	screen := notify.Vec2{X: 800, Y: 600}
	frame := func() {
		ov.Begin(input, screen, 0.05)
		require.NoError(t, ov.End())
	}
	for i := 0; i < 30; i++ {
		frame()
	}
	require.Equal(t, notify.StateIdle, b.State())

	size := a.Size()
	x := 8 + size.X - 10 - 8
	aY := 8 + size.Y/2
	bY := aY + size.Y + 8

	// Button events land between frames, the way window callbacks do.
	input.SetMousePos(x, aY)
	input.SetMouseButton(notify.MouseButtonLeft, true)
	frame()
	require.Equal(t, notify.StateDisappear, a.State())
	assert.True(t, toasts.Held())
	assert.False(t, input.MouseClicked(notify.MouseButtonLeft), "End clears the click edge")

	input.SetMouseButton(notify.MouseButtonLeft, false)
	frame()
	assert.False(t, toasts.Held())
	assert.False(t, input.MouseReleased(notify.MouseButtonLeft), "End clears the release edge")

	input.SetMousePos(x, bY)
	input.SetMouseButton(notify.MouseButtonLeft, true)
	frame()
	assert.Equal(t, notify.StateDisappear, b.State())
}

func TestOverlayResize(t *testing.T) {
	renderer := &mockRenderer{}
	ov, err := notify.NewOverlay(renderer, nil)
	require.NoError(t, err)

	ov.Resize(1280, 720)
	assert.Equal(t, 1280, renderer.width)
	assert.Equal(t, 720, renderer.height)

	ov.SetTheme(notify.LightTheme())
	assert.Equal(t, notify.LightTheme(), ov.Theme())
}
