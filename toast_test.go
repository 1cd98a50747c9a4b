package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToastDefaults(t *testing.T) {
	toast := NewInfo("hello")

	assert.Equal(t, "hello", toast.Caption())
	assert.Equal(t, LevelInfo, toast.Level().Kind())
	assert.Equal(t, StateAppear, toast.State())
	assert.Equal(t, float32(0), toast.Value())
	assert.True(t, toast.Closable())
	assert.True(t, toast.showProgressBar)
	assert.Equal(t, Vec2{X: initialToastWidth, Y: initialToastHeight}, toast.Size())

	d, ok := toast.Remaining()
	require.True(t, ok)
	assert.Equal(t, DefaultDuration, d)
	assert.Equal(t, float32(1), toast.Progress())
}

func TestErrorToastNotClosable(t *testing.T) {
	assert.False(t, NewError("boom").Closable())
	assert.True(t, NewError("boom").SetClosable(true).Closable())
}

func TestToastIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBasic("x").ID().String()
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestSetters(t *testing.T) {
	toast := NewBasic("a").
		SetCaption("b").
		SetLevel(Warning).
		SetFont(FontSpec{Size: 20}).
		SetShowProgressBar(false).
		SetWidth(-10).
		SetHeight(100)

	assert.Equal(t, "b", toast.Caption())
	assert.Equal(t, LevelWarning, toast.Level().Kind())
	require.NotNil(t, toast.font)
	assert.Equal(t, float32(20), toast.font.Size)
	assert.False(t, toast.showProgressBar)
	assert.Equal(t, float32(0), toast.minWidth)
	assert.Equal(t, float32(100), toast.Size().Y)
}

func TestSetDuration(t *testing.T) {
	tests := []struct {
		name    string
		d       time.Duration
		expires bool
	}{
		{"positive", 1500 * time.Millisecond, true},
		{"zero", 0, false},
		{"negative", -time.Second, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toast := NewInfo("x").SetDuration(tc.d)
			d, ok := toast.Remaining()
			assert.Equal(t, tc.expires, ok)
			if tc.expires {
				assert.Equal(t, tc.d, d)
			}
		})
	}

	toast := NewInfo("x").SetNoExpiry()
	_, ok := toast.Remaining()
	assert.False(t, ok)
	assert.Equal(t, float32(1), toast.Progress())
}

func TestCountDown(t *testing.T) {
	toast := NewInfo("x").SetDuration(time.Second)

	assert.False(t, toast.countDown(0.5), "only idle toasts count down")
	d, _ := toast.Remaining()
	assert.Equal(t, time.Second, d)

	toast.state = StateIdle
	assert.True(t, toast.countDown(0.25))
	assert.InDelta(t, 0.75, toast.Progress(), 1e-6)
	assert.Equal(t, StateIdle, toast.State())

	assert.True(t, toast.countDown(2))
	assert.Equal(t, StateDisappear, toast.State())
	d, _ = toast.Remaining()
	assert.Equal(t, time.Duration(0), d, "remaining is clamped")
	assert.Equal(t, float32(0), toast.Progress())

	forever := NewInfo("y").SetNoExpiry()
	forever.state = StateIdle
	assert.False(t, forever.countDown(100))
	assert.Equal(t, StateIdle, forever.State())
}

func TestAnimate(t *testing.T) {
	toast := NewInfo("x")

	assert.True(t, toast.animate(0.6))
	assert.Equal(t, StateAppear, toast.State())
	assert.InDelta(t, 0.6, toast.Value(), 1e-6)

	assert.True(t, toast.animate(0.6))
	assert.Equal(t, StateIdle, toast.State())
	assert.Equal(t, float32(1), toast.Value(), "value is clamped")

	assert.False(t, toast.animate(0.6), "idle toasts do not move")
	assert.Equal(t, float32(1), toast.Value())

	toast.Dismiss()
	assert.True(t, toast.animate(0.7))
	assert.Equal(t, StateDisappear, toast.State())
	assert.True(t, toast.animate(0.7))
	assert.Equal(t, StateDisappeared, toast.State())
	assert.Equal(t, float32(0), toast.Value())

	assert.False(t, toast.animate(1))
	assert.Equal(t, StateDisappeared, toast.State())
}

func TestDismissIsIdempotent(t *testing.T) {
	toast := NewInfo("x")
	toast.Dismiss()
	assert.Equal(t, StateDisappear, toast.State())

	toast.state = StateDisappeared
	toast.Dismiss()
	assert.Equal(t, StateDisappeared, toast.State(), "a finished toast does not restart its exit")
}

func TestStateHelpers(t *testing.T) {
	assert.True(t, StateAppear.Appearing())
	assert.True(t, StateIdle.Idling())
	assert.True(t, StateDisappear.Disappearing())
	assert.True(t, StateDisappeared.Disappeared())
	assert.False(t, StateIdle.Appearing())
	assert.Equal(t, "disappear", StateDisappear.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestEaseInCubic(t *testing.T) {
	assert.Equal(t, float32(0), EaseInCubic(0))
	assert.Equal(t, float32(1), EaseInCubic(1))
	assert.InDelta(t, 0.875, EaseInCubic(0.5), 1e-6)

	prev := EaseInCubic(0)
	for i := 1; i <= 20; i++ {
		v := EaseInCubic(float32(i) / 20)
		assert.Greater(t, v, prev)
		prev = v
	}
}

func TestCalcAnchoredRect(t *testing.T) {
	toast := NewBasic("x")
	toast.width, toast.height = 100, 30
	pos := Vec2{X: 500, Y: 200}

	tests := []struct {
		anchor Anchor
		want   Rect
	}{
		{TopRight, Rect{X: 400, Y: 200, W: 100, H: 30}},
		{TopLeft, Rect{X: 500, Y: 200, W: 100, H: 30}},
		{BottomRight, Rect{X: 400, Y: 170, W: 100, H: 30}},
		{BottomLeft, Rect{X: 500, Y: 170, W: 100, H: 30}},
		{TopMiddle, Rect{X: 450, Y: 200, W: 100, H: 30}},
		{BottomMiddle, Rect{X: 450, Y: 170, W: 100, H: 30}},
	}
	for _, tc := range tests {
		t.Run(tc.anchor.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, toast.CalcAnchoredRect(pos, tc.anchor))
		})
	}
}

func TestAdjustNextPos(t *testing.T) {
	toast := NewBasic("x")
	toast.height = 30

	pos := Vec2{X: 10, Y: 100}
	toast.AdjustNextPos(&pos, TopLeft, 5)
	assert.Equal(t, Vec2{X: 10, Y: 135}, pos)

	pos = Vec2{X: 10, Y: 100}
	toast.AdjustNextPos(&pos, BottomMiddle, 5)
	assert.Equal(t, Vec2{X: 10, Y: 65}, pos)
}

func TestLevelIcon(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		level Level
		glyph string
		color uint32
		ok    bool
	}{
		{Info, glyphInfo, theme.InfoColor, true},
		{Warning, glyphWarning, theme.WarningColor, true},
		{Error, glyphError, theme.ErrorColor, true},
		{Success, glyphSuccess, theme.SuccessColor, true},
		{None, "", 0, false},
		{Custom("*", RGB(9, 9, 9)), "*", RGB(9, 9, 9), true},
		{Custom("", RGB(9, 9, 9)), "", 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.level.Kind().String(), func(t *testing.T) {
			glyph, color, ok := tc.level.Icon(theme)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.glyph, glyph)
			assert.Equal(t, tc.color, color)
		})
	}

	assert.Equal(t, LevelInfo, Level{}.Kind(), "zero level is info")
}
