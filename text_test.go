package notify

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func runeWidth(line string) float32 { return float32(utf8.RuneCountInString(line)) }

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float32
		mode     TextWrapMode
		want     []string
	}{
		{"unbounded", "hello brave new world", 0, WrapModeWord, []string{"hello brave new world"}},
		{"words", "hello brave new world", 11, WrapModeWord, []string{"hello brave", "new world"}},
		{"long word stays whole", "abcdefgh", 3, WrapModeWord, []string{"abcdefgh"}},
		{"chars", "abcdefg", 3, WrapModeChar, []string{"abc", "def", "g"}},
		{"newlines", "a\n\nb", 0, WrapModeWord, []string{"a", "", "b"}},
		{"newlines wrapped", "a\n\nb", 10, WrapModeWord, []string{"a", "", "b"}},
		{"auto latin", "aa bb", 2, WrapModeAuto, []string{"aa", "bb"}},
		{"auto cjk", "日本語テキスト", 3, WrapModeAuto, []string{"日本語", "テキス", "ト"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WrapText(tc.text, tc.maxWidth, tc.mode, runeWidth))
		})
	}
}

func TestMonoMeasurer(t *testing.T) {
	m := NewMonoMeasurer()

	l := m.Measure("abc", FontSpec{Size: 16}, 0)
	assert.Equal(t, []string{"abc"}, l.Lines)
	assert.Equal(t, Vec2{X: 48, Y: 16}, l.Size)
	assert.Equal(t, float32(16), l.LineHeight)
	assert.Equal(t, 1, l.LineCount())

	l = m.Measure("abc", FontSpec{}, 0)
	assert.Equal(t, Vec2{X: 24, Y: 8}, l.Size, "unsized fonts use the native cell")

	l = m.Measure("ab cd", FontSpec{Size: 8}, 20)
	assert.Equal(t, []string{"ab", "cd"}, l.Lines)
	assert.Equal(t, Vec2{X: 16, Y: 16}, l.Size)
}

func TestFontMeasurer(t *testing.T) {
	m := FontMeasurer{Font: NewBasicAtlasFont(), Wrap: WrapModeAuto}

	l := m.Measure("abc", FontSpec{Size: 26}, 0)
	assert.Equal(t, Vec2{X: 42, Y: 26}, l.Size)
	assert.Equal(t, float32(26), l.LineHeight)

	l = m.Measure("ab\nc", FontSpec{Size: 13}, 0)
	assert.Equal(t, Vec2{X: 14, Y: 26}, l.Size)

	empty := FontMeasurer{}.Measure("abc", FontSpec{Size: 10}, 0)
	assert.Equal(t, 0, empty.LineCount())
	assert.Equal(t, Vec2{}, empty.Size)
}
