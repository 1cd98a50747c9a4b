package notify

import (
	"strings"
	"unicode"
)

// TextWrapMode specifies how text should be wrapped.
type TextWrapMode int

const (
	// WrapModeWord wraps at word boundaries (default for Latin text).
	WrapModeWord TextWrapMode = iota
	// WrapModeChar wraps at character boundaries (for CJK or dense text).
	WrapModeChar
	// WrapModeAuto detects text type and chooses appropriate mode.
	WrapModeAuto
)

// WidthFunc returns the rendered width of a single line.
type WidthFunc func(line string) float32

// WrapText splits text into lines no wider than maxWidth. Explicit newlines
// always break. maxWidth <= 0 disables wrapping.
func WrapText(text string, maxWidth float32, mode TextWrapMode, width WidthFunc) []string {
	paragraphs := strings.Split(text, "\n")
	if maxWidth <= 0 {
		return paragraphs
	}

	var lines []string
	for _, para := range paragraphs {
		m := mode
		if m == WrapModeAuto {
			m = WrapModeWord
			if containsCJK(para) {
				m = WrapModeChar
			}
		}

		var wrapped []string
		if m == WrapModeChar {
			wrapped = wrapByChar(para, maxWidth, width)
		} else {
			wrapped = wrapByWord(para, maxWidth, width)
		}
		if len(wrapped) == 0 {
			// Keep blank lines so the caption height matches what the user typed.
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}
	return lines
}

func wrapByWord(text string, maxWidth float32, width WidthFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current string

	for _, word := range words {
		candidate := current
		if candidate != "" {
			candidate += " "
		}
		candidate += word

		if width(candidate) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
		} else {
			current = candidate
		}
	}

	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func wrapByChar(text string, maxWidth float32, width WidthFunc) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	var lines []string
	var current []rune

	for _, r := range runes {
		candidate := append(current, r)
		if width(string(candidate)) > maxWidth && len(current) > 0 {
			lines = append(lines, string(current))
			current = []rune{r}
		} else {
			current = candidate
		}
	}

	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}

func containsCJK(text string) bool {
	for _, r := range text {
		if isCJKRune(r) {
			return true
		}
	}
	return false
}

func isCJKRune(r rune) bool {
	return unicode.Is(unicode.Han, r) ||
		unicode.Is(unicode.Hiragana, r) ||
		unicode.Is(unicode.Katakana, r) ||
		unicode.Is(unicode.Hangul, r)
}

// layoutLines measures each line and assembles a TextLayout.
func layoutLines(lines []string, font FontSpec, lineHeight float32, width WidthFunc) TextLayout {
	var widest float32
	for _, line := range lines {
		widest = maxf(widest, width(line))
	}
	return TextLayout{
		Lines:      lines,
		Size:       Vec2{X: widest, Y: float32(len(lines)) * lineHeight},
		LineHeight: lineHeight,
		Font:       font,
	}
}
