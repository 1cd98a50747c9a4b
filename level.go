package notify

// LevelKind is the tag of a Level.
type LevelKind uint8

const (
	LevelInfo LevelKind = iota
	LevelWarning
	LevelError
	LevelSuccess
	LevelNone
	LevelCustom
)

// Built-in icon glyphs. They stay inside ASCII so every bundled atlas can
// draw them.
const (
	glyphInfo    = "i"
	glyphWarning = "!"
	glyphError   = "X"
	glyphSuccess = "+"
)

// Level is the semantic category of a toast. The zero value is Info.
// Custom levels carry their own glyph and color.
type Level struct {
	kind  LevelKind
	glyph string
	color uint32
}

// Predefined levels.
var (
	Info    = Level{kind: LevelInfo}
	Warning = Level{kind: LevelWarning}
	Error   = Level{kind: LevelError}
	Success = Level{kind: LevelSuccess}
	None    = Level{kind: LevelNone}
)

// Custom returns a caller-defined level drawn with glyph in color.
func Custom(glyph string, color uint32) Level {
	return Level{kind: LevelCustom, glyph: glyph, color: color}
}

// Kind returns the level's tag.
func (l Level) Kind() LevelKind { return l.kind }

// Icon resolves the glyph and color to draw for this level.
// ok is false when no icon should be drawn.
func (l Level) Icon(theme Theme) (glyph string, color uint32, ok bool) {
	switch l.kind {
	case LevelInfo:
		return glyphInfo, theme.InfoColor, true
	case LevelWarning:
		return glyphWarning, theme.WarningColor, true
	case LevelError:
		return glyphError, theme.ErrorColor, true
	case LevelSuccess:
		return glyphSuccess, theme.SuccessColor, true
	case LevelCustom:
		if l.glyph == "" {
			return "", 0, false
		}
		return l.glyph, l.color, true
	default:
		return "", 0, false
	}
}

func (k LevelKind) String() string {
	switch k {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	case LevelNone:
		return "none"
	case LevelCustom:
		return "custom"
	default:
		return "unknown"
	}
}
