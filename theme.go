package notify

// Spacing constants used by toast layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
)

// Theme defines the visual appearance of toasts.
// Background and Foreground come from the host's current visuals; the rest
// are toast specific.
type Theme struct {
	// Host visuals
	Background uint32 // Toast body fill
	Foreground uint32 // Caption text

	// Icon colors per level
	InfoColor    uint32
	WarningColor uint32
	ErrorColor   uint32
	SuccessColor uint32

	// Dismiss cross
	CrossColor        uint32
	CrossHoveredColor uint32 // 0 = brighten CrossColor

	// Progress line under the toast (0 = use Foreground)
	ProgressColor     uint32
	ProgressThickness float32

	// Corner rounding for the toast body
	Rounding float32
}

// DefaultTheme returns a dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: RGB(30, 30, 30),
		Foreground: ColorLightGray,

		InfoColor:    RGB(150, 200, 210),
		WarningColor: RGB(230, 220, 140),
		ErrorColor:   RGB(200, 90, 90),
		SuccessColor: RGB(140, 230, 140),

		CrossColor: ColorGray,

		ProgressThickness: SpaceXS,
		Rounding:          SpaceSM,
	}
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	return Theme{
		Background: RGB(245, 245, 245),
		Foreground: RGB(40, 40, 40),

		InfoColor:    RGB(0, 120, 215),
		WarningColor: RGB(200, 150, 0),
		ErrorColor:   RGB(190, 50, 50),
		SuccessColor: RGB(40, 150, 70),

		CrossColor:        RGB(150, 150, 150),
		CrossHoveredColor: RGB(60, 60, 60),

		ProgressThickness: SpaceXS,
		Rounding:          SpaceSM,
	}
}

// GTATheme returns a GTA San Andreas-inspired theme.
// Sharp corners with cyan/yellow accents reminiscent of the game's menus.
func GTATheme() Theme {
	return Theme{
		Background: RGBA(0, 0, 0, 220),
		Foreground: ColorWhite,

		InfoColor:    RGB(0, 180, 230),
		WarningColor: RGB(255, 200, 0), // GTA yellow
		ErrorColor:   RGB(180, 40, 40),
		SuccessColor: RGB(0, 160, 80),

		CrossColor:        RGB(128, 128, 128),
		CrossHoveredColor: RGB(255, 200, 0),

		ProgressColor:     RGB(0, 150, 200),
		ProgressThickness: 3,
		Rounding:          0,
	}
}

func (t Theme) progressColor() uint32 {
	if t.ProgressColor != 0 {
		return t.ProgressColor
	}
	return t.Foreground
}

func (t Theme) crossColor(hovered bool) uint32 {
	if !hovered {
		return t.CrossColor
	}
	if t.CrossHoveredColor != 0 {
		return t.CrossHoveredColor
	}
	return brighten(t.CrossColor, 0.5)
}
