package notify

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the collection options and theme. Fields left
// out keep their defaults.
//
//	anchor: bottom-right
//	spacing: 6
//	margin: [12, 12]
//	duration: 5s
//	pause_on_hover: true
//	theme:
//	  preset: gta
//	  background: "#000000dc"
type Config struct {
	Anchor       string        `yaml:"anchor,omitempty"`
	Reverse      *bool         `yaml:"reverse,omitempty"`
	Spacing      *float32      `yaml:"spacing,omitempty"`
	Margin       []float32     `yaml:"margin,omitempty"`
	Padding      []float32     `yaml:"padding,omitempty"`
	Speed        *float32      `yaml:"speed,omitempty"`
	Duration     string        `yaml:"duration,omitempty"` // Go duration, or "never"
	PauseOnHover *bool         `yaml:"pause_on_hover,omitempty"`
	MaxWidth     *float32      `yaml:"max_width,omitempty"`
	Font         *FontConfig   `yaml:"font,omitempty"`
	Shadow       *ShadowConfig `yaml:"shadow,omitempty"`
	Palette      *ThemeConfig  `yaml:"theme,omitempty"`
}

// FontConfig selects the caption font.
type FontConfig struct {
	Family string  `yaml:"family,omitempty"`
	Size   float32 `yaml:"size,omitempty"`
}

// ShadowConfig describes the drop-shadow. Enabled false removes it.
type ShadowConfig struct {
	Enabled bool      `yaml:"enabled"`
	Offset  []float32 `yaml:"offset,omitempty"`
	Blur    float32   `yaml:"blur,omitempty"`
	Spread  float32   `yaml:"spread,omitempty"`
	Color   string    `yaml:"color,omitempty"`
}

// ThemeConfig overrides theme colors with "#rrggbb" or "#rrggbbaa" strings.
type ThemeConfig struct {
	Preset            string   `yaml:"preset,omitempty"` // dark, light or gta
	Background        string   `yaml:"background,omitempty"`
	Foreground        string   `yaml:"foreground,omitempty"`
	Info              string   `yaml:"info,omitempty"`
	Warning           string   `yaml:"warning,omitempty"`
	Error             string   `yaml:"error,omitempty"`
	Success           string   `yaml:"success,omitempty"`
	Cross             string   `yaml:"cross,omitempty"`
	CrossHovered      string   `yaml:"cross_hovered,omitempty"`
	Progress          string   `yaml:"progress,omitempty"`
	ProgressThickness *float32 `yaml:"progress_thickness,omitempty"`
	Rounding          *float32 `yaml:"rounding,omitempty"`
}

// ParseConfig decodes a YAML config. Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse notify config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read notify config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func vec2Field(name string, v []float32) (Vec2, error) {
	if len(v) != 2 {
		return Vec2{}, fmt.Errorf("%s: want [x, y], got %d values", name, len(v))
	}
	return Vec2{X: v[0], Y: v[1]}, nil
}

// ParseDuration parses a toast duration. "never", "none" and "0" mean the
// toast does not expire.
func ParseDuration(s string) (time.Duration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "never", "none", "0":
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return d, nil
}

// Options converts the config into collection options.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	if c.Anchor != "" {
		a, err := ParseAnchor(c.Anchor)
		if err != nil {
			return nil, fmt.Errorf("anchor: %w", err)
		}
		opts = append(opts, WithAnchor(a))
	}
	if c.Reverse != nil {
		opts = append(opts, WithReverse(*c.Reverse))
	}
	if c.Spacing != nil {
		opts = append(opts, WithSpacing(*c.Spacing))
	}
	if c.Margin != nil {
		m, err := vec2Field("margin", c.Margin)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMargin(m))
	}
	if c.Padding != nil {
		p, err := vec2Field("padding", c.Padding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPadding(p))
	}
	if c.Speed != nil {
		if *c.Speed <= 0 {
			notifyLogger.Warn("ignoring non-positive animation speed", "speed", *c.Speed)
		} else {
			opts = append(opts, WithSpeed(*c.Speed))
		}
	}
	if c.Duration != "" {
		d, err := ParseDuration(c.Duration)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDefaultDuration(d))
	}
	if c.PauseOnHover != nil {
		opts = append(opts, WithPauseOnHover(*c.PauseOnHover))
	}
	if c.MaxWidth != nil {
		opts = append(opts, WithMaxWidth(*c.MaxWidth))
	}
	if c.Font != nil {
		font := FontSpec{Family: c.Font.Family, Size: c.Font.Size}
		if font.Size <= 0 {
			font.Size = DefaultFont.Size
		}
		opts = append(opts, WithFont(font))
	}
	if c.Shadow != nil {
		opt, err := c.Shadow.option()
		if err != nil {
			return nil, fmt.Errorf("shadow: %w", err)
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func (s ShadowConfig) option() (Option, error) {
	if !s.Enabled {
		return WithoutShadow(), nil
	}
	shadow := Shadow{
		Blur:   maxf(s.Blur, 0),
		Spread: s.Spread,
		Color:  RGBA(0, 0, 0, 96),
	}
	if s.Offset != nil {
		off, err := vec2Field("offset", s.Offset)
		if err != nil {
			return nil, err
		}
		shadow.Offset = off
	}
	if s.Color != "" {
		c, err := ParseHexColor(s.Color)
		if err != nil {
			return nil, err
		}
		shadow.Color = c
	}
	return WithShadow(shadow), nil
}

// ThemePreset returns a built-in theme by name.
func ThemePreset(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dark", "default":
		return DefaultTheme(), nil
	case "light":
		return LightTheme(), nil
	case "gta":
		return GTATheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme preset %q", name)
	}
}

// Theme applies the config's theme section on top of base. A preset, if
// named, replaces base before the individual colors are applied.
func (c Config) Theme(base Theme) (Theme, error) {
	tc := c.Palette
	if tc == nil {
		return base, nil
	}

	theme := base
	if tc.Preset != "" {
		t, err := ThemePreset(tc.Preset)
		if err != nil {
			return base, err
		}
		theme = t
	}

	colors := []struct {
		name string
		hex  string
		dst  *uint32
	}{
		{"background", tc.Background, &theme.Background},
		{"foreground", tc.Foreground, &theme.Foreground},
		{"info", tc.Info, &theme.InfoColor},
		{"warning", tc.Warning, &theme.WarningColor},
		{"error", tc.Error, &theme.ErrorColor},
		{"success", tc.Success, &theme.SuccessColor},
		{"cross", tc.Cross, &theme.CrossColor},
		{"cross_hovered", tc.CrossHovered, &theme.CrossHoveredColor},
		{"progress", tc.Progress, &theme.ProgressColor},
	}
	for _, col := range colors {
		if col.hex == "" {
			continue
		}
		v, err := ParseHexColor(col.hex)
		if err != nil {
			return base, fmt.Errorf("theme %s: %w", col.name, err)
		}
		*col.dst = v
	}

	if tc.ProgressThickness != nil {
		theme.ProgressThickness = maxf(*tc.ProgressThickness, 0)
	}
	if tc.Rounding != nil {
		theme.Rounding = maxf(*tc.Rounding, 0)
	}
	return theme, nil
}
