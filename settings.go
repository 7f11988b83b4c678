package main

import (
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"constellation/field"
)

type ColorSetting struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

func (c ColorSetting) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, c.A}
}

func colorSetting(c color.RGBA) ColorSetting {
	return ColorSetting{R: c.R, G: c.G, B: c.B, A: c.A}
}

type FieldSettings struct {
	Divisor       float64 `yaml:"divisor"`
	NarrowDivisor float64 `yaml:"narrow_divisor"`
	MaxDots       int     `yaml:"max_dots"`
	LinkDistance  float64 `yaml:"link_distance"`
	MaxLinkAlpha  float64 `yaml:"max_link_alpha"`
	Speed         float64 `yaml:"speed"`
}

type ThemeSettings struct {
	Background ColorSetting `yaml:"background"`
	Dot        ColorSetting `yaml:"dot"`
	Link       ColorSetting `yaml:"link"`
}

type Settings struct {
	Field  FieldSettings `yaml:"field"`
	Theme  ThemeSettings `yaml:"theme"`
	Preset string        `yaml:"preset"`
}

func DefaultSettings() Settings {
	tun := field.DefaultTuning()
	return Settings{
		Field: FieldSettings{
			Divisor:       tun.Divisor,
			NarrowDivisor: tun.NarrowDivisor,
			MaxDots:       tun.MaxDots,
			LinkDistance:  tun.LinkDistance,
			MaxLinkAlpha:  tun.MaxLinkAlpha,
			Speed:         tun.Speed,
		},
		Theme: ThemeSettings{
			Background: colorSetting(ColorBackground),
			Dot:        colorSetting(ColorDot),
			Link:       colorSetting(ColorLink),
		},
		Preset: "default",
	}
}

// Tuning maps the file settings onto the field knobs. Radii and the
// repopulation threshold are not user-facing and keep their defaults.
func (s Settings) Tuning() field.Tuning {
	tun := field.DefaultTuning()
	tun.Divisor = s.Field.Divisor
	tun.NarrowDivisor = s.Field.NarrowDivisor
	tun.MaxDots = s.Field.MaxDots
	tun.LinkDistance = s.Field.LinkDistance
	tun.MaxLinkAlpha = s.Field.MaxLinkAlpha
	tun.Speed = s.Field.Speed
	return tun
}

// LoadSettings reads the settings file. A missing file is not an error:
// the defaults apply. A malformed file also falls back to defaults, but
// the error is returned so the caller can surface it.
func LoadSettings(filename string) (Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

func SaveSettings(s Settings, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&s); err != nil {
		return err
	}
	return enc.Close()
}
