package style

import (
	"fmt"
	"strings"
)

// BlurStyle is the closed set of backdrop styles a dialog can sit on.
type BlurStyle uint8

const (
	// BlurUnset means no style was supplied.
	BlurUnset BlurStyle = iota
	BlurSystemUltraThinMaterial
	BlurSystemThinMaterial
	BlurSystemMaterial
	BlurSystemThickMaterial
	BlurSystemChromeMaterial
	BlurRegular
	BlurProminent
	BlurLight
	BlurExtraLight
	BlurDark
)

const blurStyleCount = int(BlurDark) + 1

var blurStyleNames = [blurStyleCount]string{
	BlurUnset:                   "",
	BlurSystemUltraThinMaterial: "system_ultra_thin_material",
	BlurSystemThinMaterial:      "system_thin_material",
	BlurSystemMaterial:          "system_material",
	BlurSystemThickMaterial:     "system_thick_material",
	BlurSystemChromeMaterial:    "system_chrome_material",
	BlurRegular:                 "regular",
	BlurProminent:               "prominent",
	BlurLight:                   "light",
	BlurExtraLight:              "extra_light",
	BlurDark:                    "dark",
}

// Backdrop describes how a blur style is approximated in a terminal.
type Backdrop struct {
	Rune  rune
	Faint bool
}

var blurBackdrops = [blurStyleCount]Backdrop{
	BlurUnset:                   {Rune: ' '},
	BlurSystemUltraThinMaterial: {Rune: '░', Faint: true},
	BlurSystemThinMaterial:      {Rune: '░'},
	BlurSystemMaterial:          {Rune: '▒', Faint: true},
	BlurSystemThickMaterial:     {Rune: '▒'},
	BlurSystemChromeMaterial:    {Rune: '▓', Faint: true},
	BlurRegular:                 {Rune: '▒'},
	BlurProminent:               {Rune: '▓'},
	BlurLight:                   {Rune: '░', Faint: true},
	BlurExtraLight:              {Rune: ' '},
	BlurDark:                    {Rune: '▓'},
}

// BlurStyles lists every supported style, excluding BlurUnset.
func BlurStyles() []BlurStyle {
	styles := make([]BlurStyle, 0, blurStyleCount-1)
	for i := 1; i < blurStyleCount; i++ {
		styles = append(styles, BlurStyle(i))
	}
	return styles
}

// IsSet reports whether a style was supplied.
func (b BlurStyle) IsSet() bool {
	return b != BlurUnset && b.Valid()
}

// Valid reports whether b belongs to the enumeration.
func (b BlurStyle) Valid() bool {
	return int(b) < blurStyleCount
}

// Or returns b when set and fallback otherwise.
func (b BlurStyle) Or(fallback BlurStyle) BlurStyle {
	if b.IsSet() {
		return b
	}
	return fallback
}

// Backdrop returns the terminal approximation of the style.
func (b BlurStyle) Backdrop() Backdrop {
	if !b.Valid() {
		return blurBackdrops[BlurUnset]
	}
	return blurBackdrops[b]
}

func (b BlurStyle) String() string {
	if !b.Valid() {
		return fmt.Sprintf("BlurStyle(%d)", uint8(b))
	}
	return blurStyleNames[b]
}

// ParseBlurStyle resolves a snake_case style name.
func ParseBlurStyle(name string) (BlurStyle, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return BlurUnset, nil
	}
	for i := 1; i < blurStyleCount; i++ {
		if blurStyleNames[i] == name {
			return BlurStyle(i), nil
		}
	}
	return BlurUnset, fmt.Errorf("unknown blur style %q", name)
}
