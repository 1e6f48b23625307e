package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// FillKind tags the variant held by a Fill.
type FillKind uint8

const (
	// FillUnset marks a Fill that was never supplied. Setters treat it as
	// "leave the current value alone".
	FillUnset FillKind = iota
	// FillDefault defers to the terminal's own colour.
	FillDefault
	// FillSolid paints a single adaptive colour.
	FillSolid
	// FillGradient blends two adaptive colours top to bottom.
	FillGradient
)

func (k FillKind) String() string {
	switch k {
	case FillDefault:
		return "default"
	case FillSolid:
		return "solid"
	case FillGradient:
		return "gradient"
	default:
		return "unset"
	}
}

// Fill is a closed styling descriptor for backgrounds, button tints and text.
// The zero value is unset. Fill values are comparable with ==.
type Fill struct {
	kind FillKind
	from lipgloss.AdaptiveColor
	to   lipgloss.AdaptiveColor
}

// Solid returns a fill painting the same colour on light and dark terminals.
func Solid(color lipgloss.Color) Fill {
	return Fill{kind: FillSolid, from: lipgloss.AdaptiveColor{Light: string(color), Dark: string(color)}}
}

// Hex is shorthand for Solid(lipgloss.Color(hex)).
func Hex(hex string) Fill {
	return Solid(lipgloss.Color(hex))
}

// Adaptive returns a solid fill that picks light or dark by terminal background.
func Adaptive(light, dark string) Fill {
	return Fill{kind: FillSolid, from: lipgloss.AdaptiveColor{Light: light, Dark: dark}}
}

// AdaptiveFill wraps an existing lipgloss.AdaptiveColor.
func AdaptiveFill(color lipgloss.AdaptiveColor) Fill {
	return Fill{kind: FillSolid, from: color}
}

// Gradient returns a fill blending from one colour to another.
func Gradient(from, to lipgloss.AdaptiveColor) Fill {
	return Fill{kind: FillGradient, from: from, to: to}
}

// PlatformDefault returns a fill that emits no colour at all.
func PlatformDefault() Fill {
	return Fill{kind: FillDefault}
}

// Kind reports the variant.
func (f Fill) Kind() FillKind {
	return f.kind
}

// IsSet reports whether the fill carries a value.
func (f Fill) IsSet() bool {
	return f.kind != FillUnset
}

// Or returns f when set and fallback otherwise.
func (f Fill) Or(fallback Fill) Fill {
	if f.IsSet() {
		return f
	}
	return fallback
}

// From returns the first colour stop. Solid fills only have this one.
func (f Fill) From() lipgloss.AdaptiveColor {
	return f.from
}

// To returns the last colour stop of a gradient.
func (f Fill) To() lipgloss.AdaptiveColor {
	return f.to
}

// Color resolves the fill to a single terminal colour. Gradients collapse to
// their first stop.
func (f Fill) Color() lipgloss.TerminalColor {
	switch f.kind {
	case FillSolid, FillGradient:
		return f.from
	default:
		return lipgloss.NoColor{}
	}
}

// Blend returns one colour per line for a block of the given height.
func (f Fill) Blend(lines int) []lipgloss.TerminalColor {
	if lines <= 0 {
		return nil
	}
	colors := make([]lipgloss.TerminalColor, lines)
	if f.kind != FillGradient {
		c := f.Color()
		for i := range colors {
			colors[i] = c
		}
		return colors
	}

	for i := range colors {
		t := 0.0
		if lines > 1 {
			t = float64(i) / float64(lines-1)
		}
		colors[i] = lipgloss.AdaptiveColor{
			Light: blendHex(f.from.Light, f.to.Light, t),
			Dark:  blendHex(f.from.Dark, f.to.Dark, t),
		}
	}
	return colors
}

// Foreground applies the fill as text colour.
func (f Fill) Foreground(s lipgloss.Style) lipgloss.Style {
	if f.kind == FillSolid || f.kind == FillGradient {
		return s.Foreground(f.from)
	}
	return s
}

// Background applies the fill as a background colour.
func (f Fill) Background(s lipgloss.Style) lipgloss.Style {
	if f.kind == FillSolid || f.kind == FillGradient {
		return s.Background(f.from)
	}
	return s
}

func (f Fill) String() string {
	switch f.kind {
	case FillDefault:
		return "default"
	case FillSolid:
		return formatAdaptive(f.from)
	case FillGradient:
		return formatAdaptive(f.from) + ".." + formatAdaptive(f.to)
	default:
		return ""
	}
}

// ParseFill parses the textual fill notation used by theme files:
//
//	default            terminal default
//	#ff0000 / 205      solid colour (hex or ANSI index)
//	#ffffff/#000000    adaptive light/dark pair
//	#111..#222         gradient; each stop may be an adaptive pair
func ParseFill(s string) (Fill, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fill{}, nil
	}
	if strings.EqualFold(s, "default") {
		return PlatformDefault(), nil
	}

	if from, to, ok := strings.Cut(s, ".."); ok {
		start, err := parseAdaptive(from)
		if err != nil {
			return Fill{}, err
		}
		end, err := parseAdaptive(to)
		if err != nil {
			return Fill{}, err
		}
		return Gradient(start, end), nil
	}

	color, err := parseAdaptive(s)
	if err != nil {
		return Fill{}, err
	}
	return AdaptiveFill(color), nil
}

func parseAdaptive(s string) (lipgloss.AdaptiveColor, error) {
	s = strings.TrimSpace(s)
	light, dark, pair := strings.Cut(s, "/")
	if !pair {
		dark = light
	}
	if err := checkColor(light); err != nil {
		return lipgloss.AdaptiveColor{}, err
	}
	if err := checkColor(dark); err != nil {
		return lipgloss.AdaptiveColor{}, err
	}
	return lipgloss.AdaptiveColor{Light: strings.TrimSpace(light), Dark: strings.TrimSpace(dark)}, nil
}

func checkColor(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("empty colour")
	}
	if strings.HasPrefix(s, "#") {
		if _, err := colorful.Hex(expandShortHex(s)); err != nil {
			return fmt.Errorf("invalid hex colour %q", s)
		}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return fmt.Errorf("invalid colour %q: want #rrggbb or an ANSI index 0-255", s)
	}
	return nil
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// blendHex mixes two hex colours in Lab space. ANSI indices cannot be
// blended, so the nearer stop wins.
func blendHex(from, to string, t float64) string {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, errA := colorful.Hex(expandShortHex(from))
	b, errB := colorful.Hex(expandShortHex(to))
	if errA != nil || errB != nil {
		if t < 0.5 {
			return from
		}
		return to
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

func formatAdaptive(c lipgloss.AdaptiveColor) string {
	if c.Light == c.Dark {
		return c.Light
	}
	return c.Light + "/" + c.Dark
}
