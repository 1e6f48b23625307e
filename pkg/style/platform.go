package style

import (
	"fmt"
	"strings"
)

// Defaults is the fixed set of values a platform provides for every field a
// value object can leave unset.
type Defaults struct {
	ModalBackground     Fill
	ModalCardBackground Fill
	DialogBackground    Fill
	DialogBlurStyle     BlurStyle

	Primary  Fill
	Tertiary Fill
	OnAccent Fill
	Danger   Fill

	Description Fill

	// Chrome the renderer draws around the values above.
	Title  Fill
	Border Fill
}

// Platform provides defaults for the value objects. Implementations must
// return the same Defaults on every call.
type Platform interface {
	Name() string
	Defaults() Defaults
}

type palettePlatform struct {
	name     string
	defaults Defaults
}

func (p palettePlatform) Name() string       { return p.name }
func (p palettePlatform) Defaults() Defaults { return p.defaults }

var (
	adaptivePlatform = palettePlatform{
		name: "adaptive",
		defaults: Defaults{
			ModalBackground:     Adaptive("#e2e8f0", "#0b1120"),
			ModalCardBackground: Adaptive("#f9fafb", "#111827"),
			DialogBackground:    Adaptive("#f9fafb", "#1f2937"),
			DialogBlurStyle:     BlurSystemThinMaterial,
			Primary:             Adaptive("#3b82f6", "#60a5fa"),
			Tertiary:            Adaptive("#e2e8f0", "#1e293b"),
			OnAccent:            Adaptive("#f8fafc", "#0b1120"),
			Danger:              Adaptive("#ef4444", "#f87171"),
			Description:         Adaptive("#475569", "#94a3b8"),
			Title:               Adaptive("#111827", "#f9fafb"),
			Border:              Adaptive("#cbd5e1", "#334155"),
		},
	}

	darkPlatform = palettePlatform{
		name: "dark",
		defaults: Defaults{
			ModalBackground:     Hex("#0b1120"),
			ModalCardBackground: Hex("#111827"),
			DialogBackground:    Hex("#1f2937"),
			DialogBlurStyle:     BlurDark,
			Primary:             Hex("#60a5fa"),
			Tertiary:            Hex("#1e293b"),
			OnAccent:            Hex("#0b1120"),
			Danger:              Hex("#f87171"),
			Description:         Hex("#94a3b8"),
			Title:               Hex("#f9fafb"),
			Border:              Hex("#334155"),
		},
	}

	lightPlatform = palettePlatform{
		name: "light",
		defaults: Defaults{
			ModalBackground:     Hex("#e2e8f0"),
			ModalCardBackground: Hex("#f9fafb"),
			DialogBackground:    Hex("#ffffff"),
			DialogBlurStyle:     BlurLight,
			Primary:             Hex("#3b82f6"),
			Tertiary:            Hex("#e2e8f0"),
			OnAccent:            Hex("#f8fafc"),
			Danger:              Hex("#ef4444"),
			Description:         Hex("#475569"),
			Title:               Hex("#111827"),
			Border:              Hex("#cbd5e1"),
		},
	}

	noColorPlatform = palettePlatform{
		name: "none",
		defaults: Defaults{
			ModalBackground:     PlatformDefault(),
			ModalCardBackground: PlatformDefault(),
			DialogBackground:    PlatformDefault(),
			DialogBlurStyle:     BlurSystemMaterial,
			Primary:             PlatformDefault(),
			Tertiary:            PlatformDefault(),
			OnAccent:            PlatformDefault(),
			Danger:              PlatformDefault(),
			Description:         PlatformDefault(),
			Title:               PlatformDefault(),
			Border:              PlatformDefault(),
		},
	}
)

// AdaptivePlatform picks light or dark colours from the terminal background.
// It is the platform used when none is given.
func AdaptivePlatform() Platform { return adaptivePlatform }

// DarkPlatform always uses dark-background colours.
func DarkPlatform() Platform { return darkPlatform }

// LightPlatform always uses light-background colours.
func LightPlatform() Platform { return lightPlatform }

// NoColorPlatform emits no colour for any default.
func NoColorPlatform() Platform { return noColorPlatform }

// PlatformNames lists the names accepted by PlatformByName.
func PlatformNames() []string {
	return []string{adaptivePlatform.name, darkPlatform.name, lightPlatform.name, noColorPlatform.name}
}

// PlatformByName resolves a built-in platform. An empty name selects the
// adaptive platform.
func PlatformByName(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", adaptivePlatform.name:
		return adaptivePlatform, nil
	case darkPlatform.name:
		return darkPlatform, nil
	case lightPlatform.name:
		return lightPlatform, nil
	case noColorPlatform.name, "no-color", "nocolor":
		return noColorPlatform, nil
	default:
		return nil, fmt.Errorf("unknown platform %q", name)
	}
}

func resolvePlatform(p Platform) Platform {
	if p == nil {
		return adaptivePlatform
	}
	return p
}
