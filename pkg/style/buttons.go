package style

// ButtonColor is the tint of a button in one permission state.
type ButtonColor struct {
	Foreground Fill
	Background Fill
}

// Merge returns a copy of c where every set field of override wins.
func (c ButtonColor) Merge(override ButtonColor) ButtonColor {
	c.Foreground = override.Foreground.Or(c.Foreground)
	c.Background = override.Background.Or(c.Background)
	return c
}

// AllButtonColors holds the accent colours and the derived per-state tints
// of the allow buttons.
type AllButtonColors struct {
	PrimaryColor  Fill
	TertiaryColor Fill

	ButtonIdle    ButtonColor
	ButtonAllowed ButtonColor
	ButtonDenied  ButtonColor

	platform Platform
}

// ButtonOption overrides one field at construction.
type ButtonOption func(*AllButtonColors)

// WithPrimaryColor sets the main accent.
func WithPrimaryColor(fill Fill) ButtonOption {
	return func(c *AllButtonColors) { c.PrimaryColor = fill }
}

// WithTertiaryColor sets the secondary accent used behind idle buttons.
func WithTertiaryColor(fill Fill) ButtonOption {
	return func(c *AllButtonColors) { c.TertiaryColor = fill }
}

// WithButtonIdle sets the tint of a button not yet answered.
func WithButtonIdle(color ButtonColor) ButtonOption {
	return func(c *AllButtonColors) { c.ButtonIdle = color }
}

// WithButtonAllowed sets the tint of a granted permission.
func WithButtonAllowed(color ButtonColor) ButtonOption {
	return func(c *AllButtonColors) { c.ButtonAllowed = color }
}

// WithButtonDenied sets the tint of a refused permission.
func WithButtonDenied(color ButtonColor) ButtonOption {
	return func(c *AllButtonColors) { c.ButtonDenied = color }
}

// NewAllButtonColors builds a value whose unset accents take the platform
// defaults and whose unset state tints derive from the accents.
func NewAllButtonColors(platform Platform, opts ...ButtonOption) AllButtonColors {
	platform = resolvePlatform(platform)
	c := AllButtonColors{platform: platform}
	for _, opt := range opts {
		opt(&c)
	}

	d := platform.Defaults()
	c.PrimaryColor = c.PrimaryColor.Or(d.Primary)
	c.TertiaryColor = c.TertiaryColor.Or(d.Tertiary)

	idle, allowed, denied := deriveButtonColors(d, c.PrimaryColor, c.TertiaryColor)
	c.ButtonIdle = idle.Merge(c.ButtonIdle)
	c.ButtonAllowed = allowed.Merge(c.ButtonAllowed)
	c.ButtonDenied = denied.Merge(c.ButtonDenied)
	return c
}

// idle: accent text on the tertiary surface; allowed: inverted accent;
// denied: platform danger.
func deriveButtonColors(d Defaults, primary, tertiary Fill) (idle, allowed, denied ButtonColor) {
	idle = ButtonColor{Foreground: primary, Background: tertiary}
	allowed = ButtonColor{Foreground: d.OnAccent, Background: primary}
	denied = ButtonColor{Foreground: d.OnAccent, Background: d.Danger}
	return idle, allowed, denied
}

// Platform returns the provider the defaults came from.
func (c AllButtonColors) Platform() Platform {
	return resolvePlatform(c.platform)
}

// WithAccent returns a copy with new accents. Unset arguments keep the
// current accent. State tints that still equal their derived value follow
// the new accents; tints set explicitly are kept.
func (c AllButtonColors) WithAccent(primary, tertiary Fill) AllButtonColors {
	d := c.Platform().Defaults()
	oldIdle, oldAllowed, oldDenied := deriveButtonColors(d, c.PrimaryColor, c.TertiaryColor)

	c.PrimaryColor = primary.Or(c.PrimaryColor)
	c.TertiaryColor = tertiary.Or(c.TertiaryColor)
	idle, allowed, denied := deriveButtonColors(d, c.PrimaryColor, c.TertiaryColor)

	c.ButtonIdle = rederive(c.ButtonIdle, oldIdle, idle)
	c.ButtonAllowed = rederive(c.ButtonAllowed, oldAllowed, allowed)
	c.ButtonDenied = rederive(c.ButtonDenied, oldDenied, denied)
	return c
}

func rederive(current, oldDerived, newDerived ButtonColor) ButtonColor {
	if current.Foreground == oldDerived.Foreground {
		current.Foreground = newDerived.Foreground
	}
	if current.Background == oldDerived.Background {
		current.Background = newDerived.Background
	}
	return current
}

// Merge returns a copy of c where every set field of override wins.
func (c AllButtonColors) Merge(override AllButtonColors) AllButtonColors {
	c.PrimaryColor = override.PrimaryColor.Or(c.PrimaryColor)
	c.TertiaryColor = override.TertiaryColor.Or(c.TertiaryColor)
	c.ButtonIdle = c.ButtonIdle.Merge(override.ButtonIdle)
	c.ButtonAllowed = c.ButtonAllowed.Merge(override.ButtonAllowed)
	c.ButtonDenied = c.ButtonDenied.Merge(override.ButtonDenied)
	return c
}

// Equal compares the visible fields.
func (c AllButtonColors) Equal(other AllButtonColors) bool {
	return c.PrimaryColor == other.PrimaryColor &&
		c.TertiaryColor == other.TertiaryColor &&
		c.ButtonIdle == other.ButtonIdle &&
		c.ButtonAllowed == other.ButtonAllowed &&
		c.ButtonDenied == other.ButtonDenied
}

// HasBeenCustomized reports whether c differs from a freshly built default
// value of the same platform.
func (c AllButtonColors) HasBeenCustomized() bool {
	return !c.Equal(NewAllButtonColors(c.Platform()))
}
