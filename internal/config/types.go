package config

// ThemeFile is the YAML representation of prompt overrides. Every field is
// optional; an empty value leaves the corresponding setting untouched.
type ThemeFile struct {
	Platform    string                      `yaml:"platform,omitempty" validate:"omitempty,platform"`
	Background  Background                  `yaml:"background,omitempty"`
	Buttons     Buttons                     `yaml:"buttons,omitempty"`
	Description string                      `yaml:"description_color,omitempty" validate:"omitempty,fill"`
	Text        Text                        `yaml:"text,omitempty"`
	Behavior    Behavior                    `yaml:"behavior,omitempty"`
	Components  map[string]ComponentOverride `yaml:"components,omitempty" validate:"omitempty,dive,keys,permission_kind,endkeys"`
}

// Background maps to style.BackgroundColors.
type Background struct {
	Modal      string `yaml:"modal,omitempty" validate:"omitempty,fill"`
	ModalCard  string `yaml:"modal_card,omitempty" validate:"omitempty,fill"`
	Dialog     string `yaml:"dialog,omitempty" validate:"omitempty,fill"`
	DialogBlur string `yaml:"dialog_blur,omitempty" validate:"omitempty,blur_style"`
}

// Buttons maps to style.AllButtonColors.
type Buttons struct {
	Primary  string      `yaml:"primary,omitempty" validate:"omitempty,fill"`
	Tertiary string      `yaml:"tertiary,omitempty" validate:"omitempty,fill"`
	Idle     ButtonState `yaml:"idle,omitempty"`
	Allowed  ButtonState `yaml:"allowed,omitempty"`
	Denied   ButtonState `yaml:"denied,omitempty"`
}

// ButtonState is one button's colour pair.
type ButtonState struct {
	Foreground string `yaml:"foreground,omitempty" validate:"omitempty,fill"`
	Background string `yaml:"background,omitempty" validate:"omitempty,fill"`
}

// Text overrides the prompt copy.
type Text struct {
	Header            string `yaml:"header,omitempty"`
	HeaderDescription string `yaml:"header_description,omitempty"`
	BottomDescription string `yaml:"bottom_description,omitempty"`
}

// Behavior flags are pointers so that an absent key differs from false.
type Behavior struct {
	AutoDismiss            *bool `yaml:"auto_dismiss,omitempty"`
	AutoCheckAuthorization *bool `yaml:"auto_check_authorization,omitempty"`
	ShowOnAppear           *bool `yaml:"show_on_appear,omitempty"`
}

// ComponentOverride replaces parts of one permission's display metadata.
type ComponentOverride struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Icon        string `yaml:"icon,omitempty"`
	IconASCII   string `yaml:"icon_ascii,omitempty"`
}

// IsZero reports whether the section sets nothing. yaml.v3 uses it to omit
// empty sections on export.
func (b Background) IsZero() bool { return b == Background{} }

// IsZero reports whether the state sets nothing.
func (s ButtonState) IsZero() bool { return s == ButtonState{} }

// IsZero reports whether the section sets nothing.
func (b Buttons) IsZero() bool { return b == Buttons{} }

// IsZero reports whether the section sets nothing.
func (t Text) IsZero() bool { return t == Text{} }

// IsZero reports whether no flag is present.
func (b Behavior) IsZero() bool {
	return b.AutoDismiss == nil && b.AutoCheckAuthorization == nil && b.ShowOnAppear == nil
}
