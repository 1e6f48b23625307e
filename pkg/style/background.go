package style

// BackgroundColors holds the surfaces of modal and dialog prompts.
type BackgroundColors struct {
	ModalBackground     Fill
	ModalCardBackground Fill
	DialogBackground    Fill
	DialogBlurStyle     BlurStyle

	platform Platform
}

// BackgroundOption overrides one field at construction.
type BackgroundOption func(*BackgroundColors)

// WithModalBackground sets the area behind the modal card.
func WithModalBackground(fill Fill) BackgroundOption {
	return func(b *BackgroundColors) { b.ModalBackground = fill }
}

// WithModalCardBackground sets the modal card surface.
func WithModalCardBackground(fill Fill) BackgroundOption {
	return func(b *BackgroundColors) { b.ModalCardBackground = fill }
}

// WithDialogBackground sets the dialog box surface.
func WithDialogBackground(fill Fill) BackgroundOption {
	return func(b *BackgroundColors) { b.DialogBackground = fill }
}

// WithDialogBlurStyle sets the backdrop drawn around a dialog.
func WithDialogBlurStyle(blur BlurStyle) BackgroundOption {
	return func(b *BackgroundColors) { b.DialogBlurStyle = blur }
}

// NewBackgroundColors builds a value with every field not supplied by opts
// resolved to the platform default. A nil platform means AdaptivePlatform.
func NewBackgroundColors(platform Platform, opts ...BackgroundOption) BackgroundColors {
	platform = resolvePlatform(platform)
	b := BackgroundColors{platform: platform}
	for _, opt := range opts {
		opt(&b)
	}

	d := platform.Defaults()
	b.ModalBackground = b.ModalBackground.Or(d.ModalBackground)
	b.ModalCardBackground = b.ModalCardBackground.Or(d.ModalCardBackground)
	b.DialogBackground = b.DialogBackground.Or(d.DialogBackground)
	b.DialogBlurStyle = b.DialogBlurStyle.Or(d.DialogBlurStyle)
	return b
}

// Platform returns the provider the defaults came from.
func (b BackgroundColors) Platform() Platform {
	return resolvePlatform(b.platform)
}

// Merge returns a copy of b where every set field of override wins.
func (b BackgroundColors) Merge(override BackgroundColors) BackgroundColors {
	b.ModalBackground = override.ModalBackground.Or(b.ModalBackground)
	b.ModalCardBackground = override.ModalCardBackground.Or(b.ModalCardBackground)
	b.DialogBackground = override.DialogBackground.Or(b.DialogBackground)
	b.DialogBlurStyle = override.DialogBlurStyle.Or(b.DialogBlurStyle)
	return b
}

// Equal compares the visible fields.
func (b BackgroundColors) Equal(other BackgroundColors) bool {
	return b.ModalBackground == other.ModalBackground &&
		b.ModalCardBackground == other.ModalCardBackground &&
		b.DialogBackground == other.DialogBackground &&
		b.DialogBlurStyle == other.DialogBlurStyle
}

// HasBeenCustomized reports whether b differs from a freshly built default
// value of the same platform.
func (b BackgroundColors) HasBeenCustomized() bool {
	return !b.Equal(NewBackgroundColors(b.Platform()))
}
