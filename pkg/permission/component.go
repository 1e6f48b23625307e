package permission

// Icon is a terminal glyph with a plain ASCII fallback for terminals that
// cannot draw it.
type Icon struct {
	Glyph string
	ASCII string
}

// NewIcon builds an icon. An empty fallback reuses the glyph.
func NewIcon(glyph, ascii string) Icon {
	if ascii == "" {
		ascii = glyph
	}
	return Icon{Glyph: glyph, ASCII: ascii}
}

// IsZero reports whether neither form is set.
func (i Icon) IsZero() bool {
	return i.Glyph == "" && i.ASCII == ""
}

// Render picks the glyph or the fallback.
func (i Icon) Render(ascii bool) string {
	if ascii && i.ASCII != "" {
		return i.ASCII
	}
	if i.Glyph == "" {
		return i.ASCII
	}
	return i.Glyph
}

// Component is the display metadata of one permission kind.
type Component struct {
	Title       string
	Description string
	Icon        Icon
}

// Option overrides part of a Component. Empty values are ignored so callers
// can pass only what they want to change.
type Option func(*Component)

// WithTitle replaces the title.
func WithTitle(title string) Option {
	return func(c *Component) {
		if title != "" {
			c.Title = title
		}
	}
}

// WithDescription replaces the description.
func WithDescription(description string) Option {
	return func(c *Component) {
		if description != "" {
			c.Description = description
		}
	}
}

// WithIcon replaces the icon.
func WithIcon(icon Icon) Option {
	return func(c *Component) {
		if !icon.IsZero() {
			c.Icon = icon
		}
	}
}

// With returns a copy of c with opts applied.
func (c Component) With(opts ...Option) Component {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

var defaultComponents = [kindCount]Component{
	KindCamera: {
		Title:       "Camera",
		Description: "Allow to use your camera",
		Icon:        NewIcon("📷", "[cam]"),
	},
	KindPhoto: {
		Title:       "Photo",
		Description: "Allow to access your photos",
		Icon:        NewIcon("🖼", "[img]"),
	},
	KindLocation: {
		Title:       "Location",
		Description: "Allow to access your location",
		Icon:        NewIcon("📍", "[loc]"),
	},
	KindLocationAlways: {
		Title:       "Location Always",
		Description: "Allow to access your location in the background",
		Icon:        NewIcon("🧭", "[gps]"),
	},
	KindMicrophone: {
		Title:       "Microphone",
		Description: "Allow to record with microphone",
		Icon:        NewIcon("🎤", "[mic]"),
	},
	KindNotification: {
		Title:       "Notification",
		Description: "Allow to send notifications",
		Icon:        NewIcon("🔔", "[ntf]"),
	},
	KindCalendar: {
		Title:       "Calendar",
		Description: "Allow to access calendar",
		Icon:        NewIcon("📅", "[cal]"),
	},
	KindBluetooth: {
		Title:       "Bluetooth",
		Description: "Allow to use bluetooth",
		Icon:        NewIcon("🔵", "[bt]"),
	},
	KindTracking: {
		Title:       "Tracking",
		Description: "Allow to track your activity across apps",
		Icon:        NewIcon("👁", "[trk]"),
	},
	KindContacts: {
		Title:       "Contacts",
		Description: "Allow to access your contacts",
		Icon:        NewIcon("👥", "[con]"),
	},
	KindMotion: {
		Title:       "Motion",
		Description: "Allow to access motion sensor data",
		Icon:        NewIcon("🏃", "[mot]"),
	},
	KindReminders: {
		Title:       "Reminders",
		Description: "Allow to access reminders",
		Icon:        NewIcon("📝", "[rem]"),
	},
	KindSpeech: {
		Title:       "Speech",
		Description: "Allow to access speech recognition",
		Icon:        NewIcon("🗣", "[spk]"),
	},
	KindHealth: {
		Title:       "Health",
		Description: "Allow to access your health information",
		Icon:        NewIcon("❤", "[hlt]"),
	},
}

// DefaultComponent returns the seeded metadata for kind.
func DefaultComponent(kind Kind) Component {
	mustValid(kind)
	return defaultComponents[kind]
}
