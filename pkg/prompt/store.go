// Package prompt holds the configuration shared by a permission prompt and
// the fluent View handle a host application uses to customize it.
//
// A Store is created once per presentation with fully defaulted contents,
// mutated through View decorators before display, and read by renderers
// while drawing:
//
//	view := prompt.Modal(permission.KindCamera, permission.KindMicrophone).
//		SetAccentColors(style.Hex("#e11d48"), style.Hex("#fde2e8")).
//		SetModalBackgroundColors(style.Fill{}, style.Hex("#fff1f2")).
//		SetPermissionComponent(permission.KindCamera, permission.WithTitle("Cam"))
//
//	out := render.New(view.Store()).Modal(view.Kinds())
//
// Store is not safe for concurrent mutation. Renderers must treat it as
// read-only for the duration of a render pass.
package prompt

import (
	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

// MainText is the copy around the permission list.
type MainText struct {
	Header            string
	HeaderDescription string
	BottomDescription string
}

// Behavior toggles how the interactive prompt reacts.
type Behavior struct {
	// AutoDismiss closes the prompt once every permission is allowed.
	AutoDismiss bool
	// AutoCheckAuthorization queries current permission states on open.
	AutoCheckAuthorization bool
	// ShowOnAppear presents the prompt as soon as it is attached.
	ShowOnAppear bool
}

// DefaultMainText returns the stock prompt copy.
func DefaultMainText() MainText {
	return MainText{
		Header:            "Need Permissions",
		HeaderDescription: "To make sure that you get the full experience, we need some permissions",
		BottomDescription: "Permissions are necessary for all the features and functions to work properly. If not allowed, you have to enable permissions in settings",
	}
}

// DefaultBehavior returns the stock behaviour flags.
func DefaultBehavior() Behavior {
	return Behavior{
		AutoDismiss:            true,
		AutoCheckAuthorization: true,
		ShowOnAppear:           true,
	}
}

// Store aggregates everything a prompt renderer reads. Fields are open for
// direct access; the store enforces nothing beyond what the value objects do.
type Store struct {
	Platform              style.Platform
	BackgroundColors      style.BackgroundColors
	ButtonColors          style.AllButtonColors
	DescriptionForeground style.Fill
	Components            *permission.ComponentsStore
	MainText              MainText
	Behavior              Behavior
}

// NewStore returns a store with every value defaulted for platform. A nil
// platform selects style.AdaptivePlatform.
func NewStore(platform style.Platform) *Store {
	if platform == nil {
		platform = style.AdaptivePlatform()
	}
	return &Store{
		Platform:              platform,
		BackgroundColors:      style.NewBackgroundColors(platform),
		ButtonColors:          style.NewAllButtonColors(platform),
		DescriptionForeground: platform.Defaults().Description,
		Components:            permission.NewComponentsStore(),
		MainText:              DefaultMainText(),
		Behavior:              DefaultBehavior(),
	}
}

// Defaults returns the defaults of the store's platform.
func (s *Store) Defaults() style.Defaults {
	return s.platform().Defaults()
}

// BackgroundCustomized reports whether the background colours differ from
// the defaults of the store's platform. Values written directly to the field
// are compared against s.Platform, whatever platform built them.
func (s *Store) BackgroundCustomized() bool {
	return !s.BackgroundColors.Equal(style.NewBackgroundColors(s.platform()))
}

// ButtonsCustomized reports whether the button colours differ from the
// defaults of the store's platform.
func (s *Store) ButtonsCustomized() bool {
	return !s.ButtonColors.Equal(s.DefaultButtonColors())
}

// DefaultButtonColors returns the button colours of an untouched store on
// the same platform.
func (s *Store) DefaultButtonColors() style.AllButtonColors {
	return style.NewAllButtonColors(s.platform())
}

// DescriptionCustomized reports whether the description colour differs from
// the platform default.
func (s *Store) DescriptionCustomized() bool {
	return s.DescriptionForeground != s.platform().Defaults().Description
}

// Component is shorthand for s.Components.Get(kind).
func (s *Store) Component(kind permission.Kind) permission.Component {
	return s.Components.Get(kind)
}

// Snapshot returns a copy that shares nothing mutable with s.
func (s *Store) Snapshot() *Store {
	clone := *s
	clone.Components = s.Components.Clone()
	return &clone
}

func (s *Store) platform() style.Platform {
	if s.Platform == nil {
		return style.AdaptivePlatform()
	}
	return s.Platform
}
