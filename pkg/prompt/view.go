package prompt

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

// Presentation selects how the prompt is drawn.
type Presentation int

const (
	PresentationModal Presentation = iota
	PresentationDialog
)

func (p Presentation) String() string {
	if p == PresentationDialog {
		return "dialog"
	}
	return "modal"
}

// ParsePresentation resolves "modal" or "dialog".
func ParsePresentation(name string) (Presentation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "modal":
		return PresentationModal, nil
	case "dialog":
		return PresentationDialog, nil
	default:
		return PresentationModal, fmt.Errorf("unknown presentation %q: want modal or dialog", name)
	}
}

// View is the customizable handle around a shared Store. Every decorator
// mutates the store in place and returns the same *View, so calls chain in
// any order and later calls win on the fields they touch.
type View struct {
	store        *Store
	presentation Presentation
	kinds        []permission.Kind
	log          zerolog.Logger
}

// NewView wraps store. A nil store is replaced by NewStore(nil). Duplicate
// kinds are dropped.
func NewView(presentation Presentation, store *Store, kinds ...permission.Kind) *View {
	if store == nil {
		store = NewStore(nil)
	}
	return &View{
		store:        store,
		presentation: presentation,
		kinds:        dedupeKinds(kinds),
		log:          zerolog.Nop(),
	}
}

// Modal returns a modal view over a fresh store.
func Modal(kinds ...permission.Kind) *View {
	return NewView(PresentationModal, nil, kinds...)
}

// Dialog returns a dialog view over a fresh store.
func Dialog(kinds ...permission.Kind) *View {
	return NewView(PresentationDialog, nil, kinds...)
}

// Store returns the shared store.
func (v *View) Store() *Store {
	return v.store
}

// Presentation reports how the view is drawn.
func (v *View) Presentation() Presentation {
	return v.presentation
}

// Kinds returns a copy of the requested kinds.
func (v *View) Kinds() []permission.Kind {
	return append([]permission.Kind(nil), v.kinds...)
}

// WithLogger attaches a logger that traces each decorator at debug level.
func (v *View) WithLogger(log zerolog.Logger) *View {
	v.log = log.With().Str("presentation", v.presentation.String()).Logger()
	return v
}

// SetAccentColor sets the primary accent only.
func (v *View) SetAccentColor(primary style.Fill) *View {
	return v.SetAccentColors(primary, style.Fill{})
}

// SetAccentColors sets the primary and tertiary accents. An unset argument
// keeps the current accent. Button tints still derived from the accents
// follow them.
func (v *View) SetAccentColors(primary, tertiary style.Fill) *View {
	v.store.ButtonColors = v.store.ButtonColors.WithAccent(primary, tertiary)
	v.trace("SetAccentColors").
		Stringer("primary", v.store.ButtonColors.PrimaryColor).
		Stringer("tertiary", v.store.ButtonColors.TertiaryColor).
		Msg("button accents updated")
	return v
}

// SetButtonColors replaces the button colours. Unset fields of colors keep
// their current value.
func (v *View) SetButtonColors(colors style.AllButtonColors) *View {
	v.store.ButtonColors = v.store.ButtonColors.Merge(colors)
	v.trace("SetButtonColors").Msg("button colours replaced")
	return v
}

// SetIdleButtonColor tints buttons that have not been answered yet.
func (v *View) SetIdleButtonColor(foreground, background style.Fill) *View {
	current := &v.store.ButtonColors.ButtonIdle
	*current = current.Merge(style.ButtonColor{Foreground: foreground, Background: background})
	v.trace("SetIdleButtonColor").Msg("idle button tint updated")
	return v
}

// SetAllowedButtonColor tints buttons of granted permissions.
func (v *View) SetAllowedButtonColor(foreground, background style.Fill) *View {
	current := &v.store.ButtonColors.ButtonAllowed
	*current = current.Merge(style.ButtonColor{Foreground: foreground, Background: background})
	v.trace("SetAllowedButtonColor").Msg("allowed button tint updated")
	return v
}

// SetDeniedButtonColor tints buttons of refused permissions.
func (v *View) SetDeniedButtonColor(foreground, background style.Fill) *View {
	current := &v.store.ButtonColors.ButtonDenied
	*current = current.Merge(style.ButtonColor{Foreground: foreground, Background: background})
	v.trace("SetDeniedButtonColor").Msg("denied button tint updated")
	return v
}

// SetBackgroundColors replaces the background colours. Unset fields of
// colors keep their current value.
func (v *View) SetBackgroundColors(colors style.BackgroundColors) *View {
	v.store.BackgroundColors = v.store.BackgroundColors.Merge(colors)
	v.trace("SetBackgroundColors").Msg("background colours replaced")
	return v
}

// SetModalBackgroundColors updates the modal surfaces. Unset arguments keep
// the current value.
func (v *View) SetModalBackgroundColors(modalBackground, modalCardBackground style.Fill) *View {
	v.store.BackgroundColors = v.store.BackgroundColors.Merge(style.BackgroundColors{
		ModalBackground:     modalBackground,
		ModalCardBackground: modalCardBackground,
	})
	v.trace("SetModalBackgroundColors").
		Stringer("modal_background", v.store.BackgroundColors.ModalBackground).
		Stringer("modal_card_background", v.store.BackgroundColors.ModalCardBackground).
		Msg("modal background updated")
	return v
}

// SetDialogBackgroundColors updates the dialog surface and backdrop. Unset
// arguments keep the current value.
func (v *View) SetDialogBackgroundColors(dialogBackground style.Fill, blur style.BlurStyle) *View {
	v.store.BackgroundColors = v.store.BackgroundColors.Merge(style.BackgroundColors{
		DialogBackground: dialogBackground,
		DialogBlurStyle:  blur,
	})
	v.trace("SetDialogBackgroundColors").
		Stringer("dialog_background", v.store.BackgroundColors.DialogBackground).
		Stringer("dialog_blur_style", v.store.BackgroundColors.DialogBlurStyle).
		Msg("dialog background updated")
	return v
}

// SetDescriptionColor sets the foreground of description text.
func (v *View) SetDescriptionColor(fill style.Fill) *View {
	v.store.DescriptionForeground = fill.Or(v.store.DescriptionForeground)
	v.trace("SetDescriptionColor").Stringer("description", v.store.DescriptionForeground).Msg("description colour updated")
	return v
}

// SetPermissionComponent overrides the metadata of one kind.
func (v *View) SetPermissionComponent(kind permission.Kind, opts ...permission.Option) *View {
	v.store.Components.Set(kind, opts...)
	v.trace("SetPermissionComponent").
		Stringer("kind", kind).
		Str("title", v.store.Components.Get(kind).Title).
		Msg("permission component updated")
	return v
}

// ChangeHeader replaces the prompt title. An empty string keeps it.
func (v *View) ChangeHeader(text string) *View {
	if text != "" {
		v.store.MainText.Header = text
	}
	v.trace("ChangeHeader").Msg("header updated")
	return v
}

// ChangeHeaderDescription replaces the text under the title.
func (v *View) ChangeHeaderDescription(text string) *View {
	if text != "" {
		v.store.MainText.HeaderDescription = text
	}
	v.trace("ChangeHeaderDescription").Msg("header description updated")
	return v
}

// ChangeBottomDescription replaces the text under the permission list.
func (v *View) ChangeBottomDescription(text string) *View {
	if text != "" {
		v.store.MainText.BottomDescription = text
	}
	v.trace("ChangeBottomDescription").Msg("bottom description updated")
	return v
}

// SetAutoDismiss toggles closing the prompt once everything is allowed.
func (v *View) SetAutoDismiss(enabled bool) *View {
	v.store.Behavior.AutoDismiss = enabled
	v.trace("SetAutoDismiss").Bool("enabled", enabled).Msg("behaviour updated")
	return v
}

// SetAutoCheckAuthorization toggles querying permission states on open.
func (v *View) SetAutoCheckAuthorization(enabled bool) *View {
	v.store.Behavior.AutoCheckAuthorization = enabled
	v.trace("SetAutoCheckAuthorization").Bool("enabled", enabled).Msg("behaviour updated")
	return v
}

// SetShowOnAppear toggles presenting the prompt as soon as it is attached.
func (v *View) SetShowOnAppear(enabled bool) *View {
	v.store.Behavior.ShowOnAppear = enabled
	v.trace("SetShowOnAppear").Bool("enabled", enabled).Msg("behaviour updated")
	return v
}

func (v *View) trace(decorator string) *zerolog.Event {
	return v.log.Debug().Str("decorator", decorator)
}

func dedupeKinds(kinds []permission.Kind) []permission.Kind {
	out := make([]permission.Kind, 0, len(kinds))
	seen := make(map[permission.Kind]struct{}, len(kinds))
	for _, kind := range kinds {
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}
		out = append(out, kind)
	}
	return out
}
