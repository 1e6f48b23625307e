package config

import (
	"sort"

	permerrors "github.com/alexisbeaulieu97/permissionkit/pkg/errors"
	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

// ResolvePlatform returns the platform named by the theme, or the adaptive
// platform when none is named.
func (t *ThemeFile) ResolvePlatform() (style.Platform, error) {
	platform, err := style.PlatformByName(t.Platform)
	if err != nil {
		return nil, permerrors.NewValidationError("platform", err.Error(), err)
	}
	return platform, nil
}

// NewView builds a view on a fresh store for the theme's platform and
// applies the theme to it.
func (t *ThemeFile) NewView(presentation prompt.Presentation, kinds ...permission.Kind) (*prompt.View, error) {
	platform, err := t.ResolvePlatform()
	if err != nil {
		return nil, err
	}
	view := prompt.NewView(presentation, prompt.NewStore(platform), kinds...)
	if err := t.Apply(view); err != nil {
		return nil, err
	}
	return view, nil
}

// Apply feeds every section of the theme through the view's decorators.
// Nothing is applied when any value fails to parse. The platform key is not
// consulted here; the store keeps whatever platform it was built with.
func (t *ThemeFile) Apply(view *prompt.View) error {
	steps, err := t.plan()
	if err != nil {
		return err
	}
	for _, step := range steps {
		step(view)
	}
	return nil
}

type step func(*prompt.View)

// plan parses every value up front so that Apply is all or nothing.
func (t *ThemeFile) plan() ([]step, error) {
	var (
		steps []step
		p     parser
	)

	if !t.Background.IsZero() {
		modal := p.fill("background.modal", t.Background.Modal)
		card := p.fill("background.modal_card", t.Background.ModalCard)
		dialog := p.fill("background.dialog", t.Background.Dialog)
		blur := p.blur("background.dialog_blur", t.Background.DialogBlur)
		steps = append(steps, func(v *prompt.View) {
			if modal.IsSet() || card.IsSet() {
				v.SetModalBackgroundColors(modal, card)
			}
			if dialog.IsSet() || blur.IsSet() {
				v.SetDialogBackgroundColors(dialog, blur)
			}
		})
	}

	if !t.Buttons.IsZero() {
		primary := p.fill("buttons.primary", t.Buttons.Primary)
		tertiary := p.fill("buttons.tertiary", t.Buttons.Tertiary)
		idle := p.button("buttons.idle", t.Buttons.Idle)
		allowed := p.button("buttons.allowed", t.Buttons.Allowed)
		denied := p.button("buttons.denied", t.Buttons.Denied)
		steps = append(steps, func(v *prompt.View) {
			if primary.IsSet() || tertiary.IsSet() {
				v.SetAccentColors(primary, tertiary)
			}
			if idle != (style.ButtonColor{}) {
				v.SetIdleButtonColor(idle.Foreground, idle.Background)
			}
			if allowed != (style.ButtonColor{}) {
				v.SetAllowedButtonColor(allowed.Foreground, allowed.Background)
			}
			if denied != (style.ButtonColor{}) {
				v.SetDeniedButtonColor(denied.Foreground, denied.Background)
			}
		})
	}

	if t.Description != "" {
		description := p.fill("description_color", t.Description)
		steps = append(steps, func(v *prompt.View) { v.SetDescriptionColor(description) })
	}

	if !t.Text.IsZero() {
		text := t.Text
		steps = append(steps, func(v *prompt.View) {
			v.ChangeHeader(text.Header).
				ChangeHeaderDescription(text.HeaderDescription).
				ChangeBottomDescription(text.BottomDescription)
		})
	}

	if !t.Behavior.IsZero() {
		behavior := t.Behavior
		steps = append(steps, func(v *prompt.View) {
			if behavior.AutoDismiss != nil {
				v.SetAutoDismiss(*behavior.AutoDismiss)
			}
			if behavior.AutoCheckAuthorization != nil {
				v.SetAutoCheckAuthorization(*behavior.AutoCheckAuthorization)
			}
			if behavior.ShowOnAppear != nil {
				v.SetShowOnAppear(*behavior.ShowOnAppear)
			}
		})
	}

	names := make([]string, 0, len(t.Components))
	for name := range t.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kind := p.kind(name)
		override := t.Components[name]
		opts := []permission.Option{
			permission.WithTitle(override.Title),
			permission.WithDescription(override.Description),
		}
		if override.Icon != "" || override.IconASCII != "" {
			opts = append(opts, permission.WithIcon(permission.NewIcon(override.Icon, override.IconASCII)))
		}
		steps = append(steps, func(v *prompt.View) { v.SetPermissionComponent(kind, opts...) })
	}

	if p.err != nil {
		return nil, p.err
	}
	return steps, nil
}

// parser keeps the first conversion error so plan reads straight through.
type parser struct {
	err error
}

func (p *parser) fill(field, value string) style.Fill {
	fill, err := style.ParseFill(value)
	if err != nil && p.err == nil {
		p.err = permerrors.NewValidationError(field, err.Error(), err)
	}
	return fill
}

func (p *parser) blur(field, value string) style.BlurStyle {
	blur, err := style.ParseBlurStyle(value)
	if err != nil && p.err == nil {
		p.err = permerrors.NewValidationError(field, err.Error(), err)
	}
	return blur
}

func (p *parser) button(field string, state ButtonState) style.ButtonColor {
	return style.ButtonColor{
		Foreground: p.fill(field+".foreground", state.Foreground),
		Background: p.fill(field+".background", state.Background),
	}
}

func (p *parser) kind(name string) permission.Kind {
	kind, err := permission.ParseKind(name)
	if err != nil && p.err == nil {
		p.err = permerrors.NewValidationError("components["+name+"]", err.Error(), err)
	}
	return kind
}
