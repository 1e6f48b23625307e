package config

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/permissionkit/pkg/diff"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
)

// Export captures the effective settings of store as a theme file. Applying
// the result to a fresh store of the same platform reproduces store.
func Export(store *prompt.Store) *ThemeFile {
	bg := store.BackgroundColors
	buttons := store.ButtonColors
	behavior := store.Behavior

	theme := &ThemeFile{
		Background: Background{
			Modal:      bg.ModalBackground.String(),
			ModalCard:  bg.ModalCardBackground.String(),
			Dialog:     bg.DialogBackground.String(),
			DialogBlur: bg.DialogBlurStyle.String(),
		},
		Buttons: Buttons{
			Primary:  buttons.PrimaryColor.String(),
			Tertiary: buttons.TertiaryColor.String(),
			Idle:     ButtonState{Foreground: buttons.ButtonIdle.Foreground.String(), Background: buttons.ButtonIdle.Background.String()},
			Allowed:  ButtonState{Foreground: buttons.ButtonAllowed.Foreground.String(), Background: buttons.ButtonAllowed.Background.String()},
			Denied:   ButtonState{Foreground: buttons.ButtonDenied.Foreground.String(), Background: buttons.ButtonDenied.Background.String()},
		},
		Description: store.DescriptionForeground.String(),
		Text: Text{
			Header:            store.MainText.Header,
			HeaderDescription: store.MainText.HeaderDescription,
			BottomDescription: store.MainText.BottomDescription,
		},
		Behavior: Behavior{
			AutoDismiss:            boolPtr(behavior.AutoDismiss),
			AutoCheckAuthorization: boolPtr(behavior.AutoCheckAuthorization),
			ShowOnAppear:           boolPtr(behavior.ShowOnAppear),
		},
		Components: make(map[string]ComponentOverride),
	}
	if store.Platform != nil {
		theme.Platform = store.Platform.Name()
	}

	for _, entry := range store.Components.Entries() {
		c := entry.Component
		theme.Components[entry.Kind.String()] = ComponentOverride{
			Title:       c.Title,
			Description: c.Description,
			Icon:        c.Icon.Glyph,
			IconASCII:   c.Icon.ASCII,
		}
	}

	return theme
}

// Marshal encodes the theme as YAML with two-space indentation. Map keys are
// emitted sorted, so equal themes encode identically.
func Marshal(theme *ThemeFile) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(theme); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Diff renders a unified diff from the defaults of store's platform to the
// effective settings of store. It is empty when nothing was customized.
func Diff(store *prompt.Store, label string) (string, error) {
	before, err := Marshal(Export(prompt.NewStore(store.Platform)))
	if err != nil {
		return "", err
	}
	after, err := Marshal(Export(store))
	if err != nil {
		return "", err
	}
	return diff.Unified(before, after, "defaults", label), nil
}

func boolPtr(v bool) *bool {
	return &v
}
