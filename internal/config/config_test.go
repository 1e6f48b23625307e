package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	permerrors "github.com/alexisbeaulieu97/permissionkit/pkg/errors"
	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

const brandTheme = `
platform: dark
background:
  modal_card: "#fff1f2"
  dialog_blur: system_chrome_material
buttons:
  primary: "#e11d48"
  tertiary: "#fde2e8"
  denied:
    background: "#7f1d1d"
description_color: "#64748b"
text:
  header: Grant access
behavior:
  auto_dismiss: false
components:
  camera:
    title: Cam
    icon: "📸"
    icon_ascii: "[c]"
  location-always:
    description: Needed for geofencing
`

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseThemeReadsEverySection(t *testing.T) {
	t.Parallel()

	theme, err := ParseTheme(writeTheme(t, brandTheme))
	require.NoError(t, err)

	assert.Equal(t, "dark", theme.Platform)
	assert.Equal(t, "#fff1f2", theme.Background.ModalCard)
	assert.Equal(t, "system_chrome_material", theme.Background.DialogBlur)
	assert.Equal(t, "#7f1d1d", theme.Buttons.Denied.Background)
	assert.Equal(t, "Grant access", theme.Text.Header)
	require.NotNil(t, theme.Behavior.AutoDismiss)
	assert.False(t, *theme.Behavior.AutoDismiss)
	assert.Nil(t, theme.Behavior.ShowOnAppear)
	assert.Equal(t, "Cam", theme.Components["camera"].Title)
}

func TestParseThemeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *permerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Zero(t, parseErr.Line)
}

func TestDecodeThemeReportsLine(t *testing.T) {
	t.Parallel()

	_, err := DecodeTheme([]byte("text:\n  header: ok\n  header: [broken\n"), "inline")

	var parseErr *permerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "inline", parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestDecodeThemeRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := DecodeTheme([]byte("backgrounds:\n  modal: '#000000'\n"), "inline")
	require.True(t, permerrors.IsParse(err))
}

func TestDecodeEmptyTheme(t *testing.T) {
	t.Parallel()

	theme, err := DecodeTheme(nil, "empty")
	require.NoError(t, err)
	assert.Equal(t, ThemeFile{}, *theme)
}

func TestValidationFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		yaml    string
		field   string
		message string
	}{
		{"bad fill", "background:\n  modal: '#zzzzzz'\n", "background.modal", "not a colour"},
		{"bad blur", "background:\n  dialog_blur: frosted\n", "background.dialog_blur", "unknown blur style"},
		{"bad button", "buttons:\n  idle:\n    foreground: '300'\n", "buttons.idle.foreground", "not a colour"},
		{"bad kind", "components:\n  camrea:\n    title: Cam\n", "components[camrea]", "unknown permission kind"},
		{"bad platform", "platform: amiga\n", "platform", "unknown platform"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeTheme([]byte(tc.yaml), "inline")
			require.Error(t, err)

			var validationErr *permerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Contains(t, validationErr.Message, tc.message)
		})
	}
}

func TestApplyMatchesDecoratorChain(t *testing.T) {
	t.Parallel()

	theme, err := DecodeTheme([]byte(brandTheme), "brand")
	require.NoError(t, err)

	fromFile, err := theme.NewView(prompt.PresentationModal, permission.KindCamera)
	require.NoError(t, err)

	fromCode := prompt.NewView(prompt.PresentationModal, prompt.NewStore(style.DarkPlatform()), permission.KindCamera).
		SetModalBackgroundColors(style.Fill{}, style.Hex("#fff1f2")).
		SetDialogBackgroundColors(style.Fill{}, style.BlurSystemChromeMaterial).
		SetAccentColors(style.Hex("#e11d48"), style.Hex("#fde2e8")).
		SetDeniedButtonColor(style.Fill{}, style.Hex("#7f1d1d")).
		SetDescriptionColor(style.Hex("#64748b")).
		ChangeHeader("Grant access").
		SetAutoDismiss(false).
		SetPermissionComponent(permission.KindCamera,
			permission.WithTitle("Cam"),
			permission.WithIcon(permission.NewIcon("📸", "[c]"))).
		SetPermissionComponent(permission.KindLocationAlways,
			permission.WithDescription("Needed for geofencing"))

	got, want := fromFile.Store(), fromCode.Store()
	assert.Equal(t, want.Platform.Name(), got.Platform.Name())
	assert.True(t, want.BackgroundColors.Equal(got.BackgroundColors))
	assert.True(t, want.ButtonColors.Equal(got.ButtonColors))
	assert.Equal(t, want.DescriptionForeground, got.DescriptionForeground)
	assert.Equal(t, want.MainText, got.MainText)
	assert.Equal(t, want.Behavior, got.Behavior)
	assert.Equal(t, want.Components.Entries(), got.Components.Entries())
}

func TestApplyLeavesOmittedValuesAlone(t *testing.T) {
	t.Parallel()

	view := prompt.Dialog(permission.KindCamera).
		SetDialogBackgroundColors(style.Hex("#101010"), style.BlurProminent).
		ChangeBottomDescription("kept")

	theme, err := DecodeTheme([]byte("background:\n  dialog_blur: dark\ntext:\n  header: New\n"), "inline")
	require.NoError(t, err)
	require.NoError(t, theme.Apply(view))

	store := view.Store()
	assert.Equal(t, style.Hex("#101010"), store.BackgroundColors.DialogBackground)
	assert.Equal(t, style.BlurDark, store.BackgroundColors.DialogBlurStyle)
	assert.Equal(t, "New", store.MainText.Header)
	assert.Equal(t, "kept", store.MainText.BottomDescription)
	assert.Equal(t, prompt.DefaultMainText().HeaderDescription, store.MainText.HeaderDescription)
}

func TestApplyIsAllOrNothing(t *testing.T) {
	t.Parallel()

	theme := &ThemeFile{
		Text:       Text{Header: "Changed"},
		Components: map[string]ComponentOverride{"teleport": {Title: "Beam"}},
	}

	view := prompt.Modal(permission.KindCamera)
	err := theme.Apply(view)
	require.True(t, permerrors.IsValidation(err))
	assert.Equal(t, prompt.DefaultMainText().Header, view.Store().MainText.Header)
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	theme, err := DecodeTheme([]byte(brandTheme), "brand")
	require.NoError(t, err)

	view, err := theme.NewView(prompt.PresentationDialog)
	require.NoError(t, err)
	once := view.Store().Snapshot()

	require.NoError(t, theme.Apply(view))
	twice := view.Store()
	assert.True(t, once.ButtonColors.Equal(twice.ButtonColors))
	assert.True(t, once.BackgroundColors.Equal(twice.BackgroundColors))
	assert.Equal(t, once.Components.Entries(), twice.Components.Entries())
}

func TestExportReproducesStore(t *testing.T) {
	t.Parallel()

	for _, platform := range []style.Platform{style.AdaptivePlatform(), style.DarkPlatform(), style.NoColorPlatform()} {
		source := prompt.NewView(prompt.PresentationModal, prompt.NewStore(platform)).
			SetAccentColor(style.Adaptive("#0ea5e9", "#38bdf8")).
			SetModalBackgroundColors(style.Gradient(
				style.Adaptive("#000000", "#000000").From(),
				style.Adaptive("#ffffff", "#ffffff").From(),
			), style.Fill{}).
			SetShowOnAppear(false).
			SetPermissionComponent(permission.KindHealth, permission.WithTitle("Vitals"))

		data, err := Marshal(Export(source.Store()))
		require.NoError(t, err)

		theme, err := DecodeTheme(data, "export")
		require.NoError(t, err, string(data))

		restored, err := theme.NewView(prompt.PresentationModal)
		require.NoError(t, err)

		want, got := source.Store(), restored.Store()
		assert.Equal(t, want.Platform.Name(), got.Platform.Name())
		assert.True(t, want.BackgroundColors.Equal(got.BackgroundColors), platform.Name())
		assert.True(t, want.ButtonColors.Equal(got.ButtonColors), platform.Name())
		assert.Equal(t, want.DescriptionForeground, got.DescriptionForeground)
		assert.Equal(t, want.Behavior, got.Behavior)
		assert.Equal(t, want.Components.Entries(), got.Components.Entries())
	}
}

func TestExportedLongTextStillValidates(t *testing.T) {
	t.Parallel()

	title := strings.Repeat("Camera access ", 8)
	icon := strings.Repeat("[cam]", 5)
	source := prompt.Modal().
		ChangeBottomDescription(strings.Repeat("Permissions matter. ", 40)).
		SetPermissionComponent(permission.KindCamera,
			permission.WithTitle(title),
			permission.WithIcon(permission.NewIcon("📷", icon)),
		)

	exported := Export(source.Store())
	require.NoError(t, Validate(exported))

	data, err := Marshal(exported)
	require.NoError(t, err)
	theme, err := DecodeTheme(data, "export")
	require.NoError(t, err)

	restored, err := theme.NewView(prompt.PresentationModal)
	require.NoError(t, err)
	assert.Equal(t, title, restored.Store().Component(permission.KindCamera).Title)
	assert.Equal(t, icon, restored.Store().Component(permission.KindCamera).Icon.ASCII)
	assert.Equal(t, source.Store().MainText, restored.Store().MainText)
}

func TestMarshalIsStable(t *testing.T) {
	t.Parallel()

	a, err := Marshal(Export(prompt.NewStore(nil)))
	require.NoError(t, err)
	b, err := Marshal(Export(prompt.NewStore(nil)))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
	assert.Contains(t, string(a), "platform: adaptive")
	assert.Contains(t, string(a), "auto_dismiss: true")
}

func TestDiffShowsOnlyCustomizedLines(t *testing.T) {
	t.Parallel()

	view := prompt.Modal(permission.KindCamera)
	out, err := Diff(view.Store(), "theme")
	require.NoError(t, err)
	assert.Empty(t, out)

	view.ChangeHeader("Grant access").
		SetPermissionComponent(permission.KindCamera, permission.WithTitle("Cam"))

	out, err = Diff(view.Store(), "theme")
	require.NoError(t, err)
	assert.Contains(t, out, "+++ theme")
	assert.Contains(t, out, "-  header: Need Permissions")
	assert.Contains(t, out, "+  header: Grant access")
	assert.Contains(t, out, "+    title: Cam")
	assert.NotContains(t, out, "+    title: Microphone")
}

func TestExampleThemesAreValid(t *testing.T) {
	t.Parallel()

	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "themes", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		theme, err := ParseTheme(path)
		require.NoError(t, err, path)

		_, err = theme.NewView(prompt.PresentationDialog)
		require.NoError(t, err, path)
	}
}
