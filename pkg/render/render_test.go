package render

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

func plainRenderer() *lipgloss.Renderer {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.Ascii)
	lg.SetHasDarkBackground(true)
	return lg
}

func colorRenderer() *lipgloss.Renderer {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.TrueColor)
	lg.SetHasDarkBackground(true)
	return lg
}

func TestModalShowsTextForEveryKind(t *testing.T) {
	t.Parallel()

	view := prompt.Modal(permission.KindCamera, permission.KindMicrophone).
		ChangeHeader("Grant access").
		SetPermissionComponent(permission.KindCamera, permission.WithTitle("Cam"))

	out := New(view.Store(), WithLipgloss(plainRenderer()), WithASCIIIcons(true)).Render(view)

	assert.Contains(t, out, "Grant access")
	assert.Contains(t, out, "Cam")
	assert.Contains(t, out, "[cam]")
	assert.Contains(t, out, "Microphone")
	assert.Contains(t, out, "Allow to record with microphone")
	assert.Contains(t, out, "ALLOW")
}

func TestModalRespectsWidth(t *testing.T) {
	t.Parallel()

	view := prompt.Modal(permission.KindLocation)
	out := New(view.Store(), WithLipgloss(plainRenderer()), WithWidth(50), WithASCIIIcons(true)).Render(view)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 50, "line %q too wide", line)
	}
}

func TestButtonLabelsFollowState(t *testing.T) {
	t.Parallel()

	view := prompt.Dialog(permission.KindCamera, permission.KindMicrophone, permission.KindContacts)
	out := New(view.Store(),
		WithLipgloss(plainRenderer()),
		WithStates(map[permission.Kind]permission.State{
			permission.KindCamera:     permission.StateAllowed,
			permission.KindMicrophone: permission.StateDenied,
		}),
	).Render(view)

	assert.Contains(t, out, "ALLOWED")
	assert.Contains(t, out, "DENIED")
	assert.Equal(t, 2, strings.Count(out, "ALLOW"), "one idle and one allowed button")
	assert.Equal(t, 1, strings.Count(out, "DENIED"))
}

func TestSelectedRowHasCursor(t *testing.T) {
	t.Parallel()

	view := prompt.Modal(permission.KindCamera, permission.KindPhoto)
	out := New(view.Store(), WithLipgloss(plainRenderer()), WithSelected(permission.KindPhoto), WithASCIIIcons(true)).Render(view)

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "[img]") {
			assert.Contains(t, line, "›")
		}
		if strings.Contains(line, "[cam]") {
			assert.NotContains(t, line, "›")
		}
	}
}

func TestDialogBackdropUsesBlurStyleOnlyWhenCustomized(t *testing.T) {
	t.Parallel()

	view := prompt.Dialog(permission.KindCamera)
	builtin := New(view.Store(), WithLipgloss(plainRenderer())).Render(view)
	assert.Contains(t, builtin, string(view.Store().Defaults().DialogBlurStyle.Backdrop().Rune))

	view.SetDialogBackgroundColors(style.Fill{}, style.BlurDark)
	custom := New(view.Store(), WithLipgloss(plainRenderer())).Render(view)
	lines := strings.Split(custom, "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "▓"), "backdrop edge %q", lines[0])
	assert.NotContains(t, custom, "░")
}

func lightColorRenderer() *lipgloss.Renderer {
	lg := colorRenderer()
	lg.SetHasDarkBackground(false)
	return lg
}

func renderOn(lg *lipgloss.Renderer, platform style.Platform, presentation prompt.Presentation) string {
	view := prompt.NewView(presentation, prompt.NewStore(platform), permission.KindCamera, permission.KindPhoto)
	return New(view.Store(),
		WithLipgloss(lg),
		WithSelected(permission.KindCamera),
		WithStates(map[permission.Kind]permission.State{
			permission.KindCamera: permission.StateAllowed,
			permission.KindPhoto:  permission.StateDenied,
		}),
	).Render(view)
}

func TestBuiltinLookFollowsPlatform(t *testing.T) {
	t.Parallel()

	for _, presentation := range []prompt.Presentation{prompt.PresentationModal, prompt.PresentationDialog} {
		adaptive := renderOn(lightColorRenderer(), style.AdaptivePlatform(), presentation)
		dark := renderOn(lightColorRenderer(), style.DarkPlatform(), presentation)
		assert.NotEqual(t, adaptive, dark, presentation.String())

		light := renderOn(colorRenderer(), style.LightPlatform(), presentation)
		darkOnDark := renderOn(colorRenderer(), style.DarkPlatform(), presentation)
		assert.NotEqual(t, light, darkOnDark, presentation.String())
	}
}

func TestNoColorPlatformEmitsNoColour(t *testing.T) {
	t.Parallel()

	for _, presentation := range []prompt.Presentation{prompt.PresentationModal, prompt.PresentationDialog} {
		out := renderOn(colorRenderer(), style.NoColorPlatform(), presentation)
		assert.NotContains(t, out, "\x1b[38", presentation.String())
		assert.NotContains(t, out, "\x1b[48", presentation.String())
		assert.Contains(t, out, "ALLOWED")
	}
}

func TestDirectlyWrittenColoursAreRendered(t *testing.T) {
	t.Parallel()

	view := prompt.Modal(permission.KindCamera)
	before := New(view.Store(), WithLipgloss(colorRenderer())).Render(view)

	view.Store().BackgroundColors = style.NewBackgroundColors(style.LightPlatform())
	after := New(view.Store(), WithLipgloss(colorRenderer())).Render(view)
	assert.NotEqual(t, before, after)
	assert.Contains(t, after, "\x1b[48")
}

func TestPaintedBackgroundSurvivesStyledSpans(t *testing.T) {
	t.Parallel()

	view := prompt.Modal(permission.KindCamera, permission.KindMicrophone).
		SetModalBackgroundColors(style.Hex("#ff0000"), style.Hex("#00ff00"))
	out := New(view.Store(), WithLipgloss(colorRenderer()), WithSelected(permission.KindCamera)).Render(view)

	inner := 0
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(strings.TrimSuffix(line, sgrReset), sgrReset)
		for _, next := range parts[1:] {
			inner++
			assert.True(t, strings.HasPrefix(next, "\x1b[48"), "background lost after a reset in %q", line)
		}
	}
	assert.Positive(t, inner, "styled spans inside painted lines")
}

func TestPaintIsANoOpWithoutColour(t *testing.T) {
	t.Parallel()

	r := New(prompt.NewStore(nil), WithLipgloss(plainRenderer()))
	assert.Equal(t, "a\nb", r.paint("a\nb", style.Hex("#ff0000")))
	assert.Equal(t, "a", New(prompt.NewStore(nil), WithLipgloss(colorRenderer())).paint("a", style.PlatformDefault()))
}

func TestCustomizedValuesChangeRendering(t *testing.T) {
	t.Parallel()

	base := prompt.Modal(permission.KindCamera)
	before := New(base.Store(), WithLipgloss(colorRenderer())).Render(base)

	cases := map[string]func(v *prompt.View){
		"background":  func(v *prompt.View) { v.SetModalBackgroundColors(style.Hex("#ff0000"), style.Fill{}) },
		"buttons":     func(v *prompt.View) { v.SetAccentColor(style.Hex("#00ff00")) },
		"description": func(v *prompt.View) { v.SetDescriptionColor(style.Hex("#0000ff")) },
		"gradient": func(v *prompt.View) {
			fill, err := style.ParseFill("#000000..#ffffff")
			require.NoError(t, err)
			v.SetModalBackgroundColors(fill, style.Fill{})
		},
	}

	for name, customize := range cases {
		view := prompt.Modal(permission.KindCamera)
		customize(view)
		after := New(view.Store(), WithLipgloss(colorRenderer())).Render(view)
		assert.NotEqual(t, before, after, name)
	}
}

func TestRenderingDoesNotMutateStore(t *testing.T) {
	t.Parallel()

	view := prompt.Dialog(permission.KindCamera).SetAccentColor(style.Hex("#123456"))
	snapshot := view.Store().Snapshot()

	New(view.Store(), WithLipgloss(colorRenderer()), WithSelected(permission.KindCamera)).Render(view)
	New(view.Store(), WithLipgloss(colorRenderer())).Modal(permission.Kinds())

	assert.Equal(t, snapshot.ButtonColors, view.Store().ButtonColors)
	assert.Equal(t, snapshot.BackgroundColors, view.Store().BackgroundColors)
	assert.Equal(t, snapshot.Components.Entries(), view.Store().Components.Entries())
}

func TestWidthHasAFloor(t *testing.T) {
	t.Parallel()

	r := New(prompt.NewStore(nil), WithWidth(5))
	assert.Equal(t, minWidth, r.width)
}
