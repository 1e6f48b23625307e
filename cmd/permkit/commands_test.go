package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/permissionkit/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func themeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPreviewRendersRequestedKinds(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "preview", "camera", "microphone", "--ascii", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Need Permissions")
	assert.Contains(t, out, "[cam]  Camera")
	assert.Contains(t, out, "Microphone")
	assert.NotContains(t, out, "Contacts")
	assert.Equal(t, 2, strings.Count(out, "ALLOW"))
}

func TestPreviewPlatformChangesColours(t *testing.T) {
	t.Parallel()

	none, _, err := execute(t, "preview", "camera", "--platform", "none", "--color", "always")
	require.NoError(t, err)
	assert.NotContains(t, none, "\x1b[38")
	assert.NotContains(t, none, "\x1b[48")

	dark, _, err := execute(t, "preview", "camera", "--platform", "dark", "--color", "always")
	require.NoError(t, err)
	light, _, err := execute(t, "preview", "camera", "--platform", "light", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, dark, "\x1b[38")
	assert.NotEqual(t, dark, light)
}

func TestPreviewWithoutKindsListsAll(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "preview", "--ascii", "--style", "dialog")
	require.NoError(t, err)
	assert.Contains(t, out, "Health")
	assert.Contains(t, out, "Location Always")
}

func TestPreviewAppliesThemeAndStates(t *testing.T) {
	t.Parallel()

	path := themeFile(t, "text:\n  header: Grant access\ncomponents:\n  camera:\n    title: Cam\n")
	out, _, err := execute(t, "preview", "camera", "photo", "--theme", path,
		"--denied", "camera", "--allowed", "photo", "--ascii")
	require.NoError(t, err)

	assert.Contains(t, out, "Grant access")
	assert.Contains(t, out, "Cam")
	assert.Contains(t, out, "DENIED")
	assert.Contains(t, out, "ALLOWED")
}

func TestPreviewRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"unknown kind":     {"preview", "teleport"},
		"unknown style":    {"preview", "--style", "sheet"},
		"unknown platform": {"preview", "--platform", "amiga"},
		"unknown color":    {"preview", "--color", "sometimes"},
		"conflict":         {"preview", "--allowed", "camera", "--denied", "camera"},
		"missing theme":    {"preview", "--theme", filepath.Join(t.TempDir(), "absent.yaml")},
	}

	for name, args := range cases {
		_, _, err := execute(t, args...)
		assert.Error(t, err, name)
	}
}

func TestInteractivePreviewNeedsTerminal(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "preview", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestValidateReportsEachFile(t *testing.T) {
	t.Parallel()

	good := themeFile(t, "buttons:\n  primary: '#e11d48'\n")
	bad := themeFile(t, "background:\n  dialog_blur: frosted\n")

	out, _, err := execute(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "✓ "+good)
	assert.Contains(t, out, "✗ "+bad)
	assert.Contains(t, err.Error(), "background.dialog_blur")
	assert.Equal(t, 2, exitCode(err))
}

func TestValidateDiff(t *testing.T) {
	t.Parallel()

	path := themeFile(t, "platform: dark\ntext:\n  header: Grant access\n")
	out, _, err := execute(t, "validate", "--diff", path)
	require.NoError(t, err)
	assert.Contains(t, out, "--- defaults")
	assert.Contains(t, out, "-  header: Need Permissions")
	assert.Contains(t, out, "+  header: Grant access")

	empty := themeFile(t, "")
	out, _, err = execute(t, "validate", "--diff", empty)
	require.NoError(t, err)
	assert.Contains(t, out, "no changes from defaults")
}

func TestExportProducesAValidTheme(t *testing.T) {
	t.Parallel()

	path := themeFile(t, "buttons:\n  primary: '#e11d48'\n")
	out, _, err := execute(t, "export", "--theme", path, "--platform", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "platform: light")
	assert.Contains(t, out, "#e11d48")

	theme, err := config.DecodeTheme([]byte(out), "export")
	require.NoError(t, err)
	assert.Len(t, theme.Components, 14)
}

func TestKindsListsEveryKind(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "kinds", "--ascii", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "location_always")
	assert.Contains(t, out, "[cam]")
	assert.Contains(t, out, "Allow to use your camera")
}

func TestVerboseLogsToStderr(t *testing.T) {
	t.Parallel()

	out, logs, err := execute(t, "--verbose", "--log-json", "preview", "camera", "--ascii")
	require.NoError(t, err)
	assert.NotContains(t, out, "view ready")
	assert.Contains(t, logs, `"message":"view ready"`)
}

func TestInitWritesOnlyChosenSettings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "brand.yaml")
	out, _, err := execute(t, "init", path, "--yes", "--platform", "dark", "--accent", "#e11d48", "--blur", "prominent")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "components")
	assert.NotContains(t, string(data), "text")

	theme, err := config.DecodeTheme(data, path)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Platform)
	assert.Equal(t, "#e11d48", theme.Buttons.Primary)
	assert.Equal(t, "prominent", theme.Background.DialogBlur)

	_, _, err = execute(t, "init", path, "--yes")
	require.Error(t, err, "existing files are kept without --force")

	_, _, err = execute(t, "init", path, "--yes", "--force", "--header", "Hello")
	require.NoError(t, err)
}

func TestInitRejectsInvalidAnswers(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	_, _, err := execute(t, "init", path, "--yes", "--accent", "pink")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestInitFormNeedsTerminal(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "init", filepath.Join(t.TempDir(), "theme.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}
