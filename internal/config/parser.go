// Package config reads YAML theme files and applies them to prompt views.
//
// A theme file mirrors the decorator API: each section feeds the matching
// View setter, so an override from a file behaves exactly like the same
// override made in code. Keys left out of the file keep their defaults.
package config

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	permerrors "github.com/alexisbeaulieu97/permissionkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseTheme loads a theme file from disk and validates it.
func ParseTheme(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, permerrors.NewParseError(path, 0, err)
	}
	return DecodeTheme(data, path)
}

// DecodeTheme decodes and validates theme YAML. source names the input in
// error messages. Unknown keys are rejected and an empty document yields an
// empty theme.
func DecodeTheme(data []byte, source string) (*ThemeFile, error) {
	var theme ThemeFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&theme); err != nil && !stdErrors.Is(err, io.EOF) {
		return nil, permerrors.NewParseError(source, extractLine(err), err)
	}

	if err := Validate(&theme); err != nil {
		return nil, err
	}

	return &theme, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
