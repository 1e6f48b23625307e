package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

// sgrReset ends every span lipgloss styles.
const sgrReset = "\x1b[0m"

var cardBorder = lipgloss.RoundedBorder()

var buttonLabels = map[permission.State]string{
	permission.StateIdle:    "ALLOW",
	permission.StateAllowed: "ALLOWED",
	permission.StateDenied:  "DENIED",
}

func buttonColorFor(colors style.AllButtonColors, state permission.State) style.ButtonColor {
	switch state {
	case permission.StateAllowed:
		return colors.ButtonAllowed
	case permission.StateDenied:
		return colors.ButtonDenied
	default:
		return colors.ButtonIdle
	}
}

// backgroundSequence returns the escape sequence lg emits to switch the
// background to c, or "" when the profile draws no colour.
func backgroundSequence(lg *lipgloss.Renderer, c lipgloss.TerminalColor) string {
	const marker = "x"
	styled := lg.NewStyle().Background(c).Render(marker)
	i := strings.Index(styled, marker)
	if i <= 0 {
		return ""
	}
	return styled[:i]
}
