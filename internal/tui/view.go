package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
	"github.com/alexisbeaulieu97/permissionkit/pkg/render"
)

const helpText = "↑/↓ move • enter allow • q close"

// View renders the current state of the prompt.
func (m Model) View() string {
	if m.dismissed || m.completed {
		return ""
	}
	if !m.visible {
		return m.style(hintStyle).Render("Permissions are needed. Press p to review them, q to close.") + "\n"
	}

	opts := []render.Option{
		render.WithStates(m.states),
		render.WithSelected(m.Selected()),
		render.WithASCIIIcons(m.ascii),
	}
	if m.width > 0 {
		opts = append(opts, render.WithWidth(m.width))
	}
	if m.lg != nil {
		opts = append(opts, render.WithLipgloss(m.lg))
	}
	r := render.New(m.view.Store(), opts...)

	var b strings.Builder
	if m.view.Presentation() == prompt.PresentationDialog {
		b.WriteString(r.Dialog(m.kinds))
	} else {
		b.WriteString(r.Modal(m.kinds))
	}
	b.WriteString("\n")

	for _, kind := range m.kinds {
		if m.pending[kind] {
			title := m.view.Store().Component(kind).Title
			b.WriteString(fmt.Sprintf("%s Requesting %s…\n", m.spinner.View(), title))
		}
	}
	if m.errMsg != "" {
		b.WriteString(m.style(errorStyle).Render("✗ "+m.errMsg) + "\n")
	}
	b.WriteString(m.style(hintStyle).Render(helpText) + "\n")

	return b.String()
}
