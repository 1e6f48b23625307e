package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StatusLoadedMsg:
		for kind, state := range msg.States {
			if !m.pending[kind] {
				m.states[kind] = state
			}
		}
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			m.log.Warn().Err(msg.Err).Msg("status check failed")
		}
		return m.maybeAutoDismiss()

	case RequestCompleteMsg:
		delete(m.pending, msg.Kind)
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			m.log.Warn().Err(msg.Err).Str("kind", msg.Kind.String()).Msg("permission request failed")
			return m, nil
		}
		m.errMsg = ""
		m.states[msg.Kind] = msg.State
		m.log.Info().Str("kind", msg.Kind.String()).Str("state", msg.State.String()).Msg("permission request finished")
		return m.maybeAutoDismiss()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.dismissed = true
		return m, tea.Quit
	}

	if !m.visible {
		if msg.String() == "p" {
			m.visible = true
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		return m.request(m.Selected())
	}

	return m, nil
}

// request starts asking for kind unless it is already allowed or in flight.
// A denied permission may be asked again.
func (m Model) request(kind permission.Kind) (tea.Model, tea.Cmd) {
	if m.pending[kind] || m.states[kind] == permission.StateAllowed {
		return m, nil
	}
	m.pending[kind] = true
	m.log.Debug().Str("kind", kind.String()).Msg("requesting permission")
	return m, requestCmd(m.ctx, m.auth, kind)
}

func (m Model) maybeAutoDismiss() (tea.Model, tea.Cmd) {
	if m.view.Store().Behavior.AutoDismiss && m.allAllowed() {
		m.completed = true
		return m, tea.Quit
	}
	return m, nil
}
