package tui

import (
	"context"
	stdErrors "errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
)

// loadStatusCmd queries every kind and reports them together. Kinds whose
// query fails stay idle; their errors are joined.
func loadStatusCmd(ctx context.Context, auth Authorizer, kinds []permission.Kind) tea.Cmd {
	return func() tea.Msg {
		states := make(map[permission.Kind]permission.State, len(kinds))
		var errs []error
		for _, kind := range kinds {
			state, err := auth.Status(ctx, kind)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			states[kind] = state
		}
		return StatusLoadedMsg{States: states, Err: stdErrors.Join(errs...)}
	}
}

// requestCmd asks for one permission asynchronously.
func requestCmd(ctx context.Context, auth Authorizer, kind permission.Kind) tea.Cmd {
	return func() tea.Msg {
		state, err := auth.Request(ctx, kind)
		return RequestCompleteMsg{Kind: kind, State: state, Err: err}
	}
}
