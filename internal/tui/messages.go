package tui

import "github.com/alexisbeaulieu97/permissionkit/pkg/permission"

// StatusLoadedMsg carries the states read when the prompt opens.
type StatusLoadedMsg struct {
	States map[permission.Kind]permission.State
	Err    error
}

// RequestCompleteMsg reports the outcome of asking for one permission.
type RequestCompleteMsg struct {
	Kind  permission.Kind
	State permission.State
	Err   error
}
