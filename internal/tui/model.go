// Package tui drives a permission prompt interactively with bubbletea. The
// prompt's look comes entirely from the view's store; the model only tracks
// the cursor, permission states and pending requests.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
)

// Model is the bubbletea state of an interactive prompt.
type Model struct {
	view *prompt.View
	auth Authorizer
	ctx  context.Context
	log  zerolog.Logger

	kinds   []permission.Kind
	states  map[permission.Kind]permission.State
	pending map[permission.Kind]bool
	cursor  int

	spinner spinner.Model
	lg      *lipgloss.Renderer
	width   int
	ascii   bool

	visible   bool
	errMsg    string
	dismissed bool
	completed bool
}

// Option configures a Model.
type Option func(*Model)

// WithContext bounds every authorizer call.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithLogger records requests and their outcomes.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithLipgloss renders through lg instead of the default renderer.
func WithLipgloss(lg *lipgloss.Renderer) Option {
	return func(m *Model) {
		m.lg = lg
	}
}

// WithWidth sets the initial width; window resizes override it.
func WithWidth(width int) Option {
	return func(m *Model) {
		if width > 0 {
			m.width = width
		}
	}
}

// WithASCIIIcons draws icon fallbacks instead of glyphs.
func WithASCIIIcons(ascii bool) Option {
	return func(m *Model) {
		m.ascii = ascii
	}
}

// NewModel builds the prompt for view. A view without kinds lists every
// kind.
func NewModel(view *prompt.View, auth Authorizer, opts ...Option) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	kinds := view.Kinds()
	if len(kinds) == 0 {
		kinds = permission.Kinds()
	}

	m := Model{
		view:    view,
		auth:    auth,
		ctx:     context.Background(),
		log:     zerolog.Nop(),
		kinds:   kinds,
		states:  make(map[permission.Kind]permission.State, len(kinds)),
		pending: make(map[permission.Kind]bool),
		spinner: s,
		visible: view.Store().Behavior.ShowOnAppear,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the spinner and, when enabled, reads current states.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.view.Store().Behavior.AutoCheckAuthorization {
		cmds = append(cmds, loadStatusCmd(m.ctx, m.auth, m.kinds))
	}
	return tea.Batch(cmds...)
}

// States returns a copy of the known permission states.
func (m Model) States() map[permission.Kind]permission.State {
	states := make(map[permission.Kind]permission.State, len(m.states))
	for kind, state := range m.states {
		states[kind] = state
	}
	return states
}

// Selected returns the kind under the cursor.
func (m Model) Selected() permission.Kind {
	return m.kinds[m.cursor]
}

// Pending reports whether a request for kind is in flight.
func (m Model) Pending(kind permission.Kind) bool {
	return m.pending[kind]
}

// Visible reports whether the prompt is on screen.
func (m Model) Visible() bool {
	return m.visible
}

// Dismissed reports whether the user closed the prompt.
func (m Model) Dismissed() bool {
	return m.dismissed
}

// Completed reports whether the prompt closed itself because every
// permission was allowed.
func (m Model) Completed() bool {
	return m.completed
}

// Err returns the last authorizer error, if any.
func (m Model) Err() string {
	return m.errMsg
}

func (m Model) allAllowed() bool {
	for _, kind := range m.kinds {
		if m.states[kind] != permission.StateAllowed {
			return false
		}
	}
	return true
}

// Run shows the prompt until it is dismissed or completes and returns the
// final model.
func Run(m Model, opts ...tea.ProgramOption) (Model, error) {
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return m, err
	}
	if result, ok := final.(Model); ok {
		return result, nil
	}
	return m, nil
}
