// Package render draws permission prompts from a prompt.Store with lipgloss.
// It never writes to the store.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

const (
	defaultWidth = 60
	minWidth     = 32
	dialogInset  = 2
)

// Renderer draws modal and dialog prompts.
type Renderer struct {
	store       *prompt.Store
	lg          *lipgloss.Renderer
	width       int
	states      map[permission.Kind]permission.State
	selected    permission.Kind
	hasSelected bool
	ascii       bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLipgloss renders through a specific lipgloss renderer, which decides
// the colour profile and background darkness.
func WithLipgloss(lg *lipgloss.Renderer) Option {
	return func(r *Renderer) {
		if lg != nil {
			r.lg = lg
		}
	}
}

// WithWidth sets the total width of the prompt.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithStates sets the current answer of each kind. Missing kinds are idle.
func WithStates(states map[permission.Kind]permission.State) Option {
	return func(r *Renderer) {
		r.states = states
	}
}

// WithSelected highlights the row of kind.
func WithSelected(kind permission.Kind) Option {
	return func(r *Renderer) {
		r.selected = kind
		r.hasSelected = true
	}
}

// WithASCIIIcons draws icon fallbacks instead of glyphs.
func WithASCIIIcons(ascii bool) Option {
	return func(r *Renderer) {
		r.ascii = ascii
	}
}

// New returns a renderer reading store.
func New(store *prompt.Store, opts ...Option) *Renderer {
	r := &Renderer{
		store: store,
		lg:    lipgloss.DefaultRenderer(),
		width: defaultWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.width < minWidth {
		r.width = minWidth
	}
	return r
}

// Render draws view according to its presentation.
func (r *Renderer) Render(view *prompt.View) string {
	if view.Presentation() == prompt.PresentationDialog {
		return r.Dialog(view.Kinds())
	}
	return r.Modal(view.Kinds())
}

// Modal draws the full card listing every kind with its description.
func (r *Renderer) Modal(kinds []permission.Kind) string {
	bg := r.store.BackgroundColors
	customized := r.store.BackgroundCustomized()

	// outer padding 2 + border 1 + card padding 2 on each side
	inner := r.width - 10

	sections := []string{
		r.header(inner),
		r.descriptionStyle().Width(inner).Align(lipgloss.Center).Render(r.store.MainText.HeaderDescription),
		"",
	}
	for i, kind := range kinds {
		if i > 0 {
			sections = append(sections, "")
		}
		sections = append(sections, r.row(kind, inner, true))
	}
	sections = append(sections, "", r.lg.NewStyle().Faint(true).Width(inner).Render(r.store.MainText.BottomDescription))

	body := r.lg.NewStyle().
		Border(cardBorder).
		BorderForeground(r.store.Defaults().Border.Color()).
		Padding(1, 2).
		Width(r.width - 6).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if customized {
		body = r.paint(body, bg.ModalCardBackground)
	}

	framed := r.lg.NewStyle().Padding(1, 2).Render(body)
	if !customized {
		return framed
	}
	return r.paint(framed, bg.ModalBackground)
}

// Dialog draws a compact box over a backdrop built from the blur style.
func (r *Renderer) Dialog(kinds []permission.Kind) string {
	bg := r.store.BackgroundColors
	customized := r.store.BackgroundCustomized()

	blur := r.store.Defaults().DialogBlurStyle
	box := r.lg.NewStyle().
		Border(cardBorder).
		BorderForeground(r.store.Defaults().Border.Color()).
		Padding(0, 1).
		Width(r.width - 2*dialogInset - 2)

	// backdrop inset + border + padding on each side
	inner := r.width - 2*dialogInset - 4
	sections := []string{
		r.header(inner),
		r.descriptionStyle().Width(inner).Render(r.store.MainText.HeaderDescription),
		"",
	}
	for _, kind := range kinds {
		sections = append(sections, r.row(kind, inner, false))
	}

	content := box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	if customized {
		blur = bg.DialogBlurStyle
		content = r.paint(content, bg.DialogBackground)
	}
	return r.backdrop(content, blur)
}

func (r *Renderer) header(width int) string {
	s := r.lg.NewStyle().Bold(true).Width(width).Align(lipgloss.Center)
	return r.store.Defaults().Title.Foreground(s).Render(r.store.MainText.Header)
}

func (r *Renderer) descriptionStyle() lipgloss.Style {
	fill := r.store.Defaults().Description
	if r.store.DescriptionCustomized() {
		fill = r.store.DescriptionForeground
	}
	return fill.Foreground(r.lg.NewStyle())
}

func (r *Renderer) row(kind permission.Kind, width int, withDescription bool) string {
	component := r.store.Component(kind)
	selected := r.hasSelected && r.selected == kind

	cursor := "  "
	if selected {
		cursor = r.store.Defaults().Primary.Foreground(r.lg.NewStyle().Bold(true)).Render("› ")
	}

	left := cursor +
		component.Icon.Render(r.ascii) + "  " +
		r.lg.NewStyle().Bold(true).Render(component.Title)
	button := r.button(r.stateOf(kind), selected)

	gap := width - lipgloss.Width(left) - lipgloss.Width(button)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + button
	if !withDescription {
		return line
	}

	description := r.descriptionStyle().
		PaddingLeft(4).
		Width(width).
		Render(component.Description)
	return lipgloss.JoinVertical(lipgloss.Left, line, description)
}

func (r *Renderer) button(state permission.State, selected bool) string {
	colors := r.store.DefaultButtonColors()
	if r.store.ButtonsCustomized() {
		colors = r.store.ButtonColors
	}
	tint := buttonColorFor(colors, state)

	s := r.lg.NewStyle().Bold(true).Padding(0, 1)
	s = tint.Foreground.Foreground(s)
	s = tint.Background.Background(s)
	if selected {
		s = s.Underline(true)
	}
	return s.Render(buttonLabels[state])
}

func (r *Renderer) stateOf(kind permission.Kind) permission.State {
	if r.states == nil {
		return permission.StateIdle
	}
	return r.states[kind]
}

// paint applies a fill to every line of block, blending gradients per line.
// Styled spans inside a line end with a reset, so the background is switched
// back on after each one.
func (r *Renderer) paint(block string, fill style.Fill) string {
	if fill.Kind() != style.FillSolid && fill.Kind() != style.FillGradient {
		return block
	}
	lines := strings.Split(block, "\n")
	colors := fill.Blend(len(lines))
	for i, line := range lines {
		on := backgroundSequence(r.lg, colors[i])
		if on == "" {
			continue
		}
		lines[i] = on + strings.ReplaceAll(line, sgrReset, sgrReset+on) + sgrReset
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) backdrop(content string, blur style.BlurStyle) string {
	b := blur.Backdrop()
	shade := r.lg.NewStyle().Faint(b.Faint)

	lines := strings.Split(content, "\n")
	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	side := shade.Render(strings.Repeat(string(b.Rune), dialogInset))
	edge := shade.Render(strings.Repeat(string(b.Rune), width+2*dialogInset))

	out := make([]string, 0, len(lines)+2)
	out = append(out, edge)
	for _, line := range lines {
		pad := width - lipgloss.Width(line)
		out = append(out, side+line+strings.Repeat(" ", pad)+side)
	}
	out = append(out, edge)
	return strings.Join(out, "\n")
}
