package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/permissionkit/internal/config"
	"github.com/alexisbeaulieu97/permissionkit/internal/logger"
	"github.com/alexisbeaulieu97/permissionkit/internal/tui"
	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
	"github.com/alexisbeaulieu97/permissionkit/pkg/render"
)

type themeOptions struct {
	ThemePath string
	Platform  string
}

type previewOptions struct {
	themeOptions
	Style       string
	Color       string
	Width       int
	Interactive bool
	ASCII       bool
	Allowed     []string
	Denied      []string
	Delay       time.Duration
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [kinds...]",
		Short: "Render a permission prompt",
		Long: `Preview draws the prompt for the given permission kinds, or for every kind
when none are given. A theme file customizes it the same way the Go API does.
With --interactive the prompt runs in the terminal and requests resolve
against an in-memory authorizer.`,
		Example: `  permkit preview camera microphone --theme brand.yaml
  permkit preview location --style dialog --denied location
  permkit preview --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd)
			if err != nil {
				return err
			}
			return runPreview(cmd, opts, args, log)
		},
	}

	addThemeFlags(cmd, &opts.themeOptions)
	cmd.Flags().StringVarP(&opts.Style, "style", "s", "modal", "Presentation: modal or dialog")
	cmd.Flags().StringVar(&opts.Color, "color", "auto", "Colour output: auto, always or never")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Prompt width in columns (default: terminal width, capped at 60)")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Run the prompt interactively")
	cmd.Flags().BoolVar(&opts.ASCII, "ascii", false, "Use ASCII icons instead of glyphs")
	cmd.Flags().StringSliceVar(&opts.Allowed, "allowed", nil, "Kinds shown as already allowed")
	cmd.Flags().StringSliceVar(&opts.Denied, "denied", nil, "Kinds shown as denied")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 600*time.Millisecond, "Simulated request latency in interactive mode")

	return cmd
}

func addThemeFlags(cmd *cobra.Command, opts *themeOptions) {
	cmd.Flags().StringVarP(&opts.ThemePath, "theme", "t", "", "Theme file (YAML)")
	cmd.Flags().StringVarP(&opts.Platform, "platform", "p", "", "Default palette: adaptive, dark, light or none (overrides the theme)")
}

// buildView creates a view on a fresh store, applying the theme file when
// one is given. The platform flag wins over the theme's platform key.
func buildView(opts themeOptions, presentation prompt.Presentation, kinds []permission.Kind, log *logger.Logger) (*prompt.View, error) {
	theme := &config.ThemeFile{}
	if opts.ThemePath != "" {
		parsed, err := config.ParseTheme(opts.ThemePath)
		if err != nil {
			return nil, err
		}
		theme = parsed
	}
	if opts.Platform != "" {
		theme.Platform = opts.Platform
	}

	platform, err := theme.ResolvePlatform()
	if err != nil {
		return nil, err
	}

	view := prompt.NewView(presentation, prompt.NewStore(platform), kinds...).WithLogger(log.Zerolog())
	if err := theme.Apply(view); err != nil {
		return nil, err
	}

	log.WithFields(map[string]any{
		"theme":    opts.ThemePath,
		"platform": platform.Name(),
		"kinds":    len(view.Kinds()),
	}).Debug("view ready")
	return view, nil
}

func runPreview(cmd *cobra.Command, opts previewOptions, args []string, log *logger.Logger) error {
	kinds, err := permission.ParseKinds(args)
	if err != nil {
		return err
	}
	if len(kinds) == 0 {
		kinds = permission.Kinds()
	}

	presentation, err := prompt.ParsePresentation(opts.Style)
	if err != nil {
		return err
	}

	states, err := initialStates(opts.Allowed, opts.Denied)
	if err != nil {
		return err
	}

	view, err := buildView(opts.themeOptions, presentation, kinds, log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	lg, err := newLipgloss(out, opts.Color)
	if err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = min(terminalWidth(out), 60)
	}

	if opts.Interactive {
		if !isTerminal(cmd.InOrStdin()) || !isTerminal(out) {
			return errors.New("interactive preview needs a terminal on stdin and stdout")
		}
		return runInteractive(cmd.Context(), view, states, opts, lg, width, log)
	}

	r := render.New(view.Store(),
		render.WithLipgloss(lg),
		render.WithWidth(width),
		render.WithStates(states),
		render.WithASCIIIcons(opts.ASCII),
	)
	fmt.Fprintln(out, r.Render(view))
	return nil
}

func runInteractive(ctx context.Context, view *prompt.View, states map[permission.Kind]permission.State, opts previewOptions, lg *lipgloss.Renderer, width int, log *logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	auth := tui.NewStaticAuthorizer(states).WithDelay(opts.Delay)
	for kind, state := range states {
		if state == permission.StateDenied {
			auth.Respond(kind, permission.StateDenied)
		}
	}

	model := tui.NewModel(view, auth,
		tui.WithContext(ctx),
		tui.WithLogger(log.Zerolog()),
		tui.WithLipgloss(lg),
		tui.WithWidth(width),
		tui.WithASCIIIcons(opts.ASCII),
	)

	final, err := tui.Run(model, tea.WithContext(ctx))
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"dismissed": final.Dismissed(),
		"completed": final.Completed(),
	}).Info("prompt closed")
	return nil
}

func initialStates(allowed, denied []string) (map[permission.Kind]permission.State, error) {
	states := make(map[permission.Kind]permission.State)

	allowedKinds, err := permission.ParseKinds(allowed)
	if err != nil {
		return nil, fmt.Errorf("--allowed: %w", err)
	}
	deniedKinds, err := permission.ParseKinds(denied)
	if err != nil {
		return nil, fmt.Errorf("--denied: %w", err)
	}

	for _, kind := range allowedKinds {
		states[kind] = permission.StateAllowed
	}
	for _, kind := range deniedKinds {
		if _, dup := states[kind]; dup {
			return nil, fmt.Errorf("%s cannot be both allowed and denied", kind)
		}
		states[kind] = permission.StateDenied
	}
	return states, nil
}
