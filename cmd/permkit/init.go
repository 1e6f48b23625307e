package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/permissionkit/internal/config"
	"github.com/alexisbeaulieu97/permissionkit/pkg/style"
)

// initAnswers are the settings the init form asks for. Empty answers are
// left out of the generated file.
type initAnswers struct {
	Platform    string
	Primary     string
	Tertiary    string
	ModalCard   string
	DialogBlur  string
	Header      string
	Description string
}

type initOptions struct {
	answers initAnswers
	Force   bool
	Yes     bool
}

func newInitCmd(root *rootFlags) *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init [theme-file]",
		Short: "Create a theme file",
		Long: `Init asks for the most common settings and writes a theme file containing
only what you chose. Flags pre-fill the answers; with --yes the form is
skipped and the flags are written as given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd)
			if err != nil {
				return err
			}

			path := "permkit-theme.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !opts.Force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}

			answers := opts.answers
			if !opts.Yes {
				if !isTerminal(cmd.InOrStdin()) {
					return errors.New("init needs a terminal; pass --yes to use flags only")
				}
				form := initForm(&answers).WithInput(cmd.InOrStdin()).WithOutput(cmd.OutOrStdout())
				if err := form.Run(); err != nil {
					return err
				}
			}

			theme, err := themeFromAnswers(answers)
			if err != nil {
				return err
			}
			data, err := config.Marshal(theme)
			if err != nil {
				return fmt.Errorf("encode theme: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			log.WithFields(map[string]any{"theme": path}).Info("theme written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\nPreview it with: permkit preview --theme %s\n", path, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.answers.Platform, "platform", "", "Default palette: adaptive, dark, light or none")
	cmd.Flags().StringVar(&opts.answers.Primary, "accent", "", "Primary accent colour")
	cmd.Flags().StringVar(&opts.answers.Tertiary, "accent-tertiary", "", "Tertiary accent colour")
	cmd.Flags().StringVar(&opts.answers.ModalCard, "card", "", "Modal card background")
	cmd.Flags().StringVar(&opts.answers.DialogBlur, "blur", "", "Dialog blur style")
	cmd.Flags().StringVar(&opts.answers.Header, "header", "", "Prompt header")
	cmd.Flags().StringVar(&opts.answers.Description, "description-color", "", "Description text colour")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip the form")

	return cmd
}

func initForm(answers *initAnswers) *huh.Form {
	platforms := make([]huh.Option[string], 0, len(style.PlatformNames()))
	for _, name := range style.PlatformNames() {
		platforms = append(platforms, huh.NewOption(name, name))
	}

	blurs := []huh.Option[string]{huh.NewOption("(platform default)", "")}
	for _, blur := range style.BlurStyles() {
		blurs = append(blurs, huh.NewOption(blur.String(), blur.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Platform").
				Description("Palette used for every colour you leave empty").
				Options(platforms...).
				Value(&answers.Platform),

			huh.NewInput().
				Title("Accent").
				Description("Primary button colour, e.g. #e11d48 or #e11d48/#fb7185").
				Validate(validateFill).
				Value(&answers.Primary),

			huh.NewInput().
				Title("Accent background").
				Description("Idle button background").
				Validate(validateFill).
				Value(&answers.Tertiary),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Card background").
				Description("Modal card colour; from..to makes a gradient").
				Validate(validateFill).
				Value(&answers.ModalCard),

			huh.NewSelect[string]().
				Title("Dialog blur").
				Options(blurs...).
				Value(&answers.DialogBlur),

			huh.NewInput().
				Title("Description colour").
				Validate(validateFill).
				Value(&answers.Description),

			huh.NewInput().
				Title("Header").
				Placeholder("Need Permissions").
				Value(&answers.Header),
		),
	).WithTheme(huh.ThemeCharm())
}

func validateFill(value string) error {
	_, err := style.ParseFill(value)
	return err
}

// themeFromAnswers builds a validated theme holding only the given answers.
func themeFromAnswers(a initAnswers) (*config.ThemeFile, error) {
	theme := &config.ThemeFile{
		Platform: a.Platform,
		Background: config.Background{
			ModalCard:  a.ModalCard,
			DialogBlur: a.DialogBlur,
		},
		Buttons: config.Buttons{
			Primary:  a.Primary,
			Tertiary: a.Tertiary,
		},
		Description: a.Description,
		Text:        config.Text{Header: a.Header},
	}
	if err := config.Validate(theme); err != nil {
		return nil, err
	}
	return theme, nil
}
