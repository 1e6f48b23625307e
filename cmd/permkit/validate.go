package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/permissionkit/internal/config"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
)

type validateOptions struct {
	Diff bool
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <theme-file>...",
		Short: "Check theme files for errors",
		Long: `Validate parses each theme file and checks every colour, blur style,
permission kind and platform it names. With --diff it also prints what the
theme changes compared with the platform defaults.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd)
			if err != nil {
				return err
			}

			var failures []error
			for _, path := range args {
				if err := validateTheme(cmd, path, opts); err != nil {
					log.WithFields(map[string]any{"theme": path}).Error(err, "invalid theme")
					fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", path)
					failures = append(failures, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", path)
			}

			if len(failures) > 0 {
				return fmt.Errorf("%d of %d theme files invalid: %w", len(failures), len(args), errors.Join(failures...))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Print a diff from the platform defaults")

	return cmd
}

func validateTheme(cmd *cobra.Command, path string, opts validateOptions) error {
	theme, err := config.ParseTheme(path)
	if err != nil {
		return err
	}
	if !opts.Diff {
		return nil
	}

	view, err := theme.NewView(prompt.PresentationModal)
	if err != nil {
		return err
	}

	out, err := config.Diff(view.Store(), path)
	if err != nil {
		return err
	}
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "  (no changes from defaults)")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
