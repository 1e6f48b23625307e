package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/permissionkit/internal/config"
	"github.com/alexisbeaulieu97/permissionkit/pkg/prompt"
)

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := themeOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the effective theme as YAML",
		Long: `Export prints every setting of the prompt after applying --theme, with all
defaults filled in. The output is itself a valid theme file, which makes it a
starting point for a new theme.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := root.newLogger(cmd)
			if err != nil {
				return err
			}

			view, err := buildView(opts, prompt.PresentationModal, nil, log)
			if err != nil {
				return err
			}

			data, err := config.Marshal(config.Export(view.Store()))
			if err != nil {
				return fmt.Errorf("encode theme: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	addThemeFlags(cmd, &opts)

	return cmd
}
