package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
)

type kindsOptions struct {
	ASCII bool
	Color string
}

func newKindsCmd() *cobra.Command {
	opts := kindsOptions{}

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the permission kinds and their default copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := newLipgloss(cmd.OutOrStdout(), opts.Color)
			if err != nil {
				return err
			}

			header := lg.NewStyle().Bold(true).Padding(0, 1)
			cell := lg.NewStyle().Padding(0, 1)

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lg.NewStyle().Faint(true)).
				Headers("KIND", "ICON", "TITLE", "DESCRIPTION").
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return header
					}
					return cell
				})

			for _, kind := range permission.Kinds() {
				c := permission.DefaultComponent(kind)
				t.Row(kind.String(), c.Icon.Render(opts.ASCII), c.Title, c.Description)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.ASCII, "ascii", false, "Show ASCII icons instead of glyphs")
	cmd.Flags().StringVar(&opts.Color, "color", "auto", "Colour output: auto, always or never")

	return cmd
}
