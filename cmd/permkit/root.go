package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/permissionkit/internal/logger"
)

type rootFlags struct {
	verbose bool
	jsonLog bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "permkit",
		Short:         "permkit previews and themes terminal permission prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&flags.jsonLog, "log-json", false, "Write logs as JSON instead of console lines")

	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Logs go to the command's error
// stream so rendered output on stdout stays clean.
func (f *rootFlags) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level := "warn"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: !f.jsonLog,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
}
