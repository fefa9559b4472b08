package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd builds the base command. Invoked without arguments it packages the
// default roots of the working directory into the default archive.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}

	rootCmd := &cobra.Command{
		Use:   "cleanpack",
		Short: "cleanpack packages project sources into a clean zip archive",
		Long: `cleanpack walks a fixed list of source directories and configuration files,
drops build artifacts, VCS metadata, media assets and logs, and writes the rest
into clean-machine-core.zip in the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(logger)
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command with the given logger.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
