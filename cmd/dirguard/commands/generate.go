package commands

import (
	"github.com/spf13/cobra"
)

func newGenerateCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [flags] key=value...",
		Short: "Write the expected file list from the directory",
		Long: `Writes the canonical listing of check-folder-for-files to
required-files-file, replacing its content. Equivalent to passing
generate-required-files-file=true to the root command.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runReconcile(cmd, args, opts, true)
		},
	}
}
