package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:          "gendata [output_path]",
		Short:        "Sample random lines from a seed corpus into a fixture file",
		Long:         "Reads every line of the seed corpus (gendata.md by default) and writes a fixture\n(data.md by default) made of randomly sampled lines and blank separators.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	opts.bind(cmd)

	cmd.AddCommand(initCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}
