package cli

import (
	"fmt"
	"path/filepath"

	"github.com/aalvaropc/gendata/internal/domain"
	"github.com/aalvaropc/gendata/internal/infra/config"
	"github.com/aalvaropc/gendata/internal/infra/fsworkspace"
	"github.com/aalvaropc/gendata/internal/usecase"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter gendata.yaml and seed corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer(), config.NewLoader())
			res, err := uc.Execute(root, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initialized gendata files in %s\n", root)
			fmt.Fprintf(out, "Config: %s (%d iterations from %s to %s)\n",
				res.ConfigPath, res.Config.Generate.Iterations, res.Config.Paths.Input, res.Config.Paths.Output)
			fmt.Fprintf(out, "Run from %s: gendata --config %s\n", root, domain.DefaultConfigFileName)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
