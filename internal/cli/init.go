package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ryujin/internal/infra/fsworkspace"
	"github.com/aalvaropc/ryujin/internal/usecase"
)

func initCmd(a *app) *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a ryujin home with a starter catalog and templates",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root := strings.TrimSpace(path)
			if root == "" {
				root = a.v.GetString("home")
			}
			if root == "" {
				wd, err := a.getwd()
				if err != nil {
					return err
				}
				root = wd
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			a.setupLogger(abs)

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer(), usecase.WithLogger(a.log()))
			written, err := uc.Execute(abs, force)
			if err != nil {
				return err
			}

			if len(written) == 0 {
				a.term.Info("%s is already initialized (use --force to overwrite)", abs)
				return nil
			}
			for _, f := range written {
				rel, relErr := filepath.Rel(abs, f)
				if relErr != nil {
					rel = f
				}
				a.term.Success("created %s", rel)
			}
			a.term.Info("ryujin home ready at %s", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "directory to initialize (defaults to --home or the working directory)")
	c.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return c
}
