package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/ryujin/internal/infra/answersfile"
	"github.com/aalvaropc/ryujin/internal/ports"
	"github.com/aalvaropc/ryujin/internal/usecase"
)

func composeCmd(a *app) *cobra.Command {
	var services []string
	var outputDir string
	var answersPath string
	var yes bool

	c := &cobra.Command{
		Use:   "compose",
		Short: "Render docker-compose.yml and its README for the selected services",
		Example: `  ryujin compose -o ./stack
  ryujin compose -s postgres,redis -o ./stack --answers answers.yaml --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}

			var answers ports.AnswerSource = a.term
			if answersPath != "" {
				src, err := answersfile.Load(answersPath)
				if err != nil {
					return err
				}
				answers = src
			}

			dir, err := prepareOutputDir(a.term, outputDir, ws.cfg.Output.ComposeFile, yes)
			if err != nil {
				return err
			}

			uc := usecase.NewCompose(usecase.ComposeDeps{
				Catalog:  ws.catalog,
				Store:    ws.store,
				Answers:  answers,
				Renderer: ws.renderer,
				Output:   ws.output,
			}, ws.cfg, ws.opts...)

			res, err := uc.Execute(cmd.Context(), usecase.ComposeRequest{
				Services:  normalizeNames(services),
				OutputDir: dir,
			})
			if err != nil {
				return err
			}

			a.term.Success("wrote %s", res.ComposePath)
			a.term.Success("wrote %s", res.ReadmePath)
			return nil
		},
	}

	c.Flags().StringSliceVarP(&services, "services", "s", nil, "services to compose (defaults to the persisted selection)")
	c.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the generated files (required)")
	c.Flags().StringVar(&answersPath, "answers", "", "YAML file with answers under vars: (skips prompts)")
	c.Flags().BoolVarP(&yes, "yes", "y", false, "create the output directory and overwrite files without asking")

	_ = c.MarkFlagRequired("output-dir")
	return c
}
