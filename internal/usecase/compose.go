package usecase

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

type ComposeRequest struct {
	// Services overrides the persisted selection when non-empty.
	Services  []string
	OutputDir string
}

type ComposeResult struct {
	Context     domain.RenderContext
	ComposePath string
	ReadmePath  string
}

type Compose struct {
	catalog  ports.CatalogLoader
	store    ports.SelectionStore
	answers  ports.AnswerSource
	renderer ports.Renderer
	out      ports.OutputWriter
	output   domain.OutputConfig
	maxLen   int
	log      *slog.Logger
}

type ComposeDeps struct {
	Catalog  ports.CatalogLoader
	Store    ports.SelectionStore
	Answers  ports.AnswerSource
	Renderer ports.Renderer
	Output   ports.OutputWriter
}

func NewCompose(deps ComposeDeps, cfg domain.Config, opts ...Option) *Compose {
	o := applyOptions(opts)
	output := cfg.Output
	def := domain.DefaultConfig().Output
	if output.ComposeFile == "" {
		output.ComposeFile = def.ComposeFile
	}
	if output.ReadmeFile == "" {
		output.ReadmeFile = def.ReadmeFile
	}
	return &Compose{
		catalog:  deps.Catalog,
		store:    deps.Store,
		answers:  deps.Answers,
		renderer: deps.Renderer,
		out:      deps.Output,
		output:   output,
		maxLen:   cfg.Answers.MaxLength,
		log:      o.log,
	}
}

// Execute resolves the services, asks their questions, renders both templates
// and writes them to req.OutputDir. Nothing is written unless both renders
// succeed.
func (uc *Compose) Execute(ctx context.Context, req ComposeRequest) (ComposeResult, error) {
	var res ComposeResult

	names, err := uc.resolveServices(req.Services)
	if err != nil {
		return res, err
	}

	catalog, err := uc.catalog.LoadCatalog()
	if err != nil {
		return res, err
	}
	selected, err := catalog.Pick(names)
	if err != nil {
		return res, err
	}

	if err := CollectAnswers(ctx, selected, uc.answers, uc.maxLen); err != nil {
		return res, err
	}

	rc := domain.BuildRenderContext(selected)
	res.Context = rc

	compose, err := uc.renderer.RenderCompose(rc)
	if err != nil {
		uc.log.Error("compose.render_failed", "services", rc.Services, "err", err)
		return res, err
	}
	readme, err := uc.renderer.RenderReadme(rc)
	if err != nil {
		uc.log.Error("compose.readme_failed", "services", rc.Services, "err", err)
		return res, err
	}

	if res.ComposePath, err = uc.out.WriteFile(req.OutputDir, uc.output.ComposeFile, compose); err != nil {
		return res, err
	}
	if res.ReadmePath, err = uc.out.WriteFile(req.OutputDir, uc.output.ReadmeFile, readme); err != nil {
		return res, err
	}

	uc.log.Info("compose.rendered",
		"services", rc.Services,
		"vars", len(rc.Vars),
		"compose", res.ComposePath,
		"readme", res.ReadmePath,
	)
	return res, nil
}

func (uc *Compose) resolveServices(explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	names, err := uc.store.LoadSelection()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, domain.ErrEmptySelection
	}
	return domain.NewSelection(names).Names(), nil
}
