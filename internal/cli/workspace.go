package cli

import (
	"os"

	apptemplate "github.com/aalvaropc/ryujin/internal/app/template"
	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/infra/catalogfile"
	"github.com/aalvaropc/ryujin/internal/infra/fsoutput"
	"github.com/aalvaropc/ryujin/internal/infra/selectionstore"
	"github.com/aalvaropc/ryujin/internal/infra/workspacefinder"
	"github.com/aalvaropc/ryujin/internal/usecase"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	catalog  *catalogfile.Loader
	store    *selectionstore.JSONStore
	renderer *apptemplate.Renderer
	output   *fsoutput.Writer

	opts []usecase.Option
}

// workspace resolves the ryujin home, loads its config and wires the adapters.
// The result is cached for the rest of the invocation.
func (a *app) workspace() (*workspaceCtx, error) {
	if a.ws != nil {
		return a.ws, nil
	}

	root, err := a.resolveHome()
	if err != nil {
		return nil, err
	}
	a.setupLogger(root)

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	log := a.log()
	ws := &workspaceCtx{
		root:    root,
		cfg:     cfg,
		catalog: catalogfile.NewLoader(cfg.CatalogPath()),
		store:   selectionstore.NewJSONStore(cfg.SelectionPath()),
		renderer: apptemplate.NewRenderer(
			os.DirFS(cfg.TemplatesPath()),
			apptemplate.WithDisplayRoot(cfg.TemplatesPath()),
			apptemplate.WithLogger(log),
		),
		output: fsoutput.NewWriter(),
		opts:   []usecase.Option{usecase.WithLogger(log)},
	}
	log.Debug("workspace.loaded", "root", root, "catalog", cfg.CatalogPath(), "selection", cfg.SelectionPath())

	a.ws = ws
	return ws, nil
}

func (a *app) resolveHome() (string, error) {
	wd, err := a.getwd()
	if err != nil {
		return "", &domain.OpError{Op: "cli.getwd", Kind: domain.KindIO, Err: err}
	}
	return workspacefinder.NewFinder().ResolveHome(a.v.GetString("home"), wd, a.getenv)
}

func (ws *workspaceCtx) browse() *usecase.BrowseCatalog {
	return usecase.NewBrowseCatalog(ws.catalog)
}

func (ws *workspaceCtx) selection() *usecase.SelectServices {
	return usecase.NewSelectServices(ws.catalog, ws.store, ws.opts...)
}
