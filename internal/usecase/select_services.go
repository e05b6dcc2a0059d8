package usecase

import (
	"log/slog"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/ports"
)

// SelectRequest mirrors the select command flags. Steps run in the order
// new, add, delete, remove, print; the first failure stops the request.
type SelectRequest struct {
	New      bool
	Add      bool
	Delete   bool
	Remove   bool
	Print    bool
	Services []string
}

func (r SelectRequest) mutates() bool {
	return r.New || r.Add || r.Delete || r.Remove
}

// SelectResult carries the event log and, when Print was requested, the
// resulting selection.
type SelectResult struct {
	Events    []domain.SelectionEvent
	Selection []string
	Saved     bool
}

type SelectServices struct {
	catalog ports.CatalogLoader
	store   ports.SelectionStore
	log     *slog.Logger
}

func NewSelectServices(cl ports.CatalogLoader, store ports.SelectionStore, opts ...Option) *SelectServices {
	o := applyOptions(opts)
	return &SelectServices{catalog: cl, store: store, log: o.log}
}

// Execute applies the request to the persisted selection. The selection is
// written back only when every step succeeded.
func (uc *SelectServices) Execute(req SelectRequest) (SelectResult, error) {
	var res SelectResult

	names, err := uc.store.LoadSelection()
	if err != nil {
		return res, err
	}
	sel := domain.NewSelection(names)

	var catalog domain.Catalog
	loadCatalog := func() (domain.Catalog, error) {
		if catalog != nil {
			return catalog, nil
		}
		c, err := uc.catalog.LoadCatalog()
		if err != nil {
			return nil, err
		}
		catalog = c
		return catalog, nil
	}

	step := func(events []domain.SelectionEvent, err error) error {
		if err != nil {
			return err
		}
		res.Events = append(res.Events, events...)
		return nil
	}

	if req.New {
		c, err := loadCatalog()
		if err != nil {
			return res, err
		}
		if err := step(sel.Replace(c, req.Services)); err != nil {
			return res, err
		}
	}
	if req.Add && len(req.Services) > 0 {
		c, err := loadCatalog()
		if err != nil {
			return res, err
		}
		if err := step(sel.Add(c, req.Services)); err != nil {
			return res, err
		}
	}
	if req.Delete {
		if err := step(sel.Clear()); err != nil {
			return res, err
		}
	}
	if req.Remove && len(req.Services) > 0 {
		if err := step(sel.Remove(req.Services)); err != nil {
			return res, err
		}
	}
	if req.Print {
		list, err := sel.List()
		if err != nil {
			return res, err
		}
		res.Selection = list
	}

	if req.mutates() {
		if err := uc.store.SaveSelection(sel.Names()); err != nil {
			return res, err
		}
		res.Saved = true
		uc.log.Info("selection.saved", "services", sel.Names(), "events", len(res.Events))
	}
	return res, nil
}

// Current returns the persisted selection, possibly empty.
func (uc *SelectServices) Current() ([]string, error) {
	names, err := uc.store.LoadSelection()
	if err != nil {
		return nil, err
	}
	return domain.NewSelection(names).Names(), nil
}

// Toggle adds name when absent and removes it otherwise, then persists.
func (uc *SelectServices) Toggle(name string) (SelectResult, error) {
	names, err := uc.store.LoadSelection()
	if err != nil {
		return SelectResult{}, err
	}
	sel := domain.NewSelection(names)
	if sel.Contains(name) {
		return uc.Execute(SelectRequest{Remove: true, Services: []string{name}})
	}
	return uc.Execute(SelectRequest{Add: true, Services: []string{name}})
}
