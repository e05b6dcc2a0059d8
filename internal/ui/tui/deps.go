package tui

import (
	"log/slog"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/usecase"
)

// CatalogBrowser lists catalog entries.
type CatalogBrowser interface {
	Execute(f usecase.CatalogFilter) ([]domain.Service, error)
}

// SelectionToggler reads and edits the persisted selection.
type SelectionToggler interface {
	Current() ([]string, error)
	Toggle(name string) (usecase.SelectResult, error)
}

type Deps struct {
	Catalog   CatalogBrowser
	Selection SelectionToggler

	Root   string
	Logger *slog.Logger
	Debug  bool
}
