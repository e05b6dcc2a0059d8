package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/ryujin/internal/usecase"
)

func cmdLoadCatalog(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Catalog == nil || deps.Selection == nil {
			return catalogLoadedMsg{err: errors.New("tui deps are incomplete")}
		}

		services, err := deps.Catalog.Execute(usecase.CatalogFilter{})
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		selected, err := deps.Selection.Current()
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		return catalogLoadedMsg{services: services, selected: selected}
	}
}

func cmdToggle(deps Deps, name string) tea.Cmd {
	return func() tea.Msg {
		res, err := deps.Selection.Toggle(name)
		if err != nil {
			deps.Logger.Error("tui.toggle_failed", "service", name, "err", err)
		} else {
			deps.Logger.Info("tui.toggled", "service", name, "events", len(res.Events))
		}
		return toggledMsg{name: name, res: res, err: err}
	}
}
