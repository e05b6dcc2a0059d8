package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/ryujin/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

type serviceItem struct {
	svc      domain.Service
	selected bool
}

func (i serviceItem) Title() string {
	mark := "[ ]"
	if i.selected {
		mark = "[x]"
	}
	return mark + " " + i.svc.Name
}

func (i serviceItem) Description() string {
	parts := []string{}
	if i.svc.CurrentVersion != "" {
		parts = append(parts, "v"+i.svc.CurrentVersion)
	}
	if len(i.svc.Tags) > 0 {
		parts = append(parts, strings.Join(i.svc.Tags, ","))
	}
	if i.svc.Description != "" {
		parts = append(parts, clampString(i.svc.Description, 60))
	}
	return strings.Join(parts, " · ")
}

func (i serviceItem) FilterValue() string {
	return i.svc.Name + " " + strings.Join(i.svc.Tags, " ")
}

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	list   list.Model
	detail domain.Service

	loaded bool
	busy   bool
	toast  string
	errMsg string
}

// Run opens the catalog browser and blocks until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "ryujin services"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenList,
		list:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdLoadCatalog(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case catalogLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.errMsg = UserMessage(msg.err)
			return m, nil
		}
		selected := domain.NewSelection(msg.selected)
		items := make([]list.Item, 0, len(msg.services))
		for _, svc := range msg.services {
			items = append(items, serviceItem{svc: svc, selected: selected.Contains(svc.Name)})
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case toggledMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = UserMessage(msg.err)
			m.toast = ""
			return m, nil
		}
		m.errMsg = ""
		m.toast = toggleToast(msg)
		return m, m.markSelected(msg.name, toggledOn(msg))

	case tea.KeyMsg:
		if m.scr == screenList && m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenList
				return m, nil
			}

		case " ":
			if m.scr != screenList || m.busy {
				return m, nil
			}
			it, ok := m.list.SelectedItem().(serviceItem)
			if !ok {
				return m, nil
			}
			m.busy = true
			return m, cmdToggle(m.deps, it.svc.Name)

		case "enter":
			if m.scr != screenList {
				return m, nil
			}
			it, ok := m.list.SelectedItem().(serviceItem)
			if !ok {
				return m, nil
			}
			m.detail = it.svc
			m.scr = screenDetail
			return m, nil
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) markSelected(name string, on bool) tea.Cmd {
	items := m.list.Items()
	for idx, li := range items {
		it, ok := li.(serviceItem)
		if !ok || it.svc.Name != name {
			continue
		}
		it.selected = on
		return m.list.SetItem(idx, it)
	}
	return nil
}

func toggledOn(msg toggledMsg) bool {
	for _, ev := range msg.res.Events {
		if ev.Service != msg.name {
			continue
		}
		switch ev.Action {
		case domain.ActionAdded, domain.ActionAlreadySelected:
			return true
		case domain.ActionRemoved, domain.ActionNotSelected:
			return false
		}
	}
	return false
}

func toggleToast(msg toggledMsg) string {
	if toggledOn(msg) {
		return "Added " + msg.name + " to the selection"
	}
	return "Removed " + msg.name + " from the selection"
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("ryujin") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("Home: %s", m.deps.Root)) + "\n"

	status := ""
	switch {
	case m.errMsg != "":
		status = m.theme.Error.Render(m.errMsg)
	case m.toast != "":
		status = m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenList:
		if !m.loaded {
			return wrap.Render(header + "\nLoading catalog…")
		}
		help := m.theme.Help.Render("↑/↓ navigate • space toggle • enter details • / filter • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.list.View()) + "\n" + status + "\n" + help)

	case screenDetail:
		help := m.theme.Help.Render("esc/b back • q list")
		return wrap.Render(header + "\n" + m.theme.Card.Render(RenderServiceDetails(m.detail, m.theme)) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
