package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const unexpectedMsg = "Unexpected error (see logs)"

// safeModel keeps a panic in the browser from killing the terminal session:
// it logs the stack and drops the user back on the service list.
type safeModel struct {
	inner tea.Model
	log   *slog.Logger
}

func wrapSafe(m tea.Model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{inner: m, log: log}
}

func (s safeModel) Init() tea.Cmd { return s.inner.Init() }

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r)
			if m, ok := s.inner.(model); ok {
				m.scr = screenList
				m.busy = false
				m.toast = ""
				m.errMsg = unexpectedMsg
				s.inner = m
			}
			tm, cmd = s, nil
		}
	}()

	next, c := s.inner.Update(msg)
	s.inner = next
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = unexpectedMsg
		}
	}()
	return s.inner.View()
}

func (s safeModel) logPanic(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = safeModel{}
