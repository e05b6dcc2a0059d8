package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"

	"github.com/aalvaropc/ryujin/internal/domain"
)

// DetailWidth is the wrap width of service descriptions.
const DetailWidth = 80

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// RenderServiceDetails formats the detail page of a catalog entry.
func RenderServiceDetails(svc domain.Service, theme Theme) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render(svc.Name))
	b.WriteString("\n\n")

	if desc := strings.TrimSpace(svc.Description); desc != "" {
		b.WriteString(wordwrap.String(desc, DetailWidth))
		b.WriteString("\n\n")
	}

	field := func(label, value string) {
		b.WriteString(theme.Label.Render(label + ":"))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	field("Version", orDash(svc.CurrentVersion))
	field("Modified", yesNo(svc.IsModified))
	field("Last update", orDash(svc.LastUpdate))
	field("Developers", orDash(svc.Developers))
	field("Tags", orDash(strings.Join(svc.Tags, ", ")))

	if labels := svc.LinkLabels(); len(labels) > 0 {
		b.WriteString(theme.Label.Render("Links:"))
		b.WriteString("\n")
		for _, l := range labels {
			b.WriteString("  - ")
			b.WriteString(l)
			b.WriteString(": ")
			b.WriteString(svc.Links[l])
			b.WriteString("\n")
		}
	}

	if len(svc.Questions) > 0 {
		b.WriteString(theme.Label.Render("Questions:"))
		b.WriteString("\n")
		for _, q := range svc.Questions {
			b.WriteString("  - ")
			b.WriteString(q.Variable)
			b.WriteString(": ")
			b.WriteString(q.Prompt)
			b.WriteString("\n")
		}
	}

	return b.String()
}
