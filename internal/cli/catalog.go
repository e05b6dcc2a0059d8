package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/usecase"
)

const (
	shortColumns     = 3
	shortColumnWidth = 20
	maxDescription   = 50
)

func catalogCmd(a *app) *cobra.Command {
	var long bool
	var filter usecase.CatalogFilter

	c := &cobra.Command{
		Use:   "catalog",
		Short: "List the services in the catalog",
		Example: `  ryujin catalog
  ryujin catalog --long --tags db
  ryujin catalog -n post`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}

			filter.Tags = normalizeNames(filter.Tags)
			services, err := ws.browse().Execute(filter)
			if err != nil {
				return err
			}

			if long {
				printLongCatalog(a.out, services)
			} else {
				printShortCatalog(a.out, services)
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&long, "long", "l", false, "show description, version and tags")
	c.Flags().StringSliceVarP(&filter.Tags, "tags", "t", nil, "only services with any of these tags")
	c.Flags().StringVarP(&filter.Name, "name", "n", "", "only services whose name contains this text")
	return c
}

// cell pads s to width display columns, keeping at least one column free.
func cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width-1, ""), width)
}

// printShortCatalog prints names in fixed-width columns.
func printShortCatalog(w io.Writer, services []domain.Service) {
	var b strings.Builder
	for start := 0; start < len(services); start += shortColumns {
		end := min(start+shortColumns, len(services))
		var row strings.Builder
		for _, svc := range services[start:end] {
			row.WriteString(cell(svc.Name, shortColumnWidth))
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteString("\n")
	}
	_, _ = io.WriteString(w, b.String())
}

func printLongCatalog(w io.Writer, services []domain.Service) {
	headers := []string{"Name", "Description", "Current Version", "Tags"}
	rows := make([][]string, 0, len(services))
	for _, svc := range services {
		desc := runewidth.Truncate(svc.Description, maxDescription, "…")
		rows = append(rows, []string{svc.Name, desc, svc.CurrentVersion, strings.Join(svc.Tags, ", ")})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, v := range r {
			if n := runewidth.StringWidth(v); n > widths[i] {
				widths[i] = n
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	line := func(cols []string, header bool) string {
		var b strings.Builder
		for i, v := range cols {
			padded := runewidth.FillRight(v, widths[i]+2)
			if header {
				padded = headerStyle.Render(padded)
			}
			b.WriteString(padded)
		}
		return strings.TrimRight(b.String(), " ") + "\n"
	}

	var b strings.Builder
	b.WriteString(line(headers, true))
	for _, r := range rows {
		b.WriteString(line(r, false))
	}
	_, _ = io.WriteString(w, b.String())
}
