package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/usecase"
)

func selectCmd(a *app) *cobra.Command {
	var req usecase.SelectRequest

	c := &cobra.Command{
		Use:   "select",
		Short: "Edit or print the persisted service selection",
		Example: `  ryujin select --new -s postgres,redis
  ryujin select --add -s nginx --print
  ryujin select --remove -s redis
  ryujin select --delete`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			req.Services = normalizeNames(req.Services)
			if (req.Add || req.Remove) && len(req.Services) == 0 {
				return errors.New("--add and --remove require --services")
			}
			if !req.New && !req.Add && !req.Delete && !req.Remove {
				req.Print = true
			}

			ws, err := a.workspace()
			if err != nil {
				return err
			}

			// Nothing is saved on failure, so events are only reported on success.
			res, err := ws.selection().Execute(req)
			if err != nil {
				return err
			}
			reportEvents(a, res.Events)

			if req.Print {
				a.term.Header("Selected services")
				for _, name := range res.Selection {
					a.term.Println("  " + name)
				}
			}
			return nil
		},
	}

	f := c.Flags()
	f.BoolVarP(&req.New, "new", "n", false, "replace the selection with --services")
	f.BoolVarP(&req.Add, "add", "a", false, "add --services to the selection")
	f.BoolVarP(&req.Delete, "delete", "d", false, "clear the selection")
	f.BoolVarP(&req.Remove, "remove", "r", false, "remove --services from the selection")
	f.BoolVarP(&req.Print, "print", "p", false, "print the selection")
	f.StringSliceVarP(&req.Services, "services", "s", nil, "comma separated service names")

	for _, other := range []string{"new", "add", "remove", "print", "services"} {
		c.MarkFlagsMutuallyExclusive("delete", other)
	}
	c.MarkFlagsMutuallyExclusive("remove", "add")
	c.MarkFlagsMutuallyExclusive("remove", "new")
	return c
}

// normalizeNames lower-cases names and drops blanks.
func normalizeNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func reportEvents(a *app, events []domain.SelectionEvent) {
	for _, ev := range events {
		switch ev.Action {
		case domain.ActionAdded:
			a.term.Success("%s added to the selection", ev.Service)
		case domain.ActionAlreadySelected:
			a.term.Warning("%s is already selected", ev.Service)
		case domain.ActionRemoved:
			a.term.Success("%s removed from the selection", ev.Service)
		case domain.ActionNotSelected:
			a.term.Warning("%s is not in the selection", ev.Service)
		case domain.ActionCleared:
			a.term.Info("selection cleared")
		}
	}
}
