package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/ryujin/internal/ui/tui"
)

func serviceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "service NAME",
		Short:   "Show the details of one catalog service",
		Example: "  ryujin service postgres",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}

			svc, err := ws.browse().Describe(strings.ToLower(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}

			_, err = io.WriteString(a.out, tui.RenderServiceDetails(svc, tui.PlainTheme()))
			return err
		},
	}
}
