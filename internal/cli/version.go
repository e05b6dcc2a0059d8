package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/ryujin/internal/buildinfo"
)

func versionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			a.term.Println(buildinfo.String())
		},
	}
}
