package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/infra/logger"
	"github.com/aalvaropc/ryujin/internal/ui/terminal"
	"github.com/aalvaropc/ryujin/internal/ui/tui"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v    *viper.Viper
	term *terminal.Terminal
	out  io.Writer

	getenv  func(string) string
	getwd   func() (string, error)
	runTUI  func(tui.Deps) error
	ws      *workspaceCtx
	cleanup func() error
}

func newApp(in io.Reader, out io.Writer) *app {
	v := viper.New()
	v.SetEnvPrefix("RYUJIN")
	v.AutomaticEnv()

	return &app{
		v:      v,
		term:   terminal.New(terminal.WithInput(in), terminal.WithOutput(out)),
		out:    out,
		getenv: os.Getenv,
		getwd:  os.Getwd,
		runTUI: tui.Run,
	}
}

func (a *app) debug() bool { return a.v.GetBool("debug") }

func (a *app) log() *slog.Logger { return logger.L() }

// setupLogger points the process logger at root once per invocation.
func (a *app) setupLogger(root string) {
	if a.cleanup != nil {
		return
	}
	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: a.debug()})
	if err != nil {
		return
	}
	a.cleanup = cleanup
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

func Execute() {
	a := newApp(os.Stdin, os.Stdout)
	cmd := newRootCmd(a)
	err := cmd.Execute()
	if err != nil {
		a.log().Error("command.failed", "err", err, "kind", string(domain.KindOf(err)))
		a.term.Error("%s", errorMessage(err))
	}
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

// errorMessage maps classified errors through the shared user messages and
// leaves everything else (flag parsing, cobra usage errors) untouched.
func errorMessage(err error) string {
	if domain.KindOf(err) == "" {
		return err.Error()
	}
	return tui.UserMessage(err)
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ryujin",
		Short:         "ryujin composes docker-compose stacks from a service catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := a.workspace()
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Catalog:   ws.browse(),
				Selection: ws.selection(),
				Root:      ws.root,
				Logger:    a.log(),
				Debug:     a.debug(),
			}
			return a.runTUI(deps)
		},
	}

	cmd.PersistentFlags().String("home", "", "ryujin home (defaults to $RYUJIN_HOME, $RYUJIN_CLI_PATH or the nearest ryujin.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable verbose logging to .ryujin/logs/ryujin.log")
	_ = a.v.BindPFlag("home", cmd.PersistentFlags().Lookup("home"))
	_ = a.v.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.SetOut(a.out)
	cmd.SetErr(a.out)

	cmd.AddCommand(
		selectCmd(a),
		composeCmd(a),
		catalogCmd(a),
		serviceCmd(a),
		initCmd(a),
		versionCmd(a),
	)
	return cmd
}
