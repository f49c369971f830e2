package cli

import (
	"github.com/alexanderramin/codetree/internal/config"
	"github.com/alexanderramin/codetree/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Snapshots service.SnapshotService
	Query     service.QueryService
	Edit      service.EditService

	// Config is resolved before each command runs.
	Config config.Config

	// IsInteractive reports whether stdout is a terminal. Edits print a
	// rendered tree to terminals and a JSON snapshot otherwise.
	IsInteractive func() bool
}

// NewApp wires the default services without call logging.
func NewApp() *App {
	app := &App{Config: config.DefaultConfig()}
	app.observeWith(service.NoopUseCaseObserver{})
	return app
}

func (a *App) observeWith(obs service.UseCaseObserver) {
	a.Snapshots = service.NewSnapshotService(obs)
	a.Query = service.NewQueryService(obs)
	a.Edit = service.NewEditService(obs)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "codetree" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "codetree",
		Short:         "Browse and restructure dotted-code hierarchies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			app.Config = cfg
			if cfg.LogCalls {
				obs, err := service.NewLogUseCaseObserver(cmd.ErrOrStderr(), cfg.LogLevel)
				if err != nil {
					return err
				}
				app.observeWith(obs)
			}
			return nil
		},
	}

	root.PersistentFlags().StringP("file", "f", "", "Snapshot file (.json, .yaml, .yml; - reads JSON from stdin)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.codetree/config.yaml)")
	root.PersistentFlags().Bool("log", false, "Log service calls to stderr")
	root.PersistentFlags().String("log-level", "info", "Log level for --log (debug|info|warn|error)")

	root.AddCommand(
		newShowCmd(app),
		newInspectCmd(app),
		newPathCmd(app),
		newIndexCmd(app),
		newSearchCmd(app),
		newRenameCmd(app),
		newMoveCmd(app),
		newReparentCmd(app),
		newAddCmd(app),
		newRemoveCmd(app),
		newRecodeCmd(app),
		newValidateCmd(app),
	)

	return root
}
