package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/timecard/internal/config"
	"github.com/alexanderramin/timecard/internal/service"
)

// App holds the configuration and services used by CLI commands.
// Services left nil are built from Config before the first command runs.
type App struct {
	Config    config.Config
	Timecards service.TimecardService
	Employees service.EmployeeService

	Logger   *slog.Logger
	LogLevel *slog.LevelVar

	// IsInteractive reports whether prompts and the browser may take over
	// the terminal.
	IsInteractive func() bool

	closer io.Closer
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// connect opens the configured store and wires the services.
func (a *App) connect() error {
	if a.Timecards != nil && a.Employees != nil {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	loc, err := a.Config.Location()
	if err != nil {
		return err
	}
	store, err := config.OpenStore(a.Config)
	if err != nil {
		return err
	}
	a.closer = store

	observer := service.NewLogUseCaseObserver(a.Logger)
	opts := service.Options{Location: loc}
	a.Timecards = service.NewTimecardService(store, opts, observer)
	a.Employees = service.NewEmployeeService(store, opts, observer)
	return nil
}

func (a *App) close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

// NewRootCmd creates the top-level "timecard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timecard",
		Short:         "Weekly timecards for field employees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Logger == nil {
				app.Logger = slog.Default()
			}
			if app.LogLevel != nil {
				level, err := config.ParseLogLevel(app.Config.LogLevel)
				if err != nil {
					return err
				}
				app.LogLevel.Set(level)
			}
			if skipsStore(cmd) {
				return nil
			}
			if err := app.connect(); err != nil {
				return fmt.Errorf("connecting to store: %w", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
	}

	bindConfigFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newServeCmd(app),
		newEmployeeCmd(app),
		newCardCmd(app),
		newWeekCmd(app),
		newBrowseCmd(app),
	)

	return root
}

// bindConfigFlags lets flags override the environment-loaded config.
func bindConfigFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.StringVar(&cfg.Store, "store", cfg.Store, "Store driver: sqlite, postgres or bolt")
	flags.StringVar(&cfg.DB, "db", cfg.DB, "Database path, or DSN for postgres")
	flags.StringVar(&cfg.TZ, "tz", cfg.TZ, "Time zone that decides the current week")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&cfg.Employee, "as", cfg.Employee, "Employee ID or email to act as")
}

// skipsStore reports whether cmd only prints help or completions.
func skipsStore(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.HasParent() && cmd.Parent().Name() == "completion"
}
