package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timecard/internal/httpapi"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, app)
		},
	}

	cmd.Flags().StringVar(&app.Config.Addr, "addr", app.Config.Addr, "Listen address")
	cmd.Flags().BoolVar(&app.Config.EmployeeDeleteCompleted, "employee-delete-completed", app.Config.EmployeeDeleteCompleted,
		"Let employees delete their own completed timecards")

	return cmd
}

// runServer serves until ctx is done, then drains in-flight requests.
func runServer(ctx context.Context, app *App) error {
	server := httpapi.NewServer(app.Timecards, app.Employees, httpapi.Config{
		Logger:                  app.Logger,
		LogLevel:                app.LogLevel,
		EmployeeDeleteCompleted: app.Config.EmployeeDeleteCompleted,
	})
	srv := server.NewHTTPServer(app.Config.Addr)

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("starting server", "addr", app.Config.Addr, "store", app.Config.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
