package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/export"
)

func newCardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "card",
		Aliases: []string{"tc"},
		Short:   "Manage weekly timecards",
	}

	cmd.AddCommand(
		newCardNewCmd(app),
		newCardListCmd(app),
		newCardShowCmd(app),
		newCardCompleteCmd(app),
		newCardDeleteCmd(app),
		newCardExportCmd(app),
		newEntryCmd(app),
	)

	return cmd
}

func newCardNewCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Open a timecard for this week or the week given",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}

			var tc *domain.Timecard
			if week == "" {
				tc, err = app.Timecards.CreateCurrentWeek(ctx, caller.EmployeeID)
			} else {
				monday, parseErr := domain.ParseWeekKey(week, app.Timecards.CurrentWeek().Location())
				if parseErr != nil {
					return parseErr
				}
				tc, err = app.Timecards.Create(ctx, caller.EmployeeID, monday)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opened timecard %s for the %s\n",
				formatter.ShortID(tc.ID), formatter.WeekLabel(tc.WeekStart))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week start as YYYY-MM-DD (a Monday); defaults to this week")
	return cmd
}

func newCardListCmd(app *App) *cobra.Command {
	var limit int
	var employee string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List timecards, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}
			owner, err := resolveOwner(ctx, app, caller, employee)
			if err != nil {
				return err
			}

			cards, err := app.Timecards.List(ctx, owner.ID, limit)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No timecards yet. Open one with: timecard card new"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimecardList(cards))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many timecards (0 for all)")
	cmd.Flags().StringVar(&employee, "employee", "", "Employee ID or email (managers only)")
	return cmd
}

func newCardShowCmd(app *App) *cobra.Command {
	var employee string

	cmd := &cobra.Command{
		Use:   "show [id|week|current]",
		Short: "Show a timecard with its entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}
			owner, err := resolveOwner(ctx, app, caller, employee)
			if err != nil {
				return err
			}
			tc, err := resolveTimecard(ctx, app, owner.ID, argOrEmpty(args))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTimecard(tc))
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee ID or email (managers only)")
	return cmd
}

func newCardCompleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete [id|week|current]",
		Short: "Mark a timecard completed; it can no longer be edited",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}
			tc, err := resolveTimecard(ctx, app, caller.EmployeeID, argOrEmpty(args))
			if err != nil {
				return err
			}
			tc, err = app.Timecards.Complete(ctx, caller.EmployeeID, tc.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed timecard for the %s: %s hours\n",
				formatter.WeekLabel(tc.WeekStart), formatter.FormatHours(tc.TotalHours))
			return nil
		},
	}
}

func newCardDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id|week|current>",
		Aliases: []string{"rm"},
		Short:   "Delete a timecard",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}
			tc, err := resolveTimecard(ctx, app, caller.EmployeeID, args[0])
			if err != nil {
				return err
			}
			allowCompleted := caller.IsManager() || app.Config.EmployeeDeleteCompleted
			if err := app.Timecards.Delete(ctx, caller.EmployeeID, tc.ID, allowCompleted); err != nil {
				if errors.Is(err, domain.ErrTimecardLocked) {
					return fmt.Errorf("%w: ask a manager to delete it", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted timecard for the %s\n", formatter.WeekLabel(tc.WeekStart))
			return nil
		},
	}
}

func newCardExportCmd(app *App) *cobra.Command {
	var employee, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an employee's timecards to an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}
			owner, err := resolveOwner(ctx, app, caller, employee)
			if err != nil {
				return err
			}
			cards, err := app.Timecards.List(ctx, owner.ID, 0)
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = export.FileName(owner)
			}
			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating export directory: %w", err)
				}
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			if err := export.WriteTimecards(f, owner, cards); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing export file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d timecard(s) for %s to %s\n", len(cards), owner.Name, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee ID or email (managers only)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default timecards-<name>.xlsx)")
	return cmd
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
