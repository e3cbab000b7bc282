package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
)

// newWeekCmd shows the caller's current-week timecard, or how to open one.
func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show this week's timecard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			caller, err := resolveCaller(ctx, app)
			if err != nil {
				return err
			}
			e, err := app.Employees.Get(ctx, caller.EmployeeID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hi %s.\n", e.FirstName())

			exists, monday, err := app.Timecards.HasCurrentWeek(ctx, caller.EmployeeID)
			if err != nil {
				return err
			}
			if !exists {
				fmt.Fprintf(out, "No timecard for the %s yet. Open one with: timecard card new\n",
					formatter.WeekLabel(monday))
				return nil
			}

			tc, err := resolveTimecard(ctx, app, caller.EmployeeID, "current")
			if isNotFound(err) {
				// Deleted between the check and the read.
				fmt.Fprintln(out, formatter.Dim("This week's timecard was just removed."))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatTimecard(tc))
			return nil
		},
	}
}
