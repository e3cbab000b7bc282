package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/domain"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Add or remove timecard entries",
	}

	cmd.AddCommand(
		newEntryAddCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryAddCmd(app *App) *cobra.Command {
	var draft domain.EntryDraft

	cmd := &cobra.Command{
		Use:   "add [id|week|current]",
		Short: "Add a work entry to a timecard",
		Long: `Add a work entry to a timecard. Times are HH:MM on 15-minute slots.
When required flags are missing on an interactive terminal, a form asks for them.`,
		Args: cobra.MaximumNArgs(1),
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
			if tc.Completed {
				return fmt.Errorf("%w: the %s is locked", domain.ErrTimecardLocked, formatter.WeekLabel(tc.WeekStart))
			}

			if !draftComplete(draft) && app.interactive() {
				if err := entryForm(&draft).Run(); err != nil {
					return err
				}
			}

			tc, entry, err := app.Timecards.AddEntry(ctx, caller.EmployeeID, tc.ID, draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s %s–%s (%s h), week total %s h\n",
				entry.Day, entry.JobName, entry.StartTime, entry.EndTime,
				formatter.FormatHours(entry.Hours()), formatter.FormatHours(tc.TotalHours))
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Day, "day", "", "Day of week, e.g. Monday")
	cmd.Flags().StringVar(&draft.JobName, "job", "", "Job or site name")
	cmd.Flags().StringVar(&draft.StartTime, "start", "", "Start time, HH:MM")
	cmd.Flags().StringVar(&draft.EndTime, "end", "", "End time, HH:MM")
	cmd.Flags().StringVar(&draft.Description, "desc", "", "What was done")
	return cmd
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id|week|current> <entry-id>",
		Aliases: []string{"remove"},
		Short:   "Remove an entry from a timecard",
		Args:    cobra.ExactArgs(2),
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
			entry, err := resolveEntry(tc, args[1])
			if err != nil {
				return err
			}
			tc, err = app.Timecards.RemoveEntry(ctx, caller.EmployeeID, tc.ID, entry.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s %s–%s, week total %s h\n",
				entry.Day, entry.JobName, entry.StartTime, entry.EndTime, formatter.FormatHours(tc.TotalHours))
			return nil
		},
	}
}
