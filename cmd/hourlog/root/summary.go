package root

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hourlog/internal/core"
	"hourlog/internal/ui"
)

// busiestLine renders the busiest-week summary, with a dash and zero hours
// when nothing has been logged.
func busiestLine(b core.WeeklyTotal, ok bool) string {
	if !ok {
		return "Busiest Week: — – 0 hours"
	}
	return fmt.Sprintf("Busiest Week: %s (%s) – %s hours", b.WeekLabel, b.Person, core.FormatHours(b.Hours))
}

func newWeeksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Show weekly totals per person and place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd, nil, true)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconWeek, "Weekly Totals"))

			totals := store.WeeklyTotals()
			if totals.Len() == 0 {
				fmt.Fprintln(out, ui.Empty("entries"))
			} else {
				rows := make([][]string, 0, totals.Len())
				for _, t := range totals.All() {
					rows = append(rows, []string{t.WeekLabel, t.Person, t.Place, core.FormatHours(t.Hours)})
				}
				ui.PrintTable(out, []string{"Week", "Person", "Place", "Hours"}, rows, nil)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Gold.Render(busiestLine(store.Busiest())))
			return nil
		},
	}

	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show overall statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd, nil, true)
			if err != nil {
				return err
			}
			defer cleanup()

			st := store.Stats(time.Now())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconStats, "Statistics"))
			fmt.Fprintln(out, ui.LabelValue("Entries", st.Entries))
			fmt.Fprintln(out, ui.LabelValue("People", st.People))
			fmt.Fprintln(out, ui.LabelValue("Places", st.Places))
			fmt.Fprintln(out, ui.LabelValue("Total hours", core.FormatHours(st.GrandTotal)))
			fmt.Fprintln(out, ui.LabelValue("This week", core.FormatHours(st.CurrentWeekTotal)))
			fmt.Fprintln(out, busiestLine(st.Busiest, st.HasBusiest))
			return nil
		},
	}

	return cmd
}

func newClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all people, places and entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			store, cleanup, err := openStore(ctx, cmd, p, yes)
			if err != nil {
				return err
			}
			defer cleanup()

			cleared, err := store.ClearAll(ctx)
			if err != nil {
				return err
			}
			if !cleared {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Cancelled."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" All data cleared"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print people, places and entries as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd, nil, true)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := store.Snapshot()
			if snap.People == nil {
				snap.People = []string{}
			}
			if snap.Places == nil {
				snap.Places = []string{}
			}
			if snap.Entries == nil {
				snap.Entries = []core.Entry{}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(snap)
		},
	}

	return cmd
}

func newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Show the week a date falls in (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := core.FormatDate(core.CalendarDate(time.Now()))
			if len(args) == 1 {
				date = args[0]
			}
			if _, err := core.ParseDate(date); err != nil {
				return err
			}

			w := core.ComputeWeek(date)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconWeek, w.Label))
			fmt.Fprintln(out, ui.LabelValue("Number", w.Number))
			fmt.Fprintln(out, ui.LabelValue("Start", core.FormatDate(w.Start)))
			fmt.Fprintln(out, ui.LabelValue("End", core.FormatDate(w.End)))
			fmt.Fprintln(out, ui.LabelValue("Key", w.Key))
			return nil
		},
	}

	return cmd
}
