package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hourlog/internal/core"
	"hourlog/internal/services"
	"hourlog/internal/ui"
)

func requireID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("entry id is required")
	}
	return nil
}

func newAddCmd() *cobra.Command {
	var in core.EntryInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log hours for a person at a place",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd, nil, true)
			if err != nil {
				return err
			}
			defer cleanup()

			e, err := store.AddEntry(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconPlus+" Logged "+core.FormatHours(e.Hours)+" hours"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("ID", e.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Week", e.WeekLabel))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Person, "person", "p", "", "Person")
	cmd.Flags().StringVarP(&in.Place, "place", "l", "", "Place")
	cmd.Flags().StringVarP(&in.Date, "date", "d", core.FormatDate(core.CalendarDate(time.Now())), "Date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&in.Hours, "hours", "H", "", "Hours worked")

	return cmd
}

func newEditCmd() *cobra.Command {
	var date, hours string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the date and hours of an entry",
		Long:  "Change the date and hours of an entry. Values not given as flags are prompted for, defaulting to the current ones.",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			store, cleanup, err := openStore(ctx, cmd, p, false)
			if err != nil {
				return err
			}
			defer cleanup()

			e, ok := store.Entry(args[0])
			if !ok {
				return fmt.Errorf("no entry with id %q", args[0])
			}
			if !cmd.Flags().Changed("date") {
				if date, err = p.Ask("Date", e.Date); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("hours") {
				if hours, err = p.Ask("Hours", core.FormatHours(e.Hours)); err != nil {
					return err
				}
			}

			updated, _, err := store.EditEntry(ctx, e.ID, date, hours)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated entry "+updated.ID))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Week", updated.WeekLabel))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&hours, "hours", "H", "", "New hours")

	return cmd
}

func newRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an entry",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			store, cleanup, err := openStore(ctx, cmd, p, yes)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, ok := store.Entry(args[0]); !ok {
				return fmt.Errorf("no entry with id %q", args[0])
			}
			deleted, err := store.DeleteEntry(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Cancelled."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted entry "+args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func newListCmd() *cobra.Command {
	var f services.EntryFilter
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch sortBy {
			case "", "none":
				f.Sort = services.SortNone
			case "asc":
				f.Sort = services.SortDateAsc
			case "desc":
				f.Sort = services.SortDateDesc
			default:
				return fmt.Errorf("invalid sort %q (none|asc|desc)", sortBy)
			}

			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd, nil, true)
			if err != nil {
				return err
			}
			defer cleanup()

			entries := store.Entries(f)
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Empty("entries"))
				return nil
			}

			rows := make([][]string, 0, len(entries))
			var total float64
			for _, e := range entries {
				rows = append(rows, []string{e.ID, e.Person, e.Place, e.Date, core.FormatHours(e.Hours), e.WeekKey})
				total += e.Hours
			}
			ui.PrintTable(cmd.OutOrStdout(),
				[]string{"ID", "Person", "Place", "Date", "Hours", "Week"},
				rows,
				[]string{"", "", "", "Total", core.FormatHours(total), ""},
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Person, "person", "", "Filter by person (substring, case-insensitive)")
	cmd.Flags().StringVar(&f.Place, "place", "", "Filter by place (substring, case-insensitive)")
	cmd.Flags().StringVar(&sortBy, "sort", "none", "Sort by date (none|asc|desc)")

	return cmd
}
