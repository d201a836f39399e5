package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hourlog/internal/services"
	"hourlog/internal/ui"
)

type nameKind struct {
	use    string
	plural string
	add    func(*services.EntryStore, context.Context, string) error
	remove func(*services.EntryStore, context.Context, string) (bool, error)
	list   func(*services.EntryStore) []string
}

var (
	personKind = nameKind{
		use:    "person",
		plural: "people",
		add:    (*services.EntryStore).AddPerson,
		remove: (*services.EntryStore).RemovePerson,
		list:   (*services.EntryStore).People,
	}
	placeKind = nameKind{
		use:    "place",
		plural: "places",
		add:    (*services.EntryStore).AddPlace,
		remove: (*services.EntryStore).RemovePlace,
		list:   (*services.EntryStore).Places,
	}
)

// newNamesCmd builds the add/rm/list group for people or places.
func newNamesCmd(k nameKind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   k.use,
		Short: fmt.Sprintf("Manage %s", k.plural),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: fmt.Sprintf("Add a %s", k.use),
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) != 1 {
					return errors.New("name is required")
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				store, cleanup, err := openStore(ctx, cmd, nil, true)
				if err != nil {
					return err
				}
				defer cleanup()

				if err := k.add(store, ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconPlus+" Added "+k.use+" "+args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <name>",
			Short: fmt.Sprintf("Remove a %s (entries are kept)", k.use),
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) != 1 {
					return errors.New("name is required")
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				store, cleanup, err := openStore(ctx, cmd, nil, true)
				if err != nil {
					return err
				}
				defer cleanup()

				removed, err := k.remove(store, ctx, args[0])
				if err != nil {
					return err
				}
				if !removed {
					return fmt.Errorf("no %s named %q", k.use, args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Removed "+k.use+" "+args[0]))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: fmt.Sprintf("List %s", k.plural),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				store, cleanup, err := openStore(ctx, cmd, nil, true)
				if err != nil {
					return err
				}
				defer cleanup()

				names := k.list(store)
				if len(names) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Empty(k.plural))
					return nil
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), "- "+n)
				}
				return nil
			},
		},
	)
	return cmd
}
