package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"arcade_queue/internal/client"
	"arcade_queue/internal/models"
)

func newEntryCommands(ctx *commandContext) []*cobra.Command {
	return []*cobra.Command{
		newAddCommand(ctx),
		newCycleCommand(ctx),
		newMoveCommand(ctx),
		newReorderCommand(ctx),
		newRemoveCommand(ctx),
		newPlayersCommand(ctx),
	}
}

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <cabinet-id> <solo|duo> <player> [player]",
		Short: "Queue a solo player or a duo at the back of a cabinet",
		Example: "  queuectl add 1 solo Alice\n" +
			"  queuectl add 1 duo Bob Cara",
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cabinetID, err := parseID(args[0], "cabinet id")
			if err != nil {
				return err
			}
			typ := models.EntryType(args[1])
			if !typ.Valid() {
				return fmt.Errorf("entry type must be %q or %q, got %q", models.EntryTypeSolo, models.EntryTypeDuo, args[1])
			}
			players := args[2:]
			if len(players) != typ.PlayerCount() {
				return fmt.Errorf("%s entry needs %d player name(s), got %d", typ, typ.PlayerCount(), len(players))
			}
			return ctx.mutate(cmd, onCabinet(cabinetID), func(c context.Context, cl *client.Client) error {
				_, err := cl.AddEntry(c, cabinetID, typ, players)
				return err
			})
		},
	}
}

func newCycleCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <entry-id>",
		Short: "Finish a session: send the entry to the back of its queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "entry id")
			if err != nil {
				return err
			}
			return ctx.mutate(cmd, onEntry(id), func(c context.Context, cl *client.Client) error {
				return cl.Cycle(c, id)
			})
		},
	}
}

func newMoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "move <entry-id> <cabinet-id>",
		Short: "Move an entry to the back of another cabinet's queue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "entry id")
			if err != nil {
				return err
			}
			target, err := parseID(args[1], "cabinet id")
			if err != nil {
				return err
			}
			return ctx.mutate(cmd, onCabinet(target), func(c context.Context, cl *client.Client) error {
				return cl.Move(c, id, target)
			})
		},
	}
}

func newReorderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <cabinet-id> <entry-id>...",
		Short: "Put the listed entries in this order, front to back",
		Long: "Reorder redistributes the queue slots the listed entries already hold.\n" +
			"Entries left off the list keep their slots.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cabinetID, err := parseID(args[0], "cabinet id")
			if err != nil {
				return err
			}
			order, err := parseIDs(args[1:], "entry id")
			if err != nil {
				return err
			}
			return ctx.mutate(cmd, onCabinet(cabinetID), func(c context.Context, cl *client.Client) error {
				if err := cl.Reorder(c, cabinetID, order); err != nil {
					return fmt.Errorf("reorder %s: %w", joinIDs(order), err)
				}
				return nil
			})
		},
	}
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <entry-id>",
		Aliases: []string{"remove"},
		Short:   "Remove an entry from its queue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "entry id")
			if err != nil {
				return err
			}
			return ctx.mutate(cmd, nil, func(c context.Context, cl *client.Client) error {
				return cl.DeleteEntry(c, id)
			})
		},
	}
}

func newPlayersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "players <entry-id> <player> [player]",
		Short: "Rename the players of an entry",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "entry id")
			if err != nil {
				return err
			}
			players := args[1:]
			return ctx.mutate(cmd, onEntry(id), func(c context.Context, cl *client.Client) error {
				_, err := cl.UpdatePlayers(c, id, players)
				return err
			})
		},
	}
}
