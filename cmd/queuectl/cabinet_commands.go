package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"arcade_queue/internal/client"
)

func newCabinetsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cabinets",
		Aliases: []string{"ls"},
		Short:   "List cabinets with who is playing",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(cl *client.Client) error {
				views, err := cl.Cabinets(cmd.Context())
				if err != nil {
					return err
				}
				renderSummary(cmd.OutOrStdout(), views)
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a cabinet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			var created uint
			return ctx.mutate(cmd, onCreated(&created), func(c context.Context, cl *client.Client) error {
				cab, err := cl.CreateCabinet(c, name)
				created = cab.ID
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <cabinet-id> <name>",
		Short: "Rename a cabinet",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "cabinet id")
			if err != nil {
				return err
			}
			name := strings.Join(args[1:], " ")
			return ctx.mutate(cmd, onCabinet(id), func(c context.Context, cl *client.Client) error {
				_, err := cl.RenameCabinet(c, id, name)
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <cabinet-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a cabinet and its whole queue",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "cabinet id")
			if err != nil {
				return err
			}
			return ctx.mutate(cmd, nil, func(c context.Context, cl *client.Client) error {
				if err := cl.DeleteCabinet(c, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted cabinet %d\n", id)
				return nil
			})
		},
	})

	return cmd
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show [cabinet-id]",
		Short: "Show the current session and waiting queue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(cl *client.Client) error {
				out := cmd.OutOrStdout()
				if len(args) == 0 {
					views, err := cl.Cabinets(cmd.Context())
					if err != nil {
						return err
					}
					renderCabinets(out, views)
					return nil
				}
				id, err := parseID(args[0], "cabinet id")
				if err != nil {
					return err
				}
				view, err := cl.Cabinet(cmd.Context(), id)
				if err != nil {
					return err
				}
				renderCabinet(out, view)
				return nil
			})
		},
	}
}
