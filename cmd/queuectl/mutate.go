package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"arcade_queue/internal/client"
	"arcade_queue/internal/snapshot"
)

type focusFunc func([]snapshot.CabinetView) (snapshot.CabinetView, bool)

func onCabinet(id uint) focusFunc {
	return func(views []snapshot.CabinetView) (snapshot.CabinetView, bool) {
		return snapshot.Find(views, id)
	}
}

// onCreated focuses on a cabinet whose id is only known once op has run.
func onCreated(id *uint) focusFunc {
	return func(views []snapshot.CabinetView) (snapshot.CabinetView, bool) {
		return snapshot.Find(views, *id)
	}
}

func onEntry(id uint) focusFunc {
	return func(views []snapshot.CabinetView) (snapshot.CabinetView, bool) {
		return cabinetHolding(views, id)
	}
}

// mutate runs op after the venue check and then re-renders from a fresh
// snapshot, also when op failed. focus picks the cabinet to show; without
// a match every cabinet is shown.
func (c *commandContext) mutate(cmd *cobra.Command, focus focusFunc, op func(context.Context, *client.Client) error) error {
	if err := c.checkGate(); err != nil {
		return err
	}
	cl, err := c.client()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opErr := op(ctx, cl)

	views, err := cl.Cabinets(ctx)
	if err != nil {
		if opErr != nil {
			log.WithError(err).Warn("refresh after failed request also failed")
			return opErr
		}
		return err
	}

	out := cmd.OutOrStdout()
	if focus != nil {
		if view, ok := focus(views); ok {
			renderCabinet(out, view)
			return opErr
		}
	}
	renderCabinets(out, views)
	return opErr
}
