package main

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"arcade_queue/internal/client"
	"arcade_queue/internal/snapshot"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var interval, healthInterval time.Duration
	var count int

	cmd := &cobra.Command{
		Use:   "watch [cabinet-id]",
		Short: "Re-render the queues on an interval",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cabinetID uint
			if len(args) == 1 {
				id, err := parseID(args[0], "cabinet id")
				if err != nil {
					return err
				}
				cabinetID = id
			}
			s, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = s.pollInterval()
			}
			if !cmd.Flags().Changed("health-interval") {
				healthInterval = s.healthInterval()
			}
			if interval <= 0 || healthInterval <= 0 {
				return fmt.Errorf("intervals must be positive")
			}
			return ctx.withClient(func(cl *client.Client) error {
				return watch(cmd, cl, cabinetID, interval, healthInterval, count)
			})
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", defaultPollSeconds*time.Second, "Refresh interval")
	cmd.Flags().DurationVar(&healthInterval, "health-interval", defaultHealthSeconds*time.Second, "Server health probe interval")
	cmd.Flags().IntVar(&count, "count", 0, "Stop after this many refreshes (0 runs until interrupted)")
	return cmd
}

// watch renders once immediately, then on every tick. Refresh and health
// failures are logged and the loop carries on.
func watch(cmd *cobra.Command, cl *client.Client, cabinetID uint, interval, healthInterval time.Duration, count int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	refresh := func() {
		views, err := cl.Cabinets(ctx)
		if err != nil {
			log.WithError(err).Warn("refresh failed")
			return
		}
		fmt.Fprintf(out, "-- %s --\n", time.Now().Format(time.TimeOnly))
		if cabinetID == 0 {
			renderCabinets(out, views)
			return
		}
		view, ok := snapshot.Find(views, cabinetID)
		if !ok {
			log.WithField("cabinet_id", cabinetID).Warn("cabinet not found")
			return
		}
		renderCabinet(out, view)
	}

	probe := func() {
		if err := cl.Health(ctx); err != nil {
			log.WithError(err).Warn("server health check failed")
		}
	}

	refresh()
	probe()
	done := 1
	if count > 0 && done >= count {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	health := time.NewTicker(healthInterval)
	defer health.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.Canceled {
				return nil
			}
			return ctx.Err()
		case <-health.C:
			probe()
		case <-ticker.C:
			refresh()
			done++
			if count > 0 && done >= count {
				return nil
			}
		}
	}
}

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server and its store answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(cl *client.Client) error {
				if err := cl.Health(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			})
		},
	}
}

func newWhereCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show the distance to the venue and whether editing is allowed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := ctx.location()
			if err != nil {
				return err
			}
			if at == nil {
				return fmt.Errorf("location unknown: pass --lat and --lon or set [location] in the config")
			}
			s, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			d := s.gate().Check(*at)
			rows := [][]string{
				{"Location", at.String()},
				{"Venue", s.Venue.String()},
				{"Distance", fmt.Sprintf("%.3f km", d.DistanceKm)},
				{"Radius", fmt.Sprintf("%.3f km", d.RadiusKm)},
				{"Can edit", yesNo(d.CanEdit)},
			}

			if cl, err := ctx.client(); err == nil {
				if remote, err := cl.Geofence(cmd.Context(), *at); err != nil {
					log.WithError(err).Debug("server geofence check unavailable")
				} else {
					rows = append(rows, []string{"Server says", fmt.Sprintf("%.3f km, can edit: %s", remote.DistanceKm, yesNo(remote.CanEdit))})
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(cmd.OutOrStdout(), []string{"", ""}, rows, nil))
			return nil
		},
	}
}
