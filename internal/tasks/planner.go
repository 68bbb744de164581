// Package tasks runs the server's background cron jobs.
package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const jobTimeout = 30 * time.Second

// Resetter empties every cabinet queue.
type Resetter interface {
	ResetAll(ctx context.Context) (int64, error)
}

// Jobs holds the cron specs (with a seconds field). An empty spec disables
// its job.
type Jobs struct {
	ResetSpec  string
	HealthSpec string
}

// ResetQueues clears every queue, e.g. at closing time.
func ResetQueues(r Resetter) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := r.ResetAll(ctx)
		if err != nil {
			log.WithError(err).Error("scheduled queue reset failed")
			return
		}
		log.WithField("removed", n).Info("queues reset")
	}
}

// ProbeStore pings the store and logs when it stops answering.
func ProbeStore(ping func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := ping(ctx); err != nil {
			log.WithError(err).Warn("store health probe failed")
			return
		}
		log.Debug("store health probe ok")
	}
}

// InitScheduler registers the jobs and starts the scheduler. The caller
// stops it on shutdown.
func InitScheduler(jobs Jobs, r Resetter, ping func(context.Context) error) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if jobs.ResetSpec != "" {
		if _, err := c.AddFunc(jobs.ResetSpec, ResetQueues(r)); err != nil {
			return nil, fmt.Errorf("schedule queue reset %q: %w", jobs.ResetSpec, err)
		}
	}
	if jobs.HealthSpec != "" {
		if _, err := c.AddFunc(jobs.HealthSpec, ProbeStore(ping)); err != nil {
			return nil, fmt.Errorf("schedule health probe %q: %w", jobs.HealthSpec, err)
		}
	}

	c.Start()
	log.WithField("jobs", len(c.Entries())).Info("cron scheduler started")
	return c, nil
}
