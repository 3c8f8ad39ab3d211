// Package scheduler runs the periodic price-refresh job.
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
)

// RefreshFunc refreshes quotes for every open trade and returns the
// number of symbols updated plus per-symbol failure messages.
type RefreshFunc func() (updated int, failures []string, err error)

// Scheduler wraps a cron runner around the price-refresh job.
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	refresh RefreshFunc
}

// New creates a scheduler for the given cron spec. An empty spec
// disables scheduling entirely; Start becomes a no-op.
func New(spec string, refresh RefreshFunc) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		spec:    spec,
		refresh: refresh,
	}
}

// Start registers the refresh job and starts the cron runner.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		log.Println("Price refresh scheduler disabled (no cron spec)")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		updated, failures, err := s.refresh()
		if err != nil {
			log.Printf("Scheduled price refresh failed: %v", err)
			return
		}
		log.Printf("Scheduled price refresh: %d symbols updated, %d failed", updated, len(failures))
		for _, f := range failures {
			log.Printf("Price refresh: %s", f)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("Price refresh scheduler started (%s)", s.spec)
	return nil
}

// Stop stops the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
