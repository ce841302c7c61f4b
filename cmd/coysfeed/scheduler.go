// cmd/coysfeed/scheduler.go
package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the two time-based refresh triggers: the periodic
// update restricted to active hours, and the unconditional day-rollover
// refresh that starts the new day's digest. Both run the exact same
// entry point as the HTTP force-refresh.
type Scheduler struct {
	cron       *cron.Cron
	engine     *Engine
	periodicID cron.EntryID
	rolloverID cron.EntryID
}

func NewScheduler(engine *Engine, periodicSpec, rolloverSpec string) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, engine: engine}

	var err error
	s.periodicID, err = c.AddFunc(periodicSpec, func() {
		defer RecoverFromPanic("cron-periodic")
		Logger().Info("scheduled update: refreshing daily top stories")
		s.engine.RefreshAndPublish(context.Background())
	})
	if err != nil {
		return nil, err
	}

	s.rolloverID, err = c.AddFunc(rolloverSpec, func() {
		defer RecoverFromPanic("cron-rollover")
		Logger().Info("new day update: starting fresh daily digest")
		s.engine.RefreshAndPublish(context.Background())
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	Logger().Info("scheduler started (next periodic: %s, next rollover: %s)",
		s.NextPeriodic().Format(time.RFC3339), s.NextRollover().Format(time.RFC3339))
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// NextPeriodic returns the next periodic refresh time.
func (s *Scheduler) NextPeriodic() time.Time {
	return s.cron.Entry(s.periodicID).Next
}

// NextRollover returns the next day-rollover refresh time.
func (s *Scheduler) NextRollover() time.Time {
	return s.cron.Entry(s.rolloverID).Next
}
