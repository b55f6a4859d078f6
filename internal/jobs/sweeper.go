// Package jobs runs the background maintenance passes: releasing expired
// holds and completing bookings of elapsed showtimes.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"cinepass/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
)

type Sweeper struct {
	sweeps    commands.SweepCommands
	interval  time.Duration
	scheduler gocron.Scheduler
}

func NewSweeper(sweeps commands.SweepCommands, interval time.Duration) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Sweeper{
		sweeps:    sweeps,
		interval:  interval,
		scheduler: scheduler,
	}, nil
}

func (s *Sweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.runSweep),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	slog.Info("sweeper started", "interval", s.interval)
	return nil
}

func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Sweeper) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	released, err := s.sweeps.ReleaseExpiredHolds(ctx)
	if err != nil {
		slog.Error("expired hold sweep failed", "error", err.Error())
	} else if released > 0 {
		slog.Info("released expired holds", "count", released)
	}

	completed, err := s.sweeps.CompleteElapsedBookings(ctx)
	if err != nil {
		slog.Error("booking completion sweep failed", "error", err.Error())
	} else if completed > 0 {
		slog.Info("completed elapsed bookings", "count", completed)
	}
}
