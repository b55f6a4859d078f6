package bootstrap

import (
	"context"

	"cinepass/internal/jobs"
	"cinepass/internal/pkg/config"
	"cinepass/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(StartSweeper),
)

func NewSweeper(cfg config.Config, sweeps commands.SweepCommands) (*jobs.Sweeper, error) {
	return jobs.NewSweeper(sweeps, cfg.Booking.SweepInterval)
}

func StartSweeper(lc fx.Lifecycle, sweeper *jobs.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start()
		},
		OnStop: func(_ context.Context) error {
			return sweeper.Stop()
		},
	})
}
