package components

import (
	"cinepass/internal/domain/booking"
	"cinepass/internal/infra/db"
	"cinepass/internal/infra/payment"
	"cinepass/internal/pkg/clock"
	"cinepass/internal/pkg/config"
	"cinepass/internal/usecase/commands"
	"cinepass/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
	NewPaymentGateway,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewShowtimeCommands,
		NewHoldCommands,
		commands.NewBookingCommands,
		commands.NewSweepCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSeatQueries,
		queries.NewBookingQueries,
	),
)

func NewBookingPolicy(cfg config.Config) booking.Policy {
	return booking.Policy{
		FeeCents:           cfg.Booking.FeeCents,
		TaxPercent:         cfg.Booking.TaxPercent,
		CancellationWindow: cfg.Booking.CancellationWindow,
	}
}

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return payment.NewHTTPGateway(cfg.Payment)
}

func NewHoldCommands(
	cfg config.Config,
	holdRepo commands.HoldRepository,
	inventoryRepo commands.InventoryRepository,
	showtimeRepo commands.ShowtimeRepository,
	pool db.Pool,
	clk clock.Clock,
) commands.HoldCommands {
	return commands.NewHoldCommands(holdRepo, inventoryRepo, showtimeRepo, pool, clk, cfg.Booking.HoldTTL)
}
