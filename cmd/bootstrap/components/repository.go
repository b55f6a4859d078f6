package components

import (
	"cinepass/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewShowtimeRepository,
		repository.NewInventoryRepository,
		repository.NewHoldRepository,
		repository.NewBookingRepository,
		repository.NewSeatReadStore,
		repository.NewBookingReadStore,
	),
)
