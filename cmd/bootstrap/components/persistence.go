package components

import (
	"apothecary/internal/infra/readstore"
	"apothecary/internal/infra/writerepo"
	"apothecary/internal/usecase/commands"
	"apothecary/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	writerepoModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewApothecaryStore,
			fx.As(new(queries.ApothecaryReadStore)),
		),
		fx.Annotate(
			readstore.NewStockStore,
			fx.As(new(queries.StockSearchStore)),
		),
		fx.Annotate(
			readstore.NewReservationStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var writerepoModule = fx.Module("persistence/writerepo",
	fx.Provide(
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			writerepo.NewStockRepository,
			fx.As(new(commands.StockRepository)),
		),
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
	),
)
