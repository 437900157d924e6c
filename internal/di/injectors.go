//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"github.com/jonboulle/clockwork"
	"presence/internal"
	"presence/internal/cache"
	"presence/internal/controllers"
	"presence/internal/parser"
	"presence/internal/providers"
	"presence/internal/refresh"
	"presence/internal/refresh/interfaces"
	"presence/internal/services"
	"presence/internal/structures"
)

var coreSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		coreSet,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		clockwork.NewRealClock,
		cache.NewStore,
		parser.NewParser,
		wire.Bind(new(parser.ParserInterface), new(*parser.Parser)),
		services.NewPresenceService,
		refresh.NewXMLRefresher,
		refresh.NewScheduler,
		controllers.NewApiController,
		controllers.NewPageController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}

func InitRefresher(cfg *structures.CliFlags) (interfaces.RefresherInterface, error) {

	wire.Build(
		coreSet,
		refresh.NewXMLRefresher,
	)

	return nil, nil
}
