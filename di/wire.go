//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tzresolve/config"
	"tzresolve/infras/otel"
	"tzresolve/infras/redis"
	zoneService "tzresolve/internal/domains/zone/service"
	zoneHandler "tzresolve/internal/handlers/zone"
	"tzresolve/shared/cache"
	"tzresolve/shared/timezone"
	"tzresolve/transport/http"
	"tzresolve/transport/http/middleware"
	"tzresolve/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var timezoneSet = wire.NewSet(
	timezone.NewDatabase,
	timezone.NewDetector,
	timezone.New,
)

var zoneDomain = wire.NewSet(
	timezoneSet,
	wire.Bind(new(zoneService.Resolver), new(*timezone.Resolver)),
	wire.Bind(new(timezone.Catalog), new(*timezone.SystemDatabase)),
	zoneService.New,
)

var domains = wire.NewSet(
	zoneDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	zoneHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeResolver() *timezone.Resolver {
	wire.Build(
		configurations,
		timezoneSet,
	)

	return &timezone.Resolver{}
}
