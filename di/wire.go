//go:build wireinject
// +build wireinject

package di

import (
	"fitbook/config"
	"fitbook/infras/kafka"
	"fitbook/infras/otel"
	"fitbook/infras/postgres"
	"fitbook/infras/redis"
	bookingHandler "fitbook/internal/handlers/booking"
	classHandler "fitbook/internal/handlers/class"
	"fitbook/internal/worker/notification"
	"fitbook/shared/cache"
	"fitbook/shared/repository"
	"fitbook/transport/http"
	"fitbook/transport/http/middleware"
	"fitbook/transport/http/router"

	bookingRepository "fitbook/internal/domains/booking/repository"
	bookingService "fitbook/internal/domains/booking/service"
	classRepository "fitbook/internal/domains/class/repository"
	classService "fitbook/internal/domains/class/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	repository.NewTransactor,
)

var classDomain = wire.NewSet(
	classRepository.New,
	classService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	classDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	classHandler.New,
	bookingHandler.New,
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

func InitializeNotifier() *notification.Worker {
	wire.Build(
		configurations,
		otel.New,
		redis.New,
		kafka.New,
		cache.NewRedisCache,
		notification.NewLogSender,
		notification.New,
	)

	return &notification.Worker{}
}
