//go:build wireinject
// +build wireinject

package di

import (
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/mailcheck"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/infras/redis"
	"resort/permissions"
	"resort/shared/cache"
	"resort/transport/http"
	"resort/transport/http/middleware"
	"resort/transport/http/router"

	"github.com/google/wire"

	authService "resort/internal/domains/auth/service"
	bookingRepository "resort/internal/domains/booking/repository"
	bookingService "resort/internal/domains/booking/service"
	holidayRepository "resort/internal/domains/holiday/repository"
	holidayService "resort/internal/domains/holiday/service"
	userRepository "resort/internal/domains/user/repository"
	userService "resort/internal/domains/user/service"
	authHandler "resort/internal/handlers/auth"
	bookingHandler "resort/internal/handlers/booking"
	holidayHandler "resort/internal/handlers/holiday"
	userHandler "resort/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	mailcheck.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var holidayDomain = wire.NewSet(
	holidayRepository.New,
	holidayService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	bookingDomain,
	holidayDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	holidayHandler.New,
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
