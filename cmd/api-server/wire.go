//go:build wireinject
// +build wireinject

package main

import (
	"Couture/config"
	"Couture/dao"
	"Couture/handler"
	"Couture/middleware"
	"Couture/pkg/client"
	"Couture/pkg/database"
	"Couture/pkg/limiter"
	"Couture/pkg/oss"
	"Couture/pkg/server"
	"Couture/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		oss.NewBucket,
		wire.Bind(new(service.ObjectStorage), new(*oss.Bucket)),
		limiter.NewLoginGuard,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(middleware.Guard), "*"),
		wire.Bind(new(middleware.RoleChecker), new(*dao.Users)),

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Variant), "*"),
		wire.Struct(new(handler.Inventory), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}
