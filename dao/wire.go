//go:build wireinject

package dao

import (
	"Couture/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewAddress,
	NewCategory,
	NewProduct,
	NewVariant,
	NewAttribute,
	NewInventory,
	NewOrder,
	NewCart,
	NewReference,
	cache.NewProductCache,
)
