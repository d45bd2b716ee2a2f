package server

import (
	"Couture/handler"
)

type Handlers struct {
	Auth      *handler.Auth
	User      *handler.User
	Category  *handler.Category
	Product   *handler.Product
	Variant   *handler.Variant
	Inventory *handler.Inventory
	Order     *handler.Order
	Cart      *handler.Cart
	Admin     *handler.Admin
}
