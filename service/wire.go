package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewReferenceGenerator,

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),

	wire.Struct(new(AttributeService), "*"),
	wire.Bind(new(IAttributeService), new(*AttributeService)),

	wire.Struct(new(VariantService), "*"),
	wire.Bind(new(IVariantService), new(*VariantService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(ImageService), "*"),
	wire.Bind(new(IImageService), new(*ImageService)),

	wire.Struct(new(InventoryService), "*"),
	wire.Bind(new(IInventoryService), new(*InventoryService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(SummaryService), "*"),
	wire.Bind(new(ISummaryService), new(*SummaryService)),
)
