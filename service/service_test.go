package service

import (
	"Couture/config"
	"Couture/dao"
	"Couture/dao/cache"
	"Couture/internal/testutil"
	"Couture/pkg/limiter"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	conf      *config.Config
	auth      *AuthService
	users     *UserService
	category  *CategoryService
	attribute *AttributeService
	variant   *VariantService
	product   *ProductService
	inventory *InventoryService
	order     *OrderService
	cart      *CartService
	summary   *SummaryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	conf := config.Default()
	conf.Jwt.Secret = "test-secret"
	gen := &HashidsReference{Salt: conf.Reference.Salt}

	usersRepo := dao.NewUsers(db)
	addressRepo := dao.NewAddress(db)
	categoryRepo := dao.NewCategory(db)
	productRepo := dao.NewProduct(db)
	variantRepo := dao.NewVariant(db)
	attributeRepo := dao.NewAttribute(db)
	inventoryRepo := dao.NewInventory(db)
	orderRepo := dao.NewOrder(db)
	cartRepo := dao.NewCart(db)
	refRepo := dao.NewReference(db)

	variant := &VariantService{Db: db, VariantRepo: variantRepo, AttributeRepo: attributeRepo,
		InventoryRepo: inventoryRepo, ProductRepo: productRepo, RefRepo: refRepo, RefGen: gen}
	order := &OrderService{Config: conf, Db: db, OrderRepo: orderRepo, VariantRepo: variantRepo,
		InventoryRepo: inventoryRepo, AddressRepo: addressRepo, UsersRepo: usersRepo, RefRepo: refRepo, RefGen: gen}

	return &testEnv{
		db:   db,
		conf: conf,
		auth: &AuthService{Config: conf, Db: db, UsersRepo: usersRepo, RefRepo: refRepo, RefGen: gen,
			LoginGuard: limiter.NewLoginGuard(conf)},
		users:     &UserService{Db: db, UsersRepo: usersRepo, AddressRepo: addressRepo, RefRepo: refRepo, RefGen: gen},
		category:  &CategoryService{Db: db, CategoryRepo: categoryRepo, ProductRepo: productRepo},
		attribute: &AttributeService{AttributeRepo: attributeRepo},
		variant:   variant,
		product: &ProductService{Db: db, ProductRepo: productRepo, CategoryRepo: categoryRepo,
			RefRepo: refRepo, RefGen: gen, Variants: variant},
		inventory: &InventoryService{Db: db, InventoryRepo: inventoryRepo},
		order:     order,
		cart:      &CartService{Db: db, CartRepo: cartRepo, VariantRepo: variantRepo, Orders: order},
		summary: &SummaryService{ProductRepo: productRepo, UsersRepo: usersRepo, OrderRepo: orderRepo,
			InventoryRepo: inventoryRepo},
	}
}

// withCache 为商品与分类服务接入 miniredis 商品缓存
func (e *testEnv) withCache(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	c := cache.NewProductCache(rds, e.conf)
	e.product.Cache = c
	e.category.Cache = c
	return mr
}

func ptr[T any](v T) *T {
	return &v
}
