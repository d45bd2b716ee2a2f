package handler

import (
	"Couture/config"
	"Couture/dao"
	"Couture/internal/testutil"
	"Couture/middleware"
	"Couture/models"
	"Couture/pkg/jwt"
	"Couture/pkg/limiter"
	"Couture/service"
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testApp struct {
	db     *gorm.DB
	conf   *config.Config
	engine *gin.Engine
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	conf := config.Default()
	conf.Jwt.Secret = "handler-secret"
	gen := &service.HashidsReference{Salt: "handler"}

	users := dao.NewUsers(db)
	address := dao.NewAddress(db)
	category := dao.NewCategory(db)
	product := dao.NewProduct(db)
	variant := dao.NewVariant(db)
	attribute := dao.NewAttribute(db)
	inventory := dao.NewInventory(db)
	order := dao.NewOrder(db)
	cart := dao.NewCart(db)
	refs := dao.NewReference(db)

	guard := &middleware.Guard{Config: conf, Users: users}
	variantSvc := &service.VariantService{Db: db, VariantRepo: variant, AttributeRepo: attribute,
		InventoryRepo: inventory, ProductRepo: product, RefRepo: refs, RefGen: gen}
	orderSvc := &service.OrderService{Config: conf, Db: db, OrderRepo: order, VariantRepo: variant,
		InventoryRepo: inventory, AddressRepo: address, UsersRepo: users, RefRepo: refs, RefGen: gen}

	r := gin.New()
	api := r.Group("/api")
	(&Auth{Guard: guard, AuthService: &service.AuthService{Config: conf, Db: db, UsersRepo: users,
		RefRepo: refs, RefGen: gen, LoginGuard: limiter.NewLoginGuard(conf)}}).RegisterRouter(api)
	(&User{Guard: guard, UserService: &service.UserService{Db: db, UsersRepo: users, AddressRepo: address,
		RefRepo: refs, RefGen: gen}}).RegisterRouter(api)
	(&Category{Guard: guard, CategoryService: &service.CategoryService{Db: db, CategoryRepo: category,
		ProductRepo: product}}).RegisterRouter(api)
	(&Product{Guard: guard, ProductService: &service.ProductService{Db: db, ProductRepo: product,
		CategoryRepo: category, RefRepo: refs, RefGen: gen, Variants: variantSvc},
		ImageService: &service.ImageService{ProductRepo: product}}).RegisterRouter(api)
	(&Variant{Guard: guard, VariantService: variantSvc,
		AttributeService: &service.AttributeService{AttributeRepo: attribute}}).RegisterRouter(api)
	(&Inventory{Guard: guard, InventoryService: &service.InventoryService{Db: db,
		InventoryRepo: inventory}}).RegisterRouter(api)
	(&Order{Guard: guard, OrderService: orderSvc}).RegisterRouter(api)
	(&Cart{Guard: guard, CartService: &service.CartService{Db: db, CartRepo: cart, VariantRepo: variant,
		Orders: orderSvc}}).RegisterRouter(api)
	(&Admin{Guard: guard, SummaryService: &service.SummaryService{ProductRepo: product, UsersRepo: users,
		OrderRepo: order, InventoryRepo: inventory}}).RegisterRouter(api)

	return &testApp{db: db, conf: conf, engine: r}
}

// login 直接写入用户并签发令牌
func (a *testApp) login(t *testing.T, email, role string) (*models.User, string) {
	t.Helper()
	u := testutil.SeedUser(t, a.db, email, role)
	tok, err := jwt.GenerateToken([]byte(a.conf.Jwt.Secret), u.ID, u.Role, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	return u, tok
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(a.conf.Jwt.Header, token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}
