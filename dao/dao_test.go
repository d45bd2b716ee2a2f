package dao_test

import (
	"Couture/dao"
	"Couture/internal/testutil"
	"Couture/models"
	"Couture/pkg/errorx"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItemUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	carts := dao.NewCart(db)

	v := testutil.SeedVariant(t, db, "TEE-BLK-M", 2500, 10)
	cart, err := carts.GetOrCreate(ctx, 7)
	require.NoError(t, err)

	again, err := carts.GetOrCreate(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	require.NoError(t, carts.AddItem(ctx, cart.ID, v.ID, 2))
	require.NoError(t, carts.AddItem(ctx, cart.ID, v.ID, 3))

	lines, err := carts.Lines(ctx, cart.ID, false)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(5), lines[0].Quantity)
	assert.Equal(t, int64(2500), lines[0].UnitPrice)
	assert.Equal(t, int64(12500), lines[0].Subtotal)
	assert.Equal(t, "TEE-BLK-M", lines[0].SKU)
	assert.Equal(t, "Product TEE-BLK-M", lines[0].ProductTitle)
}

func TestCart_SetAndPrune(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	carts := dao.NewCart(db)

	v := testutil.SeedVariant(t, db, "HOOD-GRY-L", 6000, 3)
	cart, err := carts.GetOrCreate(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, carts.SetItem(ctx, cart.ID, v.ID, 4))
	require.NoError(t, carts.SetItem(ctx, cart.ID, v.ID, 1))
	lines, err := carts.Lines(ctx, cart.ID, false)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Quantity)

	require.NoError(t, carts.AddItem(ctx, cart.ID, v.ID, -1))
	require.NoError(t, carts.PruneItem(ctx, cart.ID, v.ID))
	lines, err = carts.Lines(ctx, cart.ID, false)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestInventory_SetAndAdjust(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	inv := dao.NewInventory(db)

	v := testutil.SeedVariant(t, db, "CAP-RED", 1500, 10)
	row, err := inv.FindByWhere(ctx, "variant_id = ?", v.ID)
	require.NoError(t, err)

	_, err = inv.Set(ctx, row.ID, 3, nil)
	require.NoError(t, err)
	got, err := inv.Row(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Quantity)
	assert.True(t, got.IsLowStock)
	assert.Equal(t, "CAP-RED", got.SKU)

	_, err = inv.Adjust(ctx, row.ID, -7)
	require.NoError(t, err)
	got, err = inv.Row(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), got.Quantity)

	low, err := inv.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, v.ID, low[0].VariantID)

	_, err = inv.Row(ctx, 999)
	assert.True(t, errorx.Is(err, errorx.NotFound))
}

func TestInventory_DecrementEnforced(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	inv := dao.NewInventory(db)

	v := testutil.SeedVariant(t, db, "SOCK-WHT", 900, 2)

	n, err := inv.Decrement(ctx, v.ID, 5, true)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = inv.Decrement(ctx, v.ID, 5, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows, err := inv.RowsByVariants(ctx, []uint64{v.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), rows[v.ID].Quantity)
}

func TestProduct_PurgeWithOrders(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	products := dao.NewProduct(db)

	v := testutil.SeedVariant(t, db, "JKT-OLV-S", 12000, 1)
	order := &models.Order{UserID: 1, Status: models.OrderPending, TotalAmount: 12000}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&models.OrderItem{OrderID: order.ID, VariantID: v.ID, Quantity: 1, UnitPrice: 12000}).Error)

	err := dao.Transaction(ctx, db, func(ctx context.Context) error {
		return products.Purge(ctx, v.ProductID)
	})
	require.Error(t, err)
	assert.Equal(t, errorx.ReferentialConflict, errorx.KindOf(err))

	exist, err := products.IsExist(ctx, "id = ?", v.ProductID)
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestProduct_Purge(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	products := dao.NewProduct(db)

	v := testutil.SeedVariant(t, db, "PANT-BLK-32", 8000, 4)
	require.NoError(t, products.LinkCategories(ctx, v.ProductID, []uint64{1, 2, 2}))

	err := dao.Transaction(ctx, db, func(ctx context.Context) error {
		return products.Purge(ctx, v.ProductID)
	})
	require.NoError(t, err)

	for _, model := range []any{&models.Product{}, &models.ProductVariant{}, &models.Inventory{}, &models.ProductCategory{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestTransaction_Rollback(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	categories := dao.NewCategory(db)

	boom := errors.New("boom")
	err := dao.Transaction(ctx, db, func(ctx context.Context) error {
		require.NoError(t, categories.Create(ctx, &models.Category{Name: "Tees", Slug: "tees", Status: models.StatusActive}))
		// 嵌套调用复用同一事务
		return dao.Transaction(ctx, db, func(ctx context.Context) error {
			require.NoError(t, categories.Create(ctx, &models.Category{Name: "Caps", Slug: "caps", Status: models.StatusActive}))
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	count, err := categories.Count(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCategory_CountProducts(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	categories := dao.NewCategory(db)
	products := dao.NewProduct(db)

	cat := &models.Category{Name: "Outerwear", Slug: "outerwear", Status: models.StatusActive}
	require.NoError(t, categories.Create(ctx, cat))
	v := testutil.SeedVariant(t, db, "PARKA-1", 20000, 1)
	require.NoError(t, products.LinkCategories(ctx, v.ProductID, []uint64{cat.ID}))

	n, err := categories.CountProducts(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, total, err := products.List(ctx, dao.ProductQuery{CategorySlug: "outerwear", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, v.ProductID, list[0].ID)
}

func TestUsers_HasRole(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	users := dao.NewUsers(db)

	admin := testutil.SeedUser(t, db, "admin@couture.test", models.RoleAdmin)
	customer := testutil.SeedUser(t, db, "kim@couture.test", models.RoleCustomer)

	ok, err := users.HasRole(ctx, admin.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = users.HasRole(ctx, customer.ID, models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	err = users.Create(ctx, &models.User{Email: "kim@couture.test", Password: "x", Role: models.RoleCustomer})
	assert.True(t, errorx.Is(dao.Duplicate(err, "Email already registered"), errorx.Conflict))
}
