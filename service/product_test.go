package service

import (
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/types"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCategories(t *testing.T, env *testEnv, names ...string) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, len(names))
	for _, name := range names {
		cat, err := env.category.Create(context.Background(), &types.CategoryRequest{Name: name})
		require.NoError(t, err)
		ids = append(ids, cat.ID)
	}
	return ids
}

func TestProductService_CreateWithVariantsAndCategories(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cats := seedCategories(t, env, "Tees", "Summer")
	size, err := env.attribute.Create(ctx, &types.AttributeRequest{Name: "Size"})
	require.NoError(t, err)

	got, err := env.product.Create(ctx, &types.CreateProductRequest{
		Title:       "Box Logo Tee",
		SkuPrefix:   "tee",
		CategoryIDs: cats,
		Variants: []types.VariantInput{
			{Price: 3500, Quantity: ptr[int64](12), Attributes: []types.AttributeValueInput{{AttributeID: size.ID, Value: "M"}}},
			{Price: 3500, Attributes: []types.AttributeValueInput{{AttributeID: size.ID, Value: "L"}}},
			{SKU: "TEE-XL-SPECIAL", Price: 3900},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "box-logo-tee", got.URL)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.NotEmpty(t, got.ReferenceNumber)
	require.Len(t, got.Variants, 3)

	assert.Equal(t, fmt.Sprintf("TEE-%d-1", got.ID), got.Variants[0].SKU)
	assert.Equal(t, fmt.Sprintf("TEE-%d-2", got.ID), got.Variants[1].SKU)
	assert.Equal(t, "TEE-XL-SPECIAL", got.Variants[2].SKU)

	// 每个变体恰好一行库存, 未提供数量时为 0
	require.NotNil(t, got.Variants[0].Inventory)
	assert.Equal(t, int64(12), got.Variants[0].Inventory.Quantity)
	assert.Equal(t, int64(0), got.Variants[1].Inventory.Quantity)
	assert.Equal(t, int64(0), got.Variants[2].Inventory.Quantity)
	assert.Equal(t, "35.00", got.Variants[0].PriceDisplay)
	require.Len(t, got.Variants[0].Attributes, 1)
	assert.Equal(t, "Size", got.Variants[0].Attributes[0].Name)

	var stockRows int64
	require.NoError(t, env.db.Model(&models.Inventory{}).Count(&stockRows).Error)
	assert.Equal(t, int64(3), stockRows)

	withCats, err := env.product.GetWithCategories(ctx, got.ID)
	require.NoError(t, err)
	assert.Len(t, withCats.Categories, 2)
}

func TestProductService_CreateRollsBackOnDuplicateSKU(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.product.Create(ctx, &types.CreateProductRequest{
		Title: "Cargo Pants",
		Variants: []types.VariantInput{
			{SKU: "CARGO-1", Price: 9000},
			{SKU: "CARGO-1", Price: 9000},
		},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, env.db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, env.db.Model(&models.ProductVariant{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProductService_CreateRequiresSKUOrPrefix(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.product.Create(context.Background(), &types.CreateProductRequest{
		Title:    "Beanie",
		Variants: []types.VariantInput{{Price: 1200}},
	})
	assert.True(t, errorx.Is(err, errorx.Validation))
}

func TestProductService_UpdateThenGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cats := seedCategories(t, env, "Outerwear")

	created, err := env.product.Create(ctx, &types.CreateProductRequest{Title: "Coach Jacket"})
	require.NoError(t, err)

	_, err = env.product.Update(ctx, created.ID, &types.UpdateProductRequest{
		Title:       "Coach Jacket II",
		Description: "Nylon shell",
		Status:      "inactive",
		URL:         "coach-jacket-ii-black",
		CategoryIDs: &cats,
	})
	require.NoError(t, err)

	got, err := env.product.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coach Jacket II", got.Title)
	assert.Equal(t, "Nylon shell", got.Description)
	assert.Equal(t, models.StatusInactive, got.Status)
	assert.Equal(t, "coach-jacket-ii-black", got.URL)
	require.Len(t, got.Categories, 1)

	// url 为空时由 title 生成
	_, err = env.product.Update(ctx, created.ID, &types.UpdateProductRequest{Title: "Coach Jacket III"})
	require.NoError(t, err)
	got, err = env.product.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "coach-jacket-iii", got.URL)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Len(t, got.Categories, 1)
}

func TestProductService_PurgeRejectsOrderedProduct(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.product.Create(ctx, &types.CreateProductRequest{
		Title:    "Windbreaker",
		Variants: []types.VariantInput{{SKU: "WB-1", Price: 7000, Quantity: ptr[int64](5)}},
	})
	require.NoError(t, err)
	customer, err := env.users.Register(ctx, &types.CreateUserRequest{Email: "ana@couture.test", Password: "password123"})
	require.NoError(t, err)
	_, err = env.order.Create(ctx, &types.CreateOrderRequest{
		UserID: customer.ID,
		Items:  []types.OrderItemInput{{VariantID: p.Variants[0].ID, Quantity: 1}},
	})
	require.NoError(t, err)

	err = env.product.Purge(ctx, p.ID)
	require.Error(t, err)
	assert.Equal(t, errorx.ReferentialConflict, errorx.KindOf(err))
	assert.Equal(t, "Cannot delete product with existing orders", err.Error())

	_, err = env.product.GetWithVariants(ctx, p.ID)
	assert.NoError(t, err)
}

func TestProductService_Purge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cats := seedCategories(t, env, "Caps")

	p, err := env.product.Create(ctx, &types.CreateProductRequest{
		Title:       "Five Panel",
		CategoryIDs: cats,
		Variants:    []types.VariantInput{{SKU: "FP-1", Price: 4000}},
	})
	require.NoError(t, err)

	require.NoError(t, env.product.Purge(ctx, p.ID))

	_, err = env.product.Get(ctx, p.ID)
	assert.True(t, errorx.Is(err, errorx.NotFound))
	for _, model := range []any{&models.ProductVariant{}, &models.Inventory{}, &models.ProductCategory{},
		&models.ProductReference{}, &models.VariantReference{}} {
		var count int64
		require.NoError(t, env.db.Model(model).Count(&count).Error)
		assert.Zero(t, count)
	}
	assert.True(t, errorx.Is(env.product.Purge(ctx, p.ID), errorx.NotFound))
}

func TestProductService_ListFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	cats := seedCategories(t, env, "Hoodies")

	_, err := env.product.Create(ctx, &types.CreateProductRequest{Title: "Heavy Hoodie", CategoryIDs: cats})
	require.NoError(t, err)
	_, err = env.product.Create(ctx, &types.CreateProductRequest{Title: "Light Tee", Status: "inactive"})
	require.NoError(t, err)

	list, err := env.product.List(ctx, &types.ProductFilter{Category: "hoodies"})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Heavy Hoodie", list.Products[0].Title)

	list, err = env.product.List(ctx, &types.ProductFilter{Status: "inactive"})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Light Tee", list.Products[0].Title)

	list, err = env.product.List(ctx, &types.ProductFilter{Search: "Tee", Limit: 1, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Metadata.Total)
	assert.False(t, list.Metadata.HasNextPage)

	_, err = env.product.List(ctx, &types.ProductFilter{Status: "archived"})
	assert.True(t, errorx.Is(err, errorx.Validation))
}

func TestProductService_UpdateKeepsSubmittedFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.product.Create(ctx, &types.CreateProductRequest{Title: "Tee"})
	require.NoError(t, err)

	_, err = env.product.Update(ctx, created.ID, &types.UpdateProductRequest{Title: "Tee v2", Status: "Inactive"})
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.Validation))

	_, err = env.product.Update(ctx, created.ID, &types.UpdateProductRequest{
		Title:       " Tee v2 ",
		Description: "  loose fit ",
		Status:      "inactive",
		URL:         "Tee-V2",
	})
	require.NoError(t, err)

	got, err := env.product.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, " Tee v2 ", got.Title)
	assert.Equal(t, "  loose fit ", got.Description)
	assert.Equal(t, models.StatusInactive, got.Status)
	assert.Equal(t, "Tee-V2", got.URL)

	_, err = env.product.Create(ctx, &types.CreateProductRequest{Title: "Cap", Status: "ACTIVE"})
	assert.True(t, errorx.Is(err, errorx.Validation))
}

func TestProductService_URLTaken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.product.Create(ctx, &types.CreateProductRequest{Title: "Varsity Jacket"})
	require.NoError(t, err)
	second, err := env.product.Create(ctx, &types.CreateProductRequest{Title: "Track Top"})
	require.NoError(t, err)

	_, err = env.product.Create(ctx, &types.CreateProductRequest{Title: "Varsity Jacket"})
	require.Error(t, err)
	assert.True(t, errorx.Is(err, errorx.Conflict))
	assert.Equal(t, "Product URL already exists", err.Error())

	_, err = env.product.Update(ctx, second.ID, &types.UpdateProductRequest{Title: "Track Top", URL: first.URL})
	assert.True(t, errorx.Is(err, errorx.Conflict))

	// 保留自身 url 不算冲突
	_, err = env.product.Update(ctx, first.ID, &types.UpdateProductRequest{Title: "Varsity Jacket", URL: first.URL})
	assert.NoError(t, err)
}

func TestProductService_CacheFollowsWrites(t *testing.T) {
	env := newTestEnv(t)
	mr := env.withCache(t)
	ctx := context.Background()

	p, err := env.product.Create(ctx, &types.CreateProductRequest{Title: "Fleece"})
	require.NoError(t, err)
	key := fmt.Sprintf("couture:product:%d", p.ID)

	_, err = env.product.Get(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, mr.Exists(key))

	// 缓存命中时不再读库
	require.NoError(t, env.db.Model(&models.Product{}).Where("id = ?", p.ID).Update("title", "Direct Write").Error)
	got, err := env.product.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fleece", got.Title)

	_, err = env.product.Update(ctx, p.ID, &types.UpdateProductRequest{Title: "Polar Fleece"})
	require.NoError(t, err)
	got, err = env.product.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Polar Fleece", got.Title)
	cached, err := mr.Get(key)
	require.NoError(t, err)
	assert.Contains(t, cached, "Polar Fleece")

	require.NoError(t, env.product.Purge(ctx, p.ID))
	assert.False(t, mr.Exists(key))
	_, err = env.product.Get(ctx, p.ID)
	assert.True(t, errorx.Is(err, errorx.NotFound))
}
