package service

import (
	"Couture/internal/testutil"
	"Couture/models"
	"Couture/pkg/errorx"
	"Couture/types"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countWhere(t *testing.T, env *testEnv, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.db.Model(model).Where(where, args...).Count(&n).Error)
	return n
}

func TestVariantService_GeneratedSKUSkipsDeletedPositions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.product.Create(ctx, &types.CreateProductRequest{
		Title:     "Zip Hoodie",
		SkuPrefix: "hd",
		Variants:  []types.VariantInput{{Price: 6000}, {Price: 6000}},
	})
	require.NoError(t, err)
	require.Len(t, p.Variants, 2)
	require.NoError(t, env.variant.Delete(ctx, p.Variants[0].ID))

	v, err := env.variant.Create(ctx, &types.CreateVariantRequest{
		ProductID:    p.ID,
		SkuPrefix:    "hd",
		VariantInput: types.VariantInput{Price: 6500},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("HD-%d-3", p.ID), v.SKU)

	// 手写的 SKU 不影响编号
	_, err = env.variant.Create(ctx, &types.CreateVariantRequest{
		ProductID:    p.ID,
		VariantInput: types.VariantInput{SKU: fmt.Sprintf("HD-%d-XL", p.ID), Price: 7000},
	})
	require.NoError(t, err)
	v, err = env.variant.Create(ctx, &types.CreateVariantRequest{
		ProductID:    p.ID,
		SkuPrefix:    "HD",
		VariantInput: types.VariantInput{Price: 6500},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("HD-%d-4", p.ID), v.SKU)
}

func TestVariantService_CreateRequiresProduct(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.variant.Create(context.Background(), &types.CreateVariantRequest{
		ProductID:    404,
		VariantInput: types.VariantInput{SKU: "GHOST-1", Price: 100},
	})
	assert.True(t, errorx.Is(err, errorx.NotFound))
}

func TestVariantService_Update(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	size, err := env.attribute.Create(ctx, &types.AttributeRequest{Name: "Size"})
	require.NoError(t, err)
	color, err := env.attribute.Create(ctx, &types.AttributeRequest{Name: "Color"})
	require.NoError(t, err)

	p, err := env.product.Create(ctx, &types.CreateProductRequest{
		Title: "Work Pants",
		Variants: []types.VariantInput{
			{SKU: "WP-32", Price: 8000, Quantity: ptr[int64](3),
				Attributes: []types.AttributeValueInput{{AttributeID: size.ID, Value: "32"}}},
			{SKU: "WP-34", Price: 8000},
		},
	})
	require.NoError(t, err)
	id := p.Variants[0].ID

	got, err := env.variant.Update(ctx, id, &types.UpdateVariantRequest{
		SKU:               "WP-32-BLK",
		Barcode:           "0123456789",
		Price:             8500,
		LowStockThreshold: ptr[int64](2),
		Attributes:        &[]types.AttributeValueInput{{AttributeID: color.ID, Value: "Black"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "WP-32-BLK", got.SKU)
	assert.Equal(t, int64(8500), got.Price)
	require.Len(t, got.Attributes, 1)
	assert.Equal(t, "Color", got.Attributes[0].Name)
	assert.Equal(t, "Black", got.Attributes[0].Value)
	require.NotNil(t, got.Inventory)
	assert.Equal(t, int64(2), got.Inventory.LowStockThreshold)
	assert.Equal(t, int64(3), got.Inventory.Quantity)

	// attributes 为 nil 时保留原属性
	got, err = env.variant.Update(ctx, id, &types.UpdateVariantRequest{SKU: "WP-32-BLK", Price: 9000})
	require.NoError(t, err)
	assert.Len(t, got.Attributes, 1)
	assert.Equal(t, int64(2), got.Inventory.LowStockThreshold)

	_, err = env.variant.Update(ctx, id, &types.UpdateVariantRequest{SKU: "WP-34", Price: 9000})
	assert.True(t, errorx.Is(err, errorx.Conflict))

	// 属性校验失败时整个更新回滚
	_, err = env.variant.Update(ctx, id, &types.UpdateVariantRequest{
		SKU:        "WP-32-NEW",
		Price:      1,
		Attributes: &[]types.AttributeValueInput{{AttributeID: 999, Value: "?"}},
	})
	assert.True(t, errorx.Is(err, errorx.Validation))
	got, err = env.variant.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "WP-32-BLK", got.SKU)
	assert.Equal(t, int64(9000), got.Price)

	_, err = env.variant.Update(ctx, 999, &types.UpdateVariantRequest{SKU: "NOPE", Price: 1})
	assert.True(t, errorx.Is(err, errorx.NotFound))
}

func TestVariantService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	size, err := env.attribute.Create(ctx, &types.AttributeRequest{Name: "Size"})
	require.NoError(t, err)
	user := testutil.SeedUser(t, env.db, "variant@couture.test", models.RoleCustomer)

	p, err := env.product.Create(ctx, &types.CreateProductRequest{
		Title: "Rib Beanie",
		Variants: []types.VariantInput{
			{SKU: "RB-1", Price: 1500, Quantity: ptr[int64](4),
				Attributes: []types.AttributeValueInput{{AttributeID: size.ID, Value: "OS"}}},
			{SKU: "RB-2", Price: 1500, Quantity: ptr[int64](4)},
		},
	})
	require.NoError(t, err)
	loose, ordered := p.Variants[0].ID, p.Variants[1].ID

	_, err = env.cart.AddItem(ctx, user.ID, loose, 1)
	require.NoError(t, err)
	_, err = env.order.Create(ctx, &types.CreateOrderRequest{
		UserID: user.ID,
		Items:  []types.OrderItemInput{{VariantID: ordered, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, env.variant.Delete(ctx, loose))
	for _, model := range []any{&models.VariantAttributeValue{}, &models.Inventory{},
		&models.VariantReference{}, &models.CartItem{}} {
		assert.Zero(t, countWhere(t, env, model, "variant_id = ?", loose))
	}
	_, err = env.variant.Get(ctx, loose)
	assert.True(t, errorx.Is(err, errorx.NotFound))

	err = env.variant.Delete(ctx, ordered)
	require.Error(t, err)
	assert.Equal(t, errorx.ReferentialConflict, errorx.KindOf(err))
	assert.Equal(t, int64(1), countWhere(t, env, &models.Inventory{}, "variant_id = ?", ordered))
	assert.Equal(t, int64(1), countWhere(t, env, &models.VariantReference{}, "variant_id = ?", ordered))

	assert.True(t, errorx.Is(env.variant.Delete(ctx, loose), errorx.NotFound))
}
