package service

import (
	"Couture/internal/testutil"
	"Couture/models"
	"Couture/pkg/errorx"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryID(t *testing.T, env *testEnv, variantID uint64) uint64 {
	t.Helper()
	var inv models.Inventory
	require.NoError(t, env.db.Where("variant_id = ?", variantID).First(&inv).Error)
	return inv.ID
}

func TestInventoryService_SetAndAdjust(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	v := testutil.SeedVariant(t, env.db, "JKT-1", 12000, 10)
	id := inventoryID(t, env, v.ID)

	row, err := env.inventory.Set(ctx, id, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), row.Quantity)
	assert.Equal(t, int64(models.DefaultLowStockThreshold), row.LowStockThreshold)
	assert.False(t, row.IsLowStock)

	// 同值重复设置也要成功
	_, err = env.inventory.Set(ctx, id, 7, nil)
	require.NoError(t, err)

	row, err = env.inventory.Adjust(ctx, id, -10)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), row.Quantity)
	assert.True(t, row.IsLowStock)
	assert.Equal(t, "JKT-1", row.SKU)

	row, err = env.inventory.Adjust(ctx, id, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), row.Quantity)

	row, err = env.inventory.Set(ctx, id, 2, ptr[int64](1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), row.LowStockThreshold)
	assert.False(t, row.IsLowStock)

	_, err = env.inventory.Set(ctx, id, 2, ptr[int64](-1))
	assert.True(t, errorx.Is(err, errorx.Validation))

	_, err = env.inventory.Set(ctx, 9999, 1, nil)
	assert.True(t, errorx.Is(err, errorx.NotFound))
	_, err = env.inventory.Adjust(ctx, 9999, 1)
	assert.True(t, errorx.Is(err, errorx.NotFound))
}

func TestInventoryService_LowStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	testutil.SeedVariant(t, env.db, "LOW-1", 100, 5)
	testutil.SeedVariant(t, env.db, "OK-1", 100, 6)

	rows, err := env.inventory.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LOW-1", rows[0].SKU)

	all, err := env.inventory.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
