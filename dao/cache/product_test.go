package cache

import (
	"Couture/config"
	"Couture/models"
	"Couture/types"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductCache(t *testing.T) (*ProductCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewProductCache(rds, &config.Config{Cache: &config.Cache{ProductTTL: time.Minute}}), mr
}

func TestProductCache_SetGetDel(t *testing.T) {
	c, mr := newProductCache(t)
	ctx := context.Background()

	_, hit, err := c.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, hit)

	detail := &types.ProductDetail{
		Product:         models.Product{ID: 42, Title: "Box Logo Tee", URL: "box-logo-tee", Status: models.StatusActive},
		ReferenceNumber: "PRD-XYZ",
	}
	require.NoError(t, c.Set(ctx, detail))
	assert.Equal(t, time.Minute, mr.TTL("couture:product:42"))

	got, hit, err := c.Get(ctx, 42)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Box Logo Tee", got.Title)
	assert.Equal(t, "PRD-XYZ", got.ReferenceNumber)

	require.NoError(t, c.Del(ctx, 42))
	_, hit, err = c.Get(ctx, 42)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestProductCache_CorruptEntry(t *testing.T) {
	c, mr := newProductCache(t)
	require.NoError(t, mr.Set("couture:product:7", "{not json"))

	_, hit, err := c.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, mr.Exists("couture:product:7"))
}
