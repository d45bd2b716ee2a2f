package cache

import (
	"Couture/config"
	"Couture/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProductCache 商品详情缓存
type ProductCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProductCache(rds *redis.Client, conf *config.Config) *ProductCache {
	return &ProductCache{redis: rds, ttl: conf.Cache.ProductTTL}
}

// Get 命中返回 (detail, true); 未命中或解码失败返回 (nil, false)
func (p *ProductCache) Get(ctx context.Context, productID uint64) (*types.ProductDetail, bool, error) {
	data, err := p.redis.Get(ctx, p.name(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	detail := &types.ProductDetail{}
	if err := json.Unmarshal(data, detail); err != nil {
		// 脏数据直接丢弃
		_ = p.Del(ctx, productID)
		return nil, false, nil
	}
	return detail, true, nil
}

func (p *ProductCache) Set(ctx context.Context, detail *types.ProductDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return p.redis.Set(ctx, p.name(detail.ID), data, p.ttl).Err()
}

// Del 商品变更后失效缓存
func (p *ProductCache) Del(ctx context.Context, productIDs ...uint64) error {
	if len(productIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, p.name(id))
	}
	return p.redis.Del(ctx, keys...).Err()
}

func (p *ProductCache) name(productID uint64) string {
	return fmt.Sprintf("couture:product:%d", productID)
}
