package config

import "time"

// Auth 登录限流
type Auth struct {
	MaxAttempts   int           `json:"max_attempts" yaml:"max_attempts"`
	AttemptWindow time.Duration `json:"attempt_window" yaml:"attempt_window"`
}

func (a *Auth) defaults() {
	if a.MaxAttempts == 0 {
		a.MaxAttempts = 5
	}
	if a.AttemptWindow == 0 {
		a.AttemptWindow = 15 * time.Minute
	}
}

type Checkout struct {
	EnforceStock bool `json:"enforce_stock" yaml:"enforce_stock"`
}

// Cache 商品详情缓存
type Cache struct {
	ProductTTL time.Duration `json:"product_ttl" yaml:"product_ttl"`
}

func (c *Cache) defaults() {
	if c.ProductTTL == 0 {
		c.ProductTTL = 10 * time.Minute
	}
}
