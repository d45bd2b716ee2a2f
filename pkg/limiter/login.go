package limiter

import (
	"Couture/config"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type attempt struct {
	count int
	first time.Time
}

// LoginGuard 记录每个账号在窗口期内的失败登录次数
type LoginGuard struct {
	attempts cmap.ConcurrentMap[string, attempt]
	max      int
	window   time.Duration
	now      func() time.Time
}

func NewLoginGuard(conf *config.Config) *LoginGuard {
	return newLoginGuard(conf.Auth.MaxAttempts, conf.Auth.AttemptWindow, time.Now)
}

func newLoginGuard(max int, window time.Duration, now func() time.Time) *LoginGuard {
	return &LoginGuard{
		attempts: cmap.New[attempt](),
		max:      max,
		window:   window,
		now:      now,
	}
}

// Allow 返回 false 表示该账号已被临时锁定
func (g *LoginGuard) Allow(key string) bool {
	a, ok := g.attempts.Get(key)
	if !ok {
		return true
	}
	if g.now().Sub(a.first) > g.window {
		g.attempts.Remove(key)
		return true
	}
	return a.count < g.max
}

func (g *LoginGuard) Fail(key string) {
	now := g.now()
	g.attempts.Upsert(key, attempt{count: 1, first: now}, func(exist bool, old attempt, fresh attempt) attempt {
		if !exist || now.Sub(old.first) > g.window {
			return fresh
		}
		old.count++
		return old
	})
}

func (g *LoginGuard) Reset(key string) {
	g.attempts.Remove(key)
}
