package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	resp "cat-cafe/internal/transport/http/response"
)

// Limiter 按客户端 key 计数
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryLimiter 进程内固定窗口：每个 key 记窗口起点和计数，与 RedisLimiter 语义一致
type MemoryLimiter struct {
	mu      sync.Mutex
	n       int
	window  time.Duration
	now     func() time.Time
	windows map[string]*fixedWindow
	swept   time.Time
}

type fixedWindow struct {
	start time.Time
	count int
}

func NewMemoryLimiter(n int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		n:       max(1, n),
		window:  window,
		now:     time.Now,
		windows: make(map[string]*fixedWindow),
	}
}

// WithClock 替换时钟，测试用
func (m *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	m.now = now
	return m
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)
	w, ok := m.windows[key]
	if !ok || !now.Before(w.start.Add(m.window)) {
		w = &fixedWindow{start: now}
		m.windows[key] = w
	}
	w.count++
	return w.count <= m.n, nil
}

// sweep 每个窗口周期至多一次，清掉已过期的 key
func (m *MemoryLimiter) sweep(now time.Time) {
	if now.Before(m.swept.Add(m.window)) {
		return
	}
	for k, w := range m.windows {
		if !now.Before(w.start.Add(m.window)) {
			delete(m.windows, k)
		}
	}
	m.swept = now
}

// Len 当前跟踪的 key 数
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}

// RedisLimiter 固定窗口计数，多实例共享
type RedisLimiter struct {
	rdb    *redis.Client
	n      int64
	window time.Duration
	prefix string
}

func NewRedisLimiter(rdb *redis.Client, n int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, n: int64(max(1, n)), window: window, prefix: "cat-cafe:login:"}
}

// Allow SET NX EX 与 INCR 放在同一个 MULTI 里，key 一定带过期时间
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := r.prefix + key
	pipe := r.rdb.TxPipeline()
	pipe.SetNX(ctx, k, 0, r.window)
	incr := pipe.Incr(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= r.n, nil
}

// Limit 按客户端 IP 限流；后端出错时放行并告警
func Limit(lim Limiter, l *zap.Logger, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := lim.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			l.Warn("rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp.Error(resp.CodeTooManyRequests, msg))
			return
		}
		c.Next()
	}
}
