package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cat-cafe/internal/core/auth"
)

func init() { gin.SetMode(gin.TestMode) }

type stepClock struct{ t time.Time }

func (c *stepClock) now() time.Time      { return c.t }
func (c *stepClock) add(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	clk := &stepClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	lim := NewMemoryLimiter(5, 5*time.Minute).WithClock(clk.now)

	for i := range 5 {
		ok, err := lim.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}
	ok, _ := lim.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)

	// 窗口内任意时刻都不回补
	for range 4 {
		clk.add(time.Minute)
		ok, _ = lim.Allow(ctx, "1.2.3.4")
		assert.False(t, ok, "at +%s", clk.t.Sub(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	}
	clk.add(59 * time.Second)
	ok, _ = lim.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)

	// 不同客户端互不影响
	ok, _ = lim.Allow(ctx, "5.6.7.8")
	assert.True(t, ok)

	// 窗口结束后重新计数
	clk.add(time.Second)
	for i := range 5 {
		ok, _ = lim.Allow(ctx, "1.2.3.4")
		assert.True(t, ok, "new window attempt %d", i+1)
	}
	ok, _ = lim.Allow(ctx, "1.2.3.4")
	assert.False(t, ok)
}

func TestMemoryLimiter_EvictsExpiredKeys(t *testing.T) {
	ctx := context.Background()
	clk := &stepClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	lim := NewMemoryLimiter(5, time.Minute).WithClock(clk.now)

	for i := range 100 {
		_, _ = lim.Allow(ctx, fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Equal(t, 100, lim.Len())

	clk.add(time.Minute)
	_, _ = lim.Allow(ctx, "10.0.1.1")
	assert.Equal(t, 1, lim.Len())
}

// 需要本地 Redis：REDIS_ADDR=127.0.0.1:6379
func TestRedisLimiter(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	lim := NewRedisLimiter(rdb, 2, time.Minute)
	key := "test-" + uuid.NewString()
	t.Cleanup(func() { rdb.Del(ctx, lim.prefix+key) })

	for range 2 {
		ok, err := lim.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := lim.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	ttl, err := rdb.TTL(ctx, lim.prefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestLimit_Returns429(t *testing.T) {
	r := gin.New()
	r.POST("/login", Limit(NewMemoryLimiter(1, time.Minute), zap.NewNop(), "slow down"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		return w
	}
	assert.Equal(t, http.StatusOK, do().Code)

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "slow down", body["msg"])
}

func TestAuthJWT(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "cat-cafe", AccessTTL: time.Minute, RefreshTTL: time.Hour}
	pair, err := j.IssuePair("u-1", "alice")
	require.NoError(t, err)

	newEngine := func(disabled bool) *gin.Engine {
		r := gin.New()
		r.GET("/me", AuthJWT(j, disabled), func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString(KeyUsername))
		})
		return r
	}
	get := func(r *gin.Engine, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	r := newEngine(false)
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+pair.RefreshToken).Code)

	w := get(r, "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())

	assert.Equal(t, http.StatusOK, get(newEngine(true), "").Code)
}

func TestRequireUsers(t *testing.T) {
	r := gin.New()
	r.GET("/admin", func(c *gin.Context) {
		c.Set(KeyUsername, c.Query("as"))
		c.Next()
	}, RequireUsers([]string{"root"}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?as=root", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin?as=alice", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":500,"msg":"internal error","data":{}}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/", RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(KeyRequestID))
	})
	do := func(rid string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if rid != "" {
			req.Header.Set(KeyRequestID, rid)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := do("edge-42.a_b")
	assert.Equal(t, "edge-42.a_b", w.Header().Get(KeyRequestID))
	assert.Equal(t, "edge-42.a_b", w.Body.String())

	for _, bad := range []string{"", "has space", "x\ty", strings.Repeat("a", 65)} {
		w = do(bad)
		_, err := uuid.Parse(w.Header().Get(KeyRequestID))
		assert.NoError(t, err, "incoming %q", bad)
		assert.Equal(t, w.Header().Get(KeyRequestID), w.Body.String())
	}
}
