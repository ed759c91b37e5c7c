package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cat-cafe/internal/app"
	"cat-cafe/internal/core/config"
	"cat-cafe/internal/domain"
	"cat-cafe/internal/store"
	mdw "cat-cafe/internal/transport/http/middleware"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWT:   config.JWT{Secret: "test-secret", Issuer: "cat-cafe", AccessTokenTTLMin: 15, RefreshTokenTTLHours: 24},
		Auth:  config.Auth{BcryptCost: 4, LoginLimit: 5, LoginWindowSec: 300, Admins: []string{"root"}},
		Store: config.Store{Driver: "file", Dir: t.TempDir()},
	}
}

func newContainer(t *testing.T, cfg *config.Config) *app.Container {
	t.Helper()
	fb, err := store.NewFileBackend(cfg.Store.Dir)
	require.NoError(t, err)
	return app.Build(cfg, fb, zap.NewNop())
}

func newAPI(t *testing.T, limiter mdw.Limiter) *gin.Engine {
	t.Helper()
	c := newContainer(t, testConfig(t))
	return NewAPIEngine(zap.NewNop(), APIDeps{
		Cats: c.Cats, Staff: c.Staff, Adopters: c.Adopters, Auth: c.Auth, JWT: c.JWT,
		LoginLimiter: limiter,
		Mode:         gin.TestMode,
	})
}

type client struct {
	t     *testing.T
	h     http.Handler
	token string
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var rd *bytes.Reader
	switch b := body.(type) {
	case nil:
		rd = bytes.NewReader(nil)
	case string:
		rd = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	w := httptest.NewRecorder()
	c.h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func whiskers() map[string]any {
	return map[string]any{
		"name":          "Whiskers",
		"age":           3,
		"breed":         "Siamese",
		"dateJoined":    "2024-05-01T09:00:00Z",
		"vaccinated":    true,
		"temperament":   []string{"Calm", "Playful"},
		"staffInCharge": domain.BossID,
		"isAdopted":     false,
	}
}

func TestAPI_CatsAndStaffScenario(t *testing.T) {
	c := &client{t: t, h: newAPI(t, nil)}

	w := c.do(http.MethodPost, "/api/cats", whiskers())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[domain.Cat](t, w)
	assert.Equal(t, 1, created.ID)

	w = c.do(http.MethodGet, "/api/cats/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decode[domain.Cat](t, w))

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, "/api/cats/2", nil).Code)
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodGet, "/api/cats/abc", nil).Code)

	// 过滤
	list := decode[[]domain.Cat](t, c.do(http.MethodGet, "/api/cats?temperaments=calm%7CPLAYFUL", nil))
	assert.Len(t, list, 1)
	list = decode[[]domain.Cat](t, c.do(http.MethodGet, "/api/cats?temperaments=shy", nil))
	assert.Empty(t, list)
	list = decode[[]domain.Cat](t, c.do(http.MethodGet, "/api/cats?isAdopted=TRUE", nil))
	assert.Empty(t, list)
	list = decode[[]domain.Cat](t, c.do(http.MethodGet, "/api/cats?isAdopted=maybe", nil))
	assert.Len(t, list, 1)

	// 员工接口需要登录
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/staff", nil).Code)

	creds := map[string]string{"username": "alice", "password": "s3cret"}
	w = c.do(http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reg := decode[map[string]string](t, w)
	assert.Equal(t, "User registered successfully", reg["message"])
	assert.NotEmpty(t, reg["userId"])
	assert.Equal(t, http.StatusConflict, c.do(http.MethodPost, "/api/auth/register", creds).Code)

	w = c.do(http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	pair := decode[map[string]string](t, w)
	c.token = pair["accessToken"]

	staff := decode[[]domain.Staff](t, c.do(http.MethodGet, "/api/staff", nil))
	require.Len(t, staff, 1)
	assert.Equal(t, domain.BossID, staff[0].ID)

	w = c.do(http.MethodGet, "/api/staff/"+domain.BossID+"?includeCats=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	withCats := decode[map[string]any](t, w)
	assert.Equal(t, "The", withCats["name"])
	cats := withCats["cats"].([]any)
	require.Len(t, cats, 1)
	assert.NotContains(t, cats[0].(map[string]any), "staffInCharge")

	w = c.do(http.MethodDelete, "/api/staff/"+domain.BossID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodDelete, "/api/cats/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, http.StatusNoContent, c.do(http.MethodDelete, "/api/staff/"+domain.BossID, nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/api/staff/"+domain.BossID, nil).Code)
}

func TestAPI_ValidationErrors(t *testing.T) {
	c := &client{t: t, h: newAPI(t, nil)}

	w := c.do(http.MethodPost, "/api/cats", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
		Data struct {
			Fields []domain.FieldError `json:"fields"`
		} `json:"data"`
	}](t, w)
	assert.Equal(t, http.StatusBadRequest, body.Code)
	assert.NotEmpty(t, body.Data.Fields)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/cats", "{not json").Code)

	in := whiskers()
	in["age"] = "three"
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/cats", in).Code)

	in = whiskers()
	in["staffInCharge"] = "11111111-1111-1111-1111-111111111111"
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodPost, "/api/cats", in).Code)

	in = whiskers()
	in["isAdopted"] = true
	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodPost, "/api/cats", in).Code)
}

func TestAPI_AdoptersAndPatch(t *testing.T) {
	c := &client{t: t, h: newAPI(t, nil)}

	w := c.do(http.MethodPost, "/api/adopters", map[string]any{
		"name": "Maria", "lastName": "Garcia", "dateOfBirth": "1990-01-01",
		"phone": "0612-345-678", "address": "Calle Mayor 1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a := decode[domain.Adopter](t, w)
	assert.Equal(t, int64(612345678), a.Phone)

	w = c.do(http.MethodPost, "/api/adopters", map[string]any{
		"name": "Kid", "lastName": "X", "dateOfBirth": time.Now().AddDate(-10, 0, 0).Format("2006-01-02"),
		"phone": "612345678", "address": "Calle Mayor 1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/cats", whiskers()).Code)

	w = c.do(http.MethodPatch, "/api/cats/1", map[string]any{"adopterId": a.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	patched := decode[domain.Cat](t, w)
	assert.True(t, patched.IsAdopted)

	w = c.do(http.MethodGet, fmt.Sprintf("/api/adopters/%d?includeCats=true", a.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string]any](t, w)["cats"], 1)

	assert.Equal(t, http.StatusBadRequest, c.do(http.MethodDelete, fmt.Sprintf("/api/adopters/%d", a.ID), nil).Code)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, "/api/adopters/99", nil).Code)

	list := decode[[]domain.Adopter](t, c.do(http.MethodGet, "/api/adopters", nil))
	assert.Len(t, list, 1)
}

func TestAPI_LoginRateLimitAndRefresh(t *testing.T) {
	c := &client{t: t, h: newAPI(t, mdw.NewMemoryLimiter(5, 5*time.Minute))}

	creds := map[string]string{"username": "bob", "password": "pw"}
	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/auth/register", creds).Code)

	w := c.do(http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	pair := decode[map[string]string](t, w)

	w = c.do(http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": pair["refreshToken"]})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[map[string]string](t, w)["accessToken"])

	w = c.do(http.MethodPost, "/api/auth/refresh", map[string]string{"refreshToken": pair["accessToken"]})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	bad := map[string]string{"username": "bob", "password": "nope"}
	for range 4 {
		assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodPost, "/api/auth/login", bad).Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, c.do(http.MethodPost, "/api/auth/login", creds).Code)

	// register 不受影响
	assert.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/auth/register",
		map[string]string{"username": "carol", "password": "pw"}).Code)
}

func TestAPI_LoginLimitIgnoresForwardedFor(t *testing.T) {
	cont := newContainer(t, testConfig(t))
	build := func(proxies []string) http.Handler {
		return NewAPIEngine(zap.NewNop(), APIDeps{
			Cats: cont.Cats, Staff: cont.Staff, Adopters: cont.Adopters, Auth: cont.Auth, JWT: cont.JWT,
			LoginLimiter:   mdw.NewMemoryLimiter(5, 5*time.Minute),
			TrustedProxies: proxies,
			Mode:           gin.TestMode,
		})
	}
	login := func(h http.Handler, i int) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"ghost","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	// 未配置代理：转发头被忽略，同一连接地址共享一个窗口
	h := build(nil)
	counts := map[int]int{}
	for i := range 20 {
		counts[login(h, i)]++
	}
	assert.Equal(t, map[int]int{http.StatusUnauthorized: 5, http.StatusTooManyRequests: 15}, counts)

	// 连接来自可信代理时按 X-Forwarded-For 区分客户端
	h = build([]string{"192.0.2.1"})
	for i := range 20 {
		assert.Equal(t, http.StatusUnauthorized, login(h, i), "client %d", i)
	}
}

func TestAPI_Ambient(t *testing.T) {
	c := &client{t: t, h: newAPI(t, nil)}

	w := c.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to Cat Café API", decode[map[string]any](t, w)["message"])

	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/health", nil).Code)

	w = c.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))

	w = c.do(http.MethodGet, "/api-docs/doc.json", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cat Café API")

	w = c.do(http.MethodGet, "/api/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_Users(t *testing.T) {
	cfg := testConfig(t)
	cont := newContainer(t, cfg)
	h := NewAdminEngine(zap.NewNop(), AdminDeps{Auth: cont.Auth, JWT: cont.JWT, Admins: cfg.Auth.Admins, Mode: gin.TestMode})
	c := &client{t: t, h: h}

	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/admin/v1/users", nil).Code)

	ctx := t.Context()
	for _, name := range []string{"root", "alice"} {
		_, err := cont.Auth.Register(ctx, domain.Credentials{Username: name, Password: "pw"})
		require.NoError(t, err)
	}

	pair, err := cont.Auth.Login(ctx, domain.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	c.token = pair.AccessToken
	assert.Equal(t, http.StatusForbidden, c.do(http.MethodGet, "/admin/v1/users", nil).Code)

	pair, err = cont.Auth.Login(ctx, domain.Credentials{Username: "root", Password: "pw"})
	require.NoError(t, err)
	c.token = pair.AccessToken
	w := c.do(http.MethodGet, "/admin/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Len(t, decode[[]map[string]any](t, w), 2)
}
