package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/config"
	"smarthome-http-service/internal/error/code"
	"smarthome-http-service/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenBucket(t *testing.T) {
	tb := NewTokenBucket(0.001, 2)
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())
}

func TestRateLimiterRejectsBurst(t *testing.T) {
	r := gin.New()
	r.POST("/login", IPRateLimiter(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// 其他IP不受影响
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCacheServesRepeatedGets(t *testing.T) {
	rc := NewResponseCache()
	calls := 0
	r := gin.New()
	r.GET("/energy", Cache(rc, time.Minute), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls, "period": c.Query("period")})
	})

	get := func(url string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
		return w
	}

	first := get("/energy?period=week&token=a")
	second := get("/energy?token=b&period=week")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, 1, calls)

	get("/energy?period=month")
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, rc.Len())

	rc.Purge()
	get("/energy?period=week")
	assert.Equal(t, 3, calls)
}

func TestAuthenticateAdminChecksRole(t *testing.T) {
	cfg := &config.Config{
		JWTSecretKey:         "middleware-secret",
		JWTTTL:               time.Hour,
		DefaultAdminPassword: "admin123",
		DefaultUserPassword:  "user123",
	}
	users := services.NewUserService(services.NewMemoryStore(), services.NewJWTService(cfg), cfg)
	InitAuthMiddleware(users)

	r := gin.New()
	r.GET("/users", AuthenticateAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c).Username})
	})

	get := func(token string) (*httptest.ResponseRecorder, int) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		r.ServeHTTP(w, req)
		var body struct {
			Code int `json:"code"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		return w, body.Code
	}

	w, errCode := get("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrTokenInvalid, errCode)

	ctx := context.Background()
	user, err := users.Login(ctx, "user", "user123")
	require.NoError(t, err)
	w, errCode = get(user.Token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, code.ErrPermissionDenied, errCode)

	admin, err := users.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	w, _ = get(admin.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin")
}
