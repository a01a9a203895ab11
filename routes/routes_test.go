package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"smarthome-http-service/config"
	"smarthome-http-service/internal/error/code"
	"smarthome-http-service/models"
	"smarthome-http-service/services"
	"smarthome-http-service/services/container"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		ServerPort:           "0",
		CORSOrigin:           "*",
		StoreDriver:          "memory",
		JWTSecretKey:         "test-secret",
		JWTTTL:               time.Hour,
		DefaultAdminPassword: "admin123",
		DefaultUserPassword:  "user123",
		MQTTTopicPrefix:      "smarthome",
		SimulationInterval:   time.Hour,
		MotionResetDelay:     time.Minute,
		LoginRate:            100,
		LoginBurst:           100,
	}
	c := container.NewServiceContainer(cfg, services.NewMemoryStore())
	t.Cleanup(func() { c.Close() })
	return &testServer{t: t, router: SetupRouter(c)}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, apiResponse) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func (s *testServer) login(username, password string) string {
	s.t.Helper()
	w, resp := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var result models.LoginResult
	require.NoError(s.t, json.Unmarshal(resp.Data, &result))
	require.NotEmpty(s.t, result.Token)
	return result.Token
}

func TestPingIsPublic(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	w, resp := s.do(http.MethodGet, "/api/rooms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrTokenInvalid, resp.Code)

	w, _ = s.do(http.MethodGet, "/api/rooms", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	s := newTestServer(t)
	w, resp := s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, code.ErrUserPasswordIncorrect, resp.Code)

	w, resp = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrBind, resp.Code)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w, resp := s.do(http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var me models.User
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Equal(t, "admin", me.Username)
	assert.Equal(t, models.RoleAdmin, me.Role)

	w, _ = s.do(http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenQueryParameter(t *testing.T) {
	s := newTestServer(t)
	token := s.login("user", "user123")
	w, _ := s.do(http.MethodGet, "/api/rooms?token="+token, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserRoleCannotManageHome(t *testing.T) {
	s := newTestServer(t)
	token := s.login("user", "user123")

	w, _ := s.do(http.MethodGet, "/api/devices/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/devices/1"},
		{http.MethodPost, "/api/rooms"},
		{http.MethodDelete, "/api/rooms/1"},
		{http.MethodGet, "/api/users"},
		{http.MethodPost, "/api/home/reset"},
	} {
		w, resp := s.do(tc.method, tc.path, token, map[string]string{"name": "x"})
		assert.Equal(t, http.StatusForbidden, w.Code, tc.path)
		assert.Equal(t, code.ErrPermissionDenied, resp.Code, tc.path)
	}

	// 普通用户可以控制设备
	w, _ = s.do(http.MethodPost, "/api/devices/1/power", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminDeletesRoomWithDevices(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w, _ := s.do(http.MethodDelete, "/api/rooms/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, id := range []string{"6", "7", "8"} {
		w, resp := s.do(http.MethodGet, "/api/devices/"+id, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, code.ErrDeviceNotFound, resp.Code)
	}

	w, resp := s.do(http.MethodGet, "/api/rooms", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &rooms))
	assert.Len(t, rooms, 4)
}

func TestAdminCreatesDeviceInRoom(t *testing.T) {
	s := newTestServer(t)
	token := s.login("admin", "admin123")

	w, resp := s.do(http.MethodPost, "/api/devices", token, map[string]interface{}{
		"name": "Desk Lamp", "type": "light", "roomId": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var device models.Device
	require.NoError(t, json.Unmarshal(resp.Data, &device))
	assert.Equal(t, 18, device.ID)
	require.NotNil(t, device.Brightness)

	w, resp = s.do(http.MethodGet, "/api/rooms/2/devices", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var devices []models.Device
	require.NoError(t, json.Unmarshal(resp.Data, &devices))
	assert.Len(t, devices, 4)

	w, resp = s.do(http.MethodPost, "/api/devices", token, map[string]interface{}{
		"name": "Ghost", "type": "light", "roomId": 99,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, code.ErrRoomNotFound, resp.Code)
}

func TestAwayModeRoundTrip(t *testing.T) {
	s := newTestServer(t)
	token := s.login("user", "user123")

	w, _ := s.do(http.MethodPost, "/api/away-mode/activate", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp := s.do(http.MethodPost, "/api/away-mode/activate", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, code.ErrAwayModeActive, resp.Code)

	var light models.Device
	_, resp = s.do(http.MethodGet, "/api/devices/1", token, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &light))
	assert.Equal(t, models.StatusOffline, light.Status)

	w, _ = s.do(http.MethodPost, "/api/away-mode/deactivate", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, resp = s.do(http.MethodGet, "/api/devices/1", token, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &light))
	assert.Equal(t, models.StatusOnline, light.Status)

	w, resp = s.do(http.MethodPost, "/api/away-mode/deactivate", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, code.ErrAwayModeInactive, resp.Code)
}

func TestPreferencesArePerUser(t *testing.T) {
	s := newTestServer(t)
	admin := s.login("admin", "admin123")
	user := s.login("user", "user123")

	w, _ := s.do(http.MethodPut, "/api/preferences", admin, models.Preferences{
		DevicesView:    models.DevicesViewList,
		DashboardCards: []string{"weather"},
		Theme:          "dark",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var prefs models.Preferences
	_, resp := s.do(http.MethodGet, "/api/preferences", admin, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &prefs))
	assert.Equal(t, models.DevicesViewList, prefs.DevicesView)

	_, resp = s.do(http.MethodGet, "/api/preferences", user, nil)
	require.NoError(t, json.Unmarshal(resp.Data, &prefs))
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestWeatherResponsesAreCached(t *testing.T) {
	s := newTestServer(t)
	token := s.login("user", "user123")

	first, _ := s.do(http.MethodGet, "/api/weather", token, nil)
	require.Equal(t, http.StatusOK, first.Code)
	second, _ := s.do(http.MethodGet, "/api/weather", token, nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	w, resp := s.do(http.MethodGet, "/api/energy/historical?period=decade", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, code.ErrValidation, resp.Code)
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	s := newTestServer(t)

	raw, err := swag.ReadDoc()
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	param := regexp.MustCompile(`:(\w+)`)
	documented := 0
	for _, route := range s.router.Routes() {
		if !strings.HasPrefix(route.Path, "/api/") {
			continue
		}
		path := param.ReplaceAllString(strings.TrimPrefix(route.Path, "/api"), "{$1}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "未记录的路径 %s", path) {
			_, ok = ops[strings.ToLower(route.Method)]
			assert.True(t, ok, "未记录的方法 %s %s", route.Method, path)
			documented++
		}
	}
	assert.Equal(t, 60, documented)
}
