package benchmark

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
	"smarthome-http-service/routes"
	"smarthome-http-service/services"
	"smarthome-http-service/services/container"
)

// TestConfig 压测配置，BENCH_BASE_URL 为空时在进程内启动服务
type TestConfig struct {
	BaseURL     string
	AdminUser   string
	AdminPass   string
	Concurrency int
	Requests    int
}

var (
	testConfig TestConfig
	authToken  string
)

// TestMain 测试主函数
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	testConfig = loadConfig()

	var shutdown func()
	if testConfig.BaseURL == "" {
		testConfig.BaseURL, shutdown = startServer()
	}

	token, err := NewAPIBenchmark(testConfig.BaseURL, 1, 1, "").Login(testConfig.AdminUser, testConfig.AdminPass)
	if err != nil {
		fmt.Printf("获取认证令牌失败: %v\n", err)
		os.Exit(1)
	}
	authToken = token

	code := m.Run()
	if shutdown != nil {
		shutdown()
	}
	os.Exit(code)
}

func loadConfig() TestConfig {
	cfg := TestConfig{
		BaseURL:     os.Getenv("BENCH_BASE_URL"),
		AdminUser:   "admin",
		AdminPass:   "admin123",
		Concurrency: 10,
		Requests:    100,
	}
	if v := os.Getenv("BENCH_ADMIN_PASSWORD"); v != "" {
		cfg.AdminPass = v
	}
	if v, err := strconv.Atoi(os.Getenv("BENCH_REQUESTS")); err == nil && v > 0 {
		cfg.Requests = v
	}
	return cfg
}

// startServer 使用内存存储启动完整的路由
func startServer() (string, func()) {
	cfg := &config.Config{
		CORSOrigin:           "*",
		StoreDriver:          "memory",
		JWTSecretKey:         "bench-secret",
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
	srv := httptest.NewServer(routes.SetupRouter(c))
	return srv.URL + "/api", func() {
		srv.Close()
		c.Close()
	}
}

func runGET(t *testing.T, path string) *BenchmarkResult {
	t.Helper()
	result := NewAPIBenchmark(testConfig.BaseURL, testConfig.Concurrency, testConfig.Requests, authToken).RunGET(path)
	t.Log(result.String())
	return result
}

func TestRoomList(t *testing.T) {
	result := runGET(t, "/rooms")
	assert.Zero(t, result.FailureCount, "成功率 %.2f%%", result.SuccessRate())
	assert.Equal(t, testConfig.Requests, result.StatusCodes[http.StatusOK])
}

func TestDeviceDetail(t *testing.T) {
	result := runGET(t, "/devices/1")
	assert.Zero(t, result.FailureCount, "成功率 %.2f%%", result.SuccessRate())
}

func TestClimateStatus(t *testing.T) {
	result := runGET(t, "/climate/status")
	assert.Zero(t, result.FailureCount, "成功率 %.2f%%", result.SuccessRate())
}

func TestEnergyHistorical(t *testing.T) {
	result := runGET(t, "/energy/historical?period=month")
	assert.Zero(t, result.FailureCount, "成功率 %.2f%%", result.SuccessRate())
}

func TestUnauthenticatedRequestsFail(t *testing.T) {
	result := NewAPIBenchmark(testConfig.BaseURL, testConfig.Concurrency, 20, "").RunGET("/devices")
	assert.Equal(t, 20, result.StatusCodes[http.StatusUnauthorized])
	assert.Zero(t, result.SuccessCount)
}

// 偶数次并发切换后状态应与初始一致
func TestConcurrentPowerToggles(t *testing.T) {
	bench := NewAPIBenchmark(testConfig.BaseURL, testConfig.Concurrency, 2*(testConfig.Requests/2), authToken)

	before := fetchDevice(t, bench, 10)
	result := bench.RunPOST("/devices/10/power", nil)
	t.Log(result.String())
	require.Zero(t, result.FailureCount)

	after := fetchDevice(t, bench, 10)
	assert.Equal(t, before.Status, after.Status)
}

func fetchDevice(t *testing.T, bench *APIBenchmark, id int) models.Device {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/devices/%d", bench.BaseURL, id), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+bench.AuthToken)

	resp, err := bench.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var device models.Device
	require.NoError(t, json.Unmarshal(env.Data, &device))
	return device
}
