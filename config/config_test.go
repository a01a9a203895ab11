package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")

	cfg := LoadConfig()

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 30*time.Second, cfg.MotionResetDelay)
	assert.Equal(t, "admin123", cfg.DefaultAdminPassword)
	assert.Equal(t, "user123", cfg.DefaultUserPassword)
	assert.True(t, cfg.IsLocal())
}

func TestLoadConfigPrefixedValuesWin(t *testing.T) {
	t.Setenv("ENV_TYPE", "server")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_SERVER_PORT", "9100")
	t.Setenv("SERVER_STORE_DRIVER", "Redis")
	t.Setenv("SIMULATION_INTERVAL", "5s")

	cfg := LoadConfig()

	assert.Equal(t, "SERVER", cfg.EnvType)
	assert.Equal(t, "9100", cfg.ServerPort)
	assert.Equal(t, "redis", cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.SimulationInterval)
}

func TestLoadConfigUnknownEnvFallsBackToLocal(t *testing.T) {
	t.Setenv("ENV_TYPE", "staging")
	t.Setenv("LOCAL_DB_NAME", "local_db")

	cfg := LoadConfig()

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "local_db", cfg.DBName)
}

func TestApplyYAMLOverridesNonEmptyValues(t *testing.T) {
	t.Setenv("BROKER_HOST", "broker.local")
	cfg := &Config{ServerPort: "8080", StoreDriver: "memory", RedisDB: 0, JWTTTL: time.Hour}

	err := applyYAML(cfg, []byte(`
server:
  port: "9090"
store:
  driver: mysql
redis:
  db: 3
jwt:
  ttl: 2h
mqtt:
  broker: tcp://${BROKER_HOST}:1883
`))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.StoreDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "tcp://broker.local:1883", cfg.MQTTBrokerURL)
}

func TestApplyYAMLRejectsBadDuration(t *testing.T) {
	cfg := &Config{}
	err := applyYAML(cfg, []byte("simulation:\n  interval: soon\n"))
	assert.Error(t, err)
}

func TestLoadConfigReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  cors_origin: https://home.example\n"), 0644))
	t.Setenv("CONFIG_FILE", path)

	cfg := LoadConfig()

	assert.Equal(t, "https://home.example", cfg.CORSOrigin)
}

func TestLoggerWritesLevels(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	Info("hello %s", "home")
	Warning("careful")
	Error("broken")

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "hello home")
	assert.Contains(t, out, "WARNING: ")
	assert.Contains(t, out, "ERROR: ")
}

func TestSetupLoggerCreatesDatedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SetupLogger(dir))
	defer SetLogOutput(os.Stderr)

	_, err := os.Stat(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
	assert.NoError(t, err)
}
