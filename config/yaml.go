package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig 是 CONFIG_FILE 指向的 YAML 文件结构，空值不覆盖环境变量
type fileConfig struct {
	Server struct {
		Port       string `yaml:"port"`
		CORSOrigin string `yaml:"cors_origin"`
		LogDir     string `yaml:"log_dir"`
	} `yaml:"server"`

	Store struct {
		Driver string `yaml:"driver"`
	} `yaml:"store"`

	Database struct {
		Host          string `yaml:"host"`
		Port          string `yaml:"port"`
		User          string `yaml:"user"`
		Password      string `yaml:"password"`
		Name          string `yaml:"name"`
		MigrationMode string `yaml:"migration_mode"`
	} `yaml:"database"`

	Redis struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
		DB       *int   `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    string `yaml:"ttl"`
	} `yaml:"jwt"`

	MQTT struct {
		Broker      string `yaml:"broker"`
		ClientID    string `yaml:"client_id"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		TopicPrefix string `yaml:"topic_prefix"`
	} `yaml:"mqtt"`

	Simulation struct {
		Interval         string `yaml:"interval"`
		MotionResetDelay string `yaml:"motion_reset_delay"`
	} `yaml:"simulation"`
}

// applyYAMLFile 读取 YAML 配置并覆盖到 cfg 上，文件中支持 ${VAR} 形式的环境变量
func applyYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return applyYAML(cfg, data)
}

func applyYAML(cfg *Config, data []byte) error {
	expanded := os.ExpandEnv(string(data))

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	override(&cfg.ServerPort, fc.Server.Port)
	override(&cfg.CORSOrigin, fc.Server.CORSOrigin)
	override(&cfg.LogDir, fc.Server.LogDir)
	override(&cfg.StoreDriver, fc.Store.Driver)

	override(&cfg.DBHost, fc.Database.Host)
	override(&cfg.DBPort, fc.Database.Port)
	override(&cfg.DBUser, fc.Database.User)
	override(&cfg.DBPassword, fc.Database.Password)
	override(&cfg.DBName, fc.Database.Name)
	override(&cfg.DBMigrationMode, fc.Database.MigrationMode)

	override(&cfg.RedisHost, fc.Redis.Host)
	override(&cfg.RedisPort, fc.Redis.Port)
	override(&cfg.RedisPassword, fc.Redis.Password)
	override(&cfg.RedisPrefix, fc.Redis.Prefix)
	if fc.Redis.DB != nil {
		cfg.RedisDB = *fc.Redis.DB
	}

	override(&cfg.JWTSecretKey, fc.JWT.Secret)
	if err := overrideDuration(&cfg.JWTTTL, fc.JWT.TTL); err != nil {
		return fmt.Errorf("jwt.ttl: %w", err)
	}

	override(&cfg.MQTTBrokerURL, fc.MQTT.Broker)
	override(&cfg.MQTTClientID, fc.MQTT.ClientID)
	override(&cfg.MQTTUsername, fc.MQTT.Username)
	override(&cfg.MQTTPassword, fc.MQTT.Password)
	override(&cfg.MQTTTopicPrefix, fc.MQTT.TopicPrefix)

	if err := overrideDuration(&cfg.SimulationInterval, fc.Simulation.Interval); err != nil {
		return fmt.Errorf("simulation.interval: %w", err)
	}
	if err := overrideDuration(&cfg.MotionResetDelay, fc.Simulation.MotionResetDelay); err != nil {
		return fmt.Errorf("simulation.motion_reset_delay: %w", err)
	}
	return nil
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func overrideDuration(dst *time.Duration, value string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
