package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Upstream *UpstreamConfig `mapstructure:"upstream"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Minio    *MinioConfig    `mapstructure:"minio"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// UpstreamConfig points at the consumer-facing Wukong backend that
// owns reference data such as the city list.
type UpstreamConfig struct {
	BackendURL string `mapstructure:"backend_url"`
}

type RedisConfig struct {
	// Addr empty disables the city-list cache.
	Addr                string `mapstructure:"addr"`
	CityCacheTTLSeconds int    `mapstructure:"city_cache_ttl_seconds"`
}

type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// Load reads the YAML config at path. Environment variables override
// file values (e.g. UPSTREAM_BACKEND_URL overrides upstream.backend_url),
// and the file is watched so a redeploy-free edit takes effect.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Short env name kept from the original deployment.
	_ = viper.BindEnv("upstream.backend_url", "BACKEND_URL")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.Unmarshal(&conf); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return &conf, nil
}

func setDefaults() {
	viper.SetDefault("api.environment", "development")
	viper.SetDefault("api.port", "8000")
	viper.SetDefault("gin.mode", "debug")
	viper.SetDefault("upstream.backend_url", "http://localhost:8080")
	viper.SetDefault("redis.city_cache_ttl_seconds", 300)
}
