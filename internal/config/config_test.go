package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	yml := `
api:
  environment: "test"
  base_url: "localhost:9999"
  port: "9999"
  jwt_signing_key: "test-key"
  allowed_cors_domains:
    - "http://localhost:3000"

gin:
  mode: "test"

postgres:
  host: "db.internal"
  port: "5432"
  user: "wukong"
  password: "secret"
  db_name: "wukong_admin"
  ssl_mode: "disable"

upstream:
  backend_url: "http://backend.internal:8080"

redis:
  addr: "cache.internal:6379"

minio:
  endpoint: "minio.internal:9000"
  access_key: "key"
  secret_key: "secret"
  bucket: "assets"
  use_ssl: true
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "9999", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "db.internal", conf.Postgres.Host)
	assert.Equal(t, "http://backend.internal:8080", conf.Upstream.BackendURL)
	assert.Equal(t, "cache.internal:6379", conf.Redis.Addr)
	assert.Equal(t, 300, conf.Redis.CityCacheTTLSeconds, "TTL falls back to the default")
	assert.True(t, conf.Minio.UseSSL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
