package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10, cfg.Inventario.UmbralStockBajo)
	assert.Equal(t, int64(1), cfg.Inventario.DependenciaRecepcion)
	assert.False(t, cfg.Migrations.AutoRun)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, 5, cfg.DB.ConnectRetries)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INVENTARIO_UMBRAL_STOCK_BAJO", "25")
	t.Setenv("MIGRATIONS_AUTO_RUN", "true")
	t.Setenv("HTTP_READ_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.Inventario.UmbralStockBajo)
	assert.True(t, cfg.Migrations.AutoRun)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_PoolInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("DB_MIN_CONNS", "8")

	_, err := Load()
	require.ErrorContains(t, err, "DB_MIN_CONNS")
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "inventario", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/inventario?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
