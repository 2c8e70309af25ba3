package config_test

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "memoria", cfg.Sesion.Store)
	assert.Equal(t, "admin_sesion", cfg.Sesion.CookieName)
	assert.Equal(t, 12*time.Hour, cfg.Sesion.TTL)
	assert.Equal(t, 20*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvSobrescribeYRecortaBarra(t *testing.T) {
	t.Setenv("BACKEND_API_URL", "https://api.tienda.pe/api/")
	t.Setenv("SESION_STORE", "redis")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.tienda.pe/api", cfg.Backend.APIURL)
	assert.Equal(t, "redis", cfg.Sesion.Store)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoad_FlagTienePrioridad(t *testing.T) {
	t.Setenv("BACKEND_API_URL", "https://env.tienda.pe/api")
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("backend.api_url", "", "")
	require.NoError(t, fs.Parse([]string{"--backend.api_url=https://flag.tienda.pe/api"}))

	cfg, err := config.Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "https://flag.tienda.pe/api", cfg.Backend.APIURL)
}

func TestLoad_StoreDesconocido(t *testing.T) {
	t.Setenv("SESION_STORE", "archivo")
	_, err := config.Load(nil)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "admin", Password: "p@ss:w", DBName: "x", SSLMode: "disable"}
	assert.Equal(t, "postgres://admin:p%40ss%3Aw@db:5432/x?sslmode=disable", c.DSN())
}
