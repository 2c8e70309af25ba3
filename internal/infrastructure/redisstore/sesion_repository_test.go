package redisstore_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/redisstore"
)

// redisFalso guarda en un mapa y registra el TTL de cada Set.
type redisFalso struct {
	datos map[string][]byte
	ttl   map[string]time.Duration
	err   error
}

func nuevoRedis() *redisFalso {
	return &redisFalso{datos: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (r *redisFalso) Get(_ context.Context, key string) *redis.StringCmd {
	if r.err != nil {
		return redis.NewStringResult("", r.err)
	}
	b, ok := r.datos[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(b), nil)
}

func (r *redisFalso) Set(_ context.Context, key string, value any, exp time.Duration) *redis.StatusCmd {
	r.datos[key] = value.([]byte)
	r.ttl[key] = exp
	return redis.NewStatusResult("OK", nil)
}

func (r *redisFalso) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(r.datos, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func sesion(expira time.Time) *entity.Sesion {
	return &entity.Sesion{ID: "s1", Token: "tok", Admin: &entity.Admin{ID: 1, Tipo: "admin"}, ExpiraEn: expira}
}

func TestSesionRepo_IdaYVueltaConTTL(t *testing.T) {
	rdb := nuevoRedis()
	repo := redisstore.NewSesionRepository(rdb, 8*time.Hour)
	require.NoError(t, repo.Guardar(context.Background(), sesion(time.Now().Add(time.Hour))))

	ttl := rdb.ttl["tienda-admin:sesion:s1"]
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	s, err := repo.Obtener(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "tok", s.Token)
	assert.True(t, s.Admin.EsAdmin())

	require.NoError(t, repo.Eliminar(context.Background(), "s1"))
	s, err = repo.Obtener(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSesionRepo_SinExpiracionUsaTTLPorDefecto(t *testing.T) {
	rdb := nuevoRedis()
	repo := redisstore.NewSesionRepository(rdb, 8*time.Hour)
	require.NoError(t, repo.Guardar(context.Background(), sesion(time.Time{})))
	assert.Equal(t, 8*time.Hour, rdb.ttl["tienda-admin:sesion:s1"])
}

func TestSesionRepo_YaExpiradaNoSeGuarda(t *testing.T) {
	rdb := nuevoRedis()
	err := redisstore.NewSesionRepository(rdb, time.Hour).Guardar(context.Background(), sesion(time.Now().Add(-time.Minute)))
	require.Error(t, err)
	assert.Empty(t, rdb.datos)
}

func TestSesionRepo_VencidaEnLecturaEsNil(t *testing.T) {
	rdb := nuevoRedis()
	b, _ := json.Marshal(sesion(time.Now().Add(-time.Second)))
	rdb.datos["tienda-admin:sesion:s1"] = b

	s, err := redisstore.NewSesionRepository(rdb, time.Hour).Obtener(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSesionRepo_ErrorDeRedis(t *testing.T) {
	rdb := nuevoRedis()
	rdb.err = errors.New("connection refused")
	_, err := redisstore.NewSesionRepository(rdb, time.Hour).Obtener(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "obtener sesión")
}
