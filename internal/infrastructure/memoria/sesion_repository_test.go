package memoria_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/memoria"
)

func TestSesionRepository_GuardarObtenerEliminar(t *testing.T) {
	ctx := context.Background()
	repo := memoria.NewSesionRepository()
	s := &entity.Sesion{ID: "s1", Token: "t", Admin: &entity.Admin{ID: 1, Tipo: entity.TipoAdmin}, ExpiraEn: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Guardar(ctx, s))

	// La copia guardada no comparte el admin con el llamador.
	s.Admin.Tipo = "cliente"

	got, err := repo.Obtener(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.TipoAdmin, got.Admin.Tipo)

	require.NoError(t, repo.Eliminar(ctx, "s1"))
	got, err = repo.Obtener(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSesionRepository_Vencida(t *testing.T) {
	ctx := context.Background()
	repo := memoria.NewSesionRepository()
	require.NoError(t, repo.Guardar(ctx, &entity.Sesion{ID: "s2", ExpiraEn: time.Now().Add(-time.Second)}))

	got, err := repo.Obtener(ctx, "s2")
	require.NoError(t, err)
	assert.Nil(t, got)
}
