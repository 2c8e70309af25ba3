package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
)

func TestErrores_AceptaListaYTexto(t *testing.T) {
	var r dto.Respuesta[any]
	body := `{"success":false,"message":"Datos inválidos","errors":{"nombre":["El nombre es requerido"],"imagen":"Formato no soportado"}}`
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.False(t, r.Success)
	assert.Equal(t, []string{"imagen", "nombre"}, r.Errors.Campos())
	assert.Equal(t, "Formato no soportado", r.Errors.Primeros()["imagen"])
	assert.Equal(t, "El nombre es requerido", r.Errors.Primeros()["nombre"])
}

func TestErrores_FormaDesconocidaSeIgnora(t *testing.T) {
	var r dto.Respuesta[any]
	require.NoError(t, json.Unmarshal([]byte(`{"success":false,"errors":"algo salió mal"}`), &r))
	assert.Empty(t, r.Errors)
}

func TestFallo_MensajePorDefecto(t *testing.T) {
	r := dto.Fallo[int]("")
	assert.False(t, r.Success)
	assert.Equal(t, dto.MensajeErrorConexion, r.Message)
}

func TestPaginaUnica(t *testing.T) {
	p := dto.PaginaUnica([]string{"a", "b"})
	assert.Equal(t, 1, p.Paginacion.LastPage)
	assert.Equal(t, 2, p.Paginacion.Total)

	vacia := dto.PaginaUnica[string](nil)
	assert.NotNil(t, vacia.Items)
}
