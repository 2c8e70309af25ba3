package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
)

func TestFiltros_TodosSeOmite(t *testing.T) {
	q := dto.FiltrosCategorias{Estado: dto.Todos, Buscar: "  "}.Query()
	assert.Empty(t, q)
}

func TestFiltrosProductos_SoloValoresDefinidos(t *testing.T) {
	cat := int64(4)
	q := dto.FiltrosProductos{Estado: "activo", CategoriaID: &cat, SinStock: true, Page: 2}.Query()

	assert.Equal(t, "activo", q.Get("estado"))
	assert.Equal(t, "4", q.Get("categoria_id"))
	assert.Equal(t, "true", q.Get("sin_stock"))
	assert.Equal(t, "2", q.Get("page"))
	assert.False(t, q.Has("per_page"))
	assert.False(t, q.Has("buscar"))
}

func TestFiltrosPedidos_BuscarRecortadoYMontoInvalidoDescartado(t *testing.T) {
	q := dto.FiltrosPedidos{Buscar: "  juan ", MontoMin: "10.50", MontoMax: "abc"}.Query()

	assert.Equal(t, "juan", q.Get("buscar"))
	assert.Equal(t, "10.5", q.Get("monto_min"))
	assert.False(t, q.Has("monto_max"))
}

func TestFiltrosReclamaciones_TipoTodosSeOmite(t *testing.T) {
	q := dto.FiltrosReclamaciones{TipoReclamo: dto.Todos, Estado: "pendiente"}.Query()
	assert.False(t, q.Has("tipo_reclamo"))
	assert.Equal(t, "pendiente", q.Get("estado"))
}
