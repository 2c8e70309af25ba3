package paginacion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-admin/pkg/paginacion"
)

func TestVentana_PocasPaginasSinElipsis(t *testing.T) {
	for ultima := 1; ultima <= 7; ultima++ {
		for actual := 1; actual <= ultima; actual++ {
			v := paginacion.Ventana(actual, ultima)
			assert.Len(t, v, ultima)
			assert.NotContains(t, v, paginacion.Elipsis)
			assert.Equal(t, 1, v[0])
			assert.Equal(t, ultima, v[len(v)-1])
		}
	}
}

func TestVentana_Casos(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, -1, 10}, paginacion.Ventana(1, 10))
	assert.Equal(t, []int{1, 2, 3, 4, 5, -1, 10}, paginacion.Ventana(4, 10))
	assert.Equal(t, []int{1, -1, 6, 7, 8, 9, 10}, paginacion.Ventana(10, 10))
	assert.Equal(t, []int{1, -1, 6, 7, 8, 9, 10}, paginacion.Ventana(7, 10))
	assert.Equal(t, []int{1, -1, 4, 5, 6, -1, 10}, paginacion.Ventana(5, 10))
	assert.Equal(t, []int{1, -1, 5, 6, 7, -1, 10}, paginacion.Ventana(6, 10))
}

func TestVentana_SinPaginas(t *testing.T) {
	assert.Empty(t, paginacion.Ventana(1, 0))
}
