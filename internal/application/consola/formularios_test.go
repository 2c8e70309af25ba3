package consola_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/application/consola"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// ── Categorías ──────────────────────────────────────────────────────────────

func categorias() []entity.Categoria {
	return []entity.Categoria{
		{ID: 1, Nombre: "Suplementos"},
		{ID: 2, Nombre: "Vitaminas", ParentID: ptr[int64](1)},
		{ID: 3, Nombre: "Cuidado personal"},
	}
}

func TestFormularioCategoria_OpcionesPadre(t *testing.T) {
	f := consola.NewFormularioCategoria(&categoriasFalsas{}, &categorias()[0], categorias())
	padres := f.Padres()
	require.Len(t, padres, 1)
	assert.Equal(t, int64(3), padres[0].ID)
}

func TestFormularioCategoria_AcumulaErrores(t *testing.T) {
	api := &categoriasFalsas{}
	c := categorias()[0]
	f := consola.NewFormularioCategoria(api, &c, categorias())
	f.Nombre = strings.Repeat("a", 151)
	f.ParentID = ptr[int64](1)

	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, "El nombre no puede exceder 150 caracteres", f.Errores()["nombre"])
	assert.Equal(t, "Una categoría no puede ser su propia categoría padre", f.Errores()["parent_id"])
	assert.Zero(t, api.llamadas)
}

func TestFormularioCategoria_PadreIlegibleSeSumaALosErrores(t *testing.T) {
	api := &categoriasFalsas{}
	f := consola.NewFormularioCategoria(api, nil, categorias())
	f.EntradaInvalida("parent_id", "La selección no es válida")

	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, "El nombre es requerido", f.Errores()["nombre"])
	assert.Equal(t, "La selección no es válida", f.Errores()["parent_id"])
	assert.Zero(t, api.llamadas)
}

func TestFormularioCategoria_SubcategoriaNoPuedeSerPadre(t *testing.T) {
	f := consola.NewFormularioCategoria(&categoriasFalsas{}, nil, categorias())
	f.Nombre = "Magnesio"
	f.ParentID = ptr[int64](2)
	assert.Equal(t, "Una subcategoría no puede tener subcategorías", f.Validar()["parent_id"])
}

func TestFormularioCategoria_EdicionQuitaImagen(t *testing.T) {
	api := &categoriasFalsas{resp: ok(entity.Categoria{ID: 3}, "")}
	c := entity.Categoria{ID: 3, Nombre: "Cuidado", Estado: entity.EstadoActivo, ImagenURL: "https://cdn/c.png"}
	f := consola.NewFormularioCategoria(api, &c, categorias())
	f.Imagen.Quitar()

	res, err := f.Guardar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Categoría actualizada exitosamente", res.Aviso.Mensaje)
	require.NotNil(t, api.ultimo)
	assert.True(t, api.ultimo.EliminarImagen)
	assert.Nil(t, api.ultimo.Imagen)
}

func TestFormularioCategoria_ImagenRechazadaQuedaEnCampo(t *testing.T) {
	f := consola.NewFormularioCategoria(&categoriasFalsas{}, nil, nil)
	err := f.SeleccionarImagen(png("grande.png", 3<<20))
	require.Error(t, err)
	assert.Equal(t, "La imagen no debe superar los 2MB", f.Errores()["imagen"])

	require.NoError(t, f.SeleccionarImagen(png("chica.png", 10)))
	assert.NotContains(t, f.Errores(), "imagen")
}

// ── Etiquetas ───────────────────────────────────────────────────────────────

func TestFormularioEtiqueta_SlugAutomaticoHastaEditarlo(t *testing.T) {
	f := consola.NewFormularioEtiqueta(&etiquetasFalsas{}, nil)
	f.CambiarNombre("Sin Azúcar")
	assert.Equal(t, "sin-azucar", f.Slug)

	f.CambiarSlug("sin-azucar-2024")
	f.CambiarNombre("Sin Azúcar Añadida")
	assert.Equal(t, "sin-azucar-2024", f.Slug)
}

func TestFormularioEtiqueta_ImagenObligatoriaAlCrear(t *testing.T) {
	api := &etiquetasFalsas{}
	f := consola.NewFormularioEtiqueta(api, nil)
	f.CambiarNombre("Vegano")

	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, map[string]string{"imagen": "La imagen es requerida"}, f.Errores())
	assert.Zero(t, api.llamadas)

	require.NoError(t, f.SeleccionarImagen(png("v.png", 4)))
	res, err := f.Guardar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Etiqueta creada exitosamente", res.Aviso.Mensaje)
	assert.Equal(t, "vegano", api.ultimo.Slug)
}

func TestFormularioEtiqueta_NombreCortaPrimero(t *testing.T) {
	f := consola.NewFormularioEtiqueta(&etiquetasFalsas{}, nil)
	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, map[string]string{"nombre": "El nombre es requerido"}, f.Errores())
}

// ── Blog ────────────────────────────────────────────────────────────────────

func TestFormularioBlog_JSONLegibleEnEdicion(t *testing.T) {
	b := &entity.Blog{ID: 1, Titulo: "T", Slug: "t", ContenidoFlexible: json.RawMessage(`{"a":[1,2]}`)}
	f := consola.NewFormularioBlog(&blogsFalsos{}, b)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    2\n  ]\n}", f.ContenidoFlexible)
	assert.Equal(t, "", consola.JSONLegible(json.RawMessage("null")))
}

func TestFormularioBlog_JSONMalformadoSeRechaza(t *testing.T) {
	api := &blogsFalsos{}
	f := consola.NewFormularioBlog(api, &entity.Blog{ID: 1, Titulo: "T", Slug: "t"})
	f.ContenidoFlexible = `{"a": }`

	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, consola.MensajeJSONInvalido, f.Errores()["contenido_flexible"])
	assert.Zero(t, api.llamadas)
}

func TestFormularioBlog_OrdenDeValidacion(t *testing.T) {
	f := consola.NewFormularioBlog(&blogsFalsos{}, nil)
	f.ContenidoFlexible = "no es json"

	_, _ = f.Guardar(context.Background())
	assert.Contains(t, f.Errores(), "titulo")

	f.CambiarTitulo("Guía de Vitaminas")
	_, _ = f.Guardar(context.Background())
	assert.Contains(t, f.Errores(), "contenido_flexible")

	f.ContenidoFlexible = ""
	_, _ = f.Guardar(context.Background())
	assert.Equal(t, map[string]string{"portada": "La imagen de portada es requerida"}, f.Errores())
}

func TestFormularioBlog_EnviaJSONCompacto(t *testing.T) {
	api := &blogsFalsos{}
	f := consola.NewFormularioBlog(api, nil)
	f.CambiarTitulo("Guía")
	f.ContenidoFlexible = "{\n  \"bloques\": [ ]\n}"
	require.NoError(t, f.SeleccionarPortada(png("p.png", 4)))

	res, err := f.Guardar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Blog creado exitosamente", res.Aviso.Mensaje)
	assert.JSONEq(t, `{"bloques":[]}`, string(api.ultimo.ContenidoFlexible))
	assert.Equal(t, "guia", api.ultimo.Slug)
}

// ── Carrusel ────────────────────────────────────────────────────────────────

func TestFormularioCarrusel_OrdenNegativo(t *testing.T) {
	api := &carruselFalso{}
	f := consola.NewFormularioCarrusel(api, &entity.ItemCarrusel{ID: 1, Orden: 2, ImagenURL: "u"})
	f.Orden = ptr(-1)

	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, "El orden debe ser mayor o igual a 0", f.Errores()["orden"])
	assert.Zero(t, api.llamadas)
}

func TestFormularioCarrusel_EdicionBanderasPorImagen(t *testing.T) {
	api := &carruselFalso{}
	f := consola.NewFormularioCarrusel(api, &entity.ItemCarrusel{ID: 1, ImagenURL: "d", ImagenMobileURL: "m", ProductoID: ptr[int64](4)})
	f.ImagenMobile.Quitar()
	f.ProductoID = nil

	res, err := f.Guardar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Imagen actualizada exitosamente", res.Aviso.Mensaje)
	assert.False(t, api.ultimo.EliminarImagen)
	assert.True(t, api.ultimo.EliminarImagenMobile)
	assert.Nil(t, api.ultimo.ProductoID)
}

func TestFormularioCarrusel_OrdenIlegibleNoLlegaAlBackend(t *testing.T) {
	api := &carruselFalso{}
	f := consola.NewFormularioCarrusel(api, &entity.ItemCarrusel{ID: 1, Orden: 2, ImagenURL: "u"})
	f.EntradaInvalida("orden", "El orden debe ser un número entero")

	res, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, map[string]string{"orden": "El orden debe ser un número entero"}, res.Aviso.Campos)
	assert.Zero(t, api.llamadas)
}

func TestFormularioCarrusel_ImagenRequeridaAlCrear(t *testing.T) {
	f := consola.NewFormularioCarrusel(&carruselFalso{}, nil)
	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, "La imagen es requerida", f.Errores()["imagen"])
}

// ── CyberWow ────────────────────────────────────────────────────────────────

func TestFormularioCyberWow_CupoOcupado(t *testing.T) {
	aux := &entity.DatosAuxiliaresCyberWow{EspaciosDisponibles: entity.EspaciosCyberWow{Categoria: false, Tiendas: true, Productos: 0}}

	_, aviso, err := consola.NewFormularioCyberWow(&cyberwowFalso{}, aux, entity.BannerCategoria)
	require.ErrorIs(t, err, domain.ErrLimiteAlcanzado)
	assert.Equal(t, "Ya existe un banner de categoría activo. Desactívalo primero.", aviso.Mensaje)

	_, aviso, err = consola.NewFormularioCyberWow(&cyberwowFalso{}, aux, entity.BannerProducto)
	require.ErrorIs(t, err, domain.ErrLimiteAlcanzado)
	assert.Equal(t, "Ya existen 4 banners de productos activos. Desactiva uno primero.", aviso.Mensaje)

	_, aviso, err = consola.NewFormularioCyberWow(&cyberwowFalso{}, nil, entity.BannerTiendas)
	require.Error(t, err)
	assert.Equal(t, "Cargando datos...", aviso.Mensaje)
}

func TestFormularioCyberWow_TiendasRequeridas(t *testing.T) {
	api := &cyberwowFalso{}
	aux := &entity.DatosAuxiliaresCyberWow{EspaciosDisponibles: entity.EspaciosCyberWow{Tiendas: true}}
	f, _, err := consola.NewFormularioCyberWow(api, aux, entity.BannerTiendas)
	require.NoError(t, err)
	f.TituloBanner = "Tiendas aliadas"
	require.NoError(t, f.Imagen.Seleccionar(png("t.png", 4)))

	_, err = f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, "Debes seleccionar al menos una tienda", f.Errores()["tiendas"])

	f.Tiendas = []int64{1, 2}
	res, err := f.Guardar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Banner creado exitosamente", res.Aviso.Mensaje)
	assert.Equal(t, entity.BannerTiendas, api.ultimo.Tipo)
	assert.Equal(t, []int64{1, 2}, api.ultimo.Tiendas)
}

func TestEditarCyberWow_DeduceTipo(t *testing.T) {
	b := &entity.BannerCyberWow{ID: 8, Titulo: "P", ProductoID: ptr[int64](3)}
	f := consola.EditarCyberWow(&cyberwowFalso{}, b)
	assert.Equal(t, entity.BannerProducto, f.Tipo())
	assert.Equal(t, "Actualizar Banner", f.TextoBoton())

	b = &entity.BannerCyberWow{ID: 9, Tiendas: []entity.Referencia{{ID: 1}, {ID: 4}}}
	f = consola.EditarCyberWow(&cyberwowFalso{}, b)
	assert.Equal(t, entity.BannerTiendas, f.Tipo())
	assert.Equal(t, []int64{1, 4}, f.Tiendas)
}

// ── Liquidación ─────────────────────────────────────────────────────────────

func TestFormularioLiquidacion_SugiereSiguienteOrden(t *testing.T) {
	api := &liquidacionFalsa{siguiente: ok(dto.SiguienteOrden{Orden: 3}, "")}
	f, _, err := consola.NewFormularioLiquidacion(context.Background(), api, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Orden)
}

func TestFormularioLiquidacion_Limite(t *testing.T) {
	_, aviso, err := consola.NewFormularioLiquidacion(context.Background(), &liquidacionFalsa{}, entity.MaxLiquidaciones)
	require.ErrorIs(t, err, domain.ErrLimiteAlcanzado)
	assert.Equal(t, "Solo se permiten máximo 6 liquidaciones", aviso.Mensaje)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, consola.OpcionesOrden())
}

func TestFormularioLiquidacion_ValidaYExcluyeProductos(t *testing.T) {
	api := &liquidacionFalsa{siguiente: dto.Fallo[dto.SiguienteOrden]("x")}
	f, _, err := consola.NewFormularioLiquidacion(context.Background(), api, 1)
	require.NoError(t, err)

	_, err = f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrValidacion)
	assert.Equal(t, map[string]string{"producto_id": "Debes seleccionar un producto"}, f.Errores())

	f.ProductoID = 5
	_, _ = f.Guardar(context.Background())
	assert.Equal(t, map[string]string{"orden": "Debes seleccionar un orden"}, f.Errores())

	productos := []entity.ProductoResumen{{ID: 5}, {ID: 6}}
	elegibles := f.ProductosElegibles(productos, []entity.Liquidacion{{ProductoID: 5}})
	require.Len(t, elegibles, 1)
	assert.Equal(t, int64(6), elegibles[0].ID)
	assert.Len(t, productos, 2)
}

func TestEditarLiquidacion_EliminaImagen(t *testing.T) {
	api := &liquidacionFalsa{}
	f := consola.EditarLiquidacion(api, &entity.Liquidacion{ID: 2, ProductoID: 5, Orden: 1, ImagenURL: "u"})
	f.Imagen.Quitar()

	res, err := f.Guardar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Liquidación actualizada exitosamente", res.Aviso.Mensaje)
	assert.True(t, api.ultimo.EliminarImagen)
}

// ── Envío compartido ────────────────────────────────────────────────────────

func TestFormulario_CerradoNoEnvia(t *testing.T) {
	api := &etiquetasFalsas{}
	f := consola.NewFormularioEtiqueta(api, &entity.Etiqueta{ID: 1, Nombre: "Nuevo", Slug: "nuevo"})
	f.Cerrar()

	_, err := f.Guardar(context.Background())
	require.ErrorIs(t, err, domain.ErrEnvioCancelado)
	assert.Zero(t, api.llamadas)
}
