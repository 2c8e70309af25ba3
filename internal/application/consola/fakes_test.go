package consola_test

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// Los fakes embeben el puerto: un método no sobrescrito entra en pánico si se llama.

func png(nombre string, n int) dto.Archivo {
	datos := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, n)...)
	return dto.Archivo{Nombre: nombre, MIME: "image/png", Datos: datos}
}

func ptr[T any](v T) *T { return &v }

func ok[T any](v T, msg string) dto.Respuesta[T] { return dto.Exito(v, msg) }

func vacio() dto.Respuesta[json.RawMessage] { return dto.Respuesta[json.RawMessage]{Success: true} }

// ── Productos ────────────────────────────────────────────────────────────────

type productosFalsos struct {
	ports.ProductosAPI

	mu          sync.Mutex
	creado      *dto.CrearProductoRequest
	actualizado *dto.ActualizarProductoRequest
	eliminadas  []int64
	agregadas   []dto.AgregarImagenesRequest
	reordenadas map[int64]int
	principal   int64
	llamadas    int

	respActualizar dto.Respuesta[entity.Producto]
	respObtener    dto.Respuesta[entity.Producto]
	respPrincipal  *dto.Respuesta[entity.ProductoImagen]
	falloEliminar  map[int64]bool
	falloAgregar   bool
}

func nuevosProductos() *productosFalsos {
	return &productosFalsos{
		respActualizar: ok(entity.Producto{ID: 1, Nombre: "de la actualización"}, "Producto actualizado"),
		respObtener:    ok(entity.Producto{ID: 1, Nombre: "recargado"}, ""),
		falloEliminar:  map[int64]bool{},
	}
}

func (p *productosFalsos) Crear(_ context.Context, in dto.CrearProductoRequest) dto.Respuesta[entity.Producto] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.llamadas++
	p.creado = &in
	return ok(entity.Producto{ID: 9, Nombre: in.Nombre}, "creado")
}

func (p *productosFalsos) Actualizar(_ context.Context, _ int64, in dto.ActualizarProductoRequest) dto.Respuesta[entity.Producto] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.llamadas++
	p.actualizado = &in
	return p.respActualizar
}

func (p *productosFalsos) Obtener(context.Context, int64) dto.Respuesta[entity.Producto] {
	return p.respObtener
}

func (p *productosFalsos) EliminarImagen(_ context.Context, _, imagenID int64) dto.Respuesta[json.RawMessage] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.eliminadas = append(p.eliminadas, imagenID)
	if p.falloEliminar[imagenID] {
		return dto.Fallo[json.RawMessage]("no existe")
	}
	return vacio()
}

func (p *productosFalsos) AgregarImagenes(_ context.Context, _ int64, in dto.AgregarImagenesRequest) dto.Respuesta[json.RawMessage] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.agregadas = append(p.agregadas, in)
	if p.falloAgregar {
		return dto.Fallo[json.RawMessage]("muy grandes")
	}
	return vacio()
}

func (p *productosFalsos) ReordenarImagenes(_ context.Context, _ int64, ordenes map[int64]int) dto.Respuesta[json.RawMessage] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reordenadas = ordenes
	return vacio()
}

func (p *productosFalsos) CambiarImagenPrincipal(_ context.Context, _, imagenID int64) dto.Respuesta[entity.ProductoImagen] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.llamadas++
	if p.respPrincipal != nil {
		return *p.respPrincipal
	}
	p.principal = imagenID
	return ok(entity.ProductoImagen{ID: imagenID, EsPrincipal: true}, "Imagen principal actualizada")
}

// ── Catálogo ─────────────────────────────────────────────────────────────────

type categoriasFalsas struct {
	ports.CategoriasAPI
	ultimo   *dto.CategoriaRequest
	llamadas int
	resp     dto.Respuesta[entity.Categoria]
}

func (c *categoriasFalsas) Crear(_ context.Context, in dto.CategoriaRequest) dto.Respuesta[entity.Categoria] {
	c.llamadas++
	c.ultimo = &in
	return c.resp
}

func (c *categoriasFalsas) Actualizar(_ context.Context, _ int64, in dto.CategoriaRequest) dto.Respuesta[entity.Categoria] {
	c.llamadas++
	c.ultimo = &in
	return c.resp
}

func (c *categoriasFalsas) Activar(_ context.Context, id int64) dto.Respuesta[entity.Categoria] {
	c.llamadas++
	return ok(entity.Categoria{ID: id, Estado: entity.EstadoActivo}, "")
}

func (c *categoriasFalsas) Desactivar(_ context.Context, id int64) dto.Respuesta[entity.Categoria] {
	c.llamadas++
	return ok(entity.Categoria{ID: id, Estado: entity.EstadoInactivo}, "")
}

type etiquetasFalsas struct {
	ports.EtiquetasAPI
	ultimo   *dto.EtiquetaRequest
	llamadas int
}

func (e *etiquetasFalsas) Crear(_ context.Context, in dto.EtiquetaRequest) dto.Respuesta[entity.Etiqueta] {
	e.llamadas++
	e.ultimo = &in
	return ok(entity.Etiqueta{ID: 3, Nombre: in.Nombre, Slug: in.Slug}, "")
}

func (e *etiquetasFalsas) Actualizar(_ context.Context, id int64, in dto.EtiquetaRequest) dto.Respuesta[entity.Etiqueta] {
	e.llamadas++
	e.ultimo = &in
	return ok(entity.Etiqueta{ID: id, Nombre: in.Nombre, Slug: in.Slug}, "")
}

func (e *etiquetasFalsas) Toggle(_ context.Context, id int64) dto.Respuesta[dto.CambioToggle] {
	e.llamadas++
	return ok(dto.CambioToggle{ID: id, NuevoEstado: entity.EstadoInactivo}, "")
}

func (e *etiquetasFalsas) Eliminar(context.Context, int64) dto.Respuesta[json.RawMessage] {
	e.llamadas++
	return vacio()
}

type blogsFalsos struct {
	ports.BlogsAPI
	ultimo   *dto.BlogRequest
	llamadas int
}

func (b *blogsFalsos) Crear(_ context.Context, in dto.BlogRequest) dto.Respuesta[entity.Blog] {
	b.llamadas++
	b.ultimo = &in
	return ok(entity.Blog{ID: 5, Titulo: in.Titulo}, "")
}

func (b *blogsFalsos) Actualizar(_ context.Context, id int64, in dto.BlogRequest) dto.Respuesta[entity.Blog] {
	b.llamadas++
	b.ultimo = &in
	return ok(entity.Blog{ID: id, Titulo: in.Titulo}, "")
}

// ── Promociones ──────────────────────────────────────────────────────────────

type carruselFalso struct {
	ports.CarruselAPI
	ultimo     *dto.CarruselRequest
	ordenes    []entity.OrdenItem
	llamadas   int
	falloOrden bool
}

func (c *carruselFalso) Crear(_ context.Context, in dto.CarruselRequest) dto.Respuesta[entity.ItemCarrusel] {
	c.llamadas++
	c.ultimo = &in
	return ok(entity.ItemCarrusel{ID: 1}, "")
}

func (c *carruselFalso) Actualizar(_ context.Context, id int64, in dto.CarruselRequest) dto.Respuesta[entity.ItemCarrusel] {
	c.llamadas++
	c.ultimo = &in
	return ok(entity.ItemCarrusel{ID: id}, "")
}

func (c *carruselFalso) CambiarEstado(_ context.Context, id int64) dto.Respuesta[entity.ItemCarrusel] {
	c.llamadas++
	return ok(entity.ItemCarrusel{ID: id, Estado: entity.EstadoInactivo}, "")
}

func (c *carruselFalso) Reordenar(_ context.Context, items []entity.OrdenItem) dto.Respuesta[json.RawMessage] {
	c.llamadas++
	c.ordenes = items
	if c.falloOrden {
		return dto.Fallo[json.RawMessage]("")
	}
	return vacio()
}

type cyberwowFalso struct {
	ports.CyberWowAPI
	ultimo   *dto.BannerCyberWowRequest
	llamadas int
}

func (c *cyberwowFalso) Crear(_ context.Context, in dto.BannerCyberWowRequest) dto.Respuesta[entity.BannerCyberWow] {
	c.llamadas++
	c.ultimo = &in
	return ok(entity.BannerCyberWow{ID: 2, Titulo: in.Titulo, Tipo: in.Tipo}, "")
}

func (c *cyberwowFalso) Actualizar(_ context.Context, id int64, in dto.BannerCyberWowRequest) dto.Respuesta[entity.BannerCyberWow] {
	c.llamadas++
	c.ultimo = &in
	return ok(entity.BannerCyberWow{ID: id, Titulo: in.Titulo}, "")
}

type liquidacionFalsa struct {
	ports.LiquidacionAPI
	ultimo    *dto.LiquidacionRequest
	siguiente dto.Respuesta[dto.SiguienteOrden]
	llamadas  int
}

func (l *liquidacionFalsa) SiguienteOrden(context.Context) dto.Respuesta[dto.SiguienteOrden] {
	return l.siguiente
}

func (l *liquidacionFalsa) Crear(_ context.Context, in dto.LiquidacionRequest) dto.Respuesta[entity.Liquidacion] {
	l.llamadas++
	l.ultimo = &in
	return ok(entity.Liquidacion{ID: 4, ProductoID: in.ProductoID, Orden: in.Orden}, "")
}

func (l *liquidacionFalsa) Actualizar(_ context.Context, id int64, in dto.LiquidacionRequest) dto.Respuesta[entity.Liquidacion] {
	l.llamadas++
	l.ultimo = &in
	return ok(entity.Liquidacion{ID: id, ProductoID: in.ProductoID, Orden: in.Orden}, "")
}

// ── Ventas ───────────────────────────────────────────────────────────────────

type pedidosFalsos struct {
	ports.PedidosAPI
	destino entity.EstadoPedido
}

func (p *pedidosFalsos) CambiarEstado(_ context.Context, id int64, e entity.EstadoPedido) dto.Respuesta[entity.CambioEstadoPedido] {
	p.destino = e
	return ok(entity.CambioEstadoPedido{ID: id, EstadoActual: string(e)}, "")
}

type reclamacionesFalsas struct {
	ports.ReclamacionesAPI
	pagina dto.Respuesta[dto.PaginaReclamaciones]
}

func (r *reclamacionesFalsas) Listar(context.Context, dto.FiltrosReclamaciones) dto.Respuesta[dto.PaginaReclamaciones] {
	return r.pagina
}
