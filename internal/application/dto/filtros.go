package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Todos es el valor centinela de "sin filtro" en los selectores de la consola.
const Todos = "todos"

// consulta arma query strings enviando solo valores distintos del valor por defecto.
type consulta url.Values

func (q consulta) texto(clave, v string) {
	v = strings.TrimSpace(v)
	if v != "" && v != Todos {
		url.Values(q).Set(clave, v)
	}
}

func (q consulta) entero(clave string, v int) {
	if v > 0 {
		url.Values(q).Set(clave, strconv.Itoa(v))
	}
}

func (q consulta) id(clave string, v *int64) {
	if v != nil && *v > 0 {
		url.Values(q).Set(clave, strconv.FormatInt(*v, 10))
	}
}

func (q consulta) bandera(clave string, v bool) {
	if v {
		url.Values(q).Set(clave, "true")
	}
}

// monto solo envía valores numéricos válidos.
func (q consulta) monto(clave, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	if d, err := decimal.NewFromString(v); err == nil {
		url.Values(q).Set(clave, d.String())
	}
}

// FiltrosCategorias de GET /admin/categorias.
type FiltrosCategorias struct {
	Estado string `query:"estado"`
	Buscar string `query:"buscar"`
}

func (f FiltrosCategorias) Query() url.Values {
	q := consulta{}
	q.texto("estado", f.Estado)
	q.texto("buscar", f.Buscar)
	return url.Values(q)
}

// FiltrosProductos de GET /admin/productos.
type FiltrosProductos struct {
	Estado      string `query:"estado"`
	CategoriaID *int64 `query:"categoria_id"`
	SinStock    bool   `query:"sin_stock"`
	Buscar      string `query:"buscar"`
	PerPage     int    `query:"per_page"`
	Page        int    `query:"page"`
}

func (f FiltrosProductos) Query() url.Values {
	q := consulta{}
	q.texto("estado", f.Estado)
	q.id("categoria_id", f.CategoriaID)
	q.bandera("sin_stock", f.SinStock)
	q.texto("buscar", f.Buscar)
	q.entero("per_page", f.PerPage)
	q.entero("page", f.Page)
	return url.Values(q)
}

// FiltrosEtiquetas de GET /admin/etiquetas. Se reutiliza para blogs.
type FiltrosEtiquetas struct {
	Estado  string `query:"estado"`
	Buscar  string `query:"buscar"`
	PerPage int    `query:"per_page"`
	Page    int    `query:"page"`
}

func (f FiltrosEtiquetas) Query() url.Values {
	q := consulta{}
	q.texto("estado", f.Estado)
	q.texto("buscar", f.Buscar)
	q.entero("per_page", f.PerPage)
	q.entero("page", f.Page)
	return url.Values(q)
}

// FiltrosBlogs de GET /admin/blogs.
type FiltrosBlogs = FiltrosEtiquetas

// FiltrosCarrusel de GET /admin/carrusel.
type FiltrosCarrusel struct {
	Estado      string `query:"estado"`
	ConProducto bool   `query:"con_producto"`
	SinProducto bool   `query:"sin_producto"`
}

func (f FiltrosCarrusel) Query() url.Values {
	q := consulta{}
	q.texto("estado", f.Estado)
	q.bandera("con_producto", f.ConProducto)
	q.bandera("sin_producto", f.SinProducto)
	return url.Values(q)
}

// FiltrosPedidos de GET /admin/pedidos. Los montos se reciben como texto y se validan con decimal.
type FiltrosPedidos struct {
	Estado     string `query:"estado"`
	ClienteID  *int64 `query:"cliente_id"`
	FechaDesde string `query:"fecha_desde"`
	FechaHasta string `query:"fecha_hasta"`
	MontoMin   string `query:"monto_min"`
	MontoMax   string `query:"monto_max"`
	Buscar     string `query:"buscar"`
	Page       int    `query:"page"`
	PerPage    int    `query:"per_page"`
}

func (f FiltrosPedidos) Query() url.Values {
	q := consulta{}
	q.texto("estado", f.Estado)
	q.id("cliente_id", f.ClienteID)
	q.texto("fecha_desde", f.FechaDesde)
	q.texto("fecha_hasta", f.FechaHasta)
	q.monto("monto_min", f.MontoMin)
	q.monto("monto_max", f.MontoMax)
	q.texto("buscar", f.Buscar)
	q.entero("page", f.Page)
	q.entero("per_page", f.PerPage)
	return url.Values(q)
}

// FiltrosReclamaciones de GET /admin/reclamaciones.
type FiltrosReclamaciones struct {
	Estado      string `query:"estado"`
	TipoReclamo string `query:"tipo_reclamo"`
	FechaDesde  string `query:"fecha_desde"`
	FechaHasta  string `query:"fecha_hasta"`
	Buscar      string `query:"buscar"`
	Page        int    `query:"page"`
	PerPage     int    `query:"per_page"`
}

func (f FiltrosReclamaciones) Query() url.Values {
	q := consulta{}
	q.texto("estado", f.Estado)
	q.texto("tipo_reclamo", f.TipoReclamo)
	q.texto("fecha_desde", f.FechaDesde)
	q.texto("fecha_hasta", f.FechaHasta)
	q.texto("buscar", f.Buscar)
	q.entero("page", f.Page)
	q.entero("per_page", f.PerPage)
	return url.Values(q)
}

// FiltrosClientes de GET /admin/clientes.
type FiltrosClientes struct {
	Tipo    string `query:"tipo"`
	UserID  *int64 `query:"user_id"`
	Buscar  string `query:"buscar"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

func (f FiltrosClientes) Query() url.Values {
	q := consulta{}
	q.texto("tipo", f.Tipo)
	q.id("user_id", f.UserID)
	q.texto("buscar", f.Buscar)
	q.entero("page", f.Page)
	q.entero("per_page", f.PerPage)
	return url.Values(q)
}
