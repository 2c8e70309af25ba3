package consola

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// DatosProducto son los campos editables de un producto.
type DatosProducto struct {
	Nombre      string          `json:"nombre"`
	SKU         string          `json:"sku"`
	Descripcion string          `json:"descripcion"`
	CategoriaID *int64          `json:"categoria_id"`
	TiendaID    *int64          `json:"tienda_id"`
	Precio      decimal.Decimal `json:"precio"`
	Descuento   decimal.Decimal `json:"descuento"`
	Stock       int             `json:"stock"`
	Estado      entity.Estado   `json:"estado"`
	Beneficios  string          `json:"beneficios"`
	ModoUso     string          `json:"modo_uso"`
	Detalle     string          `json:"detalle"`
}

// ImagenNueva es una imagen aún no subida, con su vista previa.
type ImagenNueva struct {
	Nombre    string `json:"nombre"`
	Vista     string `json:"vista"`
	Principal bool   `json:"principal"`
}

// PrincipalActual es la imagen principal que verá la tienda: una existente o una nueva.
// Ambos vacíos significa que el producto quedará sin imágenes.
type PrincipalActual struct {
	ExistenteID int64 `json:"existente_id,omitempty"`
	Nueva       *int  `json:"nueva,omitempty"`
}

// ImagenExistente es una imagen ya guardada y si está marcada para borrarse.
type ImagenExistente struct {
	entity.ProductoImagen
	MarcadaEliminar bool `json:"marcada_eliminar"`
}

// FormularioProducto es el modal de alta y edición de productos con su galería.
type FormularioProducto struct {
	api      ports.ProductosAPI
	original *entity.Producto

	Datos DatosProducto

	existentes []entity.ProductoImagen
	aEliminar  []int64
	nuevas     []dto.Archivo
	vistas     []string
	principal  int

	base
}

// NewFormularioProducto abre el formulario; p nil es alta.
func NewFormularioProducto(api ports.ProductosAPI, p *entity.Producto) *FormularioProducto {
	f := &FormularioProducto{api: api, Datos: DatosProducto{Estado: entity.EstadoActivo}, base: nuevaBase()}
	if p == nil {
		return f
	}
	f.original = p
	f.Datos = DatosProducto{
		Nombre:      p.Nombre,
		SKU:         p.SKU,
		Descripcion: p.Descripcion,
		CategoriaID: p.CategoriaID,
		TiendaID:    p.TiendaID,
		Precio:      p.Precio,
		Descuento:   p.Descuento,
		Stock:       p.Stock,
		Estado:      p.Estado,
		Beneficios:  p.Beneficios,
		ModoUso:     p.ModoUso,
		Detalle:     p.Detalle,
	}
	if f.Datos.Estado == "" {
		f.Datos.Estado = entity.EstadoActivo
	}
	f.existentes = slices.Clone(p.Imagenes)
	return f
}

func (f *FormularioProducto) Edicion() bool { return f.original != nil }

func (f *FormularioProducto) Titulo() string {
	if f.Edicion() {
		return "Editar Producto"
	}
	return "Nuevo Producto"
}

func (f *FormularioProducto) TextoBoton() string {
	return textoBoton(f.Edicion(), &f.envio, "Crear Producto", "Actualizar Producto")
}

// ── Galería ──────────────────────────────────────────────────────────────────

func (f *FormularioProducto) existentesActivas() int {
	n := 0
	for _, img := range f.existentes {
		if !slices.Contains(f.aEliminar, img.ID) {
			n++
		}
	}
	return n
}

// TotalActivas cuenta las existentes no marcadas más las nuevas.
func (f *FormularioProducto) TotalActivas() int { return f.existentesActivas() + len(f.nuevas) }

// AgregarImagenes valida todos los archivos y los agrega solo si todos pasan. El total de imágenes
// activas no puede superar entity.MaxImagenesProducto.
func (f *FormularioProducto) AgregarImagenes(archivos ...dto.Archivo) error {
	if len(archivos) == 0 {
		return nil
	}
	if f.TotalActivas()+len(archivos) > entity.MaxImagenesProducto {
		return &ErrorImagen{
			Mensaje: fmt.Sprintf("No puedes tener más de %d imágenes por producto", entity.MaxImagenesProducto),
			causa:   domain.ErrLimiteAlcanzado,
		}
	}
	for _, a := range archivos {
		if err := ReglasProducto.Validar(a); err != nil {
			return err
		}
	}
	for _, a := range archivos {
		f.nuevas = append(f.nuevas, a)
		f.vistas = append(f.vistas, VistaPrevia(a))
	}
	return nil
}

// QuitarNueva descarta la imagen nueva i. La principal se corre si estaba después y vuelve a 0
// si era la quitada.
func (f *FormularioProducto) QuitarNueva(i int) {
	if i < 0 || i >= len(f.nuevas) {
		return
	}
	f.nuevas = slices.Delete(f.nuevas, i, i+1)
	f.vistas = slices.Delete(f.vistas, i, i+1)
	switch {
	case f.principal > i:
		f.principal--
	case f.principal == i:
		f.principal = 0
	}
}

// ElegirPrincipal marca como principal la imagen nueva i.
func (f *FormularioProducto) ElegirPrincipal(i int) {
	if i >= 0 && i < len(f.nuevas) {
		f.principal = i
	}
}

func (f *FormularioProducto) Principal() int { return f.principal }

// principalExistente es la existente activa marcada como principal o, si ninguna lo está, la
// primera activa. Mientras quede una existente activa el backend conserva su principal.
func (f *FormularioProducto) principalExistente() (int64, bool) {
	var primera int64
	for _, img := range f.existentes {
		if slices.Contains(f.aEliminar, img.ID) {
			continue
		}
		if img.EsPrincipal {
			return img.ID, true
		}
		if primera == 0 {
			primera = img.ID
		}
	}
	return primera, primera != 0
}

// PrincipalActual resuelve la principal: gana la existente activa; la nueva elegida solo cuenta
// cuando no queda ninguna existente.
func (f *FormularioProducto) PrincipalActual() PrincipalActual {
	if id, ok := f.principalExistente(); ok {
		return PrincipalActual{ExistenteID: id}
	}
	if len(f.nuevas) > 0 {
		i := f.principal
		return PrincipalActual{Nueva: &i}
	}
	return PrincipalActual{}
}

// EstablecerPrincipalExistente marca en el backend la imagen guardada imagenID como principal y
// refleja el cambio en la galería. Una imagen marcada para eliminar no puede ser principal.
func (f *FormularioProducto) EstablecerPrincipalExistente(ctx context.Context, imagenID int64) (Aviso, error) {
	if !f.Edicion() || !slices.ContainsFunc(f.existentes, func(img entity.ProductoImagen) bool { return img.ID == imagenID }) {
		return Error("Imagen no encontrada"), domain.ErrNoEncontrado
	}
	if slices.Contains(f.aEliminar, imagenID) {
		return Error("La imagen está marcada para eliminar"), domain.ErrValidacion
	}
	r := f.api.CambiarImagenPrincipal(ctx, f.original.ID, imagenID)
	if !r.Success {
		return AvisoDe(r, "", "Error al cambiar la imagen principal"), nil
	}
	for k := range f.existentes {
		f.existentes[k].EsPrincipal = f.existentes[k].ID == imagenID
	}
	return Exito("Imagen principal actualizada"), nil
}

func (f *FormularioProducto) MarcarEliminar(id int64) {
	if !slices.Contains(f.aEliminar, id) {
		f.aEliminar = append(f.aEliminar, id)
	}
}

func (f *FormularioProducto) DesmarcarEliminar(id int64) {
	if i := slices.Index(f.aEliminar, id); i >= 0 {
		f.aEliminar = slices.Delete(f.aEliminar, i, i+1)
	}
}

// Nuevas lista las imágenes por subir; ninguna es principal si queda una existente activa.
func (f *FormularioProducto) Nuevas() []ImagenNueva {
	_, conExistente := f.principalExistente()
	out := make([]ImagenNueva, len(f.nuevas))
	for i, a := range f.nuevas {
		out[i] = ImagenNueva{Nombre: a.Nombre, Vista: f.vistas[i], Principal: !conExistente && i == f.principal}
	}
	return out
}

func (f *FormularioProducto) Existentes() []ImagenExistente {
	out := make([]ImagenExistente, len(f.existentes))
	for i, img := range f.existentes {
		out[i] = ImagenExistente{ProductoImagen: img, MarcadaEliminar: slices.Contains(f.aEliminar, img.ID)}
	}
	return out
}

// ── Validación y guardado ────────────────────────────────────────────────────

// Validar acumula todos los errores de campo.
func (f *FormularioProducto) Validar() map[string]string {
	e := map[string]string{}
	if strings.TrimSpace(f.Datos.Nombre) == "" {
		e["nombre"] = "El nombre es requerido"
	}
	if strings.TrimSpace(f.Datos.Descripcion) == "" {
		e["descripcion"] = "La descripción es requerida"
	}
	if f.Datos.Precio.IsNegative() {
		e["precio"] = "El precio no puede ser negativo"
	}
	if f.Datos.Stock < 0 {
		e["stock"] = "El stock no puede ser negativo"
	}
	if f.Datos.Descuento.IsNegative() || f.Datos.Descuento.GreaterThan(cien) {
		e["descuento"] = "El descuento debe estar entre 0 y 100"
	}
	return f.conEntrada(e)
}

// Guardar valida y envía. En edición actualiza los datos y después procesa la galería en lote;
// el producto devuelto es el recargado del backend o, si falla la recarga, el de la actualización.
func (f *FormularioProducto) Guardar(ctx context.Context) (Resultado[entity.Producto], error) {
	if e := f.Validar(); len(e) > 0 {
		return rechazarCampos[entity.Producto](&f.base, e)
	}
	if !f.Edicion() {
		return guardar(ctx, &f.base, f.crear, "Producto creado correctamente", "Error al crear producto")
	}

	var lote ResumenLote
	res, err := guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Producto] {
		var r dto.Respuesta[entity.Producto]
		r, lote = f.actualizar(ctx)
		return r
	}, "Producto actualizado correctamente", "Error al actualizar producto")
	if err == nil && res.Ok() && len(lote.Fallos) > 0 {
		res.Aviso = Error(fmt.Sprintf("Producto actualizado, pero hubo %d error(es) con las imágenes", len(lote.Fallos)))
	}
	return res, err
}

func (f *FormularioProducto) crear(ctx context.Context) dto.Respuesta[entity.Producto] {
	d := f.Datos
	return f.api.Crear(ctx, dto.CrearProductoRequest{
		Nombre:               d.Nombre,
		SKU:                  d.SKU,
		Descripcion:          d.Descripcion,
		CategoriaID:          d.CategoriaID,
		TiendaID:             d.TiendaID,
		Precio:               d.Precio,
		Descuento:            d.Descuento,
		Stock:                d.Stock,
		Estado:               d.Estado,
		Beneficios:           d.Beneficios,
		ModoUso:              d.ModoUso,
		Detalle:              d.Detalle,
		Imagenes:             slices.Clone(f.nuevas),
		ImagenPrincipalIndex: f.principal,
	})
}

func (f *FormularioProducto) actualizar(ctx context.Context) (dto.Respuesta[entity.Producto], ResumenLote) {
	d := f.Datos
	id := f.original.ID
	r := f.api.Actualizar(ctx, id, dto.ActualizarProductoRequest{
		Nombre:      d.Nombre,
		Descripcion: d.Descripcion,
		Precio:      d.Precio,
		Descuento:   d.Descuento,
		Stock:       d.Stock,
		Estado:      d.Estado,
		SKU:         d.SKU,
		CategoriaID: d.CategoriaID,
		TiendaID:    d.TiendaID,
		Beneficios:  d.Beneficios,
		ModoUso:     d.ModoUso,
		Detalle:     d.Detalle,
	})
	if !r.Success {
		return r, ResumenLote{}
	}

	lote := LoteImagenes{Eliminar: slices.Clone(f.aEliminar), Agregar: slices.Clone(f.nuevas)}
	if p := f.PrincipalActual(); p.Nueva != nil {
		lote.PrincipalNueva = p.Nueva
	}
	resumen := ProcesarLote(ctx, f.api, id, lote)

	if recargado := f.api.Obtener(ctx, id); recargado.Success {
		recargado.Message = r.Message
		return recargado, resumen
	}
	return r, resumen
}
