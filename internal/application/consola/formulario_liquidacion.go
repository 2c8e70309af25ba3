package consola

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// FormularioLiquidacion alta y edición de productos en liquidación.
type FormularioLiquidacion struct {
	api      ports.LiquidacionAPI
	original *entity.Liquidacion

	ProductoID int64
	Orden      int
	Imagen     *SelectorImagen

	base
}

// MensajeLimiteLiquidacion se muestra al intentar crear con la sección llena.
var MensajeLimiteLiquidacion = fmt.Sprintf("Solo se permiten máximo %d liquidaciones", entity.MaxLiquidaciones)

// NewFormularioLiquidacion abre el alta si hay cupo y sugiere el siguiente orden libre.
// Si la sugerencia falla el orden queda vacío y el usuario lo elige.
func NewFormularioLiquidacion(ctx context.Context, api ports.LiquidacionAPI, actuales int) (*FormularioLiquidacion, Aviso, error) {
	if actuales >= entity.MaxLiquidaciones {
		return nil, Error(MensajeLimiteLiquidacion), domain.ErrLimiteAlcanzado
	}
	f := &FormularioLiquidacion{api: api, Imagen: NewSelectorImagen(ReglasBanner, ""), base: nuevaBase()}
	if r := api.SiguienteOrden(ctx); r.Success {
		f.Orden = r.Data.Orden
	}
	return f, Aviso{}, nil
}

func EditarLiquidacion(api ports.LiquidacionAPI, l *entity.Liquidacion) *FormularioLiquidacion {
	return &FormularioLiquidacion{
		api:        api,
		original:   l,
		ProductoID: l.ProductoID,
		Orden:      l.Orden,
		Imagen:     NewSelectorImagen(ReglasBanner, l.ImagenURL),
		base:       nuevaBase(),
	}
}

// OpcionesOrden son las posiciones 1..MaxLiquidaciones.
func OpcionesOrden() []int {
	out := make([]int, entity.MaxLiquidaciones)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ProductosElegibles excluye al crear los productos que ya están en liquidación.
func (f *FormularioLiquidacion) ProductosElegibles(productos []entity.ProductoResumen, actuales []entity.Liquidacion) []entity.ProductoResumen {
	if f.Edicion() {
		return productos
	}
	return slices.DeleteFunc(slices.Clone(productos), func(p entity.ProductoResumen) bool {
		return slices.ContainsFunc(actuales, func(l entity.Liquidacion) bool { return l.ProductoID == p.ID })
	})
}

func (f *FormularioLiquidacion) Edicion() bool { return f.original != nil }

func (f *FormularioLiquidacion) Titulo() string {
	if f.Edicion() {
		return "Editar Liquidación"
	}
	return "Nueva Liquidación"
}

func (f *FormularioLiquidacion) TextoBoton() string {
	return textoBoton(f.Edicion(), &f.envio, "Crear", "Actualizar")
}

// Guardar corta en el primer error: producto, orden e imagen al crear.
func (f *FormularioLiquidacion) Guardar(ctx context.Context) (Resultado[entity.Liquidacion], error) {
	if res, err := rechazoEntrada[entity.Liquidacion](&f.base); err != nil {
		return res, err
	}
	if f.ProductoID <= 0 {
		return rechazar[entity.Liquidacion](&f.base, "producto_id", "Debes seleccionar un producto")
	}
	if f.Orden <= 0 {
		return rechazar[entity.Liquidacion](&f.base, "orden", "Debes seleccionar un orden")
	}
	if !f.Edicion() && f.Imagen.Archivo() == nil {
		return rechazar[entity.Liquidacion](&f.base, "imagen", "La imagen es obligatoria")
	}
	in := dto.LiquidacionRequest{ProductoID: f.ProductoID, Orden: f.Orden, Imagen: f.Imagen.Archivo()}
	if !f.Edicion() {
		return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Liquidacion] {
			return f.api.Crear(ctx, in)
		}, "Liquidación creada exitosamente", "Error al guardar")
	}
	in.EliminarImagen = f.Imagen.DebeEliminar(true)
	return guardar(ctx, &f.base, func(ctx context.Context) dto.Respuesta[entity.Liquidacion] {
		return f.api.Actualizar(ctx, f.original.ID, in)
	}, "Liquidación actualizada exitosamente", "Error al guardar")
}
