package consola

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
)

// maxConcurrenciaImagenes acota los DELETE simultáneos contra el backend.
const maxConcurrenciaImagenes = 4

// LoteImagenes son los cambios de galería pendientes al editar un producto.
type LoteImagenes struct {
	Eliminar []int64
	Agregar  []dto.Archivo
	// PrincipalNueva índice dentro de Agregar; nil deja la principal actual.
	PrincipalNueva *int
}

func (l LoteImagenes) Vacio() bool { return len(l.Eliminar) == 0 && len(l.Agregar) == 0 }

// ResumenLote cuenta las operaciones que terminaron bien y los mensajes de las que fallaron.
type ResumenLote struct {
	Exitos int
	Fallos []string
}

type resultadoImagen struct {
	ok      bool
	mensaje string
}

// ProcesarLote borra cada imagen marcada (una petición por imagen) y sube las nuevas en una sola
// petición, todo en paralelo. Espera a que terminen todas antes de devolver.
func ProcesarLote(ctx context.Context, api ports.ProductosAPI, productoID int64, lote LoteImagenes) ResumenLote {
	if lote.Vacio() {
		return ResumenLote{}
	}
	p := pool.NewWithResults[resultadoImagen]().WithContext(ctx).WithMaxGoroutines(maxConcurrenciaImagenes)

	for _, id := range lote.Eliminar {
		p.Go(func(ctx context.Context) (resultadoImagen, error) {
			r := api.EliminarImagen(ctx, productoID, id)
			return resultadoImagen{ok: r.Success, mensaje: fmt.Sprintf("imagen %d: %s", id, r.Message)}, nil
		})
	}
	if len(lote.Agregar) > 0 {
		p.Go(func(ctx context.Context) (resultadoImagen, error) {
			r := api.AgregarImagenes(ctx, productoID, dto.AgregarImagenesRequest{
				Imagenes:             lote.Agregar,
				ImagenPrincipalIndex: lote.PrincipalNueva,
			})
			return resultadoImagen{ok: r.Success, mensaje: "imágenes nuevas: " + r.Message}, nil
		})
	}

	// Las tareas no devuelven error; los fallos viajan en el resultado.
	resultados, _ := p.Wait()
	var out ResumenLote
	for _, r := range resultados {
		if r.ok {
			out.Exitos++
		} else {
			out.Fallos = append(out.Fallos, r.mensaje)
		}
	}
	return out
}
