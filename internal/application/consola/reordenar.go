package consola

import (
	"context"
	"slices"

	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// Mover intercambia el elemento i con su vecino en la dirección delta (-1 sube, +1 baja).
// Fuera de rango devuelve la lista intacta y false.
func Mover[T any](items []T, i, delta int) ([]T, bool) {
	j := i + delta
	if i < 0 || i >= len(items) || j < 0 || j >= len(items) || delta == 0 {
		return items, false
	}
	out := slices.Clone(items)
	out[i], out[j] = out[j], out[i]
	return out, true
}

// Ordenes numera la lista a partir de 1 según su posición.
func Ordenes[T any](items []T, id func(T) int64) []entity.OrdenItem {
	out := make([]entity.OrdenItem, len(items))
	for i, it := range items {
		out[i] = entity.OrdenItem{ID: id(it), Orden: i + 1}
	}
	return out
}

// MoverCarrusel mueve una diapositiva y envía el orden completo. Si el backend falla se
// devuelve la lista original para deshacer el cambio en pantalla.
func MoverCarrusel(ctx context.Context, api ports.CarruselAPI, items []entity.ItemCarrusel, i, delta int) ([]entity.ItemCarrusel, Aviso) {
	nuevos, ok := Mover(items, i, delta)
	if !ok {
		return items, Aviso{}
	}
	ordenes := Ordenes(nuevos, func(it entity.ItemCarrusel) int64 { return it.ID })
	r := api.Reordenar(ctx, ordenes)
	if !r.Success {
		return items, AvisoDe(r, "", "Error al reordenar el carrusel")
	}
	for k := range nuevos {
		nuevos[k].Orden = ordenes[k].Orden
	}
	return nuevos, Exito("Carrusel reordenado exitosamente")
}

// MoverImagen mueve una imagen de la galería de un producto y envía los nuevos órdenes.
func MoverImagen(ctx context.Context, api ports.ProductosAPI, productoID int64, imgs []entity.ProductoImagen, i, delta int) ([]entity.ProductoImagen, Aviso) {
	nuevas, ok := Mover(imgs, i, delta)
	if !ok {
		return imgs, Aviso{}
	}
	ordenes := make(map[int64]int, len(nuevas))
	for _, o := range Ordenes(nuevas, func(im entity.ProductoImagen) int64 { return im.ID }) {
		ordenes[o.ID] = o.Orden
	}
	r := api.ReordenarImagenes(ctx, productoID, ordenes)
	if !r.Success {
		return imgs, AvisoDe(r, "", "Error al reordenar las imágenes")
	}
	for k := range nuevas {
		nuevas[k].Orden = ordenes[nuevas[k].ID]
	}
	return nuevas, Exito("Imágenes reordenadas")
}
