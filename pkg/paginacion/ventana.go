// Package paginacion calcula la ventana de números de página visible en los listados.
package paginacion

// Elipsis marca un hueco en la ventana ("…").
const Elipsis = -1

// Ventana devuelve los números de página a mostrar para la página actual y la última.
//
//	ultima <= 7          -> 1..ultima
//	actual <= 4          -> 1 2 3 4 5 … ultima
//	actual >= ultima-3   -> 1 … ultima-4..ultima
//	resto                -> 1 … actual-1 actual actual+1 … ultima
func Ventana(actual, ultima int) []int {
	if ultima <= 0 {
		return nil
	}
	if ultima <= 7 {
		out := make([]int, 0, ultima)
		for i := 1; i <= ultima; i++ {
			out = append(out, i)
		}
		return out
	}
	switch {
	case actual <= 4:
		return []int{1, 2, 3, 4, 5, Elipsis, ultima}
	case actual >= ultima-3:
		return []int{1, Elipsis, ultima - 4, ultima - 3, ultima - 2, ultima - 1, ultima}
	default:
		return []int{1, Elipsis, actual - 1, actual, actual + 1, Elipsis, ultima}
	}
}
