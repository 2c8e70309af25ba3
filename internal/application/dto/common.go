package dto

import (
	"encoding/json"
	"sort"
)

// MensajeErrorConexion se usa cuando no hubo respuesta útil del servidor.
const MensajeErrorConexion = "Error de conexión"

// Respuesta es el sobre uniforme de la API de la tienda: {success, data?, message?, errors?}.
// Los consumidores solo ramifican por Success; los fallos de transporte también llegan aquí.
type Respuesta[T any] struct {
	Success bool    `json:"success"`
	Data    T       `json:"data,omitempty"`
	Message string  `json:"message,omitempty"`
	Errors  Errores `json:"errors,omitempty"`
	// Status es el código HTTP recibido (0 si no hubo respuesta).
	Status int `json:"-"`
}

// Fallo construye un sobre de error con mensaje.
func Fallo[T any](mensaje string) Respuesta[T] {
	if mensaje == "" {
		mensaje = MensajeErrorConexion
	}
	return Respuesta[T]{Success: false, Message: mensaje}
}

// Exito construye un sobre correcto.
func Exito[T any](data T, mensaje string) Respuesta[T] {
	return Respuesta[T]{Success: true, Data: data, Message: mensaje}
}

// Errores es el mapa campo -> mensajes de validación del backend (formato Laravel).
type Errores map[string][]string

// UnmarshalJSON acepta tanto {"campo": ["msg"]} como {"campo": "msg"} e ignora el resto.
func (e *Errores) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	// errors puede venir como null, string o array según el endpoint.
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		*e = nil
		return nil
	}
	out := make(Errores, len(raw))
	for campo, v := range raw {
		var lista []string
		if err := json.Unmarshal(v, &lista); err == nil {
			out[campo] = lista
			continue
		}
		var uno string
		if err := json.Unmarshal(v, &uno); err == nil {
			out[campo] = []string{uno}
		}
	}
	*e = out
	return nil
}

// Primeros devuelve el primer mensaje de cada campo.
func (e Errores) Primeros() map[string]string {
	if len(e) == 0 {
		return nil
	}
	out := make(map[string]string, len(e))
	for campo, msgs := range e {
		if len(msgs) > 0 {
			out[campo] = msgs[0]
		}
	}
	return out
}

// Campos devuelve los nombres de campo ordenados.
func (e Errores) Campos() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Paginacion metadatos de página tal como los devuelve el backend.
type Paginacion struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from,omitempty"`
	To          int `json:"to,omitempty"`
}

// Pagina es la forma normalizada de cualquier listado.
type Pagina[T any] struct {
	Items      []T        `json:"items"`
	Paginacion Paginacion `json:"pagination"`
}

// PaginaUnica envuelve un listado sin paginar del backend.
func PaginaUnica[T any](items []T) Pagina[T] {
	if items == nil {
		items = []T{}
	}
	return Pagina[T]{
		Items:      items,
		Paginacion: Paginacion{CurrentPage: 1, LastPage: 1, PerPage: len(items), Total: len(items)},
	}
}

// ErrorResponse cuerpo de error HTTP propio de la consola (sesión, cuerpo inválido).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
