package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/ports"
	"github.com/jhoicas/tienda-admin/pkg/config"
)

// maxCuerpo limita lo que se lee de una respuesta del backend.
const maxCuerpo = 10 << 20

// Client habla con la API REST de la tienda. Todas las operaciones devuelven un sobre
// dto.Respuesta: los errores de red y los HTTP 4xx/5xx se normalizan a Success=false.
type Client struct {
	base       string
	httpClient *http.Client
	log        zerolog.Logger
}

// New construye el cliente. fuente es opcional: si el contexto de la llamada no trae token
// (ver ports.ConToken), el interceptor lo toma de fuente.
func New(cfg config.BackendConfig, log zerolog.Logger, fuente ports.FuenteToken) *Client {
	return &Client{
		base: cfg.APIURL,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &Interceptor{Base: http.DefaultTransport, Fuente: fuente},
		},
		log: log.With().Str("componente", "adminapi").Logger(),
	}
}

// BaseURL devuelve la URL base de la API (sin barra final).
func (c *Client) BaseURL() string {
	return c.base
}

// ── Armado de peticiones ─────────────────────────────────────────────────────

type peticion struct {
	metodo string
	ruta   string
	query  url.Values
	cuerpo io.Reader
	// tipo es el Content-Type explícito (multipart con boundary); vacío = JSON.
	tipo string
	// err aborta la petición antes de salir (ej. fallo al armar el multipart).
	err error
}

func get(ruta string, q url.Values) peticion {
	return peticion{metodo: http.MethodGet, ruta: ruta, query: q}
}

func conJSON(metodo, ruta string, v any) peticion {
	if v == nil {
		v = struct{}{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return peticion{metodo: metodo, ruta: ruta, err: fmt.Errorf("serializar cuerpo: %w", err)}
	}
	return peticion{metodo: metodo, ruta: ruta, cuerpo: bytes.NewReader(b)}
}

func conFormulario(metodo, ruta string, f *formulario) peticion {
	cuerpo, tipo, err := f.cerrar()
	return peticion{metodo: metodo, ruta: ruta, cuerpo: cuerpo, tipo: tipo, err: err}
}

func borrar(ruta string) peticion {
	return peticion{metodo: http.MethodDelete, ruta: ruta}
}

func ruta(partes ...any) string {
	var b bytes.Buffer
	for _, p := range partes {
		b.WriteByte('/')
		switch v := p.(type) {
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		case string:
			b.WriteString(url.PathEscape(v))
		default:
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// ── Ejecución y normalización ────────────────────────────────────────────────

// sobre agrega el campo "error" que algunos endpoints usan en lugar de "message".
type sobre[T any] struct {
	dto.Respuesta[T]
	Error string `json:"error,omitempty"`
}

// sobreSinDatos se usa cuando data no encaja con T en una respuesta de error.
type sobreSinDatos struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   string      `json:"error"`
	Errors  dto.Errores `json:"errors"`
}

// hacer ejecuta la petición y devuelve el sobre normalizado.
func hacer[T any](ctx context.Context, c *Client, p peticion) dto.Respuesta[T] {
	r, _ := hacerCrudo[T](ctx, c, p)
	return r
}

// hacerCrudo además devuelve el cuerpo leído para extraer campos fuera de data (ej. pagination).
func hacerCrudo[T any](ctx context.Context, c *Client, p peticion) (dto.Respuesta[T], []byte) {
	if p.err != nil {
		c.log.Error().Err(p.err).Str("method", p.metodo).Str("path", p.ruta).Msg("petición inválida")
		return dto.Fallo[T](dto.MensajeErrorConexion), nil
	}

	u := c.base + p.ruta
	if len(p.query) > 0 {
		u += "?" + p.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, p.metodo, u, p.cuerpo)
	if err != nil {
		c.log.Error().Err(err).Str("method", p.metodo).Str("path", p.ruta).Msg("crear HTTP request")
		return dto.Fallo[T](dto.MensajeErrorConexion), nil
	}
	if p.tipo != "" {
		req.Header.Set("Content-Type", p.tipo)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		ev := c.log.Error()
		if ctx.Err() != nil {
			ev = c.log.Debug()
		}
		ev.Err(err).Str("method", p.metodo).Str("path", p.ruta).Msg("llamada HTTP fallida")
		return dto.Fallo[T](dto.MensajeErrorConexion), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCuerpo))
	if err != nil {
		c.log.Error().Err(err).Str("path", p.ruta).Int("status", resp.StatusCode).Msg("leer respuesta")
		return conStatus(dto.Fallo[T](dto.MensajeErrorConexion), resp.StatusCode), nil
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if ok && len(bytes.TrimSpace(body)) == 0 {
		return dto.Respuesta[T]{Success: true, Status: resp.StatusCode}, body
	}
	var s sobre[T]
	if err := json.Unmarshal(body, &s); err != nil {
		var sd sobreSinDatos
		if ok || json.Unmarshal(body, &sd) != nil {
			c.log.Error().Err(err).Str("path", p.ruta).Int("status", resp.StatusCode).Msg("respuesta no es JSON válido")
			return conStatus(dto.Fallo[T](dto.MensajeErrorConexion), resp.StatusCode), body
		}
		s = sobre[T]{Respuesta: dto.Respuesta[T]{Message: sd.Message, Errors: sd.Errors}, Error: sd.Error}
	}

	out := s.Respuesta
	out.Status = resp.StatusCode
	if !ok {
		out.Success = false
		c.log.Warn().Str("method", p.metodo).Str("path", p.ruta).Int("status", resp.StatusCode).
			Str("message", out.Message).Msg("backend respondió con error")
	}
	if !out.Success && out.Message == "" {
		out.Message = s.Error
	}
	if !out.Success && out.Message == "" {
		out.Message = dto.MensajeErrorConexion
	}
	return out, body
}

func conStatus[T any](r dto.Respuesta[T], status int) dto.Respuesta[T] {
	r.Status = status
	return r
}

// mapear transforma el data de un sobre correcto conservando mensaje, errores y status.
func mapear[A, B any](r dto.Respuesta[A], f func(A) B) dto.Respuesta[B] {
	out := dto.Respuesta[B]{Success: r.Success, Message: r.Message, Errors: r.Errors, Status: r.Status}
	if r.Success {
		out.Data = f(r.Data)
	}
	return out
}
