package http

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-admin/internal/application/consola"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
)

// ResultadoResponse es lo que devuelve la BFF tras guardar un formulario o confirmar una acción.
type ResultadoResponse[T any] struct {
	Aviso consola.Aviso `json:"aviso"`
	Data  *T            `json:"data,omitempty"`
}

func errorJSON(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// statusDe traduce un sobre del backend a un código HTTP de la BFF. Sin respuesta del backend
// (Status 0) es 502.
func statusDe[T any](r dto.Respuesta[T]) int {
	switch {
	case r.Success:
		return fiber.StatusOK
	case r.Status >= 400:
		return r.Status
	default:
		return fiber.StatusBadGateway
	}
}

// responder reenvía el sobre del backend tal cual.
func responder[T any](c *fiber.Ctx, r dto.Respuesta[T]) error {
	return c.Status(statusDe(r)).JSON(r)
}

// responderResultado convierte el resultado de un formulario o confirmación en respuesta HTTP.
func responderResultado[T any](c *fiber.Ctx, res consola.Resultado[T], err error) error {
	switch {
	case errors.Is(err, domain.ErrValidacion):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ResultadoResponse[T]{Aviso: res.Aviso})
	case errors.Is(err, domain.ErrEnvioEnCurso):
		return errorJSON(c, fiber.StatusConflict, "EN_CURSO", err.Error())
	case errors.Is(err, domain.ErrEnvioCancelado):
		return errorJSON(c, fiber.StatusRequestTimeout, "CANCELADO", err.Error())
	case err != nil:
		return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
	out := ResultadoResponse[T]{Aviso: res.Aviso, Data: res.Entidad}
	if res.Ok() {
		return c.JSON(out)
	}
	if len(res.Aviso.Campos) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(out)
	}
	return c.Status(fiber.StatusBadGateway).JSON(out)
}

// responderAviso para operaciones que solo producen un aviso (apertura de formularios, reordenar).
func responderAviso(c *fiber.Ctx, a consola.Aviso, datos any) error {
	status := fiber.StatusOK
	if a.EsError() {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"aviso": a, "data": datos})
}

// ── Parámetros ────────────────────────────────────────────────────────────────

func idParam(c *fiber.Ctx, nombre string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(nombre), 10, 64)
	return id, err == nil && id > 0
}

func idInvalido(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "id inválido")
}

// lectorForm lee campos numéricos del formulario. Un campo ausente queda en su valor cero; uno
// presente que no se puede interpretar se informa a invalido y nunca llega al backend como 0.
type lectorForm struct {
	c        *fiber.Ctx
	invalido func(campo, msg string)
}

func (l lectorForm) texto(campo string) string {
	return strings.TrimSpace(l.c.FormValue(campo))
}

func (l lectorForm) entero(campo, msg string) (int, bool) {
	v := l.texto(campo)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		l.invalido(campo, msg)
		return 0, false
	}
	return n, true
}

func (l lectorForm) decimal(campo, msg string) decimal.Decimal {
	v := l.texto(campo)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		l.invalido(campo, msg)
		return decimal.Zero
	}
	return d
}

func parseID(v string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	return id, err == nil && id > 0
}

// id lee un id opcional; vacío es nil.
func (l lectorForm) id(campo string) *int64 {
	v := l.texto(campo)
	if v == "" {
		return nil
	}
	id, ok := parseID(v)
	if !ok {
		l.invalido(campo, MensajeSeleccionInvalida)
		return nil
	}
	return &id
}

// ids lee un campo repetido, sea urlencoded o multipart.
func (l lectorForm) ids(campo string) []int64 {
	var crudos []string
	for _, v := range l.c.Context().PostArgs().PeekMulti(campo) {
		crudos = append(crudos, string(v))
	}
	if form, err := l.c.MultipartForm(); err == nil {
		crudos = append(crudos, form.Value[campo]...)
	}
	var out []int64
	for _, v := range crudos {
		if strings.TrimSpace(v) == "" {
			continue
		}
		id, ok := parseID(v)
		if !ok {
			l.invalido(campo, MensajeSeleccionInvalida)
			continue
		}
		out = append(out, id)
	}
	return out
}

// Mensajes de campos numéricos mal escritos.
const (
	MensajeSeleccionInvalida = "La selección no es válida"
	MensajeOrdenInvalido     = "El orden debe ser un número entero"
)

func formBool(c *fiber.Ctx, campo string) bool {
	v, _ := strconv.ParseBool(c.FormValue(campo))
	return v
}

// ── Archivos ──────────────────────────────────────────────────────────────────

// archivo lee el archivo del campo; nil si el campo no vino.
func archivo(c *fiber.Ctx, campo string) (*dto.Archivo, error) {
	fh, err := c.FormFile(campo)
	if err != nil {
		// campo ausente o cuerpo sin multipart
		return nil, nil
	}
	a, err := leerArchivo(fh)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// archivos lee todos los archivos del campo (por ejemplo imagenes[]).
func archivos(c *fiber.Ctx, campo string) ([]dto.Archivo, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}
	var out []dto.Archivo
	for _, fh := range form.File[campo] {
		a, err := leerArchivo(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func leerArchivo(fh *multipart.FileHeader) (dto.Archivo, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.Archivo{}, err
	}
	defer f.Close()
	datos, err := io.ReadAll(f)
	if err != nil {
		return dto.Archivo{}, err
	}
	return dto.Archivo{Nombre: fh.Filename, MIME: fh.Header.Get("Content-Type"), Datos: datos}, nil
}

func archivoIlegible(c *fiber.Ctx, err error) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_FILE", "no se pudo leer el archivo: "+err.Error())
}

// rechazoImagen responde con el error de imagen en su campo.
func rechazoImagen(c *fiber.Ctx, campo string, err error) error {
	a := consola.ErrorDeCampos(map[string]string{campo: err.Error()})
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ResultadoResponse[struct{}]{Aviso: a})
}
