package adminapi

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
)

// campoMetodo es el campo de method-override que el backend acepta en multipart:
// un POST con _method=PUT se enruta como PUT.
const campoMetodo = "_method"

var escaparComillas = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// formulario arma un cuerpo multipart/form-data. El primer error queda guardado y
// se devuelve en cerrar.
type formulario struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func nuevoFormulario() *formulario {
	f := &formulario{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *formulario) campo(clave, valor string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(clave, valor)
}

// opcional solo agrega el campo si no está vacío.
func (f *formulario) opcional(clave, valor string) {
	if valor != "" {
		f.campo(clave, valor)
	}
}

func (f *formulario) entero(clave string, v int) {
	f.campo(clave, strconv.Itoa(v))
}

func (f *formulario) id(clave string, v *int64) {
	if v != nil {
		f.campo(clave, strconv.FormatInt(*v, 10))
	}
}

// bandera envía "1" solo cuando v es verdadero.
func (f *formulario) bandera(clave string, v bool) {
	if v {
		f.campo(clave, "1")
	}
}

func (f *formulario) archivo(clave string, a *dto.Archivo) {
	if f.err != nil || a == nil {
		return
	}
	tipo := a.MIME
	if tipo == "" {
		tipo = http.DetectContentType(a.Datos)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escaparComillas.Replace(clave), escaparComillas.Replace(a.Nombre)))
	h.Set("Content-Type", tipo)
	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(a.Datos)
}

// metodoPUT agrega el method-override para actualizaciones multipart.
func (f *formulario) metodoPUT() {
	f.campo(campoMetodo, http.MethodPut)
}

func (f *formulario) cerrar() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", fmt.Errorf("armar multipart: %w", f.err)
	}
	if err := f.w.Close(); err != nil {
		return nil, "", fmt.Errorf("cerrar multipart: %w", err)
	}
	return &f.buf, f.w.FormDataContentType(), nil
}
