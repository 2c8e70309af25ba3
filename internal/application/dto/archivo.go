package dto

// Archivo es un archivo seleccionado por el usuario listo para enviarse en multipart.
type Archivo struct {
	Nombre string
	MIME   string
	Datos  []byte
}

// Tamano en bytes.
func (a Archivo) Tamano() int64 {
	return int64(len(a.Datos))
}
